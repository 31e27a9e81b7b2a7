// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import "github.com/ruckstead/barrier/vec"

// boundMultStep writes the complementarity-consistent bound-multiplier step
//
//	dst = ((s0 - s1)∘z + mu)/s0 - z
//
// elementwise. It linearizes z·s = mu around the restoration-phase primal
// movement, with s0 - s1 as the implicit primal step.
func boundMultStep(dst, z, s0, s1 vec.Dense, mu float64) {
	dst.CopyFrom(s0)
	dst.Axpy(-1, s1)
	dst.MulEq(z)
	dst.AddConst(mu)
	dst.DivEq(s0)
	dst.Axpy(-1, z)
}

// multDelta is the step for the four bound-multiplier vectors.
type multDelta struct {
	zL, zU, vL, vU vec.Dense
}

// boundMultDeltas computes the pseudo-Newton step for all four bound groups,
// treating the whole restoration-phase slack movement as one primal step.
func boundMultDeltas(curr *stepInputs) multDelta {
	d := multDelta{
		zL: vec.NewDense(len(curr.zL)),
		zU: vec.NewDense(len(curr.zU)),
		vL: vec.NewDense(len(curr.vL)),
		vU: vec.NewDense(len(curr.vU)),
	}
	boundMultStep(d.zL, curr.zL, curr.slackXL0, curr.slackXL1, curr.mu)
	boundMultStep(d.zU, curr.zU, curr.slackXU0, curr.slackXU1, curr.mu)
	boundMultStep(d.vL, curr.vL, curr.slackSL0, curr.slackSL1, curr.mu)
	boundMultStep(d.vU, curr.vU, curr.slackSU0, curr.slackSU1, curr.mu)
	return d
}

// stepInputs gathers the multipliers, slack pairs and barrier parameter the
// step rule consumes.
type stepInputs struct {
	mu float64

	zL, zU, vL, vU vec.Dense

	slackXL0, slackXL1 vec.Dense
	slackXU0, slackXU1 vec.Dense
	slackSL0, slackSL1 vec.Dense
	slackSU0, slackSU1 vec.Dense
}
