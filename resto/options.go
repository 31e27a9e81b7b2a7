// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import (
	"math"

	"github.com/ruckstead/barrier/ipm"
)

// Budgets are treated as unlimited from this value on.
const unlimitedTime = 1e20

// deriveState is the solver condition the option derivation reacts to.
type deriveState struct {
	square           bool
	expectInfeasible bool
	firstCall        bool
	currViolation    float64
	// Remaining budgets in seconds; NaN or >= unlimitedTime means none.
	remainingWall float64
	remainingCPU  float64
}

// deriveOptions builds the option layer for one restoration invocation.
// Each rule applies independently on a private child layer, so the base
// snapshot stays caller-visible and untouched.
func deriveOptions(base *ipm.Options, d deriveState) *ipm.Options {
	o := base.Override()

	if finiteBudget(d.remainingWall) {
		o.SetNumber("resto.max_wall_time", d.remainingWall)
	}
	if finiteBudget(d.remainingCPU) {
		o.SetNumber("resto.max_cpu_time", d.remainingCPU)
	}

	if d.square {
		// A square problem must not leave the restoration phase on slow
		// progress; it runs until the violation itself is small.
		o.SetNumberIfUnset("required_infeasibility_reduction", 0)
	} else if d.expectInfeasible {
		o.SetStrIfUnset("resto.expect_infeasible_problem", "no")
		if d.firstCall && d.currViolation > 1e-3 {
			// Ask for a significant reduction so an infeasible problem
			// does not cycle in and out of restoration.
			o.SetNumberIfUnset("required_infeasibility_reduction", 1e-3)
		}
	}

	return o
}

func finiteBudget(v float64) bool {
	return !math.IsNaN(v) && v < unlimitedTime
}
