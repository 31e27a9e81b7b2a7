// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import (
	"math"

	"github.com/ruckstead/barrier/ipm"
	"github.com/ruckstead/barrier/vec"
)

// elasticRho is the penalty weight of the elastic variables in the
// restoration objective.
const elasticRho = 1e3

// ElasticProblem is the restoration-space view of an original problem:
// the constraints are relaxed by nonnegative elastic variables n and p with
// p - n equal to the constraint residual, and the objective becomes the
// weighted one-norm of (n, p). It wraps the original problem, state and
// derived quantities read-only.
type ElasticProblem struct {
	orig  ipm.Problem
	state *ipm.State
	quant ipm.Quantities
}

// NumVars counts the structural variables plus both elastic blocks.
func (e *ElasticProblem) NumVars() int {
	m := e.orig.NumEqConstraints() + e.orig.NumIneqConstraints()
	return e.orig.NumVars() + 2*m
}

// NumEqConstraints matches the original: every constraint is kept, relaxed.
func (e *ElasticProblem) NumEqConstraints() int { return e.orig.NumEqConstraints() }

// NumIneqConstraints matches the original.
func (e *ElasticProblem) NumIneqConstraints() int { return e.orig.NumIneqConstraints() }

// Original returns the wrapped problem.
func (e *ElasticProblem) Original() ipm.Problem { return e.orig }

// buildElastic creates the restoration problem and a fresh restoration-space
// state from the current original-space point. All restoration vectors are
// composite with block 0 aliasing a copy of the original-space vector.
// Construction is total; the feasibility precondition is checked by the
// controller.
func buildElastic(p ipm.Problem, s *ipm.State, q ipm.Quantities) (*ElasticProblem, *ipm.State) {
	ep := &ElasticProblem{orig: p, state: s, quant: q}

	curr := s.Curr()
	n, pos := elasticSplit(q.CurrResiduals(), s.Mu)

	it := &ipm.Iterate{
		X:  vec.NewComposite(toDense(curr.X).Clone(), n, pos),
		S:  compositeClone(curr.S),
		YC: compositeClone(curr.YC),
		YD: compositeClone(curr.YD),
		// The elastic variables carry fresh unit lower-bound multipliers.
		ZL: vec.NewComposite(toDense(curr.ZL).Clone(), ones(len(n)), ones(len(pos))),
		ZU: compositeClone(curr.ZU),
		VL: compositeClone(curr.VL),
		VU: compositeClone(curr.VU),
	}

	es := ipm.NewState(it)
	es.Mu = s.Mu
	es.Tau = s.Tau
	es.StartWall = s.StartWall
	es.StartCPU = s.StartCPU
	return ep, es
}

// elasticSplit produces the strictly interior split of the signed residuals
// c into n, p > 0 with p - n = c, placing each pair at the minimizer of
// rho·(n+p) - mu·(ln n + ln p) subject to the split constraint.
func elasticSplit(c vec.Dense, mu float64) (n, p vec.Dense) {
	n = vec.NewDense(len(c))
	p = vec.NewDense(len(c))
	if mu <= 0 {
		mu = 1e-20
	}
	for i, ci := range c {
		b := (mu - elasticRho*ci) / (2 * elasticRho)
		e := mu * ci / (2 * elasticRho)
		d := math.Sqrt(b*b + e)
		if b >= 0 {
			n[i] = b + d
		} else {
			// Stable form of the same root: b + d cancels for large
			// positive residuals.
			n[i] = e / (d - b)
		}
		p[i] = ci + n[i]
	}
	return n, p
}

func ones(n int) vec.Dense {
	v := vec.NewDense(n)
	v.Fill(1)
	return v
}

// toDense narrows an original-space vector. Original-space iterates hold
// Dense vectors only; anything else is a programming error.
func toDense(v vec.Vector) vec.Dense {
	d, ok := v.(vec.Dense)
	if !ok {
		panic("resto: original-space vector is not dense")
	}
	return d
}

func compositeClone(v vec.Vector) *vec.Composite {
	return vec.NewComposite(toDense(v).Clone())
}
