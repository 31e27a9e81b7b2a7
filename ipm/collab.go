// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"time"

	"github.com/ruckstead/barrier/vec"
)

// Problem is the dimensions surface of an NLP. Derivative evaluation and
// constraint structure stay with the algorithm that owns the problem.
type Problem interface {
	NumVars() int
	NumEqConstraints() int
	NumIneqConstraints() int
}

// Quantities is the derived-quantities object of one solver level: scalar
// measures and slack vectors computed from the problem at the current and
// trial iterates.
type Quantities interface {
	// CurrConstraintViolation is the scaled constraint violation at the
	// current iterate, by max norm.
	CurrConstraintViolation() float64
	// UnscaledCurrConstraintViolation is the unscaled max-norm constraint
	// violation at the current iterate.
	UnscaledCurrConstraintViolation() float64
	// UnscaledTrialConstraintViolation is the unscaled max-norm constraint
	// violation at the pending trial iterate.
	UnscaledTrialConstraintViolation() float64
	// CurrPrimalInfeasibility is the max-norm primal infeasibility at the
	// current iterate.
	CurrPrimalInfeasibility() float64
	// CurrResiduals are the signed constraint residuals at the current
	// iterate, equalities first.
	CurrResiduals() vec.Dense

	// IsSquareProblem reports a problem with zero degrees of freedom,
	// where optimality collapses to feasibility.
	IsSquareProblem() bool

	// Current slacks for the four bound groups.
	CurrSlackXL() vec.Dense
	CurrSlackXU() vec.Dense
	CurrSlackSL() vec.Dense
	CurrSlackSU() vec.Dense

	// Trial slacks for the four bound groups.
	TrialSlackXL() vec.Dense
	TrialSlackXU() vec.Dense
	TrialSlackSL() vec.Dense
	TrialSlackSU() vec.Dense

	// DualFracToBound is the largest step in (0,1] keeping all four bound
	// multipliers strictly positive under the fraction-to-the-boundary
	// rule with parameter tau.
	DualFracToBound(tau float64, dZL, dZU, dVL, dVU vec.Dense) float64
}

// Solver is the primary interior-point algorithm, invoked recursively on the
// restoration problem. Implementations must be re-entrant: all mutable state
// is carried by the arguments, never by the instance.
type Solver interface {
	// Initialize binds the solver to a problem, its state and derived
	// quantities, under the given options read with the given name prefix.
	Initialize(log *Logger, p Problem, s *State, q Quantities, opts *Options, prefix string) error
	// Optimize runs the algorithm to a terminal status. The flag marks a
	// restoration-phase invocation.
	Optimize(restoration bool) Status
}

// EqMultEstimator recomputes the equality and inequality constraint
// multipliers, typically by a least-squares estimate. It writes the trial
// iterate's YC and YD in place and leaves them unchanged when the estimate
// is ill-conditioned or larger than resetThreshold allows. It never fails.
type EqMultEstimator interface {
	Estimate(log *Logger, p Problem, s *State, q Quantities, resetThreshold float64) bool
}

// Clock supplies wall-clock and CPU time readings in seconds. The CPU
// reading of the provided WallClock is wall-backed; callers with a real
// per-process CPU source inject their own.
type Clock interface {
	Wall() float64
	CPU() float64
}

// WallClock is the default timing source.
type WallClock struct{}

// Wall returns the current wall-clock time in seconds.
func (WallClock) Wall() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// CPU returns the wall-clock reading; see Clock.
func (c WallClock) CPU() float64 { return c.Wall() }

// FracToBound returns the largest alpha in (0,1] with
// z + alpha·dz >= (1-tau)·z elementwise, for strictly positive z.
// Helper for Quantities implementations.
func FracToBound(tau float64, z, dz vec.Dense) float64 {
	alpha := 1.0
	for i, d := range dz {
		if d < 0 {
			if a := -tau * z[i] / d; a < alpha {
				alpha = a
			}
		}
	}
	return alpha
}

// DualFracToBound applies FracToBound across the four bound-multiplier
// direction vectors and returns the common step.
func DualFracToBound(tau float64, zL, zU, vL, vU, dZL, dZU, dVL, dVU vec.Dense) float64 {
	alpha := FracToBound(tau, zL, dZL)
	if a := FracToBound(tau, zU, dZU); a < alpha {
		alpha = a
	}
	if a := FracToBound(tau, vL, dVL); a < alpha {
		alpha = a
	}
	if a := FracToBound(tau, vU, dVU); a < alpha {
		alpha = a
	}
	return alpha
}
