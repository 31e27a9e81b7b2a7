// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import "github.com/ruckstead/barrier/ipm"

// Thresholds are the diagnostic tolerances consulted by the classifier.
type Thresholds struct {
	// ConstrViolTol is the overall constraint-violation tolerance.
	ConstrViolTol float64
	// FailFeasibility separates "converged to a feasible point" from
	// "locally infeasible" when the nested run stalls. Defaults to 100×
	// the overall convergence tolerance.
	FailFeasibility float64
}

// Classify maps the nested solver's termination status onto one outcome tag,
// first match wins. Every status maps to exactly one tag; anything outside
// the known set is Unclassified.
func Classify(status ipm.Status, square bool, q ipm.Quantities, th Thresholds) Outcome {
	switch {
	case status == ipm.Success:
		return OutcomeSuccess
	case square && status == ipm.StopAtAcceptablePoint &&
		q.UnscaledCurrConstraintViolation() < th.ConstrViolTol:
		// Feasible w.r.t. the violation tolerance, though not optimal.
		return OutcomeFeasibilityProblemSolved
	case status == ipm.StopAtTinyStep || status == ipm.StopAtAcceptablePoint:
		if q.CurrPrimalInfeasibility() <= th.FailFeasibility {
			return OutcomeConvergedToFeasiblePoint
		}
		return OutcomeLocallyInfeasible
	case status == ipm.MaxIterExceeded:
		return OutcomeMaxIterExceeded
	case status == ipm.CPUTimeExceeded:
		return OutcomeCputimeExceeded
	case status == ipm.WallTimeExceeded:
		return OutcomeWalltimeExceeded
	case status == ipm.LocalInfeasibility:
		return OutcomeLocallyInfeasible
	case status == ipm.RestorationFailure || status == ipm.ErrorInStepComputation:
		return OutcomeRestorationFailed
	case status == ipm.UserRequestedStop:
		return OutcomeUserStop
	}
	return OutcomeUnclassified
}
