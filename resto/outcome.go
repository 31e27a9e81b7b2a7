// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resto implements the restoration phase of the interior-point
// algorithm: when the primary trajectory stalls at an infeasible point, a
// recursive run minimizes the constraint violation of an elastic reformulation
// and the recovered point is spliced back into the outer state.
package resto

import "errors"

// Outcome is the classified result of one restoration attempt. Exactly one
// tag is produced per attempt.
type Outcome int

const (
	// OutcomeSuccess the restoration problem was solved and the recovered
	// point was installed as the outer trial point; the outer run continues.
	OutcomeSuccess Outcome = iota
	// OutcomeFeasibilityProblemSolved a square problem reached a
	// sufficiently feasible point; terminal for the outer run.
	OutcomeFeasibilityProblemSolved
	// OutcomeConvergedToFeasiblePoint the nested run stalled but the primal
	// infeasibility is small; report feasible-but-not-optimal.
	OutcomeConvergedToFeasiblePoint
	// OutcomeLocallyInfeasible the nested run converged to a local minimizer
	// of the constraint violation that is not feasible.
	OutcomeLocallyInfeasible
	// OutcomeMaxIterExceeded the nested iteration limit was reached.
	OutcomeMaxIterExceeded
	// OutcomeWalltimeExceeded the wall-clock budget ran out.
	OutcomeWalltimeExceeded
	// OutcomeCputimeExceeded the CPU-time budget ran out.
	OutcomeCputimeExceeded
	// OutcomeRestorationFailed the nested run failed in its own restoration
	// phase or step computation.
	OutcomeRestorationFailed
	// OutcomeUserStop the user requested termination during the nested run.
	OutcomeUserStop
	// OutcomeUnclassified the nested status matched no known kind;
	// unrecoverable, reported up without further interpretation.
	OutcomeUnclassified
)

var (
	ErrConvergedToFeasiblePoint = errors.New("resto: converged to a point with small primal infeasibility")
	ErrLocallyInfeasible        = errors.New("resto: converged to a point of local infeasibility")
	ErrMaxIterExceeded          = errors.New("resto: maximal number of iterations exceeded")
	ErrWalltimeExceeded         = errors.New("resto: maximal wallclock time exceeded")
	ErrCputimeExceeded          = errors.New("resto: maximal CPU time exceeded")
	ErrRestorationFailed        = errors.New("resto: restoration phase failed")
	ErrUserStop                 = errors.New("resto: user requested stop")
	ErrUnclassified             = errors.New("resto: unclassified termination status")
)

var outcomes = map[Outcome]struct {
	name string
	err  error
}{
	OutcomeSuccess:                  {name: "Success"},
	OutcomeFeasibilityProblemSolved: {name: "FeasibilityProblemSolved"},
	OutcomeConvergedToFeasiblePoint: {name: "ConvergedToFeasiblePoint", err: ErrConvergedToFeasiblePoint},
	OutcomeLocallyInfeasible:        {name: "LocallyInfeasible", err: ErrLocallyInfeasible},
	OutcomeMaxIterExceeded:          {name: "MaxIterExceeded", err: ErrMaxIterExceeded},
	OutcomeWalltimeExceeded:         {name: "WalltimeExceeded", err: ErrWalltimeExceeded},
	OutcomeCputimeExceeded:          {name: "CputimeExceeded", err: ErrCputimeExceeded},
	OutcomeRestorationFailed:        {name: "RestorationFailed", err: ErrRestorationFailed},
	OutcomeUserStop:                 {name: "UserStop", err: ErrUserStop},
	OutcomeUnclassified:             {name: "Unclassified", err: ErrUnclassified},
}

func (o Outcome) String() string {
	if v, ok := outcomes[o]; ok {
		return v.name
	}
	return "UnknownOutcome"
}

// Err returns the sentinel error carried to the caller, nil for the two
// continuable/terminal success tags.
func (o Outcome) Err() error {
	if v, ok := outcomes[o]; ok {
		return v.err
	}
	return ErrUnclassified
}
