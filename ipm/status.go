// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipm holds the vocabulary shared between the primary interior-point
// algorithm and the restoration phase: termination statuses, the level-gated
// logger, layered options, iterate containers and the collaborator contracts
// the restoration controller consumes.
package ipm

// Status is the termination status returned by the interior-point algorithm.
// Programs should not rely on the underlying numeric value being constant.
type Status int

const (
	// Success the algorithm converged to a point satisfying the
	// optimality tolerances.
	Success Status = iota
	// MaxIterExceeded the iteration limit was reached.
	MaxIterExceeded
	// CPUTimeExceeded the CPU-time budget was exhausted.
	CPUTimeExceeded
	// WallTimeExceeded the wall-clock budget was exhausted.
	WallTimeExceeded
	// StopAtTinyStep the search could not make further progress.
	StopAtTinyStep
	// StopAtAcceptablePoint the relaxed "acceptable" tolerances held for
	// the required number of iterations.
	StopAtAcceptablePoint
	// LocalInfeasibility the algorithm converged to a stationary point of
	// the constraint violation that is not feasible.
	LocalInfeasibility
	// UserRequestedStop an intermediate callback asked for termination.
	UserRequestedStop
	// FeasiblePointFound a feasible point was found for a square problem.
	FeasiblePointFound
	// DivergingIterates the iterates grew beyond the divergence threshold.
	DivergingIterates
	// RestorationFailure the restoration phase inside the run failed.
	RestorationFailure
	// ErrorInStepComputation the search direction could not be computed.
	ErrorInStepComputation
	// InvalidNumberDetected a NaN or Inf appeared in a function or
	// derivative evaluation.
	InvalidNumberDetected
	// InternalError an unrecoverable inconsistency was detected.
	InternalError
)

var statusNames = map[Status]string{
	Success:                "Success",
	MaxIterExceeded:        "MaxIterExceeded",
	CPUTimeExceeded:        "CPUTimeExceeded",
	WallTimeExceeded:       "WallTimeExceeded",
	StopAtTinyStep:         "StopAtTinyStep",
	StopAtAcceptablePoint:  "StopAtAcceptablePoint",
	LocalInfeasibility:     "LocalInfeasibility",
	UserRequestedStop:      "UserRequestedStop",
	FeasiblePointFound:     "FeasiblePointFound",
	DivergingIterates:      "DivergingIterates",
	RestorationFailure:     "RestorationFailure",
	ErrorInStepComputation: "ErrorInStepComputation",
	InvalidNumberDetected:  "InvalidNumberDetected",
	InternalError:          "InternalError",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UnknownStatus"
}
