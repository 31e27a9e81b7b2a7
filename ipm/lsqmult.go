// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ruckstead/barrier/vec"
)

// Jacobians is implemented by problems that can expose their first-order
// information at the current iterate, enabling the least-squares multiplier
// estimate.
type Jacobians interface {
	GradF() vec.Dense
	JacC() mat.Matrix // equality constraint Jacobian, m_c × n
	JacD() mat.Matrix // inequality constraint Jacobian, m_d × n
}

// LeastSquaresEstimator estimates the constraint multipliers from the
// stationarity condition: it solves min ‖Jᵀy − ∇f‖₂ by QR and adopts the
// estimate when its largest magnitude stays within the reset threshold.
type LeastSquaresEstimator struct{}

// Estimate implements EqMultEstimator for problems exposing Jacobians.
// It reports false, leaving the multipliers unchanged, when the problem has
// no first-order surface, has more constraints than variables, the system is
// ill-conditioned, or the estimate exceeds resetThreshold.
func (LeastSquaresEstimator) Estimate(log *Logger, p Problem, s *State, q Quantities, resetThreshold float64) bool {
	jac, ok := p.(Jacobians)
	if !ok {
		return false
	}
	trial := s.Trial()
	if trial == nil {
		return false
	}

	n := p.NumVars()
	mc := p.NumEqConstraints()
	md := p.NumIneqConstraints()
	m := mc + md
	if m == 0 {
		return true
	}
	if m > n {
		// QR needs rows >= cols; stationarity is overdetermined in the
		// multipliers here anyway, so no meaningful estimate exists.
		log.Printf(LogDetailed, "Least-squares multiplier system has more constraints than variables (%d > %d), keeping multipliers.\n", m, n)
		return false
	}

	// Assemble Jᵀ = [JacCᵀ JacDᵀ] column-wise.
	jt := mat.NewDense(n, m, nil)
	if mc > 0 {
		jc := jac.JacC()
		for i := 0; i < mc; i++ {
			for j := 0; j < n; j++ {
				jt.Set(j, i, jc.At(i, j))
			}
		}
	}
	if md > 0 {
		jd := jac.JacD()
		for i := 0; i < md; i++ {
			for j := 0; j < n; j++ {
				jt.Set(j, mc+i, jd.At(i, j))
			}
		}
	}

	grad := jac.GradF()
	b := mat.NewVecDense(n, append([]float64(nil), grad...))

	var qr mat.QR
	qr.Factorize(jt)
	y := mat.NewVecDense(m, nil)
	if err := qr.SolveVecTo(y, false, b); err != nil {
		log.Printf(LogDetailed, "Least-squares multiplier system is rank deficient, keeping multipliers.\n")
		return false
	}

	amax := 0.0
	for i := 0; i < m; i++ {
		if a := math.Abs(y.AtVec(i)); a > amax {
			amax = a
		}
	}
	if math.IsNaN(amax) || math.IsInf(amax, 0) || amax > resetThreshold {
		log.Printf(LogDetailed, "Least-squares multipliers too large (max=%8.2e), keeping multipliers.\n", amax)
		return false
	}

	yc := vec.NewDense(mc)
	yd := vec.NewDense(md)
	for i := range yc {
		yc[i] = y.AtVec(i)
	}
	for i := range yd {
		yd[i] = y.AtVec(mc + i)
	}
	trial.YC, trial.YD = yc, yd
	return true
}

// LeastSquareMults applies the estimator to the trial multipliers and falls
// back to zero multipliers when no estimator is configured, the threshold
// disables estimation, or the estimate was rejected.
func LeastSquareMults(log *Logger, est EqMultEstimator, p Problem, s *State, q Quantities, resetThreshold float64) {
	if est != nil && resetThreshold > 0 {
		if est.Estimate(log, p, s, q, resetThreshold) {
			return
		}
	}
	trial := s.Trial()
	if trial == nil {
		return
	}
	yc := vec.NewDense(p.NumEqConstraints())
	yd := vec.NewDense(p.NumIneqConstraints())
	trial.YC, trial.YD = yc, yd
	log.Printf(LogDetailed, "Constraint multipliers reset to zero.\n")
}
