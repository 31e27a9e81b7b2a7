// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import (
	"errors"
	"fmt"

	"github.com/ruckstead/barrier/ipm"
	"github.com/ruckstead/barrier/vec"
)

// Phase configures a restoration-phase controller.
type Phase struct {
	// Solver is the recursive interior-point algorithm; required.
	Solver ipm.Solver
	// Quantities builds the derived-quantities object for the
	// restoration-space problem and state; required.
	Quantities func(ipm.Problem, *ipm.State) ipm.Quantities
	// Estimator recomputes the constraint multipliers after a successful
	// restoration; optional.
	Estimator ipm.EqMultEstimator
	// Clock is the timing source; defaults to the wall clock.
	Clock ipm.Clock
}

// New validates the configuration and creates a controller.
func (p *Phase) New(log *ipm.Logger) (*Controller, error) {
	switch {
	case p.Solver == nil:
		return nil, errors.New("resto: recursive solver is required")
	case p.Quantities == nil:
		return nil, errors.New("resto: quantities factory is required")
	}
	clock := p.Clock
	if clock == nil {
		clock = ipm.WallClock{}
	}
	return &Controller{
		log:      log,
		solver:   p.Solver,
		newQuant: p.Quantities,
		est:      p.Estimator,
		clock:    clock,
	}, nil
}

// Controller orchestrates one restoration attempt end to end: it builds the
// elastic problem, derives the nested options, invokes the recursive solver,
// classifies the result and splices the recovered point back into the outer
// state, recovering the dual variables from the primal movement.
type Controller struct {
	log      *ipm.Logger
	solver   ipm.Solver
	newQuant func(ipm.Problem, *ipm.State) ipm.Quantities
	est      ipm.EqMultEstimator
	clock    ipm.Clock

	// Snapshot of the options for the nested runs, with the
	// restoration-specific defaults applied. Immutable after Initialize.
	opts *ipm.Options

	boundMultReset   float64
	constrMultReset  float64
	failFeasibility  float64
	constrViolTol    float64
	expectInfeasible bool
	maxWallTime      float64
	maxCPUTime       float64

	count int
}

// Initialize reads the controller's tunables once and keeps a private copy
// of the options for the nested runs. It must be called before Perform.
func (c *Controller) Initialize(options *ipm.Options, prefix string) error {
	get := func(name, msg string, def float64) (float64, error) {
		v, ok := options.ScopedNumber(prefix, name)
		if !ok {
			v = def
		}
		if v < 0 {
			return 0, fmt.Errorf("resto: %s must not be negative", msg)
		}
		return v, nil
	}

	var err error
	if c.boundMultReset, err = get("bound_mult_reset_threshold", "bound multiplier reset threshold", 1e3); err != nil {
		return err
	}
	if c.constrMultReset, err = get("constr_mult_reset_threshold", "constraint multiplier reset threshold", 0); err != nil {
		return err
	}
	tol, err := get("tol", "convergence tolerance", 1e-8)
	if err != nil {
		return err
	}
	if c.failFeasibility, err = get("resto_failure_feasibility_threshold", "restoration failure feasibility threshold", 1e2*tol); err != nil {
		return err
	}
	if c.constrViolTol, err = get("constr_viol_tol", "constraint violation tolerance", 1e-4); err != nil {
		return err
	}
	if c.maxWallTime, err = get("max_wall_time", "wall time limit", unlimitedTime); err != nil {
		return err
	}
	if c.maxCPUTime, err = get("max_cpu_time", "CPU time limit", unlimitedTime); err != nil {
		return err
	}
	c.expectInfeasible, _ = options.ScopedBool(prefix, "expect_infeasible_problem")

	c.opts = options.Override()
	// The nested run must not enter restoration on its own first iteration
	// by user request.
	c.opts.SetStr("resto.start_with_resto", "no")
	// The violation growth factor is effectively removed as a rejection
	// criterion inside restoration, unless the caller set it explicitly.
	if _, ok := options.Number("resto.theta_max_fact"); !ok {
		c.opts.SetNumber("resto.theta_max_fact", 1e8)
	}

	c.count = 0
	return nil
}

// Count reports the number of restoration attempts so far. Diagnostics only.
func (c *Controller) Count() int { return c.count }

// Perform runs one restoration attempt against the outer problem, state and
// derived quantities. On OutcomeSuccess the outer trial iterate holds the
// recovered point with updated multipliers and the outer run continues; on
// OutcomeFeasibilityProblemSolved the trial point is accepted and the outer
// run ends. Every other outcome carries its sentinel error, after a
// best-effort transfer of the nested point for diagnostics.
func (c *Controller) Perform(p ipm.Problem, s *ipm.State, q ipm.Quantities) (Outcome, error) {
	c.count++
	c.log.Printf(ipm.LogDetailed, "Starting restoration phase for the %d. time\n", c.count)

	if !(q.CurrConstraintViolation() > 0) {
		panic("resto: restoration phase entered at a feasible point")
	}

	eProb, eState := buildElastic(p, s, q)
	eQuant := c.newQuant(eProb, eState)

	remWall, remCPU := unlimitedTime, unlimitedTime
	if c.maxWallTime < unlimitedTime {
		elapsed := c.clock.Wall() - s.StartWall
		if elapsed >= c.maxWallTime {
			c.log.Printf(ipm.LogSummary, "Maximal wallclock time exceeded at start of restoration phase.\n")
			return OutcomeWalltimeExceeded, ErrWalltimeExceeded
		}
		remWall = c.maxWallTime - elapsed
	}
	if c.maxCPUTime < unlimitedTime {
		elapsed := c.clock.CPU() - s.StartCPU
		if elapsed >= c.maxCPUTime {
			c.log.Printf(ipm.LogSummary, "Maximal CPU time exceeded at start of restoration phase.\n")
			return OutcomeCputimeExceeded, ErrCputimeExceeded
		}
		remCPU = c.maxCPUTime - elapsed
	}

	square := q.IsSquareProblem()
	opts := deriveOptions(c.opts, deriveState{
		square:           square,
		expectInfeasible: c.expectInfeasible,
		firstCall:        c.count == 1,
		currViolation:    q.CurrConstraintViolation(),
		remainingWall:    remWall,
		remainingCPU:     remCPU,
	})

	// Continue the outer run's progress reporting inside the nested run.
	eState.IterCount = s.IterCount + 1
	eState.Info = s.Info
	eState.Info.SkipOutput = false

	if err := c.solver.Initialize(c.log, eProb, eState, eQuant, opts, "resto."); err != nil {
		return OutcomeUnclassified, fmt.Errorf("resto: initialize nested solver: %w", err)
	}
	status := c.solver.Optimize(true)

	if status != ipm.Success {
		// Preserve whatever point the nested run reached, so it is
		// returned to the caller even on failure.
		if rc := eState.Curr(); rc != nil {
			if err := transferFailurePoint(s, rc); err != nil {
				return OutcomeUnclassified, fmt.Errorf("resto: transfer diagnostic point: %w", err)
			}
		}
	}

	outcome := Classify(status, square, q, Thresholds{
		ConstrViolTol:   c.constrViolTol,
		FailFeasibility: c.failFeasibility,
	})

	switch outcome {
	case OutcomeSuccess:
		return c.finishSuccess(p, s, q, eState, square)
	case OutcomeFeasibilityProblemSolved:
		c.log.Printf(ipm.LogDetailed, "Recursive restoration phase algorithm terminated acceptably for square problem.\n")
		return outcome, nil
	case OutcomeConvergedToFeasiblePoint:
		c.log.Printf(ipm.LogWarning, "Restoration phase converged to a point with small primal infeasibility.\n")
	case OutcomeRestorationFailed:
		if status == ipm.ErrorInStepComputation {
			c.log.Printf(ipm.LogWarning, "Step computation in the restoration phase failed.\n")
		} else {
			c.log.Printf(ipm.LogWarning, "Restoration phase in the restoration phase failed.\n")
		}
	case OutcomeUnclassified:
		c.log.Printf(ipm.LogError, "Restoration phase returned unrecognized status %v.\n", status)
	}
	return outcome, outcome.Err()
}

// finishSuccess transfers the recovered primal point into the outer trial
// iterate and rebuilds the dual information: a pseudo-Newton
// complementarity step for the bound multipliers, fraction-to-the-boundary
// limited, with a uniform reset fallback, and a least-squares estimate for
// the constraint multipliers.
func (c *Controller) finishSuccess(p ipm.Problem, s *ipm.State, q ipm.Quantities, eState *ipm.State, square bool) (Outcome, error) {
	if c.log.Enabled(ipm.LogDetailed) {
		c.log.Printf(ipm.LogDetailed, "\nRESTORATION PHASE RESULTS\n")
		c.log.Printf(ipm.LogDetailed, "Restoration problem solved in %d iterations.\n", eState.IterCount)
	}

	rx, err := vec.OriginalBlock(eState.Curr().X)
	if err != nil {
		return OutcomeUnclassified, fmt.Errorf("resto: transfer x: %w", err)
	}
	rs, err := vec.OriginalBlock(eState.Curr().S)
	if err != nil {
		return OutcomeUnclassified, fmt.Errorf("resto: transfer s: %w", err)
	}

	trial := s.Curr().Clone()
	trial.X, trial.S = rx.Clone(), rs.Clone()
	s.SetTrial(trial)

	// A square problem is done once the transferred point is sufficiently
	// feasible; there is nothing left to optimize.
	if square {
		if cv := q.UnscaledTrialConstraintViolation(); cv <= c.constrViolTol {
			c.log.Printf(ipm.LogDetailed, "Recursive restoration phase algorithm terminated successfully for square problem.\n")
			s.AcceptTrialPoint()
			return OutcomeFeasibilityProblemSolved, nil
		}
	}

	curr := s.Curr()
	in := &stepInputs{
		mu: s.Mu,
		zL: toDense(curr.ZL), zU: toDense(curr.ZU),
		vL: toDense(curr.VL), vU: toDense(curr.VU),
		slackXL0: q.CurrSlackXL(), slackXL1: q.TrialSlackXL(),
		slackXU0: q.CurrSlackXU(), slackXU1: q.TrialSlackXU(),
		slackSL0: q.CurrSlackSL(), slackSL1: q.TrialSlackSL(),
		slackSU0: q.CurrSlackSU(), slackSU1: q.TrialSlackSU(),
	}
	d := boundMultDeltas(in)

	alpha := q.DualFracToBound(s.Tau, d.zL, d.zU, d.vL, d.vU)
	c.log.Printf(ipm.LogDetailed, "Step size for bound multipliers: %8.2e\n", alpha)

	trial.ZL = addScaled(in.zL, alpha, d.zL)
	trial.ZU = addScaled(in.zU, alpha, d.zU)
	trial.VL = addScaled(in.vL, alpha, d.vL)
	trial.VU = addScaled(in.vU, alpha, d.vU)

	maxMult := maxOf(
		toDense(trial.ZL).Amax(), toDense(trial.ZU).Amax(),
		toDense(trial.VL).Amax(), toDense(trial.VU).Amax(),
	)
	if maxMult > c.boundMultReset {
		c.log.Printf(ipm.LogDetailed, "Bound multipliers after restoration phase too large (max=%8.2e). Set all to 1.\n", maxMult)
		trial.ZL = ones(len(in.zL))
		trial.ZU = ones(len(in.zU))
		trial.VL = ones(len(in.vL))
		trial.VU = ones(len(in.vU))
	}

	ipm.LeastSquareMults(c.log, c.est, p, s, q, c.constrMultReset)

	// The whole restoration phase counts as one outer iteration, and its
	// first progress line already appeared in the nested output.
	s.IterCount = eState.IterCount - 1
	s.Info.SkipOutput = true
	s.Info.ItersSinceHeader = eState.Info.ItersSinceHeader
	s.Info.LastOutput = eState.Info.LastOutput

	return OutcomeSuccess, nil
}

// transferFailurePoint copies the primal and dual values of the nested
// current iterate into the outer trial iterate and accepts it, so the best
// available point is reported to the caller.
func transferFailurePoint(s *ipm.State, rc *ipm.Iterate) error {
	trial := s.Curr().Clone()
	for _, f := range []struct {
		name string
		src  vec.Vector
		dst  *vec.Vector
	}{
		{"x", rc.X, &trial.X},
		{"s", rc.S, &trial.S},
		{"y_c", rc.YC, &trial.YC},
		{"y_d", rc.YD, &trial.YD},
		{"z_L", rc.ZL, &trial.ZL},
		{"z_U", rc.ZU, &trial.ZU},
		{"v_L", rc.VL, &trial.VL},
		{"v_U", rc.VU, &trial.VU},
	} {
		orig, err := vec.OriginalBlock(f.src)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = orig.Clone()
	}
	s.SetTrial(trial)
	s.AcceptTrialPoint()
	return nil
}

func addScaled(z vec.Dense, alpha float64, dz vec.Dense) vec.Dense {
	r := z.Clone()
	r.Axpy(alpha, dz)
	return r
}

func maxOf(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
