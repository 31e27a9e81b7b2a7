// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import "github.com/ruckstead/barrier/vec"

// Iterate is the primal-dual point of one solver level: structural variables
// and slacks, equality and inequality constraint multipliers, and the four
// bound multipliers (lower/upper on variables, lower/upper on slacks).
// Fields hold vec.Dense in original space and *vec.Composite in restoration
// space, where block 0 is the original-space vector.
type Iterate struct {
	X, S   vec.Vector
	YC, YD vec.Vector
	ZL, ZU vec.Vector
	VL, VU vec.Vector
}

func cloneVector(v vec.Vector) vec.Vector {
	switch t := v.(type) {
	case vec.Dense:
		return t.Clone()
	case *vec.Composite:
		if t == nil {
			return nil
		}
		blocks := make([]vec.Dense, t.NumBlocks())
		for i := range blocks {
			b, _ := t.Block(i)
			blocks[i] = b.Clone()
		}
		return vec.NewComposite(blocks...)
	case nil:
		return nil
	}
	panic("ipm: unknown vector kind")
}

// Clone returns a deep copy of the iterate.
func (it *Iterate) Clone() *Iterate {
	if it == nil {
		return nil
	}
	return &Iterate{
		X: cloneVector(it.X), S: cloneVector(it.S),
		YC: cloneVector(it.YC), YD: cloneVector(it.YD),
		ZL: cloneVector(it.ZL), ZU: cloneVector(it.ZU),
		VL: cloneVector(it.VL), VU: cloneVector(it.VU),
	}
}

// Info carries the progress-reporting diagnostics threaded through nested
// runs so output remains continuous across a restoration phase.
type Info struct {
	ReguX            float64 // last Hessian regularization
	AlphaPrimal      float64 // last primal step size
	AlphaPrimalChar  byte    // step-acceptance tag printed next to it
	AlphaDual        float64 // last dual step size
	LSCount          int     // line-search trials of the last iteration
	ItersSinceHeader int     // iterations since the last output header
	LastOutput       float64 // wall time of the last progress line
	SkipOutput       bool    // suppress the next progress line
}

// State owns the mutable per-run data of one solver level: current and trial
// iterates, the barrier and fraction-to-the-boundary parameters, iteration
// and timing counters, and the output diagnostics.
type State struct {
	curr, trial *Iterate

	Mu  float64 // barrier parameter
	Tau float64 // fraction-to-the-boundary parameter

	IterCount int
	Info      Info

	// Run start readings of the timing source, in seconds.
	StartWall float64
	StartCPU  float64
}

// NewState returns a state whose current iterate is it.
func NewState(it *Iterate) *State {
	return &State{curr: it}
}

// Curr returns the current iterate. The restoration controller only reads it.
func (s *State) Curr() *Iterate { return s.curr }

// Trial returns the pending trial iterate, nil when none is set.
func (s *State) Trial() *Iterate { return s.trial }

// SetTrial installs it as the pending trial iterate.
func (s *State) SetTrial(it *Iterate) { s.trial = it }

// AcceptTrialPoint promotes the trial iterate to current.
func (s *State) AcceptTrialPoint() {
	if s.trial == nil {
		return
	}
	s.curr = s.trial
	s.trial = nil
}
