// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"testing"

	"github.com/ruckstead/barrier/vec"
)

func TestFracToBound(t *testing.T) {

	// z=4, dz=-2: the full step keeps z positive, alpha stays 1.
	if a := FracToBound(0.99, vec.Dense{4}, vec.Dense{-2}); a != 1 {
		t.Fatalf("TestFracToBound: got %v", a)
	}

	// z=1, dz=-2 would cross zero at 0.5; tau=0.99 limits to 0.495.
	if a := FracToBound(0.99, vec.Dense{1}, vec.Dense{-2}); a != 0.495 {
		t.Fatalf("TestFracToBound: got %v", a)
	}

	// Nonnegative directions never restrict the step.
	if a := FracToBound(0.99, vec.Dense{1e-12, 1e-12}, vec.Dense{0, 3}); a != 1 {
		t.Fatal("TestFracToBound: Nonnegative Direction Restricted")
	}

	// The binding component wins across the vector.
	a := FracToBound(0.5, vec.Dense{10, 1}, vec.Dense{-1, -4})
	if a != 0.125 {
		t.Fatalf("TestFracToBound: got %v", a)
	}
}

func TestDualFracToBound(t *testing.T) {

	z := vec.Dense{1}
	free := vec.Dense{1}

	// Only the third pair restricts: -0.99*1/-2 = 0.495.
	a := DualFracToBound(0.99, z, z, z, z, free, free, vec.Dense{-2}, free)
	if a != 0.495 {
		t.Fatalf("TestDualFracToBound: got %v", a)
	}

	// The minimum over the four pairs is taken.
	a = DualFracToBound(0.99, z, z, z, z, vec.Dense{-2}, vec.Dense{-4}, free, free)
	if a != 0.2475 {
		t.Fatalf("TestDualFracToBound: got %v", a)
	}
}

func TestStateTrialLifecycle(t *testing.T) {

	it := &Iterate{X: vec.Dense{1, 2}, ZL: vec.Dense{3}}
	s := NewState(it)

	if s.Curr() != it || s.Trial() != nil {
		t.Fatal("TestStateTrialLifecycle: Bad Initial State")
	}

	trial := it.Clone()
	trial.X.(vec.Dense)[0] = 9
	s.SetTrial(trial)
	if s.Curr().X.(vec.Dense)[0] != 1 {
		t.Fatal("TestStateTrialLifecycle: Trial Aliases Current")
	}

	s.AcceptTrialPoint()
	switch {
	case s.Curr() != trial:
		t.Fatal("TestStateTrialLifecycle: Trial Not Promoted")
	case s.Trial() != nil:
		t.Fatal("TestStateTrialLifecycle: Trial Not Cleared")
	}
}
