// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import (
	"math"
	"testing"

	"github.com/ruckstead/barrier/vec"
)

func almostEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestBoundMultStep(t *testing.T) {

	// s0=2, s1=1, z=3, mu=0.1 gives (1·3+0.1)/2 - 3 = -1.45.
	d := vec.NewDense(1)
	boundMultStep(d, vec.Dense{3}, vec.Dense{2}, vec.Dense{1}, 0.1)
	if !almostEqual(d, []float64{-1.45}, 1e-15) {
		t.Fatal("TestBoundMultStep: Bad Step")
	}

	// Elementwise across components.
	d = vec.NewDense(2)
	boundMultStep(d, vec.Dense{5, 5}, vec.Dense{1, 2}, vec.Dense{0.8, 1.5}, 0.01)
	if !almostEqual(d, []float64{-3.99, -3.745}, 1e-12) {
		t.Fatal("TestBoundMultStep: Bad Components")
	}

	// Stationary slacks leave the pure centering correction mu/s0 - z.
	d = vec.NewDense(1)
	boundMultStep(d, vec.Dense{2}, vec.Dense{4}, vec.Dense{4}, 0.2)
	if !almostEqual(d, []float64{0.2/4.0 - 2}, 1e-15) {
		t.Fatal("TestBoundMultStep: Bad Stationary Step")
	}
}

func TestBoundMultDeltas(t *testing.T) {

	s0 := vec.Dense{1, 2}
	s1 := vec.Dense{0.8, 1.5}
	z := vec.Dense{5, 5}

	in := &stepInputs{
		mu: 0.01,
		zL: z, zU: z, vL: z, vU: z,
		slackXL0: s0, slackXL1: s1,
		slackXU0: s0, slackXU1: s1,
		slackSL0: s0, slackSL1: s1,
		slackSU0: s0, slackSU1: s1,
	}
	d := boundMultDeltas(in)

	want := []float64{-3.99, -3.745}
	switch {
	case !almostEqual(d.zL, want, 1e-12):
		t.Fatal("TestBoundMultDeltas: Bad zL")
	case !almostEqual(d.zU, want, 1e-12):
		t.Fatal("TestBoundMultDeltas: Bad zU")
	case !almostEqual(d.vL, want, 1e-12):
		t.Fatal("TestBoundMultDeltas: Bad vL")
	case !almostEqual(d.vU, want, 1e-12):
		t.Fatal("TestBoundMultDeltas: Bad vU")
	case !almostEqual(z, []float64{5, 5}, 0):
		t.Fatal("TestBoundMultDeltas: Inputs Mutated")
	}
}
