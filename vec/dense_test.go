// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec

import (
	"math"
	"testing"
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

func TestDenseKernels(t *testing.T) {

	v := Dense{1, 2, 3}
	v.Axpy(2, Dense{1, 1, 1})
	if !almostEqual(v, []float64{3, 4, 5}, 0) {
		t.Fatal("TestDenseKernels: Axpy")
	}

	v.MulEq(Dense{2, 0.5, 1})
	if !almostEqual(v, []float64{6, 2, 5}, 0) {
		t.Fatal("TestDenseKernels: MulEq")
	}

	v.DivEq(Dense{2, 2, 5})
	if !almostEqual(v, []float64{3, 1, 1}, 0) {
		t.Fatal("TestDenseKernels: DivEq")
	}

	v.AddConst(-1)
	if !almostEqual(v, []float64{2, 0, 0}, 0) {
		t.Fatal("TestDenseKernels: AddConst")
	}

	v.Scale(3)
	if !almostEqual(v, []float64{6, 0, 0}, 0) {
		t.Fatal("TestDenseKernels: Scale")
	}

	w := Dense{-4, 1, 3}
	switch {
	case w.Amax() != 4:
		t.Fatal("TestDenseKernels: Amax")
	case w.Dot(Dense{1, 1, 1}) != 0:
		t.Fatal("TestDenseKernels: Dot")
	case math.Abs(w.Nrm2()-math.Sqrt(26)) > 1e-15:
		t.Fatal("TestDenseKernels: Nrm2")
	}

	c := w.Clone()
	c[0] = 7
	if w[0] != -4 {
		t.Fatal("TestDenseKernels: Clone Aliases")
	}

	var empty Dense
	if empty.Amax() != 0 {
		t.Fatal("TestDenseKernels: Empty Amax")
	}
}

func TestDenseDimensionPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("TestDenseDimensionPanic: No Panic")
		}
	}()
	v := Dense{1, 2}
	v.Axpy(1, Dense{1})
}

func TestDenseFill(t *testing.T) {
	v := NewDense(4)
	v.Fill(1)
	if !almostEqual(v, []float64{1, 1, 1, 1}, 0) {
		t.Fatal("TestDenseFill: Bad Values")
	}
}
