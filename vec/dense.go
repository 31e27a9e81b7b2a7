// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec provides the dense and block-partitioned vectors used by the
// interior-point iterate containers.
package vec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is any vector an iterate container may hold: a plain Dense vector in
// original space, or a Composite in restoration space.
type Vector interface {
	Len() int
}

// Dense is a contiguous vector of float64 values.
type Dense []float64

// NewDense returns a zero vector of length n.
func NewDense(n int) Dense {
	return make(Dense, n)
}

// Len returns the number of elements.
func (v Dense) Len() int { return len(v) }

// Clone returns a deep copy of v.
func (v Dense) Clone() Dense {
	c := make(Dense, len(v))
	copy(c, v)
	return c
}

// CopyFrom overwrites v with the values of x.
func (v Dense) CopyFrom(x Dense) {
	if len(v) != len(x) {
		panic("vec: dimension mismatch")
	}
	copy(v, x)
}

// Fill sets every element of v to alpha.
func (v Dense) Fill(alpha float64) {
	for i := range v {
		v[i] = alpha
	}
}

// Axpy adds alpha·x to v in place.
func (v Dense) Axpy(alpha float64, x Dense) {
	if len(v) != len(x) {
		panic("vec: dimension mismatch")
	}
	floats.AddScaled(v, alpha, x)
}

// MulEq multiplies v elementwise by x.
func (v Dense) MulEq(x Dense) {
	if len(v) != len(x) {
		panic("vec: dimension mismatch")
	}
	floats.Mul(v, x)
}

// DivEq divides v elementwise by x.
func (v Dense) DivEq(x Dense) {
	if len(v) != len(x) {
		panic("vec: dimension mismatch")
	}
	floats.Div(v, x)
}

// AddConst adds alpha to every element of v.
func (v Dense) AddConst(alpha float64) {
	floats.AddConst(alpha, v)
}

// Scale multiplies every element of v by alpha.
func (v Dense) Scale(alpha float64) {
	floats.Scale(alpha, v)
}

// Dot returns the inner product of v and x.
func (v Dense) Dot(x Dense) float64 {
	if len(v) != len(x) {
		panic("vec: dimension mismatch")
	}
	return floats.Dot(v, x)
}

// Amax returns the largest absolute element of v, zero for an empty vector.
func (v Dense) Amax() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm([]float64(v), math.Inf(1))
}

// Nrm2 returns the Euclidean norm of v.
func (v Dense) Nrm2() float64 {
	return floats.Norm([]float64(v), 2)
}
