// Copyright ©2026 ruckstead. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resto

import (
	"math"
	"testing"

	"github.com/ruckstead/barrier/ipm"
	"github.com/ruckstead/barrier/vec"
)

func TestElasticSplit(t *testing.T) {

	c := vec.Dense{0.5, -0.2, 0, 1e-8}
	n, p := elasticSplit(c, 0.1)

	for i := range c {
		switch {
		case n[i] <= 0:
			t.Fatalf("TestElasticSplit: n[%d] not interior", i)
		case p[i] <= 0:
			t.Fatalf("TestElasticSplit: p[%d] not interior", i)
		case math.Abs((p[i]-n[i])-c[i]) > 1e-12:
			t.Fatalf("TestElasticSplit: split inconsistent at %d", i)
		}
	}

	// A zero barrier parameter must still produce an interior split.
	n, p = elasticSplit(vec.Dense{0.3}, 0)
	if n[0] <= 0 || p[0] <= 0 {
		t.Fatal("TestElasticSplit: Zero Mu Not Interior")
	}
}

func TestBuildElastic(t *testing.T) {

	outer := newOuterState()
	p := plainProblem{n: 2, mc: 1, md: 1}
	q := &fakeQuant{viol: 0.5, resid: vec.Dense{0.4, -0.1}}

	ep, es := buildElastic(p, outer, q)

	switch {
	case ep.NumVars() != 2+2*2:
		t.Fatal("TestBuildElastic: Bad Elastic Dimension")
	case ep.NumEqConstraints() != 1 || ep.NumIneqConstraints() != 1:
		t.Fatal("TestBuildElastic: Constraints Not Kept")
	case ep.Original() != ipm.Problem(p):
		t.Fatal("TestBuildElastic: Original Not Wrapped")
	case es.Mu != outer.Mu || es.Tau != outer.Tau:
		t.Fatal("TestBuildElastic: Parameters Not Carried")
	case es.StartWall != outer.StartWall || es.StartCPU != outer.StartCPU:
		t.Fatal("TestBuildElastic: Timing Not Carried")
	}

	// Every restoration vector is composite with block 0 equal to (a copy
	// of) the original-space vector.
	it := es.Curr()
	x0, err := vec.OriginalBlock(it.X)
	if err != nil || !almostEqual(x0, toDense(outer.Curr().X), 0) {
		t.Fatal("TestBuildElastic: X Block 0 Broken")
	}
	cx, _ := vec.AsComposite(it.X)
	if cx.NumBlocks() != 3 {
		t.Fatal("TestBuildElastic: Missing Elastic Blocks")
	}
	nb, _ := cx.Block(1)
	pb, _ := cx.Block(2)
	for i := range nb {
		if nb[i] <= 0 || pb[i] <= 0 {
			t.Fatal("TestBuildElastic: Elastic Variables Not Interior")
		}
	}

	for name, v := range map[string]vec.Vector{
		"s": it.S, "y_c": it.YC, "y_d": it.YD,
		"z_L": it.ZL, "z_U": it.ZU, "v_L": it.VL, "v_U": it.VU,
	} {
		if _, err := vec.OriginalBlock(v); err != nil {
			t.Fatalf("TestBuildElastic: %s not composite", name)
		}
	}

	// The fresh containers must not alias the outer iterate.
	x0[0] = 1e9
	if toDense(outer.Curr().X)[0] == 1e9 {
		t.Fatal("TestBuildElastic: Aliases Outer State")
	}

	zl, _ := vec.AsComposite(it.ZL)
	if zl.NumBlocks() != 3 {
		t.Fatal("TestBuildElastic: Elastic Bound Multipliers Missing")
	}
	zn, _ := zl.Block(1)
	if !almostEqual(zn, []float64{1, 1}, 0) {
		t.Fatal("TestBuildElastic: Elastic Multipliers Not Unit")
	}
}
