// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// osterberg computes σz under the axis of a symmetric embankment by Osterberg's chart formula
func osterberg(a, b, q, z float64) float64 {
	α1 := math.Atan((a+b)/z) - math.Atan(b/z)
	α2 := math.Atan(b / z)
	return 2 * (q / math.Pi) * (((a+b)/a)*(α1+α2) - (b/a)*α2)
}

func Test_trapezoid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trapezoid01")

	var sol Trapezoid
	err := sol.Init(dbf.Params{
		&dbf.P{N: "a1", V: 2},
		&dbf.P{N: "a2", V: 2},
		&dbf.P{N: "b", V: 1.5},
		&dbf.P{N: "q", V: 100},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// symmetric embankment: axis values; y is ignored
	zz := []float64{0.5, 1, 3, 8}
	pts := make([][]float64, len(zz))
	for i, z := range zz {
		pts[i] = []float64{0, float64(i) * 10, z}
	}
	res, err := sol.Stresses(pts)
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	io.Pforan("σz = %v\n", res.Sz)
	for i, z := range zz {
		chk.Float64(tst, io.Sf("σz @ z=%g", z), 1e-12, res.Sz[i], osterberg(2, 1.5, 100, z))
	}
	chk.Float64(tst, "σz @ z=3", 1e-10, res.Sz[2], 73.91549554270411)
}

func Test_trapezoid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trapezoid02. surface")

	sol := Trapezoid{A1: 2, A2: 3, B: 1.5, Q: 100}
	res, err := sol.Stresses([][]float64{
		{0, 0, 0},      // crest
		{-2.5, 0, 0},   // middle of left slope
		{3, 0, 0},      // middle of right slope
		{-10, 0, 0},    // outside
		{0.3, 0, 1e-9}, // just below crest
	})
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	io.Pforan("σz = %v\n", res.Sz)
	chk.Float64(tst, "σz @ crest", 1e-10, res.Sz[0], 100)
	chk.Float64(tst, "σz @ left slope", 1e-10, res.Sz[1], 50)
	chk.Float64(tst, "σz @ outside", 1e-10, res.Sz[3], 0)
	chk.Float64(tst, "σz @ 0⁺", 1e-6, res.Sz[4], 100)
}

func Test_trapezoid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("trapezoid03. degenerate")

	// a1 = 0 and a2 = 0 are replaced by ϵ: finite results
	for _, sol := range []Trapezoid{
		{A1: 0, A2: 3, B: 1.5, Q: 100},
		{A1: 2, A2: 0, B: 1.5, Q: 100},
		{A1: 2, A2: 3, B: 0, Q: 100},
	} {
		res, err := sol.Stresses([][]float64{{0, 0, 1}, {2, 0, 4}})
		if err != nil {
			tst.Errorf("Stresses failed: %v\n", err)
			return
		}
		for i, v := range res.Sz {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Errorf("σz[%d] = %v is not finite (a1=%g, a2=%g)\n", i, v, sol.A1, sol.A2)
			}
		}
	}

	// errors
	sol := Trapezoid{A1: 2, A2: 3, B: -1, Q: 100}
	if _, err := sol.Stresses([][]float64{{0, 0, 1}}); !IsDomainError(err) {
		tst.Errorf("b<0 should fail with DomainError. err = %v\n", err)
	}
	sol = Trapezoid{A1: 2, A2: 3, B: 1, Q: 100}
	if _, err := sol.Stresses([][]float64{{0, 0, -1}}); !IsDomainError(err) {
		tst.Errorf("z<0 should fail with DomainError. err = %v\n", err)
	}
}
