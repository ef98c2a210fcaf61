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
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_strip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strip01")

	var sol Strip
	err := sol.Init(dbf.Params{
		&dbf.P{N: "B", V: 2},
		&dbf.P{N: "q", V: 100},
		&dbf.P{N: "nu", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	res, err := sol.Stresses([][]float64{
		{0, 0, 1},
		{1.5, 0, 2},
		{-1.5, 7, 2},
	})
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	io.Pforan("σz = %v\n", res.Sz)

	// under the centre: α = 2 atan(b/z) and β = 0
	α := math.Pi / 2.0
	chk.Float64(tst, "σz @ centre", 1e-12, res.Sz[0], (100/math.Pi)*(α+math.Sin(α)))
	chk.Float64(tst, "σx @ centre", 1e-12, res.Sx[0], (100/math.Pi)*(α-math.Sin(α)))
	chk.Float64(tst, "σy @ centre", 1e-12, res.Sy[0], 0.3*res.Sz[0])
	chk.Float64(tst, "τxz @ centre", 1e-12, res.Txz[0], 0)

	// off-centre
	chk.Float64(tst, "σz @ x=1.5", 1e-12, res.Sz[1], 28.762082850356244)
	chk.Float64(tst, "σx @ x=1.5", 1e-12, res.Sx[1], 12.68674856962535)
	chk.Float64(tst, "τxz @ x=1.5", 1e-12, res.Txz[1], 17.536728306251884)

	// symmetry; y is irrelevant
	chk.Float64(tst, "σz @ x=-1.5", 1e-12, res.Sz[2], res.Sz[1])
	chk.Float64(tst, "σx @ x=-1.5", 1e-12, res.Sx[2], res.Sx[1])
	chk.Float64(tst, "τxz @ x=-1.5", 1e-12, res.Txz[2], -res.Txz[1])
}

func Test_strip02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strip02. free surface")

	for _, B := range []float64{0.5, 2, 10} {
		for _, q := range []float64{10, 100} {
			sol := Strip{B: B, Q: q, Nu: 0.25}
			b := B / 2
			res, err := sol.Stresses([][]float64{
				{0, 0, 0},
				{0.5 * b, 3, 0},
				{b, 0, 0},
				{-b, 0, 0},
				{1.5 * b, 0, 0},
				{-3 * b, 0, 0},
			})
			if err != nil {
				tst.Errorf("Stresses failed: %v\n", err)
				return
			}
			chk.Array(tst, "σz", 1e-15, res.Sz, []float64{q, q, q / 2, q / 2, 0, 0})
			chk.Array(tst, "σx", 1e-15, res.Sx, make([]float64, 6))
			chk.Array(tst, "σy", 1e-15, res.Sy, make([]float64, 6))
			chk.Array(tst, "τxz", 1e-15, res.Txz, make([]float64, 6))
		}
	}

	// continuity just below the surface
	sol := Strip{B: 2, Q: 100, Nu: 0.3}
	res, err := sol.Stresses([][]float64{{0, 0, 1e-6}, {3, 0, 1e-6}})
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	chk.Float64(tst, "σz @ 0⁺ inside", 1e-3, res.Sz[0], 100)
	chk.Float64(tst, "σz @ 0⁺ outside", 1e-3, res.Sz[1], 0)
}

func Test_strip03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strip03. rotation")

	xc, yc, θdeg := 1.0, -2.0, 30.0
	rotated := Strip{B: 3, Q: 80, Nu: 0.2, Rot: θdeg, Xc: xc, Yc: yc}
	straight := Strip{B: 3, Q: 80, Nu: 0.2, Xc: xc, Yc: yc}

	// inverse-rotated points about the centre
	pts := [][]float64{{0, 0, 1}, {2.5, -1, 0.7}, {-3, 4, 5}, {1, -2, 2}}
	θ := -θdeg * math.Pi / 180
	inv := utl.Alloc(len(pts), 3)
	for i, p := range pts {
		dx, dy := p[0]-xc, p[1]-yc
		inv[i][0] = xc + math.Cos(θ)*dx - math.Sin(θ)*dy
		inv[i][1] = yc + math.Sin(θ)*dx + math.Cos(θ)*dy
		inv[i][2] = p[2]
	}

	r1, err := rotated.Stresses(pts)
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	r2, err := straight.Stresses(inv)
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	chk.Array(tst, "σz", 1e-12, r1.Sz, r2.Sz)
	chk.Array(tst, "σx", 1e-12, r1.Sx, r2.Sx)
	chk.Array(tst, "σy", 1e-12, r1.Sy, r2.Sy)
	chk.Array(tst, "τxz", 1e-12, r1.Txz, r2.Txz)

	// 90° turns x into y
	sol := Strip{B: 2, Q: 100, Rot: 90}
	res, err := sol.Stresses([][]float64{{0, 0.5, 1}, {7, 0.5, 1}})
	if err != nil {
		tst.Errorf("Stresses failed: %v\n", err)
		return
	}
	ref, _ := (&Strip{B: 2, Q: 100}).Stresses([][]float64{{0.5, 0, 1}})
	chk.Float64(tst, "σz(90°)", 1e-12, res.Sz[0], ref.Sz[0])
	chk.Float64(tst, "σz(90°) along length", 1e-12, res.Sz[1], ref.Sz[0])
}

func Test_strip04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strip04. errors")

	var sol Strip
	if err := sol.Init(dbf.Params{&dbf.P{N: "B", V: 0}}); !IsDomainError(err) {
		tst.Errorf("B=0 should fail with DomainError. err = %v\n", err)
	}
	sol = Strip{B: -1, Q: 100}
	if res, err := sol.Stresses([][]float64{{0, 0, 1}}); !IsDomainError(err) || res != nil {
		tst.Errorf("B<0 should fail with DomainError and no results. err = %v\n", err)
	}
	sol = Strip{B: 1, Q: 100}
	if res, err := sol.Stresses([][]float64{{0, 0, 1}, {0, 0, -0.1}}); !IsDomainError(err) || res != nil {
		tst.Errorf("z<0 should fail with DomainError and no results. err = %v\n", err)
	}
}

func Test_strip05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strip05. plot")

	if chk.Verbose {
		sol := Strip{B: 2, Q: 100, Nu: 0.3}
		pts, _ := LinePoints([]float64{0, 0, 0.01}, []float64{0, 0, 10}, 101)
		res, err := sol.Stresses(pts)
		if err != nil {
			tst.Errorf("Stresses failed: %v\n", err)
			return
		}
		z := make([]float64, len(pts))
		for i, p := range pts {
			z[i] = p[2]
		}
		plt.Reset(false, nil)
		plt.Plot(res.Sz, z, &plt.A{C: "r", L: "$\\sigma_z$"})
		plt.Plot(res.Sx, z, &plt.A{C: "g", L: "$\\sigma_x$"})
		plt.Gll("stresses", "$z$", nil)
		plt.Save("/tmp/bouss", "ana_strip05")
	}
}
