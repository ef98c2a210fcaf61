// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_polar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar01. radial shear")

	chk.Float64(tst, "τrz @ x-axis", 1e-15, RadialShear(2, 0, 3, 7), 3)
	chk.Float64(tst, "τrz @ y-axis", 1e-15, RadialShear(0, 2, 3, 7), 7)
	chk.Float64(tst, "τrz @ -x-axis", 1e-15, RadialShear(-2, 0, 3, 7), -3)
	chk.Float64(tst, "τrz @ axis", 1e-15, RadialShear(0, 0, 3, 7), 3)
	chk.Float64(tst, "τrz @ 45°", 1e-14, RadialShear(1, 1, 1, 1), math.Sqrt2)
}

func Test_simpson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simpson01")

	w := SimpsonWeights(5, 0.3)
	chk.Array(tst, "w", 1e-15, w, []float64{0.1, 0.4, 0.2, 0.4, 0.1})

	// exact for cubics: ∫₀² x³ dx = 4
	n := 7
	h := 2.0 / float64(n-1)
	w = SimpsonWeights(n, h)
	res := 0.0
	for i := 0; i < n; i++ {
		x := float64(i) * h
		res += w[i] * x * x * x
	}
	chk.Float64(tst, "∫x³", 1e-14, res, 4)

	chk.Int(tst, "odd(4)", oddNodes(4), 5)
	chk.Int(tst, "odd(5)", oddNodes(5), 5)
}
