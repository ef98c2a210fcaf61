// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// MachEps is the machine epsilon; i.e. the smallest number satisfying 1.0 + ϵ > 1.0
var MachEps = math.Nextafter(1, 2) - 1

// Trapezoid implements the plane-strain solution to an embankment with trapezoidal cross-section
//
//                   q
//              ↓↓↓↓↓↓↓↓↓↓↓↓
//           ↓↓ ------------ ↓↓
//        ↓↓  /              \  ↓↓
//  =========+-----+------+-----+========== → x   (z = 0)
//        -a1-b   -b      b    b+a2
//               |← 2b →|
//
//  Only the x and z coordinates are used; the section is infinitely long along y.
type Trapezoid struct {
	A1 float64 // width of the left slope
	A2 float64 // width of the right slope
	B  float64 // half-width of the crest
	Q  float64 // pressure under the crest
}

// TrapezoidStress holds the stress components due to a trapezoidal load; one value per point
type TrapezoidStress struct {
	Sz []float64 `json:"sigma_z"` // σz: vertical stress
}

// Init initialises this structure
func (o *Trapezoid) Init(prms dbf.Params) error {

	// default values
	o.A1 = 2.0
	o.A2 = 3.0
	o.B = 1.5
	o.Q = 100.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a1":
			o.A1 = p.V
		case "a2":
			o.A2 = p.V
		case "b":
			o.B = p.V
		case "q":
			o.Q = p.V
		}
	}
	if o.B < 0 {
		return domainErr("crest half-width must be non-negative. b = %g is invalid", o.B)
	}
	return nil
}

// Stresses computes the vertical stress at points
//  Note: a1 = 0 or a2 = 0 are replaced by the machine epsilon and yield finite values
//        that are not necessarily meaningful
func (o *Trapezoid) Stresses(pts [][]float64) (res *TrapezoidStress, err error) {

	// check input
	if o.B < 0 {
		return nil, domainErr("crest half-width must be non-negative. b = %g is invalid", o.B)
	}
	if err = checkDepths(pts); err != nil {
		return
	}

	// guards
	a1, a2, b := o.A1, o.A2, o.B
	if a1 == 0 {
		a1 = MachEps
	}
	if a2 == 0 {
		a2 = MachEps
	}

	// angles subtended by the left slope, crest and right slope
	res = &TrapezoidStress{Sz: make([]float64, len(pts))}
	for i, p := range pts {
		x, z := p[0], p[2]
		if z == 0 {
			z = MachEps
		}
		α1 := math.Atan((-b-x)/z) - math.Atan((-a1-b-x)/z)
		α2 := math.Atan((b-x)/z) - math.Atan((-b-x)/z)
		α3 := math.Atan((b+a2-x)/z) - math.Atan((b-x)/z)
		r := a1 * α3 / a2
		res.Sz[i] = (o.Q / math.Pi) * ((α1 + α2 + α3) + (b/a1)*(α1+r) + (x/a1)*(α1-r))
	}
	return
}
