// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical (and semi-analytical) solutions for stresses
// within an elastic half-space loaded at its surface
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Strip implements the plane-strain solution to an infinitely long strip with uniform pressure q
//
//              B = 2b
//          |←--------→|
//          ↓↓↓↓↓↓↓↓↓↓↓↓  q
//  ========+====+=====+======== → x   (z = 0 free surface)
//               |  ⋱ α
//               |    ⋱
//               |      • (x,z)
//               ↓ z
//
//  The strip is centred at (xc,yc) with its length along the local y-axis. The
//  rotation is measured in degrees about the vertical (z) axis.
type Strip struct {
	B   float64 // width
	Q   float64 // uniform pressure
	Nu  float64 // Poisson's coefficient
	Rot float64 // rotation about z [degrees]
	Xc  float64 // x-coordinate of centre
	Yc  float64 // y-coordinate of centre
}

// StripStress holds the stress components due to a strip load; one value per point
type StripStress struct {
	Sz  []float64 `json:"sigma_z"` // σz: vertical stress
	Sx  []float64 `json:"sigma_x"` // σx: horizontal stress across the strip
	Sy  []float64 `json:"sigma_y"` // σy: horizontal stress along the strip = ν⋅σz
	Txz []float64 `json:"tau_xz"`  // τxz: shear stress
}

// Init initialises this structure
func (o *Strip) Init(prms dbf.Params) error {

	// default values
	o.B = 2.0
	o.Q = 100.0
	o.Nu = 0.3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "B":
			o.B = p.V
		case "q":
			o.Q = p.V
		case "nu":
			o.Nu = p.V
		case "rot":
			o.Rot = p.V
		case "xc":
			o.Xc = p.V
		case "yc":
			o.Yc = p.V
		}
	}
	if o.B <= 0 {
		return domainErr("strip width must be positive. B = %g is invalid", o.B)
	}
	return nil
}

// Stresses computes the stresses at points
//  Input:
//   pts -- [npts][3] points with z ≥ 0 (depth)
func (o *Strip) Stresses(pts [][]float64) (res *StripStress, err error) {

	// check input
	if o.B <= 0 {
		return nil, domainErr("strip width must be positive. B = %g is invalid", o.B)
	}
	if err = checkDepths(pts); err != nil {
		return
	}

	// allocate results
	npts := len(pts)
	res = &StripStress{
		Sz:  make([]float64, npts),
		Sx:  make([]float64, npts),
		Sy:  make([]float64, npts),
		Txz: make([]float64, npts),
	}

	// clamped depth and tolerance at edges
	b := o.B / 2.0
	ϵ := math.Max(1e-8*o.B, 1e-9)
	tol := math.Max(1e-6*o.B, 1e-8)
	c := o.Q / math.Pi

	// local coordinates
	x := o.localX(pts)

	// closed-form solution with z clamped to ϵ
	for i, p := range pts {
		z := math.Max(p[2], ϵ)
		βp := math.Atan((x[i] - b) / z)
		α := math.Atan((x[i]+b)/z) - βp
		β := α/2.0 + βp
		sa, c2b, s2b := math.Sin(α), math.Cos(2.0*β), math.Sin(2.0*β)
		res.Sz[i] = c * (α + sa*c2b)
		res.Sx[i] = c * (α - sa*c2b)
		res.Sy[i] = o.Nu * res.Sz[i]
		res.Txz[i] = c * sa * s2b
	}

	// traction boundary conditions at the free surface
	for i, p := range pts {
		if p[2] > ϵ {
			continue
		}
		res.Sz[i] = surfaceLoad(math.Abs(x[i]), b, tol, o.Q)
		res.Sx[i] = 0
		res.Sy[i] = 0
		res.Txz[i] = 0
	}
	return
}

// localX computes the x-coordinates of points in the frame of the strip
func (o *Strip) localX(pts [][]float64) (x []float64) {
	x = make([]float64, len(pts))
	θ := -o.Rot * math.Pi / 180.0
	co, si := math.Cos(θ), math.Sin(θ)
	for i, p := range pts {
		dx, dy := p[0]-o.Xc, p[1]-o.Yc
		if o.Rot == 0 {
			x[i] = dx
			continue
		}
		x[i] = co*dx - si*dy
	}
	return
}

// surfaceLoad returns the vertical stress at the free surface: q inside the loaded
// area, q/2 at its edge and zero outside
//  d -- distance from centre (|x| for strips or r for circles)
//  h -- half-width or radius
func surfaceLoad(d, h, tol, q float64) float64 {
	switch {
	case math.Abs(d-h) <= tol:
		return q / 2.0
	case d < h-tol:
		return q
	}
	return 0
}
