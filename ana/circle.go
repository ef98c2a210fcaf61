// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Circle implements the solution to a uniformly loaded circular area (flexible footing) by
// integrating Boussinesq's point-load kernel over the loaded disk in polar coordinates
//
//          , - ~ - ,
//      , '  ↓ ↓ ↓ q  ' ,
//    ,     ↓ ↓ ↓ ↓ ↓     ,
//   ,  ↓ ↓ ↓ ↓ • ↓ ↓ ↓ ↓ ,  ← radius a, centre (xc,yc)
//    ,     ↓ ↓ ↓ ↓ ↓     ,
//      ,  ↓ ↓ ↓ ↓ ↓  , '
//        ' - , _ , '
//
//   σz(x,y,z) = q ∫₀^{2π} ∫₀^{a} 3 z³ / (2π R⁵) ρ dρ dθ
//   R² = (x - ρ cosθ)² + (y - ρ sinθ)² + z²
//
//  The double integral is computed with the composite Simpson rule along ρ and θ.
type Circle struct {
	A      float64     // radius
	Q      float64     // uniform pressure
	Xc     float64     // x-coordinate of centre
	Yc     float64     // y-coordinate of centre
	Nr     int         // number of nodes along the radius (odd ≥ 3)
	Nth    int         // number of nodes along the angle (odd ≥ 3)
	Policy *QuadPolicy // resolution and memory policy; nil means DefaultQuadPolicy
}

// CircleStress holds the stress components due to a circular load; one value per point
type CircleStress struct {
	Sz  []float64 `json:"sigma_z"` // σz: vertical stress
	Trz []float64 `json:"tau_rz"`  // τrz: cylindrical shear stress
}

// Init initialises this structure
func (o *Circle) Init(prms dbf.Params) error {

	// default values
	o.A = 2.0
	o.Q = 100.0
	o.Nr = 61
	o.Nth = 41

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "q":
			o.Q = p.V
		case "xc":
			o.Xc = p.V
		case "yc":
			o.Yc = p.V
		case "nr":
			o.Nr = int(p.V)
		case "nth":
			o.Nth = int(p.V)
		}
	}
	return o.check(nil)
}

// SigmaZ computes the vertical stress at points
func (o *Circle) SigmaZ(pts [][]float64) (sz []float64, err error) {
	var q quadrature
	sz, _, _, err = q.run(o, pts, false)
	return
}

// Stresses computes the vertical and cylindrical shear stresses at points
func (o *Circle) Stresses(pts [][]float64) (res *CircleStress, err error) {
	var q quadrature
	sz, sxz, syz, err := q.run(o, pts, true)
	if err != nil {
		return
	}
	res = &CircleStress{Sz: sz, Trz: make([]float64, len(pts))}
	for i, p := range pts {
		if p[2] <= q.ϵ {
			continue // no shear at the free surface
		}
		res.Trz[i] = RadialShear(p[0]-o.Xc, p[1]-o.Yc, sxz[i], syz[i])
	}
	return
}

// Nodes returns the number of nodes used when npts points are evaluated at once
func (o *Circle) Nodes(npts int) (nr, nth int) {
	return o.policy().Nodes(npts, oddNodes(o.Nr), oddNodes(o.Nth))
}

// OnAxisSigmaZ computes the closed-form vertical stress under the centre of a circular load
func OnAxisSigmaZ(a, q, z float64) float64 {
	if z <= 0 {
		return q
	}
	return q * (1.0 - math.Pow(1.0/(1.0+(a/z)*(a/z)), 1.5))
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////

// policy returns the quadrature policy
func (o *Circle) policy() *QuadPolicy {
	if o.Policy == nil {
		return DefaultQuadPolicy()
	}
	return o.Policy
}

// check checks input data
func (o *Circle) check(pts [][]float64) error {
	if o.A <= 0 {
		return domainErr("radius must be positive. a = %g is invalid", o.A)
	}
	if o.Nr < 3 || o.Nth < 3 {
		return domainErr("number of nodes must be >= 3. nr=%d, nth=%d are invalid", o.Nr, o.Nth)
	}
	return checkDepths(pts)
}

// quadrature holds the integration nodes and weights over the disk
type quadrature struct {
	nr, nth int       // number of nodes
	px, py  []float64 // [nr*nth] Cartesian coordinates of nodes relative to the centre
	w       []float64 // [nr*nth] Simpson weights times the Jacobian ρ
	ϵ       float64   // depths below ϵ are clamped
}

// init computes nodes and weights
func (o *quadrature) init(a float64, nr, nth int) {
	o.nr, o.nth = nr, nth
	R := utl.LinSpace(0, a, nr)
	T := utl.LinSpace(0, 2.0*math.Pi, nth)
	wr := SimpsonWeights(nr, a/float64(nr-1))
	wt := SimpsonWeights(nth, 2.0*math.Pi/float64(nth-1))
	n := nr * nth
	o.px, o.py, o.w = make([]float64, n), make([]float64, n), make([]float64, n)
	for i, ρ := range R {
		for j, θ := range T {
			k := i*nth + j
			o.px[k] = ρ * math.Cos(θ)
			o.py[k] = ρ * math.Sin(θ)
			o.w[k] = wr[i] * wt[j] * ρ
		}
	}
	o.ϵ = math.Max(1e-6*a, 1e-6)
}

// run integrates the kernels at all points, batch by batch
//  Output:
//   szz      -- σz with the free-surface condition applied
//   sxz, syz -- Cartesian shear stresses; computed only if full == true
func (o *quadrature) run(sol *Circle, pts [][]float64, full bool) (szz, sxz, syz []float64, err error) {

	// check input
	if err = sol.check(pts); err != nil {
		return
	}

	// nodes and batches
	npts := len(pts)
	pol := sol.policy()
	nr, nth := pol.Nodes(npts, oddNodes(sol.Nr), oddNodes(sol.Nth))
	o.init(sol.A, nr, nth)
	bsz := pol.BatchSize(npts, nr, nth)

	// results
	szz = make([]float64, npts)
	if full {
		sxz = make([]float64, npts)
		syz = make([]float64, npts)
	}

	// local coordinates and clamped depths
	x, y, z := make([]float64, npts), make([]float64, npts), make([]float64, npts)
	for i, p := range pts {
		x[i], y[i] = p[0]-sol.Xc, p[1]-sol.Yc
		z[i] = math.Max(p[2], o.ϵ)
	}

	// working arrays
	nn := nr * nth
	Kzz := make([]float64, bsz*nn)
	var Kxz, Kyz []float64
	if full {
		Kxz = make([]float64, bsz*nn)
		Kyz = make([]float64, bsz*nn)
	}

	// batches
	c := 3.0 / (2.0 * math.Pi)
	for start := 0; start < npts; start += bsz {
		stop := min(start+bsz, npts)

		// kernels
		for k := start; k < stop; k++ {
			off := (k - start) * nn
			z2 := z[k] * z[k]
			z3 := z2 * z[k]
			for m := 0; m < nn; m++ {
				dx := x[k] - o.px[m]
				dy := y[k] - o.py[m]
				R2 := dx*dx + dy*dy + z2
				R5 := R2 * R2 * math.Sqrt(R2)
				Kzz[off+m] = c * z3 / R5
				if full {
					Kxz[off+m] = c * dx * z2 / R5
					Kyz[off+m] = c * dy * z2 / R5
				}
			}
		}

		// weighted sums
		for k := start; k < stop; k++ {
			off := (k - start) * nn
			szz[k] = sol.Q * o.sum(Kzz[off:off+nn])
			if full {
				sxz[k] = sol.Q * o.sum(Kxz[off:off+nn])
				syz[k] = sol.Q * o.sum(Kyz[off:off+nn])
			}
		}
	}

	// traction boundary conditions at the free surface
	tol := math.Max(1e-4*sol.A, 1e-5)
	for i, p := range pts {
		if p[2] > o.ϵ {
			continue
		}
		szz[i] = surfaceLoad(math.Hypot(x[i], y[i]), sol.A, tol, sol.Q)
		if full {
			sxz[i], syz[i] = 0, 0
		}
	}
	return
}

// sum computes the weighted sum of kernel values over all nodes
func (o *quadrature) sum(K []float64) (res float64) {
	for m, k := range K {
		res += k * o.w[m]
	}
	return
}
