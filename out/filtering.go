// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// TolC is the tolerance used when comparing coordinates
var TolC = 1e-8

// Point holds the index of a located point and its distance to a reference point
type Point struct {
	Idx  int     // index of point in results
	Dist float64 // distance from reference point
}

// Points is a set of points sorted by distance
type Points []*Point

func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Locator defines interface for locating points of results
type Locator interface {
	Locate(o *Results) Points
}

// At implements locator of the point nearest to {x,y,z}
type At []float64

// Along implements locator along line
//  Example: with 2 points in 3D: {{0,0,0}, {1,1,1}}
type Along [][]float64

// AlongX implements locator with []float64{y_cte} or []float64{y_cte, z_cte}
type AlongX []float64

// AlongY implements locator with []float64{x_cte} or []float64{x_cte, z_cte}
type AlongY []float64

// AlongZ implements locator with []float64{x_cte, y_cte}
type AlongZ []float64

// OnZplane implements locator for points at the same depth
//  Note: slice must contain at least one value; e.g. []float64{z_cte}
//        a second value is used as tolerance; e.g. []float64{z_cte, z_tolerance}
type OnZplane []float64

// Locate finds the nearest point
func (o At) Locate(r *Results) Points {
	if len(o) != 3 || r.Npts() == 0 {
		return nil
	}
	best := &Point{Idx: -1, Dist: math.Inf(1)}
	for i := 0; i < r.Npts(); i++ {
		d := dist(r.X[i]-o[0], r.Y[i]-o[1], r.Z[i]-o[2])
		if d < best.Dist {
			best.Idx, best.Dist = i, d
		}
	}
	return Points{best}
}

// Locate finds points on the (infinite) line through A and B; distances are measured from A
func (o Along) Locate(r *Results) (res Points) {

	// check if there are two points
	if len(o) != 2 || len(o[0]) != 3 || len(o[1]) != 3 {
		return
	}
	A, B := o[0], o[1]
	ux, uy, uz := B[0]-A[0], B[1]-A[1], B[2]-A[2]
	l := dist(ux, uy, uz)
	if l < TolC {
		return
	}
	ux, uy, uz = ux/l, uy/l, uz/l

	// points with negligible distance to the line
	for i := 0; i < r.Npts(); i++ {
		dx, dy, dz := r.X[i]-A[0], r.Y[i]-A[1], r.Z[i]-A[2]
		s := dx*ux + dy*uy + dz*uz
		if dist(dx-s*ux, dy-s*uy, dz-s*uz) < TolC {
			res = append(res, &Point{i, dist(dx, dy, dz)})
		}
	}
	sort.Sort(res)
	return
}

// Locate finds points
func (o AlongX) Locate(r *Results) (res Points) {
	if len(o) < 1 {
		return
	}
	y_cte, z_cte := o[0], 0.0
	if len(o) > 1 {
		z_cte = o[1]
	}
	return Along{{0, y_cte, z_cte}, {1, y_cte, z_cte}}.Locate(r)
}

// Locate finds points
func (o AlongY) Locate(r *Results) (res Points) {
	if len(o) < 1 {
		return
	}
	x_cte, z_cte := o[0], 0.0
	if len(o) > 1 {
		z_cte = o[1]
	}
	return Along{{x_cte, 0, z_cte}, {x_cte, 1, z_cte}}.Locate(r)
}

// Locate finds points
func (o AlongZ) Locate(r *Results) (res Points) {
	if len(o) < 2 {
		return
	}
	x_cte, y_cte := o[0], o[1]
	return Along{{x_cte, y_cte, 0}, {x_cte, y_cte, 1}}.Locate(r)
}

// Locate finds points on z-plane; distances are measured from the origin of the plane
func (o OnZplane) Locate(r *Results) (res Points) {
	if len(o) < 1 {
		return
	}
	z_cte := o[0]
	z_tol := TolC
	if len(o) == 2 {
		z_tol = o[1]
	}
	for i := 0; i < r.Npts(); i++ {
		if math.Abs(r.Z[i]-z_cte) < z_tol {
			res = append(res, &Point{i, dist(r.X[i], r.Y[i], 0)})
		}
	}
	sort.Sort(res)
	return
}

// Extract returns the values of a component at located points
//  Output:
//   d -- distances of points to the reference point of the locator
//   v -- values of component
func (o *Results) Extract(loc Locator, label string) (d, v []float64, err error) {
	vals, err := o.Component(label)
	if err != nil {
		return
	}
	pts := loc.Locate(o)
	if len(pts) == 0 {
		return nil, nil, chk.Err("cannot locate points of case %q with %v", o.Key, loc)
	}
	d, v = make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		d[i], v[i] = p.Dist, vals[p.Idx]
	}
	return
}

// dist returns the Euclidean norm of {x,y,z}
func dist(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}
