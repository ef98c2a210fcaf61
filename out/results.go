// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"

	"github.com/jghorbani2/boussinesq-p/ana"
	"github.com/jghorbani2/boussinesq-p/inp"
)

// Results holds the stresses computed for one load case
type Results struct {
	Id     string               `json:"id"`              // run identifier
	Key    string               `json:"key"`             // case key
	Desc   string               `json:"desc"`            // case description
	Kind   string               `json:"kind"`            // kind of load
	Plane  string               `json:"plane,omitempty"` // plane of grid; empty for lines
	X      []float64            `json:"x"`               // [npts] x-coordinates
	Y      []float64            `json:"y"`               // [npts] y-coordinates
	Z      []float64            `json:"z"`               // [npts] z-coordinates (depth)
	S      []float64            `json:"s,omitempty"`     // [npts] path length along line
	Shape  []int                `json:"shape,omitempty"` // [ny, nx] grid shape
	Labels []string             `json:"labels"`          // labels of available components, in order
	Comps  map[string][]float64 `json:"comps"`           // maps label to [npts] values
}

// Compute computes the stresses for a load case
func Compute(c *inp.Case) (o *Results, err error) {

	// points
	pts, shape, err := c.Points()
	if err != nil {
		return
	}

	// stresses
	comps := make(map[string][]float64)
	prms := c.Params()
	switch c.Kind {
	case inp.KindStrip:
		var sol ana.Strip
		if err = sol.Init(prms); err != nil {
			return
		}
		res, err := sol.Stresses(pts)
		if err != nil {
			return nil, err
		}
		comps[inp.SigmaZ], comps[inp.SigmaX], comps[inp.SigmaY], comps[inp.TauXZ] = res.Sz, res.Sx, res.Sy, res.Txz

	case inp.KindCircle:
		var sol ana.Circle
		if err = sol.Init(prms); err != nil {
			return
		}
		res, err := sol.Stresses(pts)
		if err != nil {
			return nil, err
		}
		comps[inp.SigmaZ], comps[inp.TauRZ] = res.Sz, res.Trz

	case inp.KindTrapezoid:
		var sol ana.Trapezoid
		if err = sol.Init(prms); err != nil {
			return
		}
		res, err := sol.Stresses(pts)
		if err != nil {
			return nil, err
		}
		comps[inp.SigmaZ] = res.Sz

	default:
		return nil, chk.Err("kind of load %q is invalid", c.Kind)
	}

	// results
	o = &Results{
		Id:     uuid.NewString(),
		Key:    c.Key,
		Desc:   c.Desc,
		Kind:   c.Kind,
		Shape:  shape,
		Labels: inp.Components(c.Kind),
		Comps:  comps,
	}
	npts := len(pts)
	o.X, o.Y, o.Z = make([]float64, npts), make([]float64, npts), make([]float64, npts)
	for i, p := range pts {
		o.X[i], o.Y[i], o.Z[i] = p[0], p[1], p[2]
	}
	if c.Grid != nil {
		o.Plane = c.Grid.Plane
	} else {
		o.S = ana.PathLength(pts)
	}
	return
}

// Npts returns the number of points
func (o *Results) Npts() int {
	return len(o.X)
}

// Component returns the values of a stress component given its label
func (o *Results) Component(label string) ([]float64, error) {
	v, ok := o.Comps[label]
	if !ok {
		return nil, chk.Err("component %q is not available for %s loads. available: %v", label, o.Kind, o.Labels)
	}
	return v, nil
}

// Grid returns the values of a component arranged as a [ny][nx] grid
func (o *Results) Grid(label string) (V [][]float64, err error) {
	if len(o.Shape) != 2 {
		return nil, chk.Err("results of case %q are not on a grid", o.Key)
	}
	v, err := o.Component(label)
	if err != nil {
		return
	}
	return reshape(v, o.Shape[0], o.Shape[1]), nil
}

// reshape arranges values row by row into a [ny][nx] matrix
func reshape(v []float64, ny, nx int) (V [][]float64) {
	V = make([][]float64, ny)
	for i := 0; i < ny; i++ {
		V[i] = v[i*nx : (i+1)*nx]
	}
	return
}
