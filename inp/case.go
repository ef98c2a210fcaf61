// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from load case (.json or .yaml) files
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"

	"github.com/jghorbani2/boussinesq-p/ana"
)

// kinds of load
const (
	KindStrip     = "strip"
	KindCircle    = "circle"
	KindTrapezoid = "trapezoid"
)

// stress components labels
const (
	SigmaZ = "sigma_z"
	SigmaX = "sigma_x"
	SigmaY = "sigma_y"
	TauXZ  = "tau_xz"
	TauRZ  = "tau_rz"
)

// Prm holds one named parameter of the load; e.g. {"n":"q", "v":100}
type Prm struct {
	N string  `json:"n" yaml:"n"` // name
	V float64 `json:"v" yaml:"v"` // value
}

// LineData holds data for sampling along a line segment
type LineData struct {
	Start []float64 `json:"start" yaml:"start"` // [3] first point
	End   []float64 `json:"end" yaml:"end"`     // [3] last point
	Npts  int       `json:"npts" yaml:"npts"`   // number of points; 0 => 200
}

// GridData holds data for sampling over a coordinate plane
type GridData struct {
	Plane string    `json:"plane" yaml:"plane"` // "xy", "xz" or "yz"
	Cte   float64   `json:"cte" yaml:"cte"`     // coordinate normal to the plane
	RngA  []float64 `json:"rnga" yaml:"rnga"`   // [2] range of first in-plane axis
	RngB  []float64 `json:"rngb" yaml:"rngb"`   // [2] range of second in-plane axis
	Nx    int       `json:"nx" yaml:"nx"`       // number of columns
	Ny    int       `json:"ny" yaml:"ny"`       // number of rows
}

// Case holds all data of one load case
type Case struct {

	// input
	Desc    string    `json:"desc" yaml:"desc"`       // description. ex: footing of pump house
	Kind    string    `json:"kind" yaml:"kind"`       // kind of load: strip, circle, trapezoid
	Prms    []*Prm    `json:"prms" yaml:"prms"`       // load and material parameters
	Line    *LineData `json:"line" yaml:"line"`       // sampling along line; default if grid is nil
	Grid    *GridData `json:"grid" yaml:"grid"`       // sampling over plane
	Comps   []string  `json:"comps" yaml:"comps"`     // components to export and plot; empty => all
	Isobars int       `json:"isobars" yaml:"isobars"` // number of isobars in contour plots

	// derived
	Key string `json:"-" yaml:"-"` // case key; e.g. footing01.yaml => footing01
}

// Components returns the labels of the stress components computed for a kind of load
func Components(kind string) []string {
	switch kind {
	case KindStrip:
		return []string{SigmaZ, SigmaX, SigmaY, TauXZ}
	case KindCircle:
		return []string{SigmaZ, TauRZ}
	case KindTrapezoid:
		return []string{SigmaZ}
	}
	return nil
}

// ReadCase reads load case data from a .json or .yaml file
func ReadCase(fnpath string) (o *Case, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("ReadCase: cannot read case file %q:\n%v", fnpath, err)
	}
	o, err = DecodeCase(b, filepath.Ext(fnpath))
	if err != nil {
		return nil, chk.Err("ReadCase: file %q:\n%v", fnpath, err)
	}
	o.Key = io.FnKey(filepath.Base(fnpath))
	return
}

// DecodeCase decodes, sets defaults and checks load case data
//  ext -- ".json", ".yaml" or ".yml"
func DecodeCase(b []byte, ext string) (o *Case, err error) {
	o = new(Case)
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("format %q is not available; use .json or .yaml", ext)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal case data:\n%v", err)
	}
	o.SetDefault()
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// SetDefault sets default values of sampling data
func (o *Case) SetDefault() {
	o.Kind = strings.ToLower(strings.TrimSpace(o.Kind))
	if o.Line == nil && o.Grid == nil {
		o.Line = new(LineData)
	}
	if o.Line != nil {
		if len(o.Line.Start) == 0 {
			o.Line.Start = []float64{-5, 0, 0}
		}
		if len(o.Line.End) == 0 {
			o.Line.End = []float64{5, 0, 10}
		}
		if o.Line.Npts == 0 {
			o.Line.Npts = 200
		}
	}
	if o.Grid != nil {
		if o.Grid.Plane == "" {
			o.Grid.Plane = "xz"
		}
		o.Grid.Plane = strings.ToLower(o.Grid.Plane)
		if len(o.Grid.RngA) == 0 {
			o.Grid.RngA = []float64{-6, 6}
		}
		if len(o.Grid.RngB) == 0 {
			o.Grid.RngB = []float64{0, 10}
			if o.Grid.Plane == "xy" {
				o.Grid.RngB = []float64{-6, 6}
			}
		}
		n := 120
		if o.Kind == KindCircle {
			n = 80
		}
		if o.Grid.Nx == 0 {
			o.Grid.Nx = n
		}
		if o.Grid.Ny == 0 {
			o.Grid.Ny = n
		}
	}
	if o.Isobars < 1 {
		o.Isobars = 15
	}
}

// PostProcess checks data just read
func (o *Case) PostProcess() error {
	avail := Components(o.Kind)
	if avail == nil {
		return chk.Err("kind of load %q is invalid; use strip, circle or trapezoid", o.Kind)
	}
	if o.Line != nil && o.Grid != nil {
		return chk.Err("line and grid sampling cannot be given together")
	}
	if len(o.Comps) == 0 {
		o.Comps = avail
		return nil
	}
	for _, c := range o.Comps {
		found := false
		for _, a := range avail {
			if c == a {
				found = true
				break
			}
		}
		if !found {
			return chk.Err("component %q is not available for %s loads; use %v", c, o.Kind, avail)
		}
	}
	return nil
}

// Params returns the load parameters
func (o *Case) Params() (prms dbf.Params) {
	for _, p := range o.Prms {
		prms = append(prms, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// Npts returns the number of evaluation points
//  Note: grids with non-positive dimensions give 0; huge grids saturate at math.MaxInt
func (o *Case) Npts() int {
	if o.Grid != nil {
		nx, ny := o.Grid.Nx, o.Grid.Ny
		if nx <= 0 || ny <= 0 {
			return 0
		}
		if ny > math.MaxInt/nx {
			return math.MaxInt
		}
		return nx * ny
	}
	if o.Line != nil {
		return o.Line.Npts
	}
	return 0
}

// Points generates the evaluation points
//  Output:
//   pts   -- [npts][3] points
//   shape -- [ny, nx] if sampling over a plane; nil otherwise
func (o *Case) Points() (pts [][]float64, shape []int, err error) {
	if o.Grid != nil {
		g := o.Grid
		X, Y, Z, err := ana.PlaneGrid(g.Plane, g.Cte, g.RngA, g.RngB, g.Nx, g.Ny)
		if err != nil {
			return nil, nil, err
		}
		return ana.GridPoints(X, Y, Z), []int{g.Ny, g.Nx}, nil
	}
	if o.Line == nil {
		return nil, nil, chk.Err("line or grid sampling must be given")
	}
	pts, err = ana.LinePoints(o.Line.Start, o.Line.End, o.Line.Npts)
	return
}
