// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// pltMu serialises access to the plotting buffer of plt
var pltMu sync.Mutex

// PlotLine plots components along the sampling line against the path length
//  Note: figures are saved as dirout/key_line_label.png
func PlotLine(o *Results, labels []string, unit, dirout string) error {
	if o.S == nil {
		return chk.Err("results of case %q are not along a line", o.Key)
	}
	pltMu.Lock()
	defer pltMu.Unlock()
	for _, l := range labels {
		v, err := o.Component(l)
		if err != nil {
			return err
		}
		plt.Reset(false, nil)
		plt.Plot(o.S, v, &plt.A{C: "b", Lw: 1.5, L: GetTexLabel(l, "")})
		plt.Gll("path length $s$", GetTexLabel(l, unit), nil)
		plt.Save(dirout, o.Key+"_line_"+l)
	}
	return nil
}

// PlotGrid plots isobars of components over the sampling plane
//  nlevels -- number of isobars
//  Note: depth increases downwards; figures are saved as dirout/key_grid_label.png
func PlotGrid(o *Results, labels []string, nlevels int, unit, dirout string) error {
	if len(o.Shape) != 2 {
		return chk.Err("results of case %q are not on a grid", o.Key)
	}
	pltMu.Lock()
	defer pltMu.Unlock()
	ny, nx := o.Shape[0], o.Shape[1]
	hlbl, vlbl, h, v := o.axes()
	H, V := reshape(h, ny, nx), reshape(v, ny, nx)
	for _, l := range labels {
		S, err := o.Grid(l)
		if err != nil {
			return err
		}
		plt.Reset(false, nil)
		plt.ContourF(H, V, S, &plt.A{Nlevels: nlevels})
		plt.ContourL(H, V, S, &plt.A{Nlevels: nlevels, Colors: []string{"k"}})
		if vlbl == "z" {
			plt.AxisYrange(utl.Max(V[0][0], V[ny-1][0]), utl.Min(V[0][0], V[ny-1][0]))
		}
		plt.Title(GetTexLabel(l, unit), nil)
		plt.Gll("$"+hlbl+"$", "$"+vlbl+"$", nil)
		plt.Save(dirout, o.Key+"_grid_"+l)
	}
	return nil
}
