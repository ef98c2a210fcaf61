// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements computation, exporting and plotting of results of load cases
package out

import (
	"github.com/jghorbani2/boussinesq-p/inp"
)

// texLabels maps component labels to TeX labels
var texLabels = map[string]string{
	inp.SigmaZ: `$\sigma_z$`,
	inp.SigmaX: `$\sigma_x$`,
	inp.SigmaY: `$\sigma_y$`,
	inp.TauXZ:  `$\tau_{xz}$`,
	inp.TauRZ:  `$\tau_{rz}$`,
}

// GetTexLabel returns a TeX label for a stress component, including units if given
func GetTexLabel(label, unit string) string {
	l, ok := texLabels[label]
	if !ok {
		l = "$" + label + "$"
	}
	if unit != "" {
		l += " $[" + unit + "]$"
	}
	return l
}

// axes returns the labels and the horizontal and vertical coordinates of points in a grid
func (o *Results) axes() (hlbl, vlbl string, H, V []float64) {
	switch o.Plane {
	case "xy":
		return "x", "y", o.X, o.Y
	case "yz":
		return "y", "z", o.Y, o.Z
	}
	return "x", "z", o.X, o.Z
}
