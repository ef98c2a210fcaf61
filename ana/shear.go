// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// RadialShear computes the cylindrical shear stress τrz from the Cartesian
// out-of-plane components σxz and σyz at a point with horizontal coordinates (x,y)
//  Note: on the axis (x=y=0), the azimuth is taken as zero; thus τrz = σxz
func RadialShear(x, y, sxz, syz float64) (trz float64) {
	φ := math.Atan2(y, x)
	return sxz*math.Cos(φ) + syz*math.Sin(φ)
}
