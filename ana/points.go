// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/utl"
)

// LinePoints generates npts points along the segment from start to end, including both ends
//  Output:
//   pts -- [npts][3] points p(t) = (1-t)⋅start + t⋅end with t ∈ [0,1]
func LinePoints(start, end []float64, npts int) (pts [][]float64, err error) {
	if npts < 2 {
		return nil, domainErr("number of points must be >= 2. %d is invalid", npts)
	}
	if len(start) != 3 || len(end) != 3 {
		return nil, domainErr("start and end must have 3 coordinates. len(start)=%d, len(end)=%d", len(start), len(end))
	}
	T := utl.LinSpace(0, 1, npts)
	pts = utl.Alloc(npts, 3)
	for i, t := range T {
		for j := 0; j < 3; j++ {
			pts[i][j] = (1.0-t)*start[j] + t*end[j]
		}
	}
	return
}

// PlaneGrid generates a grid of points over one of the coordinate planes
//
//   plane  -- "xy", "xz" or "yz"
//   cte    -- value of the coordinate normal to the plane; e.g. z for "xy"
//   rngA   -- [2] range of the first in-plane axis; i.e. x for "xy" and "xz"; y for "yz"
//   rngB   -- [2] range of the second in-plane axis; i.e. y for "xy"; z for "xz" and "yz"
//   nx, ny -- number of divisions along rngA (columns) and rngB (rows)
//
//  Output: X, Y, Z -- [ny][nx] coordinates; one of them is constant and equal to cte
func PlaneGrid(plane string, cte float64, rngA, rngB []float64, nx, ny int) (X, Y, Z [][]float64, err error) {
	if nx < 2 || ny < 2 {
		err = domainErr("grid dimensions must be >= 2. nx=%d, ny=%d are invalid", nx, ny)
		return
	}
	if len(rngA) != 2 || len(rngB) != 2 {
		err = domainErr("ranges must have 2 values (min,max). len(rngA)=%d, len(rngB)=%d", len(rngA), len(rngB))
		return
	}
	a := utl.LinSpace(rngA[0], rngA[1], nx)
	b := utl.LinSpace(rngB[0], rngB[1], ny)
	A, B, C := utl.Alloc(ny, nx), utl.Alloc(ny, nx), utl.Alloc(ny, nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			A[i][j] = a[j]
			B[i][j] = b[i]
			C[i][j] = cte
		}
	}
	switch strings.ToLower(plane) {
	case "xy":
		X, Y, Z = A, B, C
	case "xz":
		X, Y, Z = A, C, B
	case "yz":
		X, Y, Z = C, A, B
	default:
		err = domainErr("plane must be 'xy', 'xz' or 'yz'. %q is invalid", plane)
	}
	return
}

// GridPoints flattens grid coordinates row by row into a list of points
func GridPoints(X, Y, Z [][]float64) (pts [][]float64) {
	for i := range X {
		for j := range X[i] {
			pts = append(pts, []float64{X[i][j], Y[i][j], Z[i][j]})
		}
	}
	return
}

// PathLength computes the distance of each point to the first one
func PathLength(pts [][]float64) (s []float64) {
	s = make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		dx := pts[i][0] - pts[0][0]
		dy := pts[i][1] - pts[0][1]
		dz := pts[i][2] - pts[0][2]
		s[i] = math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return
}
