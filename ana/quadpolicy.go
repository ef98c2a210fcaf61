// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// constants
const (
	DefaultMemBudget = 64 * 1024 * 1024 // transient memory allowed for one batch [bytes]
	DefaultNarrays   = 5                // working arrays per point: dx, dy, R², R⁵, K
)

// QuadCap limits the number of quadrature nodes when many points are evaluated at once
type QuadCap struct {
	Npts int // cap applies when the number of points is ≥ Npts
	Nr   int // max number of nodes along the radius
	Nth  int // max number of nodes along the angle
}

// QuadPolicy holds the resolution and memory policy of the polar quadrature
type QuadPolicy struct {
	Caps      []QuadCap // node caps; the one with the largest Npts not exceeding the number of points is used
	MemBudget int       // transient memory budget per batch [bytes]
	Narrays   int       // number of (nr × nth) arrays of float64 held per point
}

// DefaultQuadPolicy returns the default policy
func DefaultQuadPolicy() *QuadPolicy {
	return &QuadPolicy{
		Caps: []QuadCap{
			{Npts: 1000, Nr: 51, Nth: 41},
			{Npts: 4000, Nr: 41, Nth: 31},
			{Npts: 10000, Nr: 31, Nth: 25},
		},
		MemBudget: DefaultMemBudget,
		Narrays:   DefaultNarrays,
	}
}

// Nodes returns the number of nodes to be used when evaluating npts points at once
//  Note: nr and nth must be odd already; caps never increase nr or nth
func (o *QuadPolicy) Nodes(npts, nr, nth int) (int, int) {
	var sel *QuadCap
	for i := range o.Caps {
		c := &o.Caps[i]
		if npts >= c.Npts && (sel == nil || c.Npts > sel.Npts) {
			sel = c
		}
	}
	if sel == nil {
		return nr, nth
	}
	return max(3, min(nr, sel.Nr)) | 1, max(3, min(nth, sel.Nth)) | 1
}

// BatchSize returns the number of points evaluated together such that the working
// arrays fit within the memory budget. The result is at least 1 and at most npts
func (o *QuadPolicy) BatchSize(npts, nr, nth int) int {
	bytesPerPoint := max(1, o.Narrays) * nr * nth * 8
	n := o.MemBudget / max(bytesPerPoint, 1)
	return max(1, min(n, npts))
}
