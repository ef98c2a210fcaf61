// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// SimpsonWeights returns the weights of the composite Simpson rule with n (odd) nodes
// spaced by h; i.e. (h/3)⋅{1, 4, 2, 4, ..., 2, 4, 1}
func SimpsonWeights(n int, h float64) (w []float64) {
	w = make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case i == 0 || i == n-1:
			w[i] = 1
		case i%2 == 1:
			w[i] = 4
		default:
			w[i] = 2
		}
		w[i] *= h / 3.0
	}
	return
}

// oddNodes returns n if odd; otherwise n+1
func oddNodes(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
