// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// DomainError reports invalid input given to a solver or sampler
type DomainError struct {
	Msg string // message
}

// Error implements the error interface
func (o *DomainError) Error() string {
	return o.Msg
}

// IsDomainError tells whether err is (or wraps) a DomainError
func IsDomainError(err error) bool {
	var derr *DomainError
	return errors.As(err, &derr)
}

// domainErr returns a new DomainError with formatted message
func domainErr(msg string, prm ...interface{}) error {
	return &DomainError{io.Sf(msg, prm...)}
}

// checkDepths returns an error if any point has less than 3 coordinates or negative depth
func checkDepths(pts [][]float64) error {
	for i, p := range pts {
		if len(p) < 3 {
			return domainErr("point %d must have 3 coordinates (x,y,z). %d given", i, len(p))
		}
		if p[2] < 0 {
			return domainErr("depth z must be >= 0 (downwards). point %d has z = %g", i, p[2])
		}
	}
	return nil
}
