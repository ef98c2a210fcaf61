// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jghorbani2/boussinesq-p/inp"
)

// Runner computes many load cases concurrently and saves their results
type Runner struct {
	DirOut string      // directory for output files
	Jobs   int         // max number of cases computed at the same time; ≤ 0 means one
	Xlsx   bool        // also save spreadsheets
	Plot   bool        // also save figures
	Unit   string      // unit of stresses used in figures; e.g. kPa
	Log    *zap.Logger // logger; nil means no logging
}

// Run computes all cases and writes one csv file per case into DirOut
//  Note: the first error cancels cases not started yet
func (o *Runner) Run(ctx context.Context, cases []*inp.Case) ([]*Results, error) {
	log := o.Log
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(o.DirOut, 0777); err != nil {
		return nil, fmt.Errorf("cannot create directory for output results (%s): %w", o.DirOut, err)
	}

	results := make([]*Results, len(cases))
	keys := uniqueKeys(cases)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, o.Jobs))
	for i, c := range cases {
		i, c := i, c
		key := keys[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			res, err := Compute(c)
			if err != nil {
				return fmt.Errorf("case %q: %w", key, err)
			}
			res.Key = key
			log.Info("case computed",
				zap.String("case", key),
				zap.String("kind", c.Kind),
				zap.String("id", res.Id),
				zap.Int("npts", res.Npts()),
				zap.Duration("elapsed", time.Since(t0)))
			if err = o.save(res, c); err != nil {
				return fmt.Errorf("case %q: %w", key, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))
		return nil, err
	}
	return results, nil
}

// save writes files with results
func (o *Runner) save(res *Results, c *inp.Case) (err error) {
	fnpath := filepath.Join(o.DirOut, res.Key+".csv")
	f, err := os.Create(fnpath)
	if err != nil {
		return
	}
	if err = WriteCSV(f, res); err != nil {
		f.Close()
		return
	}
	if err = f.Close(); err != nil {
		return
	}
	if o.Log != nil {
		o.Log.Debug("file written", zap.String("case", res.Key), zap.String("path", fnpath))
	}
	if o.Xlsx {
		if err = WriteXLSX(filepath.Join(o.DirOut, res.Key+".xlsx"), res); err != nil {
			return
		}
	}
	if o.Plot {
		if res.S != nil {
			return PlotLine(res, c.Comps, o.Unit, o.DirOut)
		}
		return PlotGrid(res, c.Comps, c.Isobars, o.Unit, o.DirOut)
	}
	return
}

// uniqueKeys returns the keys of output files; empty keys become caseNN and
// repeated keys get the index of the case appended
func uniqueKeys(cases []*inp.Case) (keys []string) {
	keys = make([]string, len(cases))
	used := make(map[string]bool)
	for i, c := range cases {
		base := c.Key
		if base == "" {
			base = fmt.Sprintf("case%02d", i)
		}
		key := base
		for n := i; used[key]; n++ {
			key = fmt.Sprintf("%s_%02d", base, n)
		}
		used[key] = true
		keys[i] = key
	}
	return
}
