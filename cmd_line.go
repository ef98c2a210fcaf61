// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jghorbani2/boussinesq-p/inp"
	"github.com/jghorbani2/boussinesq-p/out"
)

// newLineCmd returns the command printing stresses along a line in csv format
func newLineCmd(a *app) *cobra.Command {
	var prms []string
	c := &inp.Case{Line: new(inp.LineData)}
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Print stresses along a line segment in csv format",
		Example: `  bouss line --kind strip --prm B=3 --prm q=150 --start 0,0,0 --end 0,0,10 --npts 50
  bouss line --kind circle --prm a=1.5 --start -4,0,2 --end 4,0,2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if c.Prms, err = parsePrms(prms); err != nil {
				return
			}
			c.Key = "line"
			c.SetDefault()
			if err = c.PostProcess(); err != nil {
				return
			}
			res, err := out.Compute(c)
			if err != nil {
				return
			}
			a.log.Debug("line computed", zap.String("kind", res.Kind), zap.String("id", res.Id), zap.Int("npts", res.Npts()))
			return out.WriteCSV(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&c.Kind, "kind", "k", inp.KindStrip, "kind of load: strip, circle or trapezoid")
	cmd.Flags().StringSliceVarP(&prms, "prm", "p", nil, "parameter as name=value; e.g. q=100")
	cmd.Flags().Float64SliceVar(&c.Line.Start, "start", []float64{-5, 0, 0}, "first point x,y,z")
	cmd.Flags().Float64SliceVar(&c.Line.End, "end", []float64{5, 0, 10}, "last point x,y,z")
	cmd.Flags().IntVarP(&c.Line.Npts, "npts", "n", 200, "number of points")
	return cmd
}

// parsePrms parses parameters given as name=value
func parsePrms(list []string) (prms []*inp.Prm, err error) {
	for _, s := range list {
		n, v, ok := strings.Cut(s, "=")
		n = strings.TrimSpace(n)
		if !ok || n == "" {
			return nil, chk.Err("parameter must be given as name=value. %q is invalid", s)
		}
		val, e := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if e != nil {
			return nil, chk.Err("value of parameter %q is invalid:\n%v", n, e)
		}
		prms = append(prms, &inp.Prm{N: n, V: val})
	}
	return
}
