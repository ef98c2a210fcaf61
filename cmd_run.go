// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/jghorbani2/boussinesq-p/inp"
	"github.com/jghorbani2/boussinesq-p/out"
)

// newRunCmd returns the command computing load cases given in files
func newRunCmd(a *app) *cobra.Command {
	r := out.Runner{Unit: "kPa"}
	cmd := &cobra.Command{
		Use:   "run case.yaml [case.json ...]",
		Short: "Compute load cases and save results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			// load cases
			cases := make([]*inp.Case, len(args))
			for i, fn := range args {
				c, err := inp.ReadCase(fn)
				if err != nil {
					return err
				}
				cases[i] = c
			}

			// run
			if !cmd.Flags().Changed("outdir") {
				r.DirOut = a.cfg.OutDir
			}
			r.Log = a.log
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			results, err := r.Run(ctx, cases)
			if err != nil {
				return err
			}

			// summary
			w := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprint(w, io.Sf("%-20s %-10s %8d points  →  %s.csv\n", res.Key, res.Kind, res.Npts(), res.Key))
			}
			fmt.Fprint(w, io.Sf("results saved in %s\n", r.DirOut))
			return nil
		},
	}
	cmd.Flags().StringVarP(&r.DirOut, "outdir", "o", "", "directory for output files (default $BOUSS_OUTDIR or /tmp/bouss)")
	cmd.Flags().IntVarP(&r.Jobs, "jobs", "j", runtime.NumCPU(), "number of cases computed at the same time")
	cmd.Flags().BoolVar(&r.Xlsx, "xlsx", false, "also save spreadsheets")
	cmd.Flags().BoolVar(&r.Plot, "plot", false, "also save figures")
	cmd.Flags().StringVar(&r.Unit, "unit", r.Unit, "unit of stresses shown in figures")
	return cmd
}
