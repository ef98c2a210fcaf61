// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds data shared by all commands
type app struct {
	verbose bool        // debug logging
	envfile string      // path to .env file
	cfg     *config     // configuration
	log     *zap.Logger // logger
}

// newRootCmd returns the root command with all subcommands
func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "bouss",
		Short: "Stresses within an elastic half-space due to surface loads",
		Long: `bouss computes stresses below strip, circular and trapezoidal embankment loads
resting on an elastic half-space (Boussinesq theory).

Load cases are given in .json or .yaml files; results are saved as csv (and
optionally xlsx and png) files or served over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			zcfg := zap.NewProductionConfig()
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			a.log, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, err = loadConfig(a.envfile)
			return
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.envfile, "env", ".env", "file with environment variables")
	root.AddCommand(newRunCmd(a), newServeCmd(a), newLineCmd(a))
	return root
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// run command
	if err := newRootCmd().Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
