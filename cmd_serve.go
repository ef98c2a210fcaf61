// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jghorbani2/boussinesq-p/srv"
)

// newServeCmd returns the command serving the HTTP API
func newServeCmd(a *app) *cobra.Command {
	var addr string
	var rps float64
	var burst int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Addr
			}
			if !cmd.Flags().Changed("rate") {
				rps = a.cfg.Rate
			}
			if !cmd.Flags().Changed("burst") {
				burst = a.cfg.Burst
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.New(a.log, rps, burst).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default $BOUSS_ADDR or 127.0.0.1:8050)")
	cmd.Flags().Float64Var(&rps, "rate", 0, "requests per second allowed for each client (default $BOUSS_RATE or 5)")
	cmd.Flags().IntVar(&burst, "burst", 0, "burst of requests allowed for each client (default $BOUSS_BURST or 10)")
	return cmd
}
