// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// environment variables
const (
	envOutDir = "BOUSS_OUTDIR"
	envAddr   = "BOUSS_ADDR"
	envRate   = "BOUSS_RATE"
	envBurst  = "BOUSS_BURST"
)

// config holds settings read from the environment
type config struct {
	OutDir string  // directory for output files
	Addr   string  // address of HTTP API
	Rate   float64 // requests per second allowed for each client
	Burst  int     // burst of requests allowed for each client
}

// loadConfig reads settings from the process environment and then from envfile;
// variables already set in the environment take precedence. A missing envfile is not an error
func loadConfig(envfile string) (o *config, err error) {
	file := map[string]string{}
	if envfile != "" {
		file, err = godotenv.Read(envfile)
		if errors.Is(err, fs.ErrNotExist) {
			file, err = map[string]string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read environment file %q: %w", envfile, err)
		}
	}
	get := func(key, dflt string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := file[key]; v != "" {
			return v
		}
		return dflt
	}
	o = &config{
		OutDir: get(envOutDir, "/tmp/bouss"),
		Addr:   get(envAddr, "127.0.0.1:8050"),
	}
	if o.Rate, err = strconv.ParseFloat(get(envRate, "5"), 64); err != nil || o.Rate <= 0 {
		return nil, fmt.Errorf("%s must be a positive number. %q is invalid", envRate, get(envRate, ""))
	}
	if o.Burst, err = strconv.Atoi(get(envBurst, "10")); err != nil || o.Burst < 1 {
		return nil, fmt.Errorf("%s must be a positive integer. %q is invalid", envBurst, get(envBurst, ""))
	}
	return o, nil
}
