// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package srv implements an HTTP API computing stresses due to surface loads
package srv

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jghorbani2/boussinesq-p/ana"
	"github.com/jghorbani2/boussinesq-p/inp"
	"github.com/jghorbani2/boussinesq-p/out"
)

// constants
const (
	MaxBodyBytes  = 1 << 20 // max size of request bodies
	DefaultMaxPts = 250000  // max number of evaluation points per request
)

// Server holds the configuration of the API
type Server struct {
	Log    *zap.Logger // logger; nil means no logging
	MaxPts int         // max number of points per request; ≤ 0 means DefaultMaxPts
	lim    *clientLimiter
}

// New returns a new server allowing each client rps requests per second with bursts of burst requests
func New(log *zap.Logger, rps float64, burst int) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{Log: log, lim: newClientLimiter(rate.Limit(rps), max(1, burst))}
}

// Router returns the routes of the API
//  GET  /api/health
//  POST /api/{strip,circle,trapezoid}  body: load case in JSON format
func (o *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", o.health).Methods(http.MethodGet)
	api.Handle("/{kind:strip|circle|trapezoid}", o.lim.middleware(http.HandlerFunc(o.compute))).Methods(http.MethodPost)
	return r
}

// ListenAndServe serves the API at addr until ctx is cancelled
func (o *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return o.Serve(ctx, ln)
}

// Serve serves the API on ln until ctx is cancelled, then shuts down gracefully
func (o *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           o.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		o.Log.Info("server started", zap.String("addr", ln.Addr().String()))
		errc <- hs.Serve(ln)
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	o.Log.Info("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// health reports that the server is alive
func (o *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// compute computes the stresses of the load case given in the body
func (o *Server) compute(w http.ResponseWriter, r *http.Request) {
	t0 := time.Now()
	kind := mux.Vars(r)["kind"]

	// load case
	var c inp.Case
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "cannot decode load case: "+err.Error())
		return
	}
	c.Kind = kind
	c.Key = kind
	c.SetDefault()
	if err := c.PostProcess(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if n := c.Npts(); n > o.maxPts() {
		writeError(w, http.StatusRequestEntityTooLarge, "too many points; reduce the sampling")
		return
	}

	// stresses
	res, err := out.Compute(&c)
	if err != nil {
		status := http.StatusInternalServerError
		if ana.IsDomainError(err) {
			status = http.StatusBadRequest
		}
		o.Log.Warn("computation failed", zap.String("kind", kind), zap.Error(err))
		writeError(w, status, err.Error())
		return
	}
	o.Log.Info("case computed",
		zap.String("kind", kind),
		zap.String("id", res.Id),
		zap.String("client", clientKey(r)),
		zap.Int("npts", res.Npts()),
		zap.Duration("elapsed", time.Since(t0)))
	writeJSON(w, http.StatusOK, res)
}

// maxPts returns the max number of points per request
func (o *Server) maxPts() int {
	if o.MaxPts <= 0 {
		return DefaultMaxPts
	}
	return o.MaxPts
}

// writeJSON writes v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error message with the given status
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
