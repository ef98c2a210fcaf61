// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// clientLimiter holds one token bucket per client address
type clientLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	r       rate.Limit
	b       int
}

// newClientLimiter returns a limiter allowing r requests per second with bursts of b requests
func newClientLimiter(r rate.Limit, b int) *clientLimiter {
	return &clientLimiter{
		buckets: make(map[string]*rate.Limiter),
		r:       r,
		b:       b,
	}
}

// get returns the bucket of a client, creating it if needed
func (o *clientLimiter) get(client string) *rate.Limiter {
	o.mu.Lock()
	defer o.mu.Unlock()
	l, ok := o.buckets[client]
	if !ok {
		l = rate.NewLimiter(o.r, o.b)
		o.buckets[client] = l
	}
	return l
}

// middleware rejects requests of clients exceeding their rate
func (o *clientLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !o.get(clientKey(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests; try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey returns the host part of the remote address
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
