// Package httpserver constructs the process's http.Server with shared
// timeout policy.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an http.Server bound to addr with conservative timeouts.
// Handler timeouts are enforced separately by router middleware.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
