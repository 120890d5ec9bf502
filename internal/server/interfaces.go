package server

import "context"

// Server is one inbound transport with a blocking run loop and a graceful
// stop. Implemented by HTTPServer.
type Server interface {
	// Run starts serving and blocks until the listener fails or Shutdown
	// is called. A shutdown-initiated stop returns nil.
	Run() error

	// Shutdown stops accepting new connections and drains in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}
