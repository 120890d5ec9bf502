// Package server owns the process lifecycle of the inbound transports:
// starting the HTTP listener, propagating a fatal listen error, and draining
// in-flight requests on SIGINT/SIGTERM before the process exits.
package server
