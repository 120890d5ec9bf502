package server

import "errors"

// ErrShutdownTimeout wraps a shutdown that ran out its deadline with
// connections still open.
var ErrShutdownTimeout = errors.New("shutdown deadline exceeded with connections still open")
