package server

import "context"

// Server defines the lifecycle contract for the listeners managed by this
// package.
//
// Implementations block in [RunServer] until ctx is cancelled or a stop
// signal arrives, then release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
