// Package server runs the development backend's HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown. The bridged transport needs no listener and is not managed here.
package server
