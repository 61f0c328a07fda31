// Package server runs the museum-user-api listeners.
//
// NewServer binds the HTTP listener and, when an address is configured, the
// gRPC health listener. RunServer serves both until SIGTERM, SIGINT or SIGQUIT
// arrives or one of them stops on its own, then drains them.
package server
