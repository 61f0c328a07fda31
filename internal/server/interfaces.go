package server

// Server is the lifecycle handle returned by [NewServer].
type Server interface {
	// RunServer blocks while the listeners serve. It returns after a stop
	// signal or after any listener fails, with every listener shut down.
	RunServer()

	// Shutdown drains in-flight HTTP requests, flips gRPC health to
	// NOT_SERVING and stops the gRPC server.
	Shutdown()
}
