package server

// Server defines the lifecycle contract of the gateway server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received or the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
