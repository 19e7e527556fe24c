// Package server runs the gateway's HTTP server.
//
// It covers startup, signal handling and graceful shutdown bounded by the
// configured timeout.
package server
