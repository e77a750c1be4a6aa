// Package server runs the HTTP transport of the travel-diary server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
