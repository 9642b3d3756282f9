// Package server runs the gateway's HTTP server: startup, signal handling
// and graceful shutdown.
package server
