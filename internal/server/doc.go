// Package server assembles the application from its configuration and runs
// the HTTP server with graceful shutdown.
package server
