// Package logging provides a minimal logging interface and adapters for the
// sum server.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the acceptor, session handlers and dispatcher use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ServerLogger with contextual helpers (component, session)
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	srv := sumserver.New(func(o *sumserver.Options) { o.Logger = logger })
//
// Logging is strictly observational: no code path in the server changes
// behavior based on what a logger does with an event.
package logging
