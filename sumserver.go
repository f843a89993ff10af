// Package sumserver provides a high-level façade over the connection
// lifecycle core (acceptor, registry, protocol dispatcher & logging) enabling
// quick construction of a running sum server. Most applications interact with
// this package by:
//  1. Creating a SumServer via New() (optionally overriding the default
//     in-memory registry and NoOp logger)
//  2. Calling Start(port) to bind and begin accepting connections
//  3. Calling Stop() on shutdown (existing sessions run to completion)
//
// The façade delegates all lifecycle work to server.Acceptor while keeping
// setup ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger.
package sumserver

import (
	"net"

	"github.com/hupe1980/sumserver/core"
	"github.com/hupe1980/sumserver/logging"
	"github.com/hupe1980/sumserver/server"
)

// Options configures the SumServer instance.
type Options struct {
	// Registry stores the active sessions (defaults to in-memory if not provided).
	Registry core.Registry

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// SumServer is the high-level façade aggregating the acceptor and its services.
type SumServer struct {
	acceptor *server.Acceptor
}

// New creates a new SumServer instance with optional overrides. Any unset
// service falls back to its in-memory / NoOp default.
func New(optFns ...func(o *Options)) *SumServer {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	acceptor := server.NewAcceptor(func(o *server.Options) {
		if opts.Registry != nil {
			o.Registry = opts.Registry
		}
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
	})

	return &SumServer{acceptor: acceptor}
}

// Start binds the given TCP port and begins accepting connections.
func (s *SumServer) Start(port int) error {
	return s.acceptor.Start(port)
}

// Stop gracefully ends the accept loop. Idempotent; in-flight sessions are
// not forcibly terminated.
func (s *SumServer) Stop() {
	s.acceptor.Stop()
}

// Wait blocks until the accept loop and all session handlers have finished.
func (s *SumServer) Wait() {
	s.acceptor.Wait()
}

// Addr returns the bound listener address, or nil before Start.
func (s *SumServer) Addr() net.Addr {
	return s.acceptor.Addr()
}
