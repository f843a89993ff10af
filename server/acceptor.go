package server

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/sumserver/core"
	"github.com/hupe1980/sumserver/logging"
	"github.com/hupe1980/sumserver/protocol"
	"github.com/hupe1980/sumserver/registry"
)

// Options holds dependency overrides passed to NewAcceptor().
type Options struct {
	// Registry stores the active sessions. Defaults to an in-memory registry.
	Registry core.Registry
	// Logger receives lifecycle and failure events. Defaults to NoOp.
	Logger logging.Logger
}

// Acceptor owns the listening socket and the accept loop. It spawns one
// handler goroutine per accepted connection and tracks their completion for
// diagnostics only — accepting is never blocked on a running session.
// Public methods are safe for concurrent use.
type Acceptor struct {
	registry core.Registry
	logger   logging.Logger
	handler  *sessionHandler

	listener net.Listener
	stopping atomic.Bool
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewAcceptor constructs an Acceptor with optional overrides.
func NewAcceptor(optFns ...func(o *Options)) *Acceptor {
	opts := Options{
		Registry: registry.NewInMemoryRegistry(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Acceptor{
		registry: opts.Registry,
		logger:   opts.Logger,
		handler: &sessionHandler{
			registry:   opts.Registry,
			dispatcher: protocol.NewDispatcher(opts.Registry, opts.Logger),
			logger:     opts.Logger,
		},
	}
}

// Start binds and listens on the given TCP port, then runs the accept loop
// in its own goroutine. It returns immediately after a successful bind; a
// bind failure is returned to the caller and nothing is started.
func (a *Acceptor) Start(port int) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	a.listener = listener

	a.logger.Info("server started addr=%v", listener.Addr())

	a.wg.Add(1)
	go a.acceptLoop()

	return nil
}

// acceptLoop admits connections until Stop closes the listener. An accept
// failure while running is recoverable and the loop continues; once the
// listener itself is gone the loop exits.
func (a *Acceptor) acceptLoop() {
	defer a.wg.Done()

	for {
		conn, err := a.listener.Accept()
		if err != nil {
			if a.stopping.Load() {
				a.logger.Debug("accept loop stopped error=%v", err)
				return
			}
			if errors.Is(err, net.ErrClosed) {
				a.logger.Error("listener closed unexpectedly error=%v", err)
				return
			}
			a.logger.Error("accept failed error=%v", err)
			continue
		}

		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.handler.handle(conn)
		}()
	}
}

// Stop ends the accept loop without admitting further connections. It is
// idempotent and may be called from any goroutine, including a signal
// handler. Sessions already accepted are not forcibly closed: they run until
// they disconnect, send "exit" or fail on their own.
func (a *Acceptor) Stop() {
	a.stopOnce.Do(func() {
		a.stopping.Store(true)
		if a.listener != nil {
			_ = a.listener.Close()
		}
		a.logger.Info("server stopping")
	})
}

// Wait blocks until the accept loop and all session handlers have returned.
// Diagnostic use only; nothing in the accept path waits on it.
func (a *Acceptor) Wait() {
	a.wg.Wait()
}

// Addr returns the listener's bound address, or nil before Start.
func (a *Acceptor) Addr() net.Addr {
	if a.listener == nil {
		return nil
	}
	return a.listener.Addr()
}

// Registry exposes the session registry, mainly for tests and diagnostics.
func (a *Acceptor) Registry() core.Registry {
	return a.registry
}
