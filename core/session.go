package core

import (
	"net"
	"sync"
	"sync/atomic"
)

// Session represents the server side state of one open client connection: a
// stable identifier, the transport handle and the running sum of integers the
// client has submitted. It is safe for concurrent access.
//
// Contract:
//   - Add is invoked only by the handler goroutine owning the connection
//   - Sum may be read concurrently by any goroutine (Snapshot serving "list")
//   - Send becomes a silent no-op once MarkClosed has been called
//   - The sum wraps on int64 overflow; it never panics.
type Session struct {
	ID   string
	Conn net.Conn

	mu  sync.RWMutex
	sum int64

	closed atomic.Bool
}

// NewSession creates a session for an accepted connection with a zero sum.
func NewSession(id string, conn net.Conn) *Session {
	return &Session{ID: id, Conn: conn}
}

// Add adds n to the running sum and returns the new total. Only the handler
// goroutine owning the connection calls Add (single-writer invariant).
func (s *Session) Add(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sum += n
	return s.sum
}

// Sum returns the current running sum.
func (s *Session) Sum() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sum
}

// MarkClosed flags the session's transport as released. Subsequent Send calls
// return nil without touching the connection.
func (s *Session) MarkClosed() {
	s.closed.Store(true)
}

// Closed reports whether MarkClosed has been called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}

// Send writes msg to the connection in full. Sending to a session that is
// already marked closed is a silent no-op. A write failure is returned to the
// caller for best-effort logging; it is never fatal by itself — only the read
// path decides to end a session.
func (s *Session) Send(msg string) error {
	if s.closed.Load() {
		return nil
	}
	_, err := s.Conn.Write([]byte(msg))
	return err
}

// Entry is one (id, sum) pair of a Registry snapshot.
type Entry struct {
	ID  string
	Sum int64
}

// Registry is the concurrent collection of all currently active sessions.
// All operations are safe under arbitrary concurrent invocation from multiple
// handler goroutines. Snapshot is a best-effort, eventually-consistent view:
// it need not be atomic with respect to concurrent Insert/Remove/sum updates.
type Registry interface {
	Insert(id string, s *Session)
	Remove(id string) (*Session, bool)
	Get(id string) (*Session, bool)
	Snapshot() []Entry
}
