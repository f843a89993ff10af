package server

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/hupe1980/sumserver/core"
	"github.com/hupe1980/sumserver/logging"
	"github.com/hupe1980/sumserver/protocol"
)

const readChunkSize = 4096

// sessionHandler drives one connection's lifecycle: register, welcome, read
// loop, teardown. One handler goroutine per connection; handlers share only
// the registry.
type sessionHandler struct {
	registry   core.Registry
	dispatcher *protocol.Dispatcher
	logger     logging.Logger
}

// handle runs the full session lifecycle for an accepted connection and
// returns when the session is over. Teardown is guaranteed on every exit
// path: normal "exit", peer disconnect, or read failure.
func (h *sessionHandler) handle(conn net.Conn) {
	sess := core.NewSession(sessionID(conn), conn)
	h.registry.Insert(sess.ID, sess)

	defer h.teardown(sess)

	h.logger.Info("client connected session_id=%s remote_addr=%v", sess.ID, conn.RemoteAddr())

	if err := sess.Send(protocol.WelcomeMessage); err != nil {
		h.logger.Error("welcome write failed session_id=%s error=%v", sess.ID, err)
	}

	h.readLoop(sess)
}

// readLoop accumulates chunks into a line buffer and dispatches one complete
// message per newline found in the accumulated buffer, carrying remainder
// bytes forward. This intentionally splits every embedded newline even when
// a single read delivers several messages at once.
func (h *sessionHandler) readLoop(sess *core.Session) {
	var pending []byte
	chunk := make([]byte, readChunkSize)

	for {
		n, err := sess.Conn.Read(chunk)
		if n > 0 {
			pending = append(pending, chunk[:n]...)
			for {
				i := bytes.IndexByte(pending, '\n')
				if i < 0 {
					break
				}
				line := strings.TrimSpace(string(pending[:i]))
				pending = pending[i+1:]

				// "exit" ends the session with no further dispatch and no
				// response; remaining buffered input is discarded.
				if strings.EqualFold(line, "exit") {
					return
				}

				h.dispatcher.Dispatch(sess, line)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Orderly peer disconnect.
				return
			}
			h.logger.Error("read failed session_id=%s error=%v", sess.ID, err)
			return
		}
	}
}

// teardown deregisters the session and releases the transport. Each sub-step
// observes and discards its own failure (the socket may already be half or
// fully closed) so teardown always completes.
func (h *sessionHandler) teardown(sess *core.Session) {
	h.registry.Remove(sess.ID)
	sess.MarkClosed()

	if tcp, ok := sess.Conn.(*net.TCPConn); ok {
		_ = tcp.CloseRead()
		_ = tcp.CloseWrite()
	}
	_ = sess.Conn.Close()

	h.logger.Info("client disconnected session_id=%s", sess.ID)
}

// sessionID derives a stable identifier from the remote endpoint, falling
// back to a generated token when the address is unavailable.
func sessionID(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		if s := addr.String(); s != "" {
			return s
		}
	}
	return uuid.NewString()
}
