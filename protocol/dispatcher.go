package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/sumserver/core"
	"github.com/hupe1980/sumserver/logging"
)

// Wire protocol responses. Lines are CRLF terminated; the list block ends
// with an empty line.
const (
	WelcomeMessage = "Welcome! Please enter an integer number or 'list' command.\r\n"

	listHeader      = "List of connected clients:\r\n"
	invalidResponse = "Error. Enter a valid integer or 'list' command.\r\n"
)

// Dispatcher interprets trimmed client lines and writes responses to the
// requesting session. It is stateless apart from its dependencies and safe
// for concurrent use by multiple handler goroutines.
type Dispatcher struct {
	registry core.Registry
	logger   logging.Logger
}

// NewDispatcher constructs a Dispatcher backed by the given registry.
func NewDispatcher(registry core.Registry, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch handles one complete line, already trimmed of CR/LF and
// surrounding whitespace. Responses go to the requesting session only.
// Dispatch has no side effect besides updating the session's sum; in
// particular it never terminates the connection.
func (d *Dispatcher) Dispatch(sess *core.Session, line string) {
	if strings.EqualFold(line, "list") {
		d.sendList(sess)
		return
	}

	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		d.send(sess, invalidResponse)
		return
	}

	// The session is stored by pointer in the registry, so Add is also the
	// persistence step: the next Snapshot sees the new total.
	total := sess.Add(n)
	d.send(sess, fmt.Sprintf("Current sum: %d\r\n", total))
}

func (d *Dispatcher) sendList(sess *core.Session) {
	var b strings.Builder
	b.WriteString(listHeader)
	for _, e := range d.registry.Snapshot() {
		fmt.Fprintf(&b, " - %s, sum: %d\r\n", e.ID, e.Sum)
	}
	b.WriteString("\r\n")
	d.send(sess, b.String())
}

// send delivers one response best-effort: a write failure is logged and
// swallowed. Whether the session ends is decided by the read path.
func (d *Dispatcher) send(sess *core.Session, msg string) {
	if err := sess.Send(msg); err != nil {
		d.logger.Error("write failed session_id=%s error=%v", sess.ID, err)
	}
}
