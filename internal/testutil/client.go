package testutil

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"
)

// Client is a line-oriented TCP test client. Every read carries a deadline so
// a misbehaving server fails the test instead of hanging it.
type Client struct {
	t    *testing.T
	conn net.Conn
	r    *bufio.Reader
}

// Dial connects to addr and fails the test on error.
func Dial(t *testing.T, addr string) *Client {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", addr, err)
	}
	return &Client{t: t, conn: conn, r: bufio.NewReader(conn)}
}

// LocalID returns the client's local endpoint string, which is the session
// identifier the server derives for this connection.
func (c *Client) LocalID() string {
	return c.conn.LocalAddr().String()
}

// SendLine writes line followed by "\n".
func (c *Client) SendLine(line string) {
	c.t.Helper()

	if _, err := c.conn.Write([]byte(line + "\n")); err != nil {
		c.t.Fatalf("failed to send %q: %v", line, err)
	}
}

// ReadLine reads one raw line including its terminator.
func (c *Client) ReadLine() string {
	c.t.Helper()

	_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := c.r.ReadString('\n')
	if err != nil {
		c.t.Fatalf("failed to read line: %v", err)
	}
	return line
}

// ReadBlock reads lines until a blank line ("\r\n") is seen and returns the
// whole block, blank line included. Used for "list" responses.
func (c *Client) ReadBlock() string {
	c.t.Helper()

	var b strings.Builder
	for {
		line := c.ReadLine()
		b.WriteString(line)
		if line == "\r\n" || line == "\n" {
			return b.String()
		}
	}
}

// ReadClosed asserts the server has closed the connection: the next read
// returns an error instead of data.
func (c *Client) ReadClosed() bool {
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err := c.r.ReadByte()
	return err != nil
}

// Close closes the client side of the connection.
func (c *Client) Close() {
	_ = c.conn.Close()
}
