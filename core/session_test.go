package core

import (
	"io"
	"net"
	"sync"
	"testing"
)

func TestSession_AddAccumulates(t *testing.T) {
	s := NewSession("s1", nil)

	if got := s.Add(5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := s.Add(7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := s.Add(-12); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if s.Sum() != 0 {
		t.Fatalf("Sum disagrees with last Add: %d", s.Sum())
	}
}

func TestSession_ConcurrentSumReads(t *testing.T) {
	s := NewSession("s2", nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Add(1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.Sum()
		}
	}()
	wg.Wait()

	if s.Sum() != 1000 {
		t.Fatalf("expected 1000, got %d", s.Sum())
	}
}

func TestSession_SendAfterCloseIsNoOp(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	s := NewSession("s3", srv)
	s.MarkClosed()

	// No reader on the pipe: an actual write would block forever.
	if err := s.Send("Current sum: 1\r\n"); err != nil {
		t.Fatalf("expected nil from Send on closed session, got %v", err)
	}
	if !s.Closed() {
		t.Error("session should report closed")
	}
}

func TestSession_SendWritesInFull(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	defer srv.Close()

	s := NewSession("s4", srv)

	const msg = "Welcome! Please enter an integer number or 'list' command.\r\n"

	errCh := make(chan error, 1)
	go func() { errCh <- s.Send(msg) }()

	buf := make([]byte, len(msg))
	if _, err := io.ReadFull(client, buf); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(buf) != msg {
		t.Fatalf("expected %q, got %q", msg, string(buf))
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
}
