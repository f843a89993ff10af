// Package server implements the connection lifecycle of the sum server: the
// accept loop (Acceptor) and the per-connection session handler.
//
// The Acceptor owns the listening socket. Every accepted connection gets its
// own handler goroutine, so a slow or failing peer never stalls another
// session's progress. Stop is idempotent, safe to call from a signal handler
// and cancels only the accept loop: sessions already in flight run until they
// disconnect, send "exit" or fail.
package server
