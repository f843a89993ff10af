// Package testutil provides helpers shared by tests: a small line-oriented
// TCP client for integration tests against a running server.
package testutil
