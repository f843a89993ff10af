// Package core provides the foundational domain types and interfaces used by
// the sum server. It defines the core abstractions for:
//
//   - Sessions (per-connection state: identifier, transport, running sum)
//   - The Registry contract (concurrent collection of active sessions)
//   - Snapshot entries (point-in-time id/sum pairs served to "list" requests)
//
// The package intentionally keeps implementation concerns (storage, accept
// loop, protocol handling) out of scope, exposing small interfaces to enable
// custom backends and extensions.
package core
