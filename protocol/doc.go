// Package protocol implements the line-oriented wire protocol of the sum
// server. The Dispatcher interprets one already trimmed line of client input
// and sends the matching response to the requesting session:
//
//   - "list" (case-insensitive): a block enumerating every connected client
//     and its current sum, terminated by a blank line
//   - a base-10 signed integer: adds it to the session's running sum and
//     replies with the new total
//   - anything else: an inline error message; the session continues
//
// The dispatcher never closes a connection. Ending a session (on "exit",
// disconnect or read failure) is the session handler's decision alone.
package protocol
