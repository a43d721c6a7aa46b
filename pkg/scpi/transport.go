// Package scpi provides the transport boundary to the instrument: a
// connection to an address that sends SCPI command strings and reads
// newline-terminated replies.
package scpi

import "context"

// Transport is the point-to-point instrument bus. Implementations are not
// safe for concurrent use; the device object owns the transport exclusively
// for its lifetime.
type Transport interface {
	// Query sends a command and reads one reply line
	Query(ctx context.Context, cmd string) (string, error)

	// Write sends a command without reading a reply
	Write(ctx context.Context, cmd string) error

	// Close releases the connection
	Close() error
}
