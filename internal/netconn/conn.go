// Package netconn implements the per-player connection abstraction: a
// synchronous send/receive/send-and-receive/close surface over one
// line-framed socket. There is no async inbox or fanout; the engine needs
// one reliable, strictly serialized prompt/response stream per player.
package netconn

import (
	"errors"
	"time"

	"github.com/samunstein/coupgo/internal/protocol"
)

// ErrClosed is returned by any operation on a connection that Close has
// already torn down.
var ErrClosed = errors.New("netconn: connection closed")

// Connection is a bidirectional channel to one player. Receive returns one
// RECORD_END-terminated line at a time, undecoded; a line that fails to parse
// is still returned as raw text so the caller (internal/enforce) can count
// it as a wrong message rather than hang.
type Connection interface {
	Send(m protocol.Message) error
	// Receive blocks for one line, subject to the connection's current
	// deadline, and returns the raw line with its RECORD_END stripped.
	Receive() (string, error)
	// SendAndReceive is Send followed by Receive, as one step.
	SendAndReceive(m protocol.Message) (string, error)
	// SetDeadline changes the soft deadline applied to future Receive
	// calls.
	SetDeadline(d time.Duration)
	Close() error
}
