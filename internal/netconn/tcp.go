package netconn

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/protocol"
)

// TCPConn is the production Connection, one per accepted socket: a
// bufio.Reader over a raw net.Conn with blocking, deadline-bounded
// receives. SetNoDelay keeps the short prompt/response lines from sitting
// in Nagle buffers.
type TCPConn struct {
	conn     net.Conn
	r        *bufio.Reader
	deadline time.Duration

	// SessionID is a log-correlation id only; it never reaches the wire,
	// since a player's wire identity is their integer seat number.
	SessionID uuid.UUID

	mu     sync.Mutex
	closed bool
}

// Dial opens a TCPConn to addr, used by the client binary.
func Dial(addr string) (*TCPConn, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return newTCPConn(c), nil
}

// NewTCPConn wraps an already-accepted socket, used by the server's accept
// loop.
func NewTCPConn(c net.Conn) *TCPConn {
	return newTCPConn(c)
}

func newTCPConn(c net.Conn) *TCPConn {
	if tc, ok := c.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	return &TCPConn{
		conn:      c,
		r:         bufio.NewReader(c),
		deadline:  config.ReceiveDeadline,
		SessionID: uuid.New(),
	}
}

func (c *TCPConn) SetDeadline(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = d
}

func (c *TCPConn) Send(m protocol.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	_, err := c.conn.Write([]byte(protocol.Encode(m)))
	return err
}

func (c *TCPConn) Receive() (string, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	deadline := c.deadline
	c.mu.Unlock()

	if deadline > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(deadline))
	}
	line, err := c.r.ReadString(config.RecordEnd[0])
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSuffix(line, config.RecordEnd), nil
}

func (c *TCPConn) SendAndReceive(m protocol.Message) (string, error) {
	if err := c.Send(m); err != nil {
		return "", err
	}
	return c.Receive()
}

func (c *TCPConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
