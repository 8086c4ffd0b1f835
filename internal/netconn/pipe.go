package netconn

import "net"

// Pipe returns two in-process Connections wired directly to each other,
// for tests that want a real Connection without a real socket. It is built
// on net.Pipe so the same TCPConn framing code path is exercised by both
// production and test code instead of a second parallel implementation.
func Pipe() (a, b *TCPConn) {
	ca, cb := net.Pipe()
	return NewTCPConn(ca), NewTCPConn(cb)
}
