package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is an in-memory net.Conn. Reads are served by a Source, writes are journaled.
type Conn struct {
	source  io.Reader
	remote  net.Addr
	Written []byte
	Closed  bool
}

func NewConn(source io.Reader) *Conn {
	return &Conn{
		source: source,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 16100},
	}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.Closed {
		return 0, net.ErrClosed
	}

	return c.source.Read(b)
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.Closed {
		return 0, net.ErrClosed
	}

	c.Written = append(c.Written, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
