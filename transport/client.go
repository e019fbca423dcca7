package transport

import (
	"net"
	"time"

	"github.com/indigo-web/inlet/internal/timer"
)

// Client is a byte source over a connection. Every read is bounded by the timeout, so a
// client which stays silent can't hold the connection forever.
type Client struct {
	conn    net.Conn
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration) *Client {
	return &Client{
		conn:    conn,
		timeout: timeout,
	}
}

// Read reads from the connection, setting the read deadline first.
func (c *Client) Read(b []byte) (int, error) {
	if err := c.conn.SetReadDeadline(timer.Deadline(c.timeout)); err != nil {
		return 0, err
	}

	return c.conn.Read(b)
}

// Conn unwraps the underlying net.Conn.
func (c *Client) Conn() net.Conn {
	return c.conn
}

// Remote returns the remote address of the connection, or an empty string if unknown.
func (c *Client) Remote() string {
	if addr := c.conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return ""
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
