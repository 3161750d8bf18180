package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/minihttp/internal/server/tcp"
)

var _ tcp.Client = new(Client)

// Client replays the pieces it was initialised with, one per read, and then returns
// the final error (io.EOF by default). Everything written is accumulated
type Client struct {
	pieces  [][]byte
	pointer int
	err     error
	Written []byte
	Closed  bool
}

func NewClient(pieces ...[]byte) *Client {
	return &Client{
		pieces: pieces,
		err:    io.EOF,
	}
}

// WithError replaces the error returned after all the pieces were read
func (c *Client) WithError(err error) *Client {
	c.err = err
	return c
}

func (c *Client) Read(b []byte) (int, error) {
	if c.pointer >= len(c.pieces) {
		return 0, c.err
	}

	n := copy(b, c.pieces[c.pointer])
	if n < len(c.pieces[c.pointer]) {
		// keep the rest for the next read
		c.pieces[c.pointer] = c.pieces[c.pointer][n:]
	} else {
		c.pointer++
	}

	return n, nil
}

func (c *Client) Write(b []byte) error {
	c.Written = append(c.Written, b...)
	return nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.Closed = true
	return nil
}
