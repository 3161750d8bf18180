package tcp

import (
	"net"
	"time"
)

type Client interface {
	Read(b []byte) (int, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn         net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewClient(conn net.Conn, readTimeout, writeTimeout time.Duration) Client {
	return &client{
		conn:         conn,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Read does a single read from the connection into the b
func (c *client) Read(b []byte) (int, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return 0, err
	}

	return c.conn.Read(b)
}

// Write transmits the whole b
func (c *client) Write(b []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}

	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
