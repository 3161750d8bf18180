package tcp

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/indigo-web/minihttp/errors"
)

type OnConnection func(net.Conn)

// Server accepts connections and runs the callback for each of them in its own goroutine
type Server struct {
	sock     net.Listener
	onConn   OnConnection
	wg       sync.WaitGroup
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	stopped  bool
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

// Start runs the accept loop. It returns only when the listener fails or is closed.
// In the last case errors.ErrShutdown is returned. Before returning, Start waits for
// all the connections to be processed
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			s.wg.Wait()

			if s.shutdown.Load() {
				return errors.ErrShutdown
			}

			return err
		}

		if !s.track(conn) {
			continue
		}

		s.wg.Add(1)
		go s.connHandler(conn)
	}
}

// Stop shuts listener and ALL the connections down
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	s.stopped = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return nil
}

// GracefulShutdown stops a listener, but leaving all the connections free to end their
// lives peacefully
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

func (s *Server) stopListener() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}

// track registers the connection, so Stop is able to close it. If Stop was already
// called, the connection is closed immediately and false is returned
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		_ = conn.Close()
		return false
	}

	s.conns[conn] = struct{}{}

	return true
}

func (s *Server) connHandler(conn net.Conn) {
	defer s.wg.Done()

	s.onConn(conn)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
