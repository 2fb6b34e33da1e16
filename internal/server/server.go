// Package server accepts TCP connections and hands them, one at a time, to a
// Handler.
package server

import (
	"errors"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/f4ah6o/webserver/internal/logger"
)

// DefaultBacklog is the listen queue length used by the command.
const DefaultBacklog = 10

// maxAcceptDelay caps the pause after repeated accept failures.
const maxAcceptDelay = time.Second

// Handler processes a single connection and closes it.
type Handler interface {
	Handle(conn io.ReadWriteCloser)
}

// Server represents a single-threaded HTTP server
type Server struct {
	listener net.Listener
	handler  Handler
	log      *logger.Logger
	closed   atomic.Bool
}

// New returns a Server that will accept from ln. A nil log discards
// accept errors.
func New(ln net.Listener, handler Handler, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		listener: ln,
		handler:  handler,
		log:      log,
	}
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until the server is closed. Each connection is
// handled to completion before the next one is accepted; clients beyond
// that wait in the listen backlog. Accept failures are logged and retried.
// Serve returns nil once Close has been called.
func (s *Server) Serve() error {
	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// If server is closed, ignore connection errors
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Error("accept: %v", err)

			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay *= 2
			}
			if delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			time.Sleep(delay)
			continue
		}
		delay = 0

		s.handler.Handle(conn)
	}
}

// Close stops the server and closes the listener
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}
