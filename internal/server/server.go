package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/project/librarysrv/internal/controller"
	"github.com/project/librarysrv/internal/log"
	"github.com/project/librarysrv/internal/protocol"
	"github.com/project/librarysrv/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var ActiveConnections = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "library_active_connections",
	Help: "Number of open client connections",
})

func init() {
	prometheus.MustRegister(ActiveConnections)
}

var ErrNotListening = errors.New("server is not listening")

// Handler answers one request line of a session.
type Handler interface {
	Handle(ctx context.Context, s *controller.Session, line string) (protocol.Response, bool)
}

type TCPServer struct {
	logger   *zap.Logger
	handler  Handler
	addr     string
	greeting bool

	listener net.Listener

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

func New(logger *zap.Logger, handler Handler, addr string, greeting bool) *TCPServer {
	return &TCPServer{
		logger:   logger,
		handler:  handler,
		addr:     addr,
		greeting: greeting,
		conns:    make(map[net.Conn]struct{}),
	}
}

// Listen binds the listening socket. It may be called before Serve to learn
// the actual address when the configured port is 0.
func (s *TCPServer) Listen() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.listener = listener
	logger.MakeInfo(s.logger, "Listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address or nil before Listen.
func (s *TCPServer) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until ctx is cancelled, then closes the listener
// and every open connection and waits for the connection goroutines.
func (s *TCPServer) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	defer s.wg.Wait()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		s.shutdown()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		if !s.track(conn) {
			_ = conn.Close()
			continue
		}
		s.wg.Add(1)
		go s.serveConn(ctx, conn)
	}
}

// track registers an accepted connection. It fails once shutdown started.
func (s *TCPServer) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	ActiveConnections.Inc()
	return true
}

func (s *TCPServer) untrack(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conns[conn]; ok {
		delete(s.conns, conn)
		ActiveConnections.Dec()
	}
}

func (s *TCPServer) shutdown() {
	_ = s.listener.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
}

func (s *TCPServer) serveConn(ctx context.Context, conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()

	session := controller.NewSession(conn.RemoteAddr().String())
	log.InfoConnection(s.logger, "Client connected", log.Connect, session.ID, session.Remote)
	defer log.InfoConnection(s.logger, "Client disconnected", log.Disconnect, session.ID, session.Remote)

	if s.greeting {
		if err := write(conn, controller.Greeting()); log.ErrorConnection(s.logger, err, "Failed to write greeting", session.ID, session.Remote) {
			return
		}
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), protocol.MaxLineLength+2)

	for scanner.Scan() {
		resp, closeConn := s.handler.Handle(ctx, session, scanner.Text())
		if err := write(conn, resp); log.ErrorConnection(s.logger, err, "Failed to write response", session.ID, session.Remote) {
			return
		}
		if closeConn {
			return
		}
	}

	err := scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		_ = write(conn, protocol.Failure(protocol.ErrLineTooLong.Error()))
		err = fmt.Errorf("%w: more than %d bytes", protocol.ErrLineTooLong, protocol.MaxLineLength)
	}
	if ctx.Err() == nil {
		log.ErrorConnection(s.logger, err, "Connection read failed", session.ID, session.Remote)
	}
}

func write(w io.Writer, resp protocol.Response) error {
	_, err := io.WriteString(w, resp.Format())
	return err
}
