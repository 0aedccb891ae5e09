// Package server accepts TCP connections and runs one quiz session per
// connection. Sessions are independent: one client's failure or slow reply
// never affects another, and the listener runs until its context is
// cancelled.
package server

import (
	"context"
	"errors"
	"net"
	"sync"

	"quizcore/internal/logger"
	"quizcore/internal/output"
	"quizcore/internal/session"
	"quizcore/pkg/quiztypes"
)

// Server owns the TCP listener and the per-connection session goroutines.
type Server struct {
	addr   string
	store  quiztypes.ItemStore
	styles output.StyleProvider

	wg sync.WaitGroup
}

// Option is a functional option for configuring Server instances.
type Option func(*Server)

// WithStyles sets the style provider handed to every session's printer.
// Without it, sessions get plain text output.
func WithStyles(provider output.StyleProvider) Option {
	return func(s *Server) {
		s.styles = provider
	}
}

// New creates a server listening on addr once started, serving sessions
// backed by the given store.
func New(addr string, store quiztypes.ItemStore, opts ...Option) *Server {
	s := &Server{
		addr:  addr,
		store: store,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is cancelled, then closes
// the listener and waits for the running sessions to finish. Sessions
// blocked on a prompt end when their client disconnects.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	logger.Info("listening", "addr", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			logger.Warn("accept failed", "error", err)
			continue
		}

		s.wg.Add(1)
		go s.handle(conn)
	}

	logger.Info("listener closed, draining sessions")
	s.wg.Wait()
	return nil
}

// handle runs one connection's session to completion.
func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer func() { _ = conn.Close() }()

	options := []output.Option{output.WithWriter(conn)}
	if s.styles != nil {
		options = append(options, output.WithStyles(s.styles))
	} else {
		options = append(options, output.PlainText())
	}
	printer := output.NewPrinter(options...)

	sess := session.New(conn, printer, s.store)
	logger.Info("client connected", "remote", conn.RemoteAddr().String(), "session", sess.ID())

	sess.Run()

	logger.Info("client disconnected", "remote", conn.RemoteAddr().String(), "session", sess.ID())
}
