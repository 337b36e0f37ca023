package frontend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tupyy/rrpool/internal/config"
	"github.com/tupyy/rrpool/pkg/threadpool"
)

// Submitter is the part of the worker pool the pool strategy needs.
type Submitter interface {
	Submit(w threadpool.Work[error]) *threadpool.JoinHandle[error]
}

type Strategy string

const (
	StrategyPool    Strategy = config.StrategyPool
	StrategyThread  Strategy = config.StrategyThread
	StrategyPerCore Strategy = config.StrategyPerCore
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPool, StrategyThread, StrategyPerCore:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown connection strategy %q", s)
	}
}

type Option func(s *Server)

// WithAcceptLoops sets how many accept loops the percore strategy runs.
// It defaults to the number of CPUs.
func WithAcceptLoops(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.acceptLoops = n
		}
	}
}

// WithSubmitter sets the worker pool used by the pool strategy.
func WithSubmitter(pool Submitter) Option {
	return func(s *Server) {
		s.pool = pool
	}
}

type Server struct {
	addr        string
	strategy    Strategy
	handler     *Handler
	pool        Submitter
	acceptLoops int
	inflight    sync.WaitGroup
}

func NewServer(cfg config.Server, opts ...Option) (*Server, error) {
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		strategy:    strategy,
		handler:     NewHandler(cfg.BufferSize, cfg.MaxHeaders, cfg.ReadTimeout),
		acceptLoops: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.strategy == StrategyPool && s.pool == nil {
		return nil, errors.New("pool strategy requires a worker pool")
	}

	return s, nil
}

func (s *Server) Strategy() Strategy {
	return s.strategy
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled or ln is closed.
// Serve takes ownership of ln. With the thread strategy Serve waits for the
// connection goroutines it started; with the pool strategy in-flight
// connections are left to the pool.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	zap.S().Named("frontend").Infow("serving", "addr", ln.Addr().String(), "strategy", s.strategy)

	var err error
	switch s.strategy {
	case StrategyPool:
		err = s.acceptLoop(ctx, ln, s.submit)
	case StrategyThread:
		err = s.acceptLoop(ctx, ln, s.spawn)
		s.inflight.Wait()
	case StrategyPerCore:
		g, gctx := errgroup.WithContext(ctx)
		for range s.acceptLoops {
			g.Go(func() error {
				// one loop leaving closes the listener for the others
				defer cancel()
				return s.acceptLoop(gctx, ln, s.inline)
			})
		}
		err = g.Wait()
	}

	zap.S().Named("frontend").Infow("stopped serving", "addr", ln.Addr().String())

	return err
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener, handle func(conn net.Conn)) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = time.Second

	for {
		b.Reset()
		conn, err := backoff.Retry(ctx, func() (net.Conn, error) {
			conn, err := ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return nil, backoff.Permanent(err)
				}
				zap.S().Named("frontend").Warnw("failed to accept connection", "error", err)
				return nil, err
			}
			return conn, nil
		}, backoff.WithBackOff(b))
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept loop stopped: %w", err)
		}

		handle(conn)
	}
}

func (s *Server) submit(conn net.Conn) {
	id := uuid.NewString()
	s.pool.Submit(func() error {
		return s.serveConn(id, conn)
	})
}

func (s *Server) spawn(conn net.Conn) {
	id := uuid.NewString()
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		_ = s.serveConn(id, conn)
	}()
}

func (s *Server) inline(conn net.Conn) {
	_ = s.serveConn(uuid.NewString(), conn)
}

func (s *Server) serveConn(id string, conn net.Conn) error {
	log := zap.S().Named("frontend")
	log.Debugw("connection accepted", "conn", id, "remote", conn.RemoteAddr().String())

	if err := s.handler.Handle(conn); err != nil {
		log.Debugw("connection aborted", "conn", id, "error", err)
		return err
	}

	log.Debugw("connection answered", "conn", id)
	return nil
}
