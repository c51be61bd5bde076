// Package httpapi serves the savings and returns computations over JSON.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/model"
	"github.com/autosave-dev/autosave/internal/returns"
)

// APIPrefix is the path prefix of every computation route.
const APIPrefix = "/blackrock/challenge/v1"

// Options tunes the HTTP server.
type Options struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxBodyBytes:    4 << 20,
	}
}

// Server is an http.Server with the API routes mounted. It holds no
// per-request state.
type Server struct {
	http.Server
	engine          *returns.Engine
	logger          *applog.Logger
	maxBodyBytes    int64
	shutdownTimeout time.Duration
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, engine *returns.Engine, logger *applog.Logger, opts Options) *Server {
	if logger == nil {
		logger = applog.Discard()
	}
	s := &Server{
		Server: http.Server{
			Addr:              addr,
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: opts.ReadTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       opts.IdleTimeout,
			MaxHeaderBytes:    1 << 16,
		},
		engine:          engine,
		logger:          logger.WithComponent(applog.ComponentHTTP),
		maxBodyBytes:    opts.MaxBodyBytes,
		shutdownTimeout: opts.ShutdownTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+APIPrefix+"/transactions:parse", s.handleParse)
	mux.HandleFunc("POST "+APIPrefix+"/transactions:validator", s.handleValidate)
	mux.HandleFunc("POST "+APIPrefix+"/transactions:filter", s.handleFilter)
	mux.HandleFunc("POST "+APIPrefix+"/returns:nps", s.handleReturns(model.ModeNPS))
	mux.HandleFunc("POST "+APIPrefix+"/returns:index", s.handleReturns(model.ModeIndex))
	mux.HandleFunc("GET "+APIPrefix+"/performance", s.handlePerformance)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleHealth)

	s.Handler = s.withRequestLogging(s.withRecovery(mux))
	return s
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", s.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.logger.Info("Shutting down server", applog.FieldOperation, applog.OpShutdown)
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
