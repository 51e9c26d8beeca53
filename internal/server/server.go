// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the resource scraper over HTTP:
//
//	GET  /api/resource-types  the filter catalog
//	POST /api/search          scored resources for a topic
//	GET  /health              liveness
//
// Error responses carry a single "detail" string.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/history"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

const (
	defaultAddr       = ":8000"
	defaultMaxResults = 5
	shutdownTimeout   = 10 * time.Second
)

// Searcher produces ranked resources for a topic.
type Searcher interface {
	Search(ctx context.Context, topic string) ([]types.Resource, error)
}

// Recorder stores served searches.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// Server wires the HTTP routes to a Searcher.
type Server struct {
	searcher   Searcher
	recorder   Recorder
	log        *slog.Logger
	addr       string
	maxResults int
	engine     *gin.Engine
}

// New builds a Server. rec may be nil to disable history.
func New(cfg types.ServerConfig, s Searcher, rec Recorder, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	srv := &Server{
		searcher:   s,
		recorder:   rec,
		log:        log,
		addr:       cfg.Addr,
		maxResults: cfg.MaxResults,
	}
	if srv.addr == "" {
		srv.addr = defaultAddr
	}
	if srv.maxResults <= 0 {
		srv.maxResults = defaultMaxResults
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	srv.registerRoutes(r)
	srv.engine = r
	return srv
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler { return s.engine }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", s.addr, err)
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
