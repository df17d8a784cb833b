// Package web exposes the pattern scenarios over HTTP: a demo/test
// endpoint pair per pattern plus the payment endpoints for the resolver
// variant and a websocket stream of bus events.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pattern_lab/internal/patterns"
	"pattern_lab/internal/patterns/observer"
	"pattern_lab/internal/payment"
)

// Server routes HTTP traffic to the pattern registry.
type Server struct {
	registry *patterns.Registry
	payments *payment.Service
	bus      *observer.EventBus
	router   *gin.Engine
}

// NewServer wires all routes.
func NewServer(registry *patterns.Registry, payments *payment.Service, bus *observer.EventBus) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		registry: registry,
		payments: payments,
		bus:      bus,
		router:   router,
	}

	router.GET("/health", s.handleHealth)
	router.GET("/ws/events", s.handleEventStream)

	api := router.Group("/api")
	{
		api.GET("/patterns", s.handleList)
		api.GET("/patterns/:name/demo", s.handleDemo)
		api.GET("/patterns/:name/test", s.handleTest)

		adv := api.Group("/strategy-advanced")
		{
			adv.POST("/process-payment", s.handleProcessPayment)
			adv.GET("/providers", s.handleProviders)
		}
	}

	return s
}

// Handler returns the underlying http.Handler (for tests).
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down within grace.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	slog.Info("http server shutting down", slog.Duration("grace", grace))
	return srv.Shutdown(shutdownCtx)
}
