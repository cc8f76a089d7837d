package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"fetchrecipes/networking"
	"fetchrecipes/recipeslist"
)

// Controller is the recipe list surface the API needs
type Controller interface {
	State() recipeslist.ListState
	// Dispatch fails with recipeslist.ErrNotRunning when no reload can be accepted
	Dispatch(rt networking.RequestType) (string, error)
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(ctrl Controller) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterRecipeRoutes(r, ctrl)
	return r
}

// Server is the recipes HTTP server with optional scheduled reloads
type Server struct {
	controller Controller
	httpServer *http.Server
	cron       *cron.Cron
	cronID     cron.EntryID
	mu         sync.Mutex
	log        *slog.Logger
}

// NewServer creates a server listening on addr
func NewServer(ctrl Controller, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		controller: ctrl,
		cron:       cron.New(),
		httpServer: &http.Server{
			Addr:    addr,
			Handler: NewRouter(ctrl),
		},
		log: logger.With("component", "api"),
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves HTTP in the background. Listen errors are sent on the returned channel.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)
	s.log.Info("starting api server", "addr", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
		close(errCh)
	}()

	return errCh
}

// StartCron schedules periodic reloads of rt
func (s *Server) StartCron(schedule string, rt networking.RequestType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(schedule, func() { s.runScheduled(rt) })
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cronID = id
	s.cron.Start()
	s.log.Info("cron reload scheduled", "schedule", schedule, "request_type", string(rt))
	return nil
}

// runScheduled dispatches a reload unless any reload is still in flight
func (s *Server) runScheduled(rt networking.RequestType) bool {
	state := s.controller.State()
	if state.InFlight > 0 {
		s.log.Info("cron skipped: reload in flight", "in_flight", state.InFlight)
		return false
	}
	id, err := s.controller.Dispatch(rt)
	if err != nil {
		s.log.Warn("cron reload not dispatched", "error", err)
		return false
	}
	s.log.Info("cron triggered reload", "request_id", id, "request_type", string(rt))
	return true
}

// Shutdown stops the cron and gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down api server")

	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}

	return s.httpServer.Shutdown(ctx)
}
