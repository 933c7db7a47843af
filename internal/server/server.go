package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	applineups "github.com/preston-bernstein/pickup-teams-service/internal/app/lineups"
	appsessions "github.com/preston-bernstein/pickup-teams-service/internal/app/sessions"
	"github.com/preston-bernstein/pickup-teams-service/internal/config"
	httpserver "github.com/preston-bernstein/pickup-teams-service/internal/http"
	"github.com/preston-bernstein/pickup-teams-service/internal/http/handlers"
	"github.com/preston-bernstein/pickup-teams-service/internal/http/middleware"
	"github.com/preston-bernstein/pickup-teams-service/internal/logging"
	"github.com/preston-bernstein/pickup-teams-service/internal/metrics"
	"github.com/preston-bernstein/pickup-teams-service/internal/roster"
	"github.com/preston-bernstein/pickup-teams-service/internal/store"
	"github.com/preston-bernstein/pickup-teams-service/internal/sweeper"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	store           *store.MemoryStore
	sessionsService *appsessions.Service
	lineupsService  *applineups.Service
	httpServer      httpServer
	metricsServer   httpServer
	sweeper         Sweeper
	metricsStop     func(context.Context) error
}

// New constructs a server with the in-memory session store and sweeper.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore, sessionSvc, lineupSvc := buildServices(cfg, logger, recorder)
	swp := sweeper.New(sessionSvc, logger, recorder, time.Duration(cfg.Sessions.SweepInterval), time.Duration(cfg.Sessions.TTL))
	httpSrv := buildHTTPServer(cfg, sessionSvc, lineupSvc, logger, recorder, swp)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		store:           memoryStore,
		sessionsService: sessionSvc,
		lineupsService:  lineupSvc,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		sweeper:         swp,
		metricsStop:     metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, swp Sweeper) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		sweeper:    swp,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *appsessions.Service, *applineups.Service) {
	memoryStore := store.NewMemoryStore()
	sessionSvc := appsessions.NewService(memoryStore)
	lineupSvc := applineups.NewService(roster.FreeText{}, recorder, logger, cfg.Lineups.MaxTeams)
	return memoryStore, sessionSvc, lineupSvc
}

func buildHTTPServer(cfg config.Config, sessionSvc *appsessions.Service, lineupSvc *applineups.Service, logger *slog.Logger, recorder *metrics.Recorder, swp Sweeper) httpServer {
	var statusFn func() sweeper.Status
	if swp != nil {
		statusFn = swp.Status
	}

	handler := handlers.NewHandler(lineupSvc, sessionSvc, logger, cfg.Lineups.MaxRosterBytes, statusFn)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the sweeper and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.sweeper.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.sweeper.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop session sweeper", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
