// Package server wires configuration, storage, services, and transports
// into a runnable process.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	appmatches "github.com/reggie-app/reggie-api/internal/app/matches"
	appstandings "github.com/reggie-app/reggie-api/internal/app/standings"
	"github.com/reggie-app/reggie-api/internal/config"
	httpserver "github.com/reggie-app/reggie-api/internal/http"
	"github.com/reggie-app/reggie-api/internal/http/handlers"
	"github.com/reggie-app/reggie-api/internal/i18n"
	"github.com/reggie-app/reggie-api/internal/metrics"
	"github.com/reggie-app/reggie-api/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the process lifecycle: one public HTTP server, an optional
// metrics server, and the database pool behind the services.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	db            *sql.DB
	matches       *appmatches.Service
	standings     *appstandings.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New connects to the database and wires the full service stack.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	pg := store.NewPostgres(db, logger, recorder)
	matchSvc := appmatches.NewService(pg, logger)
	standingsSvc := appstandings.NewService(pg, logger, cfg.Season)

	translator, err := i18n.NewTranslator(logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load message catalog: %w", err)
	}

	handler := handlers.New(handlers.Deps{
		Matches:    matchSvc,
		Standings:  standingsSvc,
		Translator: translator,
		Logger:     logger,
		SiteURL:    cfg.SiteURL,
		Ready:      db.PingContext,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		db:            db,
		matches:       matchSvc,
		standings:     standingsSvc,
		httpServer:    buildHTTPServer(cfg, handler, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handler, logger, recorder)

	// Public read-only API; browsers hit it cross-origin from the site.
	corsWrapper := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsWrapper.Handler(router),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return stdHTTPServer{srv: srv}
}

// Run starts the servers, then waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
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
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil && s.logger != nil {
			s.logger.Warn("closing database failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
