package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pollsapp/internal/adapter/database"
	"pollsapp/internal/adapter/http/routes"
	"pollsapp/internal/adapter/ratelimit"
	"pollsapp/internal/core/port"
	"pollsapp/internal/core/telemetry"
	"pollsapp/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	db         *database.DB
	closers    []func() error
	logger     *config.LokiLogger
}

// NewServer opens the store, picks the rate limit backend and builds the
// router. The caller owns the returned server and must Shutdown it.
func NewServer(ctx context.Context, cfg *config.AppConfig, metrics *telemetry.AppMetrics, logger *config.LokiLogger, probe port.Telemetry) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(ctx, database.Options{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DSN(),
		LogQueries:      cfg.DBLogQueries,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	server := &Server{db: db, logger: logger}
	server.closers = append(server.closers, db.Close)

	var store ratelimit.Store
	if cfg.RateLimitEnabled && cfg.RateLimitStore == "redis" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			db.Close()
			return nil, err
		}

		server.closers = append(server.closers, client.Close)
		store = ratelimit.NewRedisStore(client)
	}

	container := NewContainer(db, logger, probe)
	router := routes.SetupRouterWithConfig(container.Handlers(), metrics, logger, cfg, store)

	server.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Logger.Info("Server configured",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("db_driver", cfg.DBDriver),
		zap.Bool("rate_limit_enabled", cfg.RateLimitEnabled),
		zap.String("rate_limit_store", cfg.RateLimitStore),
		zap.Bool("https_enforced", cfg.EnforceHTTPS),
	)

	return server, nil
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not
// reported as an error.
func (s *Server) ListenAndServe() error {
	s.logger.Logger.Info("Server starting", zap.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	for i := len(s.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, s.closers[i]())
	}

	return err
}
