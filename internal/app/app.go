package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nebula/nebula-backend/internal/adapter/postgres"
	"github.com/nebula/nebula-backend/internal/config"
	"github.com/nebula/nebula-backend/internal/service/actionitem"
	"github.com/nebula/nebula-backend/internal/service/actionitemtype"
	"github.com/nebula/nebula-backend/internal/service/dailytask"
	"github.com/nebula/nebula-backend/internal/service/person"
	"github.com/nebula/nebula-backend/internal/service/task"
	"github.com/nebula/nebula-backend/internal/transport/middleware"
	"github.com/nebula/nebula-backend/internal/transport/rest"
)

// database is what the HTTP surface needs from the connection pool.
type database interface {
	postgres.Pool
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// the database, optionally migrates it, and serves the REST API until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, postgres.MigrateUp, logger); err != nil {
			return fmt.Errorf("migrate on start: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, logger, pool, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires the unit-of-work factory, the services and the REST
// resources behind the middleware chain. A nil limiter disables rate limiting.
func NewHandler(cfg *config.Config, logger *slog.Logger, db database, limiter *middleware.RateLimiter) http.Handler {
	uows := postgres.NewUnitOfWorkFactory(db)

	people := person.NewService(logger, uows)
	tasks := task.NewService(logger, uows)
	dailyTasks := dailytask.NewService(logger, uows)
	actionItems := actionitem.NewService(logger, uows)
	actionItemTypes := actionitemtype.NewService(logger, uows)

	mux := rest.NewRouter(cfg.API.BasePath, rest.NewHealthHandler(logger, db, Version),
		rest.NewResource[person.CreateCommand, person.UpdateCommand](logger, "networking/persons", people,
			func(r person.Response) uuid.UUID { return r.ID }),
		rest.NewCompletableResource[task.CreateCommand, task.UpdateCommand](logger, "tasks", tasks,
			func(r task.Response) uuid.UUID { return r.ID }),
		rest.NewCompletableResource[dailytask.CreateCommand, dailytask.UpdateCommand](logger, "daily-tasks", dailyTasks,
			func(r dailytask.Response) uuid.UUID { return r.ID }),
		rest.NewCompletableResource[actionitem.CreateCommand, actionitem.UpdateCommand](logger, "action-items", actionItems,
			func(r actionitem.Response) uuid.UUID { return r.ID }),
		rest.NewResource[actionitemtype.CreateCommand, actionitemtype.UpdateCommand](logger, "action-item-types", actionItemTypes,
			func(r actionitemtype.Response) uuid.UUID { return r.ID }),
	)

	var limit middleware.Middleware
	if limiter != nil {
		limit = limiter.Limit(cfg.Server.RateLimitPerMinute)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)(mux)
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully
// within shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
