package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-chat/internal/config"
	"courier-chat/internal/gateway/crm"
	"courier-chat/internal/http/handlers"
	"courier-chat/internal/http/pprofserver"
	"courier-chat/internal/http/router"
	"courier-chat/internal/logx"
	"courier-chat/internal/repository"
	"courier-chat/internal/service/stats"
	"courier-chat/internal/service/workflow"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

type backendIn struct {
	dig.In
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"backend_retries_total"`
}

type workflowIn struct {
	dig.In
	Backend  *crm.RetryingBackend
	Bindings *repository.BindingRepo
	Ledger   *repository.LedgerRepo
	Stats    *stats.Service
	Logger   logx.Logger
	Cfg      *config.Config
	Recorded prometheus.Counter `name:"deliveries_recorded_total"`
}

func registerService(container *dig.Container) error {
	if err := provideCounters(container); err != nil {
		return err
	}
	return provideAll(container,
		repository.NewBindingRepo,
		repository.NewLedgerRepo,
		func(in backendIn) *crm.RetryingBackend {
			client := crm.NewClient(in.Cfg.CRM)
			return crm.NewRetryingBackend(client, in.Logger, in.Retries, crm.RetryConfig{
				MaxAttempts: in.Cfg.CRM.MaxAttempts,
				BaseDelay:   in.Cfg.CRM.BaseDelay,
				MaxDelay:    in.Cfg.CRM.MaxDelay,
			})
		},
		func(ledger *repository.LedgerRepo, cfg *config.Config) *stats.Service {
			return stats.NewService(ledger, cfg.Orders.TopN)
		},
		func(in workflowIn) *workflow.Service {
			return workflow.NewService(in.Backend, in.Bindings, in.Ledger, in.Stats,
				in.Logger, in.Recorded, workflow.Config{
					PageSize: in.Cfg.Orders.PageSize,
					MaxPages: in.Cfg.Orders.MaxPages,
				})
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(wf *workflow.Service, logger logx.Logger) *handlers.WebhookHandler {
			return handlers.NewWebhookHandler(wf, logger)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		func(cfg *config.Config) pprofserver.Config {
			return pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}
		},
		router.New,
		serverProvider,
	)
}
