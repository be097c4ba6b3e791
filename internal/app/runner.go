package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP server from the container and blocks until the
// context given to the container is canceled.
func MustRun(container *dig.Container) {
	err := run(container)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Println("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		log.Println("startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(server *http.Server, ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
		serveErr := make(chan error, 1)
		go func() {
			logger.Printf("courier-chat listening on %s", server.Addr)
			serveErr <- server.ListenAndServe()
		}()

		select {
		case err := <-serveErr:
			closePool(pool)
			return err
		case <-ctx.Done():
		}

		logger.Println("shutting down courier-chat...")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shCtx); err != nil {
			logger.Printf("graceful shutdown error: %v", err)
			if err := server.Close(); err != nil {
				logger.Printf("server close error: %v", err)
			}
		}
		closePool(pool)
		return nil
	})
}

func closePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
