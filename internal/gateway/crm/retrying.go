package crm

import (
	"context"
	"errors"
	"net"
	"time"

	"courier-chat/internal/domain"
	"courier-chat/internal/logx"
)

type backend interface {
	ActiveCouriers(ctx context.Context) ([]domain.RosterCourier, error)
	Orders(ctx context.Context, f OrdersFilter) ([]domain.OrderSnapshot, error)
	Order(ctx context.Context, orderID string) (*domain.OrderSnapshot, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, site string) error
	PaymentTypes(ctx context.Context) (map[string]string, error)
	ProductPhotos(ctx context.Context, offerIDs []string) (map[string]string, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingBackend behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingBackend retries transient order backend failures with exponential
// backoff. Status updates are retried too: the backend applies the same
// status idempotently.
type RetryingBackend struct {
	next    backend
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingBackend wraps next; returns nil when next is nil.
func NewRetryingBackend(next backend, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingBackend {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingBackend{next: next, logger: logger, retries: retries, cfg: cfg}
}

// ActiveCouriers retries the roster call.
func (b *RetryingBackend) ActiveCouriers(ctx context.Context) ([]domain.RosterCourier, error) {
	return retry(ctx, b, "ActiveCouriers", func() ([]domain.RosterCourier, error) {
		return b.next.ActiveCouriers(ctx)
	})
}

// Orders retries one listing page.
func (b *RetryingBackend) Orders(ctx context.Context, f OrdersFilter) ([]domain.OrderSnapshot, error) {
	return retry(ctx, b, "Orders", func() ([]domain.OrderSnapshot, error) {
		return b.next.Orders(ctx, f)
	})
}

// Order retries a single order fetch.
func (b *RetryingBackend) Order(ctx context.Context, orderID string) (*domain.OrderSnapshot, error) {
	return retry(ctx, b, "Order", func() (*domain.OrderSnapshot, error) {
		return b.next.Order(ctx, orderID)
	})
}

// UpdateStatus retries the status transition call.
func (b *RetryingBackend) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, site string) error {
	_, err := retry(ctx, b, "UpdateStatus", func() (struct{}, error) {
		return struct{}{}, b.next.UpdateStatus(ctx, orderID, status, site)
	})
	return err
}

// PaymentTypes retries the catalog call.
func (b *RetryingBackend) PaymentTypes(ctx context.Context) (map[string]string, error) {
	return retry(ctx, b, "PaymentTypes", func() (map[string]string, error) {
		return b.next.PaymentTypes(ctx)
	})
}

// ProductPhotos retries the photo lookup.
func (b *RetryingBackend) ProductPhotos(ctx context.Context, offerIDs []string) (map[string]string, error) {
	return retry(ctx, b, "ProductPhotos", func() (map[string]string, error) {
		return b.next.ProductPhotos(ctx, offerIDs)
	})
}

func retry[T any](ctx context.Context, b *RetryingBackend, method string, call func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 1; attempt <= b.cfg.MaxAttempts; attempt++ {
		v, err := call()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == b.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		delay := backoff(b.cfg.BaseDelay, b.cfg.MaxDelay, attempt)
		if b.retries != nil {
			b.retries.Inc()
		}
		b.logger.Warn("order backend retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return zero, lastErr
}

// isRetryable treats network failures, timeouts, 429 and 5xx answers as
// transient. Other API answers (auth failures, bad filters) are permanent.
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 429 || apiErr.Status >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// backoff computes the retry delay for the attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
