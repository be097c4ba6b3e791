package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-chat/internal/metrics"
)

func provideCounters(container *dig.Container) error {
	named := []struct {
		name string
		ctor func() prometheus.Counter
	}{
		{"rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal},
		{"backend_retries_total", metrics.NewBackendRetriesTotal},
		{"deliveries_recorded_total", metrics.NewDeliveriesRecordedTotal},
	}
	for _, c := range named {
		ctor := c.ctor
		provider := func() prometheus.Counter { return registerCounter(ctor()) }
		if err := container.Provide(provider, dig.Name(c.name)); err != nil {
			return fmt.Errorf("provide counter %s: %w", c.name, err)
		}
	}
	return nil
}

// registerCounter registers the counter, reusing the existing collector when
// one with the same name is already registered. Containers may be built more
// than once per process.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}
