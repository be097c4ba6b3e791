package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewBackendRetriesTotal returns a Prometheus counter for the number of retry attempts against the order backend
func NewBackendRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backend_retries_total",
		Help: "Total number of retry attempts performed against the order backend",
	})
}

// NewDeliveriesRecordedTotal returns a Prometheus counter for the number of deliveries written to the completion ledger
func NewDeliveriesRecordedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_recorded_total",
		Help: "Total number of delivery events written to the completion ledger",
	})
}
