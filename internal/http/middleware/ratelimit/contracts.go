package ratelimit

import "time"

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// LimiterFunc adapts a plain function to the Limiter interface.
type LimiterFunc func(key string) bool

// Allow calls f.
func (f LimiterFunc) Allow(key string) bool { return f(key) }

// Clock abstracts time for limiter tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter allows everything.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }
