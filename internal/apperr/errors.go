package apperr

import "errors"

// ErrNotRegistered is returned when a phone number matches no active courier.
var ErrNotRegistered = errors.New("courier not registered")

// ErrForbidden is returned when an order is assigned to a different courier.
var ErrForbidden = errors.New("order belongs to another courier")

// ErrStaleOrder is returned when an order status is no longer eligible for the
// requested action (reassigned or already closed).
var ErrStaleOrder = errors.New("order state no longer eligible")

// ErrBackendUnavailable marks a transient failure talking to the order backend.
var ErrBackendUnavailable = errors.New("order backend unavailable")

// ErrStorage marks a local persistence failure. Fatal for the current
// operation, never for the session loop.
var ErrStorage = errors.New("storage unavailable")
