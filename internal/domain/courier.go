package domain

import "strings"

// RosterCourier is an active-courier roster entry as known by the order backend.
type RosterCourier struct {
	ID         int64
	Active     bool
	Phones     string // comma-separated list of registered phone numbers
	LastName   string
	FirstName  string
	Patronymic string
}

// FullName assembles "lastName firstName patronymic", skipping empty parts.
func (c RosterCourier) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.LastName, c.FirstName, c.Patronymic} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// MatchesPhone reports whether any of the courier's registered phone numbers
// equals the given number after digit normalization.
func (c RosterCourier) MatchesPhone(phone string) bool {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return false
	}
	for _, p := range strings.Split(c.Phones, ",") {
		if NormalizePhone(p) == normalized {
			return true
		}
	}
	return false
}

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Binding maps a conversational session to a courier. At most one binding per
// session and one per courier exists at any time.
type Binding struct {
	SessionID int64
	CourierID int64
}
