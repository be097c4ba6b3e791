package domain

import "time"

// TimeWindow is a rolling reporting period for stats and leaderboards.
type TimeWindow string

// Supported windows. Anything else degrades to WindowDay.
const (
	WindowDay   TimeWindow = "day"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
)

// Start resolves the window against a reference instant to the beginning of
// the half-open interval [start, ref). Day starts at local midnight, week at
// the most recent Monday midnight, month at the first of the calendar month.
func (w TimeWindow) Start(ref time.Time) time.Time {
	y, m, d := ref.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())

	switch w {
	case WindowWeek:
		// time.Weekday has Sunday as 0, the week here starts on Monday
		offset := (int(ref.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	case WindowMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
	default:
		return midnight
	}
}
