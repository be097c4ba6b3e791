package domain

import "time"

// DeliveryEvent is one completed delivery, immutable once written.
type DeliveryEvent struct {
	CourierID   int64
	OrderID     string
	OrderNumber string
	CompletedAt time.Time
}

// RankingEntry is one leaderboard row.
type RankingEntry struct {
	CourierID int64
	Count     int
}

// StatsSnapshot holds per-courier completion counts over the rolling windows
// plus the courier's place in the truncated day leaderboard. DayRank is 0 when
// the courier is outside the displayed top list.
type StatsSnapshot struct {
	DayCount   int
	WeekCount  int
	MonthCount int
	DayRank    int
}

// Ranked reports whether the courier made it into the day top list.
func (s StatsSnapshot) Ranked() bool { return s.DayRank > 0 }
