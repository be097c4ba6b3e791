// Package stats computes per-courier completion counts and leaderboards over
// the delivery event ledger.
package stats

import (
	"context"
	"time"

	"courier-chat/internal/domain"
)

// Service is a pure composition over the ledger: it owns the window math and
// the rank lookup, nothing else.
type Service struct {
	ledger Ledger
	topN   int
	now    func() time.Time
}

// NewService creates a stats Service. topN bounds the displayed leaderboard.
func NewService(ledger Ledger, topN int) *Service {
	if topN <= 0 {
		topN = 5
	}
	return &Service{ledger: ledger, topN: topN, now: time.Now}
}

// Count returns the courier's completions within the window resolved against
// the reference instant.
func (s *Service) Count(ctx context.Context, courierID int64, w domain.TimeWindow, ref time.Time) (int, error) {
	return s.ledger.CountBetween(ctx, courierID, w.Start(ref), ref)
}

// TopN returns up to n leaderboard entries for the window, count descending.
func (s *Service) TopN(ctx context.Context, w domain.TimeWindow, ref time.Time, n int) ([]domain.RankingEntry, error) {
	return s.ledger.TopBetween(ctx, w.Start(ref), ref, n)
}

// Snapshot computes the courier's day/week/month counts and their 1-based
// position in the day leaderboard truncated to the displayed size. A courier
// outside that truncated list is reported as unranked (DayRank 0) rather than
// ranked exactly; a full-table rank query is deliberately avoided.
func (s *Service) Snapshot(ctx context.Context, courierID int64) (domain.StatsSnapshot, error) {
	ref := s.now()
	var snap domain.StatsSnapshot
	var err error

	if snap.DayCount, err = s.Count(ctx, courierID, domain.WindowDay, ref); err != nil {
		return domain.StatsSnapshot{}, err
	}
	if snap.WeekCount, err = s.Count(ctx, courierID, domain.WindowWeek, ref); err != nil {
		return domain.StatsSnapshot{}, err
	}
	if snap.MonthCount, err = s.Count(ctx, courierID, domain.WindowMonth, ref); err != nil {
		return domain.StatsSnapshot{}, err
	}

	top, err := s.TopN(ctx, domain.WindowDay, ref, s.topN)
	if err != nil {
		return domain.StatsSnapshot{}, err
	}
	for i, e := range top {
		if e.CourierID == courierID {
			snap.DayRank = i + 1
			break
		}
	}
	return snap, nil
}
