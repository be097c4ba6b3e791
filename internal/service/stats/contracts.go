package stats

import (
	"context"
	"time"

	"courier-chat/internal/domain"
)

// Ledger is the completion ledger subset the stats engine reads. Both range
// queries use half-open intervals [from, to).
type Ledger interface {
	CountBetween(ctx context.Context, courierID int64, from, to time.Time) (int, error)
	TopBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.RankingEntry, error)
}
