package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-chat/internal/domain"
)

// LedgerRepo stores the append-only delivery event log.
type LedgerRepo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(db *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{db: db, now: time.Now}
}

// Record appends one delivery event stamped with the current instant. No
// dedup here: the workflow guarantees at most one call per approval.
func (r *LedgerRepo) Record(ctx context.Context, courierID int64, orderID, orderNumber string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO delivery_events (courier_id, order_id, order_number, completed_at)
        VALUES ($1, $2, $3, $4)
    `, courierID, orderID, orderNumber, r.now())
	if err != nil {
		return fmt.Errorf("record delivery %q for courier %d: %w", orderID, courierID, err)
	}
	return nil
}

// CountBetween counts the courier's events with completed_at in [from, to).
func (r *LedgerRepo) CountBetween(ctx context.Context, courierID int64, from, to time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM delivery_events
        WHERE courier_id = $1 AND completed_at >= $2 AND completed_at < $3
    `, courierID, from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count deliveries for courier %d: %w", courierID, err)
	}
	return n, nil
}

// TopBetween aggregates events in [from, to) by courier and returns up to
// limit entries ordered by count descending, courier id ascending on ties.
func (r *LedgerRepo) TopBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.RankingEntry, error) {
	rows, err := r.db.Query(ctx, `
        SELECT courier_id, COUNT(*) AS cnt
        FROM delivery_events
        WHERE completed_at >= $1 AND completed_at < $2
        GROUP BY courier_id
        ORDER BY cnt DESC, courier_id ASC
        LIMIT $3
    `, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top couriers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RankingEntry, 0, limit)
	for rows.Next() {
		var e domain.RankingEntry
		if err := rows.Scan(&e.CourierID, &e.Count); err != nil {
			return nil, fmt.Errorf("top couriers scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
