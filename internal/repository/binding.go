package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BindingRepo stores session-to-courier bindings.
type BindingRepo struct{ db *pgxpool.Pool }

// NewBindingRepo creates a new BindingRepo.
func NewBindingRepo(db *pgxpool.Pool) *BindingRepo { return &BindingRepo{db: db} }

// Lookup returns the courier bound to the session, or found=false.
func (r *BindingRepo) Lookup(ctx context.Context, sessionID int64) (int64, bool, error) {
	var courierID int64
	err := r.db.QueryRow(ctx,
		`SELECT courier_id FROM courier_bindings WHERE session_id=$1`, sessionID,
	).Scan(&courierID)
	if err != nil {
		if IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("lookup binding %d: %w", sessionID, err)
	}
	return courierID, true, nil
}

// Bind replaces any binding sharing the session or the courier with the new
// pair. Both deletes and the insert run in one transaction so that concurrent
// rebinds never leave a courier bound to two sessions.
func (r *BindingRepo) Bind(ctx context.Context, sessionID, courierID int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("bind: begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx,
		`DELETE FROM courier_bindings WHERE courier_id=$1`, courierID); err != nil {
		return fmt.Errorf("bind: clear courier %d: %w", courierID, err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM courier_bindings WHERE session_id=$1`, sessionID); err != nil {
		return fmt.Errorf("bind: clear session %d: %w", sessionID, err)
	}
	// Two first-time binds for the same courier can both pass the deletes
	// with no row to lock and race to the insert; the conflict clause makes
	// the later one win instead of failing.
	if _, err := tx.Exec(ctx,
		`INSERT INTO courier_bindings(session_id, courier_id) VALUES($1,$2)
         ON CONFLICT (courier_id) DO UPDATE SET session_id = EXCLUDED.session_id`,
		sessionID, courierID); err != nil {
		return fmt.Errorf("bind %d->%d: %w", sessionID, courierID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("bind: commit tx: %w", err)
	}
	return nil
}
