package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Two durable tables owned by this service: courier bindings (unique on both
// sides) and the append-only delivery event ledger.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS courier_bindings (
        session_id BIGINT PRIMARY KEY,
        courier_id BIGINT NOT NULL UNIQUE
    )`,
	`CREATE TABLE IF NOT EXISTS delivery_events (
        id           BIGSERIAL PRIMARY KEY,
        courier_id   BIGINT NOT NULL,
        order_id     TEXT NOT NULL,
        order_number TEXT NOT NULL,
        completed_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_events_courier_completed
        ON delivery_events (courier_id, completed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_events_completed
        ON delivery_events (completed_at)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
