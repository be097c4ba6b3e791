package workflow

import (
	"context"

	"courier-chat/internal/domain"
	"courier-chat/internal/gateway/crm"
)

// OrderBackend is the order backend subset the workflow drives.
type OrderBackend interface {
	ActiveCouriers(ctx context.Context) ([]domain.RosterCourier, error)
	Orders(ctx context.Context, f crm.OrdersFilter) ([]domain.OrderSnapshot, error)
	Order(ctx context.Context, orderID string) (*domain.OrderSnapshot, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, site string) error
	PaymentTypes(ctx context.Context) (map[string]string, error)
	ProductPhotos(ctx context.Context, offerIDs []string) (map[string]string, error)
}

// Bindings is the courier identity store.
type Bindings interface {
	Lookup(ctx context.Context, sessionID int64) (int64, bool, error)
	Bind(ctx context.Context, sessionID, courierID int64) error
}

// Ledger is the append side of the completion ledger.
type Ledger interface {
	Record(ctx context.Context, courierID int64, orderID, orderNumber string) error
}

// Stats computes the courier's completion snapshot.
type Stats interface {
	Snapshot(ctx context.Context, courierID int64) (domain.StatsSnapshot, error)
}

type counter interface {
	Inc()
}
