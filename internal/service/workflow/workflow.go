// Package workflow is the order-interaction state machine: it validates
// authorization and order state, drives the order backend, appends to the
// completion ledger and produces render instructions for the front end.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-chat/internal/apperr"
	"courier-chat/internal/domain"
	"courier-chat/internal/frontend"
	"courier-chat/internal/gateway/crm"
	"courier-chat/internal/logx"
	"courier-chat/internal/presenter"
)

// User-facing texts.
const (
	textPhoneRequest  = "Отправьте свой телефон через меню в верхнем правом углу экрана, или нажав на кнопку ниже."
	textNotRegistered = "Вы не зарегистрированы в системе, пожалуйста обратитесь к администратору и нажмите /start повторно"
	textReselect      = "Что-то пошло не так, выберите заказ повторно:"
	textGenericError  = "Произошла ошибка. Попробуйте позже."
	textNoOrders      = "Доставляемых вами заказов пока нет"
	textOrdersHeader  = "Собранные для вас заказы:"
)

// Config carries the workflow tuning knobs.
type Config struct {
	PageSize         int
	MaxPages         int
	OperationTimeout time.Duration
}

// Service is the workflow controller. One Handle call processes one user
// intent to completion; different sessions may run Handle concurrently.
type Service struct {
	backend  OrderBackend
	bindings Bindings
	ledger   Ledger
	stats    Stats
	logger   logx.Logger
	recorded counter
	cfg      Config
	phrase   func() string
}

// NewService creates and configures the workflow controller.
func NewService(backend OrderBackend, bindings Bindings, ledger Ledger, stats Stats,
	logger logx.Logger, recorded counter, cfg Config) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 30 * time.Second
	}
	return &Service{
		backend:  backend,
		bindings: bindings,
		ledger:   ledger,
		stats:    stats,
		logger:   logger,
		recorded: recorded,
		cfg:      cfg,
		phrase:   presenter.RandomPhrase,
	}
}

// Handle processes one decoded intent and returns the renders for the front
// end. Failures never escape: they map to user-visible messages and return
// the session to the menu.
func (s *Service) Handle(ctx context.Context, sessionID int64, intent frontend.Intent) []frontend.Render {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer cancel()

	renders, err := s.dispatch(ctx, sessionID, intent)
	if err == nil {
		return renders
	}
	return s.renderError(sessionID, intent, err)
}

func (s *Service) dispatch(ctx context.Context, sessionID int64, intent frontend.Intent) ([]frontend.Render, error) {
	switch it := intent.(type) {
	case frontend.Start:
		return []frontend.Render{frontend.ShowPhoneRequest{Text: textPhoneRequest}}, nil
	case frontend.OpenMenu, frontend.BackToMenu:
		return s.menu(ctx, sessionID)
	case frontend.ContactShared:
		return s.authenticate(ctx, sessionID, it.PhoneNumber)
	case frontend.SelectListOrders:
		return s.listOrders(ctx, sessionID)
	case frontend.SelectOrder:
		return s.inspect(ctx, sessionID, it.OrderID)
	case frontend.SelectRating:
		return s.rating(ctx, sessionID)
	case frontend.ApproveOrder:
		return s.approve(ctx, sessionID, it.OrderID, it.Decision)
	default:
		return nil, fmt.Errorf("unsupported intent %T", intent)
	}
}

// courier resolves the session binding. A missing binding is not an error:
// the user is sent back to phone onboarding.
func (s *Service) courier(ctx context.Context, sessionID int64) (int64, bool, error) {
	courierID, found, err := s.bindings.Lookup(ctx, sessionID)
	if err != nil {
		return 0, false, storageErr("lookup binding", err)
	}
	return courierID, found, nil
}

func (s *Service) menu(ctx context.Context, sessionID int64) ([]frontend.Render, error) {
	if _, found, err := s.courier(ctx, sessionID); err != nil {
		return nil, err
	} else if !found {
		return []frontend.Render{frontend.ShowPhoneRequest{Text: textPhoneRequest}}, nil
	}
	return []frontend.Render{frontend.ShowMenu{}}, nil
}

func (s *Service) authenticate(ctx context.Context, sessionID int64, phone string) ([]frontend.Render, error) {
	normalized := domain.NormalizePhone(phone)
	if normalized == "" {
		return nil, apperr.ErrNotRegistered
	}

	roster, err := s.backend.ActiveCouriers(ctx)
	if err != nil {
		return nil, backendErr("authenticate: roster", err)
	}

	for _, c := range roster {
		if !c.Active || !c.MatchesPhone(normalized) {
			continue
		}
		if err := s.bindings.Bind(ctx, sessionID, c.ID); err != nil {
			return nil, storageErr("bind", err)
		}
		s.logger.Info("courier authenticated",
			logx.Int64("session_id", sessionID),
			logx.Int64("courier_id", c.ID),
		)
		greeting := fmt.Sprintf("Здравствуйте, %s!", c.FullName())
		return []frontend.Render{frontend.ShowMenu{Text: greeting}}, nil
	}
	return nil, apperr.ErrNotRegistered
}

func (s *Service) listOrders(ctx context.Context, sessionID int64) ([]frontend.Render, error) {
	courierID, found, err := s.courier(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []frontend.Render{frontend.ShowPhoneRequest{Text: textPhoneRequest}}, nil
	}

	orders := s.fetchOrders(ctx, courierID)
	if len(orders) == 0 {
		return []frontend.Render{frontend.ShowMenu{Text: textNoOrders}}, nil
	}

	entries := make([]frontend.OrderListEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, frontend.OrderListEntry{
			OrderID: o.ID,
			Label:   presenter.ListLabel(o),
		})
	}
	return []frontend.Render{frontend.ShowOrderList{Text: textOrdersHeader, Entries: entries}}, nil
}

// fetchOrders paginates the backend sequentially. It stops at the first short
// page or after the page ceiling, whichever comes first. A page failure
// terminates pagination and keeps what was accumulated so far.
func (s *Service) fetchOrders(ctx context.Context, courierID int64) []domain.OrderSnapshot {
	var all []domain.OrderSnapshot
	for page := 1; page <= s.cfg.MaxPages; page++ {
		batch, err := s.backend.Orders(ctx, crm.OrdersFilter{
			CourierID:     courierID,
			Statuses:      domain.DeliverableStatuses,
			DeliveryTypes: domain.DeliveryTypes,
			Page:          page,
			PageSize:      s.cfg.PageSize,
		})
		if err != nil {
			s.logger.Warn("orders page fetch failed",
				logx.Int64("courier_id", courierID),
				logx.Int("page", page),
				logx.Err(err),
			)
			break
		}
		all = append(all, batch...)
		if len(batch) < s.cfg.PageSize {
			break
		}
	}
	return all
}

// fetchGuarded re-fetches the order and enforces the two guards: the order
// must still belong to the courier and must still be out for delivery.
func (s *Service) fetchGuarded(ctx context.Context, courierID int64, orderID string) (*domain.OrderSnapshot, error) {
	o, err := s.backend.Order(ctx, orderID)
	if err != nil {
		return nil, backendErr("get order", err)
	}
	if o.CourierID != courierID {
		return nil, apperr.ErrForbidden
	}
	if !o.Status.Deliverable() {
		return nil, apperr.ErrStaleOrder
	}
	return o, nil
}

func (s *Service) inspect(ctx context.Context, sessionID int64, orderID string) ([]frontend.Render, error) {
	courierID, found, err := s.courier(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []frontend.Render{frontend.ShowPhoneRequest{Text: textPhoneRequest}}, nil
	}

	o, err := s.fetchGuarded(ctx, courierID, orderID)
	if err != nil {
		return nil, err
	}

	text := presenter.DetailText(*o, s.paymentTypes(ctx))
	photos := s.photoURLs(ctx, *o)
	var first string
	if len(photos) > 0 {
		first = photos[0]
	}
	return []frontend.Render{frontend.ShowOrderDetail{
		OrderID:  o.ID,
		Text:     text,
		PhotoURL: first,
	}}, nil
}

func (s *Service) approve(ctx context.Context, sessionID int64, orderID string, decision domain.Decision) ([]frontend.Render, error) {
	courierID, found, err := s.courier(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []frontend.Render{frontend.ShowPhoneRequest{Text: textPhoneRequest}}, nil
	}

	// state may have moved since the order was viewed, both guards run again
	o, err := s.fetchGuarded(ctx, courierID, orderID)
	if err != nil {
		return nil, err
	}

	switch decision {
	case domain.DecisionDeliver:
		return s.deliver(ctx, courierID, o)
	case domain.DecisionReturn:
		return s.giveBack(ctx, o)
	default:
		return nil, fmt.Errorf("unsupported decision %q", decision)
	}
}

func (s *Service) deliver(ctx context.Context, courierID int64, o *domain.OrderSnapshot) ([]frontend.Render, error) {
	if err := s.backend.UpdateStatus(ctx, o.ID, domain.StatusDelivered, o.Site); err != nil {
		return nil, backendErr("update status", err)
	}

	// The backend update and the ledger write are deliberately not
	// transactional. A failed write is dropped, not retried: a missed local
	// stat is recoverable, a double-counted one corrupts the leaderboard.
	if err := s.ledger.Record(ctx, courierID, o.ID, o.Number); err != nil {
		s.logger.Error("ledger write failed after delivered update",
			logx.Int64("courier_id", courierID),
			logx.String("order_id", o.ID),
			logx.String("order_number", o.Number),
			logx.Err(err),
		)
	} else if s.recorded != nil {
		s.recorded.Inc()
	}

	text := fmt.Sprintf("<b>Вы доставили заказ %s.</b>\n", o.Number)
	text += presenter.Summary(*o, s.paymentTypes(ctx))

	if snap, err := s.stats.Snapshot(ctx, courierID); err != nil {
		s.logger.Warn("stats snapshot failed",
			logx.Int64("courier_id", courierID),
			logx.Err(err),
		)
	} else {
		text += "\n" + presenter.StatsText(snap)
	}
	text += "\n" + s.phrase()

	s.logger.Info("order delivered",
		logx.Int64("courier_id", courierID),
		logx.String("order_id", o.ID),
		logx.String("order_number", o.Number),
	)

	return []frontend.Render{
		frontend.ShowDeliveryResult{Text: text, PhotoURLs: s.photoURLs(ctx, *o)},
		frontend.ShowMenu{},
	}, nil
}

func (s *Service) giveBack(ctx context.Context, o *domain.OrderSnapshot) ([]frontend.Render, error) {
	if err := s.backend.UpdateStatus(ctx, o.ID, domain.StatusReturned, o.Site); err != nil {
		return nil, backendErr("update status", err)
	}

	s.logger.Info("order returned",
		logx.String("order_id", o.ID),
		logx.String("order_number", o.Number),
	)

	return []frontend.Render{
		frontend.ShowDeliveryResult{Text: fmt.Sprintf("Вы вернули заказ %s", o.Number)},
		frontend.ShowMenu{},
	}, nil
}

func (s *Service) rating(ctx context.Context, sessionID int64) ([]frontend.Render, error) {
	courierID, found, err := s.courier(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []frontend.Render{frontend.ShowPhoneRequest{Text: textPhoneRequest}}, nil
	}

	snap, err := s.stats.Snapshot(ctx, courierID)
	if err != nil {
		return nil, storageErr("stats snapshot", err)
	}
	return []frontend.Render{
		frontend.ShowRatingSummary{Text: "Ваша статистика:\n" + presenter.StatsText(snap)},
	}, nil
}

// paymentTypes fetches the payment-type catalog. On failure the payment
// section of the summary is omitted rather than failing the whole render.
func (s *Service) paymentTypes(ctx context.Context) map[string]string {
	types, err := s.backend.PaymentTypes(ctx)
	if err != nil {
		s.logger.Warn("payment types fetch failed", logx.Err(err))
		return nil
	}
	return types
}

// photoURLs resolves the order's product photos, empty on lookup failure.
func (s *Service) photoURLs(ctx context.Context, o domain.OrderSnapshot) []string {
	ids := presenter.OfferIDs(o)
	if len(ids) == 0 {
		return nil
	}
	photos, err := s.backend.ProductPhotos(ctx, ids)
	if err != nil {
		s.logger.Warn("product photos fetch failed",
			logx.String("order_id", o.ID),
			logx.Err(err),
		)
		return nil
	}
	return presenter.PhotoURLs(o, photos)
}

func (s *Service) renderError(sessionID int64, intent frontend.Intent, err error) []frontend.Render {
	switch {
	case errors.Is(err, apperr.ErrNotRegistered):
		return []frontend.Render{frontend.ShowErrorMessage{Text: textNotRegistered}}
	case errors.Is(err, apperr.ErrForbidden), errors.Is(err, apperr.ErrStaleOrder):
		s.logger.Warn("order guard rejected",
			logx.Int64("session_id", sessionID),
			logx.Err(err),
		)
		return []frontend.Render{
			frontend.ShowErrorMessage{Text: textReselect},
			frontend.ShowMenu{},
		}
	case errors.Is(err, apperr.ErrStorage):
		s.logger.Error("storage failure",
			logx.Int64("session_id", sessionID),
			logx.Any("intent", fmt.Sprintf("%T", intent)),
			logx.Err(err),
		)
		return []frontend.Render{
			frontend.ShowErrorMessage{Text: textGenericError},
			frontend.ShowMenu{},
		}
	default:
		s.logger.Error("intent failed",
			logx.Int64("session_id", sessionID),
			logx.Any("intent", fmt.Sprintf("%T", intent)),
			logx.Err(err),
		)
		return []frontend.Render{
			frontend.ShowErrorMessage{Text: textGenericError},
			frontend.ShowMenu{},
		}
	}
}

func backendErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperr.ErrBackendUnavailable, err)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperr.ErrStorage, err)
}
