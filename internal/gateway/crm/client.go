package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"courier-chat/internal/config"
	"courier-chat/internal/domain"
)

// OrdersFilter narrows the order listing.
type OrdersFilter struct {
	CourierID     int64
	Statuses      []domain.OrderStatus
	DeliveryTypes []string
	Page          int
	PageSize      int
}

// Client talks to the CRM order backend over its JSON API. Every call is
// bounded by the configured HTTP client timeout.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an order backend client from config.
func NewClient(cfg config.CRM) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// ActiveCouriers returns the full courier roster. Inactive entries are kept;
// the caller filters on Active.
func (c *Client) ActiveCouriers(ctx context.Context) ([]domain.RosterCourier, error) {
	var resp couriersResponse
	if err := c.get(ctx, "/api/v5/couriers", nil, &resp); err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	out := make([]domain.RosterCourier, 0, len(resp.Couriers))
	for _, d := range resp.Couriers {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Orders returns one page of orders matching the filter.
func (c *Client) Orders(ctx context.Context, f OrdersFilter) ([]domain.OrderSnapshot, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(f.PageSize))
	q.Set("page", fmt.Sprint(f.Page))
	q.Add("filter[couriers][]", fmt.Sprint(f.CourierID))
	for _, s := range f.Statuses {
		q.Add("filter[extendedStatus][]", string(s))
	}
	for _, t := range f.DeliveryTypes {
		q.Add("filter[deliveryTypes][]", t)
	}

	var resp ordersResponse
	if err := c.get(ctx, "/api/v5/orders", q, &resp); err != nil {
		return nil, fmt.Errorf("list orders page %d: %w", f.Page, err)
	}
	out := make([]domain.OrderSnapshot, 0, len(resp.Orders))
	for _, d := range resp.Orders {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Order fetches a single order by its internal id.
func (c *Client) Order(ctx context.Context, orderID string) (*domain.OrderSnapshot, error) {
	q := url.Values{}
	q.Set("by", "id")

	var resp orderResponse
	if err := c.get(ctx, "/api/v5/orders/"+url.PathEscape(orderID), q, &resp); err != nil {
		return nil, fmt.Errorf("get order %q: %w", orderID, err)
	}
	o := resp.Order.toDomain()
	return &o, nil
}

// UpdateStatus sets a new lifecycle status on the order.
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, site string) error {
	body, err := json.Marshal(map[string]string{
		"id":     orderID,
		"status": string(status),
	})
	if err != nil {
		return fmt.Errorf("update order %q: %w", orderID, err)
	}

	form := url.Values{}
	form.Set("by", "id")
	form.Set("site", site)
	form.Set("order", string(body))

	var resp envelope
	if err := c.postForm(ctx, "/api/v5/orders/"+url.PathEscape(orderID)+"/edit", form, &resp); err != nil {
		return fmt.Errorf("update order %q: %w", orderID, err)
	}
	return nil
}

// PaymentTypes returns the payment-type code to display name catalog.
func (c *Client) PaymentTypes(ctx context.Context) (map[string]string, error) {
	var resp paymentTypesResponse
	if err := c.get(ctx, "/api/v5/reference/payment-types", nil, &resp); err != nil {
		return nil, fmt.Errorf("payment types: %w", err)
	}
	out := make(map[string]string, len(resp.PaymentTypes))
	for _, pt := range resp.PaymentTypes {
		out[pt.Code] = pt.Name
	}
	return out, nil
}

// ProductPhotos returns photo URLs keyed by offer id. Offers without a photo
// are absent from the result.
func (c *Client) ProductPhotos(ctx context.Context, offerIDs []string) (map[string]string, error) {
	if len(offerIDs) == 0 {
		return map[string]string{}, nil
	}
	q := url.Values{}
	for _, id := range offerIDs {
		q.Add("filter[offerIds][]", id)
	}

	var resp productsResponse
	if err := c.get(ctx, "/api/v5/store/products", q, &resp); err != nil {
		return nil, fmt.Errorf("product photos: %w", err)
	}
	out := make(map[string]string, len(resp.Products))
	for _, p := range resp.Products {
		if p.ImageURL != "" {
			out[p.ID.String()] = p.ImageURL
		}
	}
	return out, nil
}

type withEnvelope interface {
	ok() (bool, string)
}

func (e envelope) ok() (bool, string) { return e.Success, e.ErrorMsg }

func (c *Client) get(ctx context.Context, path string, q url.Values, out withEnvelope) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out withEnvelope) error {
	form.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out withEnvelope) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if ok, msg := out.ok(); !ok {
		return &APIError{Status: resp.StatusCode, Msg: msg}
	}
	return nil
}
