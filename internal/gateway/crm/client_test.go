package crm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courier-chat/internal/config"
	"courier-chat/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.CRM{
		BaseURL: srv.URL,
		APIKey:  "secret-key",
		Timeout: 5 * time.Second,
	})
}

func TestClient_ActiveCouriers(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v5/couriers", r.URL.Path)
		require.Equal(t, "secret-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(`{
			"success": true,
			"couriers": [
				{"id": 7, "active": true, "phone": {"number": "79151234567,79150000000"},
				 "lastName": "Иванов", "firstName": "Иван"},
				{"id": 8, "active": false, "phone": {"number": "79990000000"}}
			]
		}`))
	})

	got, err := c.ActiveCouriers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.RosterCourier{
		ID:        7,
		Active:    true,
		Phones:    "79151234567,79150000000",
		LastName:  "Иванов",
		FirstName: "Иван",
	}, got[0])
	require.False(t, got[1].Active)
}

func TestClient_Orders_Filter(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "/api/v5/orders", r.URL.Path)
		require.Equal(t, "100", q.Get("limit"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, []string{"7"}, q["filter[couriers][]"])
		require.Equal(t,
			[]string{"dostavliaet-kurer-ash", "dostavliaet-kurer-iandeks"},
			q["filter[extendedStatus][]"])
		require.Equal(t, []string{"yandex", "kurer-ash"}, q["filter[deliveryTypes][]"])
		_, _ = w.Write([]byte(`{"success": true, "orders": [{"id": 101, "number": "101A"}]}`))
	})

	got, err := c.Orders(context.Background(), OrdersFilter{
		CourierID:     7,
		Statuses:      domain.DeliverableStatuses,
		DeliveryTypes: domain.DeliveryTypes,
		Page:          2,
		PageSize:      100,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "101", got[0].ID)
	require.Equal(t, "101A", got[0].Number)
}

func TestClient_Order_Mapping(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v5/orders/101", r.URL.Path)
		require.Equal(t, "id", r.URL.Query().Get("by"))
		_, _ = w.Write([]byte(`{
			"success": true,
			"order": {
				"id": 101,
				"number": "101A",
				"site": "flower-shop",
				"status": "dostavliaet-kurer-ash",
				"totalSumm": 3500.5,
				"phone": "79001112233",
				"customFields": {"poluchatel": "Мария"},
				"delivery": {
					"date": "2024-05-15",
					"time": {"from": "10:00", "to": "14:00"},
					"address": {"city": "Москва", "street": "Ленина", "building": "10"},
					"data": {"courierId": 7}
				},
				"items": [
					{"quantity": 2, "offer": {"id": 55, "displayName": "Букет"}}
				],
				"payments": {
					"p1": {"type": "bank-card", "status": "paid"}
				}
			}
		}`))
	})

	got, err := c.Order(context.Background(), "101")
	require.NoError(t, err)
	require.Equal(t, "101", got.ID)
	require.Equal(t, int64(7), got.CourierID)
	require.Equal(t, domain.StatusDeliveringCourier, got.Status)
	require.Equal(t, "Мария", got.Recipient)
	require.Equal(t, "2024-05-15", got.DeliveryDate)
	require.Equal(t, domain.DeliveryTime{From: "10:00", To: "14:00"}, got.DeliveryTime)
	require.Equal(t, "Москва", got.Address.City)
	require.InEpsilon(t, 3500.5, got.TotalSum, 1e-9)
	require.Equal(t, []domain.OrderItem{{OfferID: "55", Name: "Букет", Quantity: 2}}, got.Items)
	require.Equal(t, []domain.Payment{{Type: "bank-card", Paid: true}}, got.Payments)
}

func TestClient_UpdateStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v5/orders/101/edit", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "secret-key", r.PostForm.Get("apiKey"))
		require.Equal(t, "id", r.PostForm.Get("by"))
		require.Equal(t, "flower-shop", r.PostForm.Get("site"))
		require.JSONEq(t, `{"id":"101","status":"zakaz-dostavlen"}`, r.PostForm.Get("order"))
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	err := c.UpdateStatus(context.Background(), "101", domain.StatusDelivered, "flower-shop")
	require.NoError(t, err)
}

func TestClient_PaymentTypes(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v5/reference/payment-types", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"paymentTypes": {
				"bank-card": {"code": "bank-card", "name": "Банковская карта"},
				"cash": {"code": "cash", "name": "Наличные"}
			}
		}`))
	})

	got, err := c.PaymentTypes(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"bank-card": "Банковская карта",
		"cash":      "Наличные",
	}, got)
}

func TestClient_ProductPhotos(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v5/store/products", r.URL.Path)
		require.Equal(t, []string{"55", "56"}, r.URL.Query()["filter[offerIds][]"])
		_, _ = w.Write([]byte(`{
			"success": true,
			"products": [
				{"id": 55, "imageUrl": "http://img/55.jpg"},
				{"id": 56, "imageUrl": ""}
			]
		}`))
	})

	got, err := c.ProductPhotos(context.Background(), []string{"55", "56"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"55": "http://img/55.jpg"}, got)
}

func TestClient_ProductPhotos_NoIDs(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected for an empty id list")
	})

	got, err := c.ProductPhotos(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClient_APIFailure(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "errorMsg": "wrong apiKey"}`))
	})

	_, err := c.ActiveCouriers(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusOK, apiErr.Status)
	require.Equal(t, "wrong apiKey", apiErr.Msg)
}

func TestClient_HTTPFailure(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.ActiveCouriers(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
}
