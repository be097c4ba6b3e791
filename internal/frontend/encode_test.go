package frontend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"courier-chat/internal/domain"
)

func TestEncode_Menu(t *testing.T) {
	t.Parallel()

	dtos := Encode([]Render{ShowMenu{}})
	require.Len(t, dtos, 1)

	dto := dtos[0]
	require.Equal(t, "menu", dto.Type)
	require.Equal(t, "Выберите действие:", dto.Text)
	require.Len(t, dto.Buttons, 2)
	require.Equal(t, "get_orders", dto.Buttons[0].CallbackData)
	require.Equal(t, "rating", dto.Buttons[1].CallbackData)
}

func TestEncode_MenuKeepsText(t *testing.T) {
	t.Parallel()

	dto := Encode([]Render{ShowMenu{Text: "Здравствуйте, Иванов Иван!"}})[0]
	require.Equal(t, "Здравствуйте, Иванов Иван!", dto.Text)
}

func TestEncode_PhoneRequest(t *testing.T) {
	t.Parallel()

	dto := Encode([]Render{ShowPhoneRequest{Text: "текст"}})[0]
	require.Equal(t, "phone_request", dto.Type)
	require.Len(t, dto.Buttons, 1)
	require.True(t, dto.Buttons[0].RequestContact)
	require.Empty(t, dto.Buttons[0].CallbackData)
}

func TestEncode_OrderList(t *testing.T) {
	t.Parallel()

	dto := Encode([]Render{ShowOrderList{
		Text: "Собранные для вас заказы:",
		Entries: []OrderListEntry{
			{OrderID: "1", Label: "1A (2024-05-15 10:00-14:00)"},
			{OrderID: "2", Label: "2A (? ?-?)"},
		},
	}})[0]

	require.Equal(t, "order_list", dto.Type)
	require.Len(t, dto.Buttons, 3)
	require.Equal(t, "ORDER;1", dto.Buttons[0].CallbackData)
	require.Equal(t, "ORDER;2", dto.Buttons[1].CallbackData)
	// trailing back button
	require.Equal(t, "menu", dto.Buttons[2].CallbackData)
}

func TestEncode_OrderDetail(t *testing.T) {
	t.Parallel()

	dto := Encode([]Render{ShowOrderDetail{
		OrderID:  "101",
		Text:     "Заказ: <b>101A</b>",
		PhotoURL: "http://img/55.jpg",
	}})[0]

	require.Equal(t, "order_detail", dto.Type)
	require.Equal(t, "http://img/55.jpg", dto.PhotoURL)
	require.Len(t, dto.Buttons, 3)
	require.Equal(t, "get_orders", dto.Buttons[0].CallbackData)
	require.Equal(t, "ORDER_APPROVE;101;"+string(domain.DecisionReturn), dto.Buttons[1].CallbackData)
	require.Equal(t, "ORDER_APPROVE;101;"+string(domain.DecisionDeliver), dto.Buttons[2].CallbackData)
}

func TestEncode_DeliveryResultAndErrors(t *testing.T) {
	t.Parallel()

	dtos := Encode([]Render{
		ShowDeliveryResult{Text: "готово", PhotoURLs: []string{"a", "b"}},
		ShowRatingSummary{Text: "статистика"},
		ShowErrorMessage{Text: "ошибка"},
	})

	require.Equal(t, "delivery_result", dtos[0].Type)
	require.Equal(t, []string{"a", "b"}, dtos[0].PhotoURLs)
	require.Equal(t, "rating", dtos[1].Type)
	require.Equal(t, "error", dtos[2].Type)
}
