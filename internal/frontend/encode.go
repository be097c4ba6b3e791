package frontend

import (
	"courier-chat/internal/domain"
)

// Button is one actionable element of an encoded render.
type Button struct {
	Label          string `json:"label"`
	CallbackData   string `json:"callback_data,omitempty"`
	RequestContact bool   `json:"request_contact,omitempty"`
}

// RenderDTO is a render serialized for a transport (webhook response body or
// outbound bus message). Exactly one shape per render variant.
type RenderDTO struct {
	Type      string   `json:"type"`
	Text      string   `json:"text,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	PhotoURLs []string `json:"photo_urls,omitempty"`
	Buttons   []Button `json:"buttons,omitempty"`
}

// Button labels.
const (
	labelSharePhone = "Отправить телефон"
	labelListOrders = "Получить список заказов"
	labelRating     = "Моя статистика"
	labelBack       = "Назад"
	labelReturn     = "Возврат"
	labelDelivered  = "Доставлен"
)

const menuPrompt = "Выберите действие:"

// Encode serializes renders for a transport, attaching button layout and
// callback data. This is the sole place where callbacks are produced, mirror
// of Decode.
func Encode(renders []Render) []RenderDTO {
	out := make([]RenderDTO, 0, len(renders))
	for _, r := range renders {
		out = append(out, encodeOne(r))
	}
	return out
}

func encodeOne(r Render) RenderDTO {
	switch v := r.(type) {
	case ShowPhoneRequest:
		return RenderDTO{
			Type:    "phone_request",
			Text:    v.Text,
			Buttons: []Button{{Label: labelSharePhone, RequestContact: true}},
		}
	case ShowMenu:
		text := v.Text
		if text == "" {
			text = menuPrompt
		}
		return RenderDTO{
			Type: "menu",
			Text: text,
			Buttons: []Button{
				{Label: labelListOrders, CallbackData: EncodeListOrdersCallback()},
				{Label: labelRating, CallbackData: EncodeRatingCallback()},
			},
		}
	case ShowOrderList:
		buttons := make([]Button, 0, len(v.Entries)+1)
		for _, e := range v.Entries {
			buttons = append(buttons, Button{
				Label:        e.Label,
				CallbackData: EncodeOrderCallback(e.OrderID),
			})
		}
		buttons = append(buttons, Button{Label: labelBack, CallbackData: EncodeMenuCallback()})
		return RenderDTO{Type: "order_list", Text: v.Text, Buttons: buttons}
	case ShowOrderDetail:
		return RenderDTO{
			Type:     "order_detail",
			Text:     v.Text,
			PhotoURL: v.PhotoURL,
			Buttons: []Button{
				{Label: labelBack, CallbackData: EncodeListOrdersCallback()},
				{Label: labelReturn, CallbackData: EncodeApproveCallback(v.OrderID, domain.DecisionReturn)},
				{Label: labelDelivered, CallbackData: EncodeApproveCallback(v.OrderID, domain.DecisionDeliver)},
			},
		}
	case ShowDeliveryResult:
		return RenderDTO{Type: "delivery_result", Text: v.Text, PhotoURLs: v.PhotoURLs}
	case ShowRatingSummary:
		return RenderDTO{Type: "rating", Text: v.Text}
	case ShowErrorMessage:
		return RenderDTO{Type: "error", Text: v.Text}
	default:
		return RenderDTO{Type: "error", Text: "unsupported render"}
	}
}
