package frontend

import (
	"errors"
	"fmt"
	"strings"

	"courier-chat/internal/domain"
)

// Update is a raw front-end event before decoding. Exactly one of Text,
// Contact or CallbackData is expected to be set.
type Update struct {
	SessionID    int64    `json:"session_id"`
	Text         string   `json:"text,omitempty"`
	Contact      *Contact `json:"contact,omitempty"`
	CallbackData string   `json:"callback_data,omitempty"`
}

// Contact is a shared phone contact.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
}

// ErrUnknownUpdate is returned for updates that decode to no known intent.
var ErrUnknownUpdate = errors.New("unknown update")

// Callback actions. Parameters are joined with ';', matching exactly, never
// by substring.
const (
	cbMenu       = "menu"
	cbGetOrders  = "get_orders"
	cbRating     = "rating"
	cbOrder      = "ORDER"
	cbApprove    = "ORDER_APPROVE"
	cbFieldDelim = ";"
)

// Decode turns a raw update into exactly one intent.
func Decode(u Update) (Intent, error) {
	switch {
	case u.Contact != nil:
		return ContactShared{PhoneNumber: u.Contact.PhoneNumber}, nil
	case u.CallbackData != "":
		return decodeCallback(u.CallbackData)
	case u.Text != "":
		return decodeCommand(u.Text)
	default:
		return nil, ErrUnknownUpdate
	}
}

func decodeCommand(text string) (Intent, error) {
	switch strings.TrimSpace(text) {
	case "/start":
		return Start{}, nil
	case "/menu":
		return OpenMenu{}, nil
	default:
		return nil, fmt.Errorf("%w: command %q", ErrUnknownUpdate, text)
	}
}

func decodeCallback(data string) (Intent, error) {
	parts := strings.Split(data, cbFieldDelim)
	switch parts[0] {
	case cbMenu:
		if len(parts) == 1 {
			return BackToMenu{}, nil
		}
	case cbGetOrders:
		if len(parts) == 1 {
			return SelectListOrders{}, nil
		}
	case cbRating:
		if len(parts) == 1 {
			return SelectRating{}, nil
		}
	case cbOrder:
		if len(parts) == 2 && parts[1] != "" {
			return SelectOrder{OrderID: parts[1]}, nil
		}
	case cbApprove:
		if len(parts) == 3 && parts[1] != "" {
			d := domain.Decision(parts[2])
			if d.Valid() {
				return ApproveOrder{OrderID: parts[1], Decision: d}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: callback %q", ErrUnknownUpdate, data)
}

// EncodeOrderCallback builds the callback data for opening an order.
func EncodeOrderCallback(orderID string) string {
	return cbOrder + cbFieldDelim + orderID
}

// EncodeApproveCallback builds the callback data for an approve action.
func EncodeApproveCallback(orderID string, d domain.Decision) string {
	return cbApprove + cbFieldDelim + orderID + cbFieldDelim + string(d)
}

// EncodeMenuCallback builds the callback data for the menu button.
func EncodeMenuCallback() string { return cbMenu }

// EncodeListOrdersCallback builds the callback data for the order list button.
func EncodeListOrdersCallback() string { return cbGetOrders }

// EncodeRatingCallback builds the callback data for the rating button.
func EncodeRatingCallback() string { return cbRating }
