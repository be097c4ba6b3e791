package frontend

import "courier-chat/internal/domain"

// Intent is a decoded user action. The set of variants is closed: transports
// decode raw updates exactly once at the boundary and the workflow switches
// over these types, never over raw callback strings.
type Intent interface{ isIntent() }

// Start opens the conversation and asks for the phone number.
type Start struct{}

// OpenMenu shows the main menu.
type OpenMenu struct{}

// ContactShared carries the phone number the user shared.
type ContactShared struct {
	PhoneNumber string
}

// SelectListOrders asks for the courier's current order list.
type SelectListOrders struct{}

// SelectOrder opens one order's detail view.
type SelectOrder struct {
	OrderID string
}

// SelectRating asks for the courier's completion stats.
type SelectRating struct{}

// ApproveOrder closes an order as delivered or returned.
type ApproveOrder struct {
	OrderID  string
	Decision domain.Decision
}

// BackToMenu returns to the main menu.
type BackToMenu struct{}

func (Start) isIntent()            {}
func (OpenMenu) isIntent()         {}
func (ContactShared) isIntent()    {}
func (SelectListOrders) isIntent() {}
func (SelectOrder) isIntent()      {}
func (SelectRating) isIntent()     {}
func (ApproveOrder) isIntent()     {}
func (BackToMenu) isIntent()       {}
