package frontend

// Render is one instruction for the conversational front end. Variants carry
// semantic data only; button layout and callback encoding belong to the
// transport.
type Render interface{ isRender() }

// ShowPhoneRequest asks the user to share their phone number.
type ShowPhoneRequest struct {
	Text string
}

// ShowMenu shows the main menu, optionally preceded by a text line.
type ShowMenu struct {
	Text string
}

// OrderListEntry is one row of the order list.
type OrderListEntry struct {
	OrderID string
	Label   string
}

// ShowOrderList shows the courier's current orders as selectable entries.
type ShowOrderList struct {
	Text    string
	Entries []OrderListEntry
}

// ShowOrderDetail shows one order with its photo (if any) and the
// deliver/return actions.
type ShowOrderDetail struct {
	OrderID  string
	Text     string
	PhotoURL string
}

// ShowDeliveryResult reports the outcome of an approve action, with the
// order's photos when it was delivered.
type ShowDeliveryResult struct {
	Text      string
	PhotoURLs []string
}

// ShowRatingSummary shows the courier's completion counts and rank.
type ShowRatingSummary struct {
	Text string
}

// ShowErrorMessage shows a user-facing failure message.
type ShowErrorMessage struct {
	Text string
}

func (ShowPhoneRequest) isRender()   {}
func (ShowMenu) isRender()           {}
func (ShowOrderList) isRender()      {}
func (ShowOrderDetail) isRender()    {}
func (ShowDeliveryResult) isRender() {}
func (ShowRatingSummary) isRender()  {}
func (ShowErrorMessage) isRender()   {}
