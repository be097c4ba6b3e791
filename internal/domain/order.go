package domain

// OrderStatus is a CRM order lifecycle status code.
type OrderStatus string

// Status codes the workflow cares about.
const (
	StatusDeliveringCourier OrderStatus = "dostavliaet-kurer-ash"
	StatusDeliveringYandex  OrderStatus = "dostavliaet-kurer-iandeks"
	StatusDelivered         OrderStatus = "zakaz-dostavlen"
	StatusReturned          OrderStatus = "vozvrat-im"
)

// DeliverableStatuses are the two "out for delivery" statuses an order must be
// in for a courier to view or close it.
var DeliverableStatuses = []OrderStatus{StatusDeliveringCourier, StatusDeliveringYandex}

// DeliveryTypes used to filter the order list.
var DeliveryTypes = []string{"yandex", "kurer-ash"}

// Deliverable reports whether the status is one of the "out for delivery" codes.
func (s OrderStatus) Deliverable() bool {
	for _, v := range DeliverableStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Decision is the courier's verdict on an out-for-delivery order.
type Decision string

// Possible decisions.
const (
	DecisionDeliver Decision = "DELIVERY"
	DecisionReturn  Decision = "CANCEL"
)

// Valid checks if the Decision is a known value.
func (d Decision) Valid() bool {
	return d == DecisionDeliver || d == DecisionReturn
}

// OrderItem is one order line.
type OrderItem struct {
	OfferID  string
	Name     string
	Quantity int
}

// DeliveryTime is the agreed delivery time range.
type DeliveryTime struct {
	From string
	To   string
}

// Address holds the structured delivery address components. All fields are
// optional; Text is the raw free-form fallback.
type Address struct {
	City       string
	StreetType string
	Street     string
	Building   string
	House      string
	Housing    string
	Block      string
	Floor      string
	Flat       string
	Notes      string
	Text       string
}

// Payment is one payment entry of an order.
type Payment struct {
	Type string
	Paid bool
}

// OrderSnapshot is the set of order fields fetched at one point in time from
// the order backend. Not guaranteed fresh after time passes.
type OrderSnapshot struct {
	ID              string
	Number          string
	Site            string
	CourierID       int64
	Status          OrderStatus
	Items           []OrderItem
	LastName        string
	FirstName       string
	Patronymic      string
	Phone           string
	Recipient       string
	DeliveryDate    string
	DeliveryTime    DeliveryTime
	Address         Address
	CustomerComment string
	ManagerComment  string
	TotalSum        float64
	Payments        []Payment
}

// SenderName assembles the sender's full name, skipping empty parts.
func (o OrderSnapshot) SenderName() string {
	return RosterCourier{
		LastName:   o.LastName,
		FirstName:  o.FirstName,
		Patronymic: o.Patronymic,
	}.FullName()
}
