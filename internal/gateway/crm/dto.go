package crm

import (
	"encoding/json"

	"courier-chat/internal/domain"
)

type envelope struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"errorMsg"`
}

type courierPhone struct {
	Number string `json:"number"`
}

type courierDTO struct {
	ID         int64        `json:"id"`
	Active     bool         `json:"active"`
	Phone      courierPhone `json:"phone"`
	LastName   string       `json:"lastName"`
	FirstName  string       `json:"firstName"`
	Patronymic string       `json:"patronymic"`
}

type couriersResponse struct {
	envelope
	Couriers []courierDTO `json:"couriers"`
}

func (d courierDTO) toDomain() domain.RosterCourier {
	return domain.RosterCourier{
		ID:         d.ID,
		Active:     d.Active,
		Phones:     d.Phone.Number,
		LastName:   d.LastName,
		FirstName:  d.FirstName,
		Patronymic: d.Patronymic,
	}
}

type offerDTO struct {
	ID          json.Number `json:"id"`
	DisplayName string      `json:"displayName"`
}

type itemDTO struct {
	Quantity int      `json:"quantity"`
	Offer    offerDTO `json:"offer"`
}

type timeDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type addressDTO struct {
	City       string `json:"city"`
	StreetType string `json:"streetType"`
	Street     string `json:"street"`
	Building   string `json:"building"`
	House      string `json:"house"`
	Housing    string `json:"housing"`
	Block      string `json:"block"`
	Floor      string `json:"floor"`
	Flat       string `json:"flat"`
	Notes      string `json:"notes"`
	Text       string `json:"text"`
}

type deliveryData struct {
	CourierID int64 `json:"courierId"`
}

type deliveryDTO struct {
	Date    string       `json:"date"`
	Time    timeDTO      `json:"time"`
	Address addressDTO   `json:"address"`
	Data    deliveryData `json:"data"`
}

type paymentDTO struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

type customFieldsDTO struct {
	Recipient string `json:"poluchatel"`
}

type orderDTO struct {
	ID              json.Number           `json:"id"`
	Number          string                `json:"number"`
	Site            string                `json:"site"`
	Status          string                `json:"status"`
	TotalSum        float64               `json:"totalSumm"`
	LastName        string                `json:"lastName"`
	FirstName       string                `json:"firstName"`
	Patronymic      string                `json:"patronymic"`
	Phone           string                `json:"phone"`
	CustomerComment string                `json:"customerComment"`
	ManagerComment  string                `json:"managerComment"`
	CustomFields    customFieldsDTO       `json:"customFields"`
	Delivery        deliveryDTO           `json:"delivery"`
	Items           []itemDTO             `json:"items"`
	Payments        map[string]paymentDTO `json:"payments"`
}

type ordersResponse struct {
	envelope
	Orders []orderDTO `json:"orders"`
}

type orderResponse struct {
	envelope
	Order orderDTO `json:"order"`
}

type paymentTypeDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type paymentTypesResponse struct {
	envelope
	PaymentTypes map[string]paymentTypeDTO `json:"paymentTypes"`
}

type productDTO struct {
	ID       json.Number `json:"id"`
	ImageURL string      `json:"imageUrl"`
}

type productsResponse struct {
	envelope
	Products []productDTO `json:"products"`
}

func (d orderDTO) toDomain() domain.OrderSnapshot {
	o := domain.OrderSnapshot{
		ID:              d.ID.String(),
		Number:          d.Number,
		Site:            d.Site,
		CourierID:       d.Delivery.Data.CourierID,
		Status:          domain.OrderStatus(d.Status),
		LastName:        d.LastName,
		FirstName:       d.FirstName,
		Patronymic:      d.Patronymic,
		Phone:           d.Phone,
		Recipient:       d.CustomFields.Recipient,
		DeliveryDate:    d.Delivery.Date,
		DeliveryTime:    domain.DeliveryTime{From: d.Delivery.Time.From, To: d.Delivery.Time.To},
		CustomerComment: d.CustomerComment,
		ManagerComment:  d.ManagerComment,
		TotalSum:        d.TotalSum,
	}
	o.Address = domain.Address{
		City:       d.Delivery.Address.City,
		StreetType: d.Delivery.Address.StreetType,
		Street:     d.Delivery.Address.Street,
		Building:   d.Delivery.Address.Building,
		House:      d.Delivery.Address.House,
		Housing:    d.Delivery.Address.Housing,
		Block:      d.Delivery.Address.Block,
		Floor:      d.Delivery.Address.Floor,
		Flat:       d.Delivery.Address.Flat,
		Notes:      d.Delivery.Address.Notes,
		Text:       d.Delivery.Address.Text,
	}
	o.Items = make([]domain.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		o.Items = append(o.Items, domain.OrderItem{
			OfferID:  it.Offer.ID.String(),
			Name:     it.Offer.DisplayName,
			Quantity: it.Quantity,
		})
	}
	for _, p := range d.Payments {
		o.Payments = append(o.Payments, domain.Payment{
			Type: p.Type,
			Paid: p.Status == "paid",
		})
	}
	return o
}
