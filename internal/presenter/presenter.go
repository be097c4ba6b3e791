// Package presenter builds user-facing text out of order snapshots. Pure
// transformations: everything the text needs is passed in by the caller.
package presenter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"courier-chat/internal/domain"
)

// Fallback strings for optional fields. Missing data renders as an explicit
// placeholder, never as a silent gap.
const (
	noItemName      = "- Нет названия -"
	noValue         = "?"
	noComment       = " - "
	noAddress       = "Адрес не указан"
	unknownPayment  = "Неизвестно"
	paidLabel       = "Оплачено"
	notPaidLabel    = "Не оплачено"
)

// ListLabel builds the order list entry label: "number (date from-to)".
func ListLabel(o domain.OrderSnapshot) string {
	date := orDefault(o.DeliveryDate, noValue)
	from := orDefault(o.DeliveryTime.From, noValue)
	to := orDefault(o.DeliveryTime.To, noValue)
	return fmt.Sprintf("%s (%s %s-%s)", o.Number, date, from, to)
}

// DetailText builds the full order view: header line plus Summary.
func DetailText(o domain.OrderSnapshot, paymentTypes map[string]string) string {
	return fmt.Sprintf("Заказ: <b>%s</b>\n", o.Number) + Summary(o, paymentTypes)
}

// Summary renders the order field by field. paymentTypes is the payment-type
// catalog; when nil (catalog fetch failed) the payment section is omitted
// entirely instead of failing the whole render.
func Summary(o domain.OrderSnapshot, paymentTypes map[string]string) string {
	var b strings.Builder

	b.WriteString("\nСостав заказа:\n")
	for _, item := range o.Items {
		name := orDefault(item.Name, noItemName)
		fmt.Fprintf(&b, " - %s, %d шт.\n", name, item.Quantity)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Заказчик: <i>%s</i> <b>%s</b>\n", o.SenderName(), o.Phone)
	fmt.Fprintf(&b, "Получатель: <i>%s</i>\n", o.Recipient)

	fmt.Fprintf(&b, "\nДата доставки: <b>%s</b>\n", orDefault(o.DeliveryDate, noValue))
	fmt.Fprintf(&b, "Время доставки: <b>%s - %s</b>\n",
		orDefault(o.DeliveryTime.From, noValue), orDefault(o.DeliveryTime.To, noValue))

	fmt.Fprintf(&b, "Адрес доставки: <i>%s</i>\n", FormatAddress(o.Address))

	if o.Address.Notes != "" {
		fmt.Fprintf(&b, "\nКомментарий к адресу: <i>%s</i>\n", o.Address.Notes)
	}
	fmt.Fprintf(&b, "Комментарий клиента: <i>%s</i>\n", orDefault(o.CustomerComment, noComment))
	fmt.Fprintf(&b, "Комментарий менеджера: <i>%s</i>\n", orDefault(o.ManagerComment, noComment))

	fmt.Fprintf(&b, "\nСтоимость: <b>%s</b>₽\n", formatSum(o.TotalSum))

	if paymentTypes != nil {
		writePayments(&b, o.Payments, paymentTypes)
	}

	return b.String()
}

// FormatAddress concatenates the present structured components in a fixed
// order, each with its semantic label. Falls back to the raw text field, then
// to the "not specified" placeholder.
func FormatAddress(a domain.Address) string {
	parts := make([]string, 0, 8)
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.Street != "" {
		if a.StreetType != "" {
			parts = append(parts, a.StreetType+" "+a.Street)
		} else {
			parts = append(parts, a.Street)
		}
	}
	for _, c := range []struct{ label, value string }{
		{"дом", a.Building},
		{"строение", a.House},
		{"корпус", a.Housing},
		{"подъезд", a.Block},
		{"этаж", a.Floor},
		{"квартира", a.Flat},
	} {
		if c.value != "" {
			parts = append(parts, c.label+" "+c.value)
		}
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if a.Text != "" {
		return a.Text
	}
	return noAddress
}

// OfferIDs returns the order's product identifiers deduplicated, preserving
// first-occurrence order. Items without an offer id are skipped.
func OfferIDs(o domain.OrderSnapshot) []string {
	seen := make(map[string]struct{}, len(o.Items))
	out := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if item.OfferID == "" {
			continue
		}
		if _, ok := seen[item.OfferID]; ok {
			continue
		}
		seen[item.OfferID] = struct{}{}
		out = append(out, item.OfferID)
	}
	return out
}

// PhotoURLs orders the fetched photo URLs by the order's offer sequence.
// Offers without a photo are skipped; a nil map yields an empty slice.
func PhotoURLs(o domain.OrderSnapshot, photosByOffer map[string]string) []string {
	ids := OfferIDs(o)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if url, ok := photosByOffer[id]; ok && url != "" {
			out = append(out, url)
		}
	}
	return out
}

func writePayments(b *strings.Builder, payments []domain.Payment, types map[string]string) {
	sorted := append([]domain.Payment(nil), payments...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Type < sorted[j].Type })

	for _, p := range sorted {
		name, ok := types[p.Type]
		if !ok {
			name = unknownPayment
		}
		fmt.Fprintf(b, "Тип оплаты: <b>%s</b>\n", name)
		status := notPaidLabel
		if p.Paid {
			status = paidLabel
		}
		fmt.Fprintf(b, "Статус оплаты: <b>%s</b>\n", status)
	}
}

func formatSum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
