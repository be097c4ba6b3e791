package presenter

import (
	"fmt"
	"strings"

	"courier-chat/internal/domain"
)

// StatsText renders a completion snapshot as the shared stats block used in
// the delivered-order message and the rating view.
func StatsText(s domain.StatsSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Доставлено сегодня: <b>%d</b>\n", s.DayCount)
	fmt.Fprintf(&b, "За неделю: <b>%d</b>\n", s.WeekCount)
	fmt.Fprintf(&b, "За месяц: <b>%d</b>\n", s.MonthCount)
	if s.Ranked() {
		fmt.Fprintf(&b, "Место в рейтинге дня: <b>%d</b>\n", s.DayRank)
	} else {
		b.WriteString("Пока вне топа дня\n")
	}
	return b.String()
}
