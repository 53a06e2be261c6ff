package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/pnladl/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func formatKG(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + "kg"
}

func renderFlightSummary(f domain.Flight) string {
	date := "-"
	if !f.FlightDate.IsZero() {
		date = f.FlightDate.Format("2006-01-02")
	}
	return fmt.Sprintf("Flight %s • %s • %s • %d passenger(s)\n", f.FlightNumber, f.Route, date, f.PassengerCount)
}

func renderPassenger(p domain.Passenger) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s/%s (%s)\n\n", p.LastName, p.FirstName, p.PassengerType))

	b.WriteString("PNR: ")
	b.WriteString(orDash(p.PNR))
	b.WriteString("\nTour operator: ")
	b.WriteString(orDash(p.TourOperator))
	b.WriteString("\nTicket: ")
	if p.ElectronicTicket != nil {
		b.WriteString(p.ElectronicTicket.Code)
		b.WriteString(" [")
		b.WriteString(p.ElectronicTicket.Status)
		b.WriteString("]")
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n\n")

	b.WriteString("Baggage:\n")
	if len(p.Baggage) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, bag := range p.Baggage {
		b.WriteString("  - ")
		b.WriteString(bag.Type)
		b.WriteString(" [")
		b.WriteString(bag.Status)
		b.WriteString("]")
		if bag.Quantity > 0 {
			b.WriteString(fmt.Sprintf(" x%d", bag.Quantity))
		}
		if bag.Weight != 0 || bag.ExtraWeight != 0 {
			b.WriteString(" ")
			b.WriteString(formatKG(bag.Weight))
			b.WriteString(" / extra ")
			b.WriteString(formatKG(bag.ExtraWeight))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRequests:\n")
	if len(p.SpecialRequests) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, r := range p.SpecialRequests {
		b.WriteString("  - ")
		b.WriteString(string(r.Kind))
		b.WriteString(" [")
		b.WriteString(r.Status)
		b.WriteString("]")
		if r.SeatRequest != "" {
			b.WriteString(" seat ")
			b.WriteString(clampString(r.SeatRequest, 12))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
