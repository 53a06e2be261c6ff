package pnl

import (
	"strconv"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
)

// Encoder writes flights in the flat PNL line format.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Encode(f domain.Flight) string {
	return Encode(f)
}

// Encode renders f. Every line, including the blank line closing each
// passenger, ends with a newline. Absent optional fields are omitted.
func Encode(f domain.Flight) string {
	var b strings.Builder

	writeLine(&b, messageTag, f.FlightNumber, f.Route, f.FlightDate.Format("2006-01-02"))

	for _, p := range f.Passengers {
		b.WriteString(passengerTag + p.LastName + "/" + p.FirstName + p.PassengerType + "\n")

		if p.PNR != "" {
			b.WriteString(".L/" + p.PNR + "\n")
		}
		if t := p.ElectronicTicket; t != nil {
			writeLine(&b, ".R/TKNE", t.Code, t.Status)
		}
		for _, bag := range p.Baggage {
			writeLine(&b, ".R/"+bag.Type, bag.Status, kilograms(bag.Weight), kilograms(bag.ExtraWeight))
		}
		for _, info := range p.SpecialRequests {
			switch info.Kind {
			case domain.InfoChild:
				writeLine(&b, ".R/CHLD", info.Status)
			case domain.InfoRequest:
				writeLine(&b, ".R/RQST", info.Status, info.SeatRequest)
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

func writeLine(b *strings.Builder, fields ...string) {
	b.WriteString(strings.Join(fields, " "))
	b.WriteString("\n")
}

func kilograms(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + "KG"
}
