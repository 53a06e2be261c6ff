package flightfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/pnladl/internal/domain"
)

const dateLayout = "2006-01-02"

// MapFlight converts a document into a domain flight. passenger_count in the
// document is ignored and recomputed.
func MapFlight(path string, dto FlightDTO) (domain.Flight, error) {
	if strings.TrimSpace(dto.FlightDate) == "" {
		return domain.Flight{}, invalidField(path, "flight_date", "flight date is required")
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(dto.FlightDate))
	if err != nil {
		return domain.Flight{}, invalidField(path, "flight_date", fmt.Sprintf("expected YYYY-MM-DD, got %q", dto.FlightDate))
	}

	passengers := make([]domain.Passenger, 0, len(dto.Passengers))
	for i, p := range dto.Passengers {
		fieldPrefix := fmt.Sprintf("passengers[%d]", i)

		out := domain.Passenger{
			LastName:        p.LastName,
			FirstName:       p.FirstName,
			PassengerType:   p.PassengerType,
			TourOperator:    p.TourOperator,
			PNR:             p.PNR,
			SpecialRequests: make([]domain.AdditionalInfo, 0, len(p.SpecialRequests)),
			Baggage:         make([]domain.BaggageDetails, 0, len(p.Baggage)),
		}
		if p.ElectronicTicket != nil {
			out.ElectronicTicket = &domain.Ticket{
				Code:   p.ElectronicTicket.Code,
				Status: p.ElectronicTicket.Status,
			}
		}

		for j, r := range p.SpecialRequests {
			kind := domain.InfoKind(strings.ToUpper(strings.TrimSpace(r.Kind)))
			if kind == "" {
				return domain.Flight{}, invalidField(path, fmt.Sprintf("%s.special_requests[%d].kind", fieldPrefix, j), "kind is required")
			}
			out.SpecialRequests = append(out.SpecialRequests, domain.AdditionalInfo{
				Kind:        kind,
				Status:      r.Status,
				SeatRequest: r.SeatRequest,
			})
		}

		for j, b := range p.Baggage {
			if strings.TrimSpace(b.Type) == "" {
				return domain.Flight{}, invalidField(path, fmt.Sprintf("%s.baggage[%d].type", fieldPrefix, j), "type is required")
			}
			out.Baggage = append(out.Baggage, domain.BaggageDetails{
				Type:        b.Type,
				Status:      b.Status,
				Weight:      b.Weight,
				ExtraWeight: b.ExtraWeight,
				Quantity:    b.Quantity,
			})
		}

		passengers = append(passengers, out)
	}

	return domain.NewFlight(dto.FlightNumber, dto.Route, date, passengers), nil
}

// FromFlight converts a domain flight into its document form.
func FromFlight(f domain.Flight) FlightDTO {
	dto := FlightDTO{
		FlightNumber:   f.FlightNumber,
		Route:          f.Route,
		FlightDate:     f.FlightDate.Format(dateLayout),
		PassengerCount: len(f.Passengers),
		Passengers:     make([]PassengerDTO, 0, len(f.Passengers)),
	}

	for _, p := range f.Passengers {
		out := PassengerDTO{
			LastName:        p.LastName,
			FirstName:       p.FirstName,
			PassengerType:   p.PassengerType,
			TourOperator:    p.TourOperator,
			PNR:             p.PNR,
			SpecialRequests: make([]AdditionalInfoDTO, 0, len(p.SpecialRequests)),
			Baggage:         make([]BaggageDTO, 0, len(p.Baggage)),
		}
		if p.ElectronicTicket != nil {
			out.ElectronicTicket = &TicketDTO{
				Code:   p.ElectronicTicket.Code,
				Status: p.ElectronicTicket.Status,
			}
		}
		for _, r := range p.SpecialRequests {
			out.SpecialRequests = append(out.SpecialRequests, AdditionalInfoDTO{
				Kind:        string(r.Kind),
				Status:      r.Status,
				SeatRequest: r.SeatRequest,
			})
		}
		for _, b := range p.Baggage {
			out.Baggage = append(out.Baggage, BaggageDTO{
				Type:        b.Type,
				Status:      b.Status,
				Weight:      b.Weight,
				ExtraWeight: b.ExtraWeight,
				Quantity:    b.Quantity,
			})
		}
		dto.Passengers = append(dto.Passengers, out)
	}

	return dto
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "flightfile.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
