package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/pnladl/internal/domain"
)

type ValidateFlight struct {
	opts options
}

func NewValidateFlight(opts ...Option) *ValidateFlight {
	return &ValidateFlight{opts: newOptions(opts)}
}

// Check returns every rule the flight breaks, in field order.
func (uc *ValidateFlight) Check(f domain.Flight) []domain.Violation {
	var out []domain.Violation

	if strings.TrimSpace(f.FlightNumber) == "" {
		out = append(out, domain.Violation{Field: "flight_number", Message: "Flight number is required."})
	}
	if strings.TrimSpace(f.Route) == "" {
		out = append(out, domain.Violation{Field: "route", Message: "Route is required."})
	}

	now := uc.opts.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if f.FlightDate.Before(today) {
		out = append(out, domain.Violation{Field: "flight_date", Message: "Flight date cannot be in the past."})
	}

	for i, p := range f.Passengers {
		prefix := fmt.Sprintf("passengers[%d]", i)
		if strings.TrimSpace(p.LastName) == "" {
			out = append(out, domain.Violation{Field: prefix + ".last_name", Message: "Last name is required."})
		}
		if strings.TrimSpace(p.FirstName) == "" {
			out = append(out, domain.Violation{Field: prefix + ".first_name", Message: "First name is required."})
		}
		if strings.TrimSpace(p.PassengerType) == "" {
			out = append(out, domain.Violation{Field: prefix + ".passenger_type", Message: "Passenger type is required."})
		}
	}

	return out
}

// Execute runs Check and reports violations as a validation OpError.
func (uc *ValidateFlight) Execute(ctx context.Context, f domain.Flight) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	violations := uc.Check(f)
	if len(violations) == 0 {
		return nil
	}

	uc.opts.log.Info("validate.failed", "flight", f.FlightNumber, "violations", len(violations))
	return &domain.OpError{
		Op:   "usecase.validate",
		Kind: domain.KindValidation,
		Err:  &domain.ValidationError{Violations: violations},
	}
}
