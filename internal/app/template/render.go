package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
)

// FlightVars exposes the flight fields usable in an output path pattern.
func FlightVars(f domain.Flight) domain.Vars {
	date := ""
	if !f.FlightDate.IsZero() {
		date = f.FlightDate.Format("2006-01-02")
	}
	return domain.Vars{
		"flight_number": f.FlightNumber,
		"route":         f.Route,
		"flight_date":   date,
		"passengers":    fmt.Sprint(len(f.Passengers)),
	}
}

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars domain.Vars) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid(input, "unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid(input, "empty template expression")
		}

		value, ok := domain.Get(vars, key)
		if !ok {
			return "", invalid(input, fmt.Sprintf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func invalid(input, msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s in %q: %w", msg, input, domain.ErrInvalidConfig),
	}
}
