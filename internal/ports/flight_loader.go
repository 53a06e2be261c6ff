package ports

import "github.com/aalvaropc/pnladl/internal/domain"

// FlightLoader loads structured flight records (JSON/YAML documents).
type FlightLoader interface {
	LoadFlight(path string) (domain.Flight, error)
}
