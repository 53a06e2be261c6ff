package ports

import "github.com/aalvaropc/pnladl/internal/domain"

// Decoder turns message lines into a flight.
type Decoder interface {
	Decode(lines []string) (domain.Flight, error)
}

// Encoder renders a flight as message text.
type Encoder interface {
	Encode(f domain.Flight) string
}
