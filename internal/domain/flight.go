package domain

import "time"

// InfoKind classifies an AdditionalInfo entry.
type InfoKind string

const (
	InfoChild   InfoKind = "CHILD"
	InfoRequest InfoKind = "REQUEST"
)

// BaggageExtra is the type of baggage read from .R/XBAG lines. PDBG lines
// carry their own type token.
const BaggageExtra = "XBAG"

// Ticket is an electronic ticket attached to a passenger.
type Ticket struct {
	Code   string
	Status string // e.g. HK1
}

// AdditionalInfo is a special service request (child, seat request).
type AdditionalInfo struct {
	Kind        InfoKind
	Status      string
	SeatRequest string // Only set for InfoRequest.
}

// BaggageDetails describes one baggage line. Weights are kilograms.
type BaggageDetails struct {
	Type        string
	Status      string
	Weight      float64
	ExtraWeight float64
	Quantity    int
}

// Passenger is one traveler record: a header line plus its continuation lines.
type Passenger struct {
	LastName      string
	FirstName     string
	PassengerType string // e.g. MR, MRS, CHLD

	TourOperator     string
	PNR              string
	ElectronicTicket *Ticket

	// Both lists keep the order of the source lines.
	SpecialRequests []AdditionalInfo
	Baggage         []BaggageDetails
}

// Flight is one decoded message.
type Flight struct {
	FlightNumber   string
	Route          string
	FlightDate     time.Time
	PassengerCount int
	Passengers     []Passenger
}

// NewFlight builds a Flight and derives PassengerCount from passengers.
func NewFlight(number, route string, date time.Time, passengers []Passenger) Flight {
	if passengers == nil {
		passengers = []Passenger{}
	}
	return Flight{
		FlightNumber:   number,
		Route:          route,
		FlightDate:     date,
		PassengerCount: len(passengers),
		Passengers:     passengers,
	}
}
