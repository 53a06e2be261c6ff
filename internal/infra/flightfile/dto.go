package flightfile

// Flight documents are read and written with snake_case keys in both JSON and YAML.

type FlightDTO struct {
	FlightNumber   string         `json:"flight_number" yaml:"flight_number"`
	Route          string         `json:"route" yaml:"route"`
	FlightDate     string         `json:"flight_date" yaml:"flight_date"` // YYYY-MM-DD
	PassengerCount int            `json:"passenger_count" yaml:"passenger_count"`
	Passengers     []PassengerDTO `json:"passengers" yaml:"passengers"`
}

type PassengerDTO struct {
	LastName      string `json:"last_name" yaml:"last_name"`
	FirstName     string `json:"first_name" yaml:"first_name"`
	PassengerType string `json:"passenger_type" yaml:"passenger_type"`

	TourOperator     string     `json:"tour_operator,omitempty" yaml:"tour_operator,omitempty"`
	PNR              string     `json:"pnr,omitempty" yaml:"pnr,omitempty"`
	ElectronicTicket *TicketDTO `json:"electronic_ticket,omitempty" yaml:"electronic_ticket,omitempty"`

	SpecialRequests []AdditionalInfoDTO `json:"special_requests" yaml:"special_requests"`
	Baggage         []BaggageDTO        `json:"baggage" yaml:"baggage"`
}

type TicketDTO struct {
	Code   string `json:"code" yaml:"code"`
	Status string `json:"status" yaml:"status"`
}

type AdditionalInfoDTO struct {
	Kind        string `json:"kind" yaml:"kind"`
	Status      string `json:"status" yaml:"status"`
	SeatRequest string `json:"seat_request,omitempty" yaml:"seat_request,omitempty"`
}

type BaggageDTO struct {
	Type        string  `json:"type" yaml:"type"`
	Status      string  `json:"status" yaml:"status"`
	Weight      float64 `json:"weight" yaml:"weight"`
	ExtraWeight float64 `json:"extra_weight" yaml:"extra_weight"`
	Quantity    int     `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}
