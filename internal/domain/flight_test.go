package domain

import (
	"testing"
	"time"
)

func TestNewFlightDerivesPassengerCount(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	f := NewFlight("NO6149", "RHO", date, []Passenger{
		{LastName: "ALBANESI", FirstName: "MARCELLO", PassengerType: "MR"},
		{LastName: "ROSSI", FirstName: "ANNA", PassengerType: "MRS"},
	})

	if f.PassengerCount != 2 {
		t.Fatalf("expected passenger count 2, got %d", f.PassengerCount)
	}
	if f.Passengers[1].LastName != "ROSSI" {
		t.Fatalf("expected order to be preserved")
	}
}

func TestNewFlightNilPassengers(t *testing.T) {
	f := NewFlight("NO6149", "RHO", time.Time{}, nil)
	if f.Passengers == nil {
		t.Fatalf("expected passengers to be initialized")
	}
	if f.PassengerCount != 0 {
		t.Fatalf("expected passenger count 0, got %d", f.PassengerCount)
	}
}
