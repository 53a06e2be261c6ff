package flightfile

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/pnladl/internal/domain"
)

func TestMapFlightRequiresBaggageType(t *testing.T) {
	dto := FlightDTO{
		FlightNumber: "NO6149",
		Route:        "RHO",
		FlightDate:   "2026-09-07",
		Passengers: []PassengerDTO{
			{LastName: "A", FirstName: "B", PassengerType: "MR", Baggage: []BaggageDTO{{Status: "HK1"}}},
		},
	}

	_, err := MapFlight("flight.json", dto)
	if err == nil || !strings.Contains(err.Error(), "passengers[0].baggage[0].type") {
		t.Fatalf("expected baggage type error, got %v", err)
	}
}

func TestMapFlightRequiresDate(t *testing.T) {
	_, err := MapFlight("flight.json", FlightDTO{FlightNumber: "NO6149"})
	if err == nil || !strings.Contains(err.Error(), "flight_date") {
		t.Fatalf("expected date error, got %v", err)
	}
}

func TestMarshalJSONUsesSnakeCase(t *testing.T) {
	f := domain.NewFlight("NO6149", "RHO", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), []domain.Passenger{
		{
			LastName:        "ALBANESI",
			FirstName:       "MARCELLO",
			PassengerType:   "MR",
			Baggage:         []domain.BaggageDetails{{Type: "XBAG", Status: "HK1", Weight: 15, ExtraWeight: 15}},
			SpecialRequests: []domain.AdditionalInfo{},
		},
	})

	b, err := MarshalJSON(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["flight_date"] != "2026-09-07" || got["passenger_count"] != float64(1) {
		t.Fatalf("unexpected document %s", b)
	}
	pax := got["passengers"].([]any)[0].(map[string]any)
	if _, ok := pax["pnr"]; ok {
		t.Fatalf("expected empty pnr to be omitted")
	}
	if _, ok := pax["electronic_ticket"]; ok {
		t.Fatalf("expected nil ticket to be omitted")
	}
	bag := pax["baggage"].([]any)[0].(map[string]any)
	if bag["extra_weight"] != float64(15) {
		t.Fatalf("unexpected bag %v", bag)
	}
}

func TestMarshalYAMLLoadsBack(t *testing.T) {
	f := domain.NewFlight("NO6149", "RHO", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), []domain.Passenger{
		{LastName: "ALBANESI", FirstName: "MARCELLO", PassengerType: "MR", PNR: "655F43"},
	})

	b, err := MarshalYAML(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	dto, err := Unmarshal("flight.yaml", b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	back, err := MapFlight("flight.yaml", dto)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if back.Passengers[0].PNR != "655F43" || !back.FlightDate.Equal(f.FlightDate) {
		t.Fatalf("unexpected flight %+v", back)
	}
}

func TestIsFlightDocument(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"flight.json", true},
		{"flight.JSON", true},
		{"flight.yaml", true},
		{"flight.yml", true},
		{"message.pnl", false},
		{"message", false},
	}
	for _, c := range cases {
		if got := IsFlightDocument(c.input); got != c.want {
			t.Errorf("IsFlightDocument(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}
