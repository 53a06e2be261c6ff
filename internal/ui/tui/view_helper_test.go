package tui

import (
	"strings"
	"testing"

	"github.com/aalvaropc/pnladl/internal/domain"
)

func TestClampString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc…"},
		{"àèìòù", 2, "àè…"},
		{"abc", 0, ""},
	}
	for _, c := range cases {
		if got := clampString(c.in, c.max); got != c.want {
			t.Errorf("clampString(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestRenderPassenger(t *testing.T) {
	p := domain.Passenger{
		LastName:         "ALBANESI",
		FirstName:        "MARCELLO",
		PassengerType:    "MR",
		PNR:              "655F43",
		ElectronicTicket: &domain.Ticket{Code: "1234567890123", Status: "HK1"},
		Baggage: []domain.BaggageDetails{
			{Type: "BAGS", Status: "HK1", Quantity: 1},
			{Type: "XBAG", Status: "HK1", Weight: 15.5, ExtraWeight: 15.5},
		},
		SpecialRequests: []domain.AdditionalInfo{
			{Kind: domain.InfoRequest, Status: "HK1", SeatRequest: "12A"},
		},
	}

	out := renderPassenger(p)
	wants := []string{
		"ALBANESI/MARCELLO (MR)",
		"PNR: 655F43",
		"Tour operator: -",
		"Ticket: 1234567890123 [HK1]",
		"BAGS [HK1] x1",
		"XBAG [HK1] 15.5kg / extra 15.5kg",
		"REQUEST [HK1] seat 12A",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output:\n%s", w, out)
		}
	}
}

func TestRenderPassenger_Empty(t *testing.T) {
	out := renderPassenger(domain.Passenger{LastName: "A", FirstName: "B", PassengerType: "MR"})
	if strings.Count(out, "(none)") != 2 {
		t.Fatalf("expected empty baggage and requests, got:\n%s", out)
	}
	if !strings.Contains(out, "Ticket: -") {
		t.Fatalf("expected missing ticket marker, got:\n%s", out)
	}
}
