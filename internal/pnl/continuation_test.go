package pnl

import (
	"testing"

	"github.com/aalvaropc/pnladl/internal/domain"
)

func decodeContinuation(t *testing.T, line string) (domain.Passenger, error) {
	t.Helper()
	return decodeBlock([]sourceLine{
		{no: 1, text: "1ALBANESI/MARCELLO-MR"},
		{no: 2, text: line},
	})
}

func TestMatchRuleOrder(t *testing.T) {
	cases := map[string]string{
		".L/655F43":             ".L",
		".R/TOP AL.L":           ".R/TOP",
		".R/PDBG HK1 BAGS 01":   ".R/PDBG",
		".R/XBAG HK1 15KG FREE": ".R/XBAG",
		".R/TKNE HK1 123/1":     ".R/TKNE",
		".R/CHLD HK1":           ".R/CHLD",
		".R/RQST HK1 12A":       ".R/RQST",
	}
	for line, tag := range cases {
		r, _, ok := matchRule(line)
		if !ok || r.tag != tag {
			t.Errorf("matchRule(%q) = %q, %v; want %q", line, r.tag, ok, tag)
		}
	}

	for _, line := range []string{".R/DOCS P/ITA", ".W/K/12/20", "", "REMARK"} {
		if _, _, ok := matchRule(line); ok {
			t.Errorf("expected %q to match no rule", line)
		}
	}
}

func TestDecodeUnknownContinuationIgnored(t *testing.T) {
	p, err := decodeContinuation(t, ".R/DOCS HK1 P/ITA/X")
	if err != nil {
		t.Fatalf("unknown tags must be ignored, got %v", err)
	}
	if p.PNR != "" || len(p.Baggage) != 0 || len(p.SpecialRequests) != 0 || p.ElectronicTicket != nil {
		t.Fatalf("unknown tag must not contribute fields: %+v", p)
	}
}

func TestDecodePaidBaggage(t *testing.T) {
	p, err := decodeContinuation(t, ".R/PDBG HK1 BAGS 02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.BaggageDetails{Type: "BAGS", Status: "HK1", Quantity: 2}
	if len(p.Baggage) != 1 || p.Baggage[0] != want {
		t.Fatalf("got %+v, want %+v", p.Baggage, want)
	}

	p, err = decodeContinuation(t, ".R/PDBG HK1 BAGS XX")
	if err != nil {
		t.Fatalf("unparsable quantity must default, got %v", err)
	}
	if p.Baggage[0].Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", p.Baggage[0].Quantity)
	}

	if _, err := decodeContinuation(t, ".R/PDBG HK1 BAGS"); err == nil {
		t.Fatalf("expected error with two fields")
	}
}

func TestDecodeExtraBaggage(t *testing.T) {
	p, err := decodeContinuation(t, ".R/XBAG HK1 15KG FREE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.BaggageDetails{Type: "XBAG", Status: "HK1", Weight: 15, ExtraWeight: 15}
	if len(p.Baggage) != 1 || p.Baggage[0] != want {
		t.Fatalf("got %+v, want %+v", p.Baggage, want)
	}

	p, err = decodeContinuation(t, ".R/XBAG HK1 12.5kg PAID EXTRA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Baggage[0].Weight != 12.5 {
		t.Fatalf("expected 12.5, got %v", p.Baggage[0].Weight)
	}

	p, err = decodeContinuation(t, ".R/XBAG HK1 HEAVY FREE")
	if err != nil {
		t.Fatalf("unparsable weight must default, got %v", err)
	}
	if p.Baggage[0].Weight != 0 || p.Baggage[0].ExtraWeight != 0 {
		t.Fatalf("expected zero weights, got %+v", p.Baggage[0])
	}

	for _, w := range []string{"NANKG", "INFKG", "-INFKG", "1E3KG", "0X1P4KG", "15.KG", "KG"} {
		p, err := decodeContinuation(t, ".R/XBAG HK1 "+w+" FREE")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", w, err)
		}
		if p.Baggage[0].Weight != 0 || p.Baggage[0].ExtraWeight != 0 {
			t.Fatalf("%s: expected weight to fall back to 0, got %+v", w, p.Baggage[0])
		}
	}

	if _, err := decodeContinuation(t, ".R/XBAG HK1 15KG"); err == nil {
		t.Fatalf("expected error with two fields")
	}
}

func TestDecodeTicket(t *testing.T) {
	p, err := decodeContinuation(t, ".R/TKNE HK1 1234567890123/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ElectronicTicket == nil || p.ElectronicTicket.Code != "1234567890123" || p.ElectronicTicket.Status != "HK1" {
		t.Fatalf("unexpected ticket %+v", p.ElectronicTicket)
	}

	if _, err := decodeContinuation(t, ".R/TKNE HK1"); err == nil {
		t.Fatalf("expected error with one field")
	}
}

func TestDecodeChildAndRequest(t *testing.T) {
	p, err := decodeBlock([]sourceLine{
		{no: 1, text: "1ALBANESI/LUCA-CHLD"},
		{no: 2, text: ".R/RQST HK1 12A"},
		{no: 3, text: ".R/CHLD HK1 05MAY18"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.AdditionalInfo{
		{Kind: domain.InfoRequest, Status: "HK1", SeatRequest: "12A"},
		{Kind: domain.InfoChild, Status: "HK1"},
	}
	if len(p.SpecialRequests) != len(want) {
		t.Fatalf("got %+v", p.SpecialRequests)
	}
	for i := range want {
		if p.SpecialRequests[i] != want[i] {
			t.Fatalf("request %d: got %+v, want %+v", i, p.SpecialRequests[i], want[i])
		}
	}

	if _, err := decodeContinuation(t, ".R/RQST HK1"); err == nil {
		t.Fatalf("expected RQST error with one field")
	}
	if _, err := decodeContinuation(t, ".R/CHLD"); err == nil {
		t.Fatalf("expected CHLD error without status")
	}
}

func TestDecodeTourOperatorAndLocator(t *testing.T) {
	p, err := decodeBlock([]sourceLine{
		{no: 1, text: "1ALBANESI/MARCELLO-MR"},
		{no: 2, text: ".R/TOP   AL.L  "},
		{no: 3, text: ".L/655F43"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TourOperator != "AL.L" || p.PNR != "655F43" {
		t.Fatalf("unexpected passenger %+v", p)
	}
}

func TestDecodeBaggageKeepsLineOrder(t *testing.T) {
	p, err := decodeBlock([]sourceLine{
		{no: 1, text: "1ALBANESI/MARCELLO-MR"},
		{no: 2, text: ".R/XBAG HK1 10KG FREE"},
		{no: 3, text: ".R/PDBG HK1 BAGS 01"},
		{no: 4, text: ".R/XBAG HK2 5KG PAID"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{p.Baggage[0].Type, p.Baggage[1].Type, p.Baggage[2].Status}
	want := []string{"XBAG", "BAGS", "HK2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("baggage order: got %v, want %v", got, want)
		}
	}
}
