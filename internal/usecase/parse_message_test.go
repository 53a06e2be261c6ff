package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/pnl"
)

func TestParseMessage_DecodesAndSaves(t *testing.T) {
	lines := []string{
		"PNL", "", "NO6149 07SEP RHO", "",
		"1ALBANESI/MARCELLO-MR", ".L/655F43", "ENDPNL",
	}
	store := &fakeStore{}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	uc := NewParseMessage(
		fakeMessageLoader{lines: lines},
		pnl.NewDecoder(pnl.WithReferenceYear(2026)),
		store,
		WithNow(func() time.Time { return now }),
	)

	f, id, err := uc.Execute(context.Background(), "messages/no6149.pnl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "7" {
		t.Fatalf("expected id 7, got %q", id)
	}
	if f.PassengerCount != 1 || f.Passengers[0].PNR != "655F43" {
		t.Fatalf("unexpected flight %+v", f)
	}

	if !store.saved {
		t.Fatalf("expected response to be saved")
	}
	if store.last.Kind != domain.ResponseParse || store.last.Source != "messages/no6149.pnl" {
		t.Fatalf("unexpected response %+v", store.last)
	}
	if !store.last.CreatedAt.Equal(now) {
		t.Fatalf("expected injected clock, got %s", store.last.CreatedAt)
	}
	if store.last.Flight == nil || store.last.Flight.FlightNumber != "NO6149" {
		t.Fatalf("expected flight in response")
	}
}

func TestParseMessage_NoStore(t *testing.T) {
	dec := &stubDecoder{flight: domain.NewFlight("X1", "ABC", time.Time{}, nil)}
	uc := NewParseMessage(fakeMessageLoader{lines: []string{"PNL"}}, dec, nil)

	_, id, err := uc.Execute(context.Background(), "a.pnl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id without a store, got %q", id)
	}
	if len(dec.got) != 1 || dec.got[0] != "PNL" {
		t.Fatalf("expected loader lines to reach the decoder, got %v", dec.got)
	}
}

func TestParseMessage_LoadError(t *testing.T) {
	store := &fakeStore{}
	uc := NewParseMessage(fakeMessageLoader{err: errBoom}, &stubDecoder{}, store)

	_, _, err := uc.Execute(context.Background(), "a.pnl")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if store.saved {
		t.Fatalf("nothing must be saved on failure")
	}
}

func TestParseMessage_DecodeErrorNotSaved(t *testing.T) {
	store := &fakeStore{}
	uc := NewParseMessage(fakeMessageLoader{lines: []string{}}, pnl.NewDecoder(), store)

	_, _, err := uc.Execute(context.Background(), "a.pnl")
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if store.saved {
		t.Fatalf("nothing must be saved on failure")
	}
}

func TestParseMessage_SaveErrorKeepsFlight(t *testing.T) {
	dec := &stubDecoder{flight: domain.NewFlight("X1", "ABC", time.Time{}, nil)}
	uc := NewParseMessage(fakeMessageLoader{lines: []string{"PNL"}}, dec, &fakeStore{err: errBoom})

	f, _, err := uc.Execute(context.Background(), "a.pnl")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected save error, got %v", err)
	}
	if f.FlightNumber != "X1" {
		t.Fatalf("expected decoded flight to be returned with the save error")
	}
}

func TestParseMessage_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewParseMessage(fakeMessageLoader{}, &stubDecoder{}, nil)
	_, _, err := uc.Execute(ctx, "a.pnl")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
