package usecase

import (
	"errors"

	"github.com/aalvaropc/pnladl/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeMessageLoader struct {
	lines []string
	err   error
}

func (f fakeMessageLoader) LoadMessage(_ string) ([]string, error) {
	return f.lines, f.err
}

func (f fakeMessageLoader) ListMessages(_ string) ([]domain.MessageRef, error) {
	return nil, nil
}

type fakeFlightLoader struct {
	flight domain.Flight
	err    error
}

func (f fakeFlightLoader) LoadFlight(_ string) (domain.Flight, error) {
	return f.flight, f.err
}

type fakeStore struct {
	saved bool
	last  domain.Response
	err   error
}

func (s *fakeStore) SaveResponse(resp domain.Response) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = resp
	return "7", nil
}

type stubDecoder struct {
	flight domain.Flight
	err    error
	got    []string
}

func (d *stubDecoder) Decode(lines []string) (domain.Flight, error) {
	d.got = lines
	return d.flight, d.err
}

type stubEncoder struct{ out string }

func (e stubEncoder) Encode(_ domain.Flight) string { return e.out }

var errBoom = errors.New("boom")
