package flightfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.FlightLoader = (*Loader)(nil)

// LoadFlight reads a YAML (.yaml/.yml) or JSON (anything else) flight document.
func (l *Loader) LoadFlight(path string) (domain.Flight, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Flight{}, &domain.OpError{
			Op:   "flightfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	dto, err := Unmarshal(path, b)
	if err != nil {
		return domain.Flight{}, err
	}
	return MapFlight(path, dto)
}

// Unmarshal decodes a document, choosing YAML or JSON from the path extension.
func Unmarshal(path string, b []byte) (FlightDTO, error) {
	var dto FlightDTO

	var err error
	if IsYAML(path) {
		err = yaml.Unmarshal(b, &dto)
	} else {
		err = json.Unmarshal(b, &dto)
	}
	if err != nil {
		return FlightDTO{}, &domain.OpError{
			Op:   "flightfile.unmarshal",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return dto, nil
}

// MarshalJSON renders a flight as an indented JSON document.
func MarshalJSON(f domain.Flight) ([]byte, error) {
	return json.MarshalIndent(FromFlight(f), "", "  ")
}

// MarshalYAML renders a flight as a YAML document.
func MarshalYAML(f domain.Flight) ([]byte, error) {
	return yaml.Marshal(FromFlight(f))
}

func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// IsFlightDocument reports whether path names a JSON or YAML flight document.
func IsFlightDocument(path string) bool {
	return IsYAML(path) || strings.EqualFold(filepath.Ext(path), ".json")
}
