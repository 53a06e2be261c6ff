package responsestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/infra/flightfile"
	"github.com/aalvaropc/pnladl/internal/ports"
)

const defaultResponsesDir = "responses"
const maskValue = "********"
const indexFile = "index.jsonl"

var (
	maskedPNRLine    = regexp.MustCompile(`(?m)^(\.L/)\S+`)
	maskedTicketLine = regexp.MustCompile(`(?m)^(\.R/TKNE )\S+`)
)

// Store writes one file per response: <N>.json for parse, <N>.txt for generate.
// N is one more than the highest numbered response already in the directory.
type Store struct {
	rootDir          string
	responsesDirName string
	maskingEnabled   bool
	writeIndex       bool
	now              func() time.Time
}

type Option func(*Store)

// WithIndex enables a JSONL index: responses/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(root string, cfg domain.Config, opts ...Option) *Store {
	dir := cfg.Paths.ResponsesDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultResponsesDir
	}

	s := &Store{
		rootDir:          root,
		responsesDirName: dir,
		maskingEnabled:   cfg.Masking.Enabled,
		writeIndex:       cfg.Responses.Index,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ResponseStore = (*Store)(nil)

// Dir returns the absolute responses directory.
func (s *Store) Dir() string {
	return filepath.Join(s.rootDir, s.responsesDirName)
}

func (s *Store) SaveResponse(resp domain.Response) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "responsestore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = s.now()
	}
	resp.CreatedAt = resp.CreatedAt.UTC()

	b, ext, err := s.render(resp)
	if err != nil {
		return "", &domain.OpError{
			Op:   "responsestore.marshal",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	n, err := nextNumber(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "responsestore.scan",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	id := strconv.Itoa(n)
	filename := id + ext
	path := filepath.Join(dir, filename)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "responsestore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "responsestore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, resp)
	}

	return id, nil
}

func (s *Store) render(resp domain.Response) ([]byte, string, error) {
	switch resp.Kind {
	case domain.ResponseParse:
		if resp.Flight == nil {
			return nil, "", fmt.Errorf("parse response without flight")
		}
		f := *resp.Flight
		if s.maskingEnabled {
			f = maskFlight(f)
		}
		b, err := flightfile.MarshalJSON(f)
		if err != nil {
			return nil, "", err
		}
		return append(b, '\n'), ".json", nil
	case domain.ResponseGenerate:
		content := resp.Content
		if s.maskingEnabled {
			content = maskContent(content)
		}
		return []byte(content), ".txt", nil
	default:
		return nil, "", fmt.Errorf("unknown response kind %q", resp.Kind)
	}
}

// nextNumber scans dir for files named <N>.<ext> and returns max(N)+1.
func nextNumber(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		n, err := strconv.Atoi(stem)
		if err != nil || n <= 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

func (s *Store) appendIndex(dir, id, filename string, resp domain.Response) error {
	type idx struct {
		ID         string    `json:"id"`
		File       string    `json:"file"`
		Kind       string    `json:"kind"`
		Source     string    `json:"source"`
		Flight     string    `json:"flight,omitempty"`
		Passengers int       `json:"passengers"`
		CreatedAt  time.Time `json:"created_at"`
	}
	entry := idx{
		ID:        id,
		File:      filename,
		Kind:      string(resp.Kind),
		Source:    resp.Source,
		CreatedAt: resp.CreatedAt,
	}
	if resp.Flight != nil {
		entry.Flight = resp.Flight.FlightNumber
		entry.Passengers = resp.Flight.PassengerCount
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// maskFlight returns a masked copy (does NOT mutate the input).
func maskFlight(f domain.Flight) domain.Flight {
	out := f
	out.Passengers = make([]domain.Passenger, 0, len(f.Passengers))
	for _, p := range f.Passengers {
		c := p
		if c.PNR != "" {
			c.PNR = maskValue
		}
		if p.ElectronicTicket != nil {
			t := *p.ElectronicTicket
			t.Code = maskValue
			c.ElectronicTicket = &t
		}
		out.Passengers = append(out.Passengers, c)
	}
	return out
}

func maskContent(s string) string {
	s = maskedPNRLine.ReplaceAllString(s, "${1}"+maskValue)
	return maskedTicketLine.ReplaceAllString(s, "${1}"+maskValue)
}
