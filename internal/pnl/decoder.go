package pnl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/pnladl/internal/domain"
)

const (
	messageTag    = "PNL"
	endTag        = "ENDPNL"
	passengerTag  = "1"
	dateLayout    = "02Jan2006"
	firstBodyLine = 3 // lines 0-2 belong to the message header
)

// Decoder turns PNL lines into a flight. A Decoder is immutable and safe for
// concurrent use.
type Decoder struct {
	year int
}

// Option configures a Decoder.
type Option func(*decoderOptions)

type decoderOptions struct {
	year int
	now  func() time.Time
}

// WithReferenceYear sets the year attached to DDMON flight dates.
// Values <= 0 are ignored.
func WithReferenceYear(year int) Option {
	return func(o *decoderOptions) {
		if year > 0 {
			o.year = year
		}
	}
}

// WithClock sets the clock used to pick the reference year when none is given.
func WithClock(now func() time.Time) Option {
	return func(o *decoderOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func NewDecoder(opts ...Option) *Decoder {
	o := decoderOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.year == 0 {
		o.year = o.now().Year()
	}
	return &Decoder{year: o.year}
}

// ReferenceYear returns the year used for flight dates.
func (d *Decoder) ReferenceYear() int {
	return d.year
}

// Decode parses a whole message. It returns domain.ErrEmptyInput for nil or
// empty input and a *domain.FormatError for any structural violation.
func (d *Decoder) Decode(lines []string) (domain.Flight, error) {
	if len(lines) == 0 {
		return domain.Flight{}, &domain.OpError{
			Op:   "pnl.decode",
			Kind: domain.KindEmptyInput,
			Err:  domain.ErrEmptyInput,
		}
	}

	if !strings.HasPrefix(strings.ToUpper(lines[0]), messageTag) {
		return domain.Flight{}, &domain.FormatError{
			Line:   lines[0],
			LineNo: 1,
			Msg:    "message must start with " + messageTag,
		}
	}

	at, err := findHeader(lines)
	if err != nil {
		return domain.Flight{}, err
	}

	number, date, route, err := d.decodeHeader(lines[at], at+1)
	if err != nil {
		return domain.Flight{}, err
	}

	passengers, err := decodeBody(lines, max(firstBodyLine, at+1))
	if err != nil {
		return domain.Flight{}, err
	}

	return domain.NewFlight(number, route, date, passengers), nil
}

// Decode parses a message with a Decoder built from opts.
func Decode(lines []string, opts ...Option) (domain.Flight, error) {
	return NewDecoder(opts...).Decode(lines)
}

// findHeader returns the index of the header payload: the second line, or the
// first non-blank line after it when the second line is blank.
func findHeader(lines []string) (int, error) {
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i, nil
		}
	}
	return 0, &domain.FormatError{
		Line:   lines[0],
		LineNo: 1,
		Msg:    "missing header line",
	}
}

func (d *Decoder) decodeHeader(line string, lineNo int) (number string, date time.Time, route string, err error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '/'
	})
	if len(tokens) < 3 {
		return "", time.Time{}, "", &domain.FormatError{
			Line:   line,
			LineNo: lineNo,
			Msg:    fmt.Sprintf("header needs flight number, date and route, got %d field(s)", len(tokens)),
		}
	}

	date, perr := time.Parse(dateLayout, tokens[1]+strconv.Itoa(d.year))
	if perr != nil {
		return "", time.Time{}, "", &domain.FormatError{
			Line:   line,
			LineNo: lineNo,
			Msg:    fmt.Sprintf("invalid flight date %q", tokens[1]),
			Err:    perr,
		}
	}

	return tokens[0], date, tokens[2], nil
}

// decodeBody walks the passenger section starting at index start.
func decodeBody(lines []string, start int) ([]domain.Passenger, error) {
	passengers := []domain.Passenger{}

	var g grouper
	for i := start; i < len(lines) && !g.done; i++ {
		block := g.feed(sourceLine{no: i + 1, text: lines[i]})
		if len(block) == 0 {
			continue
		}
		p, err := decodeBlock(block)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}

	return passengers, nil
}
