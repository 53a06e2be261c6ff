package pnl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
)

// decodeBlock builds one passenger from its header line and continuation lines.
func decodeBlock(block []sourceLine) (domain.Passenger, error) {
	head := block[0]
	p, err := decodePassengerHeader(head.text)
	if err != nil {
		return domain.Passenger{}, &domain.FormatError{
			Line:   head.text,
			LineNo: head.no,
			Msg:    "invalid passenger header",
			Err:    err,
		}
	}

	for _, line := range block[1:] {
		rule, body, ok := matchRule(line.text)
		if !ok {
			continue
		}
		if err := rule.decode(&p, body); err != nil {
			return domain.Passenger{}, &domain.FormatError{
				Line:   line.text,
				LineNo: line.no,
				Msg:    "invalid " + rule.tag + " line",
				Err:    err,
			}
		}
	}

	return p, nil
}

// decodePassengerHeader reads "1LAST/FIRST-TYPE".
func decodePassengerHeader(line string) (domain.Passenger, error) {
	parts := strings.Split(line, "/")
	if len(parts) < 2 {
		return domain.Passenger{}, errors.New("expected LAST/FIRST-TYPE")
	}

	names := strings.Split(parts[1], "-")
	if len(names) < 2 {
		return domain.Passenger{}, errors.New("expected FIRST-TYPE after '/'")
	}

	p := domain.Passenger{
		LastName:        strings.TrimPrefix(parts[0], passengerTag),
		FirstName:       names[0],
		PassengerType:   names[1],
		SpecialRequests: []domain.AdditionalInfo{},
		Baggage:         []domain.BaggageDetails{},
	}

	switch {
	case p.LastName == "":
		return domain.Passenger{}, errors.New("last name is empty")
	case p.FirstName == "":
		return domain.Passenger{}, errors.New("first name is empty")
	case p.PassengerType == "":
		return domain.Passenger{}, errors.New("passenger type is empty")
	}
	return p, nil
}

// fields splits body on whitespace and requires at least n tokens.
func fields(body string, n int) ([]string, error) {
	tokens := strings.Fields(body)
	if len(tokens) < n {
		return nil, fmt.Errorf("expected at least %d field(s), got %d", n, len(tokens))
	}
	return tokens, nil
}
