package pnl

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
)

// continuationRule decodes one kind of continuation line. body is the line
// with the tag removed.
type continuationRule struct {
	tag    string
	decode func(p *domain.Passenger, body string) error
}

// continuationRules is the closed set of recognized tags. The first matching
// tag wins, so longer tags sharing a prefix must come first.
var continuationRules = []continuationRule{
	{tag: ".R/TOP", decode: decodeTourOperator},
	{tag: ".R/PDBG", decode: decodePaidBaggage},
	{tag: ".R/XBAG", decode: decodeExtraBaggage},
	{tag: ".R/TKNE", decode: decodeTicket},
	{tag: ".R/CHLD", decode: decodeChild},
	{tag: ".R/RQST", decode: decodeRequest},
	{tag: ".L", decode: decodeLocator},
}

func matchRule(line string) (continuationRule, string, bool) {
	for _, r := range continuationRules {
		if body, ok := strings.CutPrefix(line, r.tag); ok {
			return r, body, true
		}
	}
	return continuationRule{}, "", false
}

// decodeLocator reads ".L/<pnr>".
func decodeLocator(p *domain.Passenger, body string) error {
	p.PNR = strings.TrimPrefix(strings.TrimSpace(body), "/")
	return nil
}

func decodeTourOperator(p *domain.Passenger, body string) error {
	p.TourOperator = strings.TrimSpace(body)
	return nil
}

// decodePaidBaggage reads "<status> <type> <quantity>".
func decodePaidBaggage(p *domain.Passenger, body string) error {
	tok, err := fields(body, 3)
	if err != nil {
		return err
	}

	qty, err := strconv.Atoi(tok[2])
	if err != nil {
		qty = 0
	}

	p.Baggage = append(p.Baggage, domain.BaggageDetails{
		Type:     tok[1],
		Status:   tok[0],
		Quantity: qty,
	})
	return nil
}

// decodeExtraBaggage reads "<status> <weight>KG <free text>".
func decodeExtraBaggage(p *domain.Passenger, body string) error {
	tok, err := fields(body, 3)
	if err != nil {
		return err
	}

	weight := parseKilograms(tok[1])

	p.Baggage = append(p.Baggage, domain.BaggageDetails{
		Type:        domain.BaggageExtra,
		Status:      tok[0],
		Weight:      weight,
		ExtraWeight: weight,
	})
	return nil
}

// plainDecimal excludes what ParseFloat would also take: NaN, Inf, exponents, hex.
var plainDecimal = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// parseKilograms reads "<n>KG"; anything but a plain decimal is 0.
func parseKilograms(s string) float64 {
	n := strings.TrimSuffix(strings.ToUpper(s), "KG")
	if !plainDecimal.MatchString(n) {
		return 0
	}
	w, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0
	}
	return w
}

// decodeTicket reads "<status> <code>[/...]".
func decodeTicket(p *domain.Passenger, body string) error {
	tok, err := fields(body, 2)
	if err != nil {
		return err
	}

	code, _, _ := strings.Cut(tok[1], "/")
	p.ElectronicTicket = &domain.Ticket{
		Code:   code,
		Status: tok[0],
	}
	return nil
}

func decodeChild(p *domain.Passenger, body string) error {
	tok, err := fields(body, 1)
	if err != nil {
		return err
	}

	p.SpecialRequests = append(p.SpecialRequests, domain.AdditionalInfo{
		Kind:   domain.InfoChild,
		Status: tok[0],
	})
	return nil
}

// decodeRequest reads "<status> <seat>".
func decodeRequest(p *domain.Passenger, body string) error {
	tok, err := fields(body, 2)
	if err != nil {
		return err
	}

	p.SpecialRequests = append(p.SpecialRequests, domain.AdditionalInfo{
		Kind:        domain.InfoRequest,
		Status:      tok[0],
		SeatRequest: tok[1],
	})
	return nil
}
