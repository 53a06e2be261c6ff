package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/pnladl/internal/domain"
)

// Apply evaluates JSONPath rules against a JSON flight document.
// rules: map[name]jsonPathExpr
//
// Policy:
// - If doc is not JSON -> every rule fails (nothing extracted).
// - If a rule fails -> it's reported in QueryResult; other rules still run.
func Apply(doc []byte, rules map[string]string) (domain.Vars, []domain.QueryResult) {
	if len(rules) == 0 {
		return domain.Vars{}, []domain.QueryResult{}
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var root any
	if err := json.Unmarshal(doc, &root); err != nil {
		out := make([]domain.QueryResult, 0, len(keys))
		for _, name := range keys {
			out = append(out, domain.QueryResult{
				Name:    name,
				Success: false,
				Message: fmt.Sprintf("query %q (%s): document is not valid JSON", name, strings.TrimSpace(rules[name])),
			})
		}
		return domain.Vars{}, out
	}

	found := domain.Vars{}
	results := make([]domain.QueryResult, 0, len(keys))

	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		if expr == "" {
			results = append(results, fail(name, "query %q: empty jsonpath expression", name))
			continue
		}

		val, err := jsonpath.Get(expr, root)
		if err != nil {
			results = append(results, fail(name, "query %q (%s): jsonpath error: %v", name, expr, err))
			continue
		}
		if isEmptyValue(val) {
			results = append(results, fail(name, "query %q (%s): no value found", name, expr))
			continue
		}

		s, err := toString(val)
		if err != nil {
			results = append(results, fail(name, "query %q (%s): cannot convert value to string: %v", name, expr, err))
			continue
		}

		found[name] = s
		results = append(results, domain.QueryResult{
			Name:    name,
			Success: true,
			Message: fmt.Sprintf("found %q", name),
		})
	}

	return found, results
}

// ParseRules turns "name=expr" pairs into a rule map. A pair without a name
// uses the expression itself as the name.
func ParseRules(pairs []string) (map[string]string, error) {
	rules := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, expr, ok := strings.Cut(p, "=")
		if !ok {
			name, expr = p, p
		}
		name, expr = strings.TrimSpace(name), strings.TrimSpace(expr)
		if expr == "" {
			return nil, fmt.Errorf("query %q: empty jsonpath expression", p)
		}
		if name == "" {
			name = expr
		}
		rules[name] = expr
	}
	return rules, nil
}

func fail(name, format string, args ...any) domain.QueryResult {
	return domain.QueryResult{
		Name:    name,
		Success: false,
		Message: fmt.Sprintf(format, args...),
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Wildcards yield a slice; a single match is unwrapped.
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
