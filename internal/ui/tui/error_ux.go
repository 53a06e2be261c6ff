package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var fe *domain.FormatError
	if errors.As(err, &fe) {
		if fe.LineNo > 0 {
			return fmt.Sprintf("Invalid message at line %d: %s", fe.LineNo, fe.Msg)
		}
		return "Invalid message: " + fe.Msg
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("%d validation problem(s)", len(ve.Violations))
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "msgfile.list") {
				return "Messages folder not found"
			}
			if strings.Contains(oe.Op, "msgfile") {
				return "Message not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindEmptyInput:
			return "Message is empty"

		case domain.KindInvalidConfig:
			return invalidConfigMessage(oe)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrEmptyInput) {
		return "Message is empty"
	}
	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// invalidConfigMessage tells flight documents, output templates and the
// workspace config apart; they share a kind but not a format.
func invalidConfigMessage(oe *domain.OpError) string {
	base := "config"
	if strings.TrimSpace(oe.Path) != "" {
		base = filepath.Base(oe.Path)
	}
	detail := ""
	if oe.Err != nil {
		detail = strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrInvalidConfig.Error())
	}

	switch {
	case strings.HasPrefix(oe.Op, "flightfile.map"):
		return "Invalid flight document " + base + ": " + detail

	case strings.HasPrefix(oe.Op, "flightfile."):
		if !isYAMLPath(oe.Path) {
			return "Invalid JSON at " + base
		}
		if line := extractLine(detail); line != "" {
			return "Invalid YAML at " + base + " line " + line
		}
		return "Invalid YAML at " + base

	case strings.HasPrefix(oe.Op, "template."):
		return "Invalid output path: " + detail
	}

	if line := extractLine(detail); line != "" {
		return "Invalid YAML at " + base + " line " + line
	}
	if looksLikeYAMLProblem(detail) {
		return "Invalid YAML at " + base
	}
	return "Invalid config"
}

func isYAMLPath(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
