package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrEmptyInput    = errors.New("empty input")
	ErrFormat        = errors.New("invalid message format")
	ErrValidation    = errors.New("validation failed")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindEmptyInput    ErrorKind = "empty_input"
	KindFormat        ErrorKind = "format"
	KindValidation    ErrorKind = "validation"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

var kindSentinels = map[ErrorKind]error{
	KindNotFound:      ErrNotFound,
	KindInvalidConfig: ErrInvalidConfig,
	KindEmptyInput:    ErrEmptyInput,
	KindFormat:        ErrFormat,
	KindValidation:    ErrValidation,
	KindExecution:     ErrExecution,
}

// Is matches the sentinel for the error's kind, so errors.Is(err, ErrExecution)
// holds for any OpError of KindExecution.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FormatError reports a structural or field violation in a message.
// Line is the raw offending line; LineNo is 1-based (0 when unknown).
type FormatError struct {
	Line   string
	LineNo int
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := "invalid message format"
	if e.LineNo > 0 {
		base += fmt.Sprintf(" at line %d", e.LineNo)
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	base += fmt.Sprintf(" (line=%q)", e.Line)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) true for every FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}

	var fe *FormatError
	if kind == KindFormat && errors.As(err, &fe) {
		return true
	}
	return false
}
