package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "msgfile.load",
		Kind: KindNotFound,
		Path: "messages/a.pnl",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
	if !strings.Contains(err.Error(), "path=messages/a.pnl") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestFormatErrorCarriesLineAndCause(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := &FormatError{Line: ".R/XBAG HK1", LineNo: 7, Msg: "xbag", Err: cause}

	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected errors.Is(err, ErrFormat)")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected cause to be preserved")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 7") || !strings.Contains(msg, `".R/XBAG HK1"`) {
		t.Fatalf("expected line number and raw line in message, got %q", msg)
	}
}

func TestIsKind(t *testing.T) {
	wrapped := &OpError{Op: "usecase.parse", Kind: KindExecution, Err: &FormatError{Line: "x"}}

	if !IsKind(wrapped, KindExecution) {
		t.Fatalf("expected execution kind")
	}
	if !IsKind(wrapped, KindFormat) {
		t.Fatalf("expected nested FormatError to classify as format")
	}
	if IsKind(errors.New("plain"), KindFormat) {
		t.Fatalf("plain error must not classify")
	}
	if IsKind(&OpError{Kind: KindEmptyInput}, KindNotFound) {
		t.Fatalf("kind mismatch must not classify")
	}
}

func TestOpErrorMatchesKindSentinel(t *testing.T) {
	cases := []struct {
		kind   ErrorKind
		target error
	}{
		{KindExecution, ErrExecution},
		{KindNotFound, ErrNotFound},
		{KindInvalidConfig, ErrInvalidConfig},
		{KindFormat, ErrFormat},
	}
	for _, c := range cases {
		err := fmt.Errorf("save: %w", &OpError{Op: "responsestore.write", Kind: c.kind, Err: errors.New("disk full")})
		if !errors.Is(err, c.target) {
			t.Fatalf("expected %s error to match %v", c.kind, c.target)
		}
	}
	if errors.Is(&OpError{Kind: KindNotFound}, ErrExecution) {
		t.Fatalf("kind mismatch must not match")
	}
}
