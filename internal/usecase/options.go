package usecase

import (
	"io"
	"log/slog"
	"time"
)

type options struct {
	log *slog.Logger
	now func() time.Time
}

// Option configures the parse/generate/validate use cases.
type Option func(*options)

// WithLogger sets the logger. A nil logger keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
