package usecase

import (
	"context"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/ports"
)

type ParseMessage struct {
	messages ports.MessageLoader
	decoder  ports.Decoder
	store    ports.ResponseStore
	opts     options
}

// NewParseMessage wires the parse use case. store may be nil to skip saving.
func NewParseMessage(ml ports.MessageLoader, dec ports.Decoder, store ports.ResponseStore, opts ...Option) *ParseMessage {
	return &ParseMessage{
		messages: ml,
		decoder:  dec,
		store:    store,
		opts:     newOptions(opts),
	}
}

// Execute loads and decodes a message. The returned id is empty when the
// response was not saved. A save failure is returned together with the
// decoded flight.
func (uc *ParseMessage) Execute(ctx context.Context, path string) (domain.Flight, string, error) {
	log := uc.opts.log.With("op", "usecase.parse", "path", path)

	if err := ctx.Err(); err != nil {
		return domain.Flight{}, "", err
	}

	lines, err := uc.messages.LoadMessage(path)
	if err != nil {
		log.Error("parse.load_failed", "err", err)
		return domain.Flight{}, "", err
	}

	flight, err := uc.decoder.Decode(lines)
	if err != nil {
		log.Warn("parse.decode_failed", "lines", len(lines), "err", err)
		return domain.Flight{}, "", err
	}
	log.Info("parse.decoded",
		"flight", flight.FlightNumber,
		"route", flight.Route,
		"passengers", flight.PassengerCount,
	)

	if uc.store == nil {
		return flight, "", nil
	}
	if err := ctx.Err(); err != nil {
		return flight, "", err
	}

	id, err := uc.store.SaveResponse(domain.Response{
		Kind:      domain.ResponseParse,
		Source:    path,
		CreatedAt: uc.opts.now(),
		Flight:    &flight,
	})
	if err != nil {
		log.Error("parse.save_failed", "err", err)
		return flight, "", err
	}
	log.Debug("parse.saved", "id", id)

	return flight, id, nil
}
