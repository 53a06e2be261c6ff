package usecase

import (
	"context"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/ports"
)

type GenerateMessage struct {
	flights ports.FlightLoader
	encoder ports.Encoder
	store   ports.ResponseStore
	opts    options
}

// NewGenerateMessage wires the generate use case. store may be nil to skip saving.
func NewGenerateMessage(fl ports.FlightLoader, enc ports.Encoder, store ports.ResponseStore, opts ...Option) *GenerateMessage {
	return &GenerateMessage{
		flights: fl,
		encoder: enc,
		store:   store,
		opts:    newOptions(opts),
	}
}

// GenerateResult carries the loaded flight alongside the rendered message so
// callers can derive output names without loading the document again.
type GenerateResult struct {
	Flight  domain.Flight
	Content string
	// ID is empty when nothing was saved.
	ID string
}

// Execute loads a flight document and renders it as a message.
func (uc *GenerateMessage) Execute(ctx context.Context, path string) (GenerateResult, error) {
	log := uc.opts.log.With("op", "usecase.generate", "path", path)

	if err := ctx.Err(); err != nil {
		return GenerateResult{}, err
	}

	flight, err := uc.flights.LoadFlight(path)
	if err != nil {
		log.Error("generate.load_failed", "err", err)
		return GenerateResult{}, err
	}

	content := uc.encoder.Encode(flight)
	res := GenerateResult{Flight: flight, Content: content}
	log.Info("generate.encoded",
		"flight", flight.FlightNumber,
		"passengers", len(flight.Passengers),
		"bytes", len(content),
	)

	if uc.store == nil {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	id, err := uc.store.SaveResponse(domain.Response{
		Kind:      domain.ResponseGenerate,
		Source:    path,
		CreatedAt: uc.opts.now(),
		Content:   content,
	})
	if err != nil {
		log.Error("generate.save_failed", "err", err)
		return res, err
	}
	log.Debug("generate.saved", "id", id)

	res.ID = id
	return res, nil
}
