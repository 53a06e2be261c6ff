package ports

import "github.com/aalvaropc/pnladl/internal/domain"

// ResponseStore persists parse/generate responses for later inspection.
type ResponseStore interface {
	SaveResponse(resp domain.Response) (id string, err error)
}
