package ports

import "github.com/aalvaropc/pnladl/internal/domain"

// MessageLoader reads raw messages from a source (e.g., filesystem).
type MessageLoader interface {
	LoadMessage(path string) ([]string, error)
	ListMessages(root string) ([]domain.MessageRef, error)
}
