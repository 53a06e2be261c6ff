package tui

import (
	"log/slog"

	"github.com/aalvaropc/pnladl/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Messages ports.MessageLoader
	Decoder  ports.Decoder

	// Root is the workspace root; empty when none was found.
	Root string
	// Path opens a single message directly instead of the workspace list.
	Path string

	Logger *slog.Logger
	// LogPath is shown to the user after an unexpected error; empty when
	// logs are discarded.
	LogPath string
	Debug   bool
}
