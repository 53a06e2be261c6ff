package ports

import "github.com/aalvaropc/pnladl/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
