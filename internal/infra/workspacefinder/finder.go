package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
)

// ConfigFileName marks a workspace root. pnladl.yml is accepted too.
const ConfigFileName = "pnladl.yaml"

// EnvWorkspace pins the workspace root and skips the upward search.
const EnvWorkspace = "PNLADL_WORKSPACE"

var configNames = []string{ConfigFileName, "pnladl.yml"}

// ConfigPath returns the workspace config inside root, if there is one.
// Directories named like a config file do not count.
func ConfigPath(root string) (string, bool) {
	for _, name := range configNames {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// Finder locates the workspace for a directory: $PNLADL_WORKSPACE when set,
// otherwise the nearest ancestor holding a pnladl config.
type Finder struct{}

func NewFinder() *Finder {
	return &Finder{}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if pinned := strings.TrimSpace(os.Getenv(EnvWorkspace)); pinned != "" {
		return pinnedRoot(pinned)
	}

	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if _, ok := ConfigPath(cur); ok {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  fmt.Errorf("no %s here or in any parent: %w", ConfigFileName, domain.ErrNotFound),
			}
		}
		cur = parent
	}
}

func pinnedRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Path: dir,
			Err:  fmt.Errorf("%s: %w", EnvWorkspace, err),
		}
	}
	if _, ok := ConfigPath(abs); !ok {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindNotFound,
			Path: abs,
			Err:  fmt.Errorf("%s points at a directory without %s: %w", EnvWorkspace, ConfigFileName, domain.ErrNotFound),
		}
	}
	return abs, nil
}
