package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/infra/flightfile"
	"github.com/aalvaropc/pnladl/internal/infra/msgfile"
	"github.com/aalvaropc/pnladl/internal/infra/responsestore"
	"github.com/aalvaropc/pnladl/internal/infra/workspacefinder"
	"github.com/aalvaropc/pnladl/internal/pnl"
	"github.com/aalvaropc/pnladl/internal/ports"
)

var messageExts = []string{".pnl", ".adl", ".txt"}
var flightExts = []string{".json", ".yaml", ".yml"}

type workspaceCtx struct {
	// root is empty when no workspace was found; cfg then holds defaults.
	root string
	cfg  domain.Config

	messages ports.MessageLoader
	flights  ports.FlightLoader

	// store is nil when responses are not saved.
	store ports.ResponseStore
}

func (ws *workspaceCtx) found() bool { return ws.root != "" }

// loadWorkspace resolves the workspace and wires its infra. A missing
// workspace is not an error: defaults apply and nothing is saved.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return newWorkspaceCtx("", domain.DefaultConfig()), nil
		}
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) && strings.TrimSpace(workspaceFlag) != "" {
			return nil, fmt.Errorf("no %s in %q (tip: run `pnladl init --path %s`): %w",
				workspacefinder.ConfigFileName, root, workspaceFlag, err)
		}
		return nil, err
	}

	return newWorkspaceCtx(root, cfg), nil
}

func newWorkspaceCtx(root string, cfg domain.Config) *workspaceCtx {
	ws := &workspaceCtx{
		root: root,
		cfg:  cfg,
		messages: msgfile.NewLoader(
			msgfile.WithMessagesDir(cfg.Paths.MessagesDir),
		),
		flights: flightfile.NewLoader(),
	}
	if root != "" && cfg.Responses.Save {
		ws.store = responsestore.NewStore(root, cfg)
	}
	return ws
}

// decoder builds a decoder for the workspace. yearFlag > 0 overrides the config.
func (ws *workspaceCtx) decoder(yearFlag int) *pnl.Decoder {
	year := ws.cfg.Decoder.ReferenceYear
	if yearFlag > 0 {
		year = yearFlag
	}
	return pnl.NewDecoder(pnl.WithReferenceYear(year))
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return workspacefinder.NewFinder().FindRoot(wd)
}

// resolveMessagePath accepts "-", a path, or a message name inside the
// workspace messages dir ("sample" or "sample.pnl").
func resolveMessagePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("message file is required")
	}
	if in == msgfile.StdinPath {
		return in, nil
	}
	return resolveInDir(ws, in, ws.cfg.Paths.MessagesDir, messageExts, "message")
}

// resolveFlightPath accepts a path or a flight document name inside the
// workspace flights dir.
func resolveFlightPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("flight file is required")
	}
	return resolveInDir(ws, in, ws.cfg.Paths.FlightsDir, flightExts, "flight")
}

func resolveInDir(ws *workspaceCtx, in, dirName string, exts []string, what string) (string, error) {
	if fileExists(in) || looksLikePath(in) || !ws.found() {
		return filepath.Clean(in), nil
	}

	dir := filepath.Join(ws.root, dirName)
	p := filepath.Join(dir, in)
	if fileExists(p) {
		return p, nil
	}
	for _, ext := range exts {
		if c := p + ext; fileExists(c) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%s %q not found in %q", what, in, dir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// resolveDir joins a configured dir onto root unless it is already absolute.
func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
