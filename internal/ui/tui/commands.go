package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/usecase"
)

const parseTimeout = 30 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadMessages(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.Messages == nil {
			return messagesLoadedMsg{root: root, err: errors.New("MessageLoader is nil")}
		}
		refs, err := deps.Messages.ListMessages(root)
		return messagesLoadedMsg{root: root, refs: refs, err: err}
	}
}

// cmdParseMessage decodes a message for browsing. Nothing is saved.
func cmdParseMessage(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)
		if deps.Messages == nil || deps.Decoder == nil {
			return flightParsedMsg{path: p, err: errors.New("message loader or decoder is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		uc := usecase.NewParseMessage(deps.Messages, deps.Decoder, nil, usecase.WithLogger(deps.Logger))
		flight, _, err := uc.Execute(ctx, p)
		if err != nil {
			return flightParsedMsg{path: p, flight: domain.Flight{}, err: err}
		}
		return flightParsedMsg{path: p, flight: flight}
	}
}
