package tui

import "github.com/aalvaropc/pnladl/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type messagesLoadedMsg struct {
	root string
	refs []domain.MessageRef
	err  error
}

type flightParsedMsg struct {
	path   string
	flight domain.Flight
	err    error
}
