package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// maxPanics ends the program instead of recovering forever from a
// message that keeps crashing the model.
const maxPanics = 3

// recoverable is a model that can drop back to a usable state after a panic.
type recoverable interface {
	tea.Model
	recovered(notice string) tea.Model
	logState() []any
}

// guard keeps a panic in one message or view from killing the terminal
// session. The inner model is reset and the user gets a toast pointing at
// the log file.
type guard struct {
	inner   recoverable
	log     *slog.Logger
	logPath string
	panics  int
}

func newGuard(inner recoverable, log *slog.Logger, logPath string) guard {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return guard{inner: inner, log: log, logPath: logPath}
}

func (g guard) Init() tea.Cmd {
	return g.inner.Init()
}

func (g guard) Update(msg tea.Msg) (out tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			g.report("update", r, fmt.Sprintf("%T", msg))
			g.panics++
			if g.panics >= maxPanics {
				out, cmd = g, tea.Quit
				return
			}
			if next, ok := g.inner.recovered(g.notice()).(recoverable); ok {
				g.inner = next
			}
			out, cmd = g, nil
		}
	}()

	next, c := g.inner.Update(msg)
	if r, ok := next.(recoverable); ok {
		g.inner = r
	}
	return g, c
}

func (g guard) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.report("view", r, "")
			out = g.notice()
		}
	}()
	return g.inner.View()
}

func (g guard) notice() string {
	if g.logPath == "" {
		return "Unexpected error (see logs)"
	}
	return "Unexpected error, details in " + g.logPath
}

func (g guard) report(where string, r any, msgType string) {
	attrs := []any{"where", where, "panic", fmt.Sprint(r), "count", g.panics + 1}
	if msgType != "" {
		attrs = append(attrs, "msg", msgType)
	}
	attrs = append(attrs, g.inner.logState()...)
	attrs = append(attrs, "stack", string(debug.Stack()))
	g.log.Error("tui.panic", attrs...)
}

var _ tea.Model = guard{}
