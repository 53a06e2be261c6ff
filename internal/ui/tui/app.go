package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/pnladl/internal/domain"
)

type screen int

const (
	screenMessages screen = iota
	screenPassengers
	screenPassenger
)

func (s screen) String() string {
	switch s {
	case screenMessages:
		return "messages"
	case screenPassengers:
		return "passengers"
	case screenPassenger:
		return "passenger"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

type messageItem struct {
	ref domain.MessageRef
}

func (m messageItem) Title() string       { return m.ref.Name }
func (m messageItem) Description() string { return m.ref.Path }
func (m messageItem) FilterValue() string { return m.ref.Name }

type passengerItem struct {
	index int
	p     domain.Passenger
}

func (i passengerItem) Title() string {
	return fmt.Sprintf("%s/%s %s", i.p.LastName, i.p.FirstName, i.p.PassengerType)
}

func (i passengerItem) Description() string {
	pnr := i.p.PNR
	if pnr == "" {
		pnr = "-"
	}
	return fmt.Sprintf("PNR %s • %d bag(s) • %d request(s)", pnr, len(i.p.Baggage), len(i.p.SpecialRequests))
}

func (i passengerItem) FilterValue() string { return i.p.LastName + " " + i.p.FirstName }

type model struct {
	theme Theme
	deps  Deps

	scr        screen
	messages   list.Model
	passengers list.Model

	workspaceFound bool
	workspaceRoot  string
	cwd            string

	flight     domain.Flight
	flightPath string
	selected   int

	busy  bool
	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(newGuard(m, deps.Logger, deps.LogPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

func newModel(deps Deps) model {
	m := model{
		theme:      DefaultTheme(),
		deps:       deps,
		scr:        screenMessages,
		messages:   newList("Messages"),
		passengers: newList("Passengers"),
	}
	if deps.Root != "" {
		m.workspaceFound = true
		m.workspaceRoot = deps.Root
	}
	if deps.Path != "" {
		m.scr = screenPassengers
		m.busy = true
	}
	return m
}

func (m model) Init() tea.Cmd {
	switch {
	case m.deps.Path != "":
		return cmdParseMessage(m.deps, m.deps.Path)
	case m.workspaceFound:
		return cmdLoadMessages(m.deps, m.workspaceRoot)
	default:
		return cmdRefreshWorkspace(m.deps)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.messages.SetSize(w-4, h-10)
		m.passengers.SetSize(w-4, h-12)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.found {
			m.busy = true
			return m, cmdLoadMessages(m.deps, msg.root)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.toast = "Workspace created"
		m.busy = true
		return m, cmdLoadMessages(m.deps, msg.root)

	case messagesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, messageItem{ref: r})
		}
		cmd := m.messages.SetItems(items)
		return m, cmd

	case flightParsedMsg:
		m.busy = false
		m.flightPath = msg.path
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if m.deps.Path == "" {
				m.scr = screenMessages
			}
			return m, nil
		}
		m.toast = ""
		m.flight = msg.flight
		items := make([]list.Item, 0, len(msg.flight.Passengers))
		for i, p := range msg.flight.Passengers {
			items = append(items, passengerItem{index: i, p: p})
		}
		m.passengers.Title = fmt.Sprintf("Passengers • %s %s", msg.flight.FlightNumber, msg.flight.Route)
		m.passengers.ResetFilter()
		cmd := m.passengers.SetItems(items)
		m.scr = screenPassengers
		return m, cmd

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.atTop() {
				return m, tea.Quit
			}
			return m.back(), nil

		case "esc", "b":
			if !m.atTop() {
				return m.back(), nil
			}

		case "enter":
			switch m.scr {
			case screenMessages:
				it, ok := m.messages.SelectedItem().(messageItem)
				if !ok || m.busy {
					return m, nil
				}
				m.busy = true
				m.toast = ""
				return m, cmdParseMessage(m.deps, it.ref.Path)
			case screenPassengers:
				it, ok := m.passengers.SelectedItem().(passengerItem)
				if !ok {
					return m, nil
				}
				m.selected = it.index
				m.scr = screenPassenger
				return m, nil
			}

		case "i":
			if m.scr == screenMessages && !m.workspaceFound && !m.busy && m.cwd != "" {
				m.busy = true
				return m, cmdInitWorkspaceHere(m.deps, m.cwd)
			}

		case "r":
			if m.scr == screenMessages && m.workspaceFound && !m.busy {
				m.busy = true
				return m, cmdLoadMessages(m.deps, m.workspaceRoot)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenMessages:
		m.messages, cmd = m.messages.Update(msg)
	case screenPassengers:
		m.passengers, cmd = m.passengers.Update(msg)
	}
	return m, cmd
}

func (m model) filtering() bool {
	switch m.scr {
	case screenMessages:
		return m.messages.FilterState() == list.Filtering
	case screenPassengers:
		return m.passengers.FilterState() == list.Filtering
	}
	return false
}

// atTop reports whether "q" should quit rather than go back.
func (m model) atTop() bool {
	if m.scr == screenMessages {
		return true
	}
	return m.scr == screenPassengers && m.deps.Path != ""
}

// recovered returns to a screen that does not depend on the message being
// processed when the panic hit.
func (m model) recovered(notice string) tea.Model {
	m.busy = false
	m.toast = notice
	if m.deps.Path != "" && len(m.flight.Passengers) > 0 {
		m.scr = screenPassengers
		return m
	}
	m.scr = screenMessages
	m.flight = domain.Flight{}
	m.flightPath = ""
	m.selected = 0
	return m
}

func (m model) logState() []any {
	return []any{"screen", m.scr.String(), "message", m.flightPath, "flight", m.flight.FlightNumber}
}

func (m model) back() model {
	switch m.scr {
	case screenPassenger:
		m.scr = screenPassengers
	case screenPassengers:
		m.scr = screenMessages
	}
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("pnladl") + "\n" +
		m.theme.Subtitle.Render("PNL/ADL passenger list converter") + "\n"

	var banner string
	switch {
	case m.deps.Path != "":
		banner = m.theme.Help.Render("Message: " + filepath.Base(m.deps.Path))
	case m.workspaceFound:
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	default:
		banner = m.theme.Card.Render("⚠ No workspace found.\n\nPress i to create one here.")
	}

	status := ""
	if m.busy {
		status = "\n" + m.theme.Help.Render("working…")
	}
	if m.toast != "" {
		status += "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenMessages:
		help := m.theme.Help.Render("↑/↓ navigate • enter parse • / search • r reload • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.messages.View()) + status + "\n" + help)

	case screenPassengers:
		help := m.theme.Help.Render("↑/↓ navigate • enter details • / search • esc back • q quit")
		body := renderFlightSummary(m.flight)
		return wrap.Render(header + "\n" + banner + "\n\n" + body + "\n" + m.theme.Card.Render(m.passengers.View()) + status + "\n" + help)

	case screenPassenger:
		var card string
		if m.selected >= 0 && m.selected < len(m.flight.Passengers) {
			card = renderPassenger(m.flight.Passengers[m.selected])
		}
		help := m.theme.Help.Render("esc/b back • q back")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(card) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
