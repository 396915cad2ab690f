package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"turma/internal/ui/theme"
	loginview "turma/internal/ui/views/login"
	rosterview "turma/internal/ui/views/roster"
)

// ─── routes ──────────────────────────────────────────────────────────────────

// The app mirrors the original client's two routes: an unauthenticated login
// screen and the participant roster. There is no route guard; starting on the
// roster without a stored token just produces failing, logged API calls.
type route int

const (
	routeLogin route = iota
	routeRoster
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	route  route
	login  loginview.Model
	roster rosterview.Model
	width  int
	height int
}

// NewModel starts on the roster when a session is already stored, otherwise
// on the login view.
func NewModel(session loginview.SessionPort, rosterPort rosterview.RosterPort, logger *logrus.Logger, authenticated bool) Model {
	start := routeLogin
	if authenticated {
		start = routeRoster
	}
	return Model{
		route:  start,
		login:  loginview.New(session),
		roster: rosterview.New(rosterPort, logger),
	}
}

func (m Model) Init() tea.Cmd {
	if m.route == routeRoster {
		return m.roster.Init()
	}
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var loginCmd, rosterCmd tea.Cmd
		m.login, loginCmd = m.login.Update(msg)
		m.roster, rosterCmd = m.roster.Update(msg)
		return m, tea.Batch(loginCmd, rosterCmd)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case loginview.DoneMsg:
		m.route = routeRoster
		return m, m.roster.Init()
	}

	var cmd tea.Cmd
	switch m.route {
	case routeLogin:
		m.login, cmd = m.login.Update(msg)
	case routeRoster:
		m.roster, cmd = m.roster.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.route {
	case routeRoster:
		return theme.App.Render(m.roster.View())
	default:
		return m.login.View()
	}
}
