package login

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "turma/internal/modules/session/dto"
	apperrors "turma/internal/platform/errors"
	"turma/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// DoneMsg is emitted to the app model after a successful login.
type DoneMsg struct{}

type resultMsg struct {
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

type Model struct {
	port    SessionPort
	inputs  [fieldCount]textinput.Model
	focus   int
	errText string
	busy    bool
	width   int
	height  int
}

func New(port SessionPort) Model {
	username := textinput.New()
	username.Placeholder = "Usuário"
	username.Prompt = "> "
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Senha"
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		port:   port,
		inputs: [fieldCount]textinput.Model{username, password},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = loginErrorText(msg.err)
			return m, nil
		}
		m.errText = ""
		return m, func() tea.Msg { return DoneMsg{} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % fieldCount
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case "enter":
			m.busy = true
			return m, m.loginCmd()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	form := theme.Title.Render("Acesso ao Sistema de Gestão de Alunos") + "\n\n" +
		m.inputs[fieldUsername].View() + "\n" +
		m.inputs[fieldPassword].View() + "\n"
	if m.errText != "" {
		form += "\n" + theme.Error.Render(m.errText) + "\n"
	}
	if m.busy {
		form += "\n" + theme.Muted.Render("Entrando…")
	} else {
		form += "\n" + theme.Muted.Render("enter: entrar  tab: próximo campo  ctrl+c: sair")
	}
	box := theme.PaneActive.Render(form)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loginCmd() tea.Cmd {
	username := m.inputs[fieldUsername].Value()
	password := m.inputs[fieldPassword].Value()
	return func() tea.Msg {
		_, err := m.port.Login(context.Background(), sessiondto.LoginInput{Username: username, Password: password})
		return resultMsg{err: err}
	}
}

// loginErrorText distinguishes bad credentials from an unreachable or broken
// service, which the status on AuthError makes possible.
func loginErrorText(err error) string {
	var authErr *apperrors.AuthError
	if errors.As(err, &authErr) {
		switch {
		case authErr.Status >= 400 && authErr.Status < 500:
			return "Usuário ou senha inválidos"
		case authErr.Status >= 500:
			return "Serviço indisponível"
		default:
			return "Não foi possível conectar ao servidor"
		}
	}
	return err.Error()
}
