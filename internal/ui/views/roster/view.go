package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"turma/internal/modules/roster/domain"
	"turma/internal/modules/roster/dto"
	apperrors "turma/internal/platform/errors"
	"turma/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RosterPort interface {
	List(ctx context.Context) ([]dto.ParticipantOutput, error)
	Create(ctx context.Context, input dto.ParticipantInput) (dto.ParticipantOutput, error)
	Update(ctx context.Context, id int64, input dto.ParticipantInput) (dto.ParticipantOutput, error)
	Remove(ctx context.Context, id int64) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type loadedMsg struct {
	participants []domain.Participant
	err          error
}

type createdMsg struct {
	participant domain.Participant
	seq         uint64
	err         error
}

type updatedMsg struct {
	participant domain.Participant
	id          int64
	seq         uint64
	err         error
}

type deletedMsg struct {
	id  int64
	seq uint64
	err error
}

// ─── columns ─────────────────────────────────────────────────────────────────

// narrowWidth is the small-screen threshold: below it only the name and the
// final average are shown, like the original client on a phone viewport.
const narrowWidth = 80

type Column struct {
	Title string
	Width int
	Value func(domain.Participant) string
}

func Columns(width int) []Column {
	nome := Column{Title: "Nome", Width: 24, Value: func(p domain.Participant) string { return p.Nome }}
	media := Column{Title: "Média Final", Width: 12, Value: func(p domain.Participant) string { return fmt.Sprintf("%.1f", p.MediaFinal) }}
	if width < narrowWidth {
		return []Column{nome, media}
	}
	return []Column{
		nome,
		{Title: "Idade", Width: 6, Value: func(p domain.Participant) string { return fmt.Sprintf("%d", p.Idade) }},
		{Title: "Nota 1º Sem", Width: 12, Value: func(p domain.Participant) string { return fmt.Sprintf("%.1f", p.NotaPrimeiroSemestre) }},
		{Title: "Nota 2º Sem", Width: 12, Value: func(p domain.Participant) string { return fmt.Sprintf("%.1f", p.NotaSegundoSemestre) }},
		media,
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	focusForm = iota
	focusSearch
	focusTable
)

var formFields = [4]struct {
	label string
	key   string
}{
	{"Nome", "nome"},
	{"Idade", "idade"},
	{"Nota 1º Semestre", "notaPrimeiroSemestre"},
	{"Nota 2º Semestre", "notaSegundoSemestre"},
}

type Model struct {
	port   RosterPort
	logger *logrus.Logger

	list    domain.List
	guard   *domain.SeqGuard
	loading bool

	form      [4]textinput.Model
	formField int
	search    textinput.Model
	focus     int
	cursor    int

	editing   bool
	editID    int64
	editForm  [4]textinput.Model
	editField int
	fieldErrs map[string]string
	spinner   spinner.Model
	pager     paginator.Model
	width     int
	height    int
}

func New(port RosterPort, logger *logrus.Logger) Model {
	var form [4]textinput.Model
	for i := range form {
		form[i] = textinput.New()
		form[i].Placeholder = formFields[i].label
		form[i].Prompt = ""
		form[i].Width = 24
	}
	form[0].Focus()

	search := textinput.New()
	search.Placeholder = "Buscar por ID"
	search.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	pg := paginator.New()
	pg.Type = paginator.Arabic

	return Model{
		port:    port,
		logger:  logger,
		guard:   domain.NewSeqGuard(),
		loading: true,
		form:    form,
		search:  search,
		spinner: sp,
		pager:   pg,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick, textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			// Stale-but-consistent: keep whatever was on screen.
			m.logger.WithError(msg.err).Error("load participants")
			return m, nil
		}
		m.list.SetAll(msg.participants)
		m.clampCursor()
		return m, nil

	case createdMsg:
		return m.applyCreated(msg), nil

	case updatedMsg:
		return m.applyUpdated(msg), nil

	case deletedMsg:
		return m.applyDeleted(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

// ─── mutation reconciliation ─────────────────────────────────────────────────

func (m Model) applyCreated(msg createdMsg) Model {
	if msg.err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(msg.err, &vErr) {
			// Draft stays put so the user can correct and resubmit.
			m.fieldErrs = vErr.Fields
			return m
		}
		m.logger.WithError(msg.err).Error("add participant")
		return m
	}
	if m.guard.Admit(msg.participant.ID, msg.seq) {
		m.list.Append(msg.participant)
	}
	for i := range m.form {
		m.form[i].SetValue("")
	}
	m.fieldErrs = nil
	return m
}

func (m Model) applyUpdated(msg updatedMsg) Model {
	if msg.err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(msg.err, &vErr) {
			m.fieldErrs = vErr.Fields
			return m
		}
		m.logger.WithError(msg.err).Error("update participant")
		return m
	}
	if m.guard.Admit(msg.id, msg.seq) {
		m.list.Replace(msg.participant)
	}
	m.editing = false
	m.fieldErrs = nil
	return m
}

func (m Model) applyDeleted(msg deletedMsg) Model {
	if msg.err != nil {
		m.logger.WithError(msg.err).Error("delete participant")
		return m
	}
	if m.guard.Admit(msg.id, msg.seq) {
		m.list.Delete(msg.id)
		m.clampCursor()
	}
	return m
}

// ─── key handling ────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "tab":
		m.advanceFocus()
		return m, nil
	case "enter":
		if m.focus == focusForm {
			return m, m.createCmd()
		}
	}

	if m.focus == focusTable {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.list.Page())-1 {
				m.cursor++
			}
			return m, nil
		case "left", "h":
			m.list.PrevPage()
			m.clampCursor()
			return m, nil
		case "right", "l":
			m.list.NextPage()
			m.clampCursor()
			return m, nil
		case "e":
			return m.beginEdit(), nil
		case "d", "x":
			return m, m.deleteCmd()
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "/":
			m.setFocus(focusSearch)
			return m, nil
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelEdit()
		return m, nil
	case "tab", "shift+tab":
		m.editForm[m.editField].Blur()
		m.editField = (m.editField + 1) % len(m.editForm)
		m.editForm[m.editField].Focus()
		return m, nil
	case "enter":
		return m, m.saveEditCmd()
	}
	var cmd tea.Cmd
	m.editForm[m.editField], cmd = m.editForm[m.editField].Update(msg)
	// Typing into a field clears its stale message.
	m.clearFieldErr(formFields[m.editField].key)
	return m, cmd
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusForm:
		m.form[m.formField], cmd = m.form[m.formField].Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.clearFieldErr(formFields[m.formField].key)
		}
	case focusSearch:
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			// Every keystroke re-filters; the page index stays.
			m.list.Search(m.search.Value())
			m.clampCursor()
		}
	}
	return m, cmd
}

// ─── edit draft ──────────────────────────────────────────────────────────────

// beginEdit opens the single edit draft for the selected row. An unsaved
// draft from a previous edit is silently discarded.
func (m Model) beginEdit() Model {
	page := m.list.Page()
	if m.cursor >= len(page) {
		return m
	}
	selected := page[m.cursor]
	draft := domain.DraftFrom(selected)

	values := [4]string{draft.Nome, draft.Idade, draft.NotaPrimeiroSemestre, draft.NotaSegundoSemestre}
	for i := range m.editForm {
		m.editForm[i] = textinput.New()
		m.editForm[i].Prompt = ""
		m.editForm[i].Width = 24
		m.editForm[i].SetValue(values[i])
		m.editForm[i].Blur()
	}
	m.editForm[0].Focus()
	m.editField = 0
	m.editID = selected.ID
	m.editing = true
	m.fieldErrs = nil
	return m
}

func (m *Model) cancelEdit() {
	m.editing = false
	m.fieldErrs = nil
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.List(context.Background())
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{participants: fromOutputs(out)}
	}
}

func (m Model) createCmd() tea.Cmd {
	input := dto.ParticipantInput{
		Nome:                 m.form[0].Value(),
		Idade:                m.form[1].Value(),
		NotaPrimeiroSemestre: m.form[2].Value(),
		NotaSegundoSemestre:  m.form[3].Value(),
	}
	seq := m.guard.Issue()
	return func() tea.Msg {
		out, err := m.port.Create(context.Background(), input)
		if err != nil {
			return createdMsg{seq: seq, err: err}
		}
		return createdMsg{participant: fromOutput(out), seq: seq}
	}
}

func (m Model) saveEditCmd() tea.Cmd {
	id := m.editID
	input := dto.ParticipantInput{
		Nome:                 m.editForm[0].Value(),
		Idade:                m.editForm[1].Value(),
		NotaPrimeiroSemestre: m.editForm[2].Value(),
		NotaSegundoSemestre:  m.editForm[3].Value(),
	}
	seq := m.guard.Issue()
	return func() tea.Msg {
		out, err := m.port.Update(context.Background(), id, input)
		if err != nil {
			return updatedMsg{id: id, seq: seq, err: err}
		}
		return updatedMsg{participant: fromOutput(out), id: id, seq: seq}
	}
}

func (m Model) deleteCmd() tea.Cmd {
	page := m.list.Page()
	if m.cursor >= len(page) {
		return nil
	}
	id := page[m.cursor].ID
	seq := m.guard.Issue()
	return func() tea.Msg {
		if err := m.port.Remove(context.Background(), id); err != nil {
			return deletedMsg{id: id, seq: seq, err: err}
		}
		return deletedMsg{id: id, seq: seq}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading && len(m.list.All()) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Carregando participantes…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Lista de Participantes") + "\n\n")
	sb.WriteString(m.renderForm() + "\n")
	sb.WriteString(m.renderSearch() + "\n\n")
	sb.WriteString(m.renderTable())
	sb.WriteString("\n" + m.renderPager())
	sb.WriteString("\n" + theme.Muted.Render("tab: campo  enter: adicionar  e: editar  d: excluir  ←/→: página  r: recarregar"))

	body := sb.String()
	if m.editing {
		return m.renderEditOverlay()
	}
	return body
}

func (m Model) renderForm() string {
	var rows []string
	for i := range m.form {
		field := m.form[i].View()
		if i == m.formField && m.focus == focusForm {
			field = theme.PaneActive.Render(field)
		} else {
			field = theme.Pane.Render(field)
		}
		if msg, ok := m.fieldErrs[formFields[i].key]; ok && !m.editing {
			field = lipgloss.JoinVertical(lipgloss.Left, field, theme.Error.Render(msg))
		}
		rows = append(rows, field)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rows...)
}

func (m Model) renderSearch() string {
	view := m.search.View()
	if m.focus == focusSearch {
		return theme.PaneActive.Render(view)
	}
	return theme.Pane.Render(view)
}

func (m Model) renderTable() string {
	columns := Columns(m.width)

	var header strings.Builder
	for _, c := range columns {
		header.WriteString(pad(c.Title, c.Width))
	}
	var sb strings.Builder
	sb.WriteString(theme.TableHeader.Render(header.String()) + "\n")

	for i, p := range m.list.Page() {
		var row strings.Builder
		for _, c := range columns {
			row.WriteString(pad(c.Value(p), c.Width))
		}
		line := row.String()
		if i == m.cursor && m.focus == focusTable {
			line = theme.RowSelected.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) renderPager() string {
	pg := m.pager
	pg.SetTotalPages(m.list.PageCount())
	pg.Page = m.list.PageIndex()
	return theme.Muted.Render(pg.View() + fmt.Sprintf("  (%d registros)", len(m.list.Filtered())))
}

func (m Model) renderEditOverlay() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Editar Participante") + "\n\n")
	for i := range m.editForm {
		label := theme.Muted.Render(pad(formFields[i].label, 18))
		sb.WriteString(label + m.editForm[i].View() + "\n")
		if msg, ok := m.fieldErrs[formFields[i].key]; ok {
			sb.WriteString(strings.Repeat(" ", 18) + theme.Error.Render(msg) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: salvar  esc: cancelar  tab: próximo campo"))
	box := theme.PaneActive.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) advanceFocus() {
	switch m.focus {
	case focusForm:
		m.form[m.formField].Blur()
		if m.formField < len(m.form)-1 {
			m.formField++
			m.form[m.formField].Focus()
			return
		}
		m.formField = 0
		m.setFocus(focusSearch)
	case focusSearch:
		m.setFocus(focusTable)
	case focusTable:
		m.setFocus(focusForm)
	}
}

func (m *Model) setFocus(zone int) {
	m.focus = zone
	m.search.Blur()
	for i := range m.form {
		m.form[i].Blur()
	}
	switch zone {
	case focusForm:
		m.form[m.formField].Focus()
	case focusSearch:
		m.search.Focus()
	}
}

func (m *Model) clampCursor() {
	if n := len(m.list.Page()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clearFieldErr(key string) {
	if m.fieldErrs != nil {
		delete(m.fieldErrs, key)
	}
}

func pad(s string, width int) string {
	if len([]rune(s)) >= width {
		return string([]rune(s)[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

func fromOutput(out dto.ParticipantOutput) domain.Participant {
	return domain.Participant{
		ID:                   out.ID,
		Nome:                 out.Nome,
		Idade:                out.Idade,
		NotaPrimeiroSemestre: out.NotaPrimeiroSemestre,
		NotaSegundoSemestre:  out.NotaSegundoSemestre,
		MediaFinal:           out.MediaFinal,
	}
}

func fromOutputs(outs []dto.ParticipantOutput) []domain.Participant {
	participants := make([]domain.Participant, 0, len(outs))
	for _, out := range outs {
		participants = append(participants, fromOutput(out))
	}
	return participants
}
