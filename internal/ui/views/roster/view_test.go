package roster

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"turma/internal/modules/roster/domain"
	"turma/internal/modules/roster/dto"
	apperrors "turma/internal/platform/errors"
	"turma/internal/platform/logging"
)

type stubPort struct{}

func (stubPort) List(context.Context) ([]dto.ParticipantOutput, error) { return nil, nil }
func (stubPort) Create(context.Context, dto.ParticipantInput) (dto.ParticipantOutput, error) {
	return dto.ParticipantOutput{}, nil
}
func (stubPort) Update(context.Context, int64, dto.ParticipantInput) (dto.ParticipantOutput, error) {
	return dto.ParticipantOutput{}, nil
}
func (stubPort) Remove(context.Context, int64) error { return nil }

func newTestModel() Model {
	return New(stubPort{}, logging.Discard())
}

func TestColumnsRespondToViewportWidth(t *testing.T) {
	t.Parallel()
	narrow := Columns(narrowWidth - 1)
	if len(narrow) != 2 || narrow[0].Title != "Nome" || narrow[1].Title != "Média Final" {
		t.Fatalf("narrow columns = %+v", titles(narrow))
	}
	wide := Columns(narrowWidth)
	if len(wide) != 5 {
		t.Fatalf("wide columns = %+v", titles(wide))
	}
}

func titles(cols []Column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Title)
	}
	return out
}

func TestLoadFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 1}}})

	m, _ = m.Update(loadedMsg{err: apperrors.ErrNotAuthenticated})
	if len(m.list.All()) != 1 {
		t.Fatalf("failed load must not touch the collection, got %d records", len(m.list.All()))
	}
}

func TestCreatedAppendsAndClearsDraft(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m.form[0].SetValue("Ana")
	m.form[1].SetValue("20")
	m.fieldErrs = map[string]string{"nome": "stale"}

	m, _ = m.Update(createdMsg{participant: domain.Participant{ID: 1, Nome: "Ana", MediaFinal: 8.5}, seq: 1})

	all := m.list.All()
	if len(all) != 1 || all[0].ID != 1 || all[0].MediaFinal != 8.5 {
		t.Fatalf("collection = %+v", all)
	}
	if m.form[0].Value() != "" || m.form[1].Value() != "" {
		t.Fatalf("draft should be cleared after success")
	}
	if m.fieldErrs != nil {
		t.Fatalf("field errors should be cleared, got %v", m.fieldErrs)
	}
}

func TestCreateValidationKeepsDraft(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m.form[0].SetValue("Ana")

	m, _ = m.Update(createdMsg{seq: 1, err: &apperrors.ValidationError{Fields: map[string]string{"nome": "required"}}})

	if len(m.list.All()) != 0 {
		t.Fatalf("collection must stay unchanged on 400")
	}
	if m.form[0].Value() != "Ana" {
		t.Fatalf("draft must survive a validation failure")
	}
	if m.fieldErrs["nome"] != "required" {
		t.Fatalf("field errors = %v", m.fieldErrs)
	}
}

func TestDeleteFailureIsLoggedOnly(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 1}, {ID: 2}}})

	m, _ = m.Update(deletedMsg{id: 2, seq: 1, err: &apperrors.RequestError{Status: 404}})
	if len(m.list.All()) != 2 {
		t.Fatalf("404 delete must leave the collection alone, got %d records", len(m.list.All()))
	}
}

func TestStaleEditResponseDoesNotResurrectDeletedRecord(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 7, Nome: "Bia"}}})

	editSeq := m.guard.Issue()
	deleteSeq := m.guard.Issue()

	m, _ = m.Update(deletedMsg{id: 7, seq: deleteSeq})
	if len(m.list.All()) != 0 {
		t.Fatalf("delete should apply, got %d records", len(m.list.All()))
	}

	m, _ = m.Update(updatedMsg{participant: domain.Participant{ID: 7, Nome: "zumbi"}, id: 7, seq: editSeq})
	if len(m.list.All()) != 0 {
		t.Fatalf("stale edit response must be discarded, got %+v", m.list.All())
	}
}

func TestSaveEditReplacesInPlace(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 1}, {ID: 2, Nome: "old"}, {ID: 3}}})
	m.editing = true

	seq := m.guard.Issue()
	m, _ = m.Update(updatedMsg{participant: domain.Participant{ID: 2, Nome: "new"}, id: 2, seq: seq})

	all := m.list.All()
	if all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 3 {
		t.Fatalf("order must be stable, got %+v", all)
	}
	if all[1].Nome != "new" {
		t.Fatalf("record not replaced: %+v", all[1])
	}
	if m.editing {
		t.Fatalf("edit draft should close after a successful save")
	}
}

func TestEditValidationKeepsDraftOpen(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 1, Nome: "Ana"}}})
	m = m.beginEdit()

	seq := m.guard.Issue()
	m, _ = m.Update(updatedMsg{id: 1, seq: seq, err: &apperrors.ValidationError{Fields: map[string]string{"idade": "inválida"}}})
	if !m.editing {
		t.Fatalf("edit draft must stay open on a validation failure")
	}
	if m.fieldErrs["idade"] != "inválida" {
		t.Fatalf("field errors = %v", m.fieldErrs)
	}
}

func TestBeginEditDiscardsPreviousDraft(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 1, Nome: "Ana"}, {ID: 2, Nome: "Bia"}}})
	m.focus = focusTable

	m = m.beginEdit()
	m.editForm[0].SetValue("unsaved change")

	m.cursor = 1
	m = m.beginEdit()
	if m.editID != 2 || m.editForm[0].Value() != "Bia" {
		t.Fatalf("new edit should silently replace the unsaved draft, got id=%d nome=%q", m.editID, m.editForm[0].Value())
	}
}

func TestSearchKeystrokeRefilters(t *testing.T) {
	t.Parallel()
	m := newTestModel()
	m, _ = m.Update(loadedMsg{participants: []domain.Participant{{ID: 3}, {ID: 13}, {ID: 4}}})
	m.setFocus(focusSearch)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if got := len(m.list.Filtered()); got != 2 {
		t.Fatalf("filtered view = %d records, want 2", got)
	}
}
