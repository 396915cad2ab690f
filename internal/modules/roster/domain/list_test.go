package domain_test

import (
	"testing"

	"turma/internal/modules/roster/domain"
)

func participants(ids ...int64) []domain.Participant {
	out := make([]domain.Participant, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Participant{ID: id, Nome: "p"})
	}
	return out
}

func idsOf(ps []domain.Participant) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEmptySearchMatchesFullCollection(t *testing.T) {
	t.Parallel()
	var l domain.List
	l.SetAll(participants(1, 2, 3))
	l.Search("")
	if !sameIDs(idsOf(l.Filtered()), idsOf(l.All())) {
		t.Fatalf("filtered %v should equal collection %v", idsOf(l.Filtered()), idsOf(l.All()))
	}
}

func TestSearchIsIDSubstringContainment(t *testing.T) {
	t.Parallel()
	var l domain.List
	l.SetAll(participants(3, 13, 23, 4))
	l.Search("3")
	if got, want := idsOf(l.Filtered()), []int64{3, 13, 23}; !sameIDs(got, want) {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
}

func TestSearchDoesNotResetPage(t *testing.T) {
	t.Parallel()
	var l domain.List
	all := make([]domain.Participant, 0, 25)
	for i := int64(1); i <= 25; i++ {
		all = append(all, domain.Participant{ID: i})
	}
	l.SetAll(all)
	l.NextPage()
	l.NextPage()
	if l.PageIndex() != 2 {
		t.Fatalf("page = %d, want 2", l.PageIndex())
	}

	// Shrinking the view below the current window leaves the page index
	// alone and renders an empty page, as the original client does.
	l.Search("1")
	if l.PageIndex() != 2 {
		t.Fatalf("page after search = %d, want 2", l.PageIndex())
	}
	if len(l.Page()) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(l.Page()))
	}
}

func TestAppendGoesToTheEnd(t *testing.T) {
	t.Parallel()
	var l domain.List
	l.SetAll(participants(1, 2))
	l.Append(domain.Participant{ID: 9, Nome: "Ana", MediaFinal: 8.5})
	if got, want := idsOf(l.All()), []int64{1, 2, 9}; !sameIDs(got, want) {
		t.Fatalf("collection = %v, want %v", got, want)
	}
	if got, want := idsOf(l.Filtered()), []int64{1, 2, 9}; !sameIDs(got, want) {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
}

func TestDeleteRemovesByID(t *testing.T) {
	t.Parallel()
	var l domain.List
	l.SetAll(participants(1, 2, 3))
	l.Delete(2)
	if got, want := idsOf(l.All()), []int64{1, 3}; !sameIDs(got, want) {
		t.Fatalf("collection = %v, want %v", got, want)
	}

	// Unknown ids are a no-op.
	l.Delete(42)
	if got, want := idsOf(l.All()), []int64{1, 3}; !sameIDs(got, want) {
		t.Fatalf("collection after missing-id delete = %v, want %v", got, want)
	}
}

func TestReplaceIsOrderStable(t *testing.T) {
	t.Parallel()
	var l domain.List
	l.SetAll(participants(1, 2, 3))
	l.Replace(domain.Participant{ID: 2, Nome: "editado", MediaFinal: 7})
	if got, want := idsOf(l.All()), []int64{1, 2, 3}; !sameIDs(got, want) {
		t.Fatalf("order changed: %v, want %v", got, want)
	}
	if l.All()[1].Nome != "editado" {
		t.Fatalf("record not replaced: %+v", l.All()[1])
	}
	if l.Filtered()[1].Nome != "editado" {
		t.Fatalf("filtered view not replaced: %+v", l.Filtered()[1])
	}
}

func TestPaginationWindows(t *testing.T) {
	t.Parallel()
	var l domain.List
	all := make([]domain.Participant, 0, 25)
	for i := int64(1); i <= 25; i++ {
		all = append(all, domain.Participant{ID: i})
	}
	l.SetAll(all)

	if got := l.Page(); len(got) != 10 || got[0].ID != 1 || got[9].ID != 10 {
		t.Fatalf("page 0 = %v", idsOf(got))
	}
	l.NextPage()
	l.NextPage()
	if got := l.Page(); len(got) != 5 || got[0].ID != 21 || got[4].ID != 25 {
		t.Fatalf("page 2 = %v", idsOf(got))
	}

	// NextPage refuses to move past the last non-empty page.
	l.NextPage()
	if l.PageIndex() != 2 {
		t.Fatalf("page = %d, want 2", l.PageIndex())
	}
	l.PrevPage()
	l.PrevPage()
	l.PrevPage()
	if l.PageIndex() != 0 {
		t.Fatalf("page floors at 0, got %d", l.PageIndex())
	}
	if l.PageCount() != 3 {
		t.Fatalf("page count = %d, want 3", l.PageCount())
	}
}
