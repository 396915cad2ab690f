package domain

import "strings"

// PageSize is the fixed client-side window, matching the original UI.
const PageSize = 10

// List is the roster view-model state: the canonical in-memory collection,
// the filtered view derived from the active search text, and the page index.
// All operations are pure local state changes; network reconciliation is the
// caller's concern.
//
// Two behaviours are preserved from the original client on purpose: the id
// search is literal substring containment on the decimal id, and the page
// index does not reset when the filter shrinks the view.
type List struct {
	all      []Participant
	filtered []Participant
	search   string
	page     int
}

// SetAll replaces the collection and re-derives the filtered view with the
// current search text.
func (l *List) SetAll(ps []Participant) {
	l.all = append([]Participant(nil), ps...)
	l.refilter()
}

// Append adds a server-canonical record to the end of both the collection and
// the filtered view.
func (l *List) Append(p Participant) {
	l.all = append(l.all, p)
	l.filtered = append(l.filtered, p)
}

// Replace swaps the record with a matching id in place, in both views,
// preserving the position of every other record. Unknown ids are a no-op.
func (l *List) Replace(p Participant) {
	for i := range l.all {
		if l.all[i].ID == p.ID {
			l.all[i] = p
		}
	}
	for i := range l.filtered {
		if l.filtered[i].ID == p.ID {
			l.filtered[i] = p
		}
	}
}

// Delete removes the record with the given id from both views. Unknown ids
// are a no-op.
func (l *List) Delete(id int64) {
	l.all = removeByID(l.all, id)
	l.filtered = removeByID(l.filtered, id)
}

// Search re-derives the filtered view. Empty text restores the full
// collection; non-empty text keeps records whose decimal id contains the text
// as a substring. The page index is intentionally left alone.
func (l *List) Search(text string) {
	l.search = text
	l.refilter()
}

func (l *List) refilter() {
	if l.search == "" {
		l.filtered = append([]Participant(nil), l.all...)
		return
	}
	out := make([]Participant, 0, len(l.all))
	for _, p := range l.all {
		if strings.Contains(p.IDText(), l.search) {
			out = append(out, p)
		}
	}
	l.filtered = out
}

// Page returns the current window: filtered[page*10 : page*10+10], clamped.
// Pages past the end of the filtered view are empty.
func (l *List) Page() []Participant {
	start := l.page * PageSize
	if start >= len(l.filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(l.filtered) {
		end = len(l.filtered)
	}
	return l.filtered[start:end]
}

func (l *List) NextPage() {
	if (l.page+1)*PageSize < len(l.filtered) {
		l.page++
	}
}

func (l *List) PrevPage() {
	if l.page > 0 {
		l.page--
	}
}

func (l *List) All() []Participant      { return l.all }
func (l *List) Filtered() []Participant { return l.filtered }
func (l *List) SearchText() string      { return l.search }
func (l *List) PageIndex() int          { return l.page }

// PageCount reports how many non-empty pages the filtered view spans.
func (l *List) PageCount() int {
	if len(l.filtered) == 0 {
		return 1
	}
	return (len(l.filtered) + PageSize - 1) / PageSize
}

func removeByID(ps []Participant, id int64) []Participant {
	out := ps[:0]
	for _, p := range ps {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
