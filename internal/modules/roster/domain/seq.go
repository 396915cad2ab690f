package domain

// SeqGuard detects out-of-order mutation responses. Each mutating request is
// stamped with Issue(); a response is applied only when Admit accepts its
// stamp. A late edit-save response arriving after a delete of the same id is
// rejected instead of resurrecting the record.
type SeqGuard struct {
	next    uint64
	applied map[int64]uint64
}

func NewSeqGuard() *SeqGuard {
	return &SeqGuard{applied: map[int64]uint64{}}
}

// Issue allocates the next request stamp.
func (g *SeqGuard) Issue() uint64 {
	g.next++
	return g.next
}

// Admit reports whether a response stamped seq for the given record may be
// applied, recording it as the latest when admitted.
func (g *SeqGuard) Admit(id int64, seq uint64) bool {
	if seq < g.applied[id] {
		return false
	}
	g.applied[id] = seq
	return true
}
