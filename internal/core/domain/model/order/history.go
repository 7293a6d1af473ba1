package order

import (
	"strings"
	"time"
)

// HistoryEntry records one accepted status transition in any of the order's
// state machines: who moved what from where to where, and when. Entries are
// immutable once appended.
// From and to are stored as wire names rather than typed statuses because
// the payment machine shares this trail with the order machines. An empty
// from marks a creation entry.
type HistoryEntry struct {
	seq       int
	timestamp time.Time
	scope     Scope
	from      string
	to        string
	actorID   string
	actorRole ActorRole
	note      string
}

// Seq returns the entry's insertion sequence within its order. Sequence
// numbers order entries that share a timestamp.
func (e HistoryEntry) Seq() int {
	return e.seq
}

// Timestamp returns when the transition was accepted.
func (e HistoryEntry) Timestamp() time.Time {
	return e.timestamp
}

// Scope returns which state machine the transition belongs to.
func (e HistoryEntry) Scope() Scope {
	return e.scope
}

// From returns the wire name of the status before the transition, or the
// empty string for creation entries.
func (e HistoryEntry) From() string {
	return e.from
}

// To returns the wire name of the status after the transition.
func (e HistoryEntry) To() string {
	return e.to
}

// ActorID returns the identity of the actor who made the change.
func (e HistoryEntry) ActorID() string {
	return e.actorID
}

// ActorRole returns the role of the actor who made the change.
func (e HistoryEntry) ActorRole() ActorRole {
	return e.actorRole
}

// Note returns the optional free-text note attached to the transition.
func (e HistoryEntry) Note() string {
	return e.note
}

// History is the append-only audit trail of an order. Every accepted
// transition in the order, sub-order, and payment machines appends exactly
// one entry; entries are never mutated, reordered, or deleted. Ordering is
// by timestamp, then by insertion sequence for same-instant transitions.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates an empty audit trail.
func NewHistory() *History {
	return &History{}
}

// RestoreHistory reconstructs an audit trail from persisted entries,
// trusting their stored ordering.
func RestoreHistory(entries []HistoryEntry) *History {
	h := NewHistory()
	h.entries = append(h.entries, entries...)
	return h
}

// RestoreHistoryEntry reconstructs one persisted history row.
func RestoreHistoryEntry(
	seq int,
	timestamp time.Time,
	scope Scope,
	from, to string,
	actorID string,
	actorRole ActorRole,
	note string,
) HistoryEntry {
	return HistoryEntry{
		seq:       seq,
		timestamp: timestamp,
		scope:     scope,
		from:      from,
		to:        to,
		actorID:   actorID,
		actorRole: actorRole,
		note:      note,
	}
}

// Append records one accepted transition and returns the created entry.
func (h *History) Append(scope Scope, from, to string, actor Actor, note string, at time.Time) HistoryEntry {
	entry := HistoryEntry{
		seq:       len(h.entries) + 1,
		timestamp: at,
		scope:     scope,
		from:      from,
		to:        to,
		actorID:   actor.ID().String(),
		actorRole: actor.Role(),
		note:      strings.TrimSpace(note),
	}

	h.entries = append(h.entries, entry)
	return entry
}

// Entries returns a copy of all entries in append order.
func (h *History) Entries() []HistoryEntry {
	return append([]HistoryEntry{}, h.entries...)
}

// Len returns the number of recorded transitions.
func (h *History) Len() int {
	return len(h.entries)
}
