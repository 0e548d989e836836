// Package visibility decides what family-tree content a viewer sees and what
// actions they may take on it: placeholder redaction of blocked people,
// exclusion of blocked or soft-deleted updates, wall assembly with tagging
// rules, and per-update permission resolution. Everything except Blocklist is
// a pure function over its inputs.
package visibility

import "github.com/google/uuid"

// BlockSet is a membership set of blocked account IDs. It always contains
// account (User) identifiers, never Person identifiers.
type BlockSet map[uuid.UUID]struct{}

// NewBlockSet builds a BlockSet from a list of account IDs.
func NewBlockSet(ids ...uuid.UUID) BlockSet {
	s := make(BlockSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set matches nothing.
func (s BlockSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}
