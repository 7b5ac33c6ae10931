// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"sort"

	"github.com/shellreserve/node/wire"
)

// electedSet maintains the elected outpoints in strict lexicographic
// order, the ordering Payee Selection and Voting both require. It is
// backed by a sorted slice rather than an insertion-ordered map — per the
// design notes, an insertion-ordered map would be the wrong choice here —
// and a plain sorted slice is a reasonable trade given the elected set is
// bounded by MaxMasternodes (a few thousand entries at most).
type electedSet struct {
	items []wire.OutPoint
}

func newElectedSet() *electedSet {
	return &electedSet{}
}

func (s *electedSet) search(op wire.OutPoint) (int, bool) {
	i := sort.Search(len(s.items), func(i int) bool {
		return !s.items[i].Less(op)
	})
	if i < len(s.items) && s.items[i] == op {
		return i, true
	}
	return i, false
}

// Insert adds op if absent, returning true iff the set changed.
func (s *electedSet) Insert(op wire.OutPoint) bool {
	i, found := s.search(op)
	if found {
		return false
	}
	s.items = append(s.items, wire.OutPoint{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = op
	return true
}

// Erase removes op if present, returning true iff the set changed.
func (s *electedSet) Erase(op wire.OutPoint) bool {
	i, found := s.search(op)
	if !found {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Contains reports whether op is currently elected.
func (s *electedSet) Contains(op wire.OutPoint) bool {
	_, found := s.search(op)
	return found
}

// Len returns the number of elected outpoints.
func (s *electedSet) Len() int {
	return len(s.items)
}

// Ordered returns the elected outpoints in ascending lexicographic order.
// The returned slice must not be mutated by the caller.
func (s *electedSet) Ordered() []wire.OutPoint {
	return s.items
}

// Clone returns an independent copy of the set's contents.
func (s *electedSet) Clone() *electedSet {
	out := make([]wire.OutPoint, len(s.items))
	copy(out, s.items)
	return &electedSet{items: out}
}
