// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"sort"

	"github.com/shellreserve/node/wire"
)

// CastVotes implements §4.G: compare our preferred candidate set against
// the currently elected set and produce a bounded add/remove vote vector
// to embed in the next locally produced block.
//
// This follows the corrected semantics flagged in the design notes: known
// is computed from the registry (never left as an uninitialised, always-
// empty set, which would silently degenerate into remove-only voting).
func (m *Manager) CastVotes() (adds, removes []wire.OutPoint) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	tip := int64(m.cfg.Chain.TipHeight())
	if tip < m.initialHeight+MonitoringMin {
		return nil, nil
	}

	m.registry.Prune()

	lookup := m.blockLookup()
	known := m.registry.Snapshot()
	for _, c := range known {
		m.scorer.score(c, tip, lookup)
	}

	filtered := known[:0]
	for _, c := range known {
		if c.cachedScore <= MaxScore && !c.misbehaving {
			filtered = append(filtered, c)
		}
	}
	known = filtered

	sort.Slice(known, func(i, j int) bool {
		return lessByStakeAdjustedScore(known[i], known[j])
	})
	if len(known) > int(m.cfg.Params.MasternodeMaxCount) {
		known = known[:m.cfg.Params.MasternodeMaxCount]
	}

	electedVec := m.elected.Ordered()
	electedCandidates := make([]*Candidate, 0, len(electedVec))
	for _, op := range electedVec {
		if c, ok := m.registry.Get(op); ok {
			electedCandidates = append(electedCandidates, c)
		} else {
			// Unknown to the registry: still participates in the merge
			// walk via a zero-value placeholder so it can be voted out.
			electedCandidates = append(electedCandidates, &Candidate{Outpoint: op})
		}
	}
	sort.Slice(electedCandidates, func(i, j int) bool {
		return lessByStakeAdjustedScore(electedCandidates[i], electedCandidates[j])
	})

	adds, removes = mergeDiff(electedCandidates, known)

	// Reverse adds so the highest-priority additions (best score) sort
	// first; the merge walk emits them in ascending-score order but
	// truncation below should keep the best candidates.
	for i, j := 0, len(adds)-1; i < j; i, j = i+1, j-1 {
		adds[i], adds[j] = adds[j], adds[i]
	}

	adds, removes = capVotes(adds, removes, int(m.cfg.Params.MasternodeMaxVotes))
	return adds, removes
}

// mergeDiff walks two score-sorted candidate sequences and returns the
// set-difference outpoints: entries only in elected become remove votes,
// entries only in known become add votes.
func mergeDiff(elected, known []*Candidate) (adds, removes []wire.OutPoint) {
	i, j := 0, 0
	for i < len(elected) && j < len(known) {
		switch {
		case elected[i].Outpoint == known[j].Outpoint:
			i++
			j++
		case lessByStakeAdjustedScore(elected[i], known[j]):
			removes = append(removes, elected[i].Outpoint)
			i++
		default:
			adds = append(adds, known[j].Outpoint)
			j++
		}
	}
	for ; i < len(elected); i++ {
		removes = append(removes, elected[i].Outpoint)
	}
	for ; j < len(known); j++ {
		adds = append(adds, known[j].Outpoint)
	}
	return adds, removes
}

// capVotes enforces |adds|+|removes| <= maxVotes, allocating slots
// proportionally when both sides are non-empty and truncation is needed.
func capVotes(adds, removes []wire.OutPoint, maxVotes int) ([]wire.OutPoint, []wire.OutPoint) {
	total := len(adds) + len(removes)
	if total <= maxVotes {
		return adds, removes
	}

	switch {
	case len(adds) == 0:
		return adds, removes[:maxVotes]
	case len(removes) == 0:
		return adds[:maxVotes], removes
	default:
		n0 := (len(adds)*maxVotes + total/2) / total
		if n0 < 1 {
			n0 = 1
		}
		if n0 > maxVotes-1 {
			n0 = maxVotes - 1
		}
		n1 := maxVotes - n0
		if n0 > len(adds) {
			n0 = len(adds)
		}
		if n1 > len(removes) {
			n1 = len(removes)
		}
		return adds[:n0], removes[:n1]
	}
}
