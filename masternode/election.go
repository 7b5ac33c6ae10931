// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/wire"
)

// OnBlockConnect implements §4.H + §4.I for a single newly connected block.
// addVotes and removeVotes are that block's own embedded vote outpoints
// (host-defined serialisation slots, §6). It returns the selected payee's
// key id and whether one was selected at all.
func (m *Manager) OnBlockConnect(height int32, hash, parent chainhash.Hash, addVotes, removeVotes []wire.OutPoint) (KeyID, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.connectLocked(height, hash, parent, addVotes, removeVotes)
}

// connectLocked applies one block's election tally and payee selection.
// Callers must hold m.mtx.
func (m *Manager) connectLocked(height int32, hash, parent chainhash.Hash, addVotes, removeVotes []wire.OutPoint) (KeyID, bool) {
	annex := m.annexFor(height, hash)
	annex.Parent = parent
	annex.HasPrev = true
	annex.AddVotes = addVotes
	annex.RemoveVotes = removeVotes

	if height <= m.cfg.Params.MasternodeHardForkHeight {
		return KeyID{}, false
	}

	addCounts, removeCounts := m.tallyWindow(height - 1)
	threshold := m.cfg.Params.MasternodeElectionPeriod / 2

	for op, count := range addCounts {
		if count <= threshold {
			continue
		}
		if _, known := m.registry.Get(op); !known {
			continue
		}
		if m.elected.Insert(op) {
			annex.AppliedAdds = append(annex.AppliedAdds, op)
		}
	}
	for op, count := range removeCounts {
		if count <= threshold {
			continue
		}
		if m.elected.Erase(op) {
			annex.AppliedRemoves = append(annex.AppliedRemoves, op)
		}
	}

	parentPayee, parentHasPayee := wire.OutPoint{}, false
	if parentAnnex, ok := m.annex[parent]; ok {
		parentPayee, parentHasPayee = parentAnnex.SelectedPayee, parentAnnex.HasPayee
	}

	payeeOutpoint, ok := selectPayee(m.elected, parentPayee, parentHasPayee)
	annex.SelectedPayee = payeeOutpoint
	annex.HasPayee = ok
	if !ok {
		return KeyID{}, false
	}

	c, found := m.registry.Get(payeeOutpoint)
	if !found {
		return KeyID{}, false
	}
	return c.KeyID, true
}

// OnBlockDisconnect implements §4.H's undo step: reverse the election
// changes this block applied, and assert the inverse effect actually
// holds. A failed assertion means the chain index has diverged from what
// this node itself applied and the node must not continue running.
func (m *Manager) OnBlockDisconnect(hash chainhash.Hash) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	annex, ok := m.annex[hash]
	assertf(ok, "disconnect of block %s with no recorded annex", hash)

	for _, op := range annex.AppliedAdds {
		assertf(m.elected.Erase(op), "disconnect undo: %s expected elected, was not", op)
	}
	for _, op := range annex.AppliedRemoves {
		assertf(m.elected.Insert(op), "disconnect undo: %s expected absent from elected, was present", op)
	}

	delete(m.annex, hash)
}

// tallyWindow sums per-outpoint add/remove vote occurrences across the
// ELECTION_PERIOD blocks ending at parentHeight (inclusive).
func (m *Manager) tallyWindow(parentHeight int32) (addCounts, removeCounts map[wire.OutPoint]int32) {
	addCounts = make(map[wire.OutPoint]int32)
	removeCounts = make(map[wire.OutPoint]int32)

	period := m.cfg.Params.MasternodeElectionPeriod
	for h := parentHeight - period + 1; h <= parentHeight; h++ {
		if h < 0 {
			continue
		}
		hash, ok := m.cfg.Chain.HashAtHeight(h)
		if !ok {
			continue
		}
		annex, ok := m.annex[hash]
		if !ok {
			continue
		}
		for _, op := range annex.AddVotes {
			addCounts[op]++
		}
		for _, op := range annex.RemoveVotes {
			removeCounts[op]++
		}
	}
	return addCounts, removeCounts
}

// LoadElections implements §4.H's full-history replay: starting one block
// past the hard-fork height, connect every block in order to rebuild the
// elected set from chain data alone. The host must call this once at
// startup, after its own block index is built, before relying on Elected,
// CastVotes, or any payee selection.
func (m *Manager) LoadElections() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.elected = newElectedSet()
	m.annex = make(map[chainhash.Hash]*BlockAnnex)

	tip := m.cfg.Chain.TipHeight()
	start := m.cfg.Params.MasternodeHardForkHeight + 1
	if start < 1 {
		start = 1
	}

	var parentHash chainhash.Hash
	if start > 0 {
		if h, ok := m.cfg.Chain.HashAtHeight(start - 1); ok {
			parentHash = h
		}
	}

	for height := start; height <= tip; height++ {
		hash, ok := m.cfg.Chain.HashAtHeight(height)
		if !ok {
			break
		}
		adds, removes, _ := m.cfg.Chain.VotesAtHeight(height)
		m.connectLocked(height, hash, parentHash, adds, removes)
		parentHash = hash
	}

	m.initialHeight = int64(tip)
	m.haveInitialHeight = true
	m.scorer.initialHeight = int64(tip)
	log.Infof("masternode: replayed elections through height %d, %d elected", tip, m.elected.Len())
}
