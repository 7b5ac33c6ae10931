// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/wire"
)

// Manager is the single owned context for the masternode coordination
// core (§9 design notes: no file-scope globals). The host constructs one
// at startup and destroys it at shutdown; every inbound hook in §6 is a
// method on it, and every mutation runs under mtx, the core's one external
// lock (§5).
type Manager struct {
	mtx sync.Mutex

	cfg      *Config
	registry *Registry
	liveness *livenessLog
	scorer   *scorer
	elected  *electedSet

	// annex holds the per-block fields the core needs that do not belong
	// on the host's block index, keyed by block hash to avoid a
	// core<->block-index cycle.
	annex map[chainhash.Hash]*BlockAnnex

	initialHeight    int64
	haveInitialHeight bool
}

// New constructs a Manager bound to cfg. The host must call LoadElections
// once the chain index is built before relying on the elected set.
func New(cfg *Config) *Manager {
	m := &Manager{
		cfg:      cfg,
		registry: newRegistry(cfg),
		liveness: newLivenessLog(cfg),
		scorer:   &scorer{},
		elected:  newElectedSet(),
		annex:    make(map[chainhash.Hash]*BlockAnnex),
	}
	return m
}

// blockLookup returns a blockLookup closure bound to the manager's current
// chain and annex state, usable by Schedule and Scoring.
func (m *Manager) blockLookup() blockLookup {
	return func(height int64) (chainhash.Hash, int64, bool) {
		if height < 0 || height > int64(m.cfg.Chain.TipHeight()) {
			return chainhash.Hash{}, 0, false
		}
		hash, ok := m.cfg.Chain.HashAtHeight(int32(height))
		if !ok {
			return chainhash.Hash{}, 0, false
		}
		if a, ok := m.annex[hash]; ok {
			return hash, a.RecvTimeMs, true
		}
		return hash, 0, true
	}
}

// annexFor returns the BlockAnnex for hash, creating it if necessary.
func (m *Manager) annexFor(height int32, hash chainhash.Hash) *BlockAnnex {
	a, ok := m.annex[hash]
	if !ok {
		a = &BlockAnnex{Height: height, Hash: hash}
		m.annex[hash] = a
	}
	return a
}

// Score returns op's current penalty score (the raw mean, without the
// stake adjustment used to order candidates for voting); ok is false if
// op is not a known, acceptable candidate.
func (m *Manager) Score(op wire.OutPoint) (score float64, ok bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	c, found := m.registry.Get(op)
	if !found {
		return 0, false
	}
	tip := int64(m.cfg.Chain.TipHeight())
	return m.scorer.score(c, tip, m.blockLookup()), true
}

// StartLocal marks op as locally operated, attaching key for signing
// existence messages produced by the Local Announcer.
func (m *Manager) StartLocal(op wire.OutPoint, key *btcec.PrivateKey) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if err := m.registry.SetLocal(op, key); err != nil {
		return err
	}
	log.Infof("masternode: now operating local candidate %s", op)
	return nil
}

// StopLocal stops locally operating op.
func (m *Manager) StopLocal(op wire.OutPoint) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.registry.ClearLocal(op)
	log.Infof("masternode: stopped operating local candidate %s", op)
}

// Stats is a read-only snapshot of the manager's state for host RPC or
// metrics surfaces.
type Stats struct {
	RegistryCount int
	ElectedCount  int
	LocalCount    int
}

// Stats returns a snapshot of the manager's current state.
func (m *Manager) Stats() Stats {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return Stats{
		RegistryCount: m.registry.Len(),
		ElectedCount:  m.elected.Len(),
		LocalCount:    len(m.registry.LocalOutpoints()),
	}
}

// Elected returns a snapshot of the elected set in ascending
// lexicographic order.
func (m *Manager) Elected() []wire.OutPoint {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	out := make([]wire.OutPoint, m.elected.Len())
	copy(out, m.elected.Ordered())
	return out
}
