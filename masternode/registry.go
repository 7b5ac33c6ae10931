// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/shellreserve/node/wire"
)

// Registry is a read-through cache of masternode candidates keyed by
// staking outpoint, admitted lazily from the host's coin view. It never
// synthesises a candidate from untrusted input: every entry traces back to
// a CoinView lookup that passed the acceptability predicate.
type Registry struct {
	mtx sync.RWMutex

	cfg *Config

	candidates map[wire.OutPoint]*Candidate
	localSet   map[wire.OutPoint]struct{}
}

// newRegistry returns an empty Registry bound to cfg.
func newRegistry(cfg *Config) *Registry {
	return &Registry{
		cfg:        cfg,
		candidates: make(map[wire.OutPoint]*Candidate),
		localSet:   make(map[wire.OutPoint]struct{}),
	}
}

// acceptable reports whether info describes an output that may back a
// masternode candidate: unspent, sufficiently confirmed, and stakes at
// least the network's minimum.
func (r *Registry) acceptable(info OutputInfo) bool {
	if info.Spent {
		return false
	}
	if info.Confirmations < MinConfirmations {
		return false
	}
	if info.Value < r.cfg.Params.MasternodeMinStake {
		return false
	}
	var zero KeyID
	return info.KeyID != zero
}

// Get returns the candidate for op, admitting it from the coin view if it
// is not already known and currently passes the acceptability predicate.
// A nil return with ok=false means the outpoint is unknown or currently
// unacceptable; this is never treated as an error (§7, transient
// input-missing).
func (r *Registry) Get(op wire.OutPoint) (*Candidate, bool) {
	r.mtx.RLock()
	c, ok := r.candidates[op]
	r.mtx.RUnlock()
	if ok {
		return c, true
	}

	info, found := r.cfg.CoinView.GetOutput(op)
	if !found || !r.acceptable(info) {
		return nil, false
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	// Another caller may have admitted it while we didn't hold the lock.
	if c, ok := r.candidates[op]; ok {
		return c, true
	}
	c = &Candidate{
		Outpoint: op,
		KeyID:    info.KeyID,
		Amount:   info.Value,
	}
	r.candidates[op] = c
	return c, true
}

// Prune re-filters every registry entry through the acceptability
// predicate and drops the ones that no longer pass. Called opportunistically
// by Manager's block-receipt hook and before vote casting.
func (r *Registry) Prune() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for op, c := range r.candidates {
		info, found := r.cfg.CoinView.GetOutput(op)
		if !found || !r.acceptable(info) {
			delete(r.candidates, op)
			delete(r.localSet, op)
			log.Debugf("masternode: pruned candidate %s (no longer acceptable)", op)
			continue
		}
		c.Amount = info.Value
	}
}

// SetLocal marks op as operated by this node and attaches the signing key
// used by the Local Announcer. It fails if op is unknown and cannot be
// admitted from the coin view.
func (r *Registry) SetLocal(op wire.OutPoint, key *btcec.PrivateKey) error {
	c, ok := r.Get(op)
	if !ok {
		return fmt.Errorf("cannot start unknown or unacceptable outpoint %s", op)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	c.IsLocal = true
	c.privateKey = key
	r.localSet[op] = struct{}{}
	return nil
}

// ClearLocal removes op from local operation, if present.
func (r *Registry) ClearLocal(op wire.OutPoint) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if c, ok := r.candidates[op]; ok {
		c.IsLocal = false
		c.privateKey = nil
	}
	delete(r.localSet, op)
}

// LocalOutpoints returns a snapshot of the currently locally operated
// outpoints.
func (r *Registry) LocalOutpoints() []wire.OutPoint {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	out := make([]wire.OutPoint, 0, len(r.localSet))
	for op := range r.localSet {
		out = append(out, op)
	}
	return out
}

// Len returns the number of candidates currently in the registry.
func (r *Registry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.candidates)
}

// Snapshot returns every known candidate. Used by Voting and Election
// tallying, which need a consistent view while they sort and compare.
func (r *Registry) Snapshot() []*Candidate {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	out := make([]*Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, c)
	}
	return out
}
