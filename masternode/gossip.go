// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/shellreserve/node/wire"
)

// ProcessExistence implements §4.E: validate, admit, and relay a gossiped
// existence message. It is silently ignored while the node is still
// syncing, matching the source's is_initial_block_download guard.
func (m *Manager) ProcessExistence(peer Peer, wm *wire.MsgMNExistence) {
	m.mtx.Lock()
	verdict := m.admitLocked(peer, fromWire(wm))
	if verdict.Relay {
		m.relay(peer, wm)
	}
	m.mtx.Unlock()

	if verdict.Misbehaviour > 0 && peer != nil {
		peer.ReportMisbehaviour(verdict.Misbehaviour)
	}
}

// admitLocked runs the §4.E validation pipeline against an already-decoded
// message. Callers must hold m.mtx. peer is nil for self-produced
// (Local Announcer) messages, which skips the "unknown peer" framing but
// otherwise runs the identical pipeline, including signature recovery.
func (m *Manager) admitLocked(peer Peer, msg *ExistenceMsg) Verdict {
	if !m.cfg.Chain.IsCurrent() {
		return verdictDropped
	}

	tip := int64(m.cfg.Chain.TipHeight())
	height := int64(msg.BlockHeight)

	if height < tip-Monitoring {
		return verdictMisbehaviour(PenaltyAncient, "ancient existence message")
	}
	if height < tip-Monitoring/2 {
		return verdictDropped
	}

	c, found := m.registry.Get(msg.Outpoint)
	if !found {
		return verdictMisbehaviour(PenaltyUnknownCandidate, "unknown candidate")
	}

	signingHash := msg.SigningHash()
	pub, _, err := ecdsa.RecoverCompact(msg.Signature, signingHash[:])
	if err != nil {
		return verdictMisbehaviour(PenaltyForgery, "signature does not recover")
	}
	var recoveredID KeyID
	copy(recoveredID[:], btcutil.Hash160(pub.SerializeCompressed()))
	if recoveredID != c.KeyID {
		return verdictMisbehaviour(PenaltyForgery, "recovered key does not match candidate")
	}

	return m.liveness.add(c, msg, tip)
}

// relay pushes wm to every connected peer other than sender, deduplicating
// per peer pair via each peer's own known-hashes cache. Callers must hold
// m.mtx; relay only additionally touches the host-supplied peer list,
// which the host guards with its own, separate peer-list mutex (§5).
func (m *Manager) relay(sender Peer, wm *wire.MsgMNExistence) {
	if m.cfg.Peers == nil || wm == nil {
		return
	}
	identity := fromWire(wm).IdentityHash()

	if sender != nil {
		sender.KnownHashes().Add(identity)
	}

	m.cfg.Peers.ForEachPeer(func(p Peer) {
		if sender != nil && p.Addr() == sender.Addr() {
			return
		}
		known := p.KnownHashes()
		if known.Contains(identity) {
			return
		}
		known.Add(identity)
		p.PushExistenceMsg(wm)
	})
}

// TickOnBestChanged implements the §4.E block-receipt hook, run on each
// invocation of the host's block-processing tick.
func (m *Manager) TickOnBestChanged() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if !m.cfg.Chain.IsCurrent() {
		return
	}

	tip := int64(m.cfg.Chain.TipHeight())
	if !m.haveInitialHeight {
		m.initialHeight = tip
		m.haveInitialHeight = true
		m.scorer.initialHeight = tip
	}

	if tip%pruneInterval == 0 {
		m.registry.Prune()
	}

	lookup := m.blockLookup()
	for h := tip; h > m.initialHeight; h-- {
		hash, _, ok := lookup(h)
		if !ok {
			break
		}
		annex := m.annexFor(int32(h), hash)
		if annex.RecvTimeMs != 0 {
			break
		}
		annex.RecvTimeMs = m.cfg.MonotonicNowMs()
		m.announceLocked(int32(h), hash)
	}
}
