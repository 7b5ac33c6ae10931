// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/shellreserve/node/chaincfg/chainhash"
)

// announceLocked implements §4.F: for every locally operated candidate,
// check whether the just-stamped block at (height, hash) falls in that
// candidate's current schedule, and if so sign and self-admit an
// existence message for it. Callers must hold m.mtx.
func (m *Manager) announceLocked(height int32, hash chainhash.Hash) {
	for _, op := range m.registry.LocalOutpoints() {
		c, ok := m.registry.Get(op)
		if !ok || !c.IsLocal || c.privateKey == nil {
			continue
		}

		challenges := schedule(int64(height), op, m.blockLookup())
		due := false
		for _, h := range challenges {
			if h == int64(height) {
				due = true
				break
			}
		}
		if !due {
			continue
		}

		msg := &ExistenceMsg{
			Outpoint:    op,
			BlockHeight: height,
			BlockHash:   hash,
		}
		signingHash := msg.SigningHash()
		sig, err := m.cfg.Signer.SignCompact(c.privateKey, signingHash)
		if err != nil {
			log.Errorf("masternode: failed to sign existence message for %s: %v", op, err)
			continue
		}
		msg.Signature = sig

		verdict := m.admitLocked(nil, msg)
		if verdict.Relay {
			m.relay(nil, msg.toWire())
		}
		log.Debugf("masternode: announced existence for local candidate %s at height %d", op, height)
	}
}
