// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"encoding/binary"

	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/wire"
)

// blockLookup resolves a block height to its hash and the local monotone
// receive-time stamp recorded for it (0 if not yet stamped). Both Schedule
// and Scoring share this shape; Schedule only consults the hash. It takes
// an int64 so callers can pass negative heights (below genesis) without
// needing to guard every call site themselves.
type blockLookup func(height int64) (hash chainhash.Hash, recvTimeMs int64, ok bool)

// schedule returns the set of challenge-block heights a candidate at
// outpoint op was expected to announce existence for, given a chain tip at
// height h. It is a pure function of (h, op, lookup) — see §4.B and
// testable property 1 (schedule determinism).
//
// The algorithm walks two Restart-block windows, the one ending at and the
// one starting at the anchor (h rounded down to a multiple of Restart),
// keeping only heights in (h-Restart, h]. Each window's shift is derived from hashing the
// block Period blocks before the window together with the candidate's
// outpoint, so the schedule is unpredictable ahead of time yet fully
// reproducible from chain data alone.
func schedule(h int64, op wire.OutPoint, lookup blockLookup) []int64 {
	if h < 4*Restart {
		return nil
	}

	anchor := (h / Restart) * Restart

	var out []int64
	for _, i := range [2]int64{1, 0} {
		seedBlock := anchor - i*Restart
		seedHeight := seedBlock - Period
		blockHash, _, ok := lookup(seedHeight)
		if !ok {
			continue
		}

		seed := scheduleSeed(blockHash, op)
		shift := int64(seed % Period)

		for k := int64(0); ; k++ {
			j := seedBlock + shift + k*Period
			if j >= seedBlock+Restart {
				break
			}
			if j <= h && j > h-Restart {
				out = append(out, j)
			}
		}
	}
	return out
}

// scheduleSeed computes H(block_hash || outpoint) and returns it as a
// uint64 for modular arithmetic.
func scheduleSeed(blockHash chainhash.Hash, op wire.OutPoint) uint64 {
	buf := make([]byte, 0, chainhash.HashSize+chainhash.HashSize+4)
	buf = append(buf, blockHash[:]...)
	buf = append(buf, op.Hash[:]...)
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], op.Index)
	buf = append(buf, idx[:]...)

	digest := chainhash.HashH(buf)
	return binary.LittleEndian.Uint64(digest[:8])
}
