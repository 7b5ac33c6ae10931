// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/shellreserve/node/chaincfg/chainhash"
)

func chainLookup(chain *fakeChain) blockLookup {
	return func(height int64) (h chainhash.Hash, recvTimeMs int64, ok bool) {
		if height < 0 {
			return chainhash.Hash{}, 0, false
		}
		hash, ok := chain.HashAtHeight(int32(height))
		return hash, 0, ok
	}
}

func TestScheduleEmptyBeforeFourRestarts(t *testing.T) {
	chain := newFakeChain(4 * Restart)
	op := testOutpoint(1)
	got := schedule(4*Restart-1, op, chainLookup(chain))
	require.Nil(t, got)
}

func TestScheduleDeterministic(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	op := testOutpoint(7)

	a := schedule(8*Restart, op, chainLookup(chain))
	b := schedule(8*Restart, op, chainLookup(chain))
	require.Equal(t, a, b)
}

func TestScheduleChallengesWithinWindow(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	op := testOutpoint(3)

	h := int64(8 * Restart)
	challenges := schedule(h, op, chainLookup(chain))
	for _, height := range challenges {
		require.LessOrEqual(t, height, h)
		require.Greater(t, height, h-2*Restart)
	}
}

func TestScheduleVariesByOutpoint(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	h := int64(8 * Restart)

	a := schedule(h, testOutpoint(1), chainLookup(chain))
	b := schedule(h, testOutpoint(2), chainLookup(chain))
	// Not a hard guarantee for every seed, but with distinct outpoints
	// hashing into the Period window, equality across many heights would
	// indicate the outpoint isn't actually part of the seed.
	require.NotEqual(t, a, b)
}

func TestScheduleMissingSeedBlockSkipsWindow(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	op := testOutpoint(1)
	h := int64(8 * Restart)

	full := schedule(h, op, chainLookup(chain))

	lookup := func(height int64) (chainhash.Hash, int64, bool) {
		if height == h-Restart-Period {
			return chainhash.Hash{}, 0, false
		}
		return chainLookup(chain)(height)
	}
	partial := schedule(h, op, lookup)
	require.LessOrEqual(t, len(partial), len(full))
}
