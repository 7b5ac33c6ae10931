// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/shellreserve/node/wire"
)

func TestRegistryGetAdmitsAcceptableOutput(t *testing.T) {
	cfg, view, _ := testConfig()
	r := newRegistry(cfg)

	op := testOutpoint(1)
	view.set(op, OutputInfo{Confirmations: MinConfirmations, Value: cfg.Params.MasternodeMinStake, KeyID: testKeyID(1)})

	c, ok := r.Get(op)
	require.True(t, ok)
	require.Equal(t, op, c.Outpoint)
	require.Equal(t, cfg.Params.MasternodeMinStake, c.Amount)

	// Second lookup must hit the cache, not re-admit.
	c2, ok := r.Get(op)
	require.True(t, ok)
	require.Same(t, c, c2)
}

func TestRegistryGetRejectsUnacceptableOutput(t *testing.T) {
	cfg, view, _ := testConfig()
	r := newRegistry(cfg)

	tooYoung := testOutpoint(1)
	view.set(tooYoung, OutputInfo{Confirmations: MinConfirmations - 1, Value: cfg.Params.MasternodeMinStake, KeyID: testKeyID(1)})
	_, ok := r.Get(tooYoung)
	require.False(t, ok)

	tooSmall := testOutpoint(2)
	view.set(tooSmall, OutputInfo{Confirmations: MinConfirmations, Value: cfg.Params.MasternodeMinStake - 1, KeyID: testKeyID(2)})
	_, ok = r.Get(tooSmall)
	require.False(t, ok)

	spent := testOutpoint(3)
	view.set(spent, OutputInfo{Confirmations: MinConfirmations, Value: cfg.Params.MasternodeMinStake, KeyID: testKeyID(3), Spent: true})
	_, ok = r.Get(spent)
	require.False(t, ok)

	unknown := testOutpoint(4)
	_, ok = r.Get(unknown)
	require.False(t, ok)
}

func TestRegistryPruneDropsSpentOutputs(t *testing.T) {
	cfg, view, _ := testConfig()
	r := newRegistry(cfg)

	op := testOutpoint(1)
	view.set(op, OutputInfo{Confirmations: MinConfirmations, Value: cfg.Params.MasternodeMinStake, KeyID: testKeyID(1)})
	_, ok := r.Get(op)
	require.True(t, ok)
	require.Equal(t, 1, r.Len())

	view.set(op, OutputInfo{Spent: true})
	r.Prune()
	require.Equal(t, 0, r.Len())

	_, ok = r.Get(op)
	require.False(t, ok)
}

func TestRegistrySetLocalRequiresAcceptableOutpoint(t *testing.T) {
	cfg, _, _ := testConfig()
	r := newRegistry(cfg)

	priv := testPrivateKey(t)
	err := r.SetLocal(testOutpoint(1), priv)
	require.Error(t, err)
}

func TestRegistrySetAndClearLocal(t *testing.T) {
	cfg, view, _ := testConfig()
	r := newRegistry(cfg)

	op := testOutpoint(1)
	view.set(op, OutputInfo{Confirmations: MinConfirmations, Value: cfg.Params.MasternodeMinStake, KeyID: testKeyID(1)})

	priv := testPrivateKey(t)
	require.NoError(t, r.SetLocal(op, priv))
	require.Equal(t, []wire.OutPoint{op}, r.LocalOutpoints())

	c, ok := r.Get(op)
	require.True(t, ok)
	require.True(t, c.IsLocal)

	r.ClearLocal(op)
	require.Empty(t, r.LocalOutpoints())

	c, ok = r.Get(op)
	require.True(t, ok)
	require.False(t, c.IsLocal)
}
