// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/lru"
	"github.com/shellreserve/node/chaincfg"
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/wire"
)

// testParams returns a small, fast-to-iterate parameter set so tests don't
// need thousands of blocks to exercise election/voting thresholds.
func testParams() *chaincfg.Params {
	return &chaincfg.Params{
		MasternodeHardForkHeight: 0,
		MasternodeMinStake:       1000,
		MasternodeElectionPeriod: 10,
		MasternodeMaxVotes:       20,
		MasternodeMaxCount:       100,
	}
}

// fakeCoinView is an in-memory masternode.CoinViewer for tests.
type fakeCoinView struct {
	mtx     sync.Mutex
	outputs map[wire.OutPoint]OutputInfo
}

func newFakeCoinView() *fakeCoinView {
	return &fakeCoinView{outputs: make(map[wire.OutPoint]OutputInfo)}
}

func (v *fakeCoinView) set(op wire.OutPoint, info OutputInfo) {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	v.outputs[op] = info
}

func (v *fakeCoinView) GetOutput(op wire.OutPoint) (OutputInfo, bool) {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	info, ok := v.outputs[op]
	return info, ok
}

// fakeChain is an in-memory masternode.BlockIndexer for tests, storing a
// simple linear sequence of block hashes, receive times, and votes.
type fakeChain struct {
	mtx       sync.Mutex
	hashes    []chainhash.Hash
	addVotes  [][]wire.OutPoint
	remVotes  [][]wire.OutPoint
	isCurrent bool
}

func newFakeChain(height int) *fakeChain {
	c := &fakeChain{isCurrent: true}
	for i := 0; i <= height; i++ {
		c.hashes = append(c.hashes, testHash(byte(i)))
		c.addVotes = append(c.addVotes, nil)
		c.remVotes = append(c.remVotes, nil)
	}
	return c
}

func (c *fakeChain) TipHeight() int32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return int32(len(c.hashes)) - 1
}

func (c *fakeChain) HashAtHeight(h int32) (chainhash.Hash, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if h < 0 || int(h) >= len(c.hashes) {
		return chainhash.Hash{}, false
	}
	return c.hashes[h], true
}

func (c *fakeChain) IsCurrent() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.isCurrent
}

func (c *fakeChain) VotesAtHeight(h int32) ([]wire.OutPoint, []wire.OutPoint, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if h < 0 || int(h) >= len(c.hashes) {
		return nil, nil, false
	}
	return c.addVotes[h], c.remVotes[h], true
}

func (c *fakeChain) appendBlock(addVotes, removeVotes []wire.OutPoint) int32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.hashes = append(c.hashes, testHash(byte(len(c.hashes))))
	c.addVotes = append(c.addVotes, addVotes)
	c.remVotes = append(c.remVotes, removeVotes)
	return int32(len(c.hashes)) - 1
}

func (c *fakeChain) setVotesAtHeight(h int32, adds, removes []wire.OutPoint) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.addVotes[h] = adds
	c.remVotes[h] = removes
}

// fakeClock is a manually-advanced monotone clock for deterministic tests.
type fakeClock struct {
	mtx  sync.Mutex
	nowMs int64
}

func (c *fakeClock) now() int64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.nowMs
}

func (c *fakeClock) advance(ms int64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.nowMs += ms
}

// fakePeer is an in-memory masternode.Peer for gossip tests.
type fakePeer struct {
	addr    string
	known   *lru.Cache
	pushed  []*wire.MsgMNExistence
	misbehaviourScore int32
}

func newFakePeer(addr string) *fakePeer {
	return &fakePeer{addr: addr, known: lru.NewCache(100)}
}

func (p *fakePeer) Addr() string            { return p.addr }
func (p *fakePeer) KnownHashes() *lru.Cache { return p.known }
func (p *fakePeer) PushExistenceMsg(msg *wire.MsgMNExistence) {
	p.pushed = append(p.pushed, msg)
}
func (p *fakePeer) ReportMisbehaviour(score int32) { p.misbehaviourScore += score }

// fakePeerNotifier is an in-memory masternode.PeerNotifier for tests.
type fakePeerNotifier struct {
	peers []*fakePeer
}

func (n *fakePeerNotifier) ForEachPeer(fn func(Peer)) {
	for _, p := range n.peers {
		fn(p)
	}
}

// testConfig builds a Config wired to fresh fakes, along with direct
// handles to the coin view and chain for test setup.
func testConfig() (*Config, *fakeCoinView, *fakeChain) {
	view := newFakeCoinView()
	chain := newFakeChain(0)
	// Start the clock at a non-zero reading: a zero RecvTimeMs means the
	// block has not been stamped yet.
	clock := &fakeClock{nowMs: 1}
	cfg := &Config{
		Params:         testParams(),
		CoinView:       view,
		Chain:          chain,
		Signer:         DefaultSigner{},
		Peers:          &fakePeerNotifier{},
		MonotonicNowMs: clock.now,
	}
	return cfg, view, chain
}

func testOutpoint(b byte) wire.OutPoint {
	return wire.OutPoint{Hash: testHash(b), Index: uint32(b)}
}

func testHash(b byte) chainhash.Hash {
	var h chainhash.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func testKeyID(b byte) KeyID {
	var k KeyID
	for i := range k {
		k[i] = b
	}
	return k
}

func testPrivateKey(t *testing.T) *btcec.PrivateKey {
	t.Helper()
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	return priv
}
