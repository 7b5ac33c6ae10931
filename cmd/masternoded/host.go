// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"

	"github.com/decred/dcrd/lru"
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/masternode"
	"github.com/shellreserve/node/wire"
)

// demoHost is a minimal in-memory implementation of the interfaces
// masternode.Config requires, standing in for the real chain/mempool/peer
// manager a production node would supply. It exists purely so masternoded
// can drive the coordination core end to end without a full node attached.
type demoHost struct {
	mtx sync.RWMutex

	outputs map[wire.OutPoint]masternode.OutputInfo
	blocks  []blockRecord

	peers map[string]*demoPeer
}

type blockRecord struct {
	hash    chainhash.Hash
	adds    []wire.OutPoint
	removes []wire.OutPoint
}

func newDemoHost() *demoHost {
	return &demoHost{
		outputs: make(map[wire.OutPoint]masternode.OutputInfo),
		peers:   make(map[string]*demoPeer),
	}
}

// GetOutput implements masternode.CoinViewer.
func (h *demoHost) GetOutput(op wire.OutPoint) (masternode.OutputInfo, bool) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	info, ok := h.outputs[op]
	return info, ok
}

// TipHeight implements masternode.BlockIndexer.
func (h *demoHost) TipHeight() int32 {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return int32(len(h.blocks)) - 1
}

// HashAtHeight implements masternode.BlockIndexer.
func (h *demoHost) HashAtHeight(height int32) (chainhash.Hash, bool) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	if height < 0 || int(height) >= len(h.blocks) {
		return chainhash.Hash{}, false
	}
	return h.blocks[height].hash, true
}

// IsCurrent implements masternode.BlockIndexer. The demo host considers
// itself always caught up since it has no real peer sync.
func (h *demoHost) IsCurrent() bool { return true }

// VotesAtHeight implements masternode.BlockIndexer.
func (h *demoHost) VotesAtHeight(height int32) ([]wire.OutPoint, []wire.OutPoint, bool) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	if height < 0 || int(height) >= len(h.blocks) {
		return nil, nil, false
	}
	b := h.blocks[height]
	return b.adds, b.removes, true
}

// appendBlock records a new chain tip for the demo, returning its height.
func (h *demoHost) appendBlock(hash chainhash.Hash, adds, removes []wire.OutPoint) int32 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.blocks = append(h.blocks, blockRecord{hash: hash, adds: adds, removes: removes})
	return int32(len(h.blocks)) - 1
}

// ForEachPeer implements masternode.PeerNotifier.
func (h *demoHost) ForEachPeer(fn func(masternode.Peer)) {
	h.mtx.RLock()
	peers := make([]*demoPeer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mtx.RUnlock()
	for _, p := range peers {
		fn(p)
	}
}

// demoPeer is a loopback stand-in for a connected network peer: nothing
// actually traverses a socket, but it exercises the full Peer contract
// (dedup cache, pushed messages, misbehaviour accounting) the same way a
// real peer connection would.
type demoPeer struct {
	addr    string
	known   *lru.Cache
	pushed  []*wire.MsgMNExistence
	score   int32

	mtx sync.Mutex
}

func newDemoPeer(addr string) *demoPeer {
	return &demoPeer{addr: addr, known: lru.NewCache(5000)}
}

func (p *demoPeer) Addr() string            { return p.addr }
func (p *demoPeer) KnownHashes() *lru.Cache { return p.known }

func (p *demoPeer) PushExistenceMsg(msg *wire.MsgMNExistence) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.pushed = append(p.pushed, msg)
}

func (p *demoPeer) ReportMisbehaviour(score int32) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.score += score
	if p.score >= masternode.MaxScoreSentinel {
		log.Warnf("masternoded: peer %s exceeded misbehaviour threshold (%d)", p.addr, p.score)
	}
}
