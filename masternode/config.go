// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/lru"
	"github.com/shellreserve/node/chaincfg"
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/wire"
)

// OutputInfo is the subset of UTXO-view information the registry needs to
// decide whether a staking outpoint is acceptable.
type OutputInfo struct {
	Confirmations int32
	Value         int64
	KeyID         KeyID
	Spent         bool
}

// CoinViewer is the host-supplied read-through view over the UTXO set.
// The masternode core never mutates or caches coin data beyond what
// Registry.Candidate stores; every lookup goes back to the host.
type CoinViewer interface {
	// GetOutput returns the current state of the output referenced by op,
	// or ok=false if it is unknown to the view (e.g. never existed).
	GetOutput(op wire.OutPoint) (info OutputInfo, ok bool)
}

// BlockIndexer is the host-supplied read-only view over the chain's block
// index, used by the Schedule and Gossip components.
type BlockIndexer interface {
	TipHeight() int32
	HashAtHeight(h int32) (chainhash.Hash, bool)
	IsCurrent() bool

	// VotesAtHeight returns the add/remove vote outpoints embedded in the
	// block at height h, used by LoadElections to replay history from
	// chain data alone. The host owns where these are actually stored
	// (coinbase payload, a sidecar index, ...).
	VotesAtHeight(h int32) (adds, removes []wire.OutPoint, ok bool)
}

// Signer signs a 256-bit digest with a locally held private key, using
// the host chain's recoverable compact signature scheme.
type Signer interface {
	SignCompact(priv *btcec.PrivateKey, digest chainhash.Hash) ([]byte, error)
}

// Peer is the narrow view of a connected network peer the gossip relay
// step needs: a per-peer dedup cache and the ability to receive a pushed
// message or a misbehaviour report.
type Peer interface {
	Addr() string
	KnownHashes() *lru.Cache
	PushExistenceMsg(msg *wire.MsgMNExistence)
	ReportMisbehaviour(score int32)
}

// PeerNotifier enumerates connected peers under the host's own peer-list
// mutex; see §5 of the coordination core design for why this is the only
// externally shared lock the core touches.
type PeerNotifier interface {
	ForEachPeer(func(Peer))
}

// Config bundles every host-supplied dependency a Manager needs.
type Config struct {
	Params *chaincfg.Params

	CoinView CoinViewer
	Chain    BlockIndexer
	Signer   Signer
	Peers    PeerNotifier

	// MonotonicNowMs returns the local monotone clock in milliseconds. It
	// is a func rather than a direct time.Now call so that tests can
	// supply a deterministic clock.
	MonotonicNowMs func() int64
}
