// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/shellreserve/node/chaincfg/chainhash"
	"github.com/shellreserve/node/wire"
)

// KeyID is the hash of the public key controlling a masternode's staking
// output (a Hash160, matching the pay-to-pubkey-hash convention used
// elsewhere in Shell).
type KeyID [20]byte

// ExistenceMsg is a signed attestation that a candidate observed a given
// block. It is both the gossiped wire payload's logical content and the
// timing input the scoring component reads.
type ExistenceMsg struct {
	Outpoint    wire.OutPoint
	BlockHeight int32
	BlockHash   chainhash.Hash
	Signature   []byte
}

// SigningHash is the digest the Signature is computed over; it excludes
// the signature itself.
func (m *ExistenceMsg) SigningHash() chainhash.Hash {
	wm := wire.MsgMNExistence{
		Outpoint:    m.Outpoint,
		BlockHeight: uint32(m.BlockHeight),
		BlockHash:   m.BlockHash,
	}
	return wm.SigningHash()
}

// IdentityHash is the digest used for gossip dedup and relay memory; it
// includes the signature bytes.
func (m *ExistenceMsg) IdentityHash() chainhash.Hash {
	wm := wire.MsgMNExistence{
		Outpoint:    m.Outpoint,
		BlockHeight: uint32(m.BlockHeight),
		BlockHash:   m.BlockHash,
		Signature:   m.Signature,
	}
	return wm.IdentityHash()
}

// fromWire converts a wire.MsgMNExistence into the package's logical
// ExistenceMsg representation.
func fromWire(wm *wire.MsgMNExistence) *ExistenceMsg {
	return &ExistenceMsg{
		Outpoint:    wm.Outpoint,
		BlockHeight: int32(wm.BlockHeight),
		BlockHash:   wm.BlockHash,
		Signature:   wm.Signature,
	}
}

// toWire converts an ExistenceMsg back into its wire representation for
// relay.
func (m *ExistenceMsg) toWire() *wire.MsgMNExistence {
	return &wire.MsgMNExistence{
		Outpoint:    m.Outpoint,
		BlockHeight: uint32(m.BlockHeight),
		BlockHash:   m.BlockHash,
		Signature:   m.Signature,
	}
}

// receivedExistenceMsg pairs an ExistenceMsg with the local monotone clock
// reading at the moment it was admitted to a candidate's liveness log.
type receivedExistenceMsg struct {
	msg      ExistenceMsg
	recvTime int64 // milliseconds, monotone
}

// Candidate is a registry entry for one staking outpoint.
type Candidate struct {
	Outpoint wire.OutPoint
	KeyID    KeyID
	Amount   int64

	IsLocal    bool
	privateKey *btcec.PrivateKey

	existenceMsgs []receivedExistenceMsg
	misbehaving   bool

	cachedScore            float64
	scoreValidThroughHeight int64
}

// Verdict is the three-way outcome of admitting a gossiped or
// self-produced existence message: relay it, drop it silently, or drop it
// and report a positive peer-misbehaviour score.
type Verdict struct {
	Relay         bool
	Misbehaviour  int32 // 0 means no report
	Reason        string
}

var (
	verdictAdmitted = Verdict{Relay: true}
	verdictDropped  = Verdict{}
)

func verdictMisbehaviour(score int32, reason string) Verdict {
	return Verdict{Misbehaviour: score, Reason: reason}
}

// BlockAnnex carries the per-block fields the masternode core needs that
// do not belong on the host's block index (see design notes on avoiding a
// block<->core cycle). It is keyed by block hash in Manager.annex.
type BlockAnnex struct {
	Height   int32
	Hash     chainhash.Hash
	Parent   chainhash.Hash
	HasPrev  bool

	RecvTimeMs int64 // 0 until stamped

	AddVotes    []wire.OutPoint
	RemoveVotes []wire.OutPoint

	AppliedAdds    []wire.OutPoint
	AppliedRemoves []wire.OutPoint

	SelectedPayee   wire.OutPoint
	HasPayee        bool
}
