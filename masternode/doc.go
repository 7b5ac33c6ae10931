// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package masternode implements Shell Reserve's masternode coordination
// core: a registry of staking candidates, a deterministic per-candidate
// liveness-challenge schedule derived from chain data, anti-spam gossip of
// signed existence attestations, stake-weighted scoring, add/remove voting,
// block-carried election of a payee-eligible subset, and deterministic
// payee rotation within that elected set.
//
// The package owns no network socket, no wallet, and no on-disk state of
// its own; a Manager is constructed once by the hosting node around a
// Config of narrow callback interfaces (coin view lookup, block index
// lookup, peer broadcast) and is rebuilt from chain data by replaying
// blocks through LoadElections at startup.
package masternode
