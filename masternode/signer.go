// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/shellreserve/node/chaincfg/chainhash"
)

// DefaultSigner implements Signer using the chain's standard recoverable
// compact-signature scheme. Hosts may supply their own Signer (e.g. one
// backed by an HSM or a hardware wallet); DefaultSigner is what cmd/masternoded
// wires up for a plain on-disk key.
type DefaultSigner struct{}

// SignCompact signs digest with priv, producing a recoverable compact
// signature whose recovery ID lets admitLocked recover the public key
// without the wire message carrying it.
func (DefaultSigner) SignCompact(priv *btcec.PrivateKey, digest chainhash.Hash) ([]byte, error) {
	return ecdsa.SignCompact(priv, digest[:], true), nil
}
