// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash re-exports the standard 32-byte double-SHA256 hash type
// used throughout Shell Reserve so callers depend on a Shell-owned import
// path instead of btcsuite's directly, the same indirection the decred
// family uses for its own chaincfg/chainhash fork.
package chainhash

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashSize is the number of bytes in a hash.
const HashSize = chainhash.HashSize

// Hash is a 32-byte array used to represent the double sha256 hash of data.
type Hash = chainhash.Hash

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	return chainhash.HashB(b)
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return chainhash.HashH(b)
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a Hash.
func DoubleHashH(b []byte) Hash {
	return chainhash.DoubleHashH(b)
}

// NewHash returns a new Hash from a byte slice.
func NewHash(newHash []byte) (*Hash, error) {
	return chainhash.NewHash(newHash)
}

// NewHashFromStr creates a Hash from a hash string.
func NewHashFromStr(hash string) (*Hash, error) {
	return chainhash.NewHashFromStr(hash)
}
