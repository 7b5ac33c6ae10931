// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"

	"github.com/shellreserve/node/chaincfg/chainhash"
)

// OutPoint defines a Shell data type that is used to track previous
// transaction outputs. It is also the identity used by the masternode
// registry to key staking candidates.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new Shell transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits, the most a
	// uint32 index can need.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = fmt.Appendf(buf, "%d", o.Index)
	return string(buf)
}

// Less reports whether o sorts strictly before other under the total,
// deterministic ordering the masternode elected set, voting, and payee
// rotation all rely on: lexicographic on the hash bytes, then by index.
func (o OutPoint) Less(other OutPoint) bool {
	if cmp := bytes.Compare(o.Hash[:], other.Hash[:]); cmp != 0 {
		return cmp < 0
	}
	return o.Index < other.Index
}

// Compare returns -1, 0, or 1 as o is lexicographically less than, equal
// to, or greater than other.
func (o OutPoint) Compare(other OutPoint) int {
	if cmp := bytes.Compare(o.Hash[:], other.Hash[:]); cmp != 0 {
		return cmp
	}
	switch {
	case o.Index < other.Index:
		return -1
	case o.Index > other.Index:
		return 1
	default:
		return 0
	}
}
