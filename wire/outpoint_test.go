// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func hashOf(b byte) (h [32]byte) {
	for i := range h {
		h[i] = b
	}
	return h
}

func TestOutPointString(t *testing.T) {
	op := OutPoint{Hash: hashOf(0xab), Index: 7}
	s := op.String()
	require.Contains(t, s, ":7")
	require.Len(t, s, 64+1+1)
}

func TestOutPointLessOrdersByHashThenIndex(t *testing.T) {
	low := OutPoint{Hash: hashOf(1), Index: 5}
	high := OutPoint{Hash: hashOf(2), Index: 0}
	require.True(t, low.Less(high))
	require.False(t, high.Less(low))

	sameHashLow := OutPoint{Hash: hashOf(1), Index: 0}
	sameHashHigh := OutPoint{Hash: hashOf(1), Index: 1}
	require.True(t, sameHashLow.Less(sameHashHigh))
}

func TestOutPointLessIsIrreflexive(t *testing.T) {
	op := OutPoint{Hash: hashOf(3), Index: 1}
	require.False(t, op.Less(op))
}

func TestOutPointCompare(t *testing.T) {
	a := OutPoint{Hash: hashOf(1), Index: 0}
	b := OutPoint{Hash: hashOf(1), Index: 1}
	c := OutPoint{Hash: hashOf(2), Index: 0}

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -1, b.Compare(c))
}
