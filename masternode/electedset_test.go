// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElectedSetInsertMaintainsOrder(t *testing.T) {
	s := newElectedSet()
	require.True(t, s.Insert(testOutpoint(5)))
	require.True(t, s.Insert(testOutpoint(1)))
	require.True(t, s.Insert(testOutpoint(9)))
	require.False(t, s.Insert(testOutpoint(5)))

	ordered := s.Ordered()
	require.Len(t, ordered, 3)
	for i := 1; i < len(ordered); i++ {
		require.True(t, ordered[i-1].Less(ordered[i]))
	}
}

func TestElectedSetEraseAndContains(t *testing.T) {
	s := newElectedSet()
	op := testOutpoint(1)
	require.False(t, s.Erase(op))

	s.Insert(op)
	require.True(t, s.Contains(op))
	require.True(t, s.Erase(op))
	require.False(t, s.Contains(op))
}

func TestElectedSetClone(t *testing.T) {
	s := newElectedSet()
	s.Insert(testOutpoint(1))
	s.Insert(testOutpoint(2))

	clone := s.Clone()
	clone.Insert(testOutpoint(3))

	require.Equal(t, 2, s.Len())
	require.Equal(t, 3, clone.Len())
}
