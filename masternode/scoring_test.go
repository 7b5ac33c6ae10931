// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorerMisbehavingReturnsSentinel(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	c := &Candidate{Outpoint: testOutpoint(1), misbehaving: true}

	s := &scorer{}
	got := s.score(c, int64(chain.TipHeight()), chainLookup(chain))
	require.Equal(t, float64(MaxScoreSentinel), got)
}

func TestScorerPenalizesMissingChallenges(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	c := &Candidate{Outpoint: testOutpoint(1)}

	s := &scorer{}
	tip := int64(chain.TipHeight())
	got := s.score(c, tip, chainLookup(chain))

	// No existence messages recorded at all: every challenge, if any,
	// should be charged the full time penalty, yielding an average that
	// is either 0 (no challenges due yet) or exactly PenaltyTime.
	require.True(t, got == 0 || got == PenaltyTime)
}

func TestScorerOnTimeAnswerScoresZero(t *testing.T) {
	chain := newFakeChain(10 * Restart)
	op := testOutpoint(5)
	tip := int64(chain.TipHeight())

	challenges := schedule(tip, op, chainLookup(chain))
	require.NotEmpty(t, challenges, "test fixture must produce at least one challenge")

	// Answer every challenge; the score is the mean over all of them.
	c := &Candidate{Outpoint: op}
	for _, height := range challenges {
		blockHash, _, _ := chainLookup(chain)(height)
		c.existenceMsgs = append(c.existenceMsgs, receivedExistenceMsg{
			msg: ExistenceMsg{
				Outpoint:    op,
				BlockHeight: int32(height),
				BlockHash:   blockHash,
			},
			recvTime: 0,
		})
	}

	s := &scorer{}
	got := s.score(c, tip, chainLookup(chain))
	require.Equal(t, 0.0, got)
}

func TestStakeAdjustedPrefersLargerStake(t *testing.T) {
	a := &Candidate{Outpoint: testOutpoint(1), Amount: 1000}
	b := &Candidate{Outpoint: testOutpoint(2), Amount: 2000}
	a.cachedScore, b.cachedScore = 50, 50

	require.True(t, lessByStakeAdjustedScore(b, a))
}

func TestLessByStakeAdjustedScoreBreaksTiesByOutpoint(t *testing.T) {
	a := &Candidate{Outpoint: testOutpoint(1), Amount: 1000, cachedScore: 10}
	b := &Candidate{Outpoint: testOutpoint(2), Amount: 1000, cachedScore: 10}

	if a.Outpoint.Less(b.Outpoint) {
		require.True(t, lessByStakeAdjustedScore(a, b))
	} else {
		require.True(t, lessByStakeAdjustedScore(b, a))
	}
}
