// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import "github.com/btcsuite/btcd/btcutil"

// scorer computes and caches §4.D scores. A Candidate's cached score is
// interior-mutable state refreshed on read, matching the "refresh before
// read" guidance for modelling the source's logically-const score method.
type scorer struct {
	initialHeight int64
}

// score returns c's current penalty score, refreshing the cache first if
// it has gone stale (the tip has advanced more than scoreCacheStaleBlocks
// since the last refresh). Lower is better; misbehaving candidates always
// return MaxScoreSentinel.
func (s *scorer) score(c *Candidate, tip int64, lookup blockLookup) float64 {
	if c.misbehaving {
		return MaxScoreSentinel
	}
	if tip-c.scoreValidThroughHeight > scoreCacheStaleBlocks || c.scoreValidThroughHeight == 0 {
		s.refresh(c, tip, lookup)
	}
	return c.cachedScore
}

func (s *scorer) refresh(c *Candidate, tip int64, lookup blockLookup) {
	challenges := schedule(tip, c.Outpoint, lookup)

	var sum float64
	var count int
	for _, height := range challenges {
		if height <= s.initialHeight {
			continue
		}
		count++
		sum += s.delta(c, height, lookup)
	}

	if count == 0 {
		c.cachedScore = 0
	} else {
		c.cachedScore = sum / float64(count)
	}
	c.scoreValidThroughHeight = tip
}

// delta computes the per-challenge penalty for the block at height,
// implementing §4.D's default/on-time/late cases.
func (s *scorer) delta(c *Candidate, height int64, lookup blockLookup) float64 {
	blockHash, blockRecvTime, ok := lookup(height)
	if !ok {
		return PenaltyTime
	}

	for _, e := range c.existenceMsgs {
		if int64(e.msg.BlockHeight) != height {
			continue
		}
		if e.msg.BlockHash != blockHash {
			continue
		}
		if blockRecvTime == 0 || e.recvTime < blockRecvTime {
			return 0
		}
		return float64(e.recvTime-blockRecvTime) / 1000.0
	}
	return PenaltyTime
}

// stakeAdjusted returns the comparator value used to order candidates for
// voting: raw score minus a small stake-weighted bonus, so that among
// otherwise-equal scores the larger stake sorts first (more negative/lower
// value sorts first in ascending order).
func stakeAdjusted(c *Candidate) float64 {
	return c.cachedScore - 0.001*float64(c.Amount)/float64(btcutil.SatoshiPerBitcoin)
}

// lessByStakeAdjustedScore provides the total order voting and election
// rely on: stake-adjusted score ascending, ties broken by outpoint.
func lessByStakeAdjustedScore(a, b *Candidate) bool {
	sa, sb := stakeAdjusted(a), stakeAdjusted(b)
	if sa != sb {
		return sa < sb
	}
	return a.Outpoint.Less(b.Outpoint)
}
