// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

// Fixed, fork-sensitive constants shared by every node on the network.
// The four parameters that are explicitly host/network-parameterised
// (ElectionPeriod, MaxVotes, MaxMasternodes, MinStake) instead live on
// chaincfg.Params, the same way other consensus knobs (CoinbaseMaturity,
// SubsidyReductionInterval, ...) do in this codebase; see Config.Params.
const (
	// MinConfirmations is the minimum number of confirmations a staking
	// output must have before its candidate is admitted to the registry.
	MinConfirmations = 10

	// StartPayments is the minimum elected-set size required before the
	// very first payee is selected.
	StartPayments = 150

	// StopPayments is the minimum elected-set size required to continue
	// selecting payees once rotation has begun.
	StopPayments = 100

	// Restart is the number of blocks between challenge-schedule reseeds.
	Restart = 20

	// Period is the spacing, in blocks, between challenges within a
	// schedule window. Restart must be a multiple of Period.
	Period = 5

	// Monitoring is half the liveness-log retention window, in blocks.
	Monitoring = 100

	// MonitoringMin is the minimum chain progress, in blocks past
	// initialHeight, required before voting produces non-empty output.
	MonitoringMin = 30

	// PenaltyTime is the score, in seconds, charged for an unanswered
	// challenge block.
	PenaltyTime = 500.0

	// MaxScore is the score ceiling beyond which a candidate is excluded
	// from the known set considered for voting.
	MaxScore = 100.0

	// misbehavingScoreMultiplier turns MaxScore into the sentinel score
	// assigned to a candidate whose misbehaving flag is set.
	misbehavingScoreMultiplier = 99

	// PenaltyAncient is the peer misbehaviour score reported for an
	// existence message far too old to have been legitimately relayed.
	PenaltyAncient = 20

	// PenaltySpam is the peer misbehaviour score reported when a
	// candidate's liveness log overflows.
	PenaltySpam = 20

	// PenaltyForgery is the peer misbehaviour score reported when a
	// message's recovered signing key does not match the candidate's
	// recorded key id.
	PenaltyForgery = 100

	// PenaltyUnknownCandidate is the peer misbehaviour score reported when
	// an existence message names an outpoint the registry does not know.
	PenaltyUnknownCandidate = 20

	// spamLogCapacity is the maximum number of admitted entries a single
	// candidate's liveness log may hold before it is flagged spam.
	spamLogCapacity = (Monitoring / Period) * 10

	// scoreCacheStaleBlocks is the number of blocks the tip may advance
	// past a candidate's cached score before the cache is refreshed.
	scoreCacheStaleBlocks = 5

	// pruneInterval is how often, in blocks, the registry is opportunistically pruned.
	pruneInterval = 10
)

// MaxScoreSentinel is the score assigned to a misbehaving candidate: far
// above MaxScore so it is always excluded from voting.
const MaxScoreSentinel = misbehavingScoreMultiplier * MaxScore
