// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

// livenessLog implements §4.C for a single candidate. Callers must already
// hold whatever lock protects c (Manager's single external mutex; see
// design notes on the concurrency model).
type livenessLog struct {
	cfg *Config
}

func newLivenessLog(cfg *Config) *livenessLog {
	return &livenessLog{cfg: cfg}
}

// add admits msg into c's liveness log, returning the verdict that
// determines relay and peer-misbehaviour handling.
func (l *livenessLog) add(c *Candidate, msg *ExistenceMsg, tip int64) Verdict {
	identity := msg.IdentityHash()
	for _, existing := range c.existenceMsgs {
		if existing.msg.IdentityHash() == identity {
			return verdictDropped
		}
	}

	l.cleanup(c, tip)

	if len(c.existenceMsgs) >= spamLogCapacity {
		c.misbehaving = true
		return verdictMisbehaviour(PenaltySpam, "liveness log spam")
	}

	c.existenceMsgs = append(c.existenceMsgs, receivedExistenceMsg{
		msg:      *msg,
		recvTime: l.cfg.MonotonicNowMs(),
	})
	return verdictAdmitted
}

// cleanup drops entries whose block height is too old to still be
// relevant to scoring, resizing the backing slice (the corrected
// semantics flagged as an open question in the source design notes — the
// buggy variant left expired entries in place because it used the removal
// idiom without resizing).
func (l *livenessLog) cleanup(c *Candidate, tip int64) {
	threshold := tip - 2*Monitoring
	kept := c.existenceMsgs[:0]
	for _, e := range c.existenceMsgs {
		if int64(e.msg.BlockHeight) >= threshold {
			kept = append(kept, e)
		}
	}
	c.existenceMsgs = kept
}
