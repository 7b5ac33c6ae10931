// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import "fmt"

// RuleError represents a local invariant violation: the kind of thing that
// indicates chain-index corruption or a bug rather than a transient
// condition or peer misbehaviour. Per the coordination core's error model,
// these are never returned to be handled gracefully — the caller is
// expected to let assertf's panic propagate and halt the node.
type RuleError struct {
	Description string
}

func (e RuleError) Error() string {
	return e.Description
}

// assertf panics with a RuleError if cond is false. It is used exclusively
// for the disconnect-undo invariant (§4.H): if the inverse of a recorded
// election does not hold, the chain index has diverged from what this
// node itself applied, and continuing would corrupt the elected set.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(RuleError{Description: fmt.Sprintf(format, args...)})
	}
}
