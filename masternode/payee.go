// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import "github.com/shellreserve/node/wire"

// selectPayee implements §4.I given the parent block's selected payee (or
// its absence) and the current elected set.
func selectPayee(elected *electedSet, parentPayee wire.OutPoint, parentHasPayee bool) (wire.OutPoint, bool) {
	ordered := elected.Ordered()

	if !parentHasPayee {
		if len(ordered) < StartPayments {
			return wire.OutPoint{}, false
		}
		return ordered[0], true
	}

	if len(ordered) < StopPayments {
		return wire.OutPoint{}, false
	}
	for _, op := range ordered {
		if parentPayee.Less(op) {
			return op, true
		}
	}
	// Nothing sorts strictly after the parent's payee: wrap around.
	return ordered[0], true
}
