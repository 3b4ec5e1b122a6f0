// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/referral/tree"
)

// Commit - move the staged balances of a payer and all its ancestors
// into their durable balances
//
// only that chain is touched; committing an empty cache changes nothing
func (l *Ledger) Commit(payerID uint64) error {
	chain, err := tree.Ancestors(l.handle, payerID)
	if nil != err {
		return err
	}

	committed := 0
	for _, p := range chain {
		if p.IsStaged() {
			committed += 1
		}
		p.Incash += p.IncashCache
		p.Outcash += p.OutcashCache
		p.IncashCache = 0
		p.OutcashCache = 0

		err := l.handle.Save(p)
		if nil != err {
			return err
		}
	}

	l.log.Debugf("commit: payer: %d  chain: %d  committed: %d", payerID, len(chain), committed)
	return nil
}
