// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commission

import (
	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/person"
	"github.com/bitmark-inc/referral/storage"
)

// Entry - the pending change for one person
type Entry struct {
	ID      uint64
	Incash  float64
	Outcash float64
}

// Delta - pending changes aligned with an ancestor chain,
// element zero is the payer
type Delta []Entry

// Distribute - compute the pending changes of one payment
//
// chain must run from the payer (element zero) to its root
func Distribute(chain []*person.Person, amount float64, split Split, threshold uint64) Delta {
	d := make(Delta, len(chain))
	for i, p := range chain {
		d[i].ID = p.ID
	}
	if 0 == len(chain) {
		return d
	}

	d[0].Outcash += amount

	share := amount
	for i := 0; i+1 < len(chain); i += 1 {
		l1Share := split.L1 * share
		d[i+1].Incash += l1Share

		if i+2 < len(chain) && chain[i+2].NumChildren >= threshold {
			d[i+2].Incash += split.L2 * share
		}

		share = l1Share
	}
	return d
}

// Merge - add a pending delta to the staged balances of its chain
// and persist every member, the payer included
func Merge(handle storage.Handle, chain []*person.Person, delta Delta) error {
	if len(chain) != len(delta) {
		return fault.ErrDeltaMismatch
	}
	for i, p := range chain {
		if p.ID != delta[i].ID {
			return fault.ErrDeltaMismatch
		}
	}

	for i, p := range chain {
		p.IncashCache += delta[i].Incash
		p.OutcashCache += delta[i].Outcash
		err := handle.Save(p)
		if nil != err {
			return err
		}
	}
	return nil
}

// Credited - total income distributed to the referrers
func (d Delta) Credited() float64 {
	total := 0.0
	for _, e := range d {
		total += e.Incash
	}
	return total
}
