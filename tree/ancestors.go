// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/person"
	"github.com/bitmark-inc/referral/storage"
)

// Ancestors - load the chain from a person up to its root
//
// element zero is the person itself and the last element is the
// root; a forest of n people cannot have a chain longer than n so a
// longer walk means the parent links loop
func Ancestors(handle storage.Handle, id uint64) ([]*person.Person, error) {
	limit := handle.Count()
	chain := make([]*person.Person, 0, 8)

	next := id
	for {
		p, err := handle.Load(next)
		if nil != err {
			return nil, err
		}
		chain = append(chain, p)

		if p.IsRoot() {
			return chain, nil
		}
		if uint64(len(chain)) >= limit {
			return nil, fault.ErrCycleDetected
		}
		next = *p.Parent
	}
}
