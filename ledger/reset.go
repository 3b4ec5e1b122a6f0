// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/referral/fault"
)

// Scope - how much a reset clears
type Scope int

// reset scopes
const (
	CacheOnly Scope = iota
	Full
)

// String - name of the scope
func (s Scope) String() string {
	switch s {
	case CacheOnly:
		return "cache only"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Reset - clear the staged balances of everyone, and for a full
// reset the durable balances as well
func (l *Ledger) Reset(scope Scope) error {
	if CacheOnly != scope && Full != scope {
		return fault.ErrUnsupportedResetScope
	}

	count := l.handle.Count()
	for id := uint64(0); id < count; id += 1 {
		p, err := l.handle.Load(id)
		if nil != err {
			return err
		}

		if Full == scope {
			p.Incash = 0
			p.Outcash = 0
		}
		p.IncashCache = 0
		p.OutcashCache = 0

		err = l.handle.Save(p)
		if nil != err {
			return err
		}
	}

	l.log.Infof("reset: %s  people: %d", scope, count)
	return nil
}
