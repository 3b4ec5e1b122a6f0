// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commission

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/storage"
	"github.com/bitmark-inc/referral/tree"
)

// Engine - stages payments against a store
type Engine struct {
	handle    storage.Handle
	table     Table
	threshold uint64
	log       *logger.L
}

// NewEngine - threshold is the minimum subtree size a second level
// referrer needs to receive its bonus
func NewEngine(handle storage.Handle, table Table, threshold uint64, log *logger.L) *Engine {
	return &Engine{
		handle:    handle,
		table:     table,
		threshold: threshold,
		log:       log,
	}
}

// Stage - record one payment into the staged balances
//
// the returned delta has the payer as element zero
func (e *Engine) Stage(payer string, amount float64, ptype string) (Delta, error) {
	split, err := e.table.Lookup(ptype)
	if nil != err {
		return nil, fmt.Errorf("payment type %q: %w", ptype, err)
	}
	if amount < 0 {
		return nil, fault.ErrInvalidAmount
	}

	p, err := e.handle.LoadByName(payer)
	if nil != err {
		return nil, fmt.Errorf("payer %q: %w", payer, err)
	}

	chain, err := tree.Ancestors(e.handle, p.ID)
	if nil != err {
		return nil, err
	}

	delta := Distribute(chain, amount, split, e.threshold)

	err = Merge(e.handle, chain, delta)
	if nil != err {
		return nil, err
	}

	e.log.Debugf("stage: payer: %q  amount: %f  type: %q  credited: %f  chain: %d", payer, amount, ptype, delta.Credited(), len(chain))
	return delta, nil
}
