// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - apply staged balances, report and reset
//
// cash state of a person:
//
//   clean  --(commission stage)-->  staged
//   staged --(Commit / Reset)----->  clean
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/referral/storage"
)

// Ledger - operations on the balances of a store
type Ledger struct {
	handle storage.Handle
	log    *logger.L
}

// New - create a ledger over a store
func New(handle storage.Handle, log *logger.L) *Ledger {
	return &Ledger{
		handle: handle,
		log:    log,
	}
}
