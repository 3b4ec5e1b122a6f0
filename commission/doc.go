// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commission - split a payment over the payer's referrers
//
// A payment is first turned into a Delta, one entry per member of the
// chain from the payer up to its root, without touching storage.  The
// Delta is then merged into the staged (cache) balances of the chain.
// Staged balances only become durable when the ledger applies them.
//
// For each hop up the chain with a share s (starting with the payment
// amount):
//
//   parent       += l1 * s
//   grandparent  += l2 * s   only if its subtree size >= threshold
//   s             = l1 * s   for the next hop
package commission
