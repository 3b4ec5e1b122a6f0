// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package batch - run files of people and payments against the ledger
//
// Rows are processed in file order and are not transactional: when a
// row fails, the rows before it stay persisted.  By default the first
// failure aborts the batch; with ContinueOnError the row is logged,
// recorded in the result and skipped.
package batch
