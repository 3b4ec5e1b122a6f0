// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/ledger"
)

func TestResetCacheOnly(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	payer := stage(t, f, "P", 100)
	assert.Nil(t, f.ledger.Commit(payer), "commit")
	_ = stage(t, f, "P", 10)

	assert.Nil(t, f.ledger.Reset(ledger.CacheOnly), "reset")

	for _, e := range mustSnapshot(t, f, ledger.Staged) {
		assert.Equal(t, 0.0, e.Incash, "%s staged income kept", e.Name)
		assert.Equal(t, 0.0, e.Outcash, "%s staged outflow kept", e.Name)
	}
	assert.InDelta(t, 10.0, load(t, f.store, "A").Incash, epsilon, "durable income cleared")
	assert.InDelta(t, 102.0, load(t, f.store, "P").Outcash, epsilon, "durable outflow cleared")
}

func TestResetFull(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	payer := stage(t, f, "P", 100)
	assert.Nil(t, f.ledger.Commit(payer), "commit")
	_ = stage(t, f, "P", 10)

	assert.Nil(t, f.ledger.Reset(ledger.Full), "reset")

	for _, view := range []ledger.View{ledger.Committed, ledger.Staged} {
		for _, e := range mustSnapshot(t, f, view) {
			assert.Equal(t, 0.0, e.Incash, "%s %s income kept", view, e.Name)
			assert.Equal(t, 0.0, e.Outcash, "%s %s outflow kept", view, e.Name)
		}
	}

	// structure survives a reset
	assert.Equal(t, uint64(3), load(t, f.store, "B").NumChildren, "subtree size changed")
}

func TestResetUnsupportedScope(t *testing.T) {
	f := setup(t)
	defer teardown(f)

	err := f.ledger.Reset(ledger.Scope(5))
	assert.Equal(t, fault.ErrUnsupportedResetScope, err, "unknown scope accepted")
}

func mustSnapshot(t *testing.T, f fixture, view ledger.View) []ledger.Entry {
	entries, err := f.ledger.Snapshot(view)
	if nil != err {
		t.Fatalf("snapshot error: %s", err)
	}
	return entries
}
