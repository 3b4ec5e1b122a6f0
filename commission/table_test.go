// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/referral/commission"
	"github.com/bitmark-inc/referral/fault"
)

func TestLookup(t *testing.T) {
	split, err := table.Lookup("gold")
	assert.Nil(t, err, "lookup")
	assert.Equal(t, commission.Split{L1: 0.2, L2: 0.1}, split, "wrong split")

	_, err = table.Lookup("silver")
	assert.Equal(t, fault.ErrUnknownPaymentType, err, "unknown type found")
}

func TestValidate(t *testing.T) {
	assert.Nil(t, table.Validate(), "valid table rejected")

	bad := []commission.Table{
		{"neg": {L1: -0.1, L2: 0}},
		{"big": {L1: 0.1, L2: 1.5}},
	}
	for i, b := range bad {
		err := b.Validate()
		assert.True(t, fault.IsErrInvalid(err), "%d: invalid table accepted: %v", i, err)
	}
}
