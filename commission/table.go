// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commission

import (
	"fmt"

	"github.com/bitmark-inc/referral/fault"
)

// Split - the fractions paid to the first and second level referrers
type Split struct {
	L1 float64 `gluamapper:"l1" json:"l1"`
	L2 float64 `gluamapper:"l2" json:"l2"`
}

// Table - payment type to split
type Table map[string]Split

// Lookup - the split for a payment type
func (t Table) Lookup(ptype string) (Split, error) {
	split, ok := t[ptype]
	if !ok {
		return Split{}, fault.ErrUnknownPaymentType
	}
	return split, nil
}

// Validate - every fraction must lie in [0, 1]
func (t Table) Validate() error {
	for ptype, split := range t {
		for _, f := range []float64{split.L1, split.L2} {
			if f < 0 || f > 1 {
				return fmt.Errorf("payment type %q: %w", ptype, fault.ErrInvalidFraction)
			}
		}
	}
	return nil
}
