// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - keep the referral forest consistent
//
// new people are linked below their referrer as they are added; the
// subtree counts of the ancestors are only raised afterwards by
// Propagate so that a batch can insert all of its rows first
package tree
