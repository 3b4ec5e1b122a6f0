// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package person_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/referral/person"
)

func TestNewCopiesParent(t *testing.T) {
	parent := uint64(7)
	p := person.New(8, "eight", &parent, 1.5, 0.5)
	parent = 99

	assert.False(t, p.IsRoot(), "child reported as root")
	assert.Equal(t, uint64(7), *p.Parent, "parent was aliased")
	assert.Equal(t, 1.0, p.Netcash(), "wrong net cash")
	assert.False(t, p.IsStaged(), "new person has staged balance")
	assert.Equal(t, []uint64{}, p.Children, "children not empty")
}

func TestAddChildIgnoresRepeat(t *testing.T) {
	p := person.New(0, "root", nil, 0, 0)
	p.AddChild(3)
	p.AddChild(4)
	p.AddChild(3)

	assert.True(t, p.IsRoot(), "root reported as child")
	assert.Equal(t, []uint64{3, 4}, p.Children, "wrong children")
}

func TestPackUnpack(t *testing.T) {
	parent := uint64(1)
	p := person.New(2, "two", &parent, 10, 3)
	p.AddChild(5)
	p.NumChildren = 4
	p.IncashCache = 2.5
	p.OutcashCache = 0.25

	packed, err := p.Pack()
	assert.Nil(t, err, "pack error")

	q, err := person.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, p, q, "round trip mismatch")
	assert.True(t, q.IsStaged(), "staged flag lost")
	assert.Equal(t, 2.25, q.NetcashCache(), "wrong staged net cash")
}

func TestUnpackRoot(t *testing.T) {
	q, err := person.Unpack([]byte(`{"id":0,"name":"root"}`))
	assert.Nil(t, err, "unpack error")
	assert.True(t, q.IsRoot(), "missing parent must be root")
	assert.Equal(t, []uint64{}, q.Children, "children must default to empty")
}

func TestUnpackCorrupt(t *testing.T) {
	_, err := person.Unpack([]byte("{not json"))
	assert.NotNil(t, err, "corrupt record accepted")
}
