// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package batch_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/referral/batch"
	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/ledger"
	"github.com/bitmark-inc/referral/tree"
)

func TestReadPeopleDefaults(t *testing.T) {
	input := "name,parent,incash,outcash\n" +
		"alice,,10,2\n" +
		"bob,alice,,\n" +
		"carol,bob,abc,1.5\n" +
		"dave,alice\n"

	records, err := batch.ReadPeople(strings.NewReader(input))
	assert.Nil(t, err, "read")

	expected := []tree.Record{
		{Name: "alice", Parent: "", Incash: 10, Outcash: 2},
		{Name: "bob", Parent: "alice"},
		{Name: "carol", Parent: "bob", Incash: 0, Outcash: 1.5},
		{Name: "dave", Parent: "alice"},
	}
	assert.Equal(t, expected, records, "wrong records")
}

func TestReadPeopleColumnOrder(t *testing.T) {
	input := "Outcash, Parent ,NAME\n" +
		"3,,root\n"

	records, err := batch.ReadPeople(strings.NewReader(input))
	assert.Nil(t, err, "read")
	assert.Equal(t, []tree.Record{{Name: "root", Outcash: 3}}, records, "columns not matched by heading")
}

func TestReadPeopleMissingName(t *testing.T) {
	_, err := batch.ReadPeople(strings.NewReader("parent,incash\nx,1\n"))
	assert.True(t, fault.IsErrInvalid(err), "missing name column accepted: %v", err)

	_, err = batch.ReadPeople(strings.NewReader(""))
	assert.True(t, fault.IsErrInvalid(err), "empty file accepted: %v", err)
}

func TestReadPayments(t *testing.T) {
	input := "payer,amount,ptype\n" +
		"alice,100,vip\n" +
		"bob,,vip\n" +
		"carol,NaN,basic\n" +
		"dave,12.5\n"

	payments, err := batch.ReadPayments(strings.NewReader(input))
	assert.Nil(t, err, "read")

	expected := []batch.Payment{
		{Payer: "alice", Amount: 100, PType: "vip"},
		{Payer: "bob", Amount: 0, PType: "vip"},
		{Payer: "carol", Amount: 0, PType: "basic"},
		{Payer: "dave", Amount: 12.5, PType: ""},
	}
	assert.Equal(t, expected, payments, "wrong payments")
}

func TestReadPaymentsMissingPayer(t *testing.T) {
	_, err := batch.ReadPayments(strings.NewReader("amount,ptype\n1,vip\n"))
	assert.True(t, fault.IsErrInvalid(err), "missing payer column accepted: %v", err)
}

func TestWriteSnapshot(t *testing.T) {
	entries := []ledger.Entry{
		{ID: 0, Name: "alice", Incash: 10.5, Outcash: 0, Netcash: 10.5},
		{ID: 1, Name: "bob, jr", Incash: 0, Outcash: 100, Netcash: -100},
	}

	buffer := &bytes.Buffer{}
	err := batch.WriteSnapshot(buffer, entries)
	assert.Nil(t, err, "write")

	expected := "id,name,incash,outcash,netcash\n" +
		"0,alice,10.5,0,10.5\n" +
		"1,\"bob, jr\",0,100,-100\n"
	assert.Equal(t, expected, buffer.String(), "wrong output")
}
