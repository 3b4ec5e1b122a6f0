// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/referral/fault"
)

// a single prefixed pool within the database
type poolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// prepend the prefix onto the key
func (p *poolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// read a value for a given key
//
// returns nil if the key is not present
func (p *poolHandle) get(key []byte) ([]byte, error) {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *poolHandle) getN(key []byte) (uint64, bool, error) {
	buffer, err := p.get(key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrTruncatedRecord
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// check if a key exists
func (p *poolHandle) has(key []byte) (bool, error) {
	return p.database.Has(p.prefixKey(key), nil)
}

// store a key/value bytes pair into a batch
func (p *poolHandle) batchPut(batch *leveldb.Batch, key []byte, value []byte) {
	batch.Put(p.prefixKey(key), value)
}

// store a key/value bytes pair to the database
func (p *poolHandle) put(key []byte, value []byte) error {
	return p.database.Put(p.prefixKey(key), value, nil)
}

// encode a uint64 as a big endian key or value
func toBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
