// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/person"
)

// Handle - the person store operations used by the ledger
type Handle interface {
	Create(name string, parent *uint64, incash float64, outcash float64) (*person.Person, error)
	Load(id uint64) (*person.Person, error)
	LoadByName(name string) (*person.Person, error)
	Save(p *person.Person) error
	Count() uint64
}

var _ Handle = (*Store)(nil)

// Create - allocate the next id and store a new person
//
// the record, the name index and the advanced counter are written
// in a single batch so a failure cannot leave a half registered name
func (s *Store) Create(name string, parent *uint64, incash float64, outcash float64) (*person.Person, error) {
	if "" == name {
		return nil, fault.ErrInvalidName
	}

	s.Lock()
	defer s.Unlock()

	if err := s.writable(); nil != err {
		return nil, err
	}

	exists, err := s.pool.Names.has([]byte(name))
	if nil != err {
		return nil, err
	}
	if exists {
		return nil, fault.ErrDuplicateName
	}

	if nil != parent && *parent >= s.count {
		return nil, fault.ErrNotFound
	}

	id := s.count
	p := person.New(id, name, parent, incash, outcash)
	packed, err := p.Pack()
	if nil != err {
		return nil, err
	}

	key := toBytes(id)
	batch := new(leveldb.Batch)
	s.pool.People.batchPut(batch, key, packed)
	s.pool.Names.batchPut(batch, []byte(name), key)
	s.pool.Counter.batchPut(batch, nil, toBytes(id+1))

	err = s.db.Write(batch, nil)
	if nil != err {
		return nil, err
	}

	s.count = id + 1
	s.cache.Set(string(key), packed)

	s.log.Debugf("create: id: %d  name: %q", id, name)
	return p, nil
}

// Load - fetch a person by id
func (s *Store) Load(id uint64) (*person.Person, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}
	return s.load(id)
}

// LoadByName - fetch a person through the name index
func (s *Store) LoadByName(name string) (*person.Person, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	id, found, err := s.pool.Names.getN([]byte(name))
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrNotFound
	}
	return s.load(id)
}

// Save - overwrite the full record of an existing person
func (s *Store) Save(p *person.Person) error {
	s.Lock()
	defer s.Unlock()

	if err := s.writable(); nil != err {
		return err
	}
	if p.ID >= s.count {
		return fault.ErrNotFound
	}

	packed, err := p.Pack()
	if nil != err {
		return err
	}

	key := toBytes(p.ID)
	err = s.pool.People.put(key, packed)
	if nil != err {
		return err
	}
	s.cache.Set(string(key), packed)
	return nil
}

// Count - the next id to be allocated, ids 0 … Count()-1 all exist
func (s *Store) Count() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.count
}

// must hold lock
func (s *Store) load(id uint64) (*person.Person, error) {
	key := toBytes(id)

	packed, found := s.cache.Get(string(key))
	if !found {
		var err error
		packed, err = s.pool.People.get(key)
		if nil != err {
			return nil, err
		}
		if nil == packed {
			return nil, fault.ErrNotFound
		}
		s.cache.Set(string(key), packed)
	}

	return person.Unpack(packed)
}

// must hold lock
func (s *Store) writable() error {
	if nil == s.db {
		return fault.ErrNotInitialised
	}
	if s.readOnly {
		return fault.ErrReadOnly
	}
	return nil
}
