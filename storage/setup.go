// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/referral/fault"
)

// storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	People  *poolHandle `prefix:"P"`
	Names   *poolHandle `prefix:"N"`
	Counter *poolHandle `prefix:"C"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - a handle on one open person database
type Store struct {
	sync.RWMutex
	log      *logger.L
	db       *leveldb.DB
	pool     pools
	cache    *dbCache
	count    uint64
	readOnly bool
}

// Open - open up the database
//
// the caller must Close the store when done
func Open(database string, readOnly bool) (*Store, error) {
	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q is not initialised", database)
			return nil, fault.ErrNotInitialised
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		log:      log,
		db:       db,
		cache:    newCache(),
		readOnly: readOnly,
	}

	err = s.setupPools()
	if nil != err {
		return nil, err
	}

	count, found, err := s.pool.Counter.getN(nil)
	if nil != err {
		return nil, err
	}
	if found {
		s.count = count
	}

	log.Infof("opened: %q  people: %d  read only: %t", database, s.count, readOnly)

	ok = true // prevent db close
	return s, nil
}

// scan each field of the pools struct and create its handle
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := &poolHandle{
			prefix:   prefixTag[0],
			database: s.db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return
	}
	s.db.Close()
	s.db = nil
	s.cache.Clear()
	s.log.Info("closed")
	s.log.Flush()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fault.ErrDatabaseVersionLength
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
