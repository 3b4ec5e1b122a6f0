// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk person store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++    = concatenation of byte data
// 3. id    = person id as big endian uint64 (8 bytes)
// 4. count = next id to allocate as big endian uint64 (8 bytes)
//
// People:
//
//   P ++ id                    - person record
//                                data: JSON encoded person.Person
//
// Names:
//
//   N ++ name                  - name index
//                                data: id
//
// Counter:
//
//   C                          - id allocation counter
//                                data: count
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version
//                                data: big endian uint32
package storage
