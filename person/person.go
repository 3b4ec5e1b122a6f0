// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package person - the record held for every member of the referral forest
package person

import (
	"encoding/json"
)

// Person - a member of the forest
//
// the parent link is fixed at creation; Children must always mirror
// the reverse of Parent and NumChildren counts the whole subtree
// below this node, not only the direct children
type Person struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Parent       *uint64  `json:"parent,omitempty"`
	Children     []uint64 `json:"children"`
	NumChildren  uint64   `json:"num_children"`
	Incash       float64  `json:"incash"`
	Outcash      float64  `json:"outcash"`
	IncashCache  float64  `json:"incash_cache"`
	OutcashCache float64  `json:"outcash_cache"`
}

// New - a person with no staged balances
func New(id uint64, name string, parent *uint64, incash float64, outcash float64) *Person {
	p := &Person{
		ID:       id,
		Name:     name,
		Children: []uint64{},
		Incash:   incash,
		Outcash:  outcash,
	}
	if nil != parent {
		parentID := *parent
		p.Parent = &parentID
	}
	return p
}

// IsRoot - true if the person has no referrer
func (p *Person) IsRoot() bool {
	return nil == p.Parent
}

// AddChild - append a referred member, ignoring repeats
func (p *Person) AddChild(id uint64) {
	for _, c := range p.Children {
		if c == id {
			return
		}
	}
	p.Children = append(p.Children, id)
}

// Netcash - committed income minus committed outflow
func (p *Person) Netcash() float64 {
	return p.Incash - p.Outcash
}

// NetcashCache - staged income minus staged outflow
func (p *Person) NetcashCache() float64 {
	return p.IncashCache - p.OutcashCache
}

// IsStaged - true while there is a pending balance awaiting apply
func (p *Person) IsStaged() bool {
	return 0 != p.IncashCache || 0 != p.OutcashCache
}

// Pack - encode for storage
func (p *Person) Pack() ([]byte, error) {
	return json.Marshal(p)
}

// Unpack - decode a stored record
func Unpack(buffer []byte) (*Person, error) {
	p := &Person{}
	if err := json.Unmarshal(buffer, p); nil != err {
		return nil, err
	}
	if nil == p.Children {
		p.Children = []uint64{}
	}
	return p, nil
}
