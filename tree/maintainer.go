// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/person"
	"github.com/bitmark-inc/referral/storage"
)

// Record - the details of a person to be added
//
// a blank Parent makes the person a new root
type Record struct {
	Name    string
	Parent  string
	Incash  float64
	Outcash float64
}

// Maintainer - adds people while keeping parent and child links in step
type Maintainer struct {
	handle storage.Handle
	log    *logger.L
}

// New - create a maintainer over a store
func New(handle storage.Handle, log *logger.L) *Maintainer {
	return &Maintainer{
		handle: handle,
		log:    log,
	}
}

// Add - create a person and link it below its parent
//
// the subtree counts are not touched, call Propagate for the new id
// once every person of the batch has been added
func (m *Maintainer) Add(r Record) (*person.Person, error) {
	if "" == r.Parent {
		p, err := m.handle.Create(r.Name, nil, r.Incash, r.Outcash)
		if nil != err {
			return nil, err
		}
		m.log.Infof("added root: %q  id: %d", p.Name, p.ID)
		return p, nil
	}

	if r.Name == r.Parent {
		return nil, fault.ErrCycleDetected
	}

	parent, err := m.handle.LoadByName(r.Parent)
	if nil != err {
		return nil, fmt.Errorf("parent %q: %w", r.Parent, err)
	}

	// the parent's own chain must end at a root
	_, err = Ancestors(m.handle, parent.ID)
	if nil != err {
		return nil, err
	}

	p, err := m.handle.Create(r.Name, &parent.ID, r.Incash, r.Outcash)
	if nil != err {
		return nil, err
	}

	parent.AddChild(p.ID)
	err = m.handle.Save(parent)
	if nil != err {
		return nil, err
	}

	m.log.Infof("added: %q  id: %d  parent: %q", p.Name, p.ID, parent.Name)
	return p, nil
}

// Propagate - count a new person in the subtree of every ancestor
func (m *Maintainer) Propagate(id uint64) error {
	chain, err := Ancestors(m.handle, id)
	if nil != err {
		return err
	}

	for _, a := range chain[1:] {
		a.NumChildren += 1
		err := m.handle.Save(a)
		if nil != err {
			return err
		}
	}

	m.log.Debugf("propagate: id: %d  ancestors: %d", id, len(chain)-1)
	return nil
}
