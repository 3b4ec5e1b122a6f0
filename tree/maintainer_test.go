// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/tree"
)

//        a
//       / \
//      b   c
//     / \
//    d   e
//    |
//    f
var sampleForest = []tree.Record{
	{Name: "a"},
	{Name: "b", Parent: "a"},
	{Name: "c", Parent: "a", Incash: 4, Outcash: 1},
	{Name: "d", Parent: "b"},
	{Name: "e", Parent: "b"},
	{Name: "f", Parent: "d"},
	{Name: "lone"},
}

func TestAddLinksChildren(t *testing.T) {
	s, m := setup(t)
	defer teardown(s)

	addAll(t, m, sampleForest)

	expected := map[string][]string{
		"a":    {"b", "c"},
		"b":    {"d", "e"},
		"c":    {},
		"d":    {"f"},
		"e":    {},
		"f":    {},
		"lone": {},
	}

	for name, children := range expected {
		p, err := s.LoadByName(name)
		if nil != err {
			t.Fatalf("load %q error: %s", name, err)
		}
		actual := make([]string, 0, len(p.Children))
		for _, id := range p.Children {
			c, err := s.Load(id)
			if nil != err {
				t.Fatalf("load child %d error: %s", id, err)
			}
			assert.Equal(t, p.ID, *c.Parent, "child %q does not point back to %q", c.Name, name)
			actual = append(actual, c.Name)
		}
		assert.Equal(t, children, actual, "wrong children of %q", name)
	}

	c, _ := s.LoadByName("c")
	assert.Equal(t, 4.0, c.Incash, "initial incash lost")
	assert.Equal(t, 1.0, c.Outcash, "initial outcash lost")
}

func TestPropagateCountsWholeSubtree(t *testing.T) {
	s, m := setup(t)
	defer teardown(s)

	addAll(t, m, sampleForest)

	expected := map[string]uint64{
		"a":    5,
		"b":    3,
		"c":    0,
		"d":    1,
		"e":    0,
		"f":    0,
		"lone": 0,
	}
	for name, count := range expected {
		p, _ := s.LoadByName(name)
		assert.Equal(t, count, p.NumChildren, "wrong subtree size of %q", name)
	}
}

func TestAddBeforePropagateLeavesCountsUnchanged(t *testing.T) {
	s, m := setup(t)
	defer teardown(s)

	_, _ = m.Add(tree.Record{Name: "a"})
	b, _ := m.Add(tree.Record{Name: "b", Parent: "a"})

	a, _ := s.LoadByName("a")
	assert.Equal(t, uint64(0), a.NumChildren, "count raised before propagate")
	assert.Equal(t, []uint64{b.ID}, a.Children, "child not linked")

	err := m.Propagate(b.ID)
	assert.Nil(t, err, "propagate")
	a, _ = s.LoadByName("a")
	assert.Equal(t, uint64(1), a.NumChildren, "count not raised by propagate")
}

func TestAddErrors(t *testing.T) {
	s, m := setup(t)
	defer teardown(s)

	addAll(t, m, sampleForest[:2])

	_, err := m.Add(tree.Record{Name: "x", Parent: "nobody"})
	assert.True(t, fault.IsErrNotFound(err), "unknown parent accepted: %v", err)

	_, err = m.Add(tree.Record{Name: "self", Parent: "self"})
	assert.Equal(t, fault.ErrCycleDetected, err, "self parent accepted")

	// a fresh id below an existing parent cannot close a loop, so an
	// ancestor's name is only a duplicate
	_, err = m.Add(tree.Record{Name: "a", Parent: "b"})
	assert.Equal(t, fault.ErrDuplicateName, err, "ancestor re-added below descendant")

	_, err = m.Add(tree.Record{Name: "b"})
	assert.Equal(t, fault.ErrDuplicateName, err, "duplicate root accepted")

	assert.Equal(t, uint64(2), s.Count(), "failed adds created people")
}

func TestAncestors(t *testing.T) {
	s, m := setup(t)
	defer teardown(s)

	addAll(t, m, sampleForest)

	f, _ := s.LoadByName("f")
	chain, err := tree.Ancestors(s, f.ID)
	assert.Nil(t, err, "ancestors")

	names := make([]string, 0, len(chain))
	for _, p := range chain {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"f", "d", "b", "a"}, names, "wrong chain")

	lone, _ := s.LoadByName("lone")
	chain, err = tree.Ancestors(s, lone.ID)
	assert.Nil(t, err, "root ancestors")
	assert.Equal(t, 1, len(chain), "root chain must only hold the root")

	_, err = tree.Ancestors(s, 99)
	assert.True(t, fault.IsErrNotFound(err), "missing id walked")
}
