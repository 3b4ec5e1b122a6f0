// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/referral/fault"
)

// View - which balances a snapshot shows
type View int

// snapshot views
const (
	Committed View = iota
	Staged
)

// Entry - one line of a snapshot
type Entry struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Incash  float64 `json:"incash"`
	Outcash float64 `json:"outcash"`
	Netcash float64 `json:"netcash"`
}

// String - name of the view
func (v View) String() string {
	switch v {
	case Committed:
		return "committed"
	case Staged:
		return "staged"
	default:
		return "unknown"
	}
}

// Snapshot - the balances of every person in id order
func (l *Ledger) Snapshot(view View) ([]Entry, error) {
	if Committed != view && Staged != view {
		return nil, fault.ErrUnsupportedReportView
	}

	count := l.handle.Count()
	entries := make([]Entry, 0, count)

	for id := uint64(0); id < count; id += 1 {
		p, err := l.handle.Load(id)
		if nil != err {
			return nil, err
		}

		e := Entry{
			ID:   p.ID,
			Name: p.Name,
		}
		if Staged == view {
			e.Incash = p.IncashCache
			e.Outcash = p.OutcashCache
			e.Netcash = p.NetcashCache()
		} else {
			e.Incash = p.Incash
			e.Outcash = p.Outcash
			e.Netcash = p.Netcash()
		}
		entries = append(entries, e)
	}

	l.log.Infof("snapshot: %s  people: %d", view, len(entries))
	return entries, nil
}
