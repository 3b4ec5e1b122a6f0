// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package batch

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/referral/commission"
	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/ledger"
	"github.com/bitmark-inc/referral/storage"
	"github.com/bitmark-inc/referral/tree"
)

// Options - the ledger settings a runner needs
type Options struct {
	Percentages     commission.Table
	Threshold       uint64
	ContinueOnError bool
}

// Runner - applies batches to one store
type Runner struct {
	handle          storage.Handle
	maintainer      *tree.Maintainer
	engine          *commission.Engine
	ledger          *ledger.Ledger
	continueOnError bool
	log             *logger.L
}

// RowError - a failed row, numbered from 1 after the header
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Result - the outcome of one batch
type Result struct {
	Processed int
	Failed    []RowError
	Snapshot  []ledger.Entry
}

// NewRunner - create a runner over a store
func NewRunner(handle storage.Handle, options Options, log *logger.L) *Runner {
	return &Runner{
		handle:          handle,
		maintainer:      tree.New(handle, log),
		engine:          commission.NewEngine(handle, options.Percentages, options.Threshold, log),
		ledger:          ledger.New(handle, log),
		continueOnError: options.ContinueOnError,
		log:             log,
	}
}

// either abort with the row error or remember it and carry on
//
// an unconfigured payment type is a configuration error and always
// aborts
func (r *Runner) fail(result *Result, row int, err error) error {
	rowError := RowError{Row: row, Err: err}
	if !r.continueOnError || errors.Is(err, fault.ErrUnknownPaymentType) {
		r.log.Errorf("abort: %s", rowError)
		return rowError
	}
	r.log.Warnf("skip: %s", rowError)
	result.Failed = append(result.Failed, rowError)
	return nil
}

// AddPeople - add every row, then raise the subtree counts for the
// new people once all of them are linked
func (r *Runner) AddPeople(records []tree.Record) (*Result, error) {
	result := &Result{}
	queue := make([]uint64, 0, len(records))

	for i, record := range records {
		p, err := r.maintainer.Add(record)
		if nil != err {
			if err := r.fail(result, i+1, err); nil != err {
				return result, err
			}
			continue
		}
		queue = append(queue, p.ID)
		result.Processed += 1
	}

	r.log.Infof("updating subtree counts for: %d people", len(queue))
	for _, id := range queue {
		err := r.maintainer.Propagate(id)
		if nil != err {
			return result, err
		}
	}

	return result, nil
}

// RecordPayments - stage every row and report the staged balances
func (r *Runner) RecordPayments(payments []Payment) (*Result, error) {
	result := &Result{}

	for i, payment := range payments {
		_, err := r.engine.Stage(payment.Payer, payment.Amount, payment.PType)
		if nil != err {
			if err := r.fail(result, i+1, err); nil != err {
				return result, err
			}
			continue
		}
		result.Processed += 1
		r.log.Infof("processed: payer: %q  amount: %f  type: %q", payment.Payer, payment.Amount, payment.PType)
	}

	snapshot, err := r.ledger.Snapshot(ledger.Staged)
	if nil != err {
		return result, err
	}
	result.Snapshot = snapshot
	return result, nil
}

// ApplyPayments - commit the chain of every row and report the
// committed balances
//
// every row is replayed, not only distinct payers, so each chain
// touched by the original payments is committed; rows before a
// failure stay committed
func (r *Runner) ApplyPayments(payments []Payment) (*Result, error) {
	result := &Result{}

	for i, payment := range payments {
		p, err := r.handle.LoadByName(payment.Payer)
		if nil != err {
			err = fmt.Errorf("payer %q: %w", payment.Payer, err)
			if err := r.fail(result, i+1, err); nil != err {
				return result, err
			}
			continue
		}

		err = r.ledger.Commit(p.ID)
		if nil != err {
			if err := r.fail(result, i+1, err); nil != err {
				return result, err
			}
			continue
		}
		result.Processed += 1
	}

	snapshot, err := r.ledger.Snapshot(ledger.Committed)
	if nil != err {
		return result, err
	}
	result.Snapshot = snapshot
	return result, nil
}

// Reset - clear balances of every person
func (r *Runner) Reset(scope ledger.Scope) error {
	return r.ledger.Reset(scope)
}

// Snapshot - report without changing anything
func (r *Runner) Snapshot(view ledger.View) ([]ledger.Entry, error) {
	return r.ledger.Snapshot(view)
}
