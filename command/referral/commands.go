// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/referral/batch"
	"github.com/bitmark-inc/referral/ledger"
)

func newRunner(m *metadata) *batch.Runner {
	options := batch.Options{
		Percentages:     m.config.Percentages,
		Threshold:       m.config.Threshold,
		ContinueOnError: m.config.ContinueOnError,
	}
	return batch.NewRunner(m.store, options, m.log)
}

func openInput(c *cli.Context) (*os.File, error) {
	fileName := c.String("file")
	if "" == fileName {
		return nil, ErrFileRequired
	}
	return os.Open(fileName)
}

func runPeople(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := openInput(c)
	if nil != err {
		return err
	}
	defer f.Close()

	records, err := batch.ReadPeople(f)
	if nil != err {
		return err
	}

	m.log.Infof("people: %q  rows: %d", f.Name(), len(records))

	result, err := newRunner(m).AddPeople(records)
	report(m, result)
	return err
}

func runPayment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := openInput(c)
	if nil != err {
		return err
	}
	defer f.Close()

	payments, err := batch.ReadPayments(f)
	if nil != err {
		return err
	}

	m.log.Infof("payments: %q  rows: %d", f.Name(), len(payments))

	result, err := newRunner(m).RecordPayments(payments)
	report(m, result)
	if nil != err {
		return err
	}
	return writeSnapshot(m, m.config.Output.Staged, result.Snapshot)
}

func runApply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := openInput(c)
	if nil != err {
		return err
	}
	defer f.Close()

	payments, err := batch.ReadPayments(f)
	if nil != err {
		return err
	}

	m.log.Infof("apply: %q  rows: %d", f.Name(), len(payments))

	result, err := newRunner(m).ApplyPayments(payments)
	report(m, result)
	if nil != err {
		return err
	}
	return writeSnapshot(m, m.config.Output.Committed, result.Snapshot)
}

func runReset(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return newRunner(m).Reset(ledger.Full)
}

func runResetCache(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return newRunner(m).Reset(ledger.CacheOnly)
}

func runReport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	view := ledger.Committed
	if c.Bool("staged") {
		view = ledger.Staged
	}

	snapshot, err := newRunner(m).Snapshot(view)
	if nil != err {
		return err
	}

	return printJson(m.w, snapshot)
}

// summarise a batch on the error writer when verbose
func report(m *metadata, result *batch.Result) {
	if nil == result || !m.verbose {
		return
	}
	fmt.Fprintf(m.e, "processed: %d\n", result.Processed)
	for _, f := range result.Failed {
		fmt.Fprintf(m.e, "skipped: %s\n", f)
	}
}
