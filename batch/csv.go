// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/referral/fault"
	"github.com/bitmark-inc/referral/ledger"
	"github.com/bitmark-inc/referral/tree"
)

// Payment - one row of a payment file
type Payment struct {
	Payer  string
	Amount float64
	PType  string
}

// column headings
const (
	columnName    = "name"
	columnParent  = "parent"
	columnIncash  = "incash"
	columnOutcash = "outcash"
	columnPayer   = "payer"
	columnAmount  = "amount"
	columnPType   = "ptype"
	columnID      = "id"
	columnNetcash = "netcash"
)

// ReadPeople - parse a people file
//
// header: name,parent,incash,outcash
// only name is required; a blank parent makes a root and blank or
// malformed amounts are zero
func ReadPeople(r io.Reader) ([]tree.Record, error) {
	t, err := readTable(r, columnName)
	if nil != err {
		return nil, err
	}

	records := make([]tree.Record, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, tree.Record{
			Name:    t.text(row, columnName),
			Parent:  t.text(row, columnParent),
			Incash:  t.number(row, columnIncash),
			Outcash: t.number(row, columnOutcash),
		})
	}
	return records, nil
}

// ReadPayments - parse a payment file
//
// header: payer,amount,ptype
// only payer is required; a blank or malformed amount is zero
func ReadPayments(r io.Reader) ([]Payment, error) {
	t, err := readTable(r, columnPayer)
	if nil != err {
		return nil, err
	}

	payments := make([]Payment, 0, len(t.rows))
	for _, row := range t.rows {
		payments = append(payments, Payment{
			Payer:  t.text(row, columnPayer),
			Amount: t.number(row, columnAmount),
			PType:  t.text(row, columnPType),
		})
	}
	return payments, nil
}

// WriteSnapshot - output a snapshot
//
// header: id,name,incash,outcash,netcash
func WriteSnapshot(w io.Writer, entries []ledger.Entry) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{columnID, columnName, columnIncash, columnOutcash, columnNetcash})
	if nil != err {
		return err
	}

	for _, e := range entries {
		err := cw.Write([]string{
			strconv.FormatUint(e.ID, 10),
			e.Name,
			formatAmount(e.Incash),
			formatAmount(e.Outcash),
			formatAmount(e.Netcash),
		})
		if nil != err {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// a parsed file with its column positions
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if io.EOF == err {
		return nil, fmt.Errorf("%q: %w", required, fault.ErrMissingColumn)
	}
	if nil != err {
		return nil, err
	}

	t := &table{
		columns: make(map[string]int),
	}
	for i, h := range header {
		// tolerate a UTF-8 byte order mark on the first heading
		h = strings.TrimPrefix(h, "\ufeff")
		t.columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range required {
		if _, ok := t.columns[c]; !ok {
			return nil, fmt.Errorf("%q: %w", c, fault.ErrMissingColumn)
		}
	}

	t.rows, err = cr.ReadAll()
	if nil != err {
		return nil, err
	}
	return t, nil
}

// a text field, blank if the row is short
func (t *table) text(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// a numeric field, zero if absent or malformed
func (t *table) number(row []string, column string) float64 {
	s := t.text(row, column)
	if "" == s {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
