// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/referral/batch"
	"github.com/bitmark-inc/referral/ledger"
)

// replace the output file with the snapshot
func writeSnapshot(m *metadata, fileName string, snapshot []ledger.Entry) error {
	f, err := os.Create(fileName)
	if nil != err {
		return err
	}

	err = batch.WriteSnapshot(f, snapshot)
	if nil != err {
		f.Close()
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wrote: %s\n", fileName)
	}
	m.log.Infof("wrote: %q  entries: %d", fileName, len(snapshot))

	return f.Close()
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
