// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/referral/configuration"
	"github.com/bitmark-inc/referral/storage"
)

type metadata struct {
	config  *configuration.Configuration
	store   *storage.Store
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that only read the database
var readOnlyCommands = map[string]struct{}{
	"report": {},
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "referral"
	app.Usage = "referral commission ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "referral.conf",
			Usage: " configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	fileFlag := cli.StringFlag{
		Name:  "file, f",
		Value: "",
		Usage: "*CSV input `FILE`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "people",
			Usage:     "add people from a CSV file (name,parent,incash,outcash)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runPeople,
		},
		{
			Name:      "payment",
			Usage:     "stage commissions for payments in a CSV file (payer,amount,ptype)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runPayment,
		},
		{
			Name:      "apply",
			Usage:     "commit staged commissions for the payers in a CSV file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runApply,
		},
		{
			Name:   "reset",
			Usage:  "zero committed and staged balances of everyone",
			Action: runReset,
		},
		{
			Name:   "reset-cache",
			Usage:  "zero staged balances of everyone",
			Action: runResetCache,
		},
		{
			Name:  "report",
			Usage: "print balances as JSON",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "staged, s",
					Usage: " show staged instead of committed balances",
				},
			},
			Action: runReport,
		},
		{
			Name:  "version",
			Usage: "display referral version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return fmt.Errorf("failed to read configuration from: %q  error: %s", file, err)
		}

		err = logger.Initialise(config.Logging)
		if nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Infof("database: %q", config.Database.Name)

		_, readOnly := readOnlyCommands[command]
		store, err := storage.Open(config.Database.Name, readOnly)
		if nil != err {
			log.Criticalf("storage open failed: %s", err)
			logger.Finalise()
			return fmt.Errorf("storage open failed: %s", err)
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			store:   store,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// release the database and flush the logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.store.Close()
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
