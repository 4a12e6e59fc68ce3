// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp()
	app.Flags = append(app.Flags,
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "hivebox.conf",
			Usage: " configuration `FILE`",
		},
	)
	app.Before = openContext
	app.After = closeContext

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s\n", err)
	}
}

// commands without the set up and tear down
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "hivebox"
	app.Usage = "inspect a hivebox database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	keyFlag := cli.BoolFlag{
		Name:  "string, s",
		Usage: " KEY is a plain string instead of hex",
	}

	app.Commands = []cli.Command{
		{
			Name:      "dump",
			Usage:     "list raw records in key order",
			ArgsUsage: "[HEX-PREFIX]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.BoolFlag{
					Name:  "ascii, a",
					Usage: " show keys and values as quoted strings",
				},
			},
			Action: runDump,
		},
		{
			Name:      "get",
			Usage:     "display one record",
			ArgsUsage: "KEY",
			Flags:     []cli.Flag{keyFlag},
			Action:    runGet,
		},
		{
			Name:      "delete",
			Usage:     "remove one record",
			ArgsUsage: "KEY",
			Flags:     []cli.Flag{keyFlag},
			Action:    runDelete,
		},
		{
			Name:   "stats",
			Usage:  "display database and run statistics",
			Action: runStats,
		},
		{
			Name:  "version",
			Usage: "display hivebox version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
	return app
}
