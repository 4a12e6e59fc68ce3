// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hivebox/codec"
	"github.com/bitmark-inc/hivebox/configuration"
	"github.com/bitmark-inc/hivebox/engine"
	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/hivebox/singleton"
	"github.com/bitmark-inc/hivebox/store"
	"github.com/bitmark-inc/logger"
)

const contextKey = "context"

// everything a command needs, built once before it runs
type appContext struct {
	log      *logger.L
	verbose  bool
	pidFile  string
	codec    codec.Codec
	database *engine.Database
	named    *store.Named
	state    *engine.Database // nil if a read only state could not be opened
	runs     *singleton.Singleton[RunState]
	w        io.Writer
	e        io.Writer
}

func getContext(c *cli.Context) *appContext {
	return c.App.Metadata[contextKey].(*appContext)
}

func openContext(c *cli.Context) error {

	if !needsContext(c.Args()) {
		return nil
	}

	e := c.App.ErrWriter
	verbose := c.GlobalBool("verbose")
	file := c.GlobalString("config-file")

	if verbose {
		fmt.Fprintf(e, "reading config file: %s\n", file)
	}

	theConfiguration, err := configuration.GetConfiguration(file)
	if nil != err {
		return err
	}

	if err := logger.Initialise(theConfiguration.Logging); nil != err {
		return err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return err
	}

	log := logger.New("main")
	log.Infof("version: %s  configuration: %q", version, file)

	ctx := &appContext{
		log:     log,
		verbose: verbose,
		w:       c.App.Writer,
		e:       e,
	}

	// the PID file keeps a second copy from seeding the same database
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			finalise()
			if os.IsExist(err) {
				return fmt.Errorf("another instance is already running")
			}
			return fmt.Errorf("PID file: %q creation failed, error: %s", theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		ctx.pidFile = theConfiguration.PidFile
	}

	if err := ctx.open(theConfiguration); nil != err {
		log.Criticalf("open error: %s", err)
		ctx.close()
		return err
	}

	c.App.Metadata[contextKey] = ctx
	return nil
}

func (ctx *appContext) open(theConfiguration *configuration.Configuration) error {
	options, err := theConfiguration.EngineOptions()
	if nil != err {
		return err
	}
	ctx.codec, err = theConfiguration.Codec()
	if nil != err {
		return err
	}

	if "" == theConfiguration.DatabasePath() {
		ctx.database, err = engine.OpenTransient(options)
	} else {
		ctx.database, err = engine.Open(theConfiguration.DatabasePath(), options)
	}
	if nil != err {
		return err
	}

	ctx.named = store.NewNamed(ctx.database, ctx.codec)

	ctx.state, err = openState(ctx.log, theConfiguration.StatePath(), options)
	if nil != err {
		return err
	}
	var state *store.Named
	if nil != ctx.state {
		state = store.NewNamed(ctx.state, nil)
	}
	ctx.runs, err = openRuns(state, options.ReadOnly, time.Now())
	return err
}

// help and version need neither configuration nor database
func needsContext(args cli.Args) bool {
	switch args.First() {
	case "", "help", "h", "version":
		return false
	}
	for _, arg := range args.Tail() {
		if "--" == arg {
			break
		}
		if "--help" == arg || "-h" == arg {
			return false
		}
	}
	return true
}

// the program's own records live apart from the records it inspects
//
// a read only state that cannot be opened is not an error, the run
// state is then kept in memory
func openState(log *logger.L, path string, options *engine.Options) (*engine.Database, error) {
	if "" == path {
		return engine.OpenTransient(nil)
	}
	if !options.ReadOnly {
		return engine.Open(path, nil)
	}

	state, err := engine.Open(path, &engine.Options{ReadOnly: true})
	if nil != err {
		log.Warnf("state: %q unavailable: %s", path, err)
		return nil, nil
	}
	return state, nil
}

func closeContext(c *cli.Context) error {
	ctx, ok := c.App.Metadata[contextKey].(*appContext)
	if !ok {
		return nil
	}
	delete(c.App.Metadata, contextKey)
	return ctx.close()
}

func (ctx *appContext) close() error {
	var err error
	if nil != ctx.state {
		err = ctx.state.Close()
	}
	if nil != ctx.database {
		if e := ctx.database.Close(); nil == err {
			err = e
		}
	}
	if "" != ctx.pidFile {
		os.Remove(ctx.pidFile)
	}
	ctx.log.Info("finished")
	finalise()
	return err
}

func finalise() {
	fault.Finalise()
	logger.Finalise()
}
