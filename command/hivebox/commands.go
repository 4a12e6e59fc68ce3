// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hivebox/fault"
	"github.com/bitmark-inc/hivebox/store"
)

func runDump(c *cli.Context) error {
	ctx := getContext(c)

	count := c.Int("count")
	if count <= 0 {
		return fault.ErrInvalidCount
	}

	cursor := ctx.database.NewCursor()
	if c.NArg() > 0 {
		prefix, err := hex.DecodeString(c.Args().Get(0))
		if nil != err {
			return err
		}
		cursor.Prefix(prefix)
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		return err
	}

	ascii := c.Bool("ascii")
	for i, e := range data {
		if ascii {
			fmt.Fprintf(ctx.w, "%d: Key: %q\n", i, e.Key)
			fmt.Fprintf(ctx.w, "%d: Val: %q\n", i, e.Value)
		} else {
			fmt.Fprintf(ctx.w, "%d: Key: %x\n", i, e.Key)
			fmt.Fprintf(ctx.w, "%d: Val: %x\n", i, e.Value)
		}
	}
	if ctx.verbose {
		fmt.Fprintf(ctx.e, "records: %d\n", len(data))
	}
	return nil
}

func runGet(c *cli.Context) error {
	ctx := getContext(c)

	key, err := keyArgument(c)
	if nil != err {
		return err
	}

	raw, err := ctx.named.GetBytes(key)
	if nil != err {
		return err
	}
	fmt.Fprintf(ctx.w, "raw: %x\n", raw)

	value, err := store.Get[interface{}](ctx.named, key)
	if nil != err {
		fmt.Fprintf(ctx.w, "%s: %s\n", ctx.codec.Name(), err)
		return nil
	}
	fmt.Fprintf(ctx.w, "%s: %v\n", ctx.codec.Name(), value)
	return nil
}

func runDelete(c *cli.Context) error {
	ctx := getContext(c)

	key, err := keyArgument(c)
	if nil != err {
		return err
	}
	if err := ctx.named.Delete(key); nil != err {
		return err
	}
	ctx.log.Infof("deleted: %x", key)
	if ctx.verbose {
		fmt.Fprintf(ctx.e, "deleted: %x\n", key)
	}
	return nil
}

type statistics struct {
	Path    string   `json:"path"`
	Codec   string   `json:"codec"`
	Records int      `json:"records"`
	Runs    RunState `json:"runs"`
}

func runStats(c *cli.Context) error {
	ctx := getContext(c)

	records := 0
	err := ctx.database.Iterate(func(key []byte, value []byte) bool {
		records += 1
		return true
	})
	if nil != err {
		return err
	}

	path := ctx.database.Path()
	if "" == path {
		path = "(transient)"
	}

	return printJson(ctx.w, statistics{
		Path:    path,
		Codec:   ctx.codec.Name(),
		Records: records,
		Runs:    ctx.runs.Read(),
	})
}

// the single KEY argument as hex, or as a string with --string
func keyArgument(c *cli.Context) ([]byte, error) {
	if 1 != c.NArg() {
		return nil, fault.ErrInvalidKey
	}
	return parseKey(c.Args().Get(0), c.Bool("string"))
}

func parseKey(arg string, plain bool) ([]byte, error) {
	if "" == arg {
		return nil, fault.ErrInvalidKey
	}
	if plain {
		return []byte(arg), nil
	}
	key, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return key, nil
}
