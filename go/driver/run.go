// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	cliUtils "github.com/Fantom-foundation/Vigil/go/driver/cli"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Executes the given code as the target of a call transaction",
	ArgsUsage: "<hex code>",
	Flags: []cli.Flag{
		cliUtils.GasFlag,
		cliUtils.InputFlag,
		cliUtils.ValueFlag,
		cliUtils.RevisionFlag,
		cliUtils.TraceFlag,
		cliUtils.StatsFlag,
		cliUtils.VerbosityFlag,
		cliUtils.RepeatFlag,
		cliUtils.DenyCreateFlag,
		cliUtils.BlockCallFlag,
		cliUtils.CallTraceFlag,
		cliUtils.ConfigFlag,
	},
}

func doRun(context *cli.Context) error {
	if filename := cliUtils.ConfigFlag.Fetch(context); filename != "" {
		config, err := cliUtils.LoadConfig(filename)
		if err != nil {
			return err
		}
		if err := config.Apply(context); err != nil {
			return err
		}
	}

	if context.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one argument, the hex encoded code, got %d", context.Args().Len())
	}
	code, err := cliUtils.ParseHex(context.Args().Get(0))
	if err != nil {
		return err
	}

	input, err := cliUtils.InputFlag.Fetch(context)
	if err != nil {
		return err
	}
	revision, err := cliUtils.RevisionFlag.Fetch(context)
	if err != nil {
		return err
	}
	level, err := cliUtils.VerbosityFlag.Fetch(context)
	if err != nil {
		return err
	}
	blocked, err := cliUtils.BlockCallFlag.Fetch(context)
	if err != nil {
		return err
	}

	logger := log.NewLogger(log.NewTerminalHandlerWithLevel(context.App.ErrWriter, level, false))
	log.SetDefault(logger)

	return execute(runConfig{
		code:       code,
		input:      input,
		value:      cliUtils.ValueFlag.Fetch(context),
		gas:        cliUtils.GasFlag.Fetch(context),
		revision:   revision,
		trace:      cliUtils.TraceFlag.Fetch(context),
		stats:      cliUtils.StatsFlag.Fetch(context),
		callTrace:  cliUtils.CallTraceFlag.Fetch(context),
		repeat:     cliUtils.RepeatFlag.Fetch(context),
		denyCreate: cliUtils.DenyCreateFlag.Fetch(context),
		blocked:    blocked,
		logLevel:   level,
		logger:     logger,
	}, context.App.Writer)
}
