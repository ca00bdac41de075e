// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"log/slog"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

type gasFlagType struct {
	cli.Uint64Flag
}

var GasFlag = &gasFlagType{
	cli.Uint64Flag{
		Name:  "gas",
		Usage: "gas limit of the executed transaction",
		Value: 10_000_000,
	},
}

func (f *gasFlagType) Fetch(context *cli.Context) tosca.Gas {
	return tosca.Gas(context.Uint64(f.Name))
}

type inputFlagType struct {
	cli.StringFlag
}

var InputFlag = &inputFlagType{
	cli.StringFlag{
		Name:  "input",
		Usage: "hex encoded call data",
	},
}

func (f *inputFlagType) Fetch(context *cli.Context) (tosca.Data, error) {
	return ParseHex(context.String(f.Name))
}

type valueFlagType struct {
	cli.Uint64Flag
}

var ValueFlag = &valueFlagType{
	cli.Uint64Flag{
		Name:  "value",
		Usage: "value transferred to the executed contract",
	},
}

func (f *valueFlagType) Fetch(context *cli.Context) tosca.Value {
	return tosca.NewValue(context.Uint64(f.Name))
}

type revisionFlagType struct {
	cli.StringFlag
}

var RevisionFlag = &revisionFlagType{
	cli.StringFlag{
		Name:  "revision",
		Usage: "EVM revision to execute the code with",
		Value: tosca.R13_Cancun.String(),
	},
}

func (f *revisionFlagType) Fetch(context *cli.Context) (tosca.Revision, error) {
	return tosca.ParseRevision(context.String(f.Name))
}

type traceFlagType struct {
	cli.BoolFlag
}

var TraceFlag = &traceFlagType{
	cli.BoolFlag{
		Name:  "trace",
		Usage: "print the remaining gas and the cost of every executed instruction",
	},
}

func (f *traceFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type statsFlagType struct {
	cli.BoolFlag
}

var StatsFlag = &statsFlagType{
	cli.BoolFlag{
		Name:  "stats",
		Usage: "print instruction statistics, counts are accumulated over all repeated runs",
	},
}

func (f *statsFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	},
}

// Fetch returns the log level selected by the verbosity.
func (f *verbosityFlagType) Fetch(context *cli.Context) (slog.Level, error) {
	verbosity := context.Int(f.Name)
	if verbosity < 0 || verbosity > 5 {
		return 0, fmt.Errorf("invalid verbosity %d, must be in range [0,5]", verbosity)
	}
	return log.FromLegacyLevel(verbosity), nil
}

type repeatFlagType struct {
	cli.IntFlag
}

var RepeatFlag = &repeatFlagType{
	cli.IntFlag{
		Name:  "repeat",
		Usage: "number of times the transaction is executed on a fresh state",
		Value: 1,
	},
}

func (f *repeatFlagType) Fetch(context *cli.Context) int {
	if repeat := context.Int(f.Name); repeat > 0 {
		return repeat
	}
	return 1
}

type denyCreateFlagType struct {
	cli.BoolFlag
}

var DenyCreateFlag = &denyCreateFlagType{
	cli.BoolFlag{
		Name:  "deny-create",
		Usage: "discard all contract creations",
	},
}

func (f *denyCreateFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type blockCallFlagType struct {
	cli.StringSliceFlag
}

var BlockCallFlag = &blockCallFlagType{
	cli.StringSliceFlag{
		Name:  "block-call",
		Usage: "revert all calls executing the code of the given address, may be repeated",
	},
}

func (f *blockCallFlagType) Fetch(context *cli.Context) ([]tosca.Address, error) {
	res := []tosca.Address{}
	for _, cur := range context.StringSlice(f.Name) {
		address, err := ParseAddress(cur)
		if err != nil {
			return nil, err
		}
		res = append(res, address)
	}
	return res, nil
}

type callTraceFlagType struct {
	cli.BoolFlag
}

var CallTraceFlag = &callTraceFlagType{
	cli.BoolFlag{
		Name:  "calltrace",
		Usage: "print the call tree of the transaction as JSON",
	},
}

func (f *callTraceFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type configFlagType struct {
	cli.StringFlag
}

var ConfigFlag = &configFlagType{
	cli.StringFlag{
		Name:      "config",
		Usage:     "TOML file providing defaults for all other flags",
		TakesFile: true,
	},
}

func (f *configFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

// ParseHex decodes a hex string with an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	if !has0xPrefix(s) {
		s = "0x" + s
	}
	if s == "0x" {
		return nil, nil
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string %q: %w", s, err)
	}
	return data, nil
}

// ParseAddress decodes a hex encoded address with an optional 0x prefix.
func ParseAddress(s string) (tosca.Address, error) {
	if !common.IsHexAddress(s) {
		return tosca.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return tosca.Address(common.HexToAddress(s)), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
