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
	"os"
	"reflect"
	"strconv"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// Config lists the defaults a configuration file may provide. Keys of the
// file match the field names; unknown keys are rejected.
type Config struct {
	Gas        *uint64
	Input      *string
	Value      *uint64
	Revision   *string
	Trace      *bool
	Stats      *bool
	Verbosity  *int
	Repeat     *int
	DenyCreate *bool
	BlockCall  []string
	CallTrace  *bool
}

var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadConfig decodes the TOML file with the given name.
func LoadConfig(filename string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := tomlSettings.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return config, nil
}

// Apply sets all flags defined by the configuration which have not been set
// on the command line.
func (c *Config) Apply(context *cli.Context) error {
	type setting struct {
		name   string
		values []string
	}
	// Settings are applied in flag order, so the first invalid one is
	// reported.
	settings := []setting{}
	add := func(name string, values ...string) {
		settings = append(settings, setting{name, values})
	}
	if c.Gas != nil {
		add(GasFlag.Name, strconv.FormatUint(*c.Gas, 10))
	}
	if c.Input != nil {
		add(InputFlag.Name, *c.Input)
	}
	if c.Value != nil {
		add(ValueFlag.Name, strconv.FormatUint(*c.Value, 10))
	}
	if c.Revision != nil {
		add(RevisionFlag.Name, *c.Revision)
	}
	if c.Trace != nil {
		add(TraceFlag.Name, strconv.FormatBool(*c.Trace))
	}
	if c.Stats != nil {
		add(StatsFlag.Name, strconv.FormatBool(*c.Stats))
	}
	if c.Verbosity != nil {
		add(VerbosityFlag.Name, strconv.Itoa(*c.Verbosity))
	}
	if c.Repeat != nil {
		add(RepeatFlag.Name, strconv.Itoa(*c.Repeat))
	}
	if c.DenyCreate != nil {
		add(DenyCreateFlag.Name, strconv.FormatBool(*c.DenyCreate))
	}
	if len(c.BlockCall) > 0 {
		add(BlockCallFlag.Name, c.BlockCall...)
	}
	if c.CallTrace != nil {
		add(CallTraceFlag.Name, strconv.FormatBool(*c.CallTrace))
	}

	for _, cur := range settings {
		if context.IsSet(cur.name) {
			continue
		}
		for _, value := range cur.values {
			if err := context.Set(cur.name, value); err != nil {
				return fmt.Errorf("invalid value %q for %s in config file: %w", value, cur.name, err)
			}
		}
	}
	return nil
}
