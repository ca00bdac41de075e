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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/Vigil/go/tosca"
)

func TestParseHex(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []byte
		fails bool
	}{
		"empty":          {input: "", want: nil},
		"empty prefixed": {input: "0x", want: nil},
		"plain":          {input: "6001", want: []byte{0x60, 0x01}},
		"prefixed":       {input: "0x6001", want: []byte{0x60, 0x01}},
		"upper prefix":   {input: "0XFF", want: []byte{0xff}},
		"odd length":     {input: "0x600", fails: true},
		"invalid":        {input: "0xgg", fails: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHex(test.input)
			if test.fails {
				if err == nil {
					t.Errorf("expected an error, got %x", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(test.want, got) {
				t.Errorf("unexpected result, wanted %x, got %x", test.want, got)
			}
		})
	}
}

func TestParseAddress(t *testing.T) {
	got, err := ParseAddress("0x000000000000000000000000000000000000000b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (tosca.Address{19: 0xb}); want != got {
		t.Errorf("unexpected address, wanted %v, got %v", want, got)
	}
	if _, err := ParseAddress("0x0b"); err == nil {
		t.Errorf("expected an error for a short address")
	}
}

func TestLoadConfig_ReadsAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
Gas = 5000
Input = "0x01"
Value = 7
Revision = "London"
Trace = true
Stats = false
Verbosity = 4
Repeat = 10
DenyCreate = true
BlockCall = ["0x000000000000000000000000000000000000000b"]
CallTrace = true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Gas == nil || *config.Gas != 5000 {
		t.Errorf("unexpected gas %v", config.Gas)
	}
	if config.Revision == nil || *config.Revision != "London" {
		t.Errorf("unexpected revision %v", config.Revision)
	}
	if config.Stats == nil || *config.Stats {
		t.Errorf("unexpected stats %v", config.Stats)
	}
	if config.Repeat == nil || *config.Repeat != 10 {
		t.Errorf("unexpected repeat %v", config.Repeat)
	}
	if len(config.BlockCall) != 1 {
		t.Errorf("unexpected blocked calls %v", config.BlockCall)
	}
	if config.CallTrace == nil || !*config.CallTrace {
		t.Errorf("unexpected call trace %v", config.CallTrace)
	}
}

func TestLoadConfig_UnsetFieldsStayNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("Trace = true\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Gas != nil || config.Input != nil || config.BlockCall != nil {
		t.Errorf("unset fields should stay nil: %+v", config)
	}
}

func TestLoadConfig_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("Speed = 12\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected an error for an unknown field")
	}
}
