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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// addCode adds 1 and 2 and returns the 32 byte result.
const addCode = "600160020160005260206000f3"

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"vigil", "run"}, args...))
	return stdout.String(), stderr.String(), err
}

func outputLine(t *testing.T, stdout string) string {
	t.Helper()
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "Output:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Output:"))
		}
	}
	t.Fatalf("no output line found in:\n%s", stdout)
	return ""
}

func TestRun_PrintsReceipt(t *testing.T) {
	stdout, _, err := runApp(t, addCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Status:   success") {
		t.Errorf("unexpected status:\n%s", stdout)
	}
	if output := outputLine(t, stdout); len(output) != 66 || !strings.HasSuffix(output, "03") {
		t.Errorf("unexpected output %s", output)
	}
	if !strings.Contains(stdout, "Gas used: 21024") {
		t.Errorf("unexpected gas usage:\n%s", stdout)
	}
}

func TestRun_RejectsInvalidArguments(t *testing.T) {
	tests := map[string][]string{
		"no code":          {},
		"two codes":        {"00", "00"},
		"invalid hex":      {"0xzz"},
		"odd hex":          {"600"},
		"unknown revision": {"--revision", "Frontier", addCode},
		"bad verbosity":    {"--verbosity", "9", addCode},
		"bad blocked call": {"--block-call", "0x12", addCode},
		"bad input":        {"--input", "xyz", addCode},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := runApp(t, args...); err == nil {
				t.Errorf("expected an error for arguments %v", args)
			}
		})
	}
}

func TestRun_TracePrintsEveryStep(t *testing.T) {
	stdout, _, err := runApp(t, "--trace", "6001600201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := 2, strings.Count(stdout, "PUSH1"); want != got {
		t.Errorf("unexpected number of PUSH1 rows, wanted %d, got %d:\n%s", want, got, stdout)
	}
	for _, want := range []string{"Trace:", "ADD", "STOP"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output does not contain %q:\n%s", want, stdout)
		}
	}
}

func TestRun_StatisticsAndRepetitions(t *testing.T) {
	stdout, _, err := runApp(t, "--stats", "--repeat", "3", "6001600201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Counts accumulate over all runs: 3 times PUSH1 PUSH1 ADD STOP.
	for _, want := range []string{"Instructions (3 runs):", "Pairs:", "PUSH1", "50.00%", " 12 ", "Executed 3 runs", "runs per second"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output does not contain %q:\n%s", want, stdout)
		}
	}
}

func TestRun_CallTraceIsPrintedAsJson(t *testing.T) {
	stdout, _, err := runApp(t, "--calltrace", addCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Call trace:", `"type": "call"`, `"result": "Return"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output does not contain %q:\n%s", want, stdout)
		}
	}
}

// callFlagCode calls account 0x..0b and returns the success flag.
const callFlagCode = "6000600060006000600073" + "000000000000000000000000000000000000000b" + "5af160005260206000f3"

func TestRun_BlockedCallsAreReverted(t *testing.T) {
	tests := map[string]struct {
		args []string
		flag string
	}{
		"not blocked": {nil, "01"},
		"blocked":     {[]string{"--block-call", "0x000000000000000000000000000000000000000b"}, "00"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := runApp(t, append(test.args, callFlagCode)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output := outputLine(t, stdout); !strings.HasSuffix(output, test.flag) {
				t.Errorf("unexpected output %s, wanted flag %s", output, test.flag)
			}
		})
	}
}

// createCode creates an empty contract and returns its address.
const createCode = "600060006000f060005260206000f3"

func TestRun_DeniedCreationsReturnZeroAddress(t *testing.T) {
	stdout, _, err := runApp(t, createCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output := outputLine(t, stdout); output == "0x"+strings.Repeat("0", 64) {
		t.Errorf("creation should produce an address, got %s", output)
	}

	stdout, _, err = runApp(t, "--deny-create", createCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := "0x"+strings.Repeat("0", 64), outputLine(t, stdout); want != got {
		t.Errorf("denied creation should produce zero address, got %s", got)
	}
}

func TestRun_DebugVerbosityLogsFrames(t *testing.T) {
	_, stderr, err := runApp(t, "--verbosity", "4", addCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Entering call", "Starting frame", "Leaving call", "Execution finished"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("log output does not contain %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "op=ADD") {
		t.Errorf("steps should only be logged at trace level:\n%s", stderr)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRun_ConfigFileProvidesDefaults(t *testing.T) {
	path := writeConfig(t, "Trace = true\nGas = 100000\n")
	stdout, _, err := runApp(t, "--config", path, "6001600201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Trace:") {
		t.Errorf("config should enable the trace:\n%s", stdout)
	}
}

func TestRun_CommandLineOverridesConfigFile(t *testing.T) {
	path := writeConfig(t, "Gas = 1\n")

	stdout, _, err := runApp(t, "--config", path, addCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Status:   failure") {
		t.Errorf("gas limit from config should be too low:\n%s", stdout)
	}

	stdout, _, err = runApp(t, "--config", path, "--gas", "100000", addCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Status:   success") {
		t.Errorf("gas limit from command line should be used:\n%s", stdout)
	}
}

func TestRun_ConfigFileErrorsAreReportedInFlagOrder(t *testing.T) {
	path := writeConfig(t, "Revision = \"Nope\"\nVerbosity = 9\n")
	for i := 0; i < 10; i++ {
		_, _, err := runApp(t, "--config", path, addCode)
		if err == nil || !strings.Contains(err.Error(), "unknown revision") {
			t.Fatalf("expected the revision error, got %v", err)
		}
	}
}

func TestRun_ConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "Gas = 100000\nColour = \"blue\"\n")
	_, _, err := runApp(t, "--config", path, addCode)
	if err == nil || !strings.Contains(err.Error(), "Colour") {
		t.Errorf("expected error naming the unknown key, got %v", err)
	}
}

func TestRun_MissingConfigFileIsReported(t *testing.T) {
	_, _, err := runApp(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), addCode)
	if err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}
