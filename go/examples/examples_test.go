// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"testing"

	"github.com/Fantom-foundation/Vigil/go/handler"
	"github.com/Fantom-foundation/Vigil/go/inspector"
	"github.com/Fantom-foundation/Vigil/go/interpreter/stepvm"
	"github.com/Fantom-foundation/Vigil/go/processor/floria"
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/ethereum/go-ethereum/crypto"
)

func newProcessor(t *testing.T, inspectors ...inspector.Inspector) tosca.Processor {
	t.Helper()
	interpreter, err := stepvm.NewInterpreter(stepvm.Config{})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	registrants := make([]handler.Registrant, 0, len(inspectors))
	for _, cur := range inspectors {
		registrants = append(registrants, handler.InspectorHandle{Inspector: cur})
	}
	return floria.NewProcessor(interpreter, handler.BuildMainnet(registrants...))
}

func TestExamples_ComputeReferenceResults(t *testing.T) {
	processor := newProcessor(t)
	for _, example := range GetAllExamples() {
		for _, argument := range []int{0, 1, 10, 100} {
			got, err := example.RunOn(processor, argument)
			if err != nil {
				t.Fatalf("failed to run %s(%d): %v", example.Name, argument, err)
			}
			if want := example.RunReference(argument); got.Result != want {
				t.Errorf("unexpected result of %s(%d), wanted %d, got %d", example.Name, argument, want, got.Result)
			}
			if got.UsedGas < 21_000 {
				t.Errorf("unexpected gas usage of %s(%d): %d", example.Name, argument, got.UsedGas)
			}
		}
	}
}

func TestExamples_ObservingInspectorsDoNotChangeResults(t *testing.T) {
	plain := newProcessor(t)
	stats := inspector.NewStatisticsInspector()
	inspected := newProcessor(t, &inspector.GasInspector{}, stats, inspector.NewCallTracer())

	for _, example := range GetAllExamples() {
		want, err := example.RunOn(plain, 5)
		if err != nil {
			t.Fatalf("failed to run %s: %v", example.Name, err)
		}
		got, err := example.RunOn(inspected, 5)
		if err != nil {
			t.Fatalf("failed to run %s with inspectors: %v", example.Name, err)
		}
		if want != got {
			t.Errorf("inspection changed the outcome of %s, wanted %v, got %v", example.Name, want, got)
		}
	}
	if stats.Steps() == 0 {
		t.Errorf("statistics inspector did not observe any steps")
	}
}

func TestExamples_CodeHashIsKeccakOfCode(t *testing.T) {
	for _, example := range GetAllExamples() {
		want := tosca.Hash(crypto.Keccak256Hash(example.Code))
		if got := example.CodeHash(); got != want {
			t.Errorf("unexpected code hash of %s, wanted %x, got %x", example.Name, want, got)
		}
	}
}

func TestExamples_GasBurnerUsesMoreGasForLargerArguments(t *testing.T) {
	processor := newProcessor(t)
	example := GetGasBurnerExample()
	small, err := example.RunOn(processor, 1_000)
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}
	large, err := example.RunOn(processor, 10_000)
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}
	// The first gas reading precedes a checked subtraction, so about 190 gas
	// of the requested amount are not burned by the loop.
	if large.UsedGas < small.UsedGas+8_800 || large.UsedGas > small.UsedGas+9_100 {
		t.Errorf("gas burner did not burn the requested gas, got %d and %d", small.UsedGas, large.UsedGas)
	}
}
