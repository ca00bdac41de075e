// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package inspector_test

import (
	"testing"

	"github.com/Fantom-foundation/Vigil/go/handler"
	"github.com/Fantom-foundation/Vigil/go/inspector"
	_ "github.com/Fantom-foundation/Vigil/go/interpreter/stepvm"
	"github.com/Fantom-foundation/Vigil/go/processor/floria"
	"github.com/Fantom-foundation/Vigil/go/state"
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
)

var (
	caller   = tosca.Address{0x10}
	contract = tosca.Address{}
	coinbase = tosca.Address{0xc0}
)

// runTransaction executes a call of the given contract code with the given
// inspectors attached to the Mainnet handler, in registration order.
func runTransaction(t *testing.T, code []byte, gasLimit tosca.Gas, accounts state.Accounts, inspectors ...inspector.Inspector) (tosca.Receipt, *state.Context) {
	t.Helper()
	if accounts == nil {
		accounts = state.Accounts{}
	}
	if code != nil {
		accounts[contract] = state.Account{Code: code}
	}
	recipient := contract
	return run(t, tosca.Transaction{
		Sender:    caller,
		Recipient: &recipient,
		GasLimit:  gasLimit,
		GasPrice:  tosca.NewValue(1),
	}, accounts, inspectors...)
}

// run executes the given transaction on top of the given accounts. The
// caller is funded.
func run(t *testing.T, transaction tosca.Transaction, accounts state.Accounts, inspectors ...inspector.Inspector) (tosca.Receipt, *state.Context) {
	t.Helper()
	interpreter, err := tosca.NewInterpreter("stepvm")
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}

	accounts[caller] = state.Account{Balance: tosca.NewValue(1_000_000_000)}
	context := state.New(accounts)

	registrants := make([]handler.Registrant, 0, len(inspectors))
	for _, cur := range inspectors {
		registrants = append(registrants, handler.InspectorHandle{Inspector: cur})
	}
	processor := floria.NewProcessor(interpreter, handler.BuildMainnet(registrants...))

	receipt, err := processor.Run(tosca.BlockParameters{
		BlockNumber: 1,
		Coinbase:    coinbase,
		GasLimit:    30_000_000,
		Revision:    tosca.R13_Cancun,
	}, transaction, context)
	if err != nil {
		t.Fatalf("failed to run transaction: %v", err)
	}
	return receipt, context
}

// callCode builds code calling the target with all available gas. The
// success flag of the call is discarded.
func callCode(target tosca.Address) []byte {
	code := []byte{
		byte(vm.PUSH1), 0,
		byte(vm.PUSH1), 0,
		byte(vm.PUSH1), 0,
		byte(vm.PUSH1), 0,
		byte(vm.PUSH1), 0,
		byte(vm.PUSH20),
	}
	code = append(code, target[:]...)
	return append(code, byte(vm.GAS), byte(vm.CALL), byte(vm.POP))
}

// traceEntry is a step of the outermost frame as seen by a GasInspector.
type traceEntry struct {
	pc  uint64
	gas tosca.Gas
}

// gasTracer records the program counter of every instruction of the
// outermost frame together with the gas remaining after it.
type gasTracer struct {
	inspector.GasInspector
	pc    uint64
	trace []traceEntry
}

func (g *gasTracer) Step(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	g.GasInspector.Step(ctx, interp)
	g.pc = interp.ProgramCounter()
}

func (g *gasTracer) StepEnd(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	g.GasInspector.StepEnd(ctx, interp)
	if ctx.Depth == 0 {
		g.trace = append(g.trace, traceEntry{g.pc, g.GasRemaining()})
	}
}

func TestGasInspector_TracksRemainingGasThroughJump(t *testing.T) {
	code := []byte{
		byte(vm.PUSH1), 1,
		byte(vm.PUSH1), 0xb,
		byte(vm.JUMPI),
		byte(vm.PUSH1), 1,
		byte(vm.PUSH1), 1,
		byte(vm.PUSH1), 1,
		byte(vm.JUMPDEST),
		byte(vm.STOP),
	}

	tracer := &gasTracer{}
	receipt, _ := runTransaction(t, code, 21100, nil, tracer)
	if !receipt.Success {
		t.Fatalf("transaction should succeed")
	}

	want := []traceEntry{
		{0, 97},
		{2, 94},
		{4, 84},
		{11, 83},
		{12, 83},
	}
	if len(tracer.trace) != len(want) {
		t.Fatalf("unexpected trace, wanted %v, got %v", want, tracer.trace)
	}
	for i := range want {
		if want[i] != tracer.trace[i] {
			t.Errorf("unexpected trace entry %d, wanted %v, got %v", i, want[i], tracer.trace[i])
		}
	}
	if want, got := tosca.Gas(21017), receipt.GasUsed; want != got {
		t.Errorf("unexpected gas used, wanted %d, got %d", want, got)
	}
}

// callProbe captures the results of nested calls after the inspectors
// registered after it have processed them.
type callProbe struct {
	inspector.NoOpInspector
	gas     *inspector.GasInspector
	results []tosca.ExecutionResult
	tracked []tosca.Gas
}

func (p *callProbe) CallEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	if ctx.Depth > 0 {
		p.results = append(p.results, result)
		p.tracked = append(p.tracked, p.gas.GasRemaining())
	}
	return result
}

func TestGasInspector_FailedNestedCallForfeitsGas(t *testing.T) {
	failing := tosca.Address{0xf}
	gas := &inspector.GasInspector{}
	probe := &callProbe{gas: gas}

	receipt, _ := runTransaction(t, callCode(failing), 100_000, state.Accounts{
		failing: {Code: []byte{byte(vm.INVALID)}},
	}, probe, gas)
	if !receipt.Success {
		t.Fatalf("outer call should succeed")
	}

	if len(probe.results) != 1 {
		t.Fatalf("expected one nested call, got %d", len(probe.results))
	}
	result := probe.results[0]
	if want, got := tosca.OpcodeNotFound, result.Result; want != got {
		t.Errorf("unexpected nested result, wanted %v, got %v", want, got)
	}
	if got := result.Gas.Remaining(); got != 0 {
		t.Errorf("failed call should forfeit its gas, %d remaining", got)
	}
	if got := probe.tracked[0]; got != 0 {
		t.Errorf("tracked remaining gas should be zero, got %d", got)
	}
}
