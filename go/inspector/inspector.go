// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package inspector defines the Inspector interface through which hosts
// observe and selectively override the execution events of a transaction,
// together with a set of reusable inspector implementations.
package inspector

import "github.com/Fantom-foundation/Vigil/go/tosca"

//go:generate mockgen -source inspector.go -destination inspector_mock.go -package inspector

// Inspector is a set of hooks invoked at fixed points of the execution of a
// transaction. All hooks are called synchronously from the single goroutine
// running the transaction and are given exclusive access to the shared
// context for the duration of the call. Implementations should embed
// NoOpInspector and override only the hooks they need.
//
// A panic raised by a hook is not recovered and aborts the whole execution.
type Inspector interface {
	// InitializeInterp is called once per executed frame, before its first
	// instruction.
	InitializeInterp(ctx *tosca.EvmContext, interp tosca.InterpreterState)

	// Step is called immediately before each instruction.
	Step(ctx *tosca.EvmContext, interp tosca.InterpreterState)

	// StepEnd is called immediately after each instruction, including
	// halting and failing ones.
	StepEnd(ctx *tosca.EvmContext, interp tosca.InterpreterState)

	// Log is called whenever the executed code emits a log.
	Log(ctx *tosca.EvmContext, address tosca.Address, topics []tosca.Hash, data tosca.Data)

	// Call is called before a call frame is entered. A non-nil result is
	// taken as the outcome of the call and its execution is skipped.
	Call(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult

	// CallEnd is called after a call frame, real or short-circuited, has
	// completed. The returned result replaces the given one.
	CallEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult

	// Create is called before a create frame is entered. A non-nil outcome
	// is taken as the outcome of the creation and its execution is skipped.
	Create(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome

	// CreateEnd is called after a create frame has completed. The returned
	// result and address replace the given ones; a nil address denies the
	// creation.
	CreateEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address)
}

// NoOpInspector implements all hooks of the Inspector interface as no-ops
// or identity functions.
type NoOpInspector struct{}

func (NoOpInspector) InitializeInterp(*tosca.EvmContext, tosca.InterpreterState) {}

func (NoOpInspector) Step(*tosca.EvmContext, tosca.InterpreterState) {}

func (NoOpInspector) StepEnd(*tosca.EvmContext, tosca.InterpreterState) {}

func (NoOpInspector) Log(*tosca.EvmContext, tosca.Address, []tosca.Hash, tosca.Data) {}

func (NoOpInspector) Call(*tosca.EvmContext, *tosca.CallInputs) *tosca.ExecutionResult {
	return nil
}

func (NoOpInspector) CallEnd(_ *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	return result
}

func (NoOpInspector) Create(*tosca.EvmContext, *tosca.CreateInputs) *tosca.CreateOutcome {
	return nil
}

func (NoOpInspector) CreateEnd(_ *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	return result, address
}
