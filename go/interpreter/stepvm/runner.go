// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package stepvm

import (
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	"github.com/holiman/uint256"
)

type status byte

const (
	statusRunning status = iota
	statusSuspended
	statusHalted
)

type memoryRange struct {
	offset, size uint64
}

// runner executes the code of a single frame, stepping one instruction at a
// time and suspending whenever the code requests a nested call or creation.
type runner struct {
	params    tosca.Parameters
	code      []byte
	jumpDests jumpDests

	pc     uint64
	nextPC uint64
	op     vm.OpCode

	gas        tosca.GasCounter
	stack      *stack
	memory     memory
	returnData tosca.Data
	output     tosca.Data

	status      status
	result      tosca.InstructionResult
	action      tosca.Action
	returnRange memoryRange // < output region of a pending call

	// only valid during Run
	ctx   *tosca.EvmContext
	hooks tosca.Hooks
}

func newRunner(params tosca.Parameters, dests jumpDests) *runner {
	return &runner{
		params:    params,
		code:      params.Code,
		jumpDests: dests,
		gas:       tosca.NewGasCounter(params.Gas),
		stack:     newStack(),
	}
}

func (r *runner) Run(ctx *tosca.EvmContext, hooks tosca.Hooks) tosca.Action {
	switch r.status {
	case statusHalted:
		return tosca.Action{Kind: tosca.ActionReturn, Result: r.executionResult()}
	case statusSuspended:
		return r.action
	}

	r.ctx, r.hooks = ctx, hooks
	defer func() {
		r.ctx, r.hooks = nil, nil
	}()

	for r.status == statusRunning {
		r.step()
	}
	if r.status == statusSuspended {
		return r.action
	}
	return tosca.Action{Kind: tosca.ActionReturn, Result: r.executionResult()}
}

func (r *runner) step() {
	r.op = vm.STOP
	if r.pc < uint64(len(r.code)) {
		r.op = vm.OpCode(r.code[r.pc])
	}
	r.nextPC = r.pc + uint64(r.op.Width())

	if r.hooks != nil {
		r.hooks.OnStep(r.ctx, r)
	}
	res := r.execute()
	if res == tosca.Continue {
		r.pc = r.nextPC
	}
	if r.hooks != nil {
		r.hooks.OnStepEnd(r.ctx, r)
	}
	if res != tosca.Continue {
		r.halt(res)
	}
}

func (r *runner) execute() tosca.InstructionResult {
	inst := instructions[r.op]
	if inst == nil || r.params.Revision < inst.since {
		return tosca.OpcodeNotFound
	}
	size := r.stack.len()
	if size < inst.pops {
		return tosca.StackUnderflow
	}
	if size-inst.pops+inst.pushes > maxStackSize {
		return tosca.StackOverflow
	}
	if !r.gas.RecordCost(staticGas(r.op)) {
		return tosca.OutOfGas
	}
	return inst.exec(r)
}

func (r *runner) suspend(action tosca.Action) {
	r.action = action
	r.status = statusSuspended
}

func (r *runner) halt(result tosca.InstructionResult) {
	r.result = result
	r.status = statusHalted
	if result != tosca.Return && result != tosca.Revert {
		r.output = nil
	}
	returnStack(r.stack)
	r.stack = nil
}

func (r *runner) executionResult() tosca.ExecutionResult {
	return tosca.ExecutionResult{
		Result: r.result,
		Output: r.output,
		Gas:    r.gas,
	}
}

func (r *runner) resume(result tosca.ExecutionResult) {
	if result.Result.IsOk() || result.Result.IsRevert() {
		r.gas.EraseCost(result.Gas.Remaining())
	}
	if result.Result.IsOk() {
		r.gas.RecordRefund(result.Gas.Refunded())
	}
	r.action = tosca.Action{}
	r.status = statusRunning
}

func (r *runner) InsertCallResult(result tosca.ExecutionResult) {
	if r.status != statusSuspended || r.action.Kind != tosca.ActionCall {
		return
	}
	success := r.stack.pushEmpty()
	if result.Result.IsOk() {
		success.SetOne()
	}
	out := r.returnRange
	n := min(out.size, uint64(len(result.Output)))
	copy(r.memory.slice(out.offset, n), result.Output)
	r.returnData = result.Output
	r.returnRange = memoryRange{}
	r.resume(result)
}

func (r *runner) InsertCreateResult(result tosca.ExecutionResult, address *tosca.Address) {
	if r.status != statusSuspended || r.action.Kind != tosca.ActionCreate {
		return
	}
	top := r.stack.pushEmpty()
	if result.Result.IsOk() && address != nil {
		top.SetBytes20(address[:])
	}
	r.returnData = nil
	if result.Result.IsRevert() {
		r.returnData = result.Output
	}
	r.resume(result)
}

func (r *runner) ProgramCounter() uint64 {
	return r.pc
}

func (r *runner) CurrentOpCode() vm.OpCode {
	return r.op
}

func (r *runner) Gas() *tosca.GasCounter {
	return &r.gas
}

func (r *runner) Stack() []uint256.Int {
	if r.stack == nil {
		return nil
	}
	return r.stack.elements()
}

func (r *runner) Memory() []byte {
	return r.memory.store
}

func (r *runner) Contract() tosca.Address {
	return r.params.Recipient
}

func (r *runner) Caller() tosca.Address {
	return r.params.Sender
}

func (r *runner) Depth() int {
	return r.params.Depth
}

func (r *runner) IsStatic() bool {
	return r.params.Static
}
