// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package floria

import (
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/handler"
	"github.com/Fantom-foundation/Vigil/go/tosca"

	// geth dependencies
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MaxRecursiveDepth is the maximum depth of a frame. Frames requested
// beyond it fail with CallTooDeep.
const MaxRecursiveDepth = 1024

var emptyCodeHash = tosca.Hash(crypto.Keccak256(nil))

// request is a pending call or create; exactly one of the fields is set.
type request struct {
	call   *tosca.CallInputs
	create *tosca.CreateInputs
}

// execution runs the frames of a single transaction. Frames are kept on an
// explicit stack linked through tosca.Frame.Parent; only the innermost frame
// is executing at any time.
type execution struct {
	interpreter tosca.Interpreter
	handler     handler.Handler
	ctx         *tosca.EvmContext
}

// run executes the given root request and all frames it spawns. It returns
// the settled result of the root frame and the address of the contract
// created by it, if any.
func (e *execution) run(root request) (tosca.ExecutionResult, *tosca.Address, error) {
	current, err := e.enter(nil, root)
	if err != nil {
		return tosca.ExecutionResult{}, nil, err
	}
	rootFrame := current.frame
	for !current.done {
		frame := current.frame
		e.ctx.Depth = frame.Depth
		action := frame.Runner.Run(e.ctx, e.handler)
		switch action.Kind {
		case tosca.ActionCall:
			current, err = e.enter(frame, request{call: action.Call})
		case tosca.ActionCreate:
			current, err = e.enter(frame, request{create: action.Create})
		default:
			current = e.leave(frame, action.Result)
		}
		if err != nil {
			return tosca.ExecutionResult{}, nil, err
		}
	}
	return current.result, rootFrame.CreatedAddress, nil
}

// position describes what to do next: continue running frame, or, if done
// is set, report the final result of the root frame.
type position struct {
	frame  *tosca.Frame
	result tosca.ExecutionResult
	done   bool
}

// leave settles a finished frame through the FrameReturn slot. Execution
// continues in the parent frame, which has received the result.
func (e *execution) leave(child *tosca.Frame, result tosca.ExecutionResult) position {
	e.ctx.Depth = child.Depth
	final, isRoot := e.handler.FrameReturn(e.ctx, child, result)
	if isRoot || child.Parent == nil {
		return position{frame: child, result: final, done: true}
	}
	return position{frame: child.Parent}
}

func (e *execution) enter(parent *tosca.Frame, req request) (position, error) {
	if req.create != nil {
		return e.enterCreate(parent, req.create)
	}
	return e.enterCall(parent, req.call)
}

func (e *execution) enterCall(parent *tosca.Frame, inputs *tosca.CallInputs) (position, error) {
	state := e.ctx.State
	checkpoint := state.CreateSnapshot()
	e.ctx.Depth = inputs.Depth
	res := e.handler.Call(e.ctx, inputs)

	// The frame record reflects the inputs as left by the Call slot.
	child := &tosca.Frame{
		Kind:       inputs.Kind,
		Depth:      inputs.Depth,
		Sender:     inputs.Sender,
		Recipient:  inputs.Recipient,
		Checkpoint: checkpoint,
		Parent:     parent,
	}
	if res != nil {
		return e.leave(child, *res), nil
	}

	if inputs.Depth > MaxRecursiveDepth {
		return e.leave(child, failed(tosca.CallTooDeep, inputs.Gas)), nil
	}
	if inputs.TransfersValue() {
		if !canTransferValue(state, inputs.Value, inputs.Sender, &inputs.Recipient) {
			return e.leave(child, failed(tosca.OutOfFunds, inputs.Gas)), nil
		}
		transferValue(state, inputs.Value, inputs.Sender, inputs.Recipient)
	}

	code := state.GetCode(inputs.CodeAddress)
	if len(code) == 0 {
		return e.leave(child, succeeded(inputs.Gas)), nil
	}
	codeHash := state.GetCodeHash(inputs.CodeAddress)

	runner, err := e.interpreter.NewRunner(tosca.Parameters{
		BlockParameters:       e.ctx.BlockParameters,
		TransactionParameters: e.ctx.TransactionParameters,
		Kind:                  inputs.Kind,
		Static:                inputs.Static,
		Depth:                 inputs.Depth,
		Gas:                   inputs.Gas,
		Recipient:             inputs.Recipient,
		Sender:                inputs.Sender,
		Input:                 inputs.Input,
		Value:                 inputs.Value,
		CodeHash:              &codeHash,
		Code:                  code,
	})
	if err != nil {
		return position{}, fmt.Errorf("failed to create runner: %w", err)
	}
	return e.start(child, runner), nil
}

func (e *execution) enterCreate(parent *tosca.Frame, inputs *tosca.CreateInputs) (position, error) {
	state := e.ctx.State
	checkpoint := state.CreateSnapshot()
	e.ctx.Depth = inputs.Depth
	outcome := e.handler.Create(e.ctx, inputs)

	child := &tosca.Frame{
		Kind:       inputs.Kind,
		Depth:      inputs.Depth,
		Sender:     inputs.Sender,
		Checkpoint: checkpoint,
		Parent:     parent,
	}
	if outcome != nil {
		child.CreatedAddress = outcome.Address
		return e.leave(child, outcome.Result), nil
	}

	if inputs.Depth > MaxRecursiveDepth {
		return e.leave(child, failed(tosca.CallTooDeep, inputs.Gas)), nil
	}
	if !canTransferValue(state, inputs.Value, inputs.Sender, nil) {
		return e.leave(child, failed(tosca.OutOfFunds, inputs.Gas)), nil
	}
	nonce := state.GetNonce(inputs.Sender)
	if err := incrementNonce(state, inputs.Sender); err != nil {
		return e.leave(child, failed(tosca.NonceOverflow, inputs.Gas)), nil
	}
	// The nonce increment of the sender survives failures of the creation.
	child.Checkpoint = state.CreateSnapshot()

	codeHash := hashCode(inputs.InitCode)
	address := createAddress(inputs.Kind, inputs.Sender, nonce, inputs.Salt, codeHash)
	child.Recipient = address

	if state.GetNonce(address) != 0 ||
		(state.GetCodeHash(address) != (tosca.Hash{}) &&
			state.GetCodeHash(address) != emptyCodeHash) {
		return e.leave(child, failed(tosca.CreateCollision, inputs.Gas)), nil
	}
	child.CreatedAddress = &address
	state.SetNonce(address, 1)
	transferValue(state, inputs.Value, inputs.Sender, address)

	if len(inputs.InitCode) == 0 {
		return e.leave(child, succeeded(inputs.Gas)), nil
	}
	runner, err := e.interpreter.NewRunner(tosca.Parameters{
		BlockParameters:       e.ctx.BlockParameters,
		TransactionParameters: e.ctx.TransactionParameters,
		Kind:                  inputs.Kind,
		Depth:                 inputs.Depth,
		Gas:                   inputs.Gas,
		Recipient:             address,
		Sender:                inputs.Sender,
		Value:                 inputs.Value,
		CodeHash:              &codeHash,
		Code:                  inputs.InitCode,
	})
	if err != nil {
		return position{}, fmt.Errorf("failed to create runner: %w", err)
	}
	return e.start(child, runner), nil
}

// start installs the runner of a frame that is about to execute its first
// instruction.
func (e *execution) start(child *tosca.Frame, runner tosca.Runner) position {
	child.Runner = runner
	e.ctx.Depth = child.Depth
	e.handler.InitializeInterp(e.ctx, runner)
	return position{frame: child}
}

func failed(result tosca.InstructionResult, gas tosca.Gas) tosca.ExecutionResult {
	return tosca.ExecutionResult{Result: result, Gas: tosca.NewGasCounter(gas)}
}

func succeeded(gas tosca.Gas) tosca.ExecutionResult {
	return tosca.ExecutionResult{Result: tosca.Stop, Gas: tosca.NewGasCounter(gas)}
}

func hashCode(code tosca.Code) tosca.Hash {
	return tosca.Hash(crypto.Keccak256(code))
}

func createAddress(
	kind tosca.CallKind,
	sender tosca.Address,
	nonce uint64,
	salt tosca.Hash,
	initHash tosca.Hash,
) tosca.Address {
	if kind == tosca.Create {
		return tosca.Address(crypto.CreateAddress(common.Address(sender), nonce))
	}
	return tosca.Address(crypto.CreateAddress2(common.Address(sender), common.Hash(salt), initHash[:]))
}

func canTransferValue(
	context tosca.WorldState,
	value tosca.Value,
	sender tosca.Address,
	recipient *tosca.Address,
) bool {
	if value == (tosca.Value{}) {
		return true
	}

	senderBalance := context.GetBalance(sender)
	if senderBalance.Cmp(value) < 0 {
		return false
	}

	if recipient == nil || sender == *recipient {
		return true
	}

	receiverBalance := context.GetBalance(*recipient)
	updatedBalance := tosca.Add(receiverBalance, value)
	if updatedBalance.Cmp(receiverBalance) < 0 || updatedBalance.Cmp(value) < 0 {
		return false
	}

	return true
}

func incrementNonce(context tosca.WorldState, address tosca.Address) error {
	nonce := context.GetNonce(address)
	if nonce+1 < nonce {
		return fmt.Errorf("nonce overflow")
	}
	context.SetNonce(address, nonce+1)
	return nil
}

// transferValue moves value from sender to recipient. It must only be
// called after canTransferValue succeeded.
func transferValue(
	context tosca.WorldState,
	value tosca.Value,
	sender tosca.Address,
	recipient tosca.Address,
) {
	if value == (tosca.Value{}) || sender == recipient {
		return
	}

	senderBalance := context.GetBalance(sender)
	receiverBalance := context.GetBalance(recipient)
	context.SetBalance(sender, tosca.Sub(senderBalance, value))
	context.SetBalance(recipient, tosca.Add(receiverBalance, value))
}
