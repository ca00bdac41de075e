// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package handler

import (
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/tosca"
)

const (
	// MaxCodeSize is the maximum size of deployed contract code (EIP-170).
	MaxCodeSize = 24576

	// CodeDepositGasPerByte is the cost of storing created code.
	CodeDepositGasPerByte = 200

	refundQuotientPreLondon = 2
	refundQuotient          = 5
)

// Mainnet returns the default handler. Call and Create never short-circuit,
// logs are emitted into the transaction context, finished frames are settled
// and handed to their parents, and the gas of the transaction is refunded
// and paid following the rules of the active revision.
func Mainnet() Handler {
	return Handler{
		InitializeInterp:   func(*tosca.EvmContext, tosca.InterpreterState) {},
		Step:               func(*tosca.EvmContext, tosca.InterpreterState) {},
		StepEnd:            func(*tosca.EvmContext, tosca.InterpreterState) {},
		Log:                emitLog,
		Call:               func(*tosca.EvmContext, *tosca.CallInputs) *tosca.ExecutionResult { return nil },
		Create:             func(*tosca.EvmContext, *tosca.CreateInputs) *tosca.CreateOutcome { return nil },
		FrameReturn:        returnFrame,
		CalculateGasRefund: calculateGasRefund,
		ReimburseCaller:    reimburseCaller,
		RewardBeneficiary:  rewardBeneficiary,
	}
}

func emitLog(ctx *tosca.EvmContext, log tosca.Log) {
	ctx.State.EmitLog(log)
}

// returnFrame settles the given finished frame. State changes of failed
// frames are rolled back; the code of successful creations is deployed.
func returnFrame(ctx *tosca.EvmContext, child *tosca.Frame, result tosca.ExecutionResult) (tosca.ExecutionResult, bool) {
	if child.IsCreate() {
		result = deployCode(ctx, child, result)
	}
	if !result.Result.IsOk() {
		ctx.State.RestoreSnapshot(child.Checkpoint)
	}

	parent := child.Parent
	if parent == nil {
		return result, true
	}
	if child.IsCreate() {
		parent.Runner.InsertCreateResult(result, child.CreatedAddress)
	} else {
		parent.Runner.InsertCallResult(result)
	}
	return result, false
}

// deployCode stores the output of a successful creation as the code of the
// created account. Creations without an address, e.g. denied ones, are
// rolled back while keeping their result.
func deployCode(ctx *tosca.EvmContext, child *tosca.Frame, result tosca.ExecutionResult) tosca.ExecutionResult {
	if !result.Result.IsOk() {
		child.CreatedAddress = nil
		return result
	}
	if child.CreatedAddress == nil {
		ctx.State.RestoreSnapshot(child.Checkpoint)
		return result
	}

	code := result.Output
	failure := tosca.Continue
	switch {
	case len(code) > MaxCodeSize:
		failure = tosca.CreateContractSizeLimit
	case ctx.Revision >= tosca.R10_London && len(code) > 0 && code[0] == 0xEF:
		failure = tosca.CreateContractStartingWithEF
	case !result.Gas.RecordCost(tosca.Gas(len(code)) * CodeDepositGasPerByte):
		failure = tosca.OutOfGas
	}
	if failure != tosca.Continue {
		result.Result = failure
		result.Output = nil
		result.Gas.Spend()
		child.CreatedAddress = nil
		return result
	}

	ctx.State.SetCode(*child.CreatedAddress, tosca.Code(code))
	result.Output = nil
	return result
}

func calculateGasRefund(ctx *tosca.EvmContext, gas *tosca.GasCounter) {
	quotient := uint64(refundQuotient)
	if ctx.Revision < tosca.R10_London {
		quotient = refundQuotientPreLondon
	}
	gas.SetFinalRefund(quotient)
}

// reimburseCaller pays the unused and refunded gas back to the origin of the
// transaction.
func reimburseCaller(ctx *tosca.EvmContext, gas *tosca.GasCounter) error {
	if gas.Refunded() < 0 {
		return fmt.Errorf("negative refund of %d", gas.Refunded())
	}
	returned := uint64(gas.Remaining()) + uint64(gas.Refunded())
	balance := ctx.State.GetBalance(ctx.Origin)
	ctx.State.SetBalance(ctx.Origin, tosca.Add(balance, ctx.GasPrice.Scale(returned)))
	return nil
}

// rewardBeneficiary pays the priority fee of the consumed gas to the
// coinbase of the block.
func rewardBeneficiary(ctx *tosca.EvmContext, gas *tosca.GasCounter) error {
	if ctx.GasPrice.Cmp(ctx.BaseFee) < 0 {
		return fmt.Errorf("gas price %v below base fee %v", ctx.GasPrice, ctx.BaseFee)
	}
	tip := tosca.Sub(ctx.GasPrice, ctx.BaseFee)
	used := uint64(tosca.SaturatingSub(gas.Spent(), tosca.Gas(gas.Refunded())))
	balance := ctx.State.GetBalance(ctx.Coinbase)
	ctx.State.SetBalance(ctx.Coinbase, tosca.Add(balance, tip.Scale(used)))
	return nil
}
