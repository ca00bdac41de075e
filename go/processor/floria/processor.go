// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package floria implements a transaction processor running the frames of a
// transaction on an explicit frame stack. All execution events are
// dispatched through the slots of a handler.Handler.
package floria

import (
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/handler"
	"github.com/Fantom-foundation/Vigil/go/tosca"
)

const (
	TxGas                     = 21_000
	TxGasContractCreation     = 53_000
	TxDataNonZeroGasEIP2028   = 16
	TxDataZeroGasEIP2028      = 4
	TxAccessListAddressGas    = 2400
	TxAccessListStorageKeyGas = 1900
)

// Processor runs transactions using a frame-at-a-time interpreter.
type Processor struct {
	interpreter tosca.Interpreter
	handler     handler.Handler
}

var _ tosca.Processor = (*Processor)(nil)

// NewProcessor creates a processor executing code with the given
// interpreter and dispatching events through the given handler. Unset
// handler slots default to their Mainnet behavior.
func NewProcessor(interpreter tosca.Interpreter, h handler.Handler) *Processor {
	return &Processor{
		interpreter: interpreter,
		handler:     handler.WithDefaults(h),
	}
}

// Run executes the given transaction. Invalid transactions produce an
// unsuccessful receipt consuming the full gas limit without modifying the
// state. Errors are only returned if a collaborator failed.
func (p *Processor) Run(
	blockParams tosca.BlockParameters,
	transaction tosca.Transaction,
	context tosca.TransactionContext,
) (tosca.Receipt, error) {
	errorReceipt := tosca.Receipt{
		Success: false,
		GasUsed: transaction.GasLimit,
	}

	if err := checkNonce(transaction, context); err != nil {
		return errorReceipt, nil
	}
	intrinsicGas := setupGasBilling(transaction)
	if transaction.GasLimit < intrinsicGas {
		return errorReceipt, nil
	}
	if err := buyGas(transaction, context); err != nil {
		return errorReceipt, nil
	}
	isCreate := transaction.IsCreate()
	if !isCreate {
		if err := incrementNonce(context, transaction.Sender); err != nil {
			return errorReceipt, nil
		}
	}

	ctx := &tosca.EvmContext{
		BlockParameters: blockParams,
		TransactionParameters: tosca.TransactionParameters{
			Origin:   transaction.Sender,
			GasPrice: transaction.GasPrice,
		},
		State: context,
	}
	gas := tosca.NewGasCounter(transaction.GasLimit)
	gas.RecordCost(intrinsicGas)

	exec := &execution{
		interpreter: p.interpreter,
		handler:     p.handler,
		ctx:         ctx,
	}
	var root request
	if isCreate {
		root.create = &tosca.CreateInputs{
			Kind:     tosca.Create,
			Sender:   transaction.Sender,
			Value:    transaction.Value,
			InitCode: tosca.Code(transaction.Input),
			Gas:      gas.Remaining(),
		}
	} else {
		root.call = &tosca.CallInputs{
			Kind:        tosca.Call,
			Sender:      transaction.Sender,
			Recipient:   *transaction.Recipient,
			CodeAddress: *transaction.Recipient,
			Value:       transaction.Value,
			Input:       transaction.Input,
			Gas:         gas.Remaining(),
		}
	}
	gas.RecordCost(gas.Remaining())

	result, created, err := exec.run(root)
	if err != nil {
		return tosca.Receipt{}, err
	}

	if result.Result.IsOk() || result.Result.IsRevert() {
		gas.EraseCost(result.Gas.Remaining())
	}
	if result.Result.IsOk() {
		gas.RecordRefund(result.Gas.Refunded())
	}
	ctx.Depth = 0
	p.handler.CalculateGasRefund(ctx, &gas)
	if err := p.handler.ReimburseCaller(ctx, &gas); err != nil {
		return tosca.Receipt{}, fmt.Errorf("failed to reimburse caller: %w", err)
	}
	if err := p.handler.RewardBeneficiary(ctx, &gas); err != nil {
		return tosca.Receipt{}, fmt.Errorf("failed to reward beneficiary: %w", err)
	}

	success := result.Result.IsOk()
	if isCreate {
		success = success && created != nil
	}
	return tosca.Receipt{
		Success:         success,
		Output:          result.Output,
		ContractAddress: created,
		GasUsed:         tosca.SaturatingSub(gas.Spent(), tosca.Gas(gas.Refunded())),
		Logs:            context.GetLogs(),
	}, nil
}

func setupGasBilling(transaction tosca.Transaction) tosca.Gas {
	var gas tosca.Gas
	if transaction.IsCreate() {
		gas = TxGasContractCreation
	} else {
		gas = TxGas
	}

	nonZeroBytes := tosca.Gas(0)
	for _, inputByte := range transaction.Input {
		if inputByte != 0 {
			nonZeroBytes++
		}
	}
	zeroBytes := tosca.Gas(len(transaction.Input)) - nonZeroBytes
	gas += zeroBytes * TxDataZeroGasEIP2028
	gas += nonZeroBytes * TxDataNonZeroGasEIP2028

	gas += tosca.Gas(len(transaction.AccessList)) * TxAccessListAddressGas
	for _, accessTuple := range transaction.AccessList {
		gas += tosca.Gas(len(accessTuple.Keys)) * TxAccessListStorageKeyGas
	}
	return gas
}

func checkNonce(transaction tosca.Transaction, context tosca.TransactionContext) error {
	stateNonce := context.GetNonce(transaction.Sender)
	if transaction.Nonce != stateNonce {
		return fmt.Errorf("nonce mismatch: %v != %v", transaction.Nonce, stateNonce)
	}
	return nil
}

// buyGas charges the sender for the full gas limit. The sender must also be
// able to cover the transferred value.
func buyGas(transaction tosca.Transaction, context tosca.TransactionContext) error {
	gas := transaction.GasPrice.Scale(uint64(transaction.GasLimit))
	required := tosca.Add(gas, transaction.Value)
	if required.Cmp(gas) < 0 {
		return fmt.Errorf("overflow of required balance")
	}

	senderBalance := context.GetBalance(transaction.Sender)
	if senderBalance.Cmp(required) < 0 {
		return fmt.Errorf("insufficient balance: %v < %v", senderBalance, required)
	}
	context.SetBalance(transaction.Sender, tosca.Sub(senderBalance, gas))
	return nil
}
