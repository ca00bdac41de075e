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
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/state"
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"golang.org/x/crypto/sha3"
)

// Example is an executable description of a contract and an entry point with a (int)->int signature.
type Example struct {
	exampleSpec
	codeHash tosca.Hash // the hash of the code
}

// exampleSpec specifies a contract and an entry point with a (int)->int signature.
type exampleSpec struct {
	Name      string
	Code      []byte        // some contract code
	function  uint32        // identifier of the function in the contract to be called
	reference func(int) int // a reference function computing the same function
}

func (s exampleSpec) build() Example {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(s.Code)
	var hash tosca.Hash
	hasher.Sum(hash[0:0])
	return Example{
		exampleSpec: s,
		codeHash:    hash,
	}
}

// CodeHash returns the Keccak256 hash of the example's code.
func (e *Example) CodeHash() tosca.Hash {
	return e.codeHash
}

type Result struct {
	Result  int
	UsedGas tosca.Gas
}

var (
	exampleSender   = tosca.Address{0x10}
	exampleContract = tosca.Address{0x20}
)

const exampleGasLimit tosca.Gas = 1_000_000_000

// RunOn runs this example as a call transaction on the given processor,
// using the given argument. The contract is installed in a fresh state.
func (e *Example) RunOn(processor tosca.Processor, argument int) (Result, error) {
	context := state.New(state.Accounts{
		exampleSender:   {Balance: tosca.NewValue(uint64(exampleGasLimit))},
		exampleContract: {Code: e.Code},
	})

	recipient := exampleContract
	receipt, err := processor.Run(tosca.BlockParameters{
		BlockNumber: 1,
		GasLimit:    exampleGasLimit,
		Revision:    tosca.R13_Cancun,
	}, tosca.Transaction{
		Sender:    exampleSender,
		Recipient: &recipient,
		Input:     encodeArgument(e.function, argument),
		GasLimit:  exampleGasLimit,
		GasPrice:  tosca.NewValue(1),
	}, context)
	if err != nil {
		return Result{}, err
	}
	if !receipt.Success {
		return Result{}, fmt.Errorf("execution of %s failed", e.Name)
	}

	result, err := decodeOutput(receipt.Output)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Result:  result,
		UsedGas: receipt.GasUsed,
	}, nil
}

// RunReference runs the reference function of this example to produce the expected result.
func (e *Example) RunReference(argument int) int {
	return e.reference(argument)
}

// GetAllExamples lists all examples of this package.
func GetAllExamples() []Example {
	return []Example{
		GetArithmeticExample(),
		GetGasBurnerExample(),
		GetSha3Example(),
		GetStaticOverheadExample(),
		GetJumpdestAnalysisExample(),
		GetStopAnalysisExample(),
		GetPush1AnalysisExample(),
		GetPush32AnalysisExample(),
	}
}

func encodeArgument(function uint32, arg int) []byte {
	// see details of argument encoding: t.ly/kBl6
	data := make([]byte, 4+32) // parameter is padded up to 32 bytes

	// encode function selector in big-endian format
	data[0] = byte(function >> 24)
	data[1] = byte(function >> 16)
	data[2] = byte(function >> 8)
	data[3] = byte(function)

	// encode argument as a big-endian value
	data[4+28] = byte(arg >> 24)
	data[5+28] = byte(arg >> 16)
	data[6+28] = byte(arg >> 8)
	data[7+28] = byte(arg)

	return data
}

func decodeOutput(output []byte) (int, error) {
	if len(output) != 32 {
		return 0, fmt.Errorf("unexpected length of output; wanted 32, got %d", len(output))
	}
	return (int(output[28]) << 24) | (int(output[29]) << 16) | (int(output[30]) << 8) | (int(output[31]) << 0), nil
}
