// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

import "fmt"

// InstructionResult is the status tag of a frame execution. The values are
// partitioned into three groups: successful halts, reverts (which return the
// unused gas to the caller), and errors (which consume all gas).
type InstructionResult byte

const (
	// ok
	Continue InstructionResult = iota
	Stop
	Return
	SelfDestruct

	// revert
	Revert
	CallTooDeep
	OutOfFunds

	// error
	OutOfGas
	OpcodeNotFound
	InvalidJump
	StackUnderflow
	StackOverflow
	ReturnDataOutOfBounds
	StateChangeDuringStaticCall
	CreateCollision
	CreateContractSizeLimit
	CreateContractStartingWithEF
	CreateInitCodeSizeLimit
	NonceOverflow
	FatalExternalError

	numInstructionResults
)

// IsOk is true for results of successfully completed executions.
func (r InstructionResult) IsOk() bool {
	return r <= SelfDestruct
}

// IsRevert is true for results of executions that were rolled back but keep
// their unused gas.
func (r InstructionResult) IsRevert() bool {
	return Revert <= r && r <= OutOfFunds
}

// IsError is true for results of executions that failed and forfeit their gas.
func (r InstructionResult) IsError() bool {
	return OutOfGas <= r && r < numInstructionResults
}

func (r InstructionResult) String() string {
	switch r {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	case Return:
		return "Return"
	case SelfDestruct:
		return "SelfDestruct"
	case Revert:
		return "Revert"
	case CallTooDeep:
		return "CallTooDeep"
	case OutOfFunds:
		return "OutOfFunds"
	case OutOfGas:
		return "OutOfGas"
	case OpcodeNotFound:
		return "OpcodeNotFound"
	case InvalidJump:
		return "InvalidJump"
	case StackUnderflow:
		return "StackUnderflow"
	case StackOverflow:
		return "StackOverflow"
	case ReturnDataOutOfBounds:
		return "ReturnDataOutOfBounds"
	case StateChangeDuringStaticCall:
		return "StateChangeDuringStaticCall"
	case CreateCollision:
		return "CreateCollision"
	case CreateContractSizeLimit:
		return "CreateContractSizeLimit"
	case CreateContractStartingWithEF:
		return "CreateContractStartingWithEF"
	case CreateInitCodeSizeLimit:
		return "CreateInitCodeSizeLimit"
	case NonceOverflow:
		return "NonceOverflow"
	case FatalExternalError:
		return "FatalExternalError"
	}
	return fmt.Sprintf("InstructionResult(%d)", r)
}

// ExecutionResult is the outcome of running the code of a single frame. It is
// owned by the frame producing it until it is handed to the return path.
type ExecutionResult struct {
	Result InstructionResult
	Output Data
	Gas    GasCounter
}
