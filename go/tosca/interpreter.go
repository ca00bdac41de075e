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

import (
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source interpreter.go -destination interpreter_mock.go -package tosca

// Interpreter is a component capable of executing EVM byte-code one frame at
// a time. Unlike a recursive interpreter, it never performs nested calls on
// its own: whenever the executed code requests a sub-call or a contract
// creation, the frame is suspended and the request is handed to the caller,
// which is responsible for running the nested frame and feeding its result
// back into the suspended one.
// To obtain an Interpreter instance, client code should use NewInterpreter()
// provided by the registry file in this package.
type Interpreter interface {
	// NewRunner prepares the execution of the code provided by the parameters
	// in a fresh frame. An ErrUnsupportedRevision error is returned if the
	// requested revision is not supported by the implementation.
	NewRunner(Parameters) (Runner, error)
}

// Runner executes the code of a single frame. A Runner is owned by exactly
// one frame and must not be used concurrently.
type Runner interface {
	InterpreterState

	// Run executes instructions until the frame halts or requests a nested
	// call or creation. Every instruction is reported to the given hooks.
	Run(ctx *EvmContext, hooks Hooks) Action

	// InsertCallResult resumes a frame suspended by an ActionCall with the
	// result of the nested call.
	InsertCallResult(result ExecutionResult)

	// InsertCreateResult resumes a frame suspended by an ActionCreate with the
	// result of the nested creation. A nil address signals a failed creation.
	InsertCreateResult(result ExecutionResult, address *Address)
}

// Hooks are the observation points an interpreter reports to while stepping
// through the code of a frame.
type Hooks interface {
	OnStep(ctx *EvmContext, state InterpreterState)
	OnStepEnd(ctx *EvmContext, state InterpreterState)
	OnLog(ctx *EvmContext, log Log)
}

// InterpreterState is a read view on the state of a running frame. The
// returned stack and memory slices are only valid for the duration of the
// hook they are passed to.
type InterpreterState interface {
	ProgramCounter() uint64
	CurrentOpCode() vm.OpCode
	Gas() *GasCounter
	Stack() []uint256.Int
	Memory() []byte
	Contract() Address
	Caller() Address
	Depth() int
	IsStatic() bool
}

// ActionKind enumerates the reasons a Runner may stop executing.
type ActionKind byte

const (
	ActionReturn ActionKind = iota // < the frame halted, Result is valid
	ActionCall                     // < the frame requests a nested call
	ActionCreate                   // < the frame requests a contract creation
)

// Action is the outcome of a Runner.Run invocation.
type Action struct {
	Kind   ActionKind
	Result ExecutionResult // < only valid for ActionReturn
	Call   *CallInputs     // < only valid for ActionCall
	Create *CreateInputs   // < only valid for ActionCreate
}

// Parameters summarizes the list of input parameters required for executing
// the code of a frame.
type Parameters struct {
	BlockParameters
	TransactionParameters
	Kind      CallKind
	Static    bool
	Depth     int
	Gas       Gas
	Recipient Address
	Sender    Address
	Input     Data
	Value     Value
	CodeHash  *Hash
	Code      Code
}

// BlockParameters contains information about the current block.
type BlockParameters struct {
	ChainID     Word
	BlockNumber int64
	Timestamp   int64
	Coinbase    Address
	GasLimit    Gas
	PrevRandao  Hash
	BaseFee     Value
	Revision    Revision
}

// TransactionParameters contains information about current transaction.
type TransactionParameters struct {
	Origin   Address
	GasPrice Value
}

// TransactionContext is an interface to access and manipulate the state of the
// the world state in a transaction. All modifications on the world state are
// buffered in a transaction context, which can be snapshot and restored.
// Logs emitted during the transaction are part of the buffered state.
type TransactionContext interface {
	WorldState

	CreateSnapshot() Snapshot
	RestoreSnapshot(Snapshot)

	EmitLog(Log)
	GetLogs() []Log

	// GetBlockHash returns the hash of the block with the given number.
	GetBlockHash(number int64) Hash
}

// Data represents the input or output of contract invocations.
type Data []byte

// Gas represents the type used to represent the Gas values.
type Gas uint64

// Snapshot is a type used to represent a snapshot of the world state in a
// transaction context.
type Snapshot int

// Log is the type summarizing a log message emitted as a side effect of a
// contract execution.
type Log struct {
	Address Address
	Topics  []Hash
	Data    Data
}

// CallKind is an enum enabling the differentiation of the different types
// of recursive contract calls supported in the EVM.
type CallKind int

const (
	Call CallKind = iota
	DelegateCall
	StaticCall
	CallCode
	Create
	Create2
)

// Revision is an enumeration for EVM specification revisions (aka. Hard-Forks).
type Revision int

// The list of revisions supported so far.
const (
	R07_Istanbul Revision = iota
	R09_Berlin
	R10_London
	R11_Paris
	R12_Shanghai
	R13_Cancun
	numRevisions int = iota
)

// Error for runs with unsupported Revision
type ErrUnsupportedRevision struct {
	Revision Revision
}

func (e *ErrUnsupportedRevision) Error() string {
	return fmt.Sprintf("unsupported revision %d", e.Revision)
}
