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

// EvmContext is the execution context shared by all frames of a transaction.
// It is passed by pointer into every hook and handler slot and must not be
// retained or accessed concurrently.
type EvmContext struct {
	BlockParameters
	TransactionParameters
	State TransactionContext

	// Depth is the call depth of the frame the current event concerns.
	Depth int
}

// CallInputs describes a request to run a (nested) call frame.
type CallInputs struct {
	Kind        CallKind
	Sender      Address // < the caller as seen by the called code
	Recipient   Address // < the account whose storage and balance are used
	CodeAddress Address // < the account whose code is executed
	Value       Value   // < ignored by static calls, considered to be 0
	Input       Data
	Gas         Gas
	Static      bool
	Depth       int
}

// TransfersValue is true if the call moves Value from Sender to Recipient.
func (c *CallInputs) TransfersValue() bool {
	return c.Kind == Call || c.Kind == CallCode
}

// CreateInputs describes a request to run a contract creation frame.
type CreateInputs struct {
	Kind     CallKind // < Create or Create2
	Sender   Address
	Value    Value
	InitCode Code
	Salt     Hash // < only relevant for CREATE2
	Gas      Gas
	Depth    int
}

// CreateOutcome is the result of a creation together with the address of
// the created contract, nil if no contract was created.
type CreateOutcome struct {
	Result  ExecutionResult
	Address *Address
}

// Frame describes one call or create invocation. Frames form a strict stack
// linked through Parent; a frame never outlives its parent.
type Frame struct {
	Kind      CallKind
	Depth     int
	Sender    Address
	Recipient Address

	// CreatedAddress is the address of the contract created by a create
	// frame. It is nil for calls and for failed or denied creations.
	CreatedAddress *Address

	// Checkpoint is the snapshot to restore if the frame fails.
	Checkpoint Snapshot

	Parent *Frame

	// Runner executes the code of the frame. It is nil for frames whose
	// outcome was determined without executing any code.
	Runner Runner
}

func (f *Frame) IsCreate() bool {
	return f.Kind == Create || f.Kind == Create2
}
