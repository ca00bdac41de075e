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

//go:generate mockgen -source processor.go -destination processor_mock.go -package tosca

// Processor executes whole transactions on a transaction context. An
// implementation drives the frames of a transaction on an explicit frame
// stack and routes every frame boundary, log and gas settlement step through
// the slots of its handler, so that registered inspectors observe and may
// rewrite them. Execution failures are reported through the receipt; an
// error is only returned if a handler slot fails.
type Processor interface {
	Run(BlockParameters, Transaction, TransactionContext) (Receipt, error)
}

// Transaction is the input of a single Processor run.
type Transaction struct {
	Sender     Address       // pays for gas and transferred value
	Recipient  *Address      // nil for contract creations
	Nonce      uint64        // must match the nonce of the sender
	Input      Data          // call data, or the init code of a creation
	Value      Value         // transferred to the recipient or the created account
	GasLimit   Gas           // includes the intrinsic gas
	GasPrice   Value         // effective price per unit of gas
	AccessList []AccessTuple // charged as intrinsic gas
}

// IsCreate reports whether the transaction creates a new contract.
func (t *Transaction) IsCreate() bool {
	return t.Recipient == nil
}

// AccessTuple names an account and storage keys a transaction announces to
// access.
type AccessTuple struct {
	Address Address
	Keys    []Key
}

// Receipt summarizes the outcome of a transaction.
type Receipt struct {
	Success         bool     // true if the root frame ended without revert or error
	Output          Data     // output of the root frame
	ContractAddress *Address // the created account of successful creations
	GasUsed         Gas      // spent gas minus the granted refund
	Logs            []Log    // logs of all frames without rolled back ones
}
