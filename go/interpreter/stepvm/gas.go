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

const (
	gasQuickStep   tosca.Gas = 2
	gasFastestStep tosca.Gas = 3
	gasFastStep    tosca.Gas = 5
	gasMidStep     tosca.Gas = 8
	gasSlowStep    tosca.Gas = 10
	gasExtStep     tosca.Gas = 20

	gasExpByte       tosca.Gas = 50
	gasCopyWord      tosca.Gas = 3
	gasSha3          tosca.Gas = 30
	gasSha3Word      tosca.Gas = 6
	gasInitCodeWord  tosca.Gas = 2
	gasLog           tosca.Gas = 375
	gasLogTopic      tosca.Gas = 375
	gasLogData       tosca.Gas = 8
	gasCreate        tosca.Gas = 32000
	gasExtAccount    tosca.Gas = 700
	gasSload         tosca.Gas = 800
	gasSelfDestruct  tosca.Gas = 5000
	gasCallValue     tosca.Gas = 9000
	gasCallNewAcct  tosca.Gas = 25000
	gasCallStipend   tosca.Gas = 2300

	gasSstoreSet      tosca.Gas = 20000
	gasSstoreReset    tosca.Gas = 5000
	gasSstoreSentry   tosca.Gas = 2300
	refundSstoreClear           = 15000
)

// maxInitCodeSize is the limit of init code introduced with Shanghai.
const maxInitCodeSize = 2 * 24576

// staticGas returns the constant part of the cost of the given instruction,
// following the Istanbul schedule.
func staticGas(op vm.OpCode) tosca.Gas {
	switch {
	case vm.PUSH1 <= op && op <= vm.PUSH32,
		vm.DUP1 <= op && op <= vm.DUP16,
		vm.SWAP1 <= op && op <= vm.SWAP16:
		return gasFastestStep
	case vm.LOG0 <= op && op <= vm.LOG4:
		return gasLog + gasLogTopic*tosca.Gas(op-vm.LOG0)
	}
	switch op {
	case vm.STOP, vm.RETURN, vm.REVERT, vm.INVALID:
		return 0
	case vm.JUMPDEST:
		return 1
	case vm.ADDRESS, vm.ORIGIN, vm.CALLER, vm.CALLVALUE, vm.CALLDATASIZE,
		vm.CODESIZE, vm.GASPRICE, vm.COINBASE, vm.TIMESTAMP, vm.NUMBER,
		vm.PREVRANDAO, vm.GASLIMIT, vm.CHAINID, vm.RETURNDATASIZE, vm.POP,
		vm.PC, vm.MSIZE, vm.GAS, vm.BASEFEE, vm.PUSH0:
		return gasQuickStep
	case vm.ADD, vm.SUB, vm.LT, vm.GT, vm.SLT, vm.SGT, vm.EQ, vm.ISZERO,
		vm.AND, vm.OR, vm.XOR, vm.NOT, vm.BYTE, vm.SHL, vm.SHR, vm.SAR,
		vm.CALLDATALOAD, vm.CALLDATACOPY, vm.CODECOPY, vm.RETURNDATACOPY,
		vm.MLOAD, vm.MSTORE, vm.MSTORE8:
		return gasFastestStep
	case vm.MUL, vm.DIV, vm.SDIV, vm.MOD, vm.SMOD, vm.SIGNEXTEND, vm.SELFBALANCE:
		return gasFastStep
	case vm.ADDMOD, vm.MULMOD, vm.JUMP:
		return gasMidStep
	case vm.EXP, vm.JUMPI:
		return gasSlowStep
	case vm.BLOCKHASH:
		return gasExtStep
	case vm.SHA3:
		return gasSha3
	case vm.BALANCE, vm.EXTCODESIZE, vm.EXTCODECOPY, vm.EXTCODEHASH,
		vm.CALL, vm.CALLCODE, vm.DELEGATECALL, vm.STATICCALL:
		return gasExtAccount
	case vm.SLOAD:
		return gasSload
	case vm.CREATE, vm.CREATE2:
		return gasCreate
	case vm.SELFDESTRUCT:
		return gasSelfDestruct
	}
	return 0
}

// wordCopyCost returns the per-word cost of copying size bytes.
func wordCopyCost(perWord tosca.Gas, size uint64) tosca.Gas {
	return perWord * tosca.Gas(tosca.SizeInWords(size))
}

// sstoreCost returns the cost and refund of a storage update of the given
// kind (EIP-2200).
func sstoreCost(status tosca.StorageStatus) (tosca.Gas, int64) {
	switch status {
	case tosca.StorageAdded:
		return gasSstoreSet, 0
	case tosca.StorageModified:
		return gasSstoreReset, 0
	case tosca.StorageDeleted:
		return gasSstoreReset, refundSstoreClear
	case tosca.StorageDeletedAdded:
		return gasSload, -refundSstoreClear
	case tosca.StorageModifiedDeleted:
		return gasSload, refundSstoreClear
	case tosca.StorageDeletedRestored:
		return gasSload, -refundSstoreClear + int64(gasSstoreReset-gasSload)
	case tosca.StorageAddedDeleted:
		return gasSload, int64(gasSstoreSet - gasSload)
	case tosca.StorageModifiedRestored:
		return gasSload, int64(gasSstoreReset - gasSload)
	}
	return gasSload, 0
}

// callGas applies the all-but-one-64th rule (EIP-150) to the requested gas.
func callGas(available tosca.Gas, requested *uint256.Int) tosca.Gas {
	limit := available - available/64
	if !requested.IsUint64() || tosca.Gas(requested.Uint64()) > limit {
		return limit
	}
	return tosca.Gas(requested.Uint64())
}
