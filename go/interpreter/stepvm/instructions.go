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
	"math"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	"github.com/holiman/uint256"
	"golang.org/x/exp/slices"
)

// instruction describes the stack effect and the implementation of an
// opcode. Instructions not present in the table are unknown to the
// interpreter.
type instruction struct {
	exec   func(r *runner) tosca.InstructionResult
	pops   int
	pushes int
	since  tosca.Revision
}

var instructions = newInstructionTable()

func newInstructionTable() [256]*instruction {
	var table [256]*instruction
	set := func(op vm.OpCode, pops, pushes int, exec func(r *runner) tosca.InstructionResult) {
		table[op] = &instruction{exec: exec, pops: pops, pushes: pushes}
	}

	set(vm.STOP, 0, 0, func(*runner) tosca.InstructionResult { return tosca.Stop })
	set(vm.ADD, 2, 1, binaryOp((*uint256.Int).Add))
	set(vm.MUL, 2, 1, binaryOp((*uint256.Int).Mul))
	set(vm.SUB, 2, 1, binaryOp((*uint256.Int).Sub))
	set(vm.DIV, 2, 1, binaryOp((*uint256.Int).Div))
	set(vm.SDIV, 2, 1, binaryOp((*uint256.Int).SDiv))
	set(vm.MOD, 2, 1, binaryOp((*uint256.Int).Mod))
	set(vm.SMOD, 2, 1, binaryOp((*uint256.Int).SMod))
	set(vm.ADDMOD, 3, 1, ternaryOp((*uint256.Int).AddMod))
	set(vm.MULMOD, 3, 1, ternaryOp((*uint256.Int).MulMod))
	set(vm.EXP, 2, 1, opExp)
	set(vm.SIGNEXTEND, 2, 1, opSignExtend)

	set(vm.LT, 2, 1, comparisonOp((*uint256.Int).Lt))
	set(vm.GT, 2, 1, comparisonOp((*uint256.Int).Gt))
	set(vm.SLT, 2, 1, comparisonOp((*uint256.Int).Slt))
	set(vm.SGT, 2, 1, comparisonOp((*uint256.Int).Sgt))
	set(vm.EQ, 2, 1, comparisonOp((*uint256.Int).Eq))
	set(vm.ISZERO, 1, 1, opIsZero)
	set(vm.AND, 2, 1, binaryOp((*uint256.Int).And))
	set(vm.OR, 2, 1, binaryOp((*uint256.Int).Or))
	set(vm.XOR, 2, 1, binaryOp((*uint256.Int).Xor))
	set(vm.NOT, 1, 1, opNot)
	set(vm.BYTE, 2, 1, opByte)
	set(vm.SHL, 2, 1, opShl)
	set(vm.SHR, 2, 1, opShr)
	set(vm.SAR, 2, 1, opSar)
	set(vm.SHA3, 2, 1, opSha3)

	set(vm.ADDRESS, 0, 1, pushAddress(func(r *runner) tosca.Address { return r.params.Recipient }))
	set(vm.BALANCE, 1, 1, opBalance)
	set(vm.ORIGIN, 0, 1, pushAddress(func(r *runner) tosca.Address { return r.params.Origin }))
	set(vm.CALLER, 0, 1, pushAddress(func(r *runner) tosca.Address { return r.params.Sender }))
	set(vm.CALLVALUE, 0, 1, pushWord(func(r *runner) [32]byte { return r.params.Value }))
	set(vm.CALLDATALOAD, 1, 1, opCallDataLoad)
	set(vm.CALLDATASIZE, 0, 1, pushUint(func(r *runner) uint64 { return uint64(len(r.params.Input)) }))
	set(vm.CALLDATACOPY, 3, 0, copyOp(func(r *runner) []byte { return r.params.Input }))
	set(vm.CODESIZE, 0, 1, pushUint(func(r *runner) uint64 { return uint64(len(r.code)) }))
	set(vm.CODECOPY, 3, 0, copyOp(func(r *runner) []byte { return r.code }))
	set(vm.GASPRICE, 0, 1, pushWord(func(r *runner) [32]byte { return r.params.GasPrice }))
	set(vm.EXTCODESIZE, 1, 1, opExtCodeSize)
	set(vm.EXTCODECOPY, 4, 0, opExtCodeCopy)
	set(vm.RETURNDATASIZE, 0, 1, pushUint(func(r *runner) uint64 { return uint64(len(r.returnData)) }))
	set(vm.RETURNDATACOPY, 3, 0, opReturnDataCopy)
	set(vm.EXTCODEHASH, 1, 1, opExtCodeHash)

	set(vm.BLOCKHASH, 1, 1, opBlockHash)
	set(vm.COINBASE, 0, 1, pushAddress(func(r *runner) tosca.Address { return r.params.Coinbase }))
	set(vm.TIMESTAMP, 0, 1, pushUint(func(r *runner) uint64 { return uint64(r.params.Timestamp) }))
	set(vm.NUMBER, 0, 1, pushUint(func(r *runner) uint64 { return uint64(r.params.BlockNumber) }))
	set(vm.PREVRANDAO, 0, 1, pushWord(func(r *runner) [32]byte { return r.params.PrevRandao }))
	set(vm.GASLIMIT, 0, 1, pushUint(func(r *runner) uint64 { return uint64(r.params.GasLimit) }))
	set(vm.CHAINID, 0, 1, pushWord(func(r *runner) [32]byte { return r.params.ChainID }))
	set(vm.SELFBALANCE, 0, 1, pushWord(func(r *runner) [32]byte {
		return r.ctx.State.GetBalance(r.params.Recipient)
	}))
	set(vm.BASEFEE, 0, 1, pushWord(func(r *runner) [32]byte { return r.params.BaseFee }))
	table[vm.BASEFEE].since = tosca.R10_London

	set(vm.POP, 1, 0, func(r *runner) tosca.InstructionResult {
		r.stack.pop()
		return tosca.Continue
	})
	set(vm.MLOAD, 1, 1, opMload)
	set(vm.MSTORE, 2, 0, opMstore)
	set(vm.MSTORE8, 2, 0, opMstore8)
	set(vm.SLOAD, 1, 1, opSload)
	set(vm.SSTORE, 2, 0, opSstore)
	set(vm.JUMP, 1, 0, opJump)
	set(vm.JUMPI, 2, 0, opJumpi)
	set(vm.PC, 0, 1, pushUint(func(r *runner) uint64 { return r.pc }))
	set(vm.MSIZE, 0, 1, pushUint(func(r *runner) uint64 { return r.memory.length() }))
	set(vm.GAS, 0, 1, pushUint(func(r *runner) uint64 { return uint64(r.gas.Remaining()) }))
	set(vm.JUMPDEST, 0, 0, func(*runner) tosca.InstructionResult { return tosca.Continue })

	set(vm.PUSH0, 0, 1, func(r *runner) tosca.InstructionResult {
		r.stack.pushEmpty()
		return tosca.Continue
	})
	table[vm.PUSH0].since = tosca.R12_Shanghai
	for op := vm.PUSH1; op <= vm.PUSH32; op++ {
		set(op, 0, 1, opPush)
	}
	for i := 0; i < 16; i++ {
		n := i + 1
		set(vm.DUP1+vm.OpCode(i), n, n+1, func(r *runner) tosca.InstructionResult {
			r.stack.dup(n)
			return tosca.Continue
		})
		set(vm.SWAP1+vm.OpCode(i), n+1, n+1, func(r *runner) tosca.InstructionResult {
			r.stack.swap(n)
			return tosca.Continue
		})
	}
	for i := 0; i <= 4; i++ {
		n := i
		set(vm.LOG0+vm.OpCode(i), n+2, 0, func(r *runner) tosca.InstructionResult {
			return opLog(r, n)
		})
	}

	set(vm.CREATE, 3, 1, func(r *runner) tosca.InstructionResult { return opCreate(r, tosca.Create) })
	set(vm.CREATE2, 4, 1, func(r *runner) tosca.InstructionResult { return opCreate(r, tosca.Create2) })
	set(vm.CALL, 7, 1, func(r *runner) tosca.InstructionResult { return opCall(r, tosca.Call) })
	set(vm.CALLCODE, 7, 1, func(r *runner) tosca.InstructionResult { return opCall(r, tosca.CallCode) })
	set(vm.DELEGATECALL, 6, 1, func(r *runner) tosca.InstructionResult { return opCall(r, tosca.DelegateCall) })
	set(vm.STATICCALL, 6, 1, func(r *runner) tosca.InstructionResult { return opCall(r, tosca.StaticCall) })
	set(vm.RETURN, 2, 0, func(r *runner) tosca.InstructionResult { return opEndWithResult(r, tosca.Return) })
	set(vm.REVERT, 2, 0, func(r *runner) tosca.InstructionResult { return opEndWithResult(r, tosca.Revert) })
	set(vm.SELFDESTRUCT, 1, 0, opSelfDestruct)
	return table
}

func binaryOp(f func(z, x, y *uint256.Int) *uint256.Int) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		a := r.stack.pop()
		b := r.stack.peek()
		f(b, a, b)
		return tosca.Continue
	}
}

func ternaryOp(f func(z, x, y, m *uint256.Int) *uint256.Int) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		a := r.stack.pop()
		b := r.stack.pop()
		n := r.stack.peek()
		f(n, a, b, n)
		return tosca.Continue
	}
}

func comparisonOp(f func(x, y *uint256.Int) bool) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		a := r.stack.pop()
		b := r.stack.peek()
		if f(a, b) {
			b.SetOne()
		} else {
			b.Clear()
		}
		return tosca.Continue
	}
}

func pushUint(f func(r *runner) uint64) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		r.stack.pushEmpty().SetUint64(f(r))
		return tosca.Continue
	}
}

func pushWord(f func(r *runner) [32]byte) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		word := f(r)
		r.stack.pushEmpty().SetBytes32(word[:])
		return tosca.Continue
	}
}

func pushAddress(f func(r *runner) tosca.Address) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		addr := f(r)
		r.stack.pushEmpty().SetBytes20(addr[:])
		return tosca.Continue
	}
}

func opExp(r *runner) tosca.InstructionResult {
	base := r.stack.pop()
	exponent := r.stack.peek()
	cost := gasExpByte * tosca.Gas((exponent.BitLen()+7)/8)
	if !r.gas.RecordCost(cost) {
		return tosca.OutOfGas
	}
	exponent.Exp(base, exponent)
	return tosca.Continue
}

func opSignExtend(r *runner) tosca.InstructionResult {
	back := r.stack.pop()
	num := r.stack.peek()
	num.ExtendSign(num, back)
	return tosca.Continue
}

func opIsZero(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	if top.IsZero() {
		top.SetOne()
	} else {
		top.Clear()
	}
	return tosca.Continue
}

func opNot(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	top.Not(top)
	return tosca.Continue
}

func opByte(r *runner) tosca.InstructionResult {
	th := r.stack.pop()
	value := r.stack.peek()
	value.Byte(th)
	return tosca.Continue
}

func opShl(r *runner) tosca.InstructionResult {
	shift := r.stack.pop()
	value := r.stack.peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return tosca.Continue
}

func opShr(r *runner) tosca.InstructionResult {
	shift := r.stack.pop()
	value := r.stack.peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return tosca.Continue
}

func opSar(r *runner) tosca.InstructionResult {
	shift := r.stack.pop()
	value := r.stack.peek()
	if shift.GtUint64(255) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return tosca.Continue
	}
	value.SRsh(value, uint(shift.Uint64()))
	return tosca.Continue
}

func opSha3(r *runner) tosca.InstructionResult {
	offset, size, res := toRange(r.stack.pop(), r.stack.peek())
	if res != tosca.Continue {
		return res
	}
	if !r.gas.RecordCost(wordCopyCost(gasSha3Word, size)) {
		return tosca.OutOfGas
	}
	if res := r.memory.expand(offset, size, &r.gas); res != tosca.Continue {
		return res
	}
	hash := keccak256(r.memory.slice(offset, size))
	r.stack.peek().SetBytes32(hash[:])
	return tosca.Continue
}

func opBalance(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	balance := r.ctx.State.GetBalance(tosca.Address(top.Bytes20()))
	top.SetBytes32(balance[:])
	return tosca.Continue
}

func opCallDataLoad(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	var word [32]byte
	if top.IsUint64() {
		copy(word[:], getData(r.params.Input, top.Uint64(), 32))
	}
	top.SetBytes32(word[:])
	return tosca.Continue
}

// getData returns size bytes of data starting at offset, zero-padded where
// the range exceeds the data.
func getData(data []byte, offset, size uint64) []byte {
	length := uint64(len(data))
	if offset > length {
		offset = length
	}
	end := offset + size
	if end < offset || end > length {
		end = length
	}
	res := make([]byte, size)
	copy(res, data[offset:end])
	return res
}

// copyFromData implements the common part of the *COPY instructions.
func copyFromData(r *runner, data []byte, memOffset, dataOffset, size *uint256.Int) tosca.InstructionResult {
	offset, length, res := toRange(memOffset, size)
	if res != tosca.Continue {
		return res
	}
	if !r.gas.RecordCost(wordCopyCost(gasCopyWord, length)) {
		return tosca.OutOfGas
	}
	if res := r.memory.expand(offset, length, &r.gas); res != tosca.Continue {
		return res
	}
	start := uint64(math.MaxUint64)
	if dataOffset.IsUint64() {
		start = dataOffset.Uint64()
	}
	r.memory.set(offset, length, getData(data, start, length))
	return tosca.Continue
}

func copyOp(data func(r *runner) []byte) func(*runner) tosca.InstructionResult {
	return func(r *runner) tosca.InstructionResult {
		memOffset := *r.stack.pop()
		dataOffset := *r.stack.pop()
		size := *r.stack.pop()
		return copyFromData(r, data(r), &memOffset, &dataOffset, &size)
	}
}

func opExtCodeSize(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	top.SetUint64(uint64(r.ctx.State.GetCodeSize(tosca.Address(top.Bytes20()))))
	return tosca.Continue
}

func opExtCodeCopy(r *runner) tosca.InstructionResult {
	addr := tosca.Address(r.stack.pop().Bytes20())
	memOffset := *r.stack.pop()
	codeOffset := *r.stack.pop()
	size := *r.stack.pop()
	return copyFromData(r, r.ctx.State.GetCode(addr), &memOffset, &codeOffset, &size)
}

func opExtCodeHash(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	addr := tosca.Address(top.Bytes20())
	if !r.ctx.State.AccountExists(addr) {
		top.Clear()
		return tosca.Continue
	}
	hash := r.ctx.State.GetCodeHash(addr)
	top.SetBytes32(hash[:])
	return tosca.Continue
}

func opReturnDataCopy(r *runner) tosca.InstructionResult {
	memOffset := *r.stack.pop()
	dataOffset := *r.stack.pop()
	size := *r.stack.pop()
	end, overflow := new(uint256.Int).AddOverflow(&dataOffset, &size)
	if overflow || !end.IsUint64() || end.Uint64() > uint64(len(r.returnData)) {
		return tosca.ReturnDataOutOfBounds
	}
	return copyFromData(r, r.returnData, &memOffset, &dataOffset, &size)
}

func opBlockHash(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	if !top.IsUint64() || top.Uint64() > math.MaxInt64 {
		top.Clear()
		return tosca.Continue
	}
	number := int64(top.Uint64())
	current := r.params.BlockNumber
	if number >= current || number+256 < current {
		top.Clear()
		return tosca.Continue
	}
	hash := r.ctx.State.GetBlockHash(number)
	top.SetBytes32(hash[:])
	return tosca.Continue
}

func opMload(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	if !top.IsUint64() {
		return tosca.OutOfGas
	}
	offset := top.Uint64()
	if res := r.memory.expand(offset, 32, &r.gas); res != tosca.Continue {
		return res
	}
	top.SetBytes32(r.memory.slice(offset, 32))
	return tosca.Continue
}

func opMstore(r *runner) tosca.InstructionResult {
	offset := r.stack.pop()
	value := r.stack.pop()
	if !offset.IsUint64() {
		return tosca.OutOfGas
	}
	if res := r.memory.expand(offset.Uint64(), 32, &r.gas); res != tosca.Continue {
		return res
	}
	r.memory.setWord(offset.Uint64(), value)
	return tosca.Continue
}

func opMstore8(r *runner) tosca.InstructionResult {
	offset := r.stack.pop()
	value := r.stack.pop()
	if !offset.IsUint64() {
		return tosca.OutOfGas
	}
	if res := r.memory.expand(offset.Uint64(), 1, &r.gas); res != tosca.Continue {
		return res
	}
	r.memory.store[offset.Uint64()] = byte(value.Uint64())
	return tosca.Continue
}

func opSload(r *runner) tosca.InstructionResult {
	top := r.stack.peek()
	value := r.ctx.State.GetStorage(r.params.Recipient, tosca.Key(top.Bytes32()))
	top.SetBytes32(value[:])
	return tosca.Continue
}

func opSstore(r *runner) tosca.InstructionResult {
	if r.params.Static {
		return tosca.StateChangeDuringStaticCall
	}
	if r.gas.Remaining() <= gasSstoreSentry {
		return tosca.OutOfGas
	}
	key := tosca.Key(r.stack.pop().Bytes32())
	value := tosca.Word(r.stack.pop().Bytes32())
	status := r.ctx.State.SetStorage(r.params.Recipient, key, value)
	cost, refund := sstoreCost(status)
	if !r.gas.RecordCost(cost) {
		return tosca.OutOfGas
	}
	r.gas.RecordRefund(refund)
	return tosca.Continue
}

func (r *runner) jumpTo(destination *uint256.Int) tosca.InstructionResult {
	if !destination.IsUint64() || !r.jumpDests.isValid(destination.Uint64()) {
		return tosca.InvalidJump
	}
	r.nextPC = destination.Uint64()
	return tosca.Continue
}

func opJump(r *runner) tosca.InstructionResult {
	return r.jumpTo(r.stack.pop())
}

func opJumpi(r *runner) tosca.InstructionResult {
	destination := r.stack.pop()
	condition := r.stack.pop()
	if condition.IsZero() {
		return tosca.Continue
	}
	return r.jumpTo(destination)
}

// opPush reads the immediate data of PUSH1 to PUSH32. Data truncated by the
// end of the code is padded with zeros on the right.
func opPush(r *runner) tosca.InstructionResult {
	n := uint64(r.op.PushSize())
	var data [32]byte
	start := r.pc + 1
	if start < uint64(len(r.code)) {
		copy(data[:n], r.code[start:min(start+n, uint64(len(r.code)))])
	}
	r.stack.pushEmpty().SetBytes(data[:n])
	return tosca.Continue
}

func opLog(r *runner, numTopics int) tosca.InstructionResult {
	if r.params.Static {
		return tosca.StateChangeDuringStaticCall
	}
	offset, size, res := toRange(r.stack.pop(), r.stack.pop())
	if res != tosca.Continue {
		return res
	}
	topics := make([]tosca.Hash, numTopics)
	for i := range topics {
		topics[i] = r.stack.pop().Bytes32()
	}
	if res := r.memory.expand(offset, size, &r.gas); res != tosca.Continue {
		return res
	}
	if !r.gas.RecordCost(gasLogData * tosca.Gas(size)) {
		return tosca.OutOfGas
	}
	log := tosca.Log{
		Address: r.params.Recipient,
		Topics:  topics,
		Data:    slices.Clone(r.memory.slice(offset, size)),
	}
	if r.hooks != nil {
		r.hooks.OnLog(r.ctx, log)
	} else {
		r.ctx.State.EmitLog(log)
	}
	return tosca.Continue
}

func opCreate(r *runner, kind tosca.CallKind) tosca.InstructionResult {
	if r.params.Static {
		return tosca.StateChangeDuringStaticCall
	}
	value := *r.stack.pop()
	offset, size, res := toRange(r.stack.pop(), r.stack.pop())
	if res != tosca.Continue {
		return res
	}
	var salt tosca.Hash
	if kind == tosca.Create2 {
		salt = r.stack.pop().Bytes32()
	}
	if r.params.Revision >= tosca.R12_Shanghai {
		if size > maxInitCodeSize {
			return tosca.CreateInitCodeSizeLimit
		}
		if !r.gas.RecordCost(wordCopyCost(gasInitCodeWord, size)) {
			return tosca.OutOfGas
		}
	}
	if kind == tosca.Create2 && !r.gas.RecordCost(wordCopyCost(gasSha3Word, size)) {
		return tosca.OutOfGas
	}
	if res := r.memory.expand(offset, size, &r.gas); res != tosca.Continue {
		return res
	}
	gas := r.gas.Remaining() - r.gas.Remaining()/64
	r.gas.RecordCost(gas)
	r.suspend(tosca.Action{
		Kind: tosca.ActionCreate,
		Create: &tosca.CreateInputs{
			Kind:     kind,
			Sender:   r.params.Recipient,
			Value:    tosca.ValueFromUint256(&value),
			InitCode: tosca.Code(slices.Clone(r.memory.slice(offset, size))),
			Salt:     salt,
			Gas:      gas,
			Depth:    r.params.Depth + 1,
		},
	})
	return tosca.Continue
}

func opCall(r *runner, kind tosca.CallKind) tosca.InstructionResult {
	requested := *r.stack.pop()
	addr := tosca.Address(r.stack.pop().Bytes20())
	var value uint256.Int
	if kind == tosca.Call || kind == tosca.CallCode {
		value = *r.stack.pop()
	}
	inOffset, inSize, res := toRange(r.stack.pop(), r.stack.pop())
	if res != tosca.Continue {
		return res
	}
	outOffset, outSize, res := toRange(r.stack.pop(), r.stack.pop())
	if res != tosca.Continue {
		return res
	}
	if kind == tosca.Call && r.params.Static && !value.IsZero() {
		return tosca.StateChangeDuringStaticCall
	}
	if res := r.memory.expand(inOffset, inSize, &r.gas); res != tosca.Continue {
		return res
	}
	if res := r.memory.expand(outOffset, outSize, &r.gas); res != tosca.Continue {
		return res
	}
	if !value.IsZero() {
		cost := gasCallValue
		if kind == tosca.Call && !r.ctx.State.AccountExists(addr) {
			cost += gasCallNewAcct
		}
		if !r.gas.RecordCost(cost) {
			return tosca.OutOfGas
		}
	}
	gas := callGas(r.gas.Remaining(), &requested)
	r.gas.RecordCost(gas)
	if !value.IsZero() {
		gas += gasCallStipend
	}

	inputs := &tosca.CallInputs{
		Kind:        kind,
		Sender:      r.params.Recipient,
		Recipient:   addr,
		CodeAddress: addr,
		Value:       tosca.ValueFromUint256(&value),
		Input:       tosca.Data(slices.Clone(r.memory.slice(inOffset, inSize))),
		Gas:         gas,
		Static:      r.params.Static || kind == tosca.StaticCall,
		Depth:       r.params.Depth + 1,
	}
	switch kind {
	case tosca.CallCode:
		inputs.Recipient = r.params.Recipient
	case tosca.DelegateCall:
		inputs.Sender = r.params.Sender
		inputs.Recipient = r.params.Recipient
		inputs.Value = r.params.Value
	}
	r.returnRange = memoryRange{offset: outOffset, size: outSize}
	r.suspend(tosca.Action{Kind: tosca.ActionCall, Call: inputs})
	return tosca.Continue
}

func opEndWithResult(r *runner, result tosca.InstructionResult) tosca.InstructionResult {
	offset, size, res := toRange(r.stack.pop(), r.stack.pop())
	if res != tosca.Continue {
		return res
	}
	if res := r.memory.expand(offset, size, &r.gas); res != tosca.Continue {
		return res
	}
	r.output = slices.Clone(r.memory.slice(offset, size))
	return result
}

// opSelfDestruct moves the balance of the executing account to the
// beneficiary. The account itself is kept.
func opSelfDestruct(r *runner) tosca.InstructionResult {
	if r.params.Static {
		return tosca.StateChangeDuringStaticCall
	}
	beneficiary := tosca.Address(r.stack.pop().Bytes20())
	state := r.ctx.State
	balance := state.GetBalance(r.params.Recipient)
	if beneficiary != r.params.Recipient {
		state.SetBalance(beneficiary, tosca.Add(state.GetBalance(beneficiary), balance))
		state.SetBalance(r.params.Recipient, tosca.Value{})
	}
	return tosca.SelfDestruct
}
