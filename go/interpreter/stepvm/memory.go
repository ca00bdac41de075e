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
	"github.com/holiman/uint256"
)

// maxMemorySize caps memory growth so that expansion costs never overflow.
const maxMemorySize = 0x1FFFFFFFE0

// memory is the word-addressed, zero-initialized scratch memory of a frame.
type memory struct {
	store []byte
	cost  tosca.Gas // < the accumulated expansion cost of the current size
}

func (m *memory) length() uint64 {
	return uint64(len(m.store))
}

// expansionCost returns the additional cost of growing the memory to cover
// size bytes.
func (m *memory) expansionCost(size uint64) tosca.Gas {
	if size <= m.length() {
		return 0
	}
	if size > maxMemorySize {
		return math.MaxInt64
	}
	words := tosca.SizeInWords(size)
	return tosca.Gas(words*words/512+3*words) - m.cost
}

// expand charges for and grows the memory to cover [offset, offset+size).
// Empty ranges never expand the memory, regardless of the offset.
func (m *memory) expand(offset, size uint64, gas *tosca.GasCounter) tosca.InstructionResult {
	if size == 0 {
		return tosca.Continue
	}
	end := offset + size
	if end < offset || end > maxMemorySize {
		return tosca.OutOfGas
	}
	if end <= m.length() {
		return tosca.Continue
	}
	fee := m.expansionCost(end)
	if !gas.RecordCost(fee) {
		return tosca.OutOfGas
	}
	m.cost += fee
	words := tosca.SizeInWords(end)
	m.store = append(m.store, make([]byte, words*32-m.length())...)
	return tosca.Continue
}

// slice returns the given range of the memory, which must have been expanded
// before. The result shares the memory's backing array.
func (m *memory) slice(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

func (m *memory) setWord(offset uint64, value *uint256.Int) {
	value.WriteToSlice(m.store[offset : offset+32])
}

// set copies data into the memory, padding with zeros up to size.
func (m *memory) set(offset, size uint64, data []byte) {
	if size == 0 {
		return
	}
	trg := m.store[offset : offset+size]
	n := copy(trg, data)
	clear(trg[n:])
}

// toRange converts stack offsets and sizes into memory coordinates. Sizes
// not fitting into 64 bits, and offsets of non-empty ranges not fitting, are
// reported as out of gas.
func toRange(offset, size *uint256.Int) (uint64, uint64, tosca.InstructionResult) {
	if !size.IsUint64() {
		return 0, 0, tosca.OutOfGas
	}
	if size.IsZero() {
		return 0, 0, tosca.Continue
	}
	if !offset.IsUint64() {
		return 0, 0, tosca.OutOfGas
	}
	return offset.Uint64(), size.Uint64(), tosca.Continue
}
