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
	"sync"

	"github.com/holiman/uint256"
)

const maxStackSize = 1024

// stack is the fixed-size word stack of a frame. Boundaries are not checked
// by the stack itself; the interpreter verifies the stack requirements of
// each instruction before executing it.
type stack struct {
	data [maxStackSize]uint256.Int
	size int
}

func (s *stack) push(v *uint256.Int) {
	s.data[s.size] = *v
	s.size++
}

// pushEmpty adds a zero element on top of the stack and returns a pointer to
// it for in-place modification.
func (s *stack) pushEmpty() *uint256.Int {
	s.data[s.size].Clear()
	s.size++
	return &s.data[s.size-1]
}

// pop removes the top element. The returned pointer is only valid until the
// next push.
func (s *stack) pop() *uint256.Int {
	s.size--
	return &s.data[s.size]
}

// peek returns a pointer to the top element.
func (s *stack) peek() *uint256.Int {
	return &s.data[s.size-1]
}

// peekN returns a pointer to the n-th element from the top, peekN(0) being
// the top element.
func (s *stack) peekN(n int) *uint256.Int {
	return &s.data[s.size-n-1]
}

func (s *stack) len() int {
	return s.size
}

// swap exchanges the top element with the n-th element below it.
func (s *stack) swap(n int) {
	top := s.size - 1
	s.data[top], s.data[top-n] = s.data[top-n], s.data[top]
}

// dup pushes a copy of the n-th element from the top, dup(1) duplicating the
// top element.
func (s *stack) dup(n int) {
	s.data[s.size] = s.data[s.size-n]
	s.size++
}

// elements returns the stack content, bottom element first.
func (s *stack) elements() []uint256.Int {
	return s.data[:s.size]
}

var stackPool = sync.Pool{
	New: func() any {
		return &stack{}
	},
}

func newStack() *stack {
	return stackPool.Get().(*stack)
}

// returnStack hands a stack back to the pool. A stack may only be returned
// once.
func returnStack(s *stack) {
	s.size = 0
	stackPool.Put(s)
}
