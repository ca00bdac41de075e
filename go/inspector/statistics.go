// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package inspector

import (
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	"golang.org/x/exp/slices"
)

// StatisticsInspector counts the executed instructions and the pairs of
// instructions executed back to back within the same frame.
type StatisticsInspector struct {
	NoOpInspector
	steps   uint64
	singles map[vm.OpCode]uint64
	pairs   map[OpCodePair]uint64

	// last holds the previously executed opcode of each active frame,
	// indexed by depth; -1 marks frames without a previous instruction.
	last []int
}

// OpCodePair is a sequence of two instructions executed back to back.
type OpCodePair struct {
	First, Second vm.OpCode
}

func (p OpCodePair) String() string {
	return fmt.Sprintf("%v %v", p.First, p.Second)
}

// OpCodeCount is an entry of a statistics summary.
type OpCodeCount[K any] struct {
	OpCodes K
	Count   uint64
}

func NewStatisticsInspector() *StatisticsInspector {
	return &StatisticsInspector{
		singles: map[vm.OpCode]uint64{},
		pairs:   map[OpCodePair]uint64{},
	}
}

func (s *StatisticsInspector) InitializeInterp(ctx *tosca.EvmContext, _ tosca.InterpreterState) {
	for len(s.last) <= ctx.Depth {
		s.last = append(s.last, -1)
	}
	s.last[ctx.Depth] = -1
}

func (s *StatisticsInspector) Step(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	for len(s.last) <= ctx.Depth {
		s.last = append(s.last, -1)
	}
	cur := interp.CurrentOpCode()
	s.steps++
	s.singles[cur]++
	if prev := s.last[ctx.Depth]; prev >= 0 {
		s.pairs[OpCodePair{vm.OpCode(prev), cur}]++
	}
	s.last[ctx.Depth] = int(cur)
}

// Steps returns the total number of observed instructions.
func (s *StatisticsInspector) Steps() uint64 {
	return s.steps
}

// Singles returns the instruction counts ordered by decreasing count. Ties
// are ordered by opcode.
func (s *StatisticsInspector) Singles() []OpCodeCount[vm.OpCode] {
	res := make([]OpCodeCount[vm.OpCode], 0, len(s.singles))
	for op, count := range s.singles {
		res = append(res, OpCodeCount[vm.OpCode]{op, count})
	}
	slices.SortFunc(res, func(a, b OpCodeCount[vm.OpCode]) int {
		if a.Count != b.Count {
			return compareDesc(a.Count, b.Count)
		}
		return int(a.OpCodes) - int(b.OpCodes)
	})
	return res
}

// Pairs returns the instruction pair counts ordered by decreasing count.
// Ties are ordered by the first, then the second opcode.
func (s *StatisticsInspector) Pairs() []OpCodeCount[OpCodePair] {
	res := make([]OpCodeCount[OpCodePair], 0, len(s.pairs))
	for pair, count := range s.pairs {
		res = append(res, OpCodeCount[OpCodePair]{pair, count})
	}
	slices.SortFunc(res, func(a, b OpCodeCount[OpCodePair]) int {
		if a.Count != b.Count {
			return compareDesc(a.Count, b.Count)
		}
		if a.OpCodes.First != b.OpCodes.First {
			return int(a.OpCodes.First) - int(b.OpCodes.First)
		}
		return int(a.OpCodes.Second) - int(b.OpCodes.Second)
	})
	return res
}

func compareDesc(a, b uint64) int {
	if a > b {
		return -1
	}
	return 1
}

// Summary returns a human-readable summary listing the top n singles and
// pairs.
func (s *StatisticsInspector) Summary(n int) string {
	builder := strings.Builder{}
	write := func(format string, args ...any) {
		builder.WriteString(fmt.Sprintf(format, args...))
	}
	percent := func(count uint64) float32 {
		if s.steps == 0 {
			return 0
		}
		return float32(count*100) / float32(s.steps)
	}

	write("\n----- Statistics ------\n")
	write("\nSteps: %d\n", s.steps)
	write("\nSingles:\n")
	for _, e := range topN(s.Singles(), n) {
		write("\t%-30v: %d (%.2f%%)\n", e.OpCodes, e.Count, percent(e.Count))
	}
	write("\nPairs:\n")
	for _, e := range topN(s.Pairs(), n) {
		write("\t%-30v%-30v: %d (%.2f%%)\n", e.OpCodes.First, e.OpCodes.Second, e.Count, percent(e.Count))
	}
	write("\n")
	return builder.String()
}

func topN[T any](list []T, n int) []T {
	if len(list) < n {
		return list
	}
	return list[:n]
}
