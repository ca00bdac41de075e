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
	"strings"
	"testing"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	"go.uber.org/mock/gomock"
)

func runOps(t *testing.T, stats *StatisticsInspector, ctx *tosca.EvmContext, ops ...vm.OpCode) {
	t.Helper()
	ctrl := gomock.NewController(t)
	state := tosca.NewMockInterpreterState(ctrl)
	stats.InitializeInterp(ctx, state)
	for _, op := range ops {
		state.EXPECT().CurrentOpCode().Return(op)
		stats.Step(ctx, state)
	}
}

func TestStatisticsInspector_CountsSinglesAndPairs(t *testing.T) {
	stats := NewStatisticsInspector()
	runOps(t, stats, &tosca.EvmContext{}, vm.PUSH1, vm.PUSH1, vm.ADD, vm.PUSH1, vm.ADD, vm.STOP)

	if want, got := uint64(6), stats.Steps(); want != got {
		t.Errorf("unexpected number of steps, wanted %d, got %d", want, got)
	}

	singles := stats.Singles()
	wantSingles := []OpCodeCount[vm.OpCode]{
		{vm.PUSH1, 3},
		{vm.ADD, 2},
		{vm.STOP, 1},
	}
	if len(singles) != len(wantSingles) {
		t.Fatalf("unexpected singles, wanted %v, got %v", wantSingles, singles)
	}
	for i := range wantSingles {
		if singles[i] != wantSingles[i] {
			t.Errorf("unexpected single at %d, wanted %v, got %v", i, wantSingles[i], singles[i])
		}
	}

	pairs := stats.Pairs()
	wantPairs := []OpCodeCount[OpCodePair]{
		{OpCodePair{vm.PUSH1, vm.ADD}, 2},
		{OpCodePair{vm.ADD, vm.STOP}, 1},
		{OpCodePair{vm.ADD, vm.PUSH1}, 1},
		{OpCodePair{vm.PUSH1, vm.PUSH1}, 1},
	}
	if len(pairs) != len(wantPairs) {
		t.Fatalf("unexpected pairs, wanted %v, got %v", wantPairs, pairs)
	}
	for i := range wantPairs {
		if pairs[i] != wantPairs[i] {
			t.Errorf("unexpected pair at %d, wanted %v, got %v", i, wantPairs[i], pairs[i])
		}
	}
}

func TestStatisticsInspector_PairsDoNotCrossFrames(t *testing.T) {
	stats := NewStatisticsInspector()
	runOps(t, stats, &tosca.EvmContext{Depth: 0}, vm.CALL)
	runOps(t, stats, &tosca.EvmContext{Depth: 1}, vm.STOP)
	runOps(t, stats, &tosca.EvmContext{Depth: 1}, vm.STOP)

	if got := stats.Pairs(); len(got) != 0 {
		t.Errorf("unexpected pairs across frames: %v", got)
	}
	if want, got := uint64(3), stats.Steps(); want != got {
		t.Errorf("unexpected number of steps, wanted %d, got %d", want, got)
	}
}

func TestStatisticsInspector_SummaryListsTopEntries(t *testing.T) {
	stats := NewStatisticsInspector()
	runOps(t, stats, &tosca.EvmContext{}, vm.PUSH1, vm.PUSH1, vm.ADD)

	summary := stats.Summary(1)
	for _, want := range []string{"Steps: 3", "PUSH1", "66.67%"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary does not contain %q:\n%s", want, summary)
		}
	}
	if want, got := 2, strings.Count(summary, "%)"); want != got {
		t.Errorf("summary should list %d entries, got %d:\n%s", want, got, summary)
	}
}

func TestStatisticsInspector_EmptySummary(t *testing.T) {
	summary := NewStatisticsInspector().Summary(10)
	if !strings.Contains(summary, "Steps: 0") {
		t.Errorf("unexpected summary:\n%s", summary)
	}
}
