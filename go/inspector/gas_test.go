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
	"testing"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"go.uber.org/mock/gomock"
)

func gasCounter(limit, remaining tosca.Gas) *tosca.GasCounter {
	res := tosca.NewGasCounter(limit)
	res.RecordCost(limit - remaining)
	return &res
}

func TestGasInspector_InitializeInterpTakesFrameLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := tosca.NewMockInterpreterState(ctrl)
	state.EXPECT().Gas().Return(gasCounter(100, 60))

	gas := &GasInspector{}
	gas.InitializeInterp(&tosca.EvmContext{}, state)

	if want, got := tosca.Gas(100), gas.GasRemaining(); want != got {
		t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
	}
	if want, got := tosca.Gas(0), gas.LastGasCost(); want != got {
		t.Errorf("unexpected last gas cost, wanted %d, got %d", want, got)
	}
}

func TestGasInspector_StepEndFollowsRecurrence(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := tosca.NewMockInterpreterState(ctrl)

	steps := []struct {
		remaining tosca.Gas
		cost      tosca.Gas
	}{
		{97, 100},
		{94, 0},
		{84, 94},
		{83, 0},
		{83, 83},
	}

	state.EXPECT().Gas().Return(gasCounter(100, 100))
	gas := &GasInspector{}
	gas.InitializeInterp(&tosca.EvmContext{}, state)

	for i, step := range steps {
		state.EXPECT().Gas().Return(gasCounter(100, step.remaining))
		gas.StepEnd(&tosca.EvmContext{}, state)
		if want, got := step.remaining, gas.GasRemaining(); want != got {
			t.Errorf("step %d: unexpected remaining gas, wanted %d, got %d", i, want, got)
		}
		if want, got := step.cost, gas.LastGasCost(); want != got {
			t.Errorf("step %d: unexpected last gas cost, wanted %d, got %d", i, want, got)
		}
	}
}

func TestGasInspector_CallEndForfeitsGasOfFailedCalls(t *testing.T) {
	tests := map[string]struct {
		result    tosca.InstructionResult
		remaining tosca.Gas
	}{
		"stop":           {tosca.Stop, 40},
		"return":         {tosca.Return, 40},
		"revert":         {tosca.Revert, 40},
		"call too deep":  {tosca.CallTooDeep, 40},
		"out of gas":     {tosca.OutOfGas, 0},
		"invalid jump":   {tosca.InvalidJump, 0},
		"static violate": {tosca.StateChangeDuringStaticCall, 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			gas := &GasInspector{gasRemaining: 70}
			result := gas.CallEnd(&tosca.EvmContext{}, tosca.ExecutionResult{
				Result: test.result,
				Gas:    *gasCounter(100, 40),
			})
			if want, got := test.result, result.Result; want != got {
				t.Errorf("unexpected result, wanted %v, got %v", want, got)
			}
			if want, got := test.remaining, result.Gas.Remaining(); want != got {
				t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
			}
			want := tosca.Gas(70)
			if test.result.IsError() {
				want = 0
			}
			if got := gas.GasRemaining(); want != got {
				t.Errorf("unexpected tracked remaining gas, wanted %d, got %d", want, got)
			}
			if !test.result.IsError() {
				return
			}
			if want, got := tosca.Gas(40), result.Gas.LastCost(); want != got {
				t.Errorf("forfeited gas should be the gas remaining at the error, wanted %d, got %d", want, got)
			}
			if want, got := tosca.Gas(100), result.Gas.Spent(); want != got {
				t.Errorf("failed call should spend its whole limit, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestGasInspector_CostSaturatesAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := tosca.NewMockInterpreterState(ctrl)
	state.EXPECT().Gas().Return(gasCounter(10, 5))

	gas := &GasInspector{gasRemaining: 3, lastGasCost: 50}
	gas.StepEnd(&tosca.EvmContext{}, state)

	if want, got := tosca.Gas(0), gas.LastGasCost(); want != got {
		t.Errorf("unexpected last gas cost, wanted %d, got %d", want, got)
	}
	if want, got := tosca.Gas(5), gas.GasRemaining(); want != got {
		t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
	}
}
