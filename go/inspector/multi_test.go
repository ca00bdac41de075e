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

func TestMulti_ObservationHooksAreForwardedInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockInspector(ctrl)
	b := NewMockInspector(ctrl)
	state := tosca.NewMockInterpreterState(ctrl)

	ctx := &tosca.EvmContext{}
	address := tosca.Address{1}
	topics := []tosca.Hash{{2}}
	data := tosca.Data{3}

	gomock.InOrder(
		a.EXPECT().InitializeInterp(ctx, state),
		b.EXPECT().InitializeInterp(ctx, state),
		a.EXPECT().Step(ctx, state),
		b.EXPECT().Step(ctx, state),
		a.EXPECT().Log(ctx, address, topics, data),
		b.EXPECT().Log(ctx, address, topics, data),
		a.EXPECT().StepEnd(ctx, state),
		b.EXPECT().StepEnd(ctx, state),
	)

	multi := Multi{a, b}
	multi.InitializeInterp(ctx, state)
	multi.Step(ctx, state)
	multi.Log(ctx, address, topics, data)
	multi.StepEnd(ctx, state)
}

func TestMulti_CallStopsAtFirstShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockInspector(ctrl)
	b := NewMockInspector(ctrl)
	c := NewMockInspector(ctrl)

	ctx := &tosca.EvmContext{}
	inputs := &tosca.CallInputs{Gas: 10}
	override := &tosca.ExecutionResult{Result: tosca.Revert}

	gomock.InOrder(
		a.EXPECT().Call(ctx, inputs).Return(nil),
		b.EXPECT().Call(ctx, inputs).Return(override),
	)

	if got := (Multi{a, b, c}).Call(ctx, inputs); got != override {
		t.Errorf("unexpected call result, wanted %v, got %v", override, got)
	}
}

func TestMulti_CreateStopsAtFirstShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockInspector(ctrl)
	b := NewMockInspector(ctrl)

	ctx := &tosca.EvmContext{}
	inputs := &tosca.CreateInputs{Gas: 10}
	override := &tosca.CreateOutcome{Result: tosca.ExecutionResult{Result: tosca.Revert}}

	gomock.InOrder(
		a.EXPECT().Create(ctx, inputs).Return(override),
	)

	if got := (Multi{a, b}).Create(ctx, inputs); got != override {
		t.Errorf("unexpected create outcome, wanted %v, got %v", override, got)
	}
}

func TestMulti_WithoutShortCircuitAllSiblingsAreConsulted(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockInspector(ctrl)
	b := NewMockInspector(ctrl)

	ctx := &tosca.EvmContext{}
	call := &tosca.CallInputs{}
	create := &tosca.CreateInputs{}

	gomock.InOrder(
		a.EXPECT().Call(ctx, call),
		b.EXPECT().Call(ctx, call),
		a.EXPECT().Create(ctx, create),
		b.EXPECT().Create(ctx, create),
	)

	multi := Multi{a, b}
	if got := multi.Call(ctx, call); got != nil {
		t.Errorf("unexpected call result %v", got)
	}
	if got := multi.Create(ctx, create); got != nil {
		t.Errorf("unexpected create outcome %v", got)
	}
}

func TestMulti_CallEndIsThreadedInReverseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockInspector(ctrl)
	b := NewMockInspector(ctrl)

	ctx := &tosca.EvmContext{}
	raw := tosca.ExecutionResult{Result: tosca.Stop}
	fromB := tosca.ExecutionResult{Result: tosca.Return}
	fromA := tosca.ExecutionResult{Result: tosca.Revert}

	gomock.InOrder(
		b.EXPECT().CallEnd(ctx, raw).Return(fromB),
		a.EXPECT().CallEnd(ctx, fromB).Return(fromA),
	)

	got := (Multi{a, b}).CallEnd(ctx, raw)
	if want := tosca.Revert; want != got.Result {
		t.Errorf("unexpected result, wanted %v, got %v", want, got.Result)
	}
}

func TestMulti_CreateEndIsThreadedInReverseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockInspector(ctrl)
	b := NewMockInspector(ctrl)

	ctx := &tosca.EvmContext{}
	raw := tosca.ExecutionResult{Result: tosca.Stop}
	address := &tosca.Address{1}

	gomock.InOrder(
		b.EXPECT().CreateEnd(ctx, raw, address).Return(raw, nil),
		a.EXPECT().CreateEnd(ctx, raw, nil).Return(raw, nil),
	)

	_, got := (Multi{a, b}).CreateEnd(ctx, raw, address)
	if got != nil {
		t.Errorf("expected creation to be denied, got %v", got)
	}
}

func TestMulti_EmptyIsNoOp(t *testing.T) {
	ctx := &tosca.EvmContext{}
	multi := Multi{}
	if got := multi.Call(ctx, &tosca.CallInputs{}); got != nil {
		t.Errorf("unexpected call result %v", got)
	}
	result := tosca.ExecutionResult{Result: tosca.Return, Output: tosca.Data{1}}
	if got := multi.CallEnd(ctx, result); got.Result != result.Result || len(got.Output) != 1 {
		t.Errorf("unexpected call end result %v", got)
	}
	address := &tosca.Address{1}
	if _, got := multi.CreateEnd(ctx, result, address); got != address {
		t.Errorf("unexpected address %v", got)
	}
}
