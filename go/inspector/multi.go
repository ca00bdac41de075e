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

import "github.com/Fantom-foundation/Vigil/go/tosca"

// Multi combines an ordered list of sibling inspectors into a single one.
// Observation hooks are forwarded in order. Call and Create consult the
// siblings in order and stop at the first one short-circuiting the frame;
// CallEnd and CreateEnd thread the result through the siblings in reverse
// order, so the last sibling sees the raw result first.
//
// Siblings after a short-circuiting one do not observe the Call or Create
// event, but all of them observe the matching CallEnd or CreateEnd.
type Multi []Inspector

func (m Multi) InitializeInterp(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	for _, cur := range m {
		cur.InitializeInterp(ctx, interp)
	}
}

func (m Multi) Step(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	for _, cur := range m {
		cur.Step(ctx, interp)
	}
}

func (m Multi) StepEnd(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	for _, cur := range m {
		cur.StepEnd(ctx, interp)
	}
}

func (m Multi) Log(ctx *tosca.EvmContext, address tosca.Address, topics []tosca.Hash, data tosca.Data) {
	for _, cur := range m {
		cur.Log(ctx, address, topics, data)
	}
}

func (m Multi) Call(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult {
	for _, cur := range m {
		if res := cur.Call(ctx, inputs); res != nil {
			return res
		}
	}
	return nil
}

func (m Multi) CallEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	for i := len(m) - 1; i >= 0; i-- {
		result = m[i].CallEnd(ctx, result)
	}
	return result
}

func (m Multi) Create(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome {
	for _, cur := range m {
		if res := cur.Create(ctx, inputs); res != nil {
			return res
		}
	}
	return nil
}

func (m Multi) CreateEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	for i := len(m) - 1; i >= 0; i-- {
		result, address = m[i].CreateEnd(ctx, result, address)
	}
	return result, address
}
