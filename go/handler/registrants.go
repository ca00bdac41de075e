// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package handler

import (
	"github.com/Fantom-foundation/Vigil/go/inspector"
	"github.com/Fantom-foundation/Vigil/go/tosca"
)

// MainnetHandle is the registrant leaving a handler unchanged.
type MainnetHandle struct{}

func (MainnetHandle) RegisterHandler(h Handler) Handler {
	return h
}

// InspectorHandle attaches an Inspector to a handler. The inspector observes
// frame initialization, steps and logs after the wrapped slots, is consulted
// for call and create short-circuits only if no earlier layer produced one,
// and rewrites the results of finished frames before the wrapped return
// handling runs. Unset slots of the wrapped handler are taken from the
// Mainnet handler before wrapping.
//
// Since earlier layers may short-circuit a frame without consulting the
// inspector, an inspector may observe CallEnd or CreateEnd for a frame it
// has not seen entering.
type InspectorHandle struct {
	Inspector inspector.Inspector
}

func (i InspectorHandle) RegisterHandler(h Handler) Handler {
	ins := i.Inspector
	h = WithDefaults(h)

	h.InitializeInterp = chain(h.InitializeInterp, ins.InitializeInterp)
	h.Step = chain(h.Step, ins.Step)
	h.StepEnd = chain(h.StepEnd, ins.StepEnd)

	oldLog := h.Log
	h.Log = func(ctx *tosca.EvmContext, log tosca.Log) {
		oldLog(ctx, log)
		ins.Log(ctx, log.Address, log.Topics, log.Data)
	}

	oldCall := h.Call
	h.Call = func(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult {
		if res := oldCall(ctx, inputs); res != nil {
			return res
		}
		return ins.Call(ctx, inputs)
	}

	oldCreate := h.Create
	h.Create = func(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome {
		if res := oldCreate(ctx, inputs); res != nil {
			return res
		}
		return ins.Create(ctx, inputs)
	}

	oldReturn := h.FrameReturn
	h.FrameReturn = func(ctx *tosca.EvmContext, child *tosca.Frame, result tosca.ExecutionResult) (tosca.ExecutionResult, bool) {
		if child.IsCreate() {
			result, child.CreatedAddress = ins.CreateEnd(ctx, result, child.CreatedAddress)
		} else {
			result = ins.CallEnd(ctx, result)
		}
		return oldReturn(ctx, child, result)
	}
	return h
}

func chain(old, next InterpreterHandle) InterpreterHandle {
	return func(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
		old(ctx, interp)
		next(ctx, interp)
	}
}

// ReimbursementObserver reports the gas counter of a transaction to a
// callback after the caller has been reimbursed. A nil callback leaves the
// reimbursement unchanged.
type ReimbursementObserver struct {
	OnReimburse func(ctx *tosca.EvmContext, gas tosca.GasCounter)
}

func (r ReimbursementObserver) RegisterHandler(h Handler) Handler {
	old := h.ReimburseCaller
	if old == nil {
		old = reimburseCaller
	}
	observe := r.OnReimburse
	h.ReimburseCaller = func(ctx *tosca.EvmContext, gas *tosca.GasCounter) error {
		if err := old(ctx, gas); err != nil {
			return err
		}
		if observe != nil {
			observe(ctx, *gas)
		}
		return nil
	}
	return h
}
