// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package handler implements the composable set of slots through which a
// transaction processor dispatches execution events. Registrants extend a
// Handler by wrapping individual slots; every registration produces a new
// Handler value and leaves the input untouched.
package handler

import (
	"github.com/Fantom-foundation/Vigil/go/tosca"
)

// InterpreterHandle is the type of slots observing the state of a frame.
type InterpreterHandle func(ctx *tosca.EvmContext, interp tosca.InterpreterState)

// LogHandle is the type of the slot processing emitted logs.
type LogHandle func(ctx *tosca.EvmContext, log tosca.Log)

// CallHandle is the type of the slot consulted before a call frame is
// entered. A non-nil result short-circuits the call.
type CallHandle func(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult

// CreateHandle is the type of the slot consulted before a create frame is
// entered. A non-nil outcome short-circuits the creation.
type CreateHandle func(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome

// FrameReturnHandle is the type of the slot settling a finished frame. It
// returns the final result and true if the finished frame was the outermost
// one; otherwise the result has been handed to the parent frame and false is
// returned.
type FrameReturnHandle func(ctx *tosca.EvmContext, child *tosca.Frame, result tosca.ExecutionResult) (tosca.ExecutionResult, bool)

// RefundHandle is the type of the slot finalizing the refund of a
// transaction.
type RefundHandle func(ctx *tosca.EvmContext, gas *tosca.GasCounter)

// GasHandle is the type of the slots settling the gas payments of a
// transaction.
type GasHandle func(ctx *tosca.EvmContext, gas *tosca.GasCounter) error

// Handler is the set of slots invoked by a processor while running a
// transaction. A Handler must not be modified once an execution using it has
// started; registrants derive new Handlers instead.
//
// Slot composition order, as applied by the registrants of this package:
//
//	InitializeInterp, Step, StepEnd, Log   old first, then new
//	Call, Create                           old first; the first non-nil result wins
//	FrameReturn                            new first, then old
//	CalculateGasRefund, ReimburseCaller,
//	RewardBeneficiary                      old first, then new
type Handler struct {
	InitializeInterp InterpreterHandle
	Step             InterpreterHandle
	StepEnd          InterpreterHandle
	Log              LogHandle

	Call        CallHandle
	Create      CreateHandle
	FrameReturn FrameReturnHandle

	CalculateGasRefund RefundHandle
	ReimburseCaller    GasHandle
	RewardBeneficiary  GasHandle
}

// OnStep forwards the interpreter's step notification to the Step slot.
func (h Handler) OnStep(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	if h.Step != nil {
		h.Step(ctx, interp)
	}
}

// OnStepEnd forwards to the StepEnd slot.
func (h Handler) OnStepEnd(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	if h.StepEnd != nil {
		h.StepEnd(ctx, interp)
	}
}

// OnLog forwards to the Log slot.
func (h Handler) OnLog(ctx *tosca.EvmContext, log tosca.Log) {
	if h.Log != nil {
		h.Log(ctx, log)
	}
}

var _ tosca.Hooks = Handler{}

// Registrant is implemented by components extending a Handler. Implementations
// must capture the slots they wrap and invoke them; a registrant dropping a
// previously registered slot breaks the extensions of all earlier
// registrants. This is not detected.
type Registrant interface {
	RegisterHandler(Handler) Handler
}

// RegistrantFunc adapts a function to the Registrant interface.
type RegistrantFunc func(Handler) Handler

func (f RegistrantFunc) RegisterHandler(h Handler) Handler {
	return f(h)
}

// Build applies the given registrants to base in slice order. Each
// registrant sees the Handler produced by the registrants before it.
func Build(base Handler, registrants ...Registrant) Handler {
	res := base
	for _, registrant := range registrants {
		res = registrant.RegisterHandler(res)
	}
	return res
}

// WithDefaults returns a copy of h in which all unset slots are taken from
// the Mainnet handler.
func WithDefaults(h Handler) Handler {
	base := Mainnet()
	if h.InitializeInterp == nil {
		h.InitializeInterp = base.InitializeInterp
	}
	if h.Step == nil {
		h.Step = base.Step
	}
	if h.StepEnd == nil {
		h.StepEnd = base.StepEnd
	}
	if h.Log == nil {
		h.Log = base.Log
	}
	if h.Call == nil {
		h.Call = base.Call
	}
	if h.Create == nil {
		h.Create = base.Create
	}
	if h.FrameReturn == nil {
		h.FrameReturn = base.FrameReturn
	}
	if h.CalculateGasRefund == nil {
		h.CalculateGasRefund = base.CalculateGasRefund
	}
	if h.ReimburseCaller == nil {
		h.ReimburseCaller = base.ReimburseCaller
	}
	if h.RewardBeneficiary == nil {
		h.RewardBeneficiary = base.RewardBeneficiary
	}
	return h
}

// BuildMainnet applies the given registrants to the Mainnet handler.
func BuildMainnet(registrants ...Registrant) Handler {
	return Build(Mainnet(), registrants...)
}
