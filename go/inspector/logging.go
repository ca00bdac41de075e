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
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/ethereum/go-ethereum/log"
)

// LoggingConfig controls the verbosity of a LoggingInspector. The zero value
// logs frame events and emitted logs only.
type LoggingConfig struct {
	// Steps enables a trace level record for every executed instruction.
	Steps bool
}

// LoggingInspector writes structured records of the observed execution
// events to a logger. Frame events are logged at debug level, instructions
// at trace level.
type LoggingInspector struct {
	NoOpInspector
	logger log.Logger
	config LoggingConfig
}

// NewLoggingInspector creates an inspector writing to the given logger. If
// logger is nil, the root logger is used.
func NewLoggingInspector(logger log.Logger, config LoggingConfig) *LoggingInspector {
	if logger == nil {
		logger = log.Root()
	}
	return &LoggingInspector{logger: logger, config: config}
}

func (l *LoggingInspector) InitializeInterp(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	l.logger.Debug("Starting frame", "depth", ctx.Depth, "contract", interp.Contract().String(), "gas", uint64(interp.Gas().Limit()))
}

func (l *LoggingInspector) Step(ctx *tosca.EvmContext, interp tosca.InterpreterState) {
	if !l.config.Steps {
		return
	}
	l.logger.Trace("Step", "depth", ctx.Depth, "pc", interp.ProgramCounter(), "op", interp.CurrentOpCode().String(), "gas", uint64(interp.Gas().Remaining()), "stack", len(interp.Stack()))
}

func (l *LoggingInspector) Log(ctx *tosca.EvmContext, address tosca.Address, topics []tosca.Hash, data tosca.Data) {
	l.logger.Debug("Emitted log", "depth", ctx.Depth, "address", address.String(), "topics", len(topics), "size", len(data))
}

func (l *LoggingInspector) Call(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult {
	l.logger.Debug("Entering call", "depth", ctx.Depth, "kind", inputs.Kind.String(), "to", inputs.Recipient.String(), "value", inputs.Value.String(), "gas", uint64(inputs.Gas))
	return nil
}

func (l *LoggingInspector) CallEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	l.logger.Debug("Leaving call", "depth", ctx.Depth, "result", result.Result.String(), "gasUsed", uint64(result.Gas.Spent()), "output", len(result.Output))
	return result
}

func (l *LoggingInspector) Create(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome {
	l.logger.Debug("Entering create", "depth", ctx.Depth, "kind", inputs.Kind.String(), "sender", inputs.Sender.String(), "value", inputs.Value.String(), "gas", uint64(inputs.Gas))
	return nil
}

func (l *LoggingInspector) CreateEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	created := "none"
	if address != nil {
		created = address.String()
	}
	l.logger.Debug("Leaving create", "depth", ctx.Depth, "result", result.Result.String(), "address", created, "gasUsed", uint64(result.Gas.Spent()))
	return result, address
}
