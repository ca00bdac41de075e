// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package tracing provides an inspector exporting the frames of executed
// transactions as OpenTelemetry spans.
package tracing

import (
	"context"

	"github.com/Fantom-foundation/Vigil/go/inspector"
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrKind    = attribute.Key("vigil.kind")
	attrDepth   = attribute.Key("vigil.depth")
	attrTo      = attribute.Key("vigil.to")
	attrGas     = attribute.Key("vigil.gas")
	attrGasUsed = attribute.Key("vigil.gas_used")
	attrResult  = attribute.Key("vigil.result")
	attrCreated = attribute.Key("vigil.created")
	attrSteps   = attribute.Key("vigil.steps")
)

// Inspector opens one span per call or create frame. Spans of nested frames
// are children of the span of their parent frame; the outermost span is a
// child of the span carried by the context given to New, if any.
type Inspector struct {
	inspector.NoOpInspector
	base   context.Context
	tracer trace.Tracer
	stack  []frameSpan
}

type frameSpan struct {
	ctx   context.Context
	span  trace.Span
	depth int
	steps int64
}

func New(ctx context.Context, tracer trace.Tracer) *Inspector {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Inspector{base: ctx, tracer: tracer}
}

func (i *Inspector) Step(ctx *tosca.EvmContext, _ tosca.InterpreterState) {
	if top := i.top(); top != nil && top.depth == ctx.Depth {
		top.steps++
	}
}

func (i *Inspector) Log(_ *tosca.EvmContext, address tosca.Address, topics []tosca.Hash, data tosca.Data) {
	if top := i.top(); top != nil {
		top.span.AddEvent("log", trace.WithAttributes(
			attribute.String("vigil.address", address.String()),
			attribute.Int("vigil.topics", len(topics)),
			attribute.Int("vigil.size", len(data)),
		))
	}
}

func (i *Inspector) Call(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult {
	i.start(ctx.Depth, inputs.Kind,
		attrTo.String(inputs.Recipient.String()),
		attrGas.Int64(int64(inputs.Gas)),
	)
	return nil
}

func (i *Inspector) CallEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	i.end(ctx.Depth, tosca.Call, result)
	return result
}

func (i *Inspector) Create(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome {
	i.start(ctx.Depth, inputs.Kind, attrGas.Int64(int64(inputs.Gas)))
	return nil
}

func (i *Inspector) CreateEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	var extra []attribute.KeyValue
	if address != nil {
		extra = append(extra, attrCreated.String(address.String()))
	}
	i.end(ctx.Depth, tosca.Create, result, extra...)
	return result, address
}

func (i *Inspector) top() *frameSpan {
	if len(i.stack) == 0 {
		return nil
	}
	return &i.stack[len(i.stack)-1]
}

func (i *Inspector) start(depth int, kind tosca.CallKind, attrs ...attribute.KeyValue) {
	parent := i.base
	if top := i.top(); top != nil {
		parent = top.ctx
	}
	attrs = append(attrs, attrKind.String(kind.String()), attrDepth.Int(depth))
	ctx, span := i.tracer.Start(parent, kind.String(), trace.WithAttributes(attrs...))
	i.stack = append(i.stack, frameSpan{ctx: ctx, span: span, depth: depth})
}

func (i *Inspector) end(depth int, kind tosca.CallKind, result tosca.ExecutionResult, attrs ...attribute.KeyValue) {
	// Frames short-circuited before this inspector was consulted get a span
	// covering their outcome only.
	if top := i.top(); top == nil || top.depth != depth {
		i.start(depth, kind)
	}
	top := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	attrs = append(attrs,
		attrResult.String(result.Result.String()),
		attrGasUsed.Int64(int64(result.Gas.Spent())),
		attrSteps.Int64(top.steps),
	)
	top.span.SetAttributes(attrs...)
	if !result.Result.IsOk() {
		top.span.SetStatus(codes.Error, result.Result.String())
	}
	top.span.End()
}
