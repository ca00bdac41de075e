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
	"encoding/json"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CallFrame is a node of the call tree recorded by a CallTracer.
type CallFrame struct {
	Kind    tosca.CallKind `json:"type"`
	From    tosca.Address  `json:"from"`
	To      *tosca.Address `json:"to,omitempty"`
	Value   tosca.Value    `json:"value"`
	Gas     tosca.Gas      `json:"gas"`
	GasUsed tosca.Gas      `json:"gasUsed"`
	Input   hexutil.Bytes  `json:"input,omitempty"`
	Output  hexutil.Bytes  `json:"output,omitempty"`
	Result  string         `json:"result"`
	Calls   []*CallFrame   `json:"calls,omitempty"`

	depth int
}

// CallTracer records the tree of call and create frames of a transaction.
// Frames short-circuited by an inspector running before the tracer only
// show up with their outcome.
type CallTracer struct {
	NoOpInspector
	root  *CallFrame
	stack []*CallFrame
}

func NewCallTracer() *CallTracer {
	return &CallTracer{}
}

// Root returns the outermost recorded frame, nil if nothing was recorded.
func (t *CallTracer) Root() *CallFrame {
	return t.root
}

// MarshalJSON encodes the recorded call tree.
func (t *CallTracer) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.root)
}

func (t *CallTracer) Call(ctx *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult {
	to := inputs.Recipient
	t.enter(&CallFrame{
		Kind:  inputs.Kind,
		From:  inputs.Sender,
		To:    &to,
		Value: inputs.Value,
		Gas:   inputs.Gas,
		Input: copyBytes(inputs.Input),
		depth: ctx.Depth,
	})
	return nil
}

func (t *CallTracer) CallEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	frame := t.exit(ctx.Depth, tosca.Call)
	frame.GasUsed = result.Gas.Spent()
	frame.Output = copyBytes(result.Output)
	frame.Result = result.Result.String()
	return result
}

func (t *CallTracer) Create(ctx *tosca.EvmContext, inputs *tosca.CreateInputs) *tosca.CreateOutcome {
	t.enter(&CallFrame{
		Kind:  inputs.Kind,
		From:  inputs.Sender,
		Value: inputs.Value,
		Gas:   inputs.Gas,
		Input: copyBytes(inputs.InitCode),
		depth: ctx.Depth,
	})
	return nil
}

func (t *CallTracer) CreateEnd(ctx *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	frame := t.exit(ctx.Depth, tosca.Create)
	frame.GasUsed = result.Gas.Spent()
	frame.Result = result.Result.String()
	if address != nil {
		created := *address
		frame.To = &created
	}
	return result, address
}

func (t *CallTracer) enter(frame *CallFrame) {
	if len(t.stack) == 0 {
		t.root = frame
	} else {
		parent := t.stack[len(t.stack)-1]
		parent.Calls = append(parent.Calls, frame)
	}
	t.stack = append(t.stack, frame)
}

// exit pops the frame at the given depth. If the matching enter event was
// not observed, a placeholder frame of the given kind is recorded instead.
func (t *CallTracer) exit(depth int, kind tosca.CallKind) *CallFrame {
	if size := len(t.stack); size > 0 && t.stack[size-1].depth == depth {
		frame := t.stack[size-1]
		t.stack = t.stack[:size-1]
		return frame
	}
	frame := &CallFrame{Kind: kind, depth: depth}
	t.enter(frame)
	t.stack = t.stack[:len(t.stack)-1]
	return frame
}

func copyBytes(data []byte) hexutil.Bytes {
	if len(data) == 0 {
		return nil
	}
	return append(hexutil.Bytes(nil), data...)
}
