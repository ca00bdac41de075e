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
)

func TestCallBlocker_BlocksCallsByCodeAddress(t *testing.T) {
	blocked := tosca.Address{1}
	blocker := NewCallBlocker(blocked)

	tests := map[string]struct {
		inputs  tosca.CallInputs
		blocked bool
	}{
		"other account": {
			inputs: tosca.CallInputs{Recipient: tosca.Address{2}, CodeAddress: tosca.Address{2}},
		},
		"blocked code": {
			inputs:  tosca.CallInputs{Recipient: tosca.Address{2}, CodeAddress: blocked},
			blocked: true,
		},
		"blocked recipient with other code": {
			inputs: tosca.CallInputs{Kind: tosca.DelegateCall, Recipient: blocked, CodeAddress: tosca.Address{2}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test.inputs.Gas = 1234
			res := blocker.Call(&tosca.EvmContext{}, &test.inputs)
			if !test.blocked {
				if res != nil {
					t.Fatalf("call should not be blocked, got %v", res)
				}
				return
			}
			if res == nil {
				t.Fatalf("call should be blocked")
			}
			if want, got := tosca.Revert, res.Result; want != got {
				t.Errorf("unexpected result, wanted %v, got %v", want, got)
			}
			if want, got := tosca.Gas(1234), res.Gas.Remaining(); want != got {
				t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestCreateDenier_DropsCreatedAddress(t *testing.T) {
	denier := &CreateDenier{}
	ctx := &tosca.EvmContext{}
	result := tosca.ExecutionResult{Result: tosca.Return}

	if _, address := denier.CreateEnd(ctx, result, &tosca.Address{1}); address != nil {
		t.Errorf("creation should be denied, got %v", address)
	}
	if _, address := denier.CreateEnd(ctx, tosca.ExecutionResult{Result: tosca.OutOfGas}, nil); address != nil {
		t.Errorf("failed creation should stay failed, got %v", address)
	}
	if want, got := 1, denier.Denied(); want != got {
		t.Errorf("unexpected number of denied creations, wanted %d, got %d", want, got)
	}
}

func TestSuccessForcer_TurnsRevertsIntoReturns(t *testing.T) {
	tests := map[tosca.InstructionResult]tosca.InstructionResult{
		tosca.Stop:        tosca.Stop,
		tosca.Return:      tosca.Return,
		tosca.Revert:      tosca.Return,
		tosca.CallTooDeep: tosca.Return,
		tosca.OutOfFunds:  tosca.Return,
		tosca.OutOfGas:    tosca.OutOfGas,
		tosca.InvalidJump: tosca.InvalidJump,
	}

	for input, want := range tests {
		t.Run(input.String(), func(t *testing.T) {
			res := SuccessForcer{}.CallEnd(&tosca.EvmContext{}, tosca.ExecutionResult{
				Result: input,
				Output: tosca.Data{1, 2},
			})
			if res.Result != want {
				t.Errorf("unexpected result, wanted %v, got %v", want, res.Result)
			}
			if len(res.Output) != 2 {
				t.Errorf("output should be preserved, got %v", res.Output)
			}
		})
	}
}
