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

// CallBlocker short-circuits every call executing the code of one of the
// blocked accounts with a revert. The full gas budget of a blocked call is
// returned to its caller.
type CallBlocker struct {
	NoOpInspector
	blocked map[tosca.Address]struct{}
}

func NewCallBlocker(blocked ...tosca.Address) *CallBlocker {
	res := &CallBlocker{blocked: make(map[tosca.Address]struct{}, len(blocked))}
	for _, address := range blocked {
		res.blocked[address] = struct{}{}
	}
	return res
}

func (b *CallBlocker) Call(_ *tosca.EvmContext, inputs *tosca.CallInputs) *tosca.ExecutionResult {
	if _, found := b.blocked[inputs.CodeAddress]; !found {
		return nil
	}
	return &tosca.ExecutionResult{
		Result: tosca.Revert,
		Gas:    tosca.NewGasCounter(inputs.Gas),
	}
}

// CreateDenier denies all contract creations by dropping the address of the
// created contract. The processor then discards the state changes of the
// creation.
type CreateDenier struct {
	NoOpInspector
	denied int
}

// Denied returns the number of creations denied so far.
func (d *CreateDenier) Denied() int {
	return d.denied
}

func (d *CreateDenier) CreateEnd(_ *tosca.EvmContext, result tosca.ExecutionResult, address *tosca.Address) (tosca.ExecutionResult, *tosca.Address) {
	if address != nil {
		d.denied++
	}
	return result, nil
}

// SuccessForcer turns reverted call results into successful returns. Since
// it rewrites the result before the default return handling runs, the state
// changes of the reverted call are kept.
type SuccessForcer struct {
	NoOpInspector
}

func (SuccessForcer) CallEnd(_ *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	if result.Result.IsRevert() {
		result.Result = tosca.Return
	}
	return result
}
