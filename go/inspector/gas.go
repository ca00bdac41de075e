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

// GasInspector derives the gas remaining in the current frame and the cost
// of the last instruction by observing step boundaries and call completions.
//
// The cost is computed as the difference between the previously observed
// remaining gas and the previously computed cost, not the current remaining
// gas. Consumers rely on this exact recurrence.
type GasInspector struct {
	NoOpInspector
	gasRemaining tosca.Gas
	lastGasCost  tosca.Gas
}

// GasRemaining returns the gas remaining observed at the last step boundary.
func (g *GasInspector) GasRemaining() tosca.Gas {
	return g.gasRemaining
}

// LastGasCost returns the cost derived at the last step boundary.
func (g *GasInspector) LastGasCost() tosca.Gas {
	return g.lastGasCost
}

func (g *GasInspector) InitializeInterp(_ *tosca.EvmContext, interp tosca.InterpreterState) {
	g.gasRemaining = interp.Gas().Limit()
}

func (g *GasInspector) StepEnd(_ *tosca.EvmContext, interp tosca.InterpreterState) {
	previous := g.gasRemaining
	g.gasRemaining = interp.Gas().Remaining()
	g.lastGasCost = tosca.SaturatingSub(previous, g.lastGasCost)
}

// CallEnd forfeits the remaining gas of failed calls.
func (g *GasInspector) CallEnd(_ *tosca.EvmContext, result tosca.ExecutionResult) tosca.ExecutionResult {
	if result.Result.IsError() {
		result.Gas.RecordCost(result.Gas.Remaining())
		g.gasRemaining = 0
	}
	return result
}
