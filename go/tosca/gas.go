// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

// GasCounter tracks the gas budget of a frame or a transaction. The limit is
// fixed at construction time; the remaining gas never exceeds the limit and
// never drops below zero.
type GasCounter struct {
	limit     Gas
	remaining Gas
	refunded  int64
	lastCost  Gas
}

// NewGasCounter creates a counter with the full limit available.
func NewGasCounter(limit Gas) GasCounter {
	return GasCounter{limit: limit, remaining: limit}
}

func (g *GasCounter) Limit() Gas {
	return g.limit
}

func (g *GasCounter) Remaining() Gas {
	return g.remaining
}

// Spent returns the amount of gas consumed so far.
func (g *GasCounter) Spent() Gas {
	return g.limit - g.remaining
}

// Refunded returns the accumulated refund. The value may be negative while
// a transaction is in progress.
func (g *GasCounter) Refunded() int64 {
	return g.refunded
}

// LastCost returns the cost of the last successfully recorded charge.
func (g *GasCounter) LastCost() Gas {
	return g.lastCost
}

// RecordCost charges the given amount. If not enough gas is remaining, the
// counter is left untouched and false is returned.
func (g *GasCounter) RecordCost(cost Gas) bool {
	if cost > g.remaining {
		return false
	}
	g.remaining -= cost
	g.lastCost = cost
	return true
}

// Spend forfeits all of the remaining gas.
func (g *GasCounter) Spend() {
	g.RecordCost(g.remaining)
}

// EraseCost gives back gas previously charged, e.g. the unused part of the
// budget of a nested call. The remaining gas saturates at the limit.
func (g *GasCounter) EraseCost(returned Gas) {
	if returned > g.limit-g.remaining {
		g.remaining = g.limit
		return
	}
	g.remaining += returned
}

// RecordRefund adds the given (potentially negative) amount to the refund.
func (g *GasCounter) RecordRefund(refund int64) {
	g.refunded += refund
}

// SetFinalRefund caps the refund to the given fraction of the spent gas.
// Negative refunds are dropped.
func (g *GasCounter) SetFinalRefund(quotient uint64) {
	if g.refunded < 0 {
		g.refunded = 0
	}
	if quotient == 0 {
		return
	}
	max := uint64(g.Spent()) / quotient
	if uint64(g.refunded) > max {
		g.refunded = int64(max)
	}
}

// SaturatingSub returns a-b, or zero if b exceeds a.
func SaturatingSub(a, b Gas) Gas {
	if b > a {
		return 0
	}
	return a - b
}
