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

import (
	"math"
	"testing"
)

func TestGasCounter_NewCounterHasFullBudget(t *testing.T) {
	gas := NewGasCounter(100)
	if gas.Limit() != 100 || gas.Remaining() != 100 || gas.Spent() != 0 {
		t.Errorf("unexpected counter state: %+v", gas)
	}
}

func TestGasCounter_RecordCost(t *testing.T) {
	tests := map[string]struct {
		limit, cost   Gas
		success       bool
		wantRemaining Gas
		wantLastCost  Gas
	}{
		"zero cost":     {limit: 10, cost: 0, success: true, wantRemaining: 10, wantLastCost: 0},
		"partial":       {limit: 10, cost: 3, success: true, wantRemaining: 7, wantLastCost: 3},
		"exact":         {limit: 10, cost: 10, success: true, wantRemaining: 0, wantLastCost: 10},
		"insufficient":  {limit: 10, cost: 11, success: false, wantRemaining: 10, wantLastCost: 0},
		"huge overflow": {limit: 10, cost: math.MaxUint64, success: false, wantRemaining: 10, wantLastCost: 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			gas := NewGasCounter(test.limit)
			if got := gas.RecordCost(test.cost); got != test.success {
				t.Errorf("unexpected success, wanted %t, got %t", test.success, got)
			}
			if want, got := test.wantRemaining, gas.Remaining(); want != got {
				t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
			}
			if want, got := test.wantLastCost, gas.LastCost(); want != got {
				t.Errorf("unexpected last cost, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestGasCounter_EraseCostIsClampedToLimit(t *testing.T) {
	gas := NewGasCounter(100)
	gas.RecordCost(40)
	gas.EraseCost(15)
	if want, got := Gas(75), gas.Remaining(); want != got {
		t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
	}
	gas.EraseCost(math.MaxUint64)
	if want, got := Gas(100), gas.Remaining(); want != got {
		t.Errorf("unexpected remaining gas, wanted %d, got %d", want, got)
	}
}

func TestGasCounter_SpendForfeitsRemainingGas(t *testing.T) {
	gas := NewGasCounter(100)
	gas.RecordCost(30)
	gas.Spend()
	if gas.Remaining() != 0 || gas.Spent() != 100 || gas.LastCost() != 70 {
		t.Errorf("unexpected counter state after spend: %+v", gas)
	}
}

func TestGasCounter_SetFinalRefund(t *testing.T) {
	tests := map[string]struct {
		spent    Gas
		refund   int64
		quotient uint64
		want     int64
	}{
		"below cap":      {spent: 100, refund: 10, quotient: 5, want: 10},
		"capped":         {spent: 100, refund: 30, quotient: 5, want: 20},
		"capped by half": {spent: 100, refund: 80, quotient: 2, want: 50},
		"negative":       {spent: 100, refund: -10, quotient: 5, want: 0},
		"nothing spent":  {spent: 0, refund: 10, quotient: 5, want: 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			gas := NewGasCounter(1000)
			gas.RecordCost(test.spent)
			gas.RecordRefund(test.refund)
			gas.SetFinalRefund(test.quotient)
			if want, got := test.want, gas.Refunded(); want != got {
				t.Errorf("unexpected refund, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestGasCounter_RefundsAccumulate(t *testing.T) {
	gas := NewGasCounter(10)
	gas.RecordRefund(15000)
	gas.RecordRefund(-4800)
	if want, got := int64(10200), gas.Refunded(); want != got {
		t.Errorf("unexpected refund, wanted %d, got %d", want, got)
	}
}

func TestSaturatingSub(t *testing.T) {
	tests := []struct{ a, b, want Gas }{
		{5, 3, 2},
		{3, 3, 0},
		{3, 5, 0},
		{0, math.MaxUint64, 0},
	}
	for _, test := range tests {
		if got := SaturatingSub(test.a, test.b); got != test.want {
			t.Errorf("SaturatingSub(%d, %d): wanted %d, got %d", test.a, test.b, test.want, got)
		}
	}
}
