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
	"encoding/json"
	"math"
	"testing"

	"github.com/holiman/uint256"
)

func TestAddress_ParseAddress(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Address
	}{
		"short":       {"0x1", Address{19: 1}},
		"no prefix":   {"0102", Address{18: 1, 19: 2}},
		"upper case":  {"0xAB", Address{19: 0xab}},
		"full length": {"0x0100000000000000000000000000000000000002", Address{0: 1, 19: 2}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAddress(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.want, got; want != got {
				t.Errorf("unexpected address, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestAddress_ParseAddressRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"0xzz", "0x000000000000000000000000000000000000000001"} {
		if _, err := ParseAddress(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestAddress_JSON_Encoding(t *testing.T) {
	address := Address{0: 0x12, 19: 0x34}
	encoded, err := json.Marshal(address)
	if err != nil {
		t.Fatalf("failed to encode address: %v", err)
	}
	want := `"0x1200000000000000000000000000000000000034"`
	if got := string(encoded); want != got {
		t.Errorf("unexpected encoding, wanted %s, got %s", want, got)
	}
	var restored Address
	if err := json.Unmarshal(encoded, &restored); err != nil {
		t.Fatalf("failed to decode address: %v", err)
	}
	if restored != address {
		t.Errorf("unexpected decoded address, wanted %v, got %v", address, restored)
	}
}

func TestAddress_JSON_InvalidValueDecodingFails(t *testing.T) {
	inputs := []string{`"12"`, `"0x12"`, `"0xzz00000000000000000000000000000000000000"`, `12`}
	for _, input := range inputs {
		var address Address
		if err := json.Unmarshal([]byte(input), &address); err == nil {
			t.Errorf("expected decoding of %s to fail", input)
		}
	}
}

func TestValue_NewValue(t *testing.T) {
	tests := map[string]struct {
		args []uint64
		want Value
	}{
		"zero":  {nil, Value{}},
		"one":   {[]uint64{1}, Value{31: 1}},
		"two":   {[]uint64{1, 2}, Value{23: 1, 31: 2}},
		"four":  {[]uint64{1, 0, 0, 2}, Value{7: 1, 31: 2}},
		"large": {[]uint64{math.MaxUint64}, Value{24: 0xff, 25: 0xff, 26: 0xff, 27: 0xff, 28: 0xff, 29: 0xff, 30: 0xff, 31: 0xff}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewValue(test.args...); got != test.want {
				t.Errorf("unexpected value, wanted %v, got %v", test.want, got)
			}
		})
	}
}

func TestValue_UintConversions(t *testing.T) {
	value := NewValue(1, 2)
	if want, got := new(uint256.Int).SetBytes(value[:]), value.ToUint256(); !want.Eq(got) {
		t.Errorf("unexpected uint256, wanted %v, got %v", want, got)
	}
	if want, got := value.ToUint256().ToBig(), value.ToBig(); want.Cmp(got) != 0 {
		t.Errorf("unexpected big int, wanted %v, got %v", want, got)
	}
	if want, got := value, ValueFromUint256(value.ToUint256()); want != got {
		t.Errorf("unexpected round-trip, wanted %v, got %v", want, got)
	}
	if got := ValueFromUint256(nil); !got.IsZero() {
		t.Errorf("nil should convert to zero, got %v", got)
	}
}

func TestValue_StringProducesDecimalPrint(t *testing.T) {
	if want, got := "18446744073709551617", NewValue(1, 1).String(); want != got {
		t.Errorf("unexpected print, wanted %s, got %s", want, got)
	}
}

func TestValue_Arithmetic(t *testing.T) {
	max := NewValue(math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64)
	tests := map[string]struct {
		got, want Value
	}{
		"add":          {Add(NewValue(1), NewValue(2)), NewValue(3)},
		"add carry":    {Add(NewValue(math.MaxUint64), NewValue(1)), NewValue(1, 0)},
		"add overflow": {Add(max, NewValue(1)), NewValue()},
		"sub":          {Sub(NewValue(3), NewValue(2)), NewValue(1)},
		"sub borrow":   {Sub(NewValue(1, 0), NewValue(1)), NewValue(math.MaxUint64)},
		"sub wrap":     {Sub(NewValue(), NewValue(1)), max},
		"scale":        {NewValue(7).Scale(6), NewValue(42)},
		"scale zero":   {NewValue(7).Scale(0), NewValue()},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if test.got != test.want {
				t.Errorf("unexpected result, wanted %v, got %v", test.want, test.got)
			}
		})
	}
}

func TestValue_Comparison(t *testing.T) {
	small, large := NewValue(1), NewValue(1, 0)
	if small.Cmp(large) >= 0 || large.Cmp(small) <= 0 || small.Cmp(small) != 0 {
		t.Errorf("unexpected ordering of %v and %v", small, large)
	}
}

func TestCallKind_JSON_Encoding(t *testing.T) {
	for _, kind := range []CallKind{Call, StaticCall, DelegateCall, CallCode, Create, Create2} {
		encoded, err := json.Marshal(kind)
		if err != nil {
			t.Fatalf("failed to encode %v: %v", kind, err)
		}
		var restored CallKind
		if err := json.Unmarshal(encoded, &restored); err != nil {
			t.Fatalf("failed to decode %s: %v", encoded, err)
		}
		if restored != kind {
			t.Errorf("unexpected decoded kind, wanted %v, got %v", kind, restored)
		}
	}
}

func TestCallKind_JSON_InvalidValueEncodingFails(t *testing.T) {
	if _, err := json.Marshal(CallKind(-1)); err == nil {
		t.Errorf("expected encoding to fail")
	}
	var kind CallKind
	if err := json.Unmarshal([]byte(`"jump"`), &kind); err == nil {
		t.Errorf("expected decoding to fail")
	}
}
