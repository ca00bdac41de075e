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
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *Address) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

// ParseAddress parses a hex encoded address with an optional 0x prefix.
// Shorter inputs are left-padded with zeros.
func ParseAddress(s string) (Address, error) {
	var res Address
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return res, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(data) > len(res) {
		return res, fmt.Errorf("invalid address %q: too long", s)
	}
	copy(res[len(res)-len(data):], data)
	return res, nil
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

func (k Key) String() string {
	return fmt.Sprintf("0x%x", k[:])
}

func (w Word) String() string {
	return fmt.Sprintf("0x%x", w[:])
}

// NewValue creates a new Value instance from up to 4 uint64 arguments. The
// arguments are given in the order from most significant to least significant
// by padding leading zeros as needed. No argument results in a value of zero.
func NewValue(args ...uint64) (result Value) {
	if len(args) > 4 {
		panic("too many arguments")
	}
	offset := (4 - len(args)) * 8
	for i, cur := range args {
		binary.BigEndian.PutUint64(result[offset+i*8:], cur)
	}
	return
}

// ValueFromUint256 converts a *uint256.Int to a Value.
// If the input is nil, it returns 0.
func ValueFromUint256(value *uint256.Int) (result Value) {
	if value == nil {
		return result
	}
	return value.Bytes32()
}

func (v Value) ToBig() *big.Int {
	return new(big.Int).SetBytes(v[:])
}

func (v Value) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(v[:])
}

func (v Value) String() string {
	return v.ToUint256().Dec()
}

func (v Value) Cmp(o Value) int {
	return v.ToUint256().Cmp(o.ToUint256())
}

func (v Value) IsZero() bool {
	return v == Value{}
}

// Add computes a+b modulo 2^256.
func Add(a, b Value) Value {
	return ValueFromUint256(new(uint256.Int).Add(a.ToUint256(), b.ToUint256()))
}

// Sub computes a-b modulo 2^256.
func Sub(a, b Value) Value {
	return ValueFromUint256(new(uint256.Int).Sub(a.ToUint256(), b.ToUint256()))
}

// Scale computes v*s modulo 2^256.
func (v Value) Scale(s uint64) Value {
	factor := new(uint256.Int).SetUint64(s)
	return ValueFromUint256(factor.Mul(factor, v.ToUint256()))
}

func (v Value) MarshalText() ([]byte, error) {
	return bytesToText(v[:])
}

func (v *Value) UnmarshalText(data []byte) error {
	return textToBytes(v[:], data)
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s, found := strings.CutPrefix(string(data), "0x")
	if !found {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if want, got := len(trg), len(decoded); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg, decoded)
	return nil
}

var callKindNames = map[CallKind]string{
	Call:         "call",
	StaticCall:   "static_call",
	DelegateCall: "delegate_call",
	CallCode:     "call_code",
	Create:       "create",
	Create2:      "create2",
}

func (k CallKind) String() string {
	if name, found := callKindNames[k]; found {
		return name
	}
	return "unknown"
}

func (k CallKind) MarshalJSON() ([]byte, error) {
	name, found := callKindNames[k]
	if !found {
		return nil, fmt.Errorf("invalid call kind: %d", k)
	}
	return json.Marshal(name)
}

func (k *CallKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	name = strings.ToLower(name)
	for kind, cur := range callKindNames {
		if cur == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown call kind: %s", name)
}
