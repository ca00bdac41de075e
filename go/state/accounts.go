// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Vigil/go/tosca"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Accounts is a plain value model of a world state, mapping addresses to
// their accounts. Empty accounts are equivalent to missing ones.
type Accounts map[tosca.Address]Account

func (s Accounts) Equal(other Accounts) bool {
	return equalIgnoringZero(s, other, func(a, b Account) bool {
		return a.Equal(&b)
	})
}

func (s Accounts) Clone() Accounts {
	if s == nil {
		return nil
	}
	res := make(Accounts, len(s))
	for addr, account := range s {
		res[addr] = account.Clone()
	}
	return res
}

// Diff lists the differences between the two states in a deterministic
// order.
func (s Accounts) Diff(other Accounts) []string {
	return diff("", s, other, func(addr tosca.Address, a, b Account) []string {
		if a.Equal(&b) {
			return nil
		}
		return a.Diff(fmt.Sprintf("%v/", addr), &b)
	})
}

// Account is the state of a single account. The zero account is empty.
type Account struct {
	Balance tosca.Value
	Nonce   uint64
	Code    tosca.Code
	Storage Storage
}

func (a *Account) IsEmpty() bool {
	return a.Balance == (tosca.Value{}) && a.Nonce == 0 && len(a.Code) == 0
}

func (a *Account) Equal(other *Account) bool {
	return a.Balance == other.Balance &&
		a.Nonce == other.Nonce &&
		bytes.Equal(a.Code, other.Code) &&
		a.Storage.Equal(other.Storage)
}

func (a *Account) Clone() Account {
	return Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Code:    slices.Clone(a.Code),
		Storage: a.Storage.Clone(),
	}
}

func (a *Account) Diff(prefix string, other *Account) []string {
	var res []string
	if a.Balance != other.Balance {
		res = append(res, fmt.Sprintf("balance: %v != %v", a.Balance, other.Balance))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("nonce: %d != %d", a.Nonce, other.Nonce))
	}
	if !bytes.Equal(a.Code, other.Code) {
		res = append(res, fmt.Sprintf("code: 0x%x != 0x%x", a.Code, other.Code))
	}
	for i := range res {
		res[i] = prefix + res[i]
	}
	return append(res, a.Storage.Diff(prefix+"storage/", other.Storage)...)
}

// Storage maps keys to values. Zero values are equivalent to missing
// entries.
type Storage map[tosca.Key]tosca.Word

func (s Storage) Equal(other Storage) bool {
	return equalIgnoringZero(s, other, func(a, b tosca.Word) bool {
		return a == b
	})
}

func (s Storage) Clone() Storage {
	return maps.Clone(s)
}

func (s Storage) Diff(prefix string, other Storage) []string {
	return diff(prefix, s, other, func(key tosca.Key, a, b tosca.Word) []string {
		if a == b {
			return nil
		}
		return []string{fmt.Sprintf("%v: %v != %v", key, a, b)}
	})
}

func equalIgnoringZero[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	for k, v := range a {
		if !equal(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if !equal(v, a[k]) {
			return false
		}
	}
	return true
}

func diff[K comparable, V any](prefix string, a, b map[K]V, compare func(K, V, V) []string) []string {
	keys := maps.Keys(a)
	for k := range b {
		if _, found := a[k]; !found {
			keys = append(keys, k)
		}
	}
	var res []string
	for _, k := range keys {
		for _, d := range compare(k, a[k], b[k]) {
			res = append(res, prefix+d)
		}
	}
	slices.Sort(res)
	return res
}
