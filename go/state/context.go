// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package state provides an in-memory, journaled implementation of a
// transaction context. It keeps no data beyond the lifetime of the process.
package state

import (
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/exp/slices"
)

// Context is a tosca.TransactionContext operating on an Accounts model.
// Every modification is recorded in an undo log; snapshots are positions in
// this log. The original state handed to New is used to classify storage
// updates and is never modified.
type Context struct {
	original Accounts
	current  Accounts
	logs     []tosca.Log
	undo     []func()

	// BlockHashes provides the results of GetBlockHash. Unknown blocks have
	// a zero hash.
	BlockHashes map[int64]tosca.Hash
}

var _ tosca.TransactionContext = (*Context)(nil)

func New(initial Accounts) *Context {
	if initial == nil {
		initial = Accounts{}
	}
	return &Context{
		original: initial.Clone(),
		current:  initial.Clone(),
	}
}

// Accounts returns a copy of the current state.
func (c *Context) Accounts() Accounts {
	return c.current.Clone()
}

func (c *Context) AccountExists(addr tosca.Address) bool {
	account := c.current[addr]
	return !account.IsEmpty()
}

func (c *Context) GetBalance(addr tosca.Address) tosca.Value {
	return c.current[addr].Balance
}

func (c *Context) SetBalance(addr tosca.Address, value tosca.Value) {
	c.update(addr, func(a *Account) { a.Balance = value })
}

func (c *Context) GetNonce(addr tosca.Address) uint64 {
	return c.current[addr].Nonce
}

func (c *Context) SetNonce(addr tosca.Address, nonce uint64) {
	c.update(addr, func(a *Account) { a.Nonce = nonce })
}

func (c *Context) GetCode(addr tosca.Address) tosca.Code {
	return slices.Clone(c.current[addr].Code)
}

// GetCodeHash returns the Keccak256 hash of the code of the account, or a
// zero hash for non-existing accounts.
func (c *Context) GetCodeHash(addr tosca.Address) tosca.Hash {
	if !c.AccountExists(addr) {
		return tosca.Hash{}
	}
	return tosca.Hash(crypto.Keccak256Hash(c.current[addr].Code))
}

func (c *Context) GetCodeSize(addr tosca.Address) int {
	return len(c.current[addr].Code)
}

func (c *Context) SetCode(addr tosca.Address, code tosca.Code) {
	code = slices.Clone(code)
	c.update(addr, func(a *Account) { a.Code = code })
}

func (c *Context) GetStorage(addr tosca.Address, key tosca.Key) tosca.Word {
	return c.current[addr].Storage[key]
}

func (c *Context) SetStorage(addr tosca.Address, key tosca.Key, value tosca.Word) tosca.StorageStatus {
	original := c.original[addr].Storage[key]
	current := c.GetStorage(addr, key)
	c.update(addr, func(a *Account) {
		storage := a.Storage.Clone()
		if storage == nil {
			storage = Storage{}
		}
		if value == (tosca.Word{}) {
			delete(storage, key)
		} else {
			storage[key] = value
		}
		a.Storage = storage
	})
	return tosca.GetStorageStatus(original, current, value)
}

// update applies the given modification to a copy of the account and
// records the previous version in the undo log.
func (c *Context) update(addr tosca.Address, modify func(*Account)) {
	previous, existed := c.current[addr]
	modified := previous
	modify(&modified)
	c.current[addr] = modified
	c.undo = append(c.undo, func() {
		if existed {
			c.current[addr] = previous
		} else {
			delete(c.current, addr)
		}
	})
}

func (c *Context) CreateSnapshot() tosca.Snapshot {
	return tosca.Snapshot(len(c.undo))
}

// RestoreSnapshot reverts all modifications made since the given snapshot
// was created. Snapshots taken after the restored one become invalid.
func (c *Context) RestoreSnapshot(snapshot tosca.Snapshot) {
	for len(c.undo) > int(snapshot) {
		last := len(c.undo) - 1
		c.undo[last]()
		c.undo = c.undo[:last]
	}
}

func (c *Context) EmitLog(log tosca.Log) {
	size := len(c.logs)
	c.logs = append(c.logs, log)
	c.undo = append(c.undo, func() { c.logs = c.logs[:size] })
}

func (c *Context) GetLogs() []tosca.Log {
	return slices.Clone(c.logs)
}

func (c *Context) GetBlockHash(number int64) tosca.Hash {
	return c.BlockHashes[number]
}
