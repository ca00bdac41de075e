// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package stepvm

import (
	"github.com/Fantom-foundation/Vigil/go/tosca"
	"github.com/Fantom-foundation/Vigil/go/tosca/vm"
	lru "github.com/hashicorp/golang-lru/v2"
)

// jumpDests marks the code positions holding a JUMPDEST instruction that is
// not part of the immediate data of a PUSH.
type jumpDests []uint64

func (j jumpDests) isValid(pc uint64) bool {
	idx := pc / 64
	if idx >= uint64(len(j)) {
		return false
	}
	return j[idx]&(1<<(pc%64)) != 0
}

func analyze(code []byte) jumpDests {
	res := make(jumpDests, (len(code)+63)/64)
	for i := 0; i < len(code); {
		op := vm.OpCode(code[i])
		if op == vm.JUMPDEST {
			res[i/64] |= 1 << (uint(i) % 64)
		}
		i += op.Width()
	}
	return res
}

// analyzer computes jump destination tables, caching the results by code
// hash if a cache is configured.
type analyzer struct {
	cache *lru.Cache[tosca.Hash, jumpDests]
}

func newAnalyzer(capacity int) (*analyzer, error) {
	if capacity <= 0 {
		return &analyzer{}, nil
	}
	cache, err := lru.New[tosca.Hash, jumpDests](capacity)
	if err != nil {
		return nil, err
	}
	return &analyzer{cache: cache}, nil
}

// analyze returns the jump destinations of the given code. If the hash is
// not nil, it is assumed to be the valid hash of the code.
func (a *analyzer) analyze(code []byte, codeHash *tosca.Hash) jumpDests {
	if a.cache == nil || codeHash == nil {
		return analyze(code)
	}
	if res, found := a.cache.Get(*codeHash); found {
		return res
	}
	res := analyze(code)
	a.cache.Add(*codeHash, res)
	return res
}
