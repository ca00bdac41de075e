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

import "math"

// GetStorageStatus classifies the update of a storage slot from its current
// value to new, given the original value committed before the transaction.
// See t.ly/b5HPf for the definition of the return status.
func GetStorageStatus(original, current, new Word) StorageStatus {
	var zero Word
	switch {
	case current == new:
		return StorageAssigned
	case original == current:
		switch {
		case original == zero:
			return StorageAdded
		case new == zero:
			return StorageDeleted
		default:
			return StorageModified
		}
	case original == zero:
		// 0 -> Y -> 0
		if new == zero {
			return StorageAddedDeleted
		}
	case current == zero:
		// X -> 0 -> X  or  X -> 0 -> Z
		if new == original {
			return StorageDeletedRestored
		}
		return StorageDeletedAdded
	case new == zero:
		return StorageModifiedDeleted
	case new == original:
		return StorageModifiedRestored
	}
	return StorageAssigned
}

// SizeInWords returns the number of words required to store the given size,
// checking that size+32 does not overflow uint64.
func SizeInWords(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}
	return (size + 31) / 32
}
