// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package immutable

import "github.com/symexec/memstore/go/common"

// identifierHasher hashes integer keys for the HAMT backing PersistentMap.
// The library's default hasher only recognizes the predeclared integer types,
// so named identifier types need this one.
type identifierHasher[K common.Identifier] struct{}

func (identifierHasher[K]) Hash(key K) uint32 {
	// 64-bit finalizer of MurmurHash3, folded to 32 bits.
	h := uint64(key)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return uint32(h) ^ uint32(h>>32)
}

func (identifierHasher[K]) Equal(a, b K) bool {
	return a == b
}
