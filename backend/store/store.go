// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

//go:generate mockgen -source store.go -destination store_mocks.go -package store

import (
	"iter"

	"github.com/symexec/memstore/go/common"
)

// Store is a sparse association of keys to values backing the content of a
// memory object. Keys without an association are absent. Implementations are
// chosen once, when the object is created, and are then used through this
// interface only.
//
// The type I is the type used for the keys, the type V for the stored values.
// Stores are not safe for concurrent use.
type Store[I common.Identifier, V any] interface {
	// Contains reports whether a value is associated to the key.
	Contains(key I) bool

	// Lookup returns the value associated to the key and whether it is present.
	Lookup(key I) (V, bool)

	// At returns the value associated to the key. The key must be present,
	// implementations panic otherwise.
	At(key I) V

	// Set associates the value to the key.
	Set(key I, value V)

	// Remove drops the association of the key, if there is any.
	Remove(key I)

	// Empty is true if no key is associated.
	Empty() bool

	// Size returns the number of associated keys.
	Size() int

	// Clear removes all associations.
	Clear()

	// Begin returns a fresh iterator positioned at the first entry.
	Begin() Iterator[I, V]

	// End returns the past-the-end iterator.
	End() Iterator[I, V]

	// Clone returns an independent copy of this store using the same backend.
	Clone() Store[I, V]

	// provides the size of the store in memory in bytes
	common.MemoryFootprintProvider
}

// Factory creates empty stores of one backend. A factory is the unit by which
// owners of memory objects pick a backend.
type Factory[I common.Identifier, V any] interface {
	// Create produces an empty store. The default value represents slots
	// never written; backends tracking presence through map entries ignore it.
	Create(defaultValue V) Store[I, V]
}

// All provides the entries of the store for range loops.
func All[I common.Identifier, V any](s Store[I, V]) iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		end := s.End()
		for it := s.Begin(); it.NotEqual(end); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Entries collects the entries of the store in iteration order.
func Entries[I common.Identifier, V any](s Store[I, V]) []common.MapEntry[I, V] {
	res := make([]common.MapEntry[I, V], 0, s.Size())
	for key, value := range All(s) {
		res = append(res, common.MapEntry[I, V]{Key: key, Val: value})
	}
	return res
}
