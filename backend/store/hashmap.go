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

import (
	"fmt"
	"unsafe"

	"github.com/symexec/memstore/go/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// HashMapStore is a Store backed by a Go map. Keys are present if they have
// a map entry. All operations are O(1) amortized, cloning copies every entry.
type HashMapStore[I common.Identifier, V any] struct {
	data map[I]V
}

// NewHashMapStore creates an empty HashMapStore.
func NewHashMapStore[I common.Identifier, V any]() *HashMapStore[I, V] {
	return &HashMapStore[I, V]{data: map[I]V{}}
}

func (s *HashMapStore[I, V]) Contains(key I) bool {
	_, found := s.data[key]
	return found
}

func (s *HashMapStore[I, V]) Lookup(key I) (V, bool) {
	value, found := s.data[key]
	return value, found
}

func (s *HashMapStore[I, V]) At(key I) V {
	value, found := s.data[key]
	if !found {
		panic(fmt.Sprintf("key %d not present in hash map store", key))
	}
	return value
}

func (s *HashMapStore[I, V]) Set(key I, value V) {
	s.data[key] = value
}

func (s *HashMapStore[I, V]) Remove(key I) {
	delete(s.data, key)
}

func (s *HashMapStore[I, V]) Empty() bool {
	return len(s.data) == 0
}

func (s *HashMapStore[I, V]) Size() int {
	return len(s.data)
}

func (s *HashMapStore[I, V]) Clear() {
	maps.Clear(s.data)
}

// Begin returns an iterator visiting the keys in ascending order. The key
// order is fixed when the iterator is created, since the order of ranging
// over a Go map differs between runs.
func (s *HashMapStore[I, V]) Begin() Iterator[I, V] {
	keys := maps.Keys(s.data)
	slices.Sort(keys)
	return Iterator[I, V]{
		kind:    hashMapIteratorKind,
		hashMap: hashMapCursor[I, V]{data: s.data, keys: keys},
	}
}

func (s *HashMapStore[I, V]) End() Iterator[I, V] {
	return Iterator[I, V]{
		kind:    hashMapIteratorKind,
		hashMap: hashMapCursor[I, V]{data: s.data, pos: len(s.data)},
	}
}

func (s *HashMapStore[I, V]) Clone() Store[I, V] {
	return &HashMapStore[I, V]{data: maps.Clone(s.data)}
}

// GetMemoryFootprint provides an estimate of the memory used by the store,
// ignoring the bucket overhead of the map.
func (s *HashMapStore[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var entry common.MapEntry[I, V]
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	mf.AddChild("entries", common.NewMemoryFootprint(uintptr(len(s.data))*unsafe.Sizeof(entry)))
	return mf
}

// hashMapCursor walks a key snapshot of a HashMapStore.
type hashMapCursor[I common.Identifier, V any] struct {
	data map[I]V
	keys []I
	pos  int
}

func (c *hashMapCursor[I, V]) next() {
	c.pos++
}

func (c *hashMapCursor[I, V]) entry() common.MapEntry[I, V] {
	key := c.keys[c.pos]
	return common.MapEntry[I, V]{Key: key, Val: c.data[key]}
}

func (c *hashMapCursor[I, V]) notEqual(other *hashMapCursor[I, V]) bool {
	return c.pos != other.pos
}

type HashMapFactory[I common.Identifier, V any] struct{}

func (HashMapFactory[I, V]) Create(V) Store[I, V] {
	return NewHashMapStore[I, V]()
}
