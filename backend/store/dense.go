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
	"unsafe"

	"github.com/symexec/memstore/go/common"
)

// DenseStore is a Store over a fixed range of keys [0, capacity) backed by a
// plain slice. A key is present if its slot differs from the default value,
// so removing a key resets its slot. The number of non-default slots is
// maintained on every update; Size reports it, not the capacity.
//
// It is the best choice for small, contiguous key ranges that are mostly
// written. Clear is O(capacity).
type DenseStore[I common.Identifier, V any] struct {
	data         []V
	defaultValue V
	equal        func(a, b V) bool
	nonDefault   int
}

// NewDenseStore creates a store of the given capacity with all slots set to
// the default value. The equality function decides which slots hold the
// default value.
func NewDenseStore[I common.Identifier, V any](defaultValue V, capacity int, equal func(a, b V) bool) *DenseStore[I, V] {
	if equal == nil {
		panic("dense store requires an equality function")
	}
	res := &DenseStore[I, V]{
		data:         make([]V, capacity),
		defaultValue: defaultValue,
		equal:        equal,
	}
	res.Clear()
	return res
}

// Capacity returns the number of slots of this store.
func (s *DenseStore[I, V]) Capacity() int {
	return len(s.data)
}

// DefaultValue returns the value of slots not written.
func (s *DenseStore[I, V]) DefaultValue() V {
	return s.defaultValue
}

func (s *DenseStore[I, V]) inRange(key I) bool {
	return uint64(key) < uint64(len(s.data))
}

func (s *DenseStore[I, V]) Contains(key I) bool {
	return s.inRange(key) && !s.equal(s.data[uint64(key)], s.defaultValue)
}

func (s *DenseStore[I, V]) Lookup(key I) (V, bool) {
	if !s.Contains(key) {
		var empty V
		return empty, false
	}
	return s.data[uint64(key)], true
}

// At returns the slot of the given key, which is the default value for keys
// never written. Keys beyond the capacity panic.
func (s *DenseStore[I, V]) At(key I) V {
	return s.data[uint64(key)]
}

// Set updates the slot of the key, which must be below the capacity.
func (s *DenseStore[I, V]) Set(key I, value V) {
	wasDefault := s.equal(s.data[uint64(key)], s.defaultValue)
	isDefault := s.equal(value, s.defaultValue)
	if wasDefault && !isDefault {
		s.nonDefault++
	}
	if !wasDefault && isDefault {
		s.nonDefault--
	}
	s.data[uint64(key)] = value
}

// Remove resets the slot of the key to the default value. Keys beyond the
// capacity are never present, removing them is a no-op.
func (s *DenseStore[I, V]) Remove(key I) {
	if s.Contains(key) {
		s.data[uint64(key)] = s.defaultValue
		s.nonDefault--
	}
}

func (s *DenseStore[I, V]) Empty() bool {
	return s.nonDefault == 0
}

func (s *DenseStore[I, V]) Size() int {
	return s.nonDefault
}

func (s *DenseStore[I, V]) Clear() {
	for i := range s.data {
		s.data[i] = s.defaultValue
	}
	s.nonDefault = 0
}

// Begin returns an iterator visiting the non-default slots in ascending order.
func (s *DenseStore[I, V]) Begin() Iterator[I, V] {
	return Iterator[I, V]{
		kind:  denseIteratorKind,
		dense: newDenseCursor[I](s.data, 0, s.nonDefault, s.defaultValue, s.equal),
	}
}

func (s *DenseStore[I, V]) End() Iterator[I, V] {
	return Iterator[I, V]{
		kind:  denseIteratorKind,
		dense: newDenseCursor[I](s.data, len(s.data), s.nonDefault, s.defaultValue, s.equal),
	}
}

func (s *DenseStore[I, V]) Clone() Store[I, V] {
	data := make([]V, len(s.data))
	copy(data, s.data)
	return &DenseStore[I, V]{
		data:         data,
		defaultValue: s.defaultValue,
		equal:        s.equal,
		nonDefault:   s.nonDefault,
	}
}

func (s *DenseStore[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	mf.AddChild("slots", common.NewMemoryFootprint(uintptr(cap(s.data))*unsafe.Sizeof(s.defaultValue)))
	return mf
}

// denseCursor walks the slots of a DenseStore, skipping default slots.
type denseCursor[I common.Identifier, V any] struct {
	data         []V
	index        int
	nonDefault   int
	defaultValue V
	equal        func(a, b V) bool
}

func newDenseCursor[I common.Identifier, V any](data []V, index, nonDefault int, defaultValue V, equal func(a, b V) bool) denseCursor[I, V] {
	res := denseCursor[I, V]{
		data:         data,
		index:        index,
		nonDefault:   nonDefault,
		defaultValue: defaultValue,
		equal:        equal,
	}
	res.skipDefaults()
	return res
}

func (c *denseCursor[I, V]) skipDefaults() {
	// If every slot holds a non-default value there is nothing to skip.
	if c.nonDefault == len(c.data) {
		return
	}
	for c.index < len(c.data) && c.equal(c.data[c.index], c.defaultValue) {
		c.index++
	}
}

func (c *denseCursor[I, V]) next() {
	c.index++
	c.skipDefaults()
}

func (c *denseCursor[I, V]) entry() common.MapEntry[I, V] {
	return common.MapEntry[I, V]{Key: I(c.index), Val: c.data[c.index]}
}

func (c *denseCursor[I, V]) notEqual(other *denseCursor[I, V]) bool {
	return c.index != other.index
}

// DenseFactory creates DenseStores of a fixed capacity.
type DenseFactory[I common.Identifier, V any] struct {
	Capacity int
	Equal    func(a, b V) bool
}

func (f DenseFactory[I, V]) Create(defaultValue V) Store[I, V] {
	return NewDenseStore[I](defaultValue, f.Capacity, f.Equal)
}
