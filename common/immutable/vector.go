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

import (
	"github.com/benbjohnson/immutable"
)

// PersistentVector is a mutable view on a persistent, structurally shared
// sequence of a fixed length. Like PersistentMap, copies are O(1) and
// updates on one copy never affect any other.
//
// The zero value is an empty vector.
type PersistentVector[V any] struct {
	list *immutable.List[V]
}

// NewPersistentVector creates a vector of the given length with every slot
// set to the zero value of V.
func NewPersistentVector[V any](size int) PersistentVector[V] {
	var empty V
	builder := immutable.NewListBuilder[V]()
	for i := 0; i < size; i++ {
		builder.Append(empty)
	}
	return PersistentVector[V]{list: builder.List()}
}

// NewPersistentVectorFromSlice creates a vector holding a copy of the given values.
func NewPersistentVectorFromSlice[V any](values []V) PersistentVector[V] {
	builder := immutable.NewListBuilder[V]()
	for _, value := range values {
		builder.Append(value)
	}
	return PersistentVector[V]{list: builder.List()}
}

// Clone detaches a new view from the sequence shared with this vector.
func (v PersistentVector[V]) Clone() PersistentVector[V] {
	return v
}

// Len returns the number of slots.
func (v PersistentVector[V]) Len() int {
	if v.list == nil {
		return 0
	}
	return v.list.Len()
}

// Get returns the value at the given index. It panics if the index is out of
// range.
func (v PersistentVector[V]) Get(index int) V {
	if v.list == nil {
		panic("index out of range in empty persistent vector")
	}
	return v.list.Get(index)
}

// Set updates the value at the given index, copying the path to the modified
// leaf only. It panics if the index is out of range.
func (v *PersistentVector[V]) Set(index int, value V) {
	if v.list == nil {
		panic("index out of range in empty persistent vector")
	}
	v.list = v.list.Set(index, value)
}

// Iterator returns an iterator positioned at the first slot of the current
// version of this vector.
func (v PersistentVector[V]) Iterator() *immutable.ListIterator[V] {
	if v.list == nil {
		return immutable.NewList[V]().Iterator()
	}
	return v.list.Iterator()
}

// ToSlice copies the content of the vector into a new slice.
func (v PersistentVector[V]) ToSlice() []V {
	res := make([]V, 0, v.Len())
	for it := v.Iterator(); !it.Done(); {
		_, value := it.Next()
		res = append(res, value)
	}
	return res
}
