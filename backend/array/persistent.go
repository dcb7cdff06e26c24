// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package array

import (
	"fmt"
	"unsafe"

	"github.com/symexec/memstore/go/common"
	"github.com/symexec/memstore/go/common/immutable"
)

// PersistentArray is an Array backed by a persistent vector. Clones share
// all slots until either side updates one; Set copies the path to the
// updated slot only and is O(log n).
type PersistentArray[I common.Identifier, V any] struct {
	data immutable.PersistentVector[V]
}

// NewPersistentArray creates an array of the given size holding zero values.
func NewPersistentArray[I common.Identifier, V any](size int) *PersistentArray[I, V] {
	return &PersistentArray[I, V]{data: immutable.NewPersistentVector[V](size)}
}

// NewPersistentArrayFromSlice creates an array holding the given values.
func NewPersistentArrayFromSlice[I common.Identifier, V any](values []V) *PersistentArray[I, V] {
	return &PersistentArray[I, V]{data: immutable.NewPersistentVectorFromSlice(values)}
}

func (a *PersistentArray[I, V]) checkIndex(index I) int {
	if uint64(index) >= uint64(a.data.Len()) {
		panic(fmt.Sprintf("index %d out of range [0, %d)", index, a.data.Len()))
	}
	return int(index)
}

func (a *PersistentArray[I, V]) Set(index I, value V) {
	a.data.Set(a.checkIndex(index), value)
}

func (a *PersistentArray[I, V]) At(index I) V {
	return a.data.Get(a.checkIndex(index))
}

func (a *PersistentArray[I, V]) Size() int {
	return a.data.Len()
}

func (a *PersistentArray[I, V]) Empty() bool {
	return a.data.Len() == 0
}

// Begin returns an iterator over the current version of the array.
func (a *PersistentArray[I, V]) Begin() Iterator[I, V] {
	return Iterator[I, V]{kind: persistentIteratorKind, persistent: persistentCursor[V]{data: a.data}}
}

func (a *PersistentArray[I, V]) End() Iterator[I, V] {
	return Iterator[I, V]{kind: persistentIteratorKind, persistent: persistentCursor[V]{data: a.data, index: a.data.Len()}}
}

// Clone is O(1).
func (a *PersistentArray[I, V]) Clone() Array[I, V] {
	return &PersistentArray[I, V]{data: a.data.Clone()}
}

func (a *PersistentArray[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var value V
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	values := common.NewMemoryFootprint(uintptr(a.data.Len()) * unsafe.Sizeof(value))
	values.SetNote("shared with clones")
	mf.AddChild("values", values)
	return mf
}

func (a *PersistentArray[I, V]) Release() {
	a.data = immutable.PersistentVector[V]{}
}

type PersistentFactory[I common.Identifier, V any] struct{}

func (PersistentFactory[I, V]) Create(size int) Array[I, V] {
	return NewPersistentArray[I, V](size)
}
