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
	"unsafe"

	"github.com/symexec/memstore/go/common"
)

// RawArray is an Array owning a buffer allocated once at creation. Cloning
// allocates a new buffer and copies it slot by slot. After Release the
// buffer is gone and any access panics.
type RawArray[I common.Identifier, V any] struct {
	buffer []V
}

// NewRawArray allocates an array of the given size with every slot set to
// the zero value.
func NewRawArray[I common.Identifier, V any](size int) *RawArray[I, V] {
	return &RawArray[I, V]{buffer: make([]V, size)}
}

func (a *RawArray[I, V]) Set(index I, value V) {
	a.buffer[uint64(index)] = value
}

func (a *RawArray[I, V]) At(index I) V {
	return a.buffer[uint64(index)]
}

func (a *RawArray[I, V]) Size() int {
	return len(a.buffer)
}

func (a *RawArray[I, V]) Empty() bool {
	return len(a.buffer) == 0
}

func (a *RawArray[I, V]) Begin() Iterator[I, V] {
	return Iterator[I, V]{kind: rawIteratorKind, slice: sliceCursor[V]{data: a.buffer}}
}

func (a *RawArray[I, V]) End() Iterator[I, V] {
	return Iterator[I, V]{kind: rawIteratorKind, slice: sliceCursor[V]{data: a.buffer, index: len(a.buffer)}}
}

func (a *RawArray[I, V]) Clone() Array[I, V] {
	buffer := make([]V, len(a.buffer))
	for i := range a.buffer {
		buffer[i] = a.buffer[i]
	}
	return &RawArray[I, V]{buffer: buffer}
}

func (a *RawArray[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var value V
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	mf.AddChild("buffer", common.NewMemoryFootprint(uintptr(len(a.buffer))*unsafe.Sizeof(value)))
	return mf
}

func (a *RawArray[I, V]) Release() {
	a.buffer = nil
}

type RawFactory[I common.Identifier, V any] struct{}

func (RawFactory[I, V]) Create(size int) Array[I, V] {
	return NewRawArray[I, V](size)
}
