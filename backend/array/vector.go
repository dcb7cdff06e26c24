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
	"golang.org/x/exp/slices"
)

// VectorArray is an Array backed by a Go slice. Clone copies every value.
type VectorArray[I common.Identifier, V any] struct {
	data []V
}

// NewVectorArray creates an array of the given size holding zero values.
func NewVectorArray[I common.Identifier, V any](size int) *VectorArray[I, V] {
	return &VectorArray[I, V]{data: make([]V, size)}
}

func (a *VectorArray[I, V]) Set(index I, value V) {
	a.data[uint64(index)] = value
}

func (a *VectorArray[I, V]) At(index I) V {
	return a.data[uint64(index)]
}

func (a *VectorArray[I, V]) Size() int {
	return len(a.data)
}

func (a *VectorArray[I, V]) Empty() bool {
	return len(a.data) == 0
}

func (a *VectorArray[I, V]) Begin() Iterator[I, V] {
	return Iterator[I, V]{kind: vectorIteratorKind, slice: sliceCursor[V]{data: a.data}}
}

func (a *VectorArray[I, V]) End() Iterator[I, V] {
	return Iterator[I, V]{kind: vectorIteratorKind, slice: sliceCursor[V]{data: a.data, index: len(a.data)}}
}

func (a *VectorArray[I, V]) Clone() Array[I, V] {
	return &VectorArray[I, V]{data: slices.Clone(a.data)}
}

func (a *VectorArray[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var value V
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	mf.AddChild("values", common.NewMemoryFootprint(uintptr(cap(a.data))*unsafe.Sizeof(value)))
	return mf
}

func (a *VectorArray[I, V]) Release() {
	a.data = nil
}

type VectorFactory[I common.Identifier, V any] struct{}

func (VectorFactory[I, V]) Create(size int) Array[I, V] {
	return NewVectorArray[I, V](size)
}
