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
	"iter"

	"github.com/symexec/memstore/go/common"
)

// Array is a fixed-size sequence of values addressed by ordinal indexes
// [0, Size()). Every slot holds a value at all times, so iteration yields all
// of them, including slots never written.
//
// Indexes out of range panic. Arrays are not safe for concurrent use.
type Array[I common.Identifier, V any] interface {
	// Set updates the value at the given index.
	Set(index I, value V)

	// At returns the value at the given index.
	At(index I) V

	// Size returns the number of slots, which is fixed at creation.
	Size() int

	// Empty is true for arrays without slots.
	Empty() bool

	// Begin returns a fresh iterator positioned at the first slot.
	Begin() Iterator[I, V]

	// End returns the past-the-end iterator.
	End() Iterator[I, V]

	// Clone returns an independent copy of this array using the same backend.
	Clone() Array[I, V]

	// provides the size of the array in memory in bytes
	common.MemoryFootprintProvider

	// Release drops the content of the array, which may not be used afterwards.
	common.Releaser
}

// Factory creates arrays of one backend.
type Factory[I common.Identifier, V any] interface {
	// Create produces an array of the given size holding zero values.
	Create(size int) Array[I, V]
}

// All provides the index/value pairs of the array for range loops.
func All[I common.Identifier, V any](a Array[I, V]) iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		end := a.End()
		for it := a.Begin(); it.NotEqual(end); it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}

// Values collects the values of the array in index order.
func Values[I common.Identifier, V any](a Array[I, V]) []V {
	res := make([]V, 0, a.Size())
	for _, value := range All(a) {
		res = append(res, value)
	}
	return res
}
