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

	"github.com/symexec/memstore/go/common"
	"github.com/symexec/memstore/go/common/immutable"
)

type iteratorKind uint8

const (
	invalidIteratorKind iteratorKind = iota
	vectorIteratorKind
	persistentIteratorKind
	rawIteratorKind
)

func (k iteratorKind) String() string {
	switch k {
	case vectorIteratorKind:
		return "vector"
	case persistentIteratorKind:
		return "persistent"
	case rawIteratorKind:
		return "raw"
	}
	return fmt.Sprintf("invalid(%d)", uint8(k))
}

// Iterator is the single iterator type of all Array backends, dispatching
// each operation on the kind of the backend cursor it holds. It visits every
// slot in ascending index order; the index of the current value is implicit
// in its position.
//
// Iterators of different backends never compare equal. Dereferencing the end
// panics. An iterator must not be used after its array was released.
type Iterator[I common.Identifier, V any] struct {
	kind       iteratorKind
	slice      sliceCursor[V]
	persistent persistentCursor[V]
}

// Next moves the iterator to the next slot.
func (it *Iterator[I, V]) Next() {
	switch it.kind {
	case vectorIteratorKind, rawIteratorKind:
		it.slice.index++
	case persistentIteratorKind:
		it.persistent.index++
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// Value returns the value of the current slot.
func (it *Iterator[I, V]) Value() V {
	switch it.kind {
	case vectorIteratorKind, rawIteratorKind:
		return it.slice.data[it.slice.index]
	case persistentIteratorKind:
		return it.persistent.data.Get(it.persistent.index)
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// Index returns the index of the current slot.
func (it *Iterator[I, V]) Index() I {
	switch it.kind {
	case vectorIteratorKind, rawIteratorKind:
		return I(it.slice.index)
	case persistentIteratorKind:
		return I(it.persistent.index)
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// NotEqual reports whether the iterators are positioned at different slots.
func (it *Iterator[I, V]) NotEqual(other Iterator[I, V]) bool {
	if it.kind != other.kind {
		return true
	}
	switch it.kind {
	case vectorIteratorKind, rawIteratorKind:
		return it.slice.index != other.slice.index
	case persistentIteratorKind:
		return it.persistent.index != other.persistent.index
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// Clone returns an iterator at the same position advancing independently of
// this one.
func (it *Iterator[I, V]) Clone() Iterator[I, V] {
	switch it.kind {
	case vectorIteratorKind, rawIteratorKind, persistentIteratorKind:
		// All cursors are plain positions, copying them suffices.
		return *it
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// sliceCursor is a position in the buffer of a VectorArray or RawArray.
type sliceCursor[V any] struct {
	data  []V
	index int
}

// persistentCursor is a position in one version of a PersistentArray.
type persistentCursor[V any] struct {
	data  immutable.PersistentVector[V]
	index int
}
