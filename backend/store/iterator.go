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

	"github.com/symexec/memstore/go/common"
)

// iteratorKind identifies the backend cursor held by an Iterator.
type iteratorKind uint8

const (
	// The zero kind marks an uninitialized iterator.
	invalidIteratorKind iteratorKind = iota
	hashMapIteratorKind
	persistentIteratorKind
	denseIteratorKind
)

func (k iteratorKind) String() string {
	switch k {
	case hashMapIteratorKind:
		return "hashmap"
	case persistentIteratorKind:
		return "persistent"
	case denseIteratorKind:
		return "dense"
	}
	return fmt.Sprintf("invalid(%d)", uint8(k))
}

// Iterator is the single iterator type of all Store backends. It holds
// exactly one backend cursor, identified by its kind; every operation is
// dispatched on that kind to the cursor in use. The backend cursor types are
// not part of the package API.
//
// Iterators are forward-only. Store.Begin always produces a fresh iterator,
// so iterating a store again restarts at its first entry. Dereferencing an
// iterator at the end panics. An iterator must not be used after its store
// has been modified, and not from more than one goroutine.
//
// Duplicate iterators using Clone: plain assignment shares the library
// cursor of persistent stores between both copies.
type Iterator[I common.Identifier, V any] struct {
	kind       iteratorKind
	hashMap    hashMapCursor[I, V]
	persistent persistentCursor[I, V]
	dense      denseCursor[I, V]
}

// Next moves the iterator to the next entry.
func (it *Iterator[I, V]) Next() {
	switch it.kind {
	case hashMapIteratorKind:
		it.hashMap.next()
	case persistentIteratorKind:
		it.persistent.next()
	case denseIteratorKind:
		it.dense.next()
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// Entry returns the key/value pair the iterator is positioned at.
func (it *Iterator[I, V]) Entry() common.MapEntry[I, V] {
	switch it.kind {
	case hashMapIteratorKind:
		return it.hashMap.entry()
	case persistentIteratorKind:
		return it.persistent.entry()
	case denseIteratorKind:
		return it.dense.entry()
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// Key returns the key of the current entry.
func (it *Iterator[I, V]) Key() I {
	return it.Entry().Key
}

// Value returns the value of the current entry.
func (it *Iterator[I, V]) Value() V {
	return it.Entry().Val
}

// NotEqual reports whether the iterators are positioned at different entries.
// Iterators of different backends always differ.
func (it *Iterator[I, V]) NotEqual(other Iterator[I, V]) bool {
	if it.kind != other.kind {
		return true
	}
	switch it.kind {
	case hashMapIteratorKind:
		return it.hashMap.notEqual(&other.hashMap)
	case persistentIteratorKind:
		return it.persistent.notEqual(&other.persistent)
	case denseIteratorKind:
		return it.dense.notEqual(&other.dense)
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
}

// Clone returns an iterator at the same position advancing independently of
// this one.
func (it *Iterator[I, V]) Clone() Iterator[I, V] {
	res := Iterator[I, V]{kind: it.kind}
	switch it.kind {
	case hashMapIteratorKind:
		res.hashMap = it.hashMap
	case persistentIteratorKind:
		res.persistent = it.persistent.clone()
	case denseIteratorKind:
		res.dense = it.dense
	default:
		panic(fmt.Sprintf("unhandled iterator kind %v", it.kind))
	}
	return res
}
