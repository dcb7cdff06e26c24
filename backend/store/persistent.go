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

	hamt "github.com/benbjohnson/immutable"
	"github.com/symexec/memstore/go/common"
	"github.com/symexec/memstore/go/common/immutable"
)

// PersistentStore is a Store backed by a persistent hash map. Clones share
// the map structure and copy only the paths they update, which makes this
// the backend of choice for objects duplicated on every state fork.
type PersistentStore[I common.Identifier, V any] struct {
	data immutable.PersistentMap[I, V]
}

// NewPersistentStore creates an empty PersistentStore.
func NewPersistentStore[I common.Identifier, V any]() *PersistentStore[I, V] {
	return &PersistentStore[I, V]{data: immutable.NewPersistentMap[I, V]()}
}

func (s *PersistentStore[I, V]) Contains(key I) bool {
	return s.data.Count(key) != 0
}

func (s *PersistentStore[I, V]) Lookup(key I) (V, bool) {
	return s.data.Lookup(key)
}

func (s *PersistentStore[I, V]) At(key I) V {
	return s.data.At(key)
}

func (s *PersistentStore[I, V]) Set(key I, value V) {
	s.data.Replace(key, value)
}

func (s *PersistentStore[I, V]) Remove(key I) {
	s.data.Remove(key)
}

func (s *PersistentStore[I, V]) Empty() bool {
	return s.data.Empty()
}

func (s *PersistentStore[I, V]) Size() int {
	return s.data.Size()
}

func (s *PersistentStore[I, V]) Clear() {
	s.data.Clear()
}

// Begin returns an iterator over the current version of the map. The order
// is unspecified but identical for repeated iterations of an unmodified store.
func (s *PersistentStore[I, V]) Begin() Iterator[I, V] {
	return Iterator[I, V]{
		kind:       persistentIteratorKind,
		persistent: newPersistentCursor(s.data),
	}
}

func (s *PersistentStore[I, V]) End() Iterator[I, V] {
	return Iterator[I, V]{
		kind:       persistentIteratorKind,
		persistent: persistentCursor[I, V]{pos: s.data.Size()},
	}
}

// Clone is O(1); the clone and this store share all nodes until updated.
func (s *PersistentStore[I, V]) Clone() Store[I, V] {
	return &PersistentStore[I, V]{data: s.data.Clone()}
}

// GetMemoryFootprint provides an estimate of the memory used by the store.
// The entries may be shared with clones of this store.
func (s *PersistentStore[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var entry common.MapEntry[I, V]
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	entries := common.NewMemoryFootprint(uintptr(s.data.Size()) * unsafe.Sizeof(entry))
	entries.SetNote("shared with clones")
	mf.AddChild("entries", entries)
	return mf
}

// persistentCursor walks one version of a persistent map. The version is
// immutable, so updates of the store do not disturb the walk.
type persistentCursor[I common.Identifier, V any] struct {
	source  immutable.PersistentMap[I, V]
	it      *hamt.MapIterator[I, V]
	pos     int
	current common.MapEntry[I, V]
	valid   bool
}

func newPersistentCursor[I common.Identifier, V any](source immutable.PersistentMap[I, V]) persistentCursor[I, V] {
	res := persistentCursor[I, V]{source: source, it: source.Iterator()}
	res.load()
	return res
}

func (c *persistentCursor[I, V]) load() {
	c.valid = false
	if c.it == nil || c.it.Done() {
		return
	}
	key, value, ok := c.it.Next()
	c.current = common.MapEntry[I, V]{Key: key, Val: value}
	c.valid = ok
}

func (c *persistentCursor[I, V]) next() {
	c.pos++
	c.load()
}

func (c *persistentCursor[I, V]) entry() common.MapEntry[I, V] {
	if !c.valid {
		panic("dereferencing past-the-end iterator of persistent store")
	}
	return c.current
}

func (c *persistentCursor[I, V]) notEqual(other *persistentCursor[I, V]) bool {
	return c.pos != other.pos
}

// clone re-creates the library iterator, which cannot be copied, and
// replays it to the current position.
func (c *persistentCursor[I, V]) clone() persistentCursor[I, V] {
	if c.it == nil {
		return persistentCursor[I, V]{source: c.source, pos: c.pos}
	}
	res := newPersistentCursor(c.source)
	for res.pos < c.pos {
		res.next()
	}
	return res
}

type PersistentFactory[I common.Identifier, V any] struct{}

func (PersistentFactory[I, V]) Create(V) Store[I, V] {
	return NewPersistentStore[I, V]()
}
