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
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/symexec/memstore/go/common"
	"golang.org/x/exp/slices"
)

// PersistentMap is a mutable view on a persistent hash array mapped trie.
// Every update rebinds the view to a new trie version sharing all untouched
// nodes with the previous one. Copies of a PersistentMap, obtained through
// Clone or plain assignment, are therefore O(1) and fully independent: an
// update on one copy never becomes visible through another.
//
// The zero value is an empty map ready to use.
type PersistentMap[K common.Identifier, V any] struct {
	root *immutable.Map[K, V]
}

// NewPersistentMap creates an empty map.
func NewPersistentMap[K common.Identifier, V any]() PersistentMap[K, V] {
	return PersistentMap[K, V]{root: newRoot[K, V]()}
}

// NewPersistentMapFromEntries creates a map holding the given entries. Later
// entries overwrite earlier entries with the same key. The map is assembled
// through a transient builder, avoiding one trie version per entry.
func NewPersistentMapFromEntries[K common.Identifier, V any](entries []common.MapEntry[K, V]) PersistentMap[K, V] {
	builder := immutable.NewMapBuilder[K, V](identifierHasher[K]{})
	for _, entry := range entries {
		builder.Set(entry.Key, entry.Val)
	}
	return PersistentMap[K, V]{root: builder.Map()}
}

func newRoot[K common.Identifier, V any]() *immutable.Map[K, V] {
	return immutable.NewMap[K, V](identifierHasher[K]{})
}

// Clone detaches a new view from the trie shared with this map.
func (m PersistentMap[K, V]) Clone() PersistentMap[K, V] {
	return m
}

// Size returns the number of entries in the map.
func (m PersistentMap[K, V]) Size() int {
	if m.root == nil {
		return 0
	}
	return m.root.Len()
}

// Empty is true if there is no entry in the map.
func (m PersistentMap[K, V]) Empty() bool {
	return m.Size() == 0
}

// Count returns 1 if the key is present, 0 otherwise.
func (m PersistentMap[K, V]) Count(key K) int {
	if _, found := m.Lookup(key); found {
		return 1
	}
	return 0
}

// Lookup returns the value associated to the key and whether it is present.
func (m PersistentMap[K, V]) Lookup(key K) (V, bool) {
	if m.root == nil {
		var empty V
		return empty, false
	}
	return m.root.Get(key)
}

// At returns the value associated to the given key. The key must be present,
// otherwise this function panics.
func (m PersistentMap[K, V]) At(key K) V {
	value, found := m.Lookup(key)
	if !found {
		panic(fmt.Sprintf("key %d not present in persistent map", key))
	}
	return value
}

// Insert associates the value to the key unless the key is already present.
// It reports whether the value has been inserted.
func (m *PersistentMap[K, V]) Insert(key K, value V) bool {
	if _, found := m.Lookup(key); found {
		return false
	}
	m.Replace(key, value)
	return true
}

// Replace associates the value to the key, overriding any previous value.
func (m *PersistentMap[K, V]) Replace(key K, value V) {
	if m.root == nil {
		m.root = newRoot[K, V]()
	}
	m.root = m.root.Set(key, value)
}

// Remove drops the key from the map. Removing an absent key is a no-op.
func (m *PersistentMap[K, V]) Remove(key K) {
	if m.root == nil {
		return
	}
	m.root = m.root.Delete(key)
}

// Clear rebinds this view to a fresh empty trie. Copies taken before keep
// their content.
func (m *PersistentMap[K, V]) Clear() {
	m.root = newRoot[K, V]()
}

// Iterator returns an iterator over the current version of the map. The
// iteration order is unspecified, yet stable for an unmodified map. Later
// updates of this view do not affect the iterator.
func (m PersistentMap[K, V]) Iterator() *immutable.MapIterator[K, V] {
	if m.root == nil {
		return newRoot[K, V]().Iterator()
	}
	return m.root.Iterator()
}

// ForEach calls the callback for every entry of the map.
func (m PersistentMap[K, V]) ForEach(callback func(K, V)) {
	for it := m.Iterator(); !it.Done(); {
		key, value, _ := it.Next()
		callback(key, value)
	}
}

// Entries returns all entries of the map sorted by key.
func (m PersistentMap[K, V]) Entries() []common.MapEntry[K, V] {
	keys := make([]K, 0, m.Size())
	m.ForEach(func(key K, _ V) {
		keys = append(keys, key)
	})
	slices.Sort(keys)
	res := make([]common.MapEntry[K, V], 0, len(keys))
	for _, key := range keys {
		value, _ := m.root.Get(key)
		res = append(res, common.MapEntry[K, V]{Key: key, Val: value})
	}
	return res
}

// Equal determines whether both maps contain the same keys associated to
// equal values.
func (m PersistentMap[K, V]) Equal(other PersistentMap[K, V], eq func(a, b V) bool) bool {
	if m.root == other.root {
		return true
	}
	if m.Size() != other.Size() {
		return false
	}
	for it := m.Iterator(); !it.Done(); {
		key, value, _ := it.Next()
		otherValue, found := other.Lookup(key)
		if !found || !eq(value, otherValue) {
			return false
		}
	}
	return true
}

// Compare orders maps lexicographically by their key-sorted entries. Entries
// are compared by key first and by value second. It returns -1, 0, or 1.
func (m PersistentMap[K, V]) Compare(other PersistentMap[K, V], cmp func(a, b V) int) int {
	return CompareEntries(m.Entries(), other.Entries(), cmp)
}

// CompareEntries orders two key-sorted entry lists lexicographically.
func CompareEntries[K common.Identifier, V any](a, b []common.MapEntry[K, V], cmp func(a, b V) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Key != b[i].Key {
			if a[i].Key < b[i].Key {
				return -1
			}
			return 1
		}
		if res := cmp(a[i].Val, b[i].Val); res != 0 {
			if res < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
