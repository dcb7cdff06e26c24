// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sparse

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/symexec/memstore/go/backend/store"
	"github.com/symexec/memstore/go/common"
	"github.com/symexec/memstore/go/common/immutable"
)

// Density selects the rendering of a Storage by Print.
type Density int

const (
	// Sparse lists the stored entries only.
	Sparse Density = iota
	// Dense lists every value of the set range, including defaults.
	Dense
)

// Storage is an unbounded sequence of values in which every index not
// written holds a default value. Only values differing from the default are
// kept in the backing store, so writing the default drops an index.
//
// The backend is picked through the store factory. Storage is not safe for
// concurrent use.
type Storage[I common.Identifier, V any] struct {
	defaultValue V
	equal        func(a, b V) bool
	factory      store.Factory[I, V]
	data         store.Store[I, V]
}

// NewStorage creates a storage without any stored value.
func NewStorage[I common.Identifier, V any](defaultValue V, equal func(a, b V) bool, factory store.Factory[I, V]) *Storage[I, V] {
	return &Storage[I, V]{
		defaultValue: defaultValue,
		equal:        equal,
		factory:      factory,
		data:         factory.Create(defaultValue),
	}
}

// NewStorageFromMap creates a storage holding the given values.
func NewStorageFromMap[I common.Identifier, V any](values map[I]V, defaultValue V, equal func(a, b V) bool, factory store.Factory[I, V]) *Storage[I, V] {
	res := NewStorage(defaultValue, equal, factory)
	for index, value := range values {
		res.Store(index, value)
	}
	return res
}

// NewStorageFromSlice creates a storage holding the given values at the
// indexes 0 to len(values)-1.
func NewStorageFromSlice[I common.Identifier, V any](values []V, defaultValue V, equal func(a, b V) bool, factory store.Factory[I, V]) *Storage[I, V] {
	res := NewStorage(defaultValue, equal, factory)
	res.StoreAll(0, values)
	return res
}

// Store updates the value at the given index.
func (s *Storage[I, V]) Store(index I, value V) {
	if s.equal(value, s.defaultValue) {
		s.data.Remove(index)
	} else {
		s.data.Set(index, value)
	}
}

// StoreAll stores the values at consecutive indexes starting at the given one.
func (s *Storage[I, V]) StoreAll(index I, values []V) {
	for i, value := range values {
		s.Store(index+I(i), value)
	}
}

// Load returns the value at the given index.
func (s *Storage[I, V]) Load(index I) V {
	if value, found := s.data.Lookup(index); found {
		return value
	}
	return s.defaultValue
}

// SizeOfSetRange returns one past the largest index holding a stored value,
// or 0 if no value is stored.
func (s *Storage[I, V]) SizeOfSetRange() int {
	if s.data.Empty() {
		return 0
	}
	var largest I
	for index := range store.All(s.data) {
		largest = max(largest, index)
	}
	return int(largest) + 1
}

// OrderedEntries returns the stored entries sorted by index.
func (s *Storage[I, V]) OrderedEntries() []common.MapEntry[I, V] {
	m := immutable.NewPersistentMapFromEntries(store.Entries(s.data))
	return m.Entries()
}

// FirstN returns the values at the indexes 0 to n-1.
func (s *Storage[I, V]) FirstN(n int) []V {
	res := make([]V, n)
	for i := range res {
		res[i] = s.Load(I(i))
	}
	return res
}

// Backend provides the store holding the values differing from the default.
func (s *Storage[I, V]) Backend() store.Store[I, V] {
	return s.data
}

// Default returns the value of indexes not written.
func (s *Storage[I, V]) Default() V {
	return s.defaultValue
}

// Reset drops all stored values by replacing the backing store.
func (s *Storage[I, V]) Reset() {
	s.data = s.factory.Create(s.defaultValue)
}

// ResetWithDefault drops all stored values and replaces the default value.
func (s *Storage[I, V]) ResetWithDefault(defaultValue V) {
	s.defaultValue = defaultValue
	s.Reset()
}

// Equal reports whether both storages have equal defaults and store equal
// values at the same indexes.
func (s *Storage[I, V]) Equal(other *Storage[I, V]) bool {
	if !s.equal(s.defaultValue, other.defaultValue) {
		return false
	}
	a, b := s.OrderedEntries(), other.OrderedEntries()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !s.equal(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}

// Compare orders storages lexicographically by their stored entries, sorted
// by index. Defaults are not considered. It returns -1, 0, or 1.
func (s *Storage[I, V]) Compare(other *Storage[I, V], cmp func(a, b V) int) int {
	return immutable.CompareEntries(s.OrderedEntries(), other.OrderedEntries(), cmp)
}

// Clone returns an independent copy of this storage.
func (s *Storage[I, V]) Clone() *Storage[I, V] {
	return &Storage[I, V]{
		defaultValue: s.defaultValue,
		equal:        s.equal,
		factory:      s.factory,
		data:         s.data.Clone(),
	}
}

// Print writes the content of the storage to the given writer.
func (s *Storage[I, V]) Print(w io.Writer, density Density) error {
	var err error
	switch density {
	case Sparse:
		err = s.printSparse(w)
	case Dense:
		err = s.printDense(w)
	default:
		return fmt.Errorf("unknown density %d", density)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, " default: %v", s.defaultValue)
	return err
}

func (s *Storage[I, V]) printSparse(w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	for i, entry := range s.OrderedEntries() {
		sep := ", "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%v: %v", sep, entry.Key, entry.Val); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

func (s *Storage[I, V]) printDense(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, value := range s.FirstN(s.SizeOfSetRange()) {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%v", sep, value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

func (s *Storage[I, V]) String() string {
	var sb strings.Builder
	_ = s.Print(&sb, Sparse)
	return sb.String()
}

func (s *Storage[I, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	mf.AddChild("store", s.data.GetMemoryFootprint())
	return mf
}
