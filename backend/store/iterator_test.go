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
	"testing"

	"github.com/symexec/memstore/go/common"
)

func TestIterator_CloneAdvancesIndependently(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			s := factory.Create(0)
			for i := 0; i < 5; i++ {
				s.Set(uint64(i), i+1)
			}
			it := s.Begin()
			it.Next()
			pos := it.Entry()

			clone := it.Clone()
			if got := clone.Entry(); got != pos {
				t.Errorf("clone at different position, wanted %v, got %v", pos, got)
			}
			clone.Next()
			clone.Next()
			if got := it.Entry(); got != pos {
				t.Errorf("advancing clone moved original, wanted %v, got %v", pos, got)
			}
			if !it.NotEqual(clone) {
				t.Errorf("iterators at different positions should differ")
			}

			// Both reach the end independently.
			end := s.End()
			count := 0
			for ; it.NotEqual(end); it.Next() {
				count++
			}
			if count != 4 {
				t.Errorf("unexpected number of remaining entries, wanted 4, got %d", count)
			}
			count = 0
			for ; clone.NotEqual(end); clone.Next() {
				count++
			}
			if count != 2 {
				t.Errorf("unexpected number of remaining entries of clone, wanted 2, got %d", count)
			}
		})
	}
}

func TestIterator_KeyAndValueMatchEntry(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			s := factory.Create(0)
			s.Set(7, 70)
			it := s.Begin()
			if got := it.Key(); got != 7 {
				t.Errorf("unexpected key, got %d", got)
			}
			if got := it.Value(); got != 70 {
				t.Errorf("unexpected value, got %d", got)
			}
			if got, want := it.Entry().String(), "Entry: 7 -> 70"; got != want {
				t.Errorf("unexpected entry print, wanted %q, got %q", want, got)
			}
		})
	}
}

func TestIterator_DereferencingTheEndPanics(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			s := factory.Create(0)
			s.Set(1, 1)
			end := s.End()
			common.AssertPanics(t, func() { end.Entry() })
		})
	}
}

func TestIterator_IteratorsOfDifferentBackendsDiffer(t *testing.T) {
	a := NewHashMapStore[uint64, int]()
	b := NewPersistentStore[uint64, int]()
	begin := a.Begin()
	if !begin.NotEqual(b.End()) {
		t.Errorf("iterators of different backends should differ")
	}
}

func TestIterator_UninitializedIteratorPanics(t *testing.T) {
	var it Iterator[uint64, int]
	common.AssertPanics(t, func() { it.Next() })
	common.AssertPanics(t, func() { it.Entry() })
	common.AssertPanics(t, func() { it.Clone() })
	common.AssertPanics(t, func() { it.NotEqual(Iterator[uint64, int]{}) })
}

func TestIteratorKind_String(t *testing.T) {
	tests := map[iteratorKind]string{
		hashMapIteratorKind:    "hashmap",
		persistentIteratorKind: "persistent",
		denseIteratorKind:      "dense",
		invalidIteratorKind:    "invalid(0)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("unexpected print of kind, wanted %q, got %q", want, got)
		}
	}
}
