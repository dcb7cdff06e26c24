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
	"math/rand"
	"testing"

	"github.com/symexec/memstore/go/common"
)

// checkNonDefaultCounter recounts the non-default slots of the store.
func checkNonDefaultCounter[V any](t *testing.T, s *DenseStore[uint64, V]) {
	t.Helper()
	count := 0
	for i := 0; i < s.Capacity(); i++ {
		if !s.equal(s.At(uint64(i)), s.DefaultValue()) {
			count++
		}
	}
	if got := s.Size(); got != count {
		t.Errorf("size does not match number of non-default slots, wanted %d, got %d", count, got)
	}
}

func TestDenseStore_WritingTheDefaultRemovesTheKey(t *testing.T) {
	s := NewDenseStore[uint64](0, 4, common.Equal[int])
	s.Set(2, 9)
	if got := s.Size(); got != 1 {
		t.Errorf("unexpected size, wanted 1, got %d", got)
	}
	entries := Entries[uint64, int](s)
	want := []common.MapEntry[uint64, int]{{Key: 2, Val: 9}}
	common.AssertArraysEqual(t, want, entries)

	s.Set(2, 0)
	if got := s.Size(); got != 0 {
		t.Errorf("unexpected size, wanted 0, got %d", got)
	}
	if s.Contains(2) {
		t.Errorf("slot reset to default should not be present")
	}
	if !s.Empty() {
		t.Errorf("store should be empty")
	}
}

func TestDenseStore_CounterTracksAllTransitions(t *testing.T) {
	s := NewDenseStore[uint64](0, 64, common.Equal[int])
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		key := uint64(r.Intn(s.Capacity()))
		switch r.Intn(4) {
		case 0:
			s.Remove(key)
		case 1:
			s.Set(key, 0)
		default:
			s.Set(key, r.Intn(3))
		}
		checkNonDefaultCounter(t, s)
	}
	s.Clear()
	checkNonDefaultCounter(t, s)
	for i := 0; i < s.Capacity(); i++ {
		if got := s.At(uint64(i)); got != 0 {
			t.Errorf("slot %d not reset by clear, got %d", i, got)
		}
	}
}

func TestDenseStore_PresenceIsRelativeToTheConfiguredDefault(t *testing.T) {
	s := NewDenseStore[uint64](-1, 8, common.Equal[int])
	for i := 0; i < s.Capacity(); i++ {
		if s.Contains(uint64(i)) {
			t.Errorf("fresh slot %d should not be present", i)
		}
		if got := s.At(uint64(i)); got != -1 {
			t.Errorf("unexpected initial value of slot %d, got %d", i, got)
		}
	}
	s.Set(3, 0)
	if !s.Contains(3) {
		t.Errorf("slot holding a non-default zero should be present")
	}
	if got, found := s.Lookup(3); !found || got != 0 {
		t.Errorf("unexpected lookup result %d (%t)", got, found)
	}
	if got := s.Size(); got != 1 {
		t.Errorf("unexpected size, wanted 1, got %d", got)
	}
	s.Remove(3)
	if got := s.At(3); got != -1 {
		t.Errorf("removed slot should hold the default, got %d", got)
	}
}

func TestDenseStore_IterationVisitsNonDefaultSlotsInOrder(t *testing.T) {
	s := NewDenseStore[uint64](0, 32, common.Equal[int])
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		s.Set(uint64(r.Intn(s.Capacity())), 1+r.Intn(10))
	}
	want := []common.MapEntry[uint64, int]{}
	for i := 0; i < s.Capacity(); i++ {
		if value := s.At(uint64(i)); value != 0 {
			want = append(want, common.MapEntry[uint64, int]{Key: uint64(i), Val: value})
		}
	}
	got := Entries[uint64, int](s)
	common.AssertArraysEqual(t, want, got)
	if len(got) != s.Size() {
		t.Errorf("iteration length %d differs from size %d", len(got), s.Size())
	}
}

func TestDenseStore_IterationOfFullStore(t *testing.T) {
	s := NewDenseStore[uint64](0, 16, common.Equal[int])
	for i := 0; i < s.Capacity(); i++ {
		s.Set(uint64(i), i+1)
	}
	if got := len(Entries[uint64, int](s)); got != 16 {
		t.Errorf("unexpected number of entries in full store, got %d", got)
	}
	s.Set(0, 0)
	s.Set(15, 0)
	entries := Entries[uint64, int](s)
	if got := len(entries); got != 14 {
		t.Fatalf("unexpected number of entries, got %d", got)
	}
	if entries[0].Key != 1 || entries[13].Key != 14 {
		t.Errorf("unexpected range of keys %v", entries)
	}
}

func TestDenseStore_KeysBeyondCapacity(t *testing.T) {
	s := NewDenseStore[uint64](0, 4, common.Equal[int])
	if s.Contains(4) {
		t.Errorf("key beyond capacity should not be present")
	}
	if _, found := s.Lookup(100); found {
		t.Errorf("lookup beyond capacity should fail")
	}
	s.Remove(4)
	common.AssertPanics(t, func() { s.Set(4, 1) })
	common.AssertPanics(t, func() { s.At(4) })
}

func TestDenseStore_ZeroCapacity(t *testing.T) {
	s := NewDenseStore[uint64](0, 0, common.Equal[int])
	if !s.Empty() {
		t.Errorf("store without slots should be empty")
	}
	begin := s.Begin()
	if begin.NotEqual(s.End()) {
		t.Errorf("store without slots should have no entries")
	}
}

func TestDenseStore_RequiresEqualityFunction(t *testing.T) {
	common.AssertPanics(t, func() { NewDenseStore[uint64, int](0, 4, nil) })
}

func TestDenseStore_CloneCopiesSlotsAndCounter(t *testing.T) {
	s := NewDenseStore[uint64](0, 8, common.Equal[int])
	s.Set(1, 1)
	s.Set(2, 2)
	clone := s.Clone()
	clone.Set(3, 3)
	clone.Remove(1)
	if got := s.Size(); got != 2 {
		t.Errorf("clone update changed size of original, got %d", got)
	}
	if got := clone.Size(); got != 2 {
		t.Errorf("unexpected size of clone, got %d", got)
	}
	if !s.Contains(1) || s.Contains(3) {
		t.Errorf("clone update visible in original")
	}
	checkNonDefaultCounter(t, clone.(*DenseStore[uint64, int]))
}
