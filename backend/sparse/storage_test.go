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
	"bytes"
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symexec/memstore/go/backend/store"
	"github.com/symexec/memstore/go/common"
	"go.uber.org/mock/gomock"
)

func getStoreFactories() map[string]store.Factory[uint64, int] {
	res := map[string]store.Factory[uint64, int]{}
	for _, variant := range store.GetAllVariants() {
		factory, err := store.NewFactory[uint64, int](store.Parameters{Variant: variant, Capacity: 64})
		if err != nil {
			panic(err)
		}
		res[string(variant)] = factory
	}
	return res
}

func TestStorage_LoadReturnsDefaultForUnwrittenIndexes(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			s := NewStorage(7, common.Equal[int], factory)
			require.Equal(t, 7, s.Load(3))
			s.Store(3, 1)
			require.Equal(t, 1, s.Load(3))
			require.Equal(t, 7, s.Load(4))
			require.Equal(t, 7, s.Default())
		})
	}
}

func TestStorage_StoringTheDefaultDropsTheIndex(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			s := NewStorage(0, common.Equal[int], factory)
			s.Store(5, 2)
			require.Equal(t, 1, s.Backend().Size())
			s.Store(5, 0)
			require.True(t, s.Backend().Empty())
			require.Equal(t, 0, s.SizeOfSetRange())
		})
	}
}

func TestStorage_StoreOfDefaultRemovesFromBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := store.NewMockStore[uint64, int](ctrl)
	factory := store.NewMockFactory[uint64, int](ctrl)
	factory.EXPECT().Create(0).Return(backend)

	gomock.InOrder(
		backend.EXPECT().Set(uint64(1), 5),
		backend.EXPECT().Remove(uint64(1)),
		backend.EXPECT().Lookup(uint64(1)).Return(0, false),
	)

	s := NewStorage[uint64](0, common.Equal[int], factory)
	s.Store(1, 5)
	s.Store(1, 0)
	require.Equal(t, 0, s.Load(1))
}

func TestStorage_ResetCreatesNewBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := store.NewMockStore[uint64, int](ctrl)
	second := store.NewMockStore[uint64, int](ctrl)
	factory := store.NewMockFactory[uint64, int](ctrl)
	gomock.InOrder(
		factory.EXPECT().Create(0).Return(first),
		factory.EXPECT().Create(9).Return(second),
	)

	s := NewStorage[uint64](0, common.Equal[int], factory)
	require.Same(t, first, s.Backend())
	s.ResetWithDefault(9)
	require.Same(t, second, s.Backend())
	require.Equal(t, 9, s.Default())
}

func TestStorage_SizeOfSetRange(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			s := NewStorage(0, common.Equal[int], factory)
			require.Equal(t, 0, s.SizeOfSetRange())
			s.Store(9, 1)
			s.Store(2, 1)
			require.Equal(t, 10, s.SizeOfSetRange())
			s.Store(0, 1)
			s.Store(9, 0)
			require.Equal(t, 3, s.SizeOfSetRange())
		})
	}
}

func TestStorage_ConstructionFromSliceAndMap(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			fromSlice := NewStorageFromSlice([]int{1, 0, 3}, 0, common.Equal[int], factory)
			require.Equal(t, []int{1, 0, 3, 0}, fromSlice.FirstN(4))
			require.Equal(t, 2, fromSlice.Backend().Size())

			fromMap := NewStorageFromMap(map[uint64]int{0: 1, 2: 3, 4: 0}, 0, common.Equal[int], factory)
			require.True(t, fromSlice.Equal(fromMap))
		})
	}
}

func TestStorage_StoreAllWritesConsecutiveIndexes(t *testing.T) {
	s := NewStorage[uint64](0, common.Equal[int], store.HashMapFactory[uint64, int]{})
	s.StoreAll(4, []int{1, 2, 3})
	require.Equal(t, []common.MapEntry[uint64, int]{{Key: 4, Val: 1}, {Key: 5, Val: 2}, {Key: 6, Val: 3}}, s.OrderedEntries())
}

func TestStorage_EqualityConsidersDefaults(t *testing.T) {
	factory := store.PersistentFactory[uint64, int]{}
	a := NewStorageFromSlice[uint64]([]int{1, 2}, 0, common.Equal[int], factory)
	b := NewStorageFromSlice[uint64]([]int{1, 2}, 5, common.Equal[int], factory)
	require.False(t, a.Equal(b))
	b.ResetWithDefault(0)
	b.StoreAll(0, []int{1, 2})
	require.True(t, a.Equal(b))
	b.Store(1, 3)
	require.False(t, a.Equal(b))
}

func TestStorage_CompareOrdersByEntries(t *testing.T) {
	factory := store.HashMapFactory[uint64, int]{}
	a := NewStorageFromMap(map[uint64]int{1: 1, 3: 1}, 0, common.Equal[int], factory)
	b := NewStorageFromMap(map[uint64]int{1: 1, 3: 2}, 0, common.Equal[int], factory)
	c := NewStorageFromMap(map[uint64]int{1: 1}, 0, common.Equal[int], factory)
	require.Equal(t, -1, a.Compare(b, cmp.Compare[int]))
	require.Equal(t, 1, b.Compare(a, cmp.Compare[int]))
	require.Equal(t, 0, a.Compare(a.Clone(), cmp.Compare[int]))
	require.Equal(t, 1, a.Compare(c, cmp.Compare[int]))
	require.Equal(t, -1, c.Compare(a, cmp.Compare[int]))
}

func TestStorage_ClonesAreIndependent(t *testing.T) {
	for name, factory := range getStoreFactories() {
		t.Run(name, func(t *testing.T) {
			a := NewStorageFromSlice([]int{1, 2, 3}, 0, common.Equal[int], factory)
			b := a.Clone()
			b.Store(1, 9)
			a.Store(2, 0)
			require.Equal(t, []int{1, 2, 0}, a.FirstN(3))
			require.Equal(t, []int{1, 9, 3}, b.FirstN(3))
		})
	}
}

func TestStorage_Print(t *testing.T) {
	s := NewStorageFromMap(map[uint64]int{3: 5, 1: 2}, 0, common.Equal[int], store.PersistentFactory[uint64, int]{})

	var buffer bytes.Buffer
	require.NoError(t, s.Print(&buffer, Sparse))
	require.Equal(t, "{1: 2, 3: 5} default: 0", buffer.String())

	buffer.Reset()
	require.NoError(t, s.Print(&buffer, Dense))
	require.Equal(t, "[0 2 0 5] default: 0", buffer.String())

	require.Equal(t, "{1: 2, 3: 5} default: 0", s.String())
	require.Error(t, s.Print(&buffer, Density(7)))

	empty := NewStorage[uint64](1, common.Equal[int], store.PersistentFactory[uint64, int]{})
	require.Equal(t, "{} default: 1", empty.String())
}

func TestStorage_FootprintIncludesBackend(t *testing.T) {
	s := NewStorageFromSlice[uint64]([]int{1, 2, 3}, 0, common.Equal[int], store.HashMapFactory[uint64, int]{})
	fp := s.GetMemoryFootprint()
	require.Greater(t, fp.Total(), s.Backend().GetMemoryFootprint().Total())
}
