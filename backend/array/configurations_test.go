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
	"errors"
	"testing"

	"github.com/symexec/memstore/go/common"
)

func TestConfigurations_VariantsResolveToTheirBackends(t *testing.T) {
	tests := map[Variant]Array[uint32, int]{
		Vector:     &VectorArray[uint32, int]{},
		Persistent: &PersistentArray[uint32, int]{},
		Raw:        &RawArray[uint32, int]{},
		"":         &PersistentArray[uint32, int]{},
	}
	for variant, want := range tests {
		factory, err := NewFactory[uint32, int](variant)
		if err != nil {
			t.Fatalf("failed to resolve variant %q: %v", variant, err)
		}
		got := factory.Create(2)
		if gotKind, wantKind := got.Begin().kind, want.Begin().kind; gotKind != wantKind {
			t.Errorf("unexpected backend for variant %q, wanted %v, got %v", variant, wantKind, gotKind)
		}
	}
}

func TestConfigurations_UnknownVariantIsRejected(t *testing.T) {
	_, err := NewFactory[uint32, int]("paged")
	if !errors.Is(err, common.UnsupportedConfiguration) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIterator_UninitializedIteratorPanics(t *testing.T) {
	var it Iterator[uint32, int]
	common.AssertPanics(t, func() { it.Next() })
	common.AssertPanics(t, func() { it.Value() })
	common.AssertPanics(t, func() { it.Index() })
	common.AssertPanics(t, func() { it.Clone() })
}
