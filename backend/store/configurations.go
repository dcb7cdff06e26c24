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

// Variant names a Store backend.
type Variant string

const (
	HashMap    Variant = "hashmap"
	Persistent Variant = "persistent"
	Dense      Variant = "dense"
)

// Parameters struct defining configuration parameters for store factories.
type Parameters struct {
	Variant  Variant
	Capacity int // number of slots, used by the Dense variant only
}

// GetAllVariants lists the supported store variants.
func GetAllVariants() []Variant {
	return []Variant{HashMap, Persistent, Dense}
}

// NewFactory resolves the given parameters to a factory of stores holding
// comparable values. If the parameters name no supported configuration, the
// error is an UnsupportedConfiguration error.
func NewFactory[I common.Identifier, V comparable](params Parameters) (Factory[I, V], error) {
	return NewFactoryWithEqual[I, V](params, common.Equal[V])
}

// NewFactoryWithEqual is like NewFactory for values compared by the given
// equality function. An empty variant selects the Persistent backend.
func NewFactoryWithEqual[I common.Identifier, V any](params Parameters, equal func(a, b V) bool) (Factory[I, V], error) {
	variant := params.Variant
	if variant == "" {
		variant = Persistent
	}
	switch variant {
	case HashMap:
		return HashMapFactory[I, V]{}, nil
	case Persistent:
		return PersistentFactory[I, V]{}, nil
	case Dense:
		if params.Capacity < 0 {
			return nil, fmt.Errorf("%w: negative capacity %d for %s store", common.UnsupportedConfiguration, params.Capacity, variant)
		}
		if equal == nil {
			return nil, fmt.Errorf("%w: %s store requires an equality function", common.UnsupportedConfiguration, variant)
		}
		return DenseFactory[I, V]{Capacity: params.Capacity, Equal: equal}, nil
	}
	return nil, fmt.Errorf("%w: no store variant %q", common.UnsupportedConfiguration, variant)
}
