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
)

// Variant names an Array backend.
type Variant string

const (
	Vector     Variant = "vector"
	Persistent Variant = "persistent"
	Raw        Variant = "raw"
)

// GetAllVariants lists the supported array variants.
func GetAllVariants() []Variant {
	return []Variant{Vector, Persistent, Raw}
}

// NewFactory resolves a variant name to a factory of arrays. An empty name
// selects the Persistent backend.
func NewFactory[I common.Identifier, V any](variant Variant) (Factory[I, V], error) {
	switch variant {
	case Vector:
		return VectorFactory[I, V]{}, nil
	case Persistent, "":
		return PersistentFactory[I, V]{}, nil
	case Raw:
		return RawFactory[I, V]{}, nil
	}
	return nil, fmt.Errorf("%w: no array variant %q", common.UnsupportedConfiguration, variant)
}
