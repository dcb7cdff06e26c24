// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
)

type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Releaser is an interface for types owning resources that should be released
// after use. The object this function is called on becomes invalid for any
// future operation afterwards.
type Releaser interface {
	Release()
}

// MapEntry wraps a map key-value pair.
type MapEntry[K comparable, V any] struct {
	Key K
	Val V
}

func (e MapEntry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.Key, e.Val)
}
