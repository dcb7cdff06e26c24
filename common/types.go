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

// Identifier is the type of keys and indices addressing values in memory
// objects. Named types are accepted so objects can use dedicated offset types.
type Identifier interface {
	~uint64 | ~uint32
}

// Equal reports whether two comparable values are the same. It is the default
// equality used wherever stores elide default values.
func Equal[V comparable](a, b V) bool {
	return a == b
}
