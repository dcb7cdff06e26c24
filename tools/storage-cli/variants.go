// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/symexec/memstore/go/backend/array"
	"github.com/symexec/memstore/go/backend/store"
	"github.com/urfave/cli/v2"
)

var variantsCommand = cli.Command{
	Action: listVariants,
	Name:   "variants",
	Usage:  "lists the available storage backends",
}

func listVariants(*cli.Context) error {
	fmt.Printf("Keyed stores (kind %q):\n", keyedKind)
	for _, variant := range store.GetAllVariants() {
		fmt.Printf("\t%v\n", variant)
	}
	fmt.Printf("Fixed-size arrays (kind %q):\n", arrayKind)
	for _, variant := range array.GetAllVariants() {
		fmt.Printf("\t%v\n", variant)
	}
	return nil
}
