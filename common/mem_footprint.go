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
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MemoryFootprint describes the memory consumption of a storage structure.
// Footprints form a tree; a footprint reachable through several parents, for
// instance a node shared by persistent clones, is counted once in Total.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
	note     string
}

// NewMemoryFootprint creates a new MemoryFootprint instance for a storage structure.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: make(map[string]*MemoryFootprint),
	}
}

// AddChild attaches the footprint of a subcomponent. Nil children are ignored.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if child == nil {
		return
	}
	mf.children[name] = child
}

// SetNote attaches a free-form annotation printed next to the footprint.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value provides the amount of bytes consumed by the structure (excluding its subcomponents)
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the amount of bytes consumed by the structure including all its subcomponents
func (mf *MemoryFootprint) Total() uintptr {
	included := make(map[*MemoryFootprint]bool)
	return mf.includeIntoTotal(included)
}

func (mf *MemoryFootprint) includeIntoTotal(included map[*MemoryFootprint]bool) (total uintptr) {
	if included[mf] {
		return 0
	}
	included[mf] = true
	total = mf.value
	for _, child := range mf.children {
		total += child.includeIntoTotal(included)
	}
	return total
}

// String renders the footprint tree, one line per component, children
// before their parent and siblings sorted by name.
func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.toStringBuilder(&sb, ".")
	return sb.String()
}

func (mf *MemoryFootprint) toStringBuilder(sb *strings.Builder, path string) {
	names := maps.Keys(mf.children)
	slices.Sort(names)
	for _, name := range names {
		mf.children[name].toStringBuilder(sb, path+"/"+name)
	}
	writeMemoryAmount(sb, mf.Total())
	sb.WriteRune(' ')
	sb.WriteString(path)
	if mf.note != "" {
		sb.WriteString(" (")
		sb.WriteString(mf.note)
		sb.WriteRune(')')
	}
	sb.WriteRune('\n')
}

func writeMemoryAmount(sb *strings.Builder, bytes uintptr) {
	const unit = 1024
	const prefixes = " KMGTPE"
	value, exp := float64(bytes), 0
	for value >= unit && exp+1 < len(prefixes) {
		value /= unit
		exp++
	}
	fmt.Fprintf(sb, "%6.1f %cB", value, prefixes[exp])
}
