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
	"log"
	"math/rand"
	"time"

	"github.com/pbnjay/memory"
	"github.com/symexec/memstore/go/backend/array"
	"github.com/symexec/memstore/go/backend/sparse"
	"github.com/symexec/memstore/go/backend/store"
	"github.com/symexec/memstore/go/common"
	"github.com/urfave/cli/v2"
)

const (
	keyedKind = "keyed"
	arrayKind = "array"
)

var (
	cpuProfilingFlag = cli.StringFlag{
		Name:  "cpu-profile",
		Usage: "enable the recording of a CPU profile",
	}
	kindFlag = cli.StringFlag{
		Name:  "kind",
		Usage: "the family of the simulated object, keyed or array",
		Value: keyedKind,
	}
	variantFlag = cli.StringFlag{
		Name:  "variant",
		Usage: "the backend of the simulated object, see the variants command",
		Value: "persistent",
	}
	capacityFlag = cli.IntFlag{
		Name:  "capacity",
		Usage: "the number of slots of the simulated object",
		Value: 1 << 12,
	}
	roundsFlag = cli.IntFlag{
		Name:  "rounds",
		Usage: "the number of forks",
		Value: 64,
	}
	writesFlag = cli.IntFlag{
		Name:  "writes",
		Usage: "the number of writes applied to every fork",
		Value: 16,
	}
)

var forkCommand = cli.Command{
	Action: fork,
	Name:   "fork",
	Usage:  "simulates repeated state forks of a memory object and reports the memory used by all forks",
	Flags: []cli.Flag{
		&kindFlag,
		&variantFlag,
		&capacityFlag,
		&roundsFlag,
		&writesFlag,
		&cpuProfilingFlag,
	},
}

// forkConfig describes a fork simulation.
type forkConfig struct {
	kind     string
	variant  string
	capacity int
	rounds   int
	writes   int
}

// forkObject is the part of a memory object exercised by the simulation.
type forkObject interface {
	load(index uint32) uint64
	store(index uint32, value uint64)
	clone() forkObject
	common.MemoryFootprintProvider
}

type keyedObject struct {
	storage *sparse.Storage[uint32, uint64]
}

func (o keyedObject) load(index uint32) uint64 { return o.storage.Load(index) }
func (o keyedObject) store(index uint32, value uint64) { o.storage.Store(index, value) }
func (o keyedObject) clone() forkObject { return keyedObject{o.storage.Clone()} }
func (o keyedObject) GetMemoryFootprint() *common.MemoryFootprint {
	return o.storage.GetMemoryFootprint()
}

type arrayObject struct {
	values array.Array[uint32, uint64]
}

func (o arrayObject) load(index uint32) uint64 { return o.values.At(index) }
func (o arrayObject) store(index uint32, value uint64) { o.values.Set(index, value) }
func (o arrayObject) clone() forkObject { return arrayObject{o.values.Clone()} }
func (o arrayObject) GetMemoryFootprint() *common.MemoryFootprint {
	return o.values.GetMemoryFootprint()
}

func newForkObject(config forkConfig) (forkObject, error) {
	switch config.kind {
	case keyedKind:
		factory, err := store.NewFactory[uint32, uint64](store.Parameters{
			Variant:  store.Variant(config.variant),
			Capacity: config.capacity,
		})
		if err != nil {
			return nil, err
		}
		return keyedObject{sparse.NewStorage(0, common.Equal[uint64], factory)}, nil
	case arrayKind:
		factory, err := array.NewFactory[uint32, uint64](array.Variant(config.variant))
		if err != nil {
			return nil, err
		}
		return arrayObject{factory.Create(config.capacity)}, nil
	}
	return nil, fmt.Errorf("%w: unknown object kind %q", common.UnsupportedConfiguration, config.kind)
}

// simulateForks creates an object and forks it the configured number of
// times, each fork updating some of the slots it inherited. It checks that no
// fork observes the updates of another and returns the footprint of all forks.
func simulateForks(config forkConfig) (*common.MemoryFootprint, error) {
	if config.capacity <= 0 || config.rounds < 0 || config.writes < 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, rounds and writes not negative", common.UnsupportedConfiguration)
	}
	root, err := newForkObject(config)
	if err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(0))
	forks := []forkObject{root}
	references := [][]uint64{make([]uint64, config.capacity)}
	for round := 1; round <= config.rounds; round++ {
		parent := r.Intn(len(forks))
		child := forks[parent].clone()
		reference := make([]uint64, config.capacity)
		copy(reference, references[parent])
		for i := 0; i < config.writes; i++ {
			index := uint32(r.Intn(config.capacity))
			value := uint64(round)<<32 | uint64(i)
			child.store(index, value)
			reference[index] = value
		}
		forks = append(forks, child)
		references = append(references, reference)
	}

	for i, f := range forks {
		for index, want := range references[i] {
			if got := f.load(uint32(index)); got != want {
				return nil, fmt.Errorf("fork %d corrupted, slot %d holds %d instead of %d", i, index, got, want)
			}
		}
	}

	res := common.NewMemoryFootprint(0)
	for i, f := range forks {
		res.AddChild(fmt.Sprintf("fork-%d", i), f.GetMemoryFootprint())
	}
	return res, nil
}

func fork(ctx *cli.Context) error {
	profileTarget := ctx.String(cpuProfilingFlag.Name)
	if len(profileTarget) != 0 {
		if err := StartCPUProfile(profileTarget); err != nil {
			return err
		}
		defer StopCPUProfile()
	}

	config := forkConfig{
		kind:     ctx.String(kindFlag.Name),
		variant:  ctx.String(variantFlag.Name),
		capacity: ctx.Int(capacityFlag.Name),
		rounds:   ctx.Int(roundsFlag.Name),
		writes:   ctx.Int(writesFlag.Name),
	}

	log.Printf("Simulating %d forks of a %s %s object with %d slots ...", config.rounds, config.variant, config.kind, config.capacity)
	start := time.Now()
	footprint, err := simulateForks(config)
	if err != nil {
		return err
	}
	log.Printf("Simulation took %.3f seconds", time.Since(start).Seconds())

	fmt.Printf("%v", footprint)
	fmt.Printf("Footprint of all forks: %d bytes of %d bytes of system memory\n", footprint.Total(), memory.TotalMemory())
	return nil
}
