package isodd

import "github.com/neurlang/quaternary"

import "github.com/neurlang/parity"
import "github.com/neurlang/parity/datasets"

// Dataslice is the whole domain of an unsigned integer width
type Dataslice struct {
	// Bits is 8 or 16, anything else means 16
	Bits byte
}

func (d Dataslice) Get(n int) Sample {
	return Sample(n)
}

func (d Dataslice) Len() int {
	if d.Bits == 8 {
		return 1 << 8
	}
	return 1 << 16
}

// Set materializes the Dataslice, mapping every value to its oddness
func (d Dataslice) Set() (set datasets.Dataset) {
	set.Init()
	for i := 0; i < d.Len(); i++ {
		set[d.Get(i).Feature(0)] = d.Get(i).Output() != 0
	}
	return
}

// Split separates even values (0) from odd values (1)
func (d Dataslice) Split() datasets.SplittedDataset {
	return datasets.SplitDataset(d.Set())
}

// Filter compiles the materialized Dataslice into a quaternary filter
func (d Dataslice) Filter() []byte {
	return []byte(quaternary.Make(d.Set()))
}

type Sample uint16

func (s Sample) Feature(_ int) uint32 {
	return uint32(s)
}

// Output is 1 for odd samples and 0 for even ones
func (s Sample) Output() uint16 {
	if parity.IsOdd(parity.Uint16(s)) {
		return 1
	}
	return 0
}
