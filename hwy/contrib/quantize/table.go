// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quantize

import (
	"fmt"

	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/math"
)

const (
	// TableDomain is the upper end of the sampled argument range [0, TableDomain].
	// tanh(5) * 255 rounds to 255, so larger arguments saturate.
	TableDomain = 5.0

	// DefaultTableSize is the number of entries used when none is configured.
	DefaultTableSize = 1024

	// MinTableSize is the smallest table NewTable accepts. Smaller tables
	// interpolate too coarsely to stay within two levels of Exact.
	MinTableSize = 32
)

// Table holds tanh levels sampled uniformly over [0, TableDomain].
// Entry i is the exact level of 5*i/(size-1). A Table is immutable after
// NewTable returns and safe for concurrent use.
type Table struct {
	levels []uint8
	scale  float32 // entries per unit of argument
}

// NewTable samples size points of the exact level curve.
func NewTable(size int) (*Table, error) {
	if size < MinTableSize {
		return nil, fmt.Errorf("quantize: table size %d, need at least %d", size, MinTableSize)
	}
	levels := make([]uint8, size)
	last := float32(size - 1)

	// Sample eight arguments per call to the vector tanh.
	var buf [8]uint8
	for start := 0; start < size; start += len(buf) {
		x := hwy.Mul(hwy.Iota[hwy.F32x8](float32(start)), hwy.Set[hwy.F32x8](TableDomain/last))
		exactGroup(x, buf[:])
		copy(levels[start:], buf[:])
	}

	// Pin the last entry to the domain end despite rounding in TableDomain/last.
	levels[size-1] = ExactLevel(TableDomain)

	return &Table{levels: levels, scale: last / TableDomain}, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.levels)
}

// At returns entry i.
func (t *Table) At(i int) uint8 {
	return t.levels[i]
}

// Lookup returns the interpolated level for the raw argument x.
// Arguments at or below zero and NaN use the first entry; arguments at or
// beyond TableDomain use the last.
func (t *Table) Lookup(x float32) uint8 {
	if !(x > 0) {
		return t.levels[0]
	}
	pos := x * t.scale
	last := len(t.levels) - 1
	if pos >= float32(last) {
		return t.levels[last]
	}
	i := int(pos)
	frac := pos - float32(i)
	lo, hi := float32(t.levels[i]), float32(t.levels[i+1])
	return uint8(lo + frac*(hi-lo) + 0.5)
}

// lookupGroup applies Lookup to every lane of x.
func lookupGroup[G hwy.Group](t *Table, x G, out []uint8) {
	n := min(len(out), len(x))
	for i := 0; i < n; i++ {
		out[i] = t.Lookup(x[i])
	}
}

// exactGroup writes the exact level of every lane of x.
func exactGroup[G hwy.Group](x G, out []uint8) {
	v := math.Tanh(x)
	v = hwy.Clamp(v, 0, 1)
	v = hwy.RoundToEven(hwy.Mul(v, hwy.Set[G](255)))
	n := min(len(out), len(v))
	for i := 0; i < n; i++ {
		out[i] = uint8(v[i])
	}
}
