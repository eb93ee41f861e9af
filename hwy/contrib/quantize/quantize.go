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
	"github.com/ajroetker/hwyshade/hwy"
)

// Quantizer pairs a Strategy with the Table it needs. The zero value is an
// exact quantizer.
type Quantizer struct {
	Strategy Strategy
	Table    *Table // nil unless Strategy is Approx
}

// New returns a quantizer for s. For Approx it builds a table with
// tableSize entries (0 selects DefaultTableSize).
func New(s Strategy, tableSize int) (Quantizer, error) {
	switch s {
	case Exact:
		return Quantizer{Strategy: Exact}, nil
	case Approx:
		if tableSize == 0 {
			tableSize = DefaultTableSize
		}
		t, err := NewTable(tableSize)
		if err != nil {
			return Quantizer{}, err
		}
		return Quantizer{Strategy: Approx, Table: t}, nil
	default:
		return Quantizer{}, ErrUnknownStrategy
	}
}

// Level quantizes a single raw argument.
func (q Quantizer) Level(x float32) uint8 {
	if q.Strategy == Approx && q.Table != nil {
		return q.Table.Lookup(x)
	}
	return ExactLevel(x)
}

// ExactLevel returns round(clamp(tanh(x), 0, 1) * 255).
func ExactLevel(x float32) uint8 {
	var out [4]uint8
	exactGroup(hwy.Set[hwy.F32x4](x), out[:])
	return out[0]
}

// QuantizeGroup writes the level of each lane of x to out, stopping at
// len(out).
func QuantizeGroup[G hwy.Group](q Quantizer, x G, out []uint8) {
	if q.Strategy == Approx && q.Table != nil {
		lookupGroup(q.Table, x, out)
		return
	}
	exactGroup(x, out)
}
