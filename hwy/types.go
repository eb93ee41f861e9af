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

// Package hwy provides fixed-width float32 lane groups with portable
// element-wise operations.
//
// A lane group is a plain Go array ([4]float32 or [8]float32) that is passed
// by value, so expressions never allocate and the compiler is free to keep
// the lanes in vector registers. Generic code is written once against the
// Group constraint and instantiated for the width chosen at configuration
// time:
//
//	import "github.com/ajroetker/hwyshade/hwy"
//
//	x := hwy.Iota[hwy.F32x8](16)        // 16, 17, ..., 23
//	y := hwy.MulAdd(x, hwy.Set[hwy.F32x8](2), hwy.Set[hwy.F32x8](-1))
//	total := hwy.ReduceSum(y)
//
// All operands of one expression share the same width; the type system
// rejects mixing F32x4 and F32x8.
package hwy

// F32x4 is a group of 4 float32 lanes (SSE2/NEON register width).
type F32x4 [4]float32

// F32x8 is a group of 8 float32 lanes (AVX2 register width).
type F32x8 [8]float32

// Group is the constraint satisfied by every lane group type.
type Group interface {
	~[4]float32 | ~[8]float32
}

// MaxGroupLanes is the widest lane group supported by this package.
const MaxGroupLanes = 8

// NumLanes returns the number of lanes in lane group type G.
func NumLanes[G Group]() int {
	var g G
	return len(g)
}

// Mask represents the result of a lane-wise comparison.
// Bit i is set if lane i is active.
type Mask uint8

// GetBit returns whether lane i is active.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i >= MaxGroupLanes {
		return false
	}
	return m&(1<<uint(i)) != 0
}

// CountTrue returns the number of active lanes.
func (m Mask) CountTrue() int {
	count := 0
	for v := m; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// AnyTrue returns true if at least one lane is active.
func (m Mask) AnyTrue() bool {
	return m != 0
}

// AllTrue returns true if the first n lanes are all active.
func (m Mask) AllTrue(n int) bool {
	want := FirstN(n)
	return m&want == want
}

// FirstN returns a mask with the first n lanes active.
// This is the mask used for the tail of a row that is not a multiple of the
// lane width.
func FirstN(n int) Mask {
	if n <= 0 {
		return 0
	}
	if n >= MaxGroupLanes {
		return Mask(0xFF)
	}
	return Mask(1<<uint(n)) - 1
}
