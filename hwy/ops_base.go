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

package hwy

import "math"

// This file provides the portable implementations of all lane group
// operations. Each operation is a fixed-trip-count loop over the lanes of a
// value-typed array, which the compiler unrolls and keeps in registers.
// Lane loops use explicit indices because a Group has no core type.

// Set creates a lane group with all lanes set to the same value.
func Set[G Group](value float32) G {
	var r G
	for i := 0; i < len(r); i++ {
		r[i] = value
	}
	return r
}

// Zero creates a lane group with all lanes set to zero.
func Zero[G Group]() G {
	var r G
	return r
}

// Iota creates a lane group holding start, start+1, ..., start+lanes-1.
func Iota[G Group](start float32) G {
	var r G
	for i := 0; i < len(r); i++ {
		r[i] = start + float32(i)
	}
	return r
}

// Load creates a lane group from the first lanes of src.
// Missing lanes (when src is shorter than the group) are zero.
func Load[G Group](src []float32) G {
	var r G
	n := min(len(src), len(r))
	for i := 0; i < n; i++ {
		r[i] = src[i]
	}
	return r
}

// Store writes the lanes of v to dst, stopping at len(dst).
func Store[G Group](v G, dst []float32) {
	n := min(len(dst), len(v))
	for i := 0; i < n; i++ {
		dst[i] = v[i]
	}
}

// Add performs element-wise addition.
func Add[G Group](a, b G) G {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub[G Group](a, b G) G {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[G Group](a, b G) G {
	for i := 0; i < len(a); i++ {
		a[i] *= b[i]
	}
	return a
}

// Div performs element-wise division.
// Division by zero follows IEEE 754 (±Inf or NaN); it is not trapped.
func Div[G Group](a, b G) G {
	for i := 0; i < len(a); i++ {
		a[i] /= b[i]
	}
	return a
}

// MulAdd computes a*b + c element-wise.
func MulAdd[G Group](a, b, c G) G {
	for i := 0; i < len(a); i++ {
		a[i] = a[i]*b[i] + c[i]
	}
	return a
}

// Neg negates all lanes.
func Neg[G Group](v G) G {
	for i := 0; i < len(v); i++ {
		v[i] = -v[i]
	}
	return v
}

// Abs computes the absolute value of each lane.
func Abs[G Group](v G) G {
	for i := 0; i < len(v); i++ {
		v[i] = math.Float32frombits(math.Float32bits(v[i]) &^ (1 << 31))
	}
	return v
}

// Min returns the element-wise minimum.
// If a lane of a is NaN, the lane of b is returned.
func Min[G Group](a, b G) G {
	for i := 0; i < len(a); i++ {
		if !(a[i] < b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

// Max returns the element-wise maximum.
// If a lane of a is NaN, the lane of b is returned.
func Max[G Group](a, b G) G {
	for i := 0; i < len(a); i++ {
		if !(a[i] > b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

// Clamp limits every lane of v to [lo, hi]. NaN lanes become lo.
func Clamp[G Group](v G, lo, hi float32) G {
	for i := 0; i < len(v); i++ {
		x := v[i]
		switch {
		case x > hi:
			x = hi
		case !(x >= lo):
			x = lo
		}
		v[i] = x
	}
	return v
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[G Group](v G) G {
	for i := 0; i < len(v); i++ {
		v[i] = float32(math.RoundToEven(float64(v[i])))
	}
	return v
}

// Ldexp multiplies each lane of v by 2^k, where k holds integral values.
// The scale is applied in two steps so that every k in [-252, 254] is
// representable without going through float64.
func Ldexp[G Group](v, k G) G {
	for i := 0; i < len(v); i++ {
		ki := int32(k[i])
		h := ki >> 1
		s1 := math.Float32frombits(uint32(h+127) << 23)
		s2 := math.Float32frombits(uint32(ki-h+127) << 23)
		v[i] = v[i] * s1 * s2
	}
	return v
}

// ReduceSum sums all lanes.
func ReduceSum[G Group](v G) float32 {
	var sum float32
	for i := 0; i < len(v); i++ {
		sum += v[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[G Group](v G) float32 {
	m := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] < m {
			m = v[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[G Group](v G) float32 {
	m := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] > m {
			m = v[i]
		}
	}
	return m
}

// Greater performs element-wise a > b comparison.
func Greater[G Group](a, b G) Mask {
	var m Mask
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Less performs element-wise a < b comparison.
func Less[G Group](a, b G) Mask {
	var m Mask
	for i := 0; i < len(a); i++ {
		if a[i] < b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// IsNaN returns a mask of the lanes that hold NaN.
func IsNaN[G Group](v G) Mask {
	var m Mask
	for i := 0; i < len(v); i++ {
		if v[i] != v[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// IsInf returns a mask of the lanes that hold infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[G Group](v G, sign int) Mask {
	var m Mask
	for i := 0; i < len(v); i++ {
		if math.IsInf(float64(v[i]), sign) {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Merge selects lanes from yes where the mask is active, otherwise from no.
func Merge[G Group](yes, no G, m Mask) G {
	for i := 0; i < len(no); i++ {
		if m&(1<<uint(i)) != 0 {
			no[i] = yes[i]
		}
	}
	return no
}
