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

package vecmath

import (
	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/math"
)

// Vec4 is a lane-parallel 4-component vector, typically an RGBA color.
type Vec4[G hwy.Group] struct {
	X, Y, Z, W G
}

// NewVec4 builds a Vec4 from its component lane groups.
func NewVec4[G hwy.Group](x, y, z, w G) Vec4[G] {
	return Vec4[G]{X: x, Y: y, Z: z, W: w}
}

// SplatVec4 broadcasts (x, y, z, w) to every lane.
func SplatVec4[G hwy.Group](x, y, z, w float32) Vec4[G] {
	return Vec4[G]{X: hwy.Set[G](x), Y: hwy.Set[G](y), Z: hwy.Set[G](z), W: hwy.Set[G](w)}
}

// Add returns v + o.
func (v Vec4[G]) Add(o Vec4[G]) Vec4[G] {
	return Vec4[G]{
		X: hwy.Add(v.X, o.X),
		Y: hwy.Add(v.Y, o.Y),
		Z: hwy.Add(v.Z, o.Z),
		W: hwy.Add(v.W, o.W),
	}
}

// Sub returns v - o.
func (v Vec4[G]) Sub(o Vec4[G]) Vec4[G] {
	return Vec4[G]{
		X: hwy.Sub(v.X, o.X),
		Y: hwy.Sub(v.Y, o.Y),
		Z: hwy.Sub(v.Z, o.Z),
		W: hwy.Sub(v.W, o.W),
	}
}

// Scale multiplies every component by s.
func (v Vec4[G]) Scale(s G) Vec4[G] {
	return Vec4[G]{X: hwy.Mul(v.X, s), Y: hwy.Mul(v.Y, s), Z: hwy.Mul(v.Z, s), W: hwy.Mul(v.W, s)}
}

// AddScalar adds s to every component.
func (v Vec4[G]) AddScalar(s G) Vec4[G] {
	return Vec4[G]{X: hwy.Add(v.X, s), Y: hwy.Add(v.Y, s), Z: hwy.Add(v.Z, s), W: hwy.Add(v.W, s)}
}

// MulAdd returns v*s + o, component-wise with a per-lane scale.
func (v Vec4[G]) MulAdd(s G, o Vec4[G]) Vec4[G] {
	return Vec4[G]{
		X: hwy.MulAdd(v.X, s, o.X),
		Y: hwy.MulAdd(v.Y, s, o.Y),
		Z: hwy.MulAdd(v.Z, s, o.Z),
		W: hwy.MulAdd(v.W, s, o.W),
	}
}

// DivVec returns the component-wise quotient v / o.
// Zero divisors follow IEEE 754.
func (v Vec4[G]) DivVec(o Vec4[G]) Vec4[G] {
	return Vec4[G]{
		X: hwy.Div(v.X, o.X),
		Y: hwy.Div(v.Y, o.Y),
		Z: hwy.Div(v.Z, o.Z),
		W: hwy.Div(v.W, o.W),
	}
}

// Exp applies e^x to every component.
func (v Vec4[G]) Exp() Vec4[G] {
	return Vec4[G]{X: math.Exp(v.X), Y: math.Exp(v.Y), Z: math.Exp(v.Z), W: math.Exp(v.W)}
}

// Tanh applies tanh to every component.
func (v Vec4[G]) Tanh() Vec4[G] {
	return Vec4[G]{X: math.Tanh(v.X), Y: math.Tanh(v.Y), Z: math.Tanh(v.Z), W: math.Tanh(v.W)}
}

// Component returns component i (0..3) as a lane group.
func (v Vec4[G]) Component(i int) G {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}
