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

// Vec2 is a lane-parallel 2-component vector.
type Vec2[G hwy.Group] struct {
	X, Y G
}

// NewVec2 builds a Vec2 from its component lane groups.
func NewVec2[G hwy.Group](x, y G) Vec2[G] {
	return Vec2[G]{X: x, Y: y}
}

// SplatVec2 broadcasts (x, y) to every lane.
func SplatVec2[G hwy.Group](x, y float32) Vec2[G] {
	return Vec2[G]{X: hwy.Set[G](x), Y: hwy.Set[G](y)}
}

// Add returns v + o.
func (v Vec2[G]) Add(o Vec2[G]) Vec2[G] {
	return Vec2[G]{X: hwy.Add(v.X, o.X), Y: hwy.Add(v.Y, o.Y)}
}

// Sub returns v - o.
func (v Vec2[G]) Sub(o Vec2[G]) Vec2[G] {
	return Vec2[G]{X: hwy.Sub(v.X, o.X), Y: hwy.Sub(v.Y, o.Y)}
}

// Mul returns the component-wise product v * o.
func (v Vec2[G]) Mul(o Vec2[G]) Vec2[G] {
	return Vec2[G]{X: hwy.Mul(v.X, o.X), Y: hwy.Mul(v.Y, o.Y)}
}

// Scale multiplies both components by s.
func (v Vec2[G]) Scale(s G) Vec2[G] {
	return Vec2[G]{X: hwy.Mul(v.X, s), Y: hwy.Mul(v.Y, s)}
}

// Div divides both components by s.
func (v Vec2[G]) Div(s G) Vec2[G] {
	return Vec2[G]{X: hwy.Div(v.X, s), Y: hwy.Div(v.Y, s)}
}

// AddScalar adds s to both components.
func (v Vec2[G]) AddScalar(s G) Vec2[G] {
	return Vec2[G]{X: hwy.Add(v.X, s), Y: hwy.Add(v.Y, s)}
}

// Dot returns v.x*o.x + v.y*o.y per lane.
// Both products are rounded before the sum, so swapping the roles of x and
// y gives a bit-identical result on every architecture.
func (v Vec2[G]) Dot(o Vec2[G]) G {
	var r G
	for i := 0; i < len(r); i++ {
		r[i] = float32(v.X[i]*o.X[i]) + float32(v.Y[i]*o.Y[i])
	}
	return r
}

// Sin applies sin to both components.
func (v Vec2[G]) Sin() Vec2[G] {
	return Vec2[G]{X: math.Sin(v.X), Y: math.Sin(v.Y)}
}

// Cos applies cos to both components.
func (v Vec2[G]) Cos() Vec2[G] {
	return Vec2[G]{X: math.Cos(v.X), Y: math.Cos(v.Y)}
}

// YX swaps the components.
func (v Vec2[G]) YX() Vec2[G] {
	return Vec2[G]{X: v.Y, Y: v.X}
}

// XYYX widens v into (x, y, y, x).
func (v Vec2[G]) XYYX() Vec4[G] {
	return Vec4[G]{X: v.X, Y: v.Y, Z: v.Y, W: v.X}
}
