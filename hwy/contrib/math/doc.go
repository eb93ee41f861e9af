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

// Package math provides vectorized transcendental functions on hwy lane
// groups.
//
// Every function takes and returns a lane group by value and evaluates all
// lanes with the same branch-free instruction sequence:
//
// Exponential:
//   - Exp(x G) G - e^x
//
// Trigonometric:
//   - Sin(x G) G
//   - Cos(x G) G
//   - SinCos(x G) (sin, cos G)
//
// Hyperbolic:
//   - Tanh(x G) G - (e^2x - 1) / (e^2x + 1)
//
// # Accuracy
//
// The functions are tuned for visual-grade float32 work:
//   - Exp: ~2 ULP over the finite range, +Inf above ~88.72, 0 below ~-87.34
//   - Sin/Cos: ~1e-6 absolute for |x| up to a few thousand
//   - Tanh: ~1e-6 absolute; saturates to ±1
//
// Results are not bit-exact to the standard library.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/hwyshade/hwy"
//	    "github.com/ajroetker/hwyshade/hwy/contrib/math"
//	)
//
//	func Glow(x hwy.F32x8) hwy.F32x8 {
//	    return hwy.Mul(math.Exp(x), math.Sin(x))
//	}
package math
