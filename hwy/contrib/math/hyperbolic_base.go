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

package math

import "github.com/ajroetker/hwyshade/hwy"

// Tanh computes tanh(x) for each lane from the exponential identity
//
//	tanh(x) = (e^2x - 1) / (e^2x + 1)
//
// The input is not clamped before exponentiation. Lanes where e^2x
// overflows to +Inf return exactly 1, and lanes where it underflows to 0
// return exactly -1, which is where the identity converges.
//
// Special cases:
//   - Tanh(+Inf) = 1
//   - Tanh(-Inf) = -1
//   - Tanh(NaN) = NaN
func Tanh[G hwy.Group](x G) G {
	one := hwy.Set[G](tanhOne_f32)
	e2x := Exp(hwy.Mul(x, hwy.Set[G](tanhTwo_f32)))
	result := hwy.Div(hwy.Sub(e2x, one), hwy.Add(e2x, one))
	return hwy.Merge(one, result, hwy.IsInf(e2x, 1))
}

// TanhScalar is the single-lane form of Tanh, sharing its approximation so
// that lookup tables built from it agree with the vector path.
func TanhScalar(x float32) float32 {
	return Tanh(hwy.Set[hwy.F32x4](x))[0]
}
