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

// Exp computes e^x for each lane using full-range polynomial approximation
// with range reduction and IEEE 754 reconstruction.
//
// Algorithm:
// 1. Range reduction: x = k*ln(2) + r, where |r| <= ln(2)/2
// 2. Polynomial approximation: e^r ≈ 1 + r + r²/2! + r³/3! + ...
// 3. Reconstruction: e^x = 2^k * e^r using IEEE 754 bit manipulation
//
// Special cases:
//   - Exp(x) = +Inf for x > 88.72
//   - Exp(x) = 0 for x < -87.34
//   - Exp(NaN) = NaN
func Exp[G hwy.Group](x G) G {
	invLn2 := hwy.Set[G](expInvLn2_f32)
	ln2Hi := hwy.Set[G](expLn2Hi_f32)
	ln2Lo := hwy.Set[G](expLn2Lo_f32)
	one := hwy.Set[G](expOne_f32)

	// Range reduction: k = round(x / ln(2)), r = x - k * ln(2)
	k := hwy.RoundToEven(hwy.Mul(x, invLn2))

	// r = x - k*ln(2) using high/low split for precision
	r := hwy.Sub(x, hwy.Mul(k, ln2Hi))
	r = hwy.Sub(r, hwy.Mul(k, ln2Lo))

	// Polynomial approximation using Horner's method
	// p = 1 + r*(1 + r*(0.5 + r*(1/6 + r*(1/24 + r*(1/120 + r/720)))))
	p := hwy.MulAdd(hwy.Set[G](expC6_f32), r, hwy.Set[G](expC5_f32))
	p = hwy.MulAdd(p, r, hwy.Set[G](expC4_f32))
	p = hwy.MulAdd(p, r, hwy.Set[G](expC3_f32))
	p = hwy.MulAdd(p, r, hwy.Set[G](expC2_f32))
	p = hwy.MulAdd(p, r, hwy.Set[G](expC1_f32))
	p = hwy.MulAdd(p, r, one)

	// Scale by 2^k
	result := hwy.Ldexp(p, k)

	// Handle special cases
	result = hwy.Merge(hwy.Set[G](expInf_f32), result, hwy.Greater(x, hwy.Set[G](expOverflow_f32)))
	result = hwy.Merge(hwy.Set[G](expZero_f32), result, hwy.Less(x, hwy.Set[G](expUnderflow_f32)))
	result = hwy.Merge(x, result, hwy.IsNaN(x))
	return result
}
