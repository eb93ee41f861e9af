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

// reduceQuadrant performs Cody-Waite range reduction by π/2.
// It returns the reduced argument r in [-π/4, π/4], the polynomial
// approximations of sin(r) and cos(r), and the quadrant k.
func reduceQuadrant[G hwy.Group](x G) (sinR, cosR, k G) {
	// Range reduction: k = round(x * 2/π)
	k = hwy.RoundToEven(hwy.Mul(x, hwy.Set[G](trig2OverPi_f32)))

	// r = x - k * (π/2) using a three-part split of π/2
	r := hwy.Sub(x, hwy.Mul(k, hwy.Set[G](trigPiOver2A_f32)))
	r = hwy.Sub(r, hwy.Mul(k, hwy.Set[G](trigPiOver2B_f32)))
	r = hwy.Sub(r, hwy.Mul(k, hwy.Set[G](trigPiOver2C_f32)))
	r2 := hwy.Mul(r, r)
	one := hwy.Set[G](trigOne_f32)

	// sin(r) ≈ r * (1 + s1*r² + s2*r⁴ + s3*r⁶ + s4*r⁸)
	sinPoly := hwy.MulAdd(hwy.Set[G](trigS4_f32), r2, hwy.Set[G](trigS3_f32))
	sinPoly = hwy.MulAdd(sinPoly, r2, hwy.Set[G](trigS2_f32))
	sinPoly = hwy.MulAdd(sinPoly, r2, hwy.Set[G](trigS1_f32))
	sinPoly = hwy.MulAdd(sinPoly, r2, one)
	sinR = hwy.Mul(r, sinPoly)

	// cos(r) ≈ 1 + c1*r² + c2*r⁴ + c3*r⁶ + c4*r⁸
	cosPoly := hwy.MulAdd(hwy.Set[G](trigC4_f32), r2, hwy.Set[G](trigC3_f32))
	cosPoly = hwy.MulAdd(cosPoly, r2, hwy.Set[G](trigC2_f32))
	cosPoly = hwy.MulAdd(cosPoly, r2, hwy.Set[G](trigC1_f32))
	cosR = hwy.MulAdd(cosPoly, r2, one)
	return sinR, cosR, k
}

// selectQuadrant picks ±sin(r) or ±cos(r) per lane from quadrant q & 3:
//   - 0: sin(r)
//   - 1: cos(r)
//   - 2: -sin(r)
//   - 3: -cos(r)
func selectQuadrant[G hwy.Group](sinR, cosR, k G, shift int32) G {
	var result G
	for i := 0; i < len(result); i++ {
		q := (int32(k[i]) + shift) & 3
		v := sinR[i]
		if q&1 != 0 {
			v = cosR[i]
		}
		if q&2 != 0 {
			v = -v
		}
		result[i] = v
	}
	return result
}

// Sin computes sin(x) for each lane using polynomial approximation.
// Uses Cody-Waite range reduction with integer quadrant selection.
//
// Special cases:
//   - Sin(0) = 0
//   - Sin(NaN) = NaN
func Sin[G hwy.Group](x G) G {
	sinR, cosR, k := reduceQuadrant(x)
	return selectQuadrant(sinR, cosR, k, 0)
}

// Cos computes cos(x) for each lane using polynomial approximation.
//
// Algorithm: cos(x) = sin(x + π/2), so the quadrant is shifted by one.
func Cos[G hwy.Group](x G) G {
	sinR, cosR, k := reduceQuadrant(x)
	return selectQuadrant(sinR, cosR, k, 1)
}

// SinCos computes both sin(x) and cos(x) for each lane, sharing the range
// reduction.
func SinCos[G hwy.Group](x G) (sin, cos G) {
	sinR, cosR, k := reduceQuadrant(x)
	return selectQuadrant(sinR, cosR, k, 0), selectQuadrant(sinR, cosR, k, 1)
}
