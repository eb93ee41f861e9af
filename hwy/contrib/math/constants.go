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

import stdmath "math"

// =============================================================================
// Constants for mathematical functions
// =============================================================================

// Float32 constants for Exp
var (
	expLn2Hi_f32  float32 = 0.693359375
	expLn2Lo_f32  float32 = -2.12194440e-4
	expInvLn2_f32 float32 = 1.44269504088896341

	// Overflow/underflow thresholds
	expOverflow_f32  float32 = 88.72283905206835
	expUnderflow_f32 float32 = -87.33654475055310

	// Polynomial coefficients for exp(r) on [-ln(2)/2, ln(2)/2]
	// Taylor series: 1 + r + r²/2! + r³/3! + r⁴/4! + r⁵/5! + r⁶/6!
	expC1_f32 float32 = 1.0
	expC2_f32 float32 = 0.5
	expC3_f32 float32 = 0.16666666666666666
	expC4_f32 float32 = 0.041666666666666664
	expC5_f32 float32 = 0.008333333333333333
	expC6_f32 float32 = 0.001388888888888889

	expOne_f32  float32 = 1.0
	expZero_f32 float32 = 0.0
	expInf_f32          = float32(stdmath.Inf(1))
)

// Float32 constants for Trig (Sin, Cos)
var (
	trig2OverPi_f32 float32 = 0.6366197723675814 // 2/π

	// π/2 split into three parts whose leading bits are exactly
	// representable, so k*part is exact for |k| < 2^12.
	trigPiOver2A_f32 float32 = 1.5703125
	trigPiOver2B_f32 float32 = 4.837512969970703125e-4
	trigPiOver2C_f32 float32 = 7.54978995489188216e-8

	// sin(x) polynomial coefficients for |x| <= π/4
	trigS1_f32 float32 = -0.16666666641626524    // -1/3!
	trigS2_f32 float32 = 0.008333329385889463    // 1/5!
	trigS3_f32 float32 = -0.00019839334836096632 // -1/7!
	trigS4_f32 float32 = 2.718311493989822e-6    // 1/9!

	// cos(x) polynomial coefficients for |x| <= π/4
	trigC1_f32 float32 = -0.4999999963229337   // -1/2!
	trigC2_f32 float32 = 0.04166662453689337   // 1/4!
	trigC3_f32 float32 = -0.001388731625493765 // -1/6!
	trigC4_f32 float32 = 2.443315711809948e-5  // 1/8!

	trigOne_f32 float32 = 1.0
)

// Float32 constants for Tanh
var (
	tanhOne_f32 float32 = 1.0
	tanhTwo_f32 float32 = 2.0
)
