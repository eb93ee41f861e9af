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

// Package contrib groups the lane-parallel building blocks layered on top
// of package hwy.
//
// # Subpackages
//
//   - math: Exp, Sin, Cos, SinCos and Tanh over lane groups
//   - vecmath: two and four component vectors whose components are lane groups
//   - quantize: tanh-to-byte quantization, exact or through a lookup table
//   - image: packed RGB framebuffers, PPM encoding and BMP/TIFF export
//   - workerpool: persistent goroutine pool for row-parallel work
//
// # Math Functions (hwy/contrib/math)
//
//	import "github.com/ajroetker/hwyshade/hwy/contrib/math"
//
//	x := hwy.Iota[hwy.F32x8](0)
//	sinX, cosX := math.SinCos(x)
//	t := math.Tanh(hwy.Sub(sinX, cosX))
//
// # Vectors (hwy/contrib/vecmath)
//
// Every component of a vecmath vector holds one value per lane, so an
// expression over Vec2[hwy.F32x8] evaluates eight pixels at once:
//
//	p := vecmath.NewVec2(px, py)
//	d := p.Dot(p)
//
// # Quantization (hwy/contrib/quantize)
//
//	q, err := quantize.New(quantize.Approx, quantize.DefaultTableSize)
//	quantize.QuantizeGroup(q, x, out[:8])
//
// See subpackage documentation for detailed API information.
package contrib
