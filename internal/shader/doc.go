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

// Package shader evaluates a closed-form procedural coloring function over
// a framebuffer, one lane group of pixels at a time.
//
// Per pixel, with I the pixel coordinate (row 0 at the bottom) and r the
// resolution:
//
//	p = (2*I - r) / r.y
//	z = envelope(dot(p, p))
//	f = p * z
//	for i in 1..8:
//	    O += (sin(f) + 1).xyyx * |f.x - f.y| * damping
//	    f += cos(f.yx*i + phase(i) + t) / i + 0.7
//	color = quantize(tone(z, p, O))
//
// A Variant picks the envelope, phase, damping and tone forms. Kernel[G]
// evaluates one lane group; Renderer spreads rows over a worker pool.
package shader
