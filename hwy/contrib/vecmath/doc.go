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

// Package vecmath provides small shading-language style vectors whose
// components are lane groups.
//
// A Vec2[hwy.F32x8] holds eight 2-component vectors, one per lane, stored as
// two lane groups (all x components, then all y components). Every operation
// is component-wise and lane-wise, so lanes never mix:
//
//	p := vecmath.NewVec2(x, y)
//	d := p.Dot(p)                  // one dot product per lane
//	f := p.Scale(z)                // per-lane scale
//	o := f.Sin().XYYX()            // swizzle into a Vec4
//
// Values are passed and returned by copy; nothing in this package allocates.
//
// Transcendentals come from hwy/contrib/math and share its accuracy.
package vecmath
