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

// Package quantize converts tone-mapped shader intensities to 8-bit channel
// levels.
//
// A level is round(clamp(tanh(x), 0, 1) * 255) where x is the raw pre-tanh
// argument. Two strategies produce it:
//
//   - Exact evaluates tanh per lane with hwy/contrib/math.
//   - Approx looks x up in an immutable Table sampled over [0, 5] and
//     interpolates linearly between neighbouring entries.
//
// For every input the two strategies differ by at most 2 levels when the
// table has at least MinTableSize entries. Arguments below zero map to
// level 0 under both strategies, since tanh is negative there. NaN maps to 0.
//
// Example:
//
//	q, err := quantize.New(quantize.Approx, quantize.DefaultTableSize)
//	if err != nil {
//	    return err
//	}
//	var levels [8]uint8
//	quantize.QuantizeGroup(q, toneArgs, levels[:])
package quantize
