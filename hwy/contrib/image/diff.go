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

package image

import "fmt"

// DiffStats summarizes per-channel level differences between two images.
type DiffStats struct {
	Max       int     // largest absolute channel difference
	Mean      float64 // mean absolute channel difference
	Over      int     // pixels with any channel differing by more than the tolerance
	Pixels    int     // pixels compared
	Identical bool
}

// Diff compares two framebuffers of the same size. tol is the per-channel
// difference a pixel may have before it counts toward Over.
func Diff(a, b *Framebuffer, tol int) (DiffStats, error) {
	if !SameSize(a, b) {
		return DiffStats{}, fmt.Errorf("%w: size %dx%d vs %dx%d",
			ErrFormat, a.width, a.height, b.width, b.height)
	}
	stats := DiffStats{Pixels: a.width * a.height}
	var sum int64
	for i := 0; i+2 < len(a.pix); i += Channels {
		over := false
		for c := 0; c < Channels; c++ {
			d := int(a.pix[i+c]) - int(b.pix[i+c])
			if d < 0 {
				d = -d
			}
			sum += int64(d)
			stats.Max = max(stats.Max, d)
			if d > tol {
				over = true
			}
		}
		if over {
			stats.Over++
		}
	}
	if n := len(a.pix); n > 0 {
		stats.Mean = float64(sum) / float64(n)
	}
	stats.Identical = stats.Max == 0
	return stats, nil
}
