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

// Package image provides the RGB8 framebuffer a shader renders into and the
// encoders that write it to disk.
//
// A Framebuffer is a fixed width*height*3 byte buffer, row-major, with R, G
// and B interleaved. It is allocated once and overwritten in place every
// frame; nothing in this package resizes it.
//
// # Usage Example
//
//	fb := image.NewFramebuffer(800, 600)
//	for y := 0; y < fb.Height(); y++ {
//	    row := fb.Row(y) // 800*3 bytes
//	    // fill row
//	}
//	err := image.WriteFile("out.ppm", fb, image.FormatPPM)
//
// # Formats
//
// PPM (binary P6) is written with the single header line "P6 <w> <h> 255"
// and can be read back with DecodePPM. BMP and TIFF go through an
// *image.RGBA view using golang.org/x/image.
//
// # Comparison
//
// Diff reports per-channel level differences between two framebuffers of
// the same size:
//
//	stats, err := image.Diff(exact, approx, 2)
//	fmt.Println(stats.Max, stats.Mean, stats.Over)
package image
