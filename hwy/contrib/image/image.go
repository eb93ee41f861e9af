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

import (
	stdimage "image"
	"image/color"
)

// Channels is the number of bytes per pixel.
const Channels = 3

// Framebuffer is an RGB8 image with interleaved channels and no row padding.
type Framebuffer struct {
	pix    []byte
	width  int
	height int
	stride int // bytes per row
}

// NewFramebuffer creates a zeroed framebuffer with the specified dimensions.
// Non-positive dimensions yield an empty 0x0 framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		return &Framebuffer{}
	}
	stride := width * Channels
	return &Framebuffer{
		pix:    make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the image width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the image height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Stride returns the number of bytes per row.
func (fb *Framebuffer) Stride() int {
	return fb.stride
}

// Pix returns the whole backing buffer.
func (fb *Framebuffer) Pix() []byte {
	return fb.pix
}

// Row returns a mutable slice for the specified row, or nil when y is out
// of range.
func (fb *Framebuffer) Row(y int) []byte {
	if y < 0 || y >= fb.height {
		return nil
	}
	start := y * fb.stride
	return fb.pix[start : start+fb.stride : start+fb.stride]
}

// At returns the channels of pixel (x, y). Out-of-range pixels read as black.
func (fb *Framebuffer) At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0, 0, 0
	}
	i := y*fb.stride + x*Channels
	return fb.pix[i], fb.pix[i+1], fb.pix[i+2]
}

// Set writes pixel (x, y). Out-of-range writes are ignored.
func (fb *Framebuffer) Set(x, y int, r, g, b uint8) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	i := y*fb.stride + x*Channels
	fb.pix[i], fb.pix[i+1], fb.pix[i+2] = r, g, b
}

// SameSize returns true if both framebuffers have the same dimensions.
func SameSize(a, b *Framebuffer) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the framebuffer.
func (fb *Framebuffer) Clone() *Framebuffer {
	clone := *fb
	clone.pix = append([]byte(nil), fb.pix...)
	return &clone
}

// Clear sets all bytes to zero.
func (fb *Framebuffer) Clear() {
	clear(fb.pix)
}

// Fill sets every pixel to (r, g, b).
func (fb *Framebuffer) Fill(r, g, b uint8) {
	for i := 0; i+2 < len(fb.pix); i += Channels {
		fb.pix[i], fb.pix[i+1], fb.pix[i+2] = r, g, b
	}
}

// ToRGBA converts the framebuffer to an opaque *image.RGBA.
func (fb *Framebuffer) ToRGBA() *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		src := fb.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+fb.width*4]
		for x := 0; x < fb.width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// FromImage copies any image into a new framebuffer, dropping alpha.
func FromImage(img stdimage.Image) *Framebuffer {
	b := img.Bounds()
	fb := NewFramebuffer(b.Dx(), b.Dy())
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			fb.Set(x, y, c.R, c.G, c.B)
		}
	}
	return fb
}
