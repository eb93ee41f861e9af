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

package shader

import (
	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/hwy/contrib/math"
	"github.com/ajroetker/hwyshade/hwy/contrib/quantize"
	"github.com/ajroetker/hwyshade/hwy/contrib/vecmath"
)

// Iterations is the number of flow steps per pixel.
const Iterations = 8

// Envelope returns the radial envelope z for positions p.
// It depends on p only through dot(p, p).
func Envelope[G hwy.Group](p vecmath.Vec2[G], form EnvelopeForm) G {
	d := p.Dot(p)
	dist := hwy.Abs(hwy.Sub(hwy.Set[G](0.7), d))
	if form == EnvelopeScaled {
		return hwy.Mul(hwy.Set[G](5), hwy.Sub(hwy.Set[G](1), dist))
	}
	return hwy.Sub(hwy.Set[G](4), hwy.Mul(hwy.Set[G](4), dist))
}

// Kernel evaluates the shader for lane groups of type G.
// A Kernel is immutable and safe for concurrent use.
type Kernel[G hwy.Group] struct {
	width, height int
	resX, resY    float32
	variant       Variant
	quantizer     quantize.Quantizer
}

// NewKernel creates a kernel for a width x height image.
func NewKernel[G hwy.Group](width, height int, v Variant, q quantize.Quantizer) *Kernel[G] {
	return &Kernel[G]{
		width:     width,
		height:    height,
		resX:      float32(width),
		resY:      float32(height),
		variant:   v,
		quantizer: q,
	}
}

// Position returns the normalized, aspect-corrected positions of the lane
// group starting at column x0 of framebuffer row y.
func (k *Kernel[G]) Position(x0, y int) vecmath.Vec2[G] {
	pixel := vecmath.NewVec2(hwy.Iota[G](float32(x0)), hwy.Set[G](float32(k.height-y)))
	return pixel.Scale(hwy.Set[G](2)).
		Sub(vecmath.SplatVec2[G](k.resX, k.resY)).
		Div(hwy.Set[G](k.resY))
}

// ToneArgs returns the per-channel arguments that the quantizer maps
// through tanh, for the lane group starting at column x0 of row y.
func (k *Kernel[G]) ToneArgs(x0, y int, t float32) vecmath.Vec4[G] {
	v := &k.variant
	p := k.Position(x0, y)
	z := Envelope(p, v.Envelope)

	one := hwy.Set[G](1)
	damping := hwy.Set[G](v.Damping)
	flowBias := hwy.Set[G](0.7)
	tg := hwy.Set[G](t)

	var o vecmath.Vec4[G]
	f := p.Scale(z)
	for i := 1; i <= Iterations; i++ {
		fi := hwy.Set[G](float32(i))

		weight := hwy.Mul(hwy.Abs(hwy.Sub(f.X, f.Y)), damping)
		o = f.Sin().AddScalar(one).XYYX().MulAdd(weight, o)

		phase := vecmath.NewVec2(hwy.Zero[G](), fi)
		if v.Phase == PhaseScalar {
			phase.X = fi
		}
		arg := f.YX().Scale(fi).Add(phase).AddScalar(tg)
		f = f.Add(arg.Cos().Div(fi).AddScalar(flowBias))
	}
	if v.Channels == 3 {
		o.W = hwy.Zero[G]()
	}

	if v.Tone == ToneSeparable {
		falloff := math.Exp(hwy.Mul(hwy.Set[G](-4), z))
		return vecmath.NewVec4(
			hwy.Div(hwy.Mul(math.Exp(p.Y), falloff), o.X),
			hwy.Div(hwy.Mul(math.Exp(hwy.Neg(p.Y)), falloff), o.Y),
			hwy.Div(hwy.Mul(math.Exp(hwy.Mul(p.Y, hwy.Set[G](-2))), falloff), o.Z),
			hwy.Zero[G](),
		)
	}

	base := hwy.Sub(z, hwy.Set[G](4))
	gradient := vecmath.SplatVec4[G](-1, 1, 2, 0).Scale(p.Y)
	return vecmath.NewVec4(base, base, base, base).
		Sub(gradient).
		Exp().
		Scale(hwy.Set[G](7)).
		DivVec(o)
}

// EvalGroup renders the lane group starting at column x0 of row y into row,
// which holds the whole framebuffer row. It writes exactly lanes*3 bytes
// starting at x0*3.
func (k *Kernel[G]) EvalGroup(x0, y int, t float32, row []byte) {
	k.evalInto(x0, y, t, row[x0*image.Channels:])
}

// evalInto writes the lane group's pixels to dst starting at dst[0].
func (k *Kernel[G]) evalInto(x0, y int, t float32, dst []byte) {
	const lanes = hwy.MaxGroupLanes
	args := k.ToneArgs(x0, y, t)

	var levels [image.Channels][lanes]uint8
	n := hwy.NumLanes[G]()
	for c := 0; c < image.Channels; c++ {
		quantize.QuantizeGroup(k.quantizer, args.Component(c), levels[c][:n])
	}

	dst = dst[:n*image.Channels]
	for i := 0; i < n; i++ {
		dst[i*3+0] = levels[0][i]
		dst[i*3+1] = levels[1][i]
		dst[i*3+2] = levels[2][i]
	}
}
