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
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TailPolicy,EnvelopeForm,PhaseForm,ToneForm -linecomment -output=enum_string.go

// EnvelopeForm selects the radial envelope z computed from d = dot(p, p).
type EnvelopeForm int

const (
	EnvelopeShifted EnvelopeForm = iota // shifted
	EnvelopeScaled                      // scaled
)

// PhaseForm selects the phase added to the swizzled flow vector in
// iteration i.
type PhaseForm int

const (
	PhaseOffset PhaseForm = iota // offset
	PhaseScalar                  // scalar
)

// ToneForm selects how the accumulator becomes the pre-tanh tone argument.
type ToneForm int

const (
	ToneVec4      ToneForm = iota // vec4
	ToneSeparable                 // separable
)

// Variant is one parameterization of the kernel.
type Variant struct {
	Name string

	// Channels is the accumulator width, 3 or 4. The fourth channel never
	// reaches the framebuffer.
	Channels int

	// Envelope:
	//   EnvelopeShifted  z = 4 - 4*|0.7 - d|
	//   EnvelopeScaled   z = 5*(1 - |0.7 - d|)
	Envelope EnvelopeForm

	// Phase in iteration i:
	//   PhaseOffset  (0, i)
	//   PhaseScalar  (i, i)
	Phase PhaseForm

	// Damping scales every accumulation step.
	Damping float32

	// Tone argument per channel c:
	//   ToneVec4       7*exp(z - 4 - p.y*(-1, 1, 2, 0)_c) / O_c
	//   ToneSeparable  exp(p.y*(1, -1, -2)_c) * exp(-4*z) / O_c
	Tone ToneForm
}

var (
	// Classic is the four-channel kernel.
	Classic = Variant{
		Name:     "classic",
		Channels: 4,
		Envelope: EnvelopeShifted,
		Phase:    PhaseOffset,
		Damping:  1,
		Tone:     ToneVec4,
	}

	// Separable is the reduced three-channel kernel.
	Separable = Variant{
		Name:     "separable",
		Channels: 3,
		Envelope: EnvelopeScaled,
		Phase:    PhaseScalar,
		Damping:  0.5,
		Tone:     ToneSeparable,
	}
)

// Variants lists the built-in variants.
func Variants() []Variant {
	return []Variant{Classic, Separable}
}

// LookupVariant finds a built-in variant by name, ignoring case.
func LookupVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, name)
}
