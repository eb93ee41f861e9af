package shader

import stdmath "math"

// referenceTone evaluates the shader for one pixel in float64 with the
// standard library, as an independent check on the lane-group kernel.
func referenceTone(v Variant, width, height, x, y int, t float64) [3]float64 {
	rx, ry := float64(width), float64(height)
	p0 := (2*float64(x) - rx) / ry
	p1 := (2*float64(height-y) - ry) / ry

	dist := stdmath.Abs(0.7 - (p0*p0 + p1*p1))
	z := 4 - 4*dist
	if v.Envelope == EnvelopeScaled {
		z = 5 * (1 - dist)
	}

	f0, f1 := p0*z, p1*z
	var o [3]float64
	for i := 1; i <= Iterations; i++ {
		fi := float64(i)
		w := stdmath.Abs(f0-f1) * float64(v.Damping)
		s0, s1 := stdmath.Sin(f0)+1, stdmath.Sin(f1)+1
		o[0] += s0 * w
		o[1] += s1 * w
		o[2] += s1 * w

		ph0, ph1 := 0.0, fi
		if v.Phase == PhaseScalar {
			ph0 = fi
		}
		a0 := f1*fi + ph0 + t
		a1 := f0*fi + ph1 + t
		f0 += stdmath.Cos(a0)/fi + 0.7
		f1 += stdmath.Cos(a1)/fi + 0.7
	}

	var tone [3]float64
	if v.Tone == ToneSeparable {
		coeff := [3]float64{1, -1, -2}
		for c := range tone {
			tone[c] = stdmath.Exp(p1*coeff[c]) * stdmath.Exp(-4*z) / o[c]
		}
		return tone
	}
	coeff := [3]float64{-1, 1, 2}
	for c := range tone {
		tone[c] = 7 * stdmath.Exp(z-4-p1*coeff[c]) / o[c]
	}
	return tone
}

// referenceLevel is the exact quantizer in float64.
func referenceLevel(x float64) uint8 {
	v := stdmath.Tanh(x)
	if !(v > 0) {
		return 0
	}
	return uint8(stdmath.RoundToEven(stdmath.Min(v, 1) * 255))
}

func referencePixel(v Variant, width, height, x, y int, t float64) [3]uint8 {
	tone := referenceTone(v, width, height, x, y, t)
	return [3]uint8{referenceLevel(tone[0]), referenceLevel(tone[1]), referenceLevel(tone[2])}
}

func levelDistance(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
