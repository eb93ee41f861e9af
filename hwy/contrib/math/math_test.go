package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/hwyshade/hwy"
)

// sweep evaluates fn over [lo, hi] in lane groups of 8 and reports the
// largest error against ref, measured relative to max(1, |ref|).
func sweep(lo, hi float32, steps int, fn func(hwy.F32x8) hwy.F32x8, ref func(float64) float64) (maxErr float64, worst float32) {
	step := (hi - lo) / float32(steps)
	for i := 0; i < steps; i += 8 {
		x := hwy.MulAdd(hwy.Iota[hwy.F32x8](float32(i)), hwy.Set[hwy.F32x8](step), hwy.Set[hwy.F32x8](lo))
		got := fn(x)
		for j := range x {
			want := ref(float64(x[j]))
			err := stdmath.Abs(float64(got[j])-want) / stdmath.Max(1, stdmath.Abs(want))
			if err > maxErr {
				maxErr, worst = err, x[j]
			}
		}
	}
	return maxErr, worst
}

func TestExp(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float32
	}{
		{"small", -1, 1},
		{"shader range", -12, 6},
		{"wide", -80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxErr, worst := sweep(tt.lo, tt.hi, 4096, Exp[hwy.F32x8], stdmath.Exp)
			if maxErr > 2e-6 {
				t.Errorf("Exp relative error %g at x=%v, want <= 2e-6", maxErr, worst)
			}
		})
	}
}

func TestExpSpecialCases(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	nan := float32(stdmath.NaN())
	got := Exp(hwy.F32x8{0, 100, -100, inf, -inf, nan, 1, -1})

	if got[0] != 1 {
		t.Errorf("Exp(0) = %v, want 1", got[0])
	}
	if !stdmath.IsInf(float64(got[1]), 1) || !stdmath.IsInf(float64(got[3]), 1) {
		t.Errorf("Exp overflow = %v, %v, want +Inf", got[1], got[3])
	}
	if got[2] != 0 || got[4] != 0 {
		t.Errorf("Exp underflow = %v, %v, want 0", got[2], got[4])
	}
	if !stdmath.IsNaN(float64(got[5])) {
		t.Errorf("Exp(NaN) = %v, want NaN", got[5])
	}
}

func TestSinCos(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float32
	}{
		{"quarter turn", -0.8, 0.8},
		{"few turns", -10, 10},
		{"flow range", -300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if e, x := sweep(tt.lo, tt.hi, 8192, Sin[hwy.F32x8], stdmath.Sin); e > 5e-6 {
				t.Errorf("Sin error %g at x=%v, want <= 5e-6", e, x)
			}
			if e, x := sweep(tt.lo, tt.hi, 8192, Cos[hwy.F32x8], stdmath.Cos); e > 5e-6 {
				t.Errorf("Cos error %g at x=%v, want <= 5e-6", e, x)
			}
		})
	}
}

func TestSinCosMatchesSeparateCalls(t *testing.T) {
	x := hwy.F32x4{-3.5, 0.25, 1.75, 42}
	s, c := SinCos(x)
	if s != Sin(x) {
		t.Errorf("SinCos sin = %v, want %v", s, Sin(x))
	}
	if c != Cos(x) {
		t.Errorf("SinCos cos = %v, want %v", c, Cos(x))
	}
}

func TestSinOddSymmetry(t *testing.T) {
	x := hwy.F32x8{0.1, 0.5, 1, 2, 3, 5, 8, 13}
	pos := Sin(x)
	neg := Sin(hwy.Neg(x))
	for i := range x {
		if pos[i] != -neg[i] {
			t.Errorf("Sin(-%v) = %v, want %v", x[i], neg[i], -pos[i])
		}
	}
}

func TestTanh(t *testing.T) {
	if e, x := sweep(-6, 6, 4096, Tanh[hwy.F32x8], stdmath.Tanh); e > 5e-6 {
		t.Errorf("Tanh error %g at x=%v, want <= 5e-6", e, x)
	}
}

func TestTanhSaturation(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	got := Tanh(hwy.F32x8{50, 1e6, inf, -50, -1e6, -inf, 0, float32(stdmath.NaN())})

	for i := 0; i < 3; i++ {
		if got[i] != 1 {
			t.Errorf("Tanh(large positive) lane %d = %v, want 1", i, got[i])
		}
	}
	for i := 3; i < 6; i++ {
		if got[i] != -1 {
			t.Errorf("Tanh(large negative) lane %d = %v, want -1", i, got[i])
		}
	}
	if got[6] != 0 {
		t.Errorf("Tanh(0) = %v, want 0", got[6])
	}
	if !stdmath.IsNaN(float64(got[7])) {
		t.Errorf("Tanh(NaN) = %v, want NaN", got[7])
	}
}

func TestTanhScalarMatchesVector(t *testing.T) {
	for _, x := range []float32{-2, -0.3, 0, 0.7, 1.9, 4.99} {
		want := Tanh(hwy.Set[hwy.F32x8](x))[0]
		if got := TanhScalar(x); got != want {
			t.Errorf("TanhScalar(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestWidthsAgree(t *testing.T) {
	x8 := hwy.F32x8{-7.5, -1, 0, 0.3, 2, 9, 33, 120}
	var x4a, x4b hwy.F32x4
	copy(x4a[:], x8[:4])
	copy(x4b[:], x8[4:])

	for _, fn := range []struct {
		name string
		f8   func(hwy.F32x8) hwy.F32x8
		f4   func(hwy.F32x4) hwy.F32x4
	}{
		{"Exp", Exp[hwy.F32x8], Exp[hwy.F32x4]},
		{"Sin", Sin[hwy.F32x8], Sin[hwy.F32x4]},
		{"Cos", Cos[hwy.F32x8], Cos[hwy.F32x4]},
		{"Tanh", Tanh[hwy.F32x8], Tanh[hwy.F32x4]},
	} {
		got8 := fn.f8(x8)
		lo, hi := fn.f4(x4a), fn.f4(x4b)
		for i := 0; i < 4; i++ {
			if got8[i] != lo[i] || got8[i+4] != hi[i] {
				t.Errorf("%s: 8-lane %v disagrees with 4-lane %v %v", fn.name, got8, lo, hi)
				break
			}
		}
	}
}

func BenchmarkExp(b *testing.B) {
	x := hwy.Iota[hwy.F32x8](-4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x = hwy.Mul(Exp(x), hwy.Set[hwy.F32x8](0.5))
	}
	_ = x
}

func BenchmarkSinCos(b *testing.B) {
	x := hwy.Iota[hwy.F32x8](0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, c := SinCos(x)
		x = hwy.Add(s, c)
	}
	_ = x
}
