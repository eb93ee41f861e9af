package hwy

import (
	"math"
	"testing"
)

func TestNumLanes(t *testing.T) {
	if got := NumLanes[F32x4](); got != 4 {
		t.Errorf("NumLanes[F32x4]() = %d, want 4", got)
	}
	if got := NumLanes[F32x8](); got != 8 {
		t.Errorf("NumLanes[F32x8]() = %d, want 8", got)
	}
}

func TestSet(t *testing.T) {
	v := Set[F32x8](42.0)
	for i := range v {
		if v[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v[i], 42.0)
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[F32x4](16)
	want := F32x4{16, 17, 18, 19}
	if v != want {
		t.Errorf("Iota(16) = %v, want %v", v, want)
	}
}

func TestLoadStore(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load[F32x8](data)
	out := make([]float32, 8)
	Store(v, out)
	for i := range data {
		if out[i] != data[i] {
			t.Errorf("Load/Store: lane %d: got %v, want %v", i, out[i], data[i])
		}
	}

	// Short source leaves the remaining lanes zero.
	short := Load[F32x8](data[:3])
	for i := 3; i < 8; i++ {
		if short[i] != 0 {
			t.Errorf("Load short: lane %d: got %v, want 0", i, short[i])
		}
	}

	// Short destination only receives the lanes that fit.
	dst := make([]float32, 2)
	Store(v, dst)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Store short: got %v, want [1 2]", dst)
	}
}

func TestArithmetic(t *testing.T) {
	a := F32x4{1, -2, 3, -4}
	b := F32x4{10, 20, 30, 40}

	tests := []struct {
		name string
		got  F32x4
		want F32x4
	}{
		{"Add", Add(a, b), F32x4{11, 18, 33, 36}},
		{"Sub", Sub(a, b), F32x4{-9, -22, -27, -44}},
		{"Mul", Mul(a, b), F32x4{10, -40, 90, -160}},
		{"Div", Div(b, F32x4{2, 4, 5, 8}), F32x4{5, 5, 6, 5}},
		{"MulAdd", MulAdd(a, b, Set[F32x4](1)), F32x4{11, -39, 91, -159}},
		{"Neg", Neg(a), F32x4{-1, 2, -3, 4}},
		{"Abs", Abs(a), F32x4{1, 2, 3, 4}},
		{"Min", Min(a, Set[F32x4](0)), F32x4{0, -2, 0, -4}},
		{"Max", Max(a, Set[F32x4](0)), F32x4{1, 0, 3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestOperandsAreNotMutated(t *testing.T) {
	a := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	orig := a
	_ = Add(a, a)
	_ = Neg(a)
	if a != orig {
		t.Errorf("operand changed: got %v, want %v", a, orig)
	}
}

func TestAbsNegativeZero(t *testing.T) {
	v := Abs(Set[F32x4](float32(math.Copysign(0, -1))))
	for i := range v {
		if math.Signbit(float64(v[i])) {
			t.Errorf("Abs(-0): lane %d has sign bit set", i)
		}
	}
}

func TestClamp(t *testing.T) {
	nan := float32(math.NaN())
	v := Clamp(F32x4{-1, 0.5, 2, nan}, 0, 1)
	want := F32x4{0, 0.5, 1, 0}
	if v != want {
		t.Errorf("Clamp = %v, want %v", v, want)
	}
}

func TestRoundToEven(t *testing.T) {
	v := RoundToEven(F32x4{0.5, 1.5, 2.5, -0.5})
	want := F32x4{0, 2, 2, 0}
	for i := range v {
		if v[i] != want[i] {
			t.Errorf("RoundToEven: lane %d: got %v, want %v", i, v[i], want[i])
		}
	}
}

func TestLdexp(t *testing.T) {
	tests := []struct {
		v, k float32
	}{
		{1, 0},
		{1.5, 3},
		{1, -10},
		{1, 127},
		{1, -140},
		{0.75, 200},
	}
	for _, tt := range tests {
		got := Ldexp(Set[F32x4](tt.v), Set[F32x4](tt.k))[0]
		want := float32(math.Ldexp(float64(tt.v), int(tt.k)))
		if got != want {
			t.Errorf("Ldexp(%v, %v) = %v, want %v", tt.v, tt.k, got, want)
		}
	}
}

func TestReductions(t *testing.T) {
	v := F32x8{3, -1, 4, 1, -5, 9, 2, 6}
	if got := ReduceSum(v); got != 19 {
		t.Errorf("ReduceSum = %v, want 19", got)
	}
	if got := ReduceMin(v); got != -5 {
		t.Errorf("ReduceMin = %v, want -5", got)
	}
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax = %v, want 9", got)
	}
}

func TestComparisonsAndMerge(t *testing.T) {
	a := F32x4{1, 5, 3, 7}
	b := Set[F32x4](4)

	gt := Greater(a, b)
	if gt != Mask(0b1010) {
		t.Errorf("Greater = %04b, want 1010", gt)
	}
	lt := Less(a, b)
	if lt != Mask(0b0101) {
		t.Errorf("Less = %04b, want 0101", lt)
	}

	merged := Merge(Set[F32x4](-1), a, gt)
	want := F32x4{1, -1, 3, -1}
	if merged != want {
		t.Errorf("Merge = %v, want %v", merged, want)
	}
}

func TestIsNaNIsInf(t *testing.T) {
	inf := float32(math.Inf(1))
	v := F32x4{float32(math.NaN()), inf, -inf, 1}
	if m := IsNaN(v); m != Mask(0b0001) {
		t.Errorf("IsNaN = %04b, want 0001", m)
	}
	if m := IsInf(v, 0); m != Mask(0b0110) {
		t.Errorf("IsInf(0) = %04b, want 0110", m)
	}
	if m := IsInf(v, 1); m != Mask(0b0010) {
		t.Errorf("IsInf(+1) = %04b, want 0010", m)
	}
}

func TestMask(t *testing.T) {
	m := FirstN(3)
	if m.CountTrue() != 3 {
		t.Errorf("FirstN(3).CountTrue() = %d, want 3", m.CountTrue())
	}
	if !m.GetBit(2) || m.GetBit(3) {
		t.Errorf("FirstN(3) bits wrong: %08b", m)
	}
	if !m.AllTrue(3) || m.AllTrue(4) {
		t.Errorf("FirstN(3).AllTrue mismatch: %08b", m)
	}
	if FirstN(0).AnyTrue() {
		t.Error("FirstN(0) should have no active lanes")
	}
	if FirstN(20) != Mask(0xFF) {
		t.Errorf("FirstN(20) = %08b, want all lanes", FirstN(20))
	}
}

func TestPreferredLanes(t *testing.T) {
	lanes := PreferredLanes()
	if lanes != 4 && lanes != 8 {
		t.Fatalf("PreferredLanes() = %d, want 4 or 8", lanes)
	}
	if CurrentWidth() >= 32 && lanes != 8 {
		t.Errorf("PreferredLanes() = %d with %d-byte registers, want 8", lanes, CurrentWidth())
	}
	if CurrentName() == "" {
		t.Error("CurrentName() is empty")
	}
}
