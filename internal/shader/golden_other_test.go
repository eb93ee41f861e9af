//go:build !amd64 || amd64.v3

package shader

// goldenPlatform is false where the compiler fuses a*b+c into FMA
// instructions (arm64, ppc64, s390x, riscv64, amd64 v3+), which shifts
// some pixels by a level relative to the captured frame.
const goldenPlatform = false
