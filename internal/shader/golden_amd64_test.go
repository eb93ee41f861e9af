//go:build amd64 && !amd64.v3

package shader

// goldenPlatform reports whether float32 expressions compile to separately
// rounded multiplies and adds, which is how testdata/classic_800x600.ppm was
// captured (amd64, GOAMD64 v1/v2).
const goldenPlatform = true
