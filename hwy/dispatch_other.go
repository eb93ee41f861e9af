//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures always run the portable lane loops;
	// 4 lanes keeps the working set small on narrow targets.
	setScalarMode()
}
