//go:build !amd64 && !arm64

package simd

func init() {
	// No SIMD support wired for this architecture; the portable path still
	// uses 16-byte vectors for consistent unrolling.
	currentLevel = LevelScalar
	currentWidth = 16
}
