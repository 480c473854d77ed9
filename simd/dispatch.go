package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the SIMD instruction family the runtime has selected.
type Level int

const (
	// LevelScalar is the portable pure-Go path, always available.
	LevelScalar Level = iota

	// LevelSSE2 is the x86-64 baseline (128-bit).
	LevelSSE2

	// LevelAVX2 is 256-bit x86-64 SIMD.
	LevelAVX2

	// LevelAVX512 is 512-bit x86-64 SIMD.
	LevelAVX512

	// LevelNEON is ARM64 NEON/ASIMD (128-bit).
	LevelNEON

	// LevelSVE is the ARM64 Scalable Vector Extension.
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel and currentWidth are set by init() in dispatch_*.go.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the SIMD instruction family selected at startup.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes. Every Vec spans
// this many bytes, so a byte vector has CurrentWidth() lanes and an eight-byte
// vector has CurrentWidth()/8.
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv reports whether the UFUNC_NO_SIMD environment variable requests
// the scalar fallback regardless of CPU capability. Useful for testing.
func NoSimdEnv() bool {
	val := os.Getenv("UFUNC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes a Vec[T] holds at the current width.
func MaxLanes[T Lanes]() int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 0
	}
	return currentWidth / size
}
