// Package simd provides a portable, lane-width-generic vector layer used by
// the ufunc inner loops.
//
// It follows the Highway design philosophy: code is written once against
// Vec[T]/Mask[T] and the current register width, and adapts to whatever the
// host CPU offers. The implementations in this package are the portable
// (pure Go) renditions; architecture-specific builds may substitute wider
// registers by raising the dispatch width (see dispatch.go).
//
// Basic usage:
//
//	a := simd.Load(x)
//	b := simd.Load(y)
//	m := simd.Lt(a, b)     // per-lane a < b
//	simd.Store(simd.And(simd.MaskToVec(simd.Mask8(m)), simd.Set[uint8](1)), out)
package simd

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every type that can occupy a vector lane.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector of lanes of type T. The number of lanes is
// CurrentWidth()/sizeof(T).
//
// Vec values should not be constructed directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes held by this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation. Intended for tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is the per-lane boolean result of a vector comparison. A true lane
// corresponds to an all-ones lane in hardware mask registers; MaskToVec
// materializes that encoding.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes covered by this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane of the mask is set.
func (m Mask[T]) AllTrue() bool {
	for _, b := range m.bits {
		if !b {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane of the mask is set.
func (m Mask[T]) AnyTrue() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// GetBit reports whether lane i is set.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
