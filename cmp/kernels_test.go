package cmp

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/numgo/ufunc/dispatch"
	"github.com/numgo/ufunc/simd"
)

// refElem is the reference semantics every internal path must agree with:
// independent scalar evaluation of the operator on one logical pair.
func refElem[T simd.Lanes](k Kind, a, b T) byte {
	var r bool
	switch k {
	case KindEqual:
		r = a == b
	case KindNotEqual:
		r = a != b
	case KindLess:
		r = a < b
	case KindLessEqual:
		r = a <= b
	case KindGreater:
		r = b < a
	case KindGreaterEqual:
		r = b <= a
	}
	if r {
		return 1
	}
	return 0
}

func refSlices[T simd.Lanes](k Kind, a, b []T) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = refElem(k, a[i], b[i])
	}
	return out
}

func elemOperand[T simd.Lanes](s []T, stepElems int) dispatch.Operand {
	if len(s) == 0 {
		return dispatch.Operand{}
	}
	var zero T
	return dispatch.Operand{
		Ptr:    unsafe.Pointer(&s[0]),
		Stride: stepElems * int(unsafe.Sizeof(zero)),
	}
}

// reversedOperand walks s backward from its last element.
func reversedOperand[T simd.Lanes](s []T) dispatch.Operand {
	if len(s) == 0 {
		return dispatch.Operand{}
	}
	var zero T
	return dispatch.Operand{
		Ptr:    unsafe.Pointer(&s[len(s)-1]),
		Stride: -int(unsafe.Sizeof(zero)),
	}
}

func reverse[T simd.Lanes](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

// testSizes exercises the scalar tail: empty, single element, one less than,
// exactly, and one more than a full byte vector, plus a few full vectors.
func testSizes() []int {
	vstep := simd.MaxLanes[uint8]()
	return []int{0, 1, vstep - 1, vstep, vstep + 1, 3*vstep + 3}
}

func randomPair[T simd.Lanes](rng *rand.Rand, n int, gen func(*rand.Rand) T) (a, b []T) {
	a = make([]T, n)
	b = make([]T, n)
	for i := range a {
		a[i] = gen(rng)
		// force frequent equality so equal/not_equal have both outcomes
		if rng.Intn(3) == 0 {
			b[i] = a[i]
		} else {
			b[i] = gen(rng)
		}
	}
	return a, b
}

func checkPaths[T simd.Lanes](t *testing.T, gen func(*rand.Rand) T) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	typ := TypeFor[T]()

	for _, k := range Kinds {
		for _, n := range testSizes() {
			a, b := randomPair(rng, n, gen)
			want := refSlices(k, a, b)

			t.Run(fmt.Sprintf("%s/%s/n=%d", typ, k, n), func(t *testing.T) {
				// contiguous / contiguous
				dst := make([]byte, n)
				Compare(k, typ, elemOperand(a, 1), elemOperand(b, 1), outOperand(dst), n)
				require.Equal(t, want, dst, "contiguous path")

				// scalar broadcast, first operand
				if n > 0 {
					dst = make([]byte, n)
					Compare(k, typ, elemOperand(a[:1], 0), elemOperand(b, 1), outOperand(dst), n)
					sa := make([]T, n)
					for i := range sa {
						sa[i] = a[0]
					}
					require.Equal(t, refSlices(k, sa, b), dst, "scalar1 path")

					// scalar broadcast, second operand
					dst = make([]byte, n)
					Compare(k, typ, elemOperand(a, 1), elemOperand(b[:1], 0), outOperand(dst), n)
					sb := make([]T, n)
					for i := range sb {
						sb[i] = b[0]
					}
					require.Equal(t, refSlices(k, a, sb), dst, "scalar2 path")
				}

				// both strided (every second element)
				wide, wideB := randomPair(rng, 2*n, gen)
				dst = make([]byte, n)
				Compare(k, typ, elemOperand(wide, 2), elemOperand(wideB, 2), outOperand(dst), n)
				ga := make([]T, n)
				gb := make([]T, n)
				for i := 0; i < n; i++ {
					ga[i] = wide[2*i]
					gb[i] = wideB[2*i]
				}
				require.Equal(t, refSlices(k, ga, gb), dst, "strided path")

				// negative stride on the first input
				dst = make([]byte, n)
				Compare(k, typ, reversedOperand(a), elemOperand(b, 1), outOperand(dst), n)
				require.Equal(t, refSlices(k, reverse(a), b), dst, "negative stride path")
			})
		}
	}
}

func TestPathEquivalenceInt8(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) int8 { return int8(r.Intn(256)) })
}

func TestPathEquivalenceUint8(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) uint8 { return uint8(r.Intn(256)) })
}

func TestPathEquivalenceInt16(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) int16 { return int16(r.Intn(1 << 16)) })
}

func TestPathEquivalenceUint16(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) uint16 { return uint16(r.Intn(1 << 16)) })
}

func TestPathEquivalenceInt32(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) int32 { return int32(r.Uint32()) })
}

func TestPathEquivalenceUint32(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) uint32 { return r.Uint32() % 16 })
}

func TestPathEquivalenceInt64(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) int64 { return int64(r.Uint64()) })
}

func TestPathEquivalenceUint64(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) uint64 { return r.Uint64() % 16 })
}

func TestPathEquivalencePlatformInt(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) int { return r.Intn(64) - 32 })
}

func TestPathEquivalencePlatformUint(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) uint { return uint(r.Intn(64)) })
}

func TestPathEquivalenceFloat32(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) float32 {
		if r.Intn(8) == 0 {
			return float32(math.NaN())
		}
		return r.Float32() * 4
	})
}

func TestPathEquivalenceFloat64(t *testing.T) {
	checkPaths(t, func(r *rand.Rand) float64 {
		if r.Intn(8) == 0 {
			return math.NaN()
		}
		return r.Float64() * 4
	})
}

func normBool(v byte) byte {
	if v != 0 {
		return 1
	}
	return 0
}

// refBoolSlices evaluates a boolean-element operator pair by pair: inputs
// normalize to 0/1, then compare as unsigned bytes (false < true).
func refBoolSlices(k Kind, a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = refElem(k, normBool(a[i]), normBool(b[i]))
	}
	return out
}

// TestBoolPathEquivalence drives the boolean mask kernels through the same
// layout matrix as the numeric types, with counts past the vector width so
// the vectorized bodies run, and with non-normalized input bytes.
func TestBoolPathEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	raw := func() byte {
		switch rng.Intn(4) {
		case 0:
			return 0
		case 1:
			return 1
		case 2:
			return 2
		default:
			return byte(rng.Intn(256))
		}
	}
	randBools := func(n int) []byte {
		s := make([]byte, n)
		for i := range s {
			s[i] = raw()
		}
		return s
	}

	sizes := append(testSizes(), 4*simd.MaxLanes[uint8]()+3)
	for _, k := range Kinds {
		for _, n := range sizes {
			a := randBools(n)
			b := randBools(n)
			want := refBoolSlices(k, a, b)

			t.Run(fmt.Sprintf("%s/n=%d", k, n), func(t *testing.T) {
				dst := make([]byte, n)
				Compare(k, TypeBool, elemOperand(a, 1), elemOperand(b, 1), outOperand(dst), n)
				require.Equal(t, want, dst, "contiguous path")

				if n > 0 {
					dst = make([]byte, n)
					Compare(k, TypeBool, elemOperand(a[:1], 0), elemOperand(b, 1), outOperand(dst), n)
					sa := make([]byte, n)
					for i := range sa {
						sa[i] = a[0]
					}
					require.Equal(t, refBoolSlices(k, sa, b), dst, "scalar1 path")

					dst = make([]byte, n)
					Compare(k, TypeBool, elemOperand(a, 1), elemOperand(b[:1], 0), outOperand(dst), n)
					sb := make([]byte, n)
					for i := range sb {
						sb[i] = b[0]
					}
					require.Equal(t, refBoolSlices(k, a, sb), dst, "scalar2 path")
				}

				// every second element of twice-as-long buffers
				wa := randBools(2 * n)
				wb := randBools(2 * n)
				dst = make([]byte, n)
				Compare(k, TypeBool, elemOperand(wa, 2), elemOperand(wb, 2), outOperand(dst), n)
				ga := make([]byte, n)
				gb := make([]byte, n)
				for i := 0; i < n; i++ {
					ga[i] = wa[2*i]
					gb[i] = wb[2*i]
				}
				require.Equal(t, refBoolSlices(k, ga, gb), dst, "strided path")

				dst = make([]byte, n)
				Compare(k, TypeBool, reversedOperand(a), elemOperand(b, 1), outOperand(dst), n)
				require.Equal(t, refBoolSlices(k, reverse(a), b), dst, "negative stride path")

				// output aliases the first input, forcing the scalar loop
				buf := make([]byte, n)
				copy(buf, a)
				Compare(k, TypeBool, elemOperand(buf, 1), elemOperand(b, 1), outOperand(buf), n)
				require.Equal(t, want, buf, "aliased output path")
			})
		}
	}
}

// TestOverlapFallback aliases the output with the first input; the engine
// must detect the hazard, take the scalar path, and still produce the result
// of the non-aliased reference computation.
func TestOverlapFallback(t *testing.T) {
	vstep := simd.MaxLanes[uint8]()
	n := 3*vstep + 5
	rng := rand.New(rand.NewSource(7))

	for _, k := range Kinds {
		buf := make([]uint8, n)
		other := make([]uint8, n)
		for i := range buf {
			buf[i] = uint8(rng.Intn(4))
			other[i] = uint8(rng.Intn(4))
		}
		want := refSlices(k, buf, other)

		// output is the same buffer as the first input, identical stride
		Compare(k, TypeUByte, elemOperand(buf, 1), elemOperand(other, 1),
			dispatch.Operand{Ptr: unsafe.Pointer(&buf[0]), Stride: 1}, n)
		require.Equal(t, want, buf, "operator %s", k)
	}
}

// TestOverlapFallbackWide aliases a byte output with an int32 input region.
func TestOverlapFallbackWide(t *testing.T) {
	n := 16
	backing := make([]int32, n)
	for i := range backing {
		backing[i] = int32(i % 5)
	}
	other := make([]int32, n)
	for i := range other {
		other[i] = 2
	}
	want := refSlices(KindLess, backing, other)

	out := dispatch.Operand{Ptr: unsafe.Pointer(&backing[0]), Stride: 1}
	Compare(KindLess, TypeInt, elemOperand(backing, 1), elemOperand(other, 1), out, n)

	got := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), n)
	require.Equal(t, want, got)
}

// TestZeroCount verifies that n == 0 performs no writes.
func TestZeroCount(t *testing.T) {
	dst := []byte{0xAA, 0xBB}
	a := []int32{1}
	b := []int32{2}
	Compare(KindLess, TypeInt, elemOperand(a, 1), elemOperand(b, 1), outOperand(dst), 0)
	require.Equal(t, []byte{0xAA, 0xBB}, dst)
}
