package cmp

import (
	"math"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo/ufunc/dispatch"
	"github.com/numgo/ufunc/internal/floatstatus"
	"github.com/numgo/ufunc/simd"
)

func TestLessInt32(t *testing.T) {
	a := []int32{1, 2, 3, 4, 5}
	b := []int32{5, 4, 3, 2, 1}
	dst := make([]byte, 5)
	Less(a, b, dst)
	require.Equal(t, []byte{1, 1, 0, 0, 0}, dst)
}

func TestGreaterEqualScalarBroadcast(t *testing.T) {
	a := []float64{0.5, 3, 2.5, math.NaN()}
	dst := make([]byte, 4)
	CompareScalar(KindGreaterEqual, a, 2.5, dst)
	require.Equal(t, []byte{0, 1, 1, 0}, dst)

	dst = make([]byte, 4)
	ScalarCompare(KindGreaterEqual, 2.5, a, dst)
	require.Equal(t, []byte{1, 0, 1, 0}, dst)
}

func TestBoolNotEqual(t *testing.T) {
	a := []bool{true, true, false, false, true}
	b := []bool{true, false, true, false, false}
	dst := make([]byte, 5)
	CompareBools(KindNotEqual, a, b, dst)
	require.Equal(t, []byte{0, 1, 1, 0, 1}, dst)
}

func TestBoolOrdering(t *testing.T) {
	// false < true
	a := []bool{false, false, true, true}
	b := []bool{false, true, false, true}

	dst := make([]byte, 4)
	CompareBools(KindLess, a, b, dst)
	assert.Equal(t, []byte{0, 1, 0, 0}, dst)

	CompareBools(KindLessEqual, a, b, dst)
	assert.Equal(t, []byte{1, 1, 0, 1}, dst)

	CompareBools(KindGreater, a, b, dst)
	assert.Equal(t, []byte{0, 0, 1, 0}, dst)

	CompareBools(KindGreaterEqual, a, b, dst)
	assert.Equal(t, []byte{1, 0, 1, 1}, dst)
}

// TestBoolNonNormalized makes sure any nonzero input byte counts as true.
func TestBoolNonNormalized(t *testing.T) {
	raw := []byte{0, 1, 2, 0xFF, 0}
	other := []byte{0, 1, 1, 0, 1}
	dst := make([]byte, 5)
	Compare(KindEqual, TypeBool,
		dispatch.Operand{Ptr: unsafe.Pointer(&raw[0]), Stride: 1},
		dispatch.Operand{Ptr: unsafe.Pointer(&other[0]), Stride: 1},
		outOperand(dst), 5)
	require.Equal(t, []byte{1, 1, 1, 0, 0}, dst)
}

// TestSignUnification checks that signed equality routes through the unsigned
// kernel: two int8 values compare equal exactly when their bit patterns do.
func TestSignUnification(t *testing.T) {
	for x := 0; x < 256; x++ {
		a := []int8{int8(x)}
		for y := 0; y < 256; y++ {
			b := []int8{int8(y)}
			dst := make([]byte, 1)
			Equal(a, b, dst)
			want := byte(0)
			if x == y {
				want = 1
			}
			if dst[0] != want {
				t.Fatalf("equal(%d, %d): got %d, want %d", a[0], b[0], dst[0], want)
			}
		}
	}
}

// TestMixedSignBitPattern compares a uint8 buffer against an int8 buffer
// through the unsigned kernel. uint8(200) and int8(-56) share the bit
// pattern 0xC8 and therefore compare equal.
func TestMixedSignBitPattern(t *testing.T) {
	u := []uint8{200}
	s := []int8{-56}
	dst := make([]byte, 1)
	Compare(KindEqual, TypeUByte,
		dispatch.Operand{Ptr: unsafe.Pointer(&u[0]), Stride: 1},
		dispatch.Operand{Ptr: unsafe.Pointer(&s[0]), Stride: 1},
		outOperand(dst), 1)
	require.Equal(t, []byte{1}, dst)
}

// TestSwapIdentity: greater(a, b) must equal less(b, a) elementwise, and
// likewise for greater_equal / less_equal.
func TestSwapIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 4*simd.MaxLanes[uint8]() + 7
	a := make([]int64, n)
	b := make([]int64, n)
	for i := range a {
		a[i] = int64(rng.Intn(8))
		b[i] = int64(rng.Intn(8))
	}

	gt := make([]byte, n)
	lt := make([]byte, n)
	Greater(a, b, gt)
	Less(b, a, lt)
	require.Equal(t, lt, gt)

	ge := make([]byte, n)
	le := make([]byte, n)
	GreaterEqual(a, b, ge)
	LessEqual(b, a, le)
	require.Equal(t, le, ge)
}

func TestNaNSemantics(t *testing.T) {
	nan := math.NaN()
	a := []float64{nan, nan, 1, nan}
	b := []float64{nan, 1, nan, 2}

	check := func(k Kind, want []byte) {
		dst := make([]byte, len(a))
		ta := TypeFor[float64]()
		Compare(k, ta, sliceOperand(a), sliceOperand(b), outOperand(dst), len(a))
		assert.Equal(t, want, dst, "operator %s", k)
	}

	check(KindEqual, []byte{0, 0, 0, 0})
	check(KindNotEqual, []byte{1, 1, 1, 1})
	check(KindLess, []byte{0, 0, 0, 0})
	check(KindLessEqual, []byte{0, 0, 0, 0})
	check(KindGreater, []byte{0, 0, 0, 0})
	check(KindGreaterEqual, []byte{0, 0, 0, 0})
}

// TestFloatStatusCleared: float-typed loops leave the ambient float status
// flags clean, even when NaN operands are involved.
func TestFloatStatusCleared(t *testing.T) {
	for _, k := range Kinds {
		floatstatus.Raise(floatstatus.Invalid | floatstatus.Overflow)
		a := []float32{1, float32(math.NaN()), 3}
		b := []float32{3, 2, 1}
		dst := make([]byte, 3)
		Compare(k, TypeFloat, sliceOperand(a), sliceOperand(b), outOperand(dst), 3)
		assert.Zero(t, floatstatus.Check(), "operator %s", k)
	}
}

// TestIntStatusUntouched: integer loops do not clear pending flags.
func TestIntStatusUntouched(t *testing.T) {
	floatstatus.Raise(floatstatus.DivideByZero)
	defer floatstatus.Clear()
	a := []int32{1, 2}
	b := []int32{2, 1}
	dst := make([]byte, 2)
	Less(a, b, dst)
	assert.Equal(t, floatstatus.DivideByZero, floatstatus.Check())
}

// TestRegistrationComplete: every type/operator pair resolves to a loop
// under its canonical <TYPE>_<operator> name.
func TestRegistrationComplete(t *testing.T) {
	for _, typ := range Types {
		for _, k := range Kinds {
			name := Name(typ, k)
			fn, ok := dispatch.Lookup(name)
			require.True(t, ok, "missing loop %q", name)
			require.NotNil(t, fn, "nil loop %q", name)
		}
	}
	require.Len(t, Types, 13)
	require.Len(t, Kinds, 6)
}

func TestNameFormat(t *testing.T) {
	assert.Equal(t, "FLOAT_less", Name(TypeFloat, KindLess))
	assert.Equal(t, "ULONGLONG_not_equal", Name(TypeULongLong, KindNotEqual))
	assert.Equal(t, "BOOL_greater_equal", Name(TypeBool, KindGreaterEqual))
}

func TestLoopForCanonicalSharing(t *testing.T) {
	// signed and unsigned equality share the unsigned kernel
	lane, k, swap := canonical(TypeByte, KindEqual)
	assert.Equal(t, TypeUByte, lane)
	assert.Equal(t, KindEqual, k)
	assert.False(t, swap)

	// greater becomes less with swapped operands
	lane, k, swap = canonical(TypeFloat, KindGreater)
	assert.Equal(t, TypeFloat, lane)
	assert.Equal(t, KindLess, k)
	assert.True(t, swap)

	// platform-width types collapse onto a fixed-width kernel
	lane, _, _ = canonical(TypeLong, KindLess)
	assert.True(t, lane == TypeInt || lane == TypeLongLong)
}
