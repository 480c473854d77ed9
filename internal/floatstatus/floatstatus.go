// Package floatstatus models the process-wide floating-point exception
// status word as ambient library state. Hardware comparison instructions may
// raise sticky flags (invalid-operand for NaN inputs being the common one);
// the comparison loops clear the word after every floating-point call so the
// flags never leak into unrelated user-visible state. Math kernels elsewhere
// raise flags through Raise.
package floatstatus

import "sync/atomic"

// Flags is a bit set of sticky floating-point exception conditions.
type Flags uint32

const (
	// Invalid is raised by operations with no defined result, such as
	// ordered comparisons involving NaN.
	Invalid Flags = 1 << iota
	// DivideByZero is raised by finite/0.
	DivideByZero
	// Overflow is raised when a result is too large to represent.
	Overflow
	// Underflow is raised when a result is too small to represent.
	Underflow
)

// String returns a compact flag list like "invalid|overflow".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "|"
		}
		s += name
	}
	if f&Invalid != 0 {
		add("invalid")
	}
	if f&DivideByZero != 0 {
		add("divide-by-zero")
	}
	if f&Overflow != 0 {
		add("overflow")
	}
	if f&Underflow != 0 {
		add("underflow")
	}
	return s
}

var status atomic.Uint32

// Raise sets the given flags in the status word.
func Raise(f Flags) {
	for {
		old := status.Load()
		if status.CompareAndSwap(old, old|uint32(f)) {
			return
		}
	}
}

// Check returns the currently raised flags without clearing them.
func Check() Flags {
	return Flags(status.Load())
}

// CheckAndClear returns the raised flags and resets the status word.
func CheckAndClear() Flags {
	return Flags(status.Swap(0))
}

// Clear resets the status word.
func Clear() {
	status.Store(0)
}
