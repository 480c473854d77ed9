package floatstatus

import "testing"

func TestRaiseCheckClear(t *testing.T) {
	Clear()
	if Check() != 0 {
		t.Fatal("status not clean after Clear")
	}

	Raise(Invalid)
	Raise(Overflow)
	if got := Check(); got != Invalid|Overflow {
		t.Errorf("Check = %v, want %v", got, Invalid|Overflow)
	}

	if got := CheckAndClear(); got != Invalid|Overflow {
		t.Errorf("CheckAndClear = %v, want %v", got, Invalid|Overflow)
	}
	if Check() != 0 {
		t.Error("status not clean after CheckAndClear")
	}
}

func TestString(t *testing.T) {
	if got := Flags(0).String(); got != "none" {
		t.Errorf("String of empty flags = %q", got)
	}
	if got := (Invalid | Underflow).String(); got != "invalid|underflow" {
		t.Errorf("String = %q, want %q", got, "invalid|underflow")
	}
}
