// See license file for copyright and license details.

package cpu

import "testing"

func TestStatusBits(t *testing.T) {
	tests := []struct {
		flag Status
		bit  uint
	}{
		{FlagCarry, 0},
		{FlagZero, 1},
		{FlagInterruptDisable, 2},
		{FlagDecimal, 3},
		{FlagBreak, 4},
		{FlagUnused, 5},
		{FlagOverflow, 6},
		{FlagNegative, 7},
	}
	for _, tt := range tests {
		if uint8(tt.flag) != 1<<tt.bit {
			t.Errorf("flag %08b: want bit %d", tt.flag, tt.bit)
		}
	}
}

func TestStatusOps(t *testing.T) {
	var s Status
	s.Set(FlagCarry | FlagZero)
	if !s.Check(FlagCarry) || !s.Check(FlagZero) || !s.Check(FlagCarry|FlagZero) {
		t.Fatalf("set: got %08b", s)
	}
	if s.Check(FlagCarry | FlagNegative) {
		t.Fatalf("check must require every bit in mask: %08b", s)
	}

	s.Clear(FlagCarry)
	if s != FlagZero {
		t.Fatalf("clear: got %08b, want %08b", s, FlagZero)
	}

	s.SetIf(FlagOverflow, true)
	s.SetIf(FlagZero, false)
	if s != FlagOverflow {
		t.Fatalf("setIf: got %08b, want %08b", s, FlagOverflow)
	}
}

func TestStatusSetZN(t *testing.T) {
	for v := 0; v < 256; v++ {
		s := FlagZero | FlagNegative | FlagCarry
		s.setZN(uint8(v))
		if s.Check(FlagZero) != (v == 0) {
			t.Errorf("0x%02X: zero %v", v, s.Check(FlagZero))
		}
		if s.Check(FlagNegative) != (v&0x80 != 0) {
			t.Errorf("0x%02X: negative %v", v, s.Check(FlagNegative))
		}
		if !s.Check(FlagCarry) {
			t.Errorf("0x%02X: carry must be untouched", v)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{0, "nvubdizc"},
		{0xff, "NVUBDIZC"},
		{FlagNegative | FlagCarry, "NvubdizC"},
		{FlagZero | FlagOverflow, "nVubdiZc"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%08b: got %q, want %q", uint8(tt.s), got, tt.want)
		}
	}
}
