// See license file for copyright and license details.

package cpu

import (
	"strings"
	"testing"
)

func TestTrace(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(cpu *CPU)
		program []uint8
		want    string // instruction part of the trace.
	}{
		{"immediate", nil, []uint8{0xa9, 0xc0}, "8000  A9 C0     LDA #$C0"},
		{"implied", nil, []uint8{0xaa}, "8000  AA        TAX"},
		{"accumulator", nil, []uint8{0x0a}, "8000  0A        ASL A"},
		{
			"zero page", func(cpu *CPU) { cpu.mem.Write(0x69, 0x10) },
			[]uint8{0x85, 0x69}, "8000  85 69     STA $69 = 10",
		}, {
			"absolute,x", func(cpu *CPU) { cpu.x = 2; cpu.mem.Write(0x0302, 0xab) },
			[]uint8{0xbd, 0x00, 0x03}, "8000  BD 00 03  LDA $0300,X @ 0302 = AB",
		}, {
			"(indirect),y", func(cpu *CPU) { cpu.y = 1; writeWord(cpu.mem, 0x10, 0x0400) },
			[]uint8{0xb1, 0x10}, "8000  B1 10     LDA ($10),Y = 0400 @ 0401 = 00",
		},
		{"relative", nil, []uint8{0xd0, 0xfe}, "8000  D0 FE     BNE $8000"},
		{"jmp indirect", nil, []uint8{0x6c, 0x34, 0x12}, "8000  6C 34 12  JMP ($1234)"},
		{"unknown", nil, []uint8{0x02}, "8000  02        ???"},
	}
	for _, tt := range tests {
		cpu := New()
		if err := cpu.Load(tt.program); err != nil {
			t.Fatal(err)
		}
		cpu.Reset()
		if tt.setup != nil {
			tt.setup(cpu)
		}
		got := cpu.Trace()
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("%s:\ngot  %q\nwant %q...", tt.name, got, tt.want)
		}
	}
}

func TestTraceRegisters(t *testing.T) {
	cpu := New()
	if err := cpu.LoadAndRun([]uint8{0xa9, 0x80, 0xaa, 0x00}); err != nil {
		t.Fatal(err)
	}
	got := cpu.Trace()
	if !strings.HasSuffix(got, "A:80 X:80 Y:00 P:80 CYC:11") {
		t.Fatalf("got %q", got)
	}
	if i := strings.Index(got, "A:"); i != 48 {
		t.Fatalf("registers at column %d, want 48: %q", i, got)
	}
}
