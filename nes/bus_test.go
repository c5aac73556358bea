// See license file for copyright and license details.

package nes

import (
	"errors"
	"testing"

	"github.com/MarcoLucidi01/nes/nes/cpu"
)

func TestBusMirroring(t *testing.T) {
	tests := []struct {
		write  uint16
		mirror []uint16
	}{
		{0x0000, []uint16{0x0800, 0x1000, 0x1800}},
		{0x07ff, []uint16{0x0fff, 0x17ff, 0x1fff}},
		{0x2002, []uint16{0x200a, 0x3ffa}},
		{0x4015, []uint16{0x4015}},
		{0x8000, []uint16{0x8000}},
		{0xffff, []uint16{0xffff}},
	}
	for i, tt := range tests {
		var bus Bus
		bus.Write(tt.write, uint8(i+1))
		for _, addr := range tt.mirror {
			if got := bus.Read(addr); got != uint8(i+1) {
				t.Errorf("write $%04X, read $%04X: got 0x%02X, want 0x%02X", tt.write, addr, got, i+1)
			}
		}
	}
}

func TestBusLoadPrg(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0xa9
	prg[0x3fff] = 0x42

	var bus Bus
	if err := bus.LoadPrg(prg); err != nil {
		t.Fatal(err)
	}
	if bus.Read(0x8000) != 0xa9 || bus.Read(0xc000) != 0xa9 {
		t.Fatalf("16KB bank not mirrored: %02X %02X", bus.Read(0x8000), bus.Read(0xc000))
	}
	if bus.Read(0xbfff) != 0x42 || bus.Read(0xffff) != 0x42 {
		t.Fatalf("16KB bank end: %02X %02X", bus.Read(0xbfff), bus.Read(0xffff))
	}

	prg = make([]uint8, 0x8000)
	prg[0x4000] = 0x55
	if err := bus.LoadPrg(prg); err != nil {
		t.Fatal(err)
	}
	if bus.Read(0xc000) != 0x55 || bus.Read(0x8000) != 0x00 {
		t.Fatalf("32KB: %02X %02X", bus.Read(0x8000), bus.Read(0xc000))
	}

	if err := bus.LoadPrg(make([]uint8, 0x2000)); !errors.Is(err, ErrPrgSize) {
		t.Fatalf("expected %v got %v", ErrPrgSize, err)
	}
}

// TestBusCPU runs programs on the CPU through the Bus.
func TestBusCPU(t *testing.T) {
	bus := new(Bus)
	c := cpu.NewWithMemory(bus)

	// LDA #$10; STA $69; BRK
	if err := c.LoadAndRun([]uint8{0xa9, 0x10, 0x85, 0x69, 0x00}); err != nil {
		t.Fatal(err)
	}
	if bus.Read(0x0869) != 0x10 {
		t.Fatalf("ram mirror: got 0x%02X", bus.Read(0x0869))
	}

	// LDX #$02; DEC $07FF,X (wraps to $0801 = $0001); LDA $01; BRK
	bus.Write(0x0001, 0x01)
	if err := c.LoadAndRun([]uint8{0xa2, 0x02, 0xde, 0xff, 0x07, 0xa5, 0x01, 0x00}); err != nil {
		t.Fatal(err)
	}
	if c.A() != 0 || !c.Status().Check(cpu.FlagZero) {
		t.Fatalf("got A:%02X P:%s", c.A(), c.Status())
	}
}
