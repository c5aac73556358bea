// See license file for copyright and license details.

package nes

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MarcoLucidi01/nes/nes/cpu"
	"github.com/MarcoLucidi01/nes/nes/ines"
)

// nrom builds an iNES image with one 16KB PRG bank holding program at
// 0xc000 and the reset vector pointing at it.
func nrom(mapper uint8, program ...uint8) []uint8 {
	header := []uint8{'N', 'E', 'S', 0x1a, 1, 0, mapper << 4, mapper & 0xf0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, ines.PrgUnit)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0xc0
	return append(header, prg...)
}

func TestReadRom(t *testing.T) {
	rom, err := ReadRom(bytes.NewReader(nrom(0, 0xa9, 0x01)))
	if err != nil {
		t.Fatal(err)
	}
	if len(rom.Prg) != ines.PrgUnit || rom.Chr != nil || rom.Trainer != nil {
		t.Fatalf("got prg %d chr %d trainer %d", len(rom.Prg), len(rom.Chr), len(rom.Trainer))
	}
	if rom.Prg[0] != 0xa9 || rom.Prg[1] != 0x01 {
		t.Fatalf("prg: % X", rom.Prg[:2])
	}

	short := nrom(0)[:ines.HeaderSize+0x100]
	if _, err := ReadRom(bytes.NewReader(short)); err == nil {
		t.Fatal("expected error on truncated PRG")
	}

	empty := nrom(0)[:ines.HeaderSize]
	empty[4] = 0
	if _, err := ReadRom(bytes.NewReader(empty)); !errors.Is(err, ErrNoPrg) {
		t.Fatalf("expected %v got %v", ErrNoPrg, err)
	}

	if _, err := ReadRom(bytes.NewReader([]uint8("garbage garbage garbage"))); !errors.Is(err, ines.ErrBadMagic) {
		t.Fatalf("expected %v got %v", ines.ErrBadMagic, err)
	}
}

func TestReadRomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, nrom(0, 0xea), 0o644); err != nil {
		t.Fatal(err)
	}
	rom, err := ReadRomFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rom.Prg[0] != 0xea {
		t.Fatalf("prg: %02X", rom.Prg[0])
	}

	if _, err := ReadRomFile(filepath.Join(t.TempDir(), "missing.nes")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected %v got %v", os.ErrNotExist, err)
	}
}

func TestConsole(t *testing.T) {
	// LDA #$C0; TAX; INX; STA $0200; BRK
	rom, err := ReadRom(bytes.NewReader(nrom(0, 0xa9, 0xc0, 0xaa, 0xe8, 0x8d, 0x00, 0x02, 0x00)))
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewConsole(rom)
	if err != nil {
		t.Fatal(err)
	}
	if c.CPU.PC() != 0xc000 {
		t.Fatalf("reset: pc $%04X, want $C000", c.CPU.PC())
	}
	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.CPU.A() != 0xc0 {
		t.Fatalf("step: A:%02X", c.CPU.A())
	}
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if c.CPU.X() != 0xc1 || c.Bus.Read(0x0200) != 0xc0 {
		t.Fatalf("got X:%02X $0200:%02X", c.CPU.X(), c.Bus.Read(0x0200))
	}
}

func TestConsoleErrors(t *testing.T) {
	rom, err := ReadRom(bytes.NewReader(nrom(1)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewConsole(rom); !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("expected %v got %v", ErrUnsupportedMapper, err)
	}

	// ADC #$01 is official but not wired.
	rom, err = ReadRom(bytes.NewReader(nrom(0, 0x69, 0x01)))
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewConsole(rom)
	if err != nil {
		t.Fatal(err)
	}
	err = c.Run()
	var opErr *cpu.OpcodeError
	if !errors.As(err, &opErr) || !errors.Is(err, cpu.ErrNotImplemented) {
		t.Fatalf("expected %v got %v", cpu.ErrNotImplemented, err)
	}
	if opErr.PC != 0xc000 || opErr.Mnemonic != "ADC" {
		t.Fatalf("got %+v", *opErr)
	}
}
