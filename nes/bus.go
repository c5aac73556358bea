// See license file for copyright and license details.

package nes

import (
	"fmt"

	"github.com/MarcoLucidi01/nes/nes/cpu"
	"github.com/MarcoLucidi01/nes/nes/ines"
)

const (
	prgAddr = 0x8000 // start of PRG ROM in the CPU address space.
	carAddr = 0x4020 // start of cartridge space.
)

// Bus is the CPU memory map. PPU and APU registers are plain storage, there
// are no chips behind them yet.
type Bus struct {
	ram [0x0800]uint8
	ppu [0x0008]uint8
	apu [0x0020]uint8
	car [0x10000 - carAddr]uint8
}

var _ cpu.Memory = (*Bus)(nil)

func (bus *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1fff:
		return bus.ram[addr&0x07ff]
	case addr <= 0x3fff:
		return bus.ppu[addr&0x0007]
	case addr < carAddr:
		return bus.apu[addr&0x001f]
	default:
		return bus.car[addr-carAddr]
	}
}

func (bus *Bus) Write(addr uint16, b uint8) {
	switch {
	case addr <= 0x1fff:
		bus.ram[addr&0x07ff] = b
	case addr <= 0x3fff:
		bus.ppu[addr&0x0007] = b
	case addr < carAddr:
		bus.apu[addr&0x001f] = b
	default:
		bus.car[addr-carAddr] = b
	}
}

// LoadPrg maps NROM PRG data at 0x8000, a single 16KB bank is mirrored at
// 0xc000.
func (bus *Bus) LoadPrg(prg []uint8) error {
	switch len(prg) {
	case ines.PrgUnit:
		copy(bus.car[prgAddr-carAddr:], prg)
		copy(bus.car[prgAddr+ines.PrgUnit-carAddr:], prg)
	case 2 * ines.PrgUnit:
		copy(bus.car[prgAddr-carAddr:], prg)
	default:
		return fmt.Errorf("%w: %d bytes", ErrPrgSize, len(prg))
	}
	return nil
}
