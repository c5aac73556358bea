// See license file for copyright and license details.

// Package ines reads iNES cartridge headers.
// see https://www.nesdev.org/wiki/INES
package ines

import (
	"errors"
	"fmt"
	"io"
)

const (
	magic       = "NES\x1a"
	HeaderSize  = 0x10
	TrainerSize = 0x200
	PrgUnit     = 0x4000
	PrgRamUnit  = 0x2000
	ChrUnit     = 0x2000
)

type MirroringType int

const (
	Horizontal MirroringType = iota
	Vertical
)

func (m MirroringType) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("MirroringType(%d)", int(m))
}

type ConsoleType int

const (
	NES ConsoleType = iota
	VsSystem
	PlayChoice
	UnknownConsole
)

func (c ConsoleType) String() string {
	switch c {
	case NES:
		return "NES"
	case VsSystem:
		return "Vs. System"
	case PlayChoice:
		return "PlayChoice-10"
	}
	return "unknown"
}

type TvSystemType int

const (
	NTSC TvSystemType = iota
	PAL
)

func (tv TvSystemType) String() string {
	if tv == PAL {
		return "PAL"
	}
	return "NTSC"
}

var (
	ErrBadMagic    = errors.New("not an iNES header")
	ErrShortHeader = errors.New("short iNES header")
)

// Ines contains information read/parsed from the rom header.
type Ines struct {
	PrgBanks          uint8 // 16KB units.
	PrgRamBanks       uint8 // 8KB units, at least 1.
	ChrBanks          uint8 // 8KB units, 0 means CHR RAM.
	Mirroring         MirroringType
	HasBattery        bool
	HasTrainer        bool
	HasFourScreenVRam bool
	Mapper            uint8
	Console           ConsoleType
	TvSystem          TvSystemType
	Nes2              bool // header is NES 2.0, only the iNES 1.0 fields are parsed.
}

// PrgSize returns the PRG ROM size in bytes.
func (h Ines) PrgSize() int {
	return int(h.PrgBanks) * PrgUnit
}

// ChrSize returns the CHR ROM size in bytes.
func (h Ines) ChrSize() int {
	return int(h.ChrBanks) * ChrUnit
}

func (h Ines) String() string {
	return fmt.Sprintf("mapper %d, %dKB PRG, %dKB CHR, %s mirroring, %s %s",
		h.Mapper, h.PrgSize()/1024, h.ChrSize()/1024, h.Mirroring, h.Console, h.TvSystem)
}

// ReadHeader reads the iNes header from r.
func ReadHeader(r io.Reader) (Ines, error) {
	var header [HeaderSize]uint8
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Ines{}, ErrShortHeader
		}
		return Ines{}, err
	}
	if string(header[:len(magic)]) != magic {
		return Ines{}, ErrBadMagic
	}

	flags6, flags7 := header[6], header[7]

	var h Ines
	h.PrgBanks = header[4]
	h.ChrBanks = header[5]

	h.Mirroring = MirroringType(flags6 & 0x01)
	h.HasBattery = flags6&0x02 != 0
	h.HasTrainer = flags6&0x04 != 0
	h.HasFourScreenVRam = flags6&0x08 != 0

	h.Console = ConsoleType(flags7 & 0x03)
	h.Nes2 = flags7&0x0c == 0x08
	h.Mapper = flags7&0xf0 | flags6>>4

	h.PrgRamBanks = header[8]
	if h.PrgRamBanks == 0 {
		h.PrgRamBanks = 1
	}

	h.TvSystem = TvSystemType(header[9] & 0x01)

	return h, nil
}
