// See license file for copyright and license details.

package nes

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/MarcoLucidi01/nes/nes/ines"
)

type Rom struct {
	ines.Ines // header

	Trainer []uint8 // trainer data if present
	Prg     []uint8 // PRG ROM data
	Chr     []uint8 // CHR ROM data if present
}

func ReadRom(r io.Reader) (Rom, error) {
	header, err := ines.ReadHeader(r)
	if err != nil {
		return Rom{}, err
	}

	rom := Rom{Ines: header}

	if rom.HasTrainer {
		rom.Trainer = make([]uint8, ines.TrainerSize)
		if _, err := io.ReadFull(r, rom.Trainer); err != nil {
			return Rom{}, fmt.Errorf("trainer: %w", err)
		}
	}

	if rom.PrgSize() == 0 {
		return Rom{}, ErrNoPrg
	}
	rom.Prg = make([]uint8, rom.PrgSize())
	if _, err := io.ReadFull(r, rom.Prg); err != nil {
		return Rom{}, fmt.Errorf("prg: %w", err)
	}

	if rom.ChrSize() > 0 {
		rom.Chr = make([]uint8, rom.ChrSize())
		if _, err := io.ReadFull(r, rom.Chr); err != nil {
			return Rom{}, fmt.Errorf("chr: %w", err)
		}
	}

	return rom, nil
}

// ReadRomFile reads the iNES file at path.
func ReadRomFile(path string) (Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rom{}, err
	}
	defer f.Close()

	rom, err := ReadRom(bufio.NewReader(f))
	if err != nil {
		return Rom{}, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}
