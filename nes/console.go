// See license file for copyright and license details.

package nes

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/MarcoLucidi01/nes/nes/cpu"
)

var (
	ErrUnsupportedMapper = errors.New("unsupported mapper")
	ErrNoPrg             = errors.New("rom has no PRG data")
	ErrPrgSize           = errors.New("PRG size not supported by NROM")
)

// Console wires a cartridge and a CPU through the Bus.
type Console struct {
	Bus *Bus
	CPU *cpu.CPU
}

// NewConsole maps rom on a new Bus and resets the CPU, which starts from the
// reset vector stored in the rom. only mapper 0 (NROM) is supported.
func NewConsole(rom Rom) (*Console, error) {
	if rom.Mapper != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, rom.Mapper)
	}

	bus := new(Bus)
	if err := bus.LoadPrg(rom.Prg); err != nil {
		return nil, err
	}

	c := &Console{Bus: bus, CPU: cpu.NewWithMemory(bus)}
	c.CPU.Reset()
	glog.V(1).Infof("console: %v, reset vector $%04X", rom.Ines, c.CPU.PC())
	return c, nil
}

// Step executes one CPU instruction.
func (c *Console) Step() error {
	return c.CPU.Step()
}

// Run runs the CPU until BRK or an error.
func (c *Console) Run() error {
	return c.CPU.Run()
}
