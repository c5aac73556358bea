// See license file for copyright and license details.

// Package cpu emulates the instruction execution of the NES 6502 CPU.
//
// only a subset of the official instruction set is wired into the
// dispatcher, the rest of the official opcodes fail with ErrNotImplemented.
// interrupts, the hardware stack and cycle accurate timing are not emulated.
package cpu

import (
	"fmt"

	"github.com/golang/glog"
)

const (
	LoadAddr    = 0x8000 // where Load copies programs.
	ResetVector = 0xfffc
)

type CPU struct {
	a uint8 // accumulator.
	x uint8 // x register.
	y uint8 // y register.

	status Status // status flags.

	prevpc uint16 // address of the last fetched opcode.
	pc     uint16 // program counter.

	cycles uint64 // sum of executed instructions base cycles.
	halted bool   // set by BRK.

	mem Memory
}

// New returns a CPU with its own 64KB RAM.
func New() *CPU {
	return NewWithMemory(new(RAM))
}

// NewWithMemory returns a CPU which reads and writes through mem.
func NewWithMemory(mem Memory) *CPU {
	return &CPU{mem: mem}
}

// Load copies program at LoadAddr and points the reset vector to it.
func (cpu *CPU) Load(program []uint8) error {
	if len(program) > MemorySize-LoadAddr {
		return fmt.Errorf("%w: %d bytes, max %d", ErrProgramTooLarge, len(program), MemorySize-LoadAddr)
	}
	for i, b := range program {
		cpu.mem.Write(LoadAddr+uint16(i), b)
	}
	writeWord(cpu.mem, ResetVector, LoadAddr)
	return nil
}

// Reset clears registers and status and jumps to the address in the reset
// vector. memory is left untouched.
func (cpu *CPU) Reset() {
	cpu.a = 0
	cpu.x = 0
	cpu.y = 0
	cpu.status = 0
	cpu.cycles = 0
	cpu.halted = false
	cpu.pc = readWord(cpu.mem, ResetVector)
	cpu.prevpc = cpu.pc
	glog.V(1).Infof("cpu: reset, pc $%04X", cpu.pc)
}

// Run executes instructions until BRK or an error.
func (cpu *CPU) Run() error {
	cpu.halted = false
	for !cpu.halted {
		if err := cpu.Step(); err != nil {
			return err
		}
	}
	glog.V(1).Infof("cpu: halted at $%04X after %d cycles", cpu.prevpc, cpu.cycles)
	return nil
}

// LoadAndRun loads program, resets and runs it.
func (cpu *CPU) LoadAndRun(program []uint8) error {
	if err := cpu.Load(program); err != nil {
		return err
	}
	cpu.Reset()
	return cpu.Run()
}

// Step executes a single instruction. errors are fatal, the CPU is left
// with pc past the failed opcode byte.
func (cpu *CPU) Step() error {
	code := cpu.mem.Read(cpu.pc)
	inst := table[code]
	if glog.V(2) {
		glog.Info(cpu.Trace())
	}

	cpu.prevpc = cpu.pc
	cpu.pc++

	if inst.Opcode == nil {
		return &OpcodeError{PC: cpu.prevpc, Code: code, Err: ErrUnknownOpcode}
	}
	if inst.exec == nil {
		return cpu.opcodeError(inst.Opcode, ErrNotImplemented)
	}

	// instructions changing pc (taken branches) are not advanced past
	// their operand bytes.
	start := cpu.pc
	if err := inst.exec(cpu, inst.Mode); err != nil {
		return cpu.opcodeError(inst.Opcode, err)
	}
	if cpu.pc == start {
		cpu.pc += uint16(inst.Len) - 1
	}
	cpu.cycles += uint64(inst.Cycles)
	return nil
}

func (cpu *CPU) opcodeError(op *Opcode, err error) error {
	return &OpcodeError{
		PC:       cpu.prevpc,
		Code:     op.Code,
		Mnemonic: op.Mnemonic,
		Mode:     op.Mode,
		Err:      err,
	}
}

// A returns the accumulator.
func (cpu *CPU) A() uint8 { return cpu.a }

// X returns the x register.
func (cpu *CPU) X() uint8 { return cpu.x }

// Y returns the y register.
func (cpu *CPU) Y() uint8 { return cpu.y }

// Status returns the status flags.
func (cpu *CPU) Status() Status { return cpu.status }

// PC returns the program counter.
func (cpu *CPU) PC() uint16 { return cpu.pc }

// Cycles returns the base cycles of the instructions executed since reset.
func (cpu *CPU) Cycles() uint64 { return cpu.cycles }

// Halted reports whether the last instruction was BRK.
func (cpu *CPU) Halted() bool { return cpu.halted }

// Read returns the byte at addr.
func (cpu *CPU) Read(addr uint16) uint8 {
	return cpu.mem.Read(addr)
}

// ReadWord returns the little endian word at addr.
func (cpu *CPU) ReadWord(addr uint16) uint16 {
	return readWord(cpu.mem, addr)
}
