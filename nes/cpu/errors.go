// See license file for copyright and license details.

package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when the fetched byte is not an
	// official 6502 opcode.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnsupportedAddrMode is returned when an address is resolved for
	// an instruction whose operand is not in memory.
	ErrUnsupportedAddrMode = errors.New("unsupported addressing mode")

	// ErrNotImplemented is returned for official opcodes without a handler.
	ErrNotImplemented = errors.New("instruction not implemented")

	// ErrProgramTooLarge is returned by Load when the program doesn't fit
	// between the load address and the reset vector.
	ErrProgramTooLarge = errors.New("program too large")
)

// OpcodeError describes a fatal error raised while executing the instruction
// fetched at PC.
type OpcodeError struct {
	PC       uint16   // address of the opcode byte.
	Code     uint8    // opcode byte.
	Mnemonic string   // empty for unknown opcodes.
	Mode     AddrMode // addressing mode, NoneAddressing for unknown opcodes.
	Err      error    // one of the Err* sentinels.
}

func (e *OpcodeError) Error() string {
	if e.Mnemonic == "" {
		return fmt.Sprintf("$%04X: opcode 0x%02X: %v", e.PC, e.Code, e.Err)
	}
	return fmt.Sprintf("$%04X: %s (0x%02X, %s): %v", e.PC, e.Mnemonic, e.Code, e.Mode, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}
