// See license file for copyright and license details.

package cpu

import "fmt"

// AddrMode tells where an instruction finds its operand.
type AddrMode uint8

const (
	// NoneAddressing is used by implied, accumulator, relative and
	// absolute indirect instructions, which never resolve an operand
	// address.
	NoneAddressing AddrMode = iota
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
)

var addrModeNames = [...]string{
	NoneAddressing: "none",
	Immediate:      "immediate",
	ZeroPage:       "zero page",
	ZeroPageX:      "zero page,x",
	ZeroPageY:      "zero page,y",
	Absolute:       "absolute",
	AbsoluteX:      "absolute,x",
	AbsoluteY:      "absolute,y",
	IndirectX:      "(indirect,x)",
	IndirectY:      "(indirect),y",
}

func (m AddrMode) String() string {
	if int(m) < len(addrModeNames) {
		return addrModeNames[m]
	}
	return fmt.Sprintf("AddrMode(%d)", m)
}

// Opcode describes an official 6502 opcode.
type Opcode struct {
	Code     uint8
	Mnemonic string
	Len      uint8 // opcode byte plus operand bytes.
	Cycles   uint8 // base cycles, informational only.
	Mode     AddrMode
}

func (op Opcode) String() string {
	return fmt.Sprintf("0x%02X %s %s", op.Code, op.Mnemonic, op.Mode)
}

// opcodes table. cycle counts don't include page crossing or taken branch
// penalties.
var opcodes = []Opcode{
	{0x00, "BRK", 1, 7, NoneAddressing},
	{0x01, "ORA", 2, 6, IndirectX},
	{0x05, "ORA", 2, 3, ZeroPage},
	{0x06, "ASL", 2, 5, ZeroPage},
	{0x08, "PHP", 1, 3, NoneAddressing},
	{0x09, "ORA", 2, 2, Immediate},
	{0x0a, "ASL", 1, 2, NoneAddressing},
	{0x0d, "ORA", 3, 4, Absolute},
	{0x0e, "ASL", 3, 6, Absolute},
	{0x10, "BPL", 2, 2, NoneAddressing}, // +1 if taken.
	{0x11, "ORA", 2, 5, IndirectY},      // +1 if page crossed.
	{0x15, "ORA", 2, 4, ZeroPageX},
	{0x16, "ASL", 2, 6, ZeroPageX},
	{0x18, "CLC", 1, 2, NoneAddressing},
	{0x19, "ORA", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0x1d, "ORA", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0x1e, "ASL", 3, 7, AbsoluteX},
	{0x20, "JSR", 3, 6, Absolute},
	{0x21, "AND", 2, 6, IndirectX},
	{0x24, "BIT", 2, 3, ZeroPage},
	{0x25, "AND", 2, 3, ZeroPage},
	{0x26, "ROL", 2, 5, ZeroPage},
	{0x28, "PLP", 1, 4, NoneAddressing},
	{0x29, "AND", 2, 2, Immediate},
	{0x2a, "ROL", 1, 2, NoneAddressing},
	{0x2c, "BIT", 3, 4, Absolute},
	{0x2d, "AND", 3, 4, Absolute},
	{0x2e, "ROL", 3, 6, Absolute},
	{0x30, "BMI", 2, 2, NoneAddressing}, // +1 if taken.
	{0x31, "AND", 2, 5, IndirectY},      // +1 if page crossed.
	{0x35, "AND", 2, 4, ZeroPageX},
	{0x36, "ROL", 2, 6, ZeroPageX},
	{0x38, "SEC", 1, 2, NoneAddressing},
	{0x39, "AND", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0x3d, "AND", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0x3e, "ROL", 3, 7, AbsoluteX},
	{0x40, "RTI", 1, 6, NoneAddressing},
	{0x41, "EOR", 2, 6, IndirectX},
	{0x45, "EOR", 2, 3, ZeroPage},
	{0x46, "LSR", 2, 5, ZeroPage},
	{0x48, "PHA", 1, 3, NoneAddressing},
	{0x49, "EOR", 2, 2, Immediate},
	{0x4a, "LSR", 1, 2, NoneAddressing},
	{0x4c, "JMP", 3, 3, Absolute},
	{0x4d, "EOR", 3, 4, Absolute},
	{0x4e, "LSR", 3, 6, Absolute},
	{0x50, "BVC", 2, 2, NoneAddressing}, // +1 if taken.
	{0x51, "EOR", 2, 5, IndirectY},      // +1 if page crossed.
	{0x55, "EOR", 2, 4, ZeroPageX},
	{0x56, "LSR", 2, 6, ZeroPageX},
	{0x58, "CLI", 1, 2, NoneAddressing},
	{0x59, "EOR", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0x5d, "EOR", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0x5e, "LSR", 3, 7, AbsoluteX},
	{0x60, "RTS", 1, 6, NoneAddressing},
	{0x61, "ADC", 2, 6, IndirectX},
	{0x65, "ADC", 2, 3, ZeroPage},
	{0x66, "ROR", 2, 5, ZeroPage},
	{0x68, "PLA", 1, 4, NoneAddressing},
	{0x69, "ADC", 2, 2, Immediate},
	{0x6a, "ROR", 1, 2, NoneAddressing},
	{0x6c, "JMP", 3, 5, NoneAddressing},
	{0x6d, "ADC", 3, 4, Absolute},
	{0x6e, "ROR", 3, 6, Absolute},
	{0x70, "BVS", 2, 2, NoneAddressing}, // +1 if taken.
	{0x71, "ADC", 2, 5, IndirectY},      // +1 if page crossed.
	{0x75, "ADC", 2, 4, ZeroPageX},
	{0x76, "ROR", 2, 6, ZeroPageX},
	{0x78, "SEI", 1, 2, NoneAddressing},
	{0x79, "ADC", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0x7d, "ADC", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0x7e, "ROR", 3, 7, AbsoluteX},
	{0x81, "STA", 2, 6, IndirectX},
	{0x84, "STY", 2, 3, ZeroPage},
	{0x85, "STA", 2, 3, ZeroPage},
	{0x86, "STX", 2, 3, ZeroPage},
	{0x88, "DEY", 1, 2, NoneAddressing},
	{0x8a, "TXA", 1, 2, NoneAddressing},
	{0x8c, "STY", 3, 4, Absolute},
	{0x8d, "STA", 3, 4, Absolute},
	{0x8e, "STX", 3, 4, Absolute},
	{0x90, "BCC", 2, 2, NoneAddressing}, // +1 if taken.
	{0x91, "STA", 2, 6, IndirectY},
	{0x94, "STY", 2, 4, ZeroPageX},
	{0x95, "STA", 2, 4, ZeroPageX},
	{0x96, "STX", 2, 4, ZeroPageY},
	{0x98, "TYA", 1, 2, NoneAddressing},
	{0x99, "STA", 3, 5, AbsoluteY},
	{0x9a, "TXS", 1, 2, NoneAddressing},
	{0x9d, "STA", 3, 5, AbsoluteX},
	{0xa0, "LDY", 2, 2, Immediate},
	{0xa1, "LDA", 2, 6, IndirectX},
	{0xa2, "LDX", 2, 2, Immediate},
	{0xa4, "LDY", 2, 3, ZeroPage},
	{0xa5, "LDA", 2, 3, ZeroPage},
	{0xa6, "LDX", 2, 3, ZeroPage},
	{0xa8, "TAY", 1, 2, NoneAddressing},
	{0xa9, "LDA", 2, 2, Immediate},
	{0xaa, "TAX", 1, 2, NoneAddressing},
	{0xac, "LDY", 3, 4, Absolute},
	{0xad, "LDA", 3, 4, Absolute},
	{0xae, "LDX", 3, 4, Absolute},
	{0xb0, "BCS", 2, 2, NoneAddressing}, // +1 if taken.
	{0xb1, "LDA", 2, 5, IndirectY},      // +1 if page crossed.
	{0xb4, "LDY", 2, 4, ZeroPageX},
	{0xb5, "LDA", 2, 4, ZeroPageX},
	{0xb6, "LDX", 2, 4, ZeroPageY},
	{0xb8, "CLV", 1, 2, NoneAddressing},
	{0xb9, "LDA", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0xba, "TSX", 1, 2, NoneAddressing},
	{0xbc, "LDY", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0xbd, "LDA", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0xbe, "LDX", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0xc0, "CPY", 2, 2, Immediate},
	{0xc1, "CMP", 2, 6, IndirectX},
	{0xc4, "CPY", 2, 3, ZeroPage},
	{0xc5, "CMP", 2, 3, ZeroPage},
	{0xc6, "DEC", 2, 5, ZeroPage},
	{0xc8, "INY", 1, 2, NoneAddressing},
	{0xc9, "CMP", 2, 2, Immediate},
	{0xca, "DEX", 1, 2, NoneAddressing},
	{0xcc, "CPY", 3, 4, Absolute},
	{0xcd, "CMP", 3, 4, Absolute},
	{0xce, "DEC", 3, 6, Absolute},
	{0xd0, "BNE", 2, 2, NoneAddressing}, // +1 if taken.
	{0xd1, "CMP", 2, 5, IndirectY},      // +1 if page crossed.
	{0xd5, "CMP", 2, 4, ZeroPageX},
	{0xd6, "DEC", 2, 6, ZeroPageX},
	{0xd8, "CLD", 1, 2, NoneAddressing},
	{0xd9, "CMP", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0xdd, "CMP", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0xde, "DEC", 3, 7, AbsoluteX},
	{0xe0, "CPX", 2, 2, Immediate},
	{0xe1, "SBC", 2, 6, IndirectX},
	{0xe4, "CPX", 2, 3, ZeroPage},
	{0xe5, "SBC", 2, 3, ZeroPage},
	{0xe6, "INC", 2, 5, ZeroPage},
	{0xe8, "INX", 1, 2, NoneAddressing},
	{0xe9, "SBC", 2, 2, Immediate},
	{0xea, "NOP", 1, 2, NoneAddressing},
	{0xec, "CPX", 3, 4, Absolute},
	{0xed, "SBC", 3, 4, Absolute},
	{0xee, "INC", 3, 6, Absolute},
	{0xf0, "BEQ", 2, 2, NoneAddressing}, // +1 if taken.
	{0xf1, "SBC", 2, 5, IndirectY},      // +1 if page crossed.
	{0xf5, "SBC", 2, 4, ZeroPageX},
	{0xf6, "INC", 2, 6, ZeroPageX},
	{0xf8, "SED", 1, 2, NoneAddressing},
	{0xf9, "SBC", 3, 4, AbsoluteY}, // +1 if page crossed.
	{0xfd, "SBC", 3, 4, AbsoluteX}, // +1 if page crossed.
	{0xfe, "INC", 3, 7, AbsoluteX},}

// registry indexes opcodes by code, unofficial opcodes are nil.
var registry = func() (r [256]*Opcode) {
	for i := range opcodes {
		op := &opcodes[i]
		if r[op.Code] != nil {
			panic(fmt.Sprintf("duplicate opcode 0x%02X", op.Code))
		}
		r[op.Code] = op
	}
	return r
}()

// Lookup returns the opcode for code, false if code is not an official
// opcode.
func Lookup(code uint8) (Opcode, bool) {
	op := registry[code]
	if op == nil {
		return Opcode{}, false
	}
	return *op, true
}

// Opcodes returns a copy of the opcodes table sorted by code.
func Opcodes() []Opcode {
	ops := make([]Opcode, len(opcodes))
	copy(ops, opcodes)
	return ops
}
