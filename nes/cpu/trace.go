// See license file for copyright and license details.

package cpu

import (
	"fmt"
	"strings"
)

// Trace returns the instruction at pc and the CPU registers, in a format
// close to nestest.log:
//
//	8000  A9 C0     LDA #$C0                        A:00 X:00 Y:00 P:00 CYC:0
func (cpu *CPU) Trace() string {
	op := registry[cpu.mem.Read(cpu.pc)]

	var s strings.Builder
	fmt.Fprintf(&s, "%04X  ", cpu.pc)

	n := 1
	if op != nil {
		n = int(op.Len)
	}
	for i := 0; i < 3; i++ {
		if i < n {
			fmt.Fprintf(&s, "%02X ", cpu.mem.Read(cpu.pc+uint16(i)))
		} else {
			s.WriteString("   ")
		}
	}

	if op == nil {
		s.WriteString(" ???")
	} else {
		fmt.Fprintf(&s, " %s", op.Mnemonic)
	}

	operand := ""
	if op != nil {
		operand = cpu.traceOperand(op)
	}
	fmt.Fprintf(&s, " %-28s", operand)

	fmt.Fprintf(&s, "A:%02X X:%02X Y:%02X P:%02X CYC:%d", cpu.a, cpu.x, cpu.y, uint8(cpu.status), cpu.cycles)
	return s.String()
}

// traceOperand formats the operand of op in assembler syntax, with the
// resolved address and memory content when there's one.
func (cpu *CPU) traceOperand(op *Opcode) string {
	pc := cpu.pc + 1 // first operand byte.
	b2 := cpu.mem.Read(pc)
	w := readWord(cpu.mem, pc)

	switch op.Mode {
	case Immediate:
		return fmt.Sprintf("#$%02X", b2)
	case ZeroPage:
		return fmt.Sprintf("$%02X = %02X", b2, cpu.mem.Read(uint16(b2)))
	case ZeroPageX:
		addr := b2 + cpu.x
		return fmt.Sprintf("$%02X,X @ %02X = %02X", b2, addr, cpu.mem.Read(uint16(addr)))
	case ZeroPageY:
		addr := b2 + cpu.y
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", b2, addr, cpu.mem.Read(uint16(addr)))
	case Absolute:
		if op.Mnemonic == "JMP" || op.Mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", w)
		}
		return fmt.Sprintf("$%04X = %02X", w, cpu.mem.Read(w))
	case AbsoluteX:
		addr := w + uint16(cpu.x)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", w, addr, cpu.mem.Read(addr))
	case AbsoluteY:
		addr := w + uint16(cpu.y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", w, addr, cpu.mem.Read(addr))
	case IndirectX:
		ptr := b2 + cpu.x
		addr := readZeroPageWord(cpu.mem, ptr)
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", b2, ptr, addr, cpu.mem.Read(addr))
	case IndirectY:
		base := readZeroPageWord(cpu.mem, b2)
		addr := base + uint16(cpu.y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", b2, base, addr, cpu.mem.Read(addr))
	}

	// NoneAddressing: tell implied, accumulator, relative and indirect
	// operands apart by instruction length.
	switch op.Len {
	case 2:
		return fmt.Sprintf("$%04X", pc+1+uint16(int8(b2)))
	case 3:
		return fmt.Sprintf("($%04X)", w)
	}
	switch op.Mnemonic {
	case "ASL", "LSR", "ROL", "ROR":
		return "A"
	}
	return ""
}
