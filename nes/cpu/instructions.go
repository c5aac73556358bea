// See license file for copyright and license details.

package cpu

// handler executes an instruction. pc points at the first operand byte when
// it's called.
type handler func(cpu *CPU, mode AddrMode) error

// handlers wired into the dispatcher, by mnemonic. official opcodes missing
// here fail with ErrNotImplemented.
var handlers = map[string]handler{
	"AND": (*CPU).and,
	"ASL": (*CPU).asl,
	"BCC": (*CPU).bcc,
	"BCS": (*CPU).bcs,
	"BEQ": (*CPU).beq,
	"BIT": (*CPU).bit,
	"BMI": (*CPU).bmi,
	"BNE": (*CPU).bne,
	"BPL": (*CPU).bpl,
	"BRK": (*CPU).brk,
	"BVC": (*CPU).bvc,
	"BVS": (*CPU).bvs,
	"CLC": (*CPU).clc,
	"CLD": (*CPU).cld,
	"CLI": (*CPU).cli,
	"CLV": (*CPU).clv,
	"CMP": (*CPU).cmp,
	"CPX": (*CPU).cpx,
	"CPY": (*CPU).cpy,
	"DEC": (*CPU).dec,
	"DEX": (*CPU).dex,
	"DEY": (*CPU).dey,
	"INX": (*CPU).inx,
	"LDA": (*CPU).lda,
	"LDX": (*CPU).ldx,
	"LDY": (*CPU).ldy,
	"STA": (*CPU).sta,
	"TAX": (*CPU).tax,
}

// instruction pairs an opcode with its handler.
type instruction struct {
	*Opcode
	exec handler // nil if not implemented.
}

// table is the dispatch table, indexed by opcode byte. unofficial opcodes
// have a nil Opcode.
var table = func() (t [256]instruction) {
	for code, op := range registry {
		if op != nil {
			t[code] = instruction{op, handlers[op.Mnemonic]}
		}
	}
	return t
}()

// lda load accumulator with memory.
func (cpu *CPU) lda(mode AddrMode) error {
	b, err := cpu.read(mode)
	if err != nil {
		return err
	}
	cpu.a = b
	cpu.status.setZN(cpu.a)
	return nil
}

// ldx load index register x from memory.
func (cpu *CPU) ldx(mode AddrMode) error {
	b, err := cpu.read(mode)
	if err != nil {
		return err
	}
	cpu.x = b
	cpu.status.setZN(cpu.x)
	return nil
}

// ldy load index register y from memory.
func (cpu *CPU) ldy(mode AddrMode) error {
	b, err := cpu.read(mode)
	if err != nil {
		return err
	}
	cpu.y = b
	cpu.status.setZN(cpu.y)
	return nil
}

// sta store accumulator in memory.
func (cpu *CPU) sta(mode AddrMode) error {
	return cpu.write(mode, cpu.a)
}

// tax transfer accumulator to index x.
func (cpu *CPU) tax(AddrMode) error {
	cpu.x = cpu.a
	cpu.status.setZN(cpu.x)
	return nil
}

// inx increment index register x by one.
func (cpu *CPU) inx(AddrMode) error {
	cpu.x++
	cpu.status.setZN(cpu.x)
	return nil
}

// dex decrement index register x by one.
func (cpu *CPU) dex(AddrMode) error {
	cpu.x--
	cpu.status.setZN(cpu.x)
	return nil
}

// dey decrement index register y by one.
func (cpu *CPU) dey(AddrMode) error {
	cpu.y--
	cpu.status.setZN(cpu.y)
	return nil
}

// dec decrement memory by one.
func (cpu *CPU) dec(mode AddrMode) error {
	addr, err := cpu.addr(mode)
	if err != nil {
		return err
	}
	b := cpu.mem.Read(addr) - 1
	cpu.mem.Write(addr, b)
	cpu.status.setZN(b)
	return nil
}

// and "and" memory with accumulator.
func (cpu *CPU) and(mode AddrMode) error {
	b, err := cpu.read(mode)
	if err != nil {
		return err
	}
	cpu.a &= b
	cpu.status.setZN(cpu.a)
	return nil
}

// asl arithmetic shift left, NoneAddressing shifts the accumulator.
func (cpu *CPU) asl(mode AddrMode) error {
	if mode == NoneAddressing {
		cpu.status.SetIf(FlagCarry, cpu.a&0x80 != 0)
		cpu.a <<= 1
		cpu.status.setZN(cpu.a)
		return nil
	}

	addr, err := cpu.addr(mode)
	if err != nil {
		return err
	}
	b := cpu.mem.Read(addr)
	cpu.status.SetIf(FlagCarry, b&0x80 != 0)
	b <<= 1
	cpu.mem.Write(addr, b)
	// only negative is updated from memory results, zero keeps its value.
	// the real 6502 updates both.
	cpu.status.SetIf(FlagNegative, b&0x80 != 0)
	return nil
}

// bit test bits in memory with accumulator.
func (cpu *CPU) bit(mode AddrMode) error {
	b, err := cpu.read(mode)
	if err != nil {
		return err
	}
	cpu.status.SetIf(FlagOverflow, b&0x40 != 0)
	cpu.status.SetIf(FlagNegative, b&0x80 != 0)
	cpu.status.SetIf(FlagZero, cpu.a&b == 0)
	return nil
}

// compare sets flags from reg - operand without storing the result.
func (cpu *CPU) compare(mode AddrMode, reg uint8) error {
	b, err := cpu.read(mode)
	if err != nil {
		return err
	}
	cpu.status.SetIf(FlagCarry, reg >= b)
	cpu.status.setZN(reg - b)
	return nil
}

// cmp compare memory and accumulator.
func (cpu *CPU) cmp(mode AddrMode) error {
	return cpu.compare(mode, cpu.a)
}

// cpx compare index register x to memory.
func (cpu *CPU) cpx(mode AddrMode) error {
	return cpu.compare(mode, cpu.x)
}

// cpy compare index register y to memory.
func (cpu *CPU) cpy(mode AddrMode) error {
	return cpu.compare(mode, cpu.y)
}

// branchIf jumps to the relative target when cond holds. the offset is
// signed and relative to the byte after it.
func (cpu *CPU) branchIf(cond bool) {
	if !cond {
		return
	}
	off := int8(cpu.operand())
	cpu.pc = cpu.pc + 1 + uint16(off)
}

// bcc branch on carry clear.
func (cpu *CPU) bcc(AddrMode) error {
	cpu.branchIf(!cpu.status.Check(FlagCarry))
	return nil
}

// bcs branch on carry set.
func (cpu *CPU) bcs(AddrMode) error {
	cpu.branchIf(cpu.status.Check(FlagCarry))
	return nil
}

// beq branch on result zero.
func (cpu *CPU) beq(AddrMode) error {
	cpu.branchIf(cpu.status.Check(FlagZero))
	return nil
}

// bmi branch on result minus.
func (cpu *CPU) bmi(AddrMode) error {
	cpu.branchIf(cpu.status.Check(FlagNegative))
	return nil
}

// bne branch on result not zero.
func (cpu *CPU) bne(AddrMode) error {
	cpu.branchIf(!cpu.status.Check(FlagZero))
	return nil
}

// bpl branch on result plus.
func (cpu *CPU) bpl(AddrMode) error {
	cpu.branchIf(!cpu.status.Check(FlagNegative))
	return nil
}

// bvc branch on overflow clear.
func (cpu *CPU) bvc(AddrMode) error {
	cpu.branchIf(!cpu.status.Check(FlagOverflow))
	return nil
}

// bvs branch on overflow set.
func (cpu *CPU) bvs(AddrMode) error {
	cpu.branchIf(cpu.status.Check(FlagOverflow))
	return nil
}

// clc clear carry flag.
func (cpu *CPU) clc(AddrMode) error {
	cpu.status.Clear(FlagCarry)
	return nil
}

// cld clear decimal mode.
func (cpu *CPU) cld(AddrMode) error {
	cpu.status.Clear(FlagDecimal)
	return nil
}

// cli clear interrupt disable.
func (cpu *CPU) cli(AddrMode) error {
	cpu.status.Clear(FlagInterruptDisable)
	return nil
}

// clv clear overflow flag.
func (cpu *CPU) clv(AddrMode) error {
	cpu.status.Clear(FlagOverflow)
	return nil
}

// brk halts the execution loop.
func (cpu *CPU) brk(AddrMode) error {
	cpu.halted = true
	return nil
}
