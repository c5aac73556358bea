// See license file for copyright and license details.

package cpu

// resolvers compute the effective address for each addressing mode. they
// expect pc to point at the first operand byte.
var resolvers = [...]func(cpu *CPU) uint16{
	NoneAddressing: nil,
	Immediate:      (*CPU).addrImmediate,
	ZeroPage:       (*CPU).addrZeroPage,
	ZeroPageX:      (*CPU).addrZeroPageX,
	ZeroPageY:      (*CPU).addrZeroPageY,
	Absolute:       (*CPU).addrAbsolute,
	AbsoluteX:      (*CPU).addrAbsoluteX,
	AbsoluteY:      (*CPU).addrAbsoluteY,
	IndirectX:      (*CPU).addrIndirectX,
	IndirectY:      (*CPU).addrIndirectY,
}

// addr returns the effective operand address using mode.
func (cpu *CPU) addr(mode AddrMode) (uint16, error) {
	if int(mode) >= len(resolvers) || resolvers[mode] == nil {
		return 0, ErrUnsupportedAddrMode
	}
	return resolvers[mode](cpu), nil
}

// read reads the operand byte using mode.
func (cpu *CPU) read(mode AddrMode) (uint8, error) {
	addr, err := cpu.addr(mode)
	if err != nil {
		return 0, err
	}
	return cpu.mem.Read(addr), nil
}

// write writes b to the operand address using mode.
func (cpu *CPU) write(mode AddrMode, b uint8) error {
	addr, err := cpu.addr(mode)
	if err != nil {
		return err
	}
	cpu.mem.Write(addr, b)
	return nil
}

// operand returns the first operand byte.
func (cpu *CPU) operand() uint8 {
	return cpu.mem.Read(cpu.pc)
}

func (cpu *CPU) addrImmediate() uint16 {
	return cpu.pc
}

func (cpu *CPU) addrZeroPage() uint16 {
	return uint16(cpu.operand())
}

func (cpu *CPU) addrZeroPageX() uint16 {
	return uint16(cpu.operand() + cpu.x)
}

func (cpu *CPU) addrZeroPageY() uint16 {
	return uint16(cpu.operand() + cpu.y)
}

func (cpu *CPU) addrAbsolute() uint16 {
	return readWord(cpu.mem, cpu.pc)
}

func (cpu *CPU) addrAbsoluteX() uint16 {
	return cpu.addrAbsolute() + uint16(cpu.x)
}

func (cpu *CPU) addrAbsoluteY() uint16 {
	return cpu.addrAbsolute() + uint16(cpu.y)
}

func (cpu *CPU) addrIndirectX() uint16 {
	return readZeroPageWord(cpu.mem, cpu.operand()+cpu.x)
}

func (cpu *CPU) addrIndirectY() uint16 {
	return readZeroPageWord(cpu.mem, cpu.operand()) + uint16(cpu.y)
}
