// See license file for copyright and license details.

package cpu

// MemorySize is the size of the 6502 address space.
const MemorySize = 1 << 16

// Memory is a byte addressable 64KB space. the CPU only talks to memory
// through this interface, so a shared bus can be plugged in place of RAM.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, b uint8)
}

// RAM is a flat 64KB memory.
type RAM [MemorySize]uint8

func (ram *RAM) Read(addr uint16) uint8 {
	return ram[addr]
}

func (ram *RAM) Write(addr uint16, b uint8) {
	ram[addr] = b
}

// readWord reads a little endian word at addr, the high byte address wraps
// at 0xffff.
func readWord(m Memory, addr uint16) uint16 {
	lo := uint16(m.Read(addr))
	hi := uint16(m.Read(addr + 1))
	return hi<<8 | lo
}

// writeWord writes w little endian at addr.
func writeWord(m Memory, addr uint16, w uint16) {
	m.Write(addr, uint8(w))
	m.Write(addr+1, uint8(w>>8))
}

// readZeroPageWord reads a little endian word from zero page, the high byte
// address wraps at 0xff.
func readZeroPageWord(m Memory, addr uint8) uint16 {
	lo := uint16(m.Read(uint16(addr)))
	hi := uint16(m.Read(uint16(addr + 1)))
	return hi<<8 | lo
}
