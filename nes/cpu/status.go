// See license file for copyright and license details.

package cpu

// Status flags, bit 0 to bit 7.
const (
	FlagCarry            Status = 1 << 0
	FlagZero             Status = 1 << 1
	FlagInterruptDisable Status = 1 << 2
	FlagDecimal          Status = 1 << 3
	FlagBreak            Status = 1 << 4
	FlagUnused           Status = 1 << 5
	FlagOverflow         Status = 1 << 6
	FlagNegative         Status = 1 << 7
)

// Status is the processor status register.
type Status uint8

// Check reports whether every bit in mask is set.
func (s Status) Check(mask Status) bool {
	return s&mask == mask
}

// Set sets the bits in mask.
func (s *Status) Set(mask Status) {
	*s |= mask
}

// Clear clears the bits in mask.
func (s *Status) Clear(mask Status) {
	*s &^= mask
}

// SetIf sets the bits in mask if cond is true, otherwise it clears them.
func (s *Status) SetIf(mask Status, cond bool) {
	if cond {
		s.Set(mask)
		return
	}
	s.Clear(mask)
}

// setZN updates zero and negative flags from an instruction result.
func (s *Status) setZN(b uint8) {
	s.SetIf(FlagZero, b == 0)
	s.SetIf(FlagNegative, b&0x80 != 0)
}

// String returns the flags from bit 7 to bit 0 as "nvubdizc", upper case
// letters are set flags.
func (s Status) String() string {
	const names = "czidbuvn"
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		c := names[i]
		if s&(1<<i) != 0 {
			c -= 'a' - 'A'
		}
		b[7-i] = c
	}
	return string(b)
}
