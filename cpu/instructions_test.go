package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// step1 decodes and executes a single instruction directly against the
// given mode, bypassing Step/the opcode table -- useful for isolating one
// instruction's flag behavior without needing a full program.
func step1(c *Cpu, mode AddressingMode, instr func(*Cpu)) {
	c.decode(mode)
	instr(c)
}

func TestSBCBorrow(t *testing.T) {
	c := New()
	// 0x50 - 0xf0 with no incoming borrow (C set): result wraps, C ends
	// clear (borrow occurred).
	c.A = 0x50
	c.Flags.Carry = true
	c.MemWrite(0x00, 0xf0)
	c.PC = 0x8000 // operand byte at 0x8000 is 0x00: zero-page address $00
	step1(c, ZeroPage, (*Cpu).SBC)

	a, b := byte(0x50), byte(0xf0)
	assert.Equal(t, a-b, c.A)
	assert.False(t, c.Flags.Carry)
}

func TestSBCNoBorrow(t *testing.T) {
	c := New()
	c.A = 0x50
	c.Flags.Carry = true // no borrow going in
	c.MemWrite(0x00, 0x10)
	c.PC = 0x8000 // operand byte at 0x8000 is 0x00: zero-page address $00
	step1(c, ZeroPage, (*Cpu).SBC)

	assert.Equal(t, byte(0x40), c.A)
	assert.True(t, c.Flags.Carry) // still no borrow after
}

func TestCompareNeverUnderflowsSigned(t *testing.T) {
	c := New()
	c.A = 0x10
	c.MemWrite(0x00, 0x20)
	c.PC = 0x8000 // operand byte at 0x8000 is 0x00: zero-page address $00
	step1(c, ZeroPage, (*Cpu).CMP)

	assert.False(t, c.Flags.Carry) // A < M
	assert.False(t, c.Flags.Zero)
	x, y := byte(0x10), byte(0x20)
	assert.Equal(t, (x-y)&0x80 != 0, c.Flags.Negative)
}

func TestROLRORRoundTrip(t *testing.T) {
	c := New()
	c.A = 0x2A // bit 7 and bit 0 both clear, so carry is 0 on both ends
	c.Flags.Carry = false

	step1(c, Accumulator, (*Cpu).ROL)
	c.Flags.Carry = false
	step1(c, Accumulator, (*Cpu).ROR)

	assert.Equal(t, byte(0x2A), c.A)
}

func TestASLSetsCarryFromBit7(t *testing.T) {
	c := New()
	c.A = 0x80
	step1(c, Accumulator, (*Cpu).ASL)

	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)
}

func TestLSRAlwaysClearsNegative(t *testing.T) {
	c := New()
	c.A = 0x01
	step1(c, Accumulator, (*Cpu).LSR)

	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.Negative)
}

func TestBITDoesNotModifyAccumulator(t *testing.T) {
	c := New()
	c.A = 0x80
	c.MemWrite(0x00, 0xC0) // bits 7 and 6 set
	c.PC = 0x8000          // operand byte at 0x8000 is 0x00: zero-page address $00
	step1(c, ZeroPage, (*Cpu).BIT)

	assert.Equal(t, byte(0x80), c.A, "BIT must not alter A")
	assert.True(t, c.Flags.Negative)
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Zero)
}

func TestPHPSetsBreakBitPLPIgnoresIt(t *testing.T) {
	c := New()
	c.Flags.Carry = true
	c.Flags.Negative = true
	c.PHP()

	pushed := c.MemRead(0x0100 | uint16(c.SP+1))
	assert.NotZero(t, pushed&(1<<4), "PHP must set the break bit in the pushed copy")

	c.Flags.Carry = false
	c.Flags.Negative = false
	c.PLP()
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Negative)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c := New()
	// pointer at 0x30ff; the bug reads the high byte from 0x3000, not
	// 0x3100.
	c.MemWrite(0x30ff, 0x80)
	c.MemWrite(0x3000, 0x12) // would be ignored if the bug were absent
	c.MemWrite(0x3100, 0x34) // correct high byte if the bug were absent

	c.Load([]byte{0x6C, 0xFF, 0x30})
	c.Reset()
	a := assert.New(t)
	err := c.Step()
	a.NoError(err)
	a.Equal(uint16(0x1280), c.PC)
}
