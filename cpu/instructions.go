package cpu

// One function per mnemonic. Each operates on c.M (the operand resolved by
// decode) and, where the instruction modifies something other than a
// register, writes back through c.store so Accumulator and memory targets
// share one code path.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// ADC - Add with Carry
func (c *Cpu) ADC() {
	// https://www.nesdev.org/obelisk-6502-guide/reference.html#ADC
	var carryIn uint16
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(c.M) + carryIn
	result := byte(sum)

	c.Flags.Carry = sum > 0xff
	// signed overflow iff operands share a sign and the result's sign
	// differs from theirs
	c.Flags.Overflow = (c.A^result)&(c.M^result)&0x80 != 0

	c.A = result
	c.setZN(c.A)
}

// AND - Logical AND
func (c *Cpu) AND() {
	c.A &= c.M
	c.setZN(c.A)
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL() {
	c.Flags.Carry = c.M&0x80 != 0
	result := c.M << 1
	c.setZN(result)
	c.store(result)
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC() { c.branch(!c.Flags.Carry) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS() { c.branch(c.Flags.Carry) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ() { c.branch(c.Flags.Zero) }

// BIT - Bit Test
func (c *Cpu) BIT() {
	c.Flags.Zero = c.A&c.M == 0
	c.Flags.Negative = c.M&0x80 != 0
	c.Flags.Overflow = c.M&0x40 != 0
}

// BMI - Branch if Minus
func (c *Cpu) BMI() { c.branch(c.Flags.Negative) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE() { c.branch(!c.Flags.Zero) }

// BPL - Branch if Positive
func (c *Cpu) BPL() { c.branch(!c.Flags.Negative) }

// branch redirects PC to the address decode already resolved from the
// signed displacement, if cond holds.
func (c *Cpu) branch(cond bool) {
	if cond {
		c.PC = c.AbsAddress
	}
}

// BRK - Force Interrupt
//
// This core treats BRK as the terminating condition for Run: once hit, no
// further instructions execute. The stack/vector bookkeeping still happens
// so a caller inspecting memory afterward sees what real hardware would
// have left behind.
func (c *Cpu) BRK() {
	c.push16(c.PC + 1)
	c.push(c.flagsByte(true))
	c.Flags.DisableInterrupt = true
	c.PC = c.Mem.Read16(0xfffe)
	c.halted = true
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC() { c.branch(!c.Flags.Overflow) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS() { c.branch(c.Flags.Overflow) }

// CLC - Clear Carry Flag
func (c *Cpu) CLC() { c.Flags.Carry = false }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD() { c.Flags.Decimal = false }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI() { c.Flags.DisableInterrupt = false }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV() { c.Flags.Overflow = false }

// compare implements CMP/CPX/CPY: modular subtraction, never platform
// signed-underflow semantics.
func (c *Cpu) compare(reg byte) {
	result := reg - c.M
	c.Flags.Carry = reg >= c.M
	c.Flags.Zero = reg == c.M
	c.Flags.Negative = result&0x80 != 0
}

// CMP - Compare
func (c *Cpu) CMP() { c.compare(c.A) }

// CPX - Compare X Register
func (c *Cpu) CPX() { c.compare(c.X) }

// CPY - Compare Y Register
func (c *Cpu) CPY() { c.compare(c.Y) }

// DEC - Decrement Memory
func (c *Cpu) DEC() {
	result := c.M - 1
	c.setZN(result)
	c.store(result)
}

// DEX - Decrement X Register
func (c *Cpu) DEX() { c.X--; c.setZN(c.X) }

// DEY - Decrement Y Register
func (c *Cpu) DEY() { c.Y--; c.setZN(c.Y) }

// EOR - Exclusive OR
func (c *Cpu) EOR() {
	c.A ^= c.M
	c.setZN(c.A)
}

// INC - Increment Memory
func (c *Cpu) INC() {
	result := c.M + 1
	c.setZN(result)
	c.store(result)
}

// INX - Increment X Register
func (c *Cpu) INX() { c.X++; c.setZN(c.X) }

// INY - Increment Y Register
func (c *Cpu) INY() { c.Y++; c.setZN(c.Y) }

// JMP - Jump
func (c *Cpu) JMP() { c.PC = c.AbsAddress }

// JSR - Jump to Subroutine
func (c *Cpu) JSR() {
	// push the address of the last byte of this instruction, not the next
	// one -- RTS is the one that adds the +1 back.
	c.push16(c.PC - 1)
	c.PC = c.AbsAddress
}

// LDA - Load Accumulator
func (c *Cpu) LDA() { c.A = c.M; c.setZN(c.A) }

// LDX - Load X Register
func (c *Cpu) LDX() { c.X = c.M; c.setZN(c.X) }

// LDY - Load Y Register
func (c *Cpu) LDY() { c.Y = c.M; c.setZN(c.Y) }

// LSR - Logical Shift Right
func (c *Cpu) LSR() {
	c.Flags.Carry = c.M&0x01 != 0
	result := c.M >> 1
	c.Flags.Zero = result == 0
	c.Flags.Negative = false // bit 7 is always cleared by a logical right shift
	c.store(result)
}

// NOP - No Operation
func (c *Cpu) NOP() {}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA() {
	c.A |= c.M
	c.setZN(c.A)
}

// PHA - Push Accumulator
func (c *Cpu) PHA() { c.push(c.A) }

// PHP - Push Processor Status
func (c *Cpu) PHP() { c.push(c.flagsByte(true)) }

// PLA - Pull Accumulator
func (c *Cpu) PLA() { c.A = c.pop(); c.setZN(c.A) }

// PLP - Pull Processor Status
func (c *Cpu) PLP() { c.setFlagsFromByte(c.pop()) }

// ROL - Rotate Left
func (c *Cpu) ROL() {
	var oldCarry byte
	if c.Flags.Carry {
		oldCarry = 1
	}
	c.Flags.Carry = c.M&0x80 != 0
	result := (c.M << 1) | oldCarry
	c.setZN(result)
	c.store(result)
}

// ROR - Rotate Right
func (c *Cpu) ROR() {
	var oldCarry byte
	if c.Flags.Carry {
		oldCarry = 0x80
	}
	c.Flags.Carry = c.M&0x01 != 0
	result := (c.M >> 1) | oldCarry
	c.setZN(result)
	c.store(result)
}

// RTI - Return from Interrupt
func (c *Cpu) RTI() {
	c.setFlagsFromByte(c.pop())
	c.PC = c.pop16() // no +1: the pushed address already points at the next instruction
}

// RTS - Return from Subroutine
func (c *Cpu) RTS() { c.PC = c.pop16() + 1 }

// SBC - Subtract with Carry
//
// Implemented as ADC against the one's complement of the operand, which is
// the standard trick for getting correct carry/overflow behavior for free;
// C acts as an inverted borrow, same as real hardware.
func (c *Cpu) SBC() {
	notM := c.M ^ 0xff
	var carryIn uint16
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(notM) + carryIn
	result := byte(sum)

	c.Flags.Carry = sum > 0xff
	c.Flags.Overflow = (c.A^result)&(notM^result)&0x80 != 0

	c.A = result
	c.setZN(c.A)
}

// SEC - Set Carry Flag
func (c *Cpu) SEC() { c.Flags.Carry = true }

// SED - Set Decimal Flag
func (c *Cpu) SED() { c.Flags.Decimal = true }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI() { c.Flags.DisableInterrupt = true }

// STA - Store Accumulator
func (c *Cpu) STA() { c.store(c.A) }

// STX - Store X Register
func (c *Cpu) STX() { c.store(c.X) }

// STY - Store Y Register
func (c *Cpu) STY() { c.store(c.Y) }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX() { c.X = c.A; c.setZN(c.X) }

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY() { c.Y = c.A; c.setZN(c.Y) }

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX() { c.X = c.SP; c.setZN(c.X) }

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA() { c.A = c.X; c.setZN(c.A) }

// TXS - Transfer X to Stack Pointer
//
// Unlike every other transfer, TXS does not touch N or Z: the stack
// pointer's value is not meant to be tested this way.
func (c *Cpu) TXS() { c.SP = c.X }

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA() { c.A = c.Y; c.setZN(c.A) }
