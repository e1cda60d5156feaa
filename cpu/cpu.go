// Package cpu implements the MOS Technology 6502 microprocessor: the
// fetch/decode/execute loop, the addressing-mode resolver, and the
// instruction semantics table.
//
// The Cpu has no memory of its own beyond its registers. It executes
// against a *memory.Memory supplied at construction time, the same way a
// real 6502 executes against whatever is wired to its address and data
// pins.
package cpu

import (
	"fmt"

	"gone/mask"
	"gone/memory"
)

// The Cpu's architectural state: three general registers, a status
// register (modeled as named flags rather than a single byte, since every
// instruction only ever touches one or two flags by name), a stack
// pointer, and a program counter.
//
// 7654 3210
// NV1B DIZC
type Cpu struct {
	Mem *memory.Memory

	Flags struct {
		Negative         bool // bit 7
		Overflow         bool // bit 6
		Unused           bool // bit 5; always reads as 1
		B                bool // bit 4; only meaningful in a pushed copy of P
		Decimal          bool // bit 3; settable but inert (non-goal: BCD math)
		DisableInterrupt bool // bit 2
		Zero             bool // bit 1
		Carry            bool // bit 0
	}

	A byte // Accumulator
	X byte
	Y byte

	// SP is the low byte of the stack address; the true stack address is
	// always 0x0100 | SP. The stack grows downward.
	SP byte

	PC uint16

	// M holds the operand byte resolved by decode, for use by the
	// following instruction. AbsAddress holds the effective address the
	// operand came from (meaningless for Implied/Accumulator modes).
	M          byte
	AbsAddress uint16
	mode       AddressingMode // mode in effect for the instruction being executed

	halted bool // set by BRK; Run stops once this is true
}

// New returns a Cpu wired to a fresh, zeroed 64 KiB memory.
func New() *Cpu {
	c := &Cpu{Mem: memory.New()}
	c.SP = 0xff
	return c
}

// MemRead reads one byte directly, bypassing the addressing-mode resolver.
// Tests and host tooling use this to inspect or seed memory.
func (c *Cpu) MemRead(addr uint16) byte { return c.Mem.Read8(addr) }

// MemWrite writes one byte directly, bypassing the addressing-mode resolver.
func (c *Cpu) MemWrite(addr uint16, v byte) { c.Mem.Write8(addr, v) }

// Load copies program into memory starting at 0x8000 and points the reset
// vector at it, the conventional cartridge load address for this family of
// emulators.
func (c *Cpu) Load(program []byte) {
	const loadAddr = 0x8000
	c.Mem.Load(program, loadAddr)
	c.Mem.Write16(0xfffc, loadAddr)
}

// Reset restores the Cpu to its post-reset state: registers zeroed, stack
// pointer at the top of the stack page, and PC loaded from the reset
// vector at 0xfffc.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xff

	c.Flags.Negative = false
	c.Flags.Overflow = false
	c.Flags.Unused = true
	c.Flags.B = false
	c.Flags.Decimal = false
	c.Flags.DisableInterrupt = false
	c.Flags.Zero = false
	c.Flags.Carry = false

	c.PC = c.Mem.Read16(0xfffc)
	c.halted = false
}

// Run executes instructions until BRK halts the Cpu or a fault occurs.
func (c *Cpu) Run() error {
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// LoadAndRun loads program at 0x8000, resets, and runs it to completion.
func (c *Cpu) LoadAndRun(program []byte) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}

// IllegalOpcode is returned when the fetched byte has no entry in Opcodes.
// This is always fatal; unlike real silicon (which has documented behavior
// for many "illegal" opcodes), this core treats the unofficial opcode set
// as out of scope.
type IllegalOpcode struct {
	PC     uint16
	Opcode byte
}

func (e *IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode %#02x at pc %#04x", e.Opcode, e.PC)
}

// InvalidCPUState signals an addressing mode misused by an instruction
// handler -- a programming error in the decode table, not a property of the
// program being executed.
type InvalidCPUState struct {
	Reason string
}

func (e *InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// Step executes exactly one instruction: fetch, decode, execute.
func (c *Cpu) Step() error {
	if c.halted {
		return nil
	}

	pc := c.PC
	b := c.Mem.Read8(c.PC)
	op, legal := Opcodes[b]
	if !legal {
		return &IllegalOpcode{PC: pc, Opcode: b}
	}
	c.PC++

	c.decode(op.AddressingMode)
	op.Instruction(c)
	return nil
}

// An AddressingMode tells the resolver where to find the operand for an
// instruction. There are 13 possible modes; most instructions support only
// one or two of them.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand; instruction acts on registers only
	Accumulator                       // operand is the Accumulator itself

	Immediate // operand is the byte following the opcode
	ZeroPage  // operand addresses page 0 (0x0000-0x00ff)
	ZeroPageX
	ZeroPageY // used only by LDX/STX

	IndirectX // (zp,X): pointer built from a zero-page byte offset by X
	IndirectY // (zp),Y: pointer dereferenced first, then offset by Y
	Relative  // signed 8-bit branch displacement

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect // JMP only; carries the documented page-wrap bug
)

// OperandBytes reports how many bytes follow the opcode byte for a given
// addressing mode. The disassembler and assembler both rely on this to
// know how far to advance.
func (a AddressingMode) OperandBytes() int {
	switch a {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 0
}

// decode resolves the effective address (or operand source) for the given
// mode. c.PC is advanced by exactly the mode's operand byte count; no
// register or memory is written here. The resolved operand byte is left in c.M for the
// instruction handler; the resolved address (meaningless for
// Implied/Accumulator) is left in c.AbsAddress.
func (c *Cpu) decode(a AddressingMode) {
	c.mode = a

	switch a {

	case Implied:
		return

	case Accumulator:
		c.M = c.A
		return

	case Immediate:
		c.AbsAddress = c.PC
		c.PC++

	case ZeroPage:
		c.AbsAddress = uint16(c.Mem.Read8(c.PC))
		c.PC++

	case ZeroPageX:
		c.AbsAddress = uint16(c.Mem.Read8(c.PC) + c.X) // byte add wraps within page 0
		c.PC++

	case ZeroPageY:
		c.AbsAddress = uint16(c.Mem.Read8(c.PC) + c.Y)
		c.PC++

	case Relative:
		offset := c.Mem.Read8(c.PC)
		c.PC++
		c.AbsAddress = uint16(int32(c.PC) + int32(mask.SignExtend(offset)))

	case Absolute:
		c.AbsAddress = c.Mem.Read16(c.PC)
		c.PC += 2

	case AbsoluteX:
		c.AbsAddress = c.Mem.Read16(c.PC) + uint16(c.X) // wraps mod 0x10000
		c.PC += 2

	case AbsoluteY:
		c.AbsAddress = c.Mem.Read16(c.PC) + uint16(c.Y)
		c.PC += 2

	case IndirectX:
		ptr := c.Mem.Read8(c.PC) + c.X // byte add wraps within page 0
		c.PC++
		lo := c.Mem.Read8(uint16(ptr))
		hi := c.Mem.Read8(uint16(ptr + 1))
		c.AbsAddress = mask.Word(hi, lo)

	case IndirectY:
		ptr := c.Mem.Read8(c.PC)
		c.PC++
		lo := c.Mem.Read8(uint16(ptr))
		hi := c.Mem.Read8(uint16(ptr + 1))
		c.AbsAddress = mask.Word(hi, lo) + uint16(c.Y) // wraps mod 0x10000

	case Indirect:
		ptrLo := c.Mem.Read8(c.PC)
		c.PC++
		ptrHi := c.Mem.Read8(c.PC)
		c.PC++
		ptr := mask.Word(ptrHi, ptrLo)

		lo := c.Mem.Read8(ptr)
		var hi byte
		if ptrLo == 0xff {
			// Documented hardware bug: the high byte is fetched from the
			// start of the same page rather than the next page.
			// http://www.6502.org/tutorials/6502opcodes.html#JMP
			hi = c.Mem.Read8(ptr & 0xff00)
		} else {
			hi = c.Mem.Read8(ptr + 1)
		}
		c.AbsAddress = mask.Word(hi, lo)
	}

	c.M = c.Mem.Read8(c.AbsAddress)
}

// store writes v back through the location the current addressing mode
// designates: the Accumulator for Accumulator mode, memory otherwise. Every
// read-modify-write instruction (ASL, LSR, ROL, ROR, INC, DEC) and every
// store instruction (STA, STX, STY) funnels through this single place.
func (c *Cpu) store(v byte) {
	if c.mode == Accumulator {
		c.A = v
		return
	}
	c.Mem.Write8(c.AbsAddress, v)
}

// setZN centralizes the Zero/Negative flag update shared by nearly every
// instruction.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// flagsByte packs Flags into the conventional status byte layout.
// breakSet controls bit 4, which only exists in a pushed copy of P -- BRK
// and PHP set it, an interrupt does not.
func (c *Cpu) flagsByte(breakSet bool) byte {
	var p byte
	if c.Flags.Carry {
		p |= 1 << 0
	}
	if c.Flags.Zero {
		p |= 1 << 1
	}
	if c.Flags.DisableInterrupt {
		p |= 1 << 2
	}
	if c.Flags.Decimal {
		p |= 1 << 3
	}
	if breakSet {
		p |= 1 << 4
	}
	p |= 1 << 5 // unused bit always reads as 1
	if c.Flags.Overflow {
		p |= 1 << 6
	}
	if c.Flags.Negative {
		p |= 1 << 7
	}
	return p
}

// setFlagsFromByte unpacks a pulled status byte. B is deliberately left
// untouched: it is not a real persisted flag, only an artifact of pushing P.
// mask positions are 1-indexed from the most significant bit, so N is I1 and
// C is I8.
func (c *Cpu) setFlagsFromByte(p byte) {
	c.Flags.Negative = mask.IsSet(p, mask.I1)
	c.Flags.Overflow = mask.IsSet(p, mask.I2)
	c.Flags.Unused = true
	c.Flags.Decimal = mask.IsSet(p, mask.I5)
	c.Flags.DisableInterrupt = mask.IsSet(p, mask.I6)
	c.Flags.Zero = mask.IsSet(p, mask.I7)
	c.Flags.Carry = mask.IsSet(p, mask.I8)
}

// push writes v at the current stack address and decrements SP.
func (c *Cpu) push(v byte) {
	c.Mem.Write8(0x0100|uint16(c.SP), v)
	c.SP--
}

// pop increments SP and reads the byte now at the stack address.
func (c *Cpu) pop() byte {
	c.SP++
	return c.Mem.Read8(0x0100 | uint16(c.SP))
}

// push16 pushes a word high-byte-first, matching JSR/BRK on real hardware.
func (c *Cpu) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

// pop16 pops a word low-byte-first.
func (c *Cpu) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}
