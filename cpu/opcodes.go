package cpu

// An Opcode associates a single byte value (0x00-0xff) with the addressing
// mode it uses and the instruction it dispatches to. 151 of the 256
// possible byte values are legal; they map onto 56 distinct mnemonics, each
// of which may appear several times here under a different addressing mode.
type Opcode struct {
	AddressingMode AddressingMode
	Instruction    func(c *Cpu)
	Name           string // mnemonic, used by the disassembler, assembler, and debugger
}

// Opcodes is the dense decode table driving Step. Every legal 6502 opcode
// byte has exactly one entry; a byte with no entry is an IllegalOpcode.
//
// http://www.6502.org/tutorials/6502opcodes.html
var Opcodes = map[byte]Opcode{
	0x69: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: Immediate},
	0x65: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: ZeroPage},
	0x75: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: ZeroPageX},
	0x6D: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: Absolute},
	0x7D: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: AbsoluteX},
	0x79: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: AbsoluteY},
	0x61: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: IndirectX},
	0x71: {Instruction: (*Cpu).ADC, Name: "ADC", AddressingMode: IndirectY},

	0x29: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: Immediate},
	0x25: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: ZeroPage},
	0x35: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: ZeroPageX},
	0x2D: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: Absolute},
	0x3D: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: AbsoluteX},
	0x39: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: AbsoluteY},
	0x21: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: IndirectX},
	0x31: {Instruction: (*Cpu).AND, Name: "AND", AddressingMode: IndirectY},

	0x0A: {Instruction: (*Cpu).ASL, Name: "ASL", AddressingMode: Accumulator},
	0x06: {Instruction: (*Cpu).ASL, Name: "ASL", AddressingMode: ZeroPage},
	0x16: {Instruction: (*Cpu).ASL, Name: "ASL", AddressingMode: ZeroPageX},
	0x0E: {Instruction: (*Cpu).ASL, Name: "ASL", AddressingMode: Absolute},
	0x1E: {Instruction: (*Cpu).ASL, Name: "ASL", AddressingMode: AbsoluteX},

	0x24: {Instruction: (*Cpu).BIT, Name: "BIT", AddressingMode: ZeroPage},
	0x2C: {Instruction: (*Cpu).BIT, Name: "BIT", AddressingMode: Absolute},

	0x00: {Instruction: (*Cpu).BRK, Name: "BRK", AddressingMode: Implied},

	0xC9: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: Immediate},
	0xC5: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: ZeroPage},
	0xD5: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: ZeroPageX},
	0xCD: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: Absolute},
	0xDD: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: AbsoluteX},
	0xD9: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: AbsoluteY},
	0xC1: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: IndirectX},
	0xD1: {Instruction: (*Cpu).CMP, Name: "CMP", AddressingMode: IndirectY},

	0xE0: {Instruction: (*Cpu).CPX, Name: "CPX", AddressingMode: Immediate},
	0xE4: {Instruction: (*Cpu).CPX, Name: "CPX", AddressingMode: ZeroPage},
	0xEC: {Instruction: (*Cpu).CPX, Name: "CPX", AddressingMode: Absolute},

	0xC0: {Instruction: (*Cpu).CPY, Name: "CPY", AddressingMode: Immediate},
	0xC4: {Instruction: (*Cpu).CPY, Name: "CPY", AddressingMode: ZeroPage},
	0xCC: {Instruction: (*Cpu).CPY, Name: "CPY", AddressingMode: Absolute},

	0xC6: {Instruction: (*Cpu).DEC, Name: "DEC", AddressingMode: ZeroPage},
	0xD6: {Instruction: (*Cpu).DEC, Name: "DEC", AddressingMode: ZeroPageX},
	0xCE: {Instruction: (*Cpu).DEC, Name: "DEC", AddressingMode: Absolute},
	0xDE: {Instruction: (*Cpu).DEC, Name: "DEC", AddressingMode: AbsoluteX},

	0x49: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: Immediate},
	0x45: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: ZeroPage},
	0x55: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: ZeroPageX},
	0x4D: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: Absolute},
	0x5D: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: AbsoluteX},
	0x59: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: AbsoluteY},
	0x41: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: IndirectX},
	0x51: {Instruction: (*Cpu).EOR, Name: "EOR", AddressingMode: IndirectY},

	0xE6: {Instruction: (*Cpu).INC, Name: "INC", AddressingMode: ZeroPage},
	0xF6: {Instruction: (*Cpu).INC, Name: "INC", AddressingMode: ZeroPageX},
	0xEE: {Instruction: (*Cpu).INC, Name: "INC", AddressingMode: Absolute},
	0xFE: {Instruction: (*Cpu).INC, Name: "INC", AddressingMode: AbsoluteX},

	0x4C: {Instruction: (*Cpu).JMP, Name: "JMP", AddressingMode: Absolute},
	0x6C: {Instruction: (*Cpu).JMP, Name: "JMP", AddressingMode: Indirect},

	0x20: {Instruction: (*Cpu).JSR, Name: "JSR", AddressingMode: Absolute},

	0xA9: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: Immediate},
	0xA5: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: ZeroPage},
	0xB5: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: ZeroPageX},
	0xAD: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: Absolute},
	0xBD: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: AbsoluteX},
	0xB9: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: AbsoluteY},
	0xA1: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: IndirectX},
	0xB1: {Instruction: (*Cpu).LDA, Name: "LDA", AddressingMode: IndirectY},

	0xA2: {Instruction: (*Cpu).LDX, Name: "LDX", AddressingMode: Immediate},
	0xA6: {Instruction: (*Cpu).LDX, Name: "LDX", AddressingMode: ZeroPage},
	0xB6: {Instruction: (*Cpu).LDX, Name: "LDX", AddressingMode: ZeroPageY},
	0xAE: {Instruction: (*Cpu).LDX, Name: "LDX", AddressingMode: Absolute},
	0xBE: {Instruction: (*Cpu).LDX, Name: "LDX", AddressingMode: AbsoluteY},

	0xA0: {Instruction: (*Cpu).LDY, Name: "LDY", AddressingMode: Immediate},
	0xA4: {Instruction: (*Cpu).LDY, Name: "LDY", AddressingMode: ZeroPage},
	0xB4: {Instruction: (*Cpu).LDY, Name: "LDY", AddressingMode: ZeroPageX},
	0xAC: {Instruction: (*Cpu).LDY, Name: "LDY", AddressingMode: Absolute},
	0xBC: {Instruction: (*Cpu).LDY, Name: "LDY", AddressingMode: AbsoluteX},

	0x4A: {Instruction: (*Cpu).LSR, Name: "LSR", AddressingMode: Accumulator},
	0x46: {Instruction: (*Cpu).LSR, Name: "LSR", AddressingMode: ZeroPage},
	0x56: {Instruction: (*Cpu).LSR, Name: "LSR", AddressingMode: ZeroPageX},
	0x4E: {Instruction: (*Cpu).LSR, Name: "LSR", AddressingMode: Absolute},
	0x5E: {Instruction: (*Cpu).LSR, Name: "LSR", AddressingMode: AbsoluteX},

	0xEA: {Instruction: (*Cpu).NOP, Name: "NOP", AddressingMode: Implied},

	0x09: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: Immediate},
	0x05: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: ZeroPage},
	0x15: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: ZeroPageX},
	0x0D: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: Absolute},
	0x1D: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: AbsoluteX},
	0x19: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: AbsoluteY},
	0x01: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: IndirectX},
	0x11: {Instruction: (*Cpu).ORA, Name: "ORA", AddressingMode: IndirectY},

	0x2A: {Instruction: (*Cpu).ROL, Name: "ROL", AddressingMode: Accumulator},
	0x26: {Instruction: (*Cpu).ROL, Name: "ROL", AddressingMode: ZeroPage},
	0x36: {Instruction: (*Cpu).ROL, Name: "ROL", AddressingMode: ZeroPageX},
	0x2E: {Instruction: (*Cpu).ROL, Name: "ROL", AddressingMode: Absolute},
	0x3E: {Instruction: (*Cpu).ROL, Name: "ROL", AddressingMode: AbsoluteX},

	0x6A: {Instruction: (*Cpu).ROR, Name: "ROR", AddressingMode: Accumulator},
	0x66: {Instruction: (*Cpu).ROR, Name: "ROR", AddressingMode: ZeroPage},
	0x76: {Instruction: (*Cpu).ROR, Name: "ROR", AddressingMode: ZeroPageX},
	0x6E: {Instruction: (*Cpu).ROR, Name: "ROR", AddressingMode: Absolute},
	0x7E: {Instruction: (*Cpu).ROR, Name: "ROR", AddressingMode: AbsoluteX},

	0x40: {Instruction: (*Cpu).RTI, Name: "RTI", AddressingMode: Implied},
	0x60: {Instruction: (*Cpu).RTS, Name: "RTS", AddressingMode: Implied},

	0xE9: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: Immediate},
	0xE5: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: ZeroPage},
	0xF5: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: ZeroPageX},
	0xED: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: Absolute},
	0xFD: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: AbsoluteX},
	0xF9: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: AbsoluteY},
	0xE1: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: IndirectX},
	0xF1: {Instruction: (*Cpu).SBC, Name: "SBC", AddressingMode: IndirectY},

	0x85: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: ZeroPage},
	0x95: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: ZeroPageX},
	0x8D: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: Absolute},
	0x9D: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: AbsoluteX},
	0x99: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: AbsoluteY},
	0x81: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: IndirectX},
	0x91: {Instruction: (*Cpu).STA, Name: "STA", AddressingMode: IndirectY},

	0x86: {Instruction: (*Cpu).STX, Name: "STX", AddressingMode: ZeroPage},
	0x96: {Instruction: (*Cpu).STX, Name: "STX", AddressingMode: ZeroPageY},
	0x8E: {Instruction: (*Cpu).STX, Name: "STX", AddressingMode: Absolute},

	0x84: {Instruction: (*Cpu).STY, Name: "STY", AddressingMode: ZeroPage},
	0x94: {Instruction: (*Cpu).STY, Name: "STY", AddressingMode: ZeroPageX},
	0x8C: {Instruction: (*Cpu).STY, Name: "STY", AddressingMode: Absolute},

	// clear, set
	0x18: {Instruction: (*Cpu).CLC, Name: "CLC", AddressingMode: Implied},
	0x38: {Instruction: (*Cpu).SEC, Name: "SEC", AddressingMode: Implied},
	0x58: {Instruction: (*Cpu).CLI, Name: "CLI", AddressingMode: Implied},
	0x78: {Instruction: (*Cpu).SEI, Name: "SEI", AddressingMode: Implied},
	0xB8: {Instruction: (*Cpu).CLV, Name: "CLV", AddressingMode: Implied},
	0xD8: {Instruction: (*Cpu).CLD, Name: "CLD", AddressingMode: Implied},
	0xF8: {Instruction: (*Cpu).SED, Name: "SED", AddressingMode: Implied},

	// increment, decrement, transfer
	0xAA: {Instruction: (*Cpu).TAX, Name: "TAX", AddressingMode: Implied},
	0x8A: {Instruction: (*Cpu).TXA, Name: "TXA", AddressingMode: Implied},
	0xCA: {Instruction: (*Cpu).DEX, Name: "DEX", AddressingMode: Implied},
	0xE8: {Instruction: (*Cpu).INX, Name: "INX", AddressingMode: Implied},
	0xA8: {Instruction: (*Cpu).TAY, Name: "TAY", AddressingMode: Implied},
	0x98: {Instruction: (*Cpu).TYA, Name: "TYA", AddressingMode: Implied},
	0x88: {Instruction: (*Cpu).DEY, Name: "DEY", AddressingMode: Implied},
	0xC8: {Instruction: (*Cpu).INY, Name: "INY", AddressingMode: Implied},

	// branch
	0x10: {Instruction: (*Cpu).BPL, Name: "BPL", AddressingMode: Relative},
	0x30: {Instruction: (*Cpu).BMI, Name: "BMI", AddressingMode: Relative},
	0x50: {Instruction: (*Cpu).BVC, Name: "BVC", AddressingMode: Relative},
	0x70: {Instruction: (*Cpu).BVS, Name: "BVS", AddressingMode: Relative},
	0x90: {Instruction: (*Cpu).BCC, Name: "BCC", AddressingMode: Relative},
	0xB0: {Instruction: (*Cpu).BCS, Name: "BCS", AddressingMode: Relative},
	0xD0: {Instruction: (*Cpu).BNE, Name: "BNE", AddressingMode: Relative},
	0xF0: {Instruction: (*Cpu).BEQ, Name: "BEQ", AddressingMode: Relative},

	// stack
	0x9A: {Instruction: (*Cpu).TXS, Name: "TXS", AddressingMode: Implied},
	0xBA: {Instruction: (*Cpu).TSX, Name: "TSX", AddressingMode: Implied},
	0x48: {Instruction: (*Cpu).PHA, Name: "PHA", AddressingMode: Implied},
	0x68: {Instruction: (*Cpu).PLA, Name: "PLA", AddressingMode: Implied},
	0x08: {Instruction: (*Cpu).PHP, Name: "PHP", AddressingMode: Implied},
	0x28: {Instruction: (*Cpu).PLP, Name: "PLP", AddressingMode: Implied},
}

// Mnemonics maps each mnemonic to the set of opcode bytes that implement it,
// built once at init time. The assembler uses this to pick the byte whose
// AddressingMode matches the operand it parsed.
var Mnemonics = func() map[string][]byte {
	m := map[string][]byte{}
	for b, op := range Opcodes {
		m[op.Name] = append(m[op.Name], b)
	}
	return m
}()
