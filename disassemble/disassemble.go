// Package disassemble renders 6502 machine code as mnemonic/operand text,
// sharing the opcode table the cpu package dispatches from so the two can
// never disagree about what a given byte means.
package disassemble

import (
	"fmt"

	"gone/cpu"
	"gone/mask"
	"gone/memory"
)

// Step decodes the instruction at pc into a human-readable line and reports
// how many bytes it occupies, so a caller can advance pc and disassemble a
// whole image one instruction at a time. An opcode byte with no entry in
// cpu.Opcodes is rendered as a raw .byte directive rather than returned as
// an error -- a disassembler has to make forward progress through a blob
// that may contain data or an unofficial opcode.
func Step(pc uint16, mem memory.Bank) (string, int) {
	b := mem.Read8(pc)
	op, ok := cpu.Opcodes[b]
	if !ok {
		return fmt.Sprintf("%04X  %02X        .BYTE $%02X", pc, b, b), 1
	}

	operand := formatOperand(pc, op.AddressingMode, mem)
	text := op.Name
	if operand != "" {
		text += " " + operand
	}

	length := 1 + op.AddressingMode.OperandBytes()
	raw := fmt.Sprintf("%02X", b)
	for i := 1; i < length; i++ {
		raw += fmt.Sprintf(" %02X", mem.Read8(pc+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-8s  %s", pc, raw, text), length
}

// formatOperand renders the operand text for one instruction in the
// conventional assembler syntax (e.g. "#$05", "$0200,X", "($20),Y").
// Implied mode has no operand text; Accumulator mode renders as "A".
func formatOperand(pc uint16, a cpu.AddressingMode, mem memory.Bank) string {
	switch a {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", mem.Read8(pc+1))
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", mem.Read8(pc+1))
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", mem.Read8(pc+1))
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", mem.Read8(pc+1))
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", mem.Read8(pc+1))
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", mem.Read8(pc+1))
	case cpu.Relative:
		off := mem.Read8(pc + 1)
		target := uint16(int32(pc+2) + int32(mask.SignExtend(off)))
		return fmt.Sprintf("$%02X ; -> $%04X", off, target)
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", mask.Word(mem.Read8(pc+2), mem.Read8(pc+1)))
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", mask.Word(mem.Read8(pc+2), mem.Read8(pc+1)))
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", mask.Word(mem.Read8(pc+2), mem.Read8(pc+1)))
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", mask.Word(mem.Read8(pc+2), mem.Read8(pc+1)))
	}
	return ""
}

// Program disassembles every instruction that starts in [start, end), one
// per line. The final instruction is decoded in full even if its operand
// bytes lie at or past end.
func Program(mem memory.Bank, start, end uint16) []string {
	var lines []string
	for pc := start; pc < end; {
		line, n := Step(pc, mem)
		lines = append(lines, line)
		pc += uint16(n)
	}
	return lines
}
