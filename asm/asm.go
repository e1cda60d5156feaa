// Package asm implements a minimal hand-assembler for the 6502: one
// mnemonic and one mode-tagged operand per line, with a label table for
// forward and backward branches and jumps. It is the inverse of
// disassemble, and deliberately shares cpu.Opcodes so the two packages
// cannot silently drift apart on what a byte means.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"gone/cpu"
)

// AssembleError reports a fatal problem with one line of source.
type AssembleError struct {
	Line int
	Msg  string
}

func (e *AssembleError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// branchMnemonics is the set of instructions whose only legal operand is a
// signed relative displacement -- a bare label on one of these resolves to
// Relative mode, never Absolute.
var branchMnemonics = map[string]bool{
	"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
	"BMI": true, "BPL": true, "BVC": true, "BVS": true,
}

// line is one parsed, not-yet-encoded source line.
type line struct {
	no       int
	label    string // label defined on this line, if any
	mnemonic string // empty for a label-only line
	operand  string // raw, upper-cased, whitespace-stripped operand text
	addr     uint16
	mode     cpu.AddressingMode
	literal  uint16 // resolved operand value, meaningful only if opLabel == ""
	opLabel  string // unresolved label reference in the operand, if any
}

func (l *line) length() int {
	if l.mnemonic == "" {
		return 0
	}
	return 1 + l.mode.OperandBytes()
}

// Assemble turns 6502 assembly source into a loadable binary image. origin
// is the address the first byte of output is assumed to load at; it is
// used only to resolve label references (relative branch displacements and
// absolute jump/load targets), not written into the output itself.
func Assemble(source string, origin uint16) ([]byte, error) {
	lines, labels, err := firstPass(source, origin)
	if err != nil {
		return nil, err
	}
	return secondPass(lines, labels)
}

// firstPass splits the source into lines, resolves each operand's
// addressing mode (but not yet any label's numeric value), and walks
// addresses forward so every label's final address is known before any
// byte is encoded.
func firstPass(source string, origin uint16) ([]*line, map[string]uint16, error) {
	labels := map[string]uint16{}
	var lines []*line
	addr := origin

	for i, raw := range strings.Split(source, "\n") {
		no := i + 1
		text := stripComment(raw)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		label, rest := splitLabel(text)
		l := &line{no: no, label: label, addr: addr}

		if label != "" {
			if _, dup := labels[label]; dup {
				return nil, nil, &AssembleError{no, fmt.Sprintf("duplicate label %q", label)}
			}
			labels[label] = addr
		}

		if rest != "" {
			mnemonic, operand := splitMnemonic(rest)
			mode, literal, opLabel, err := parseOperand(mnemonic, operand)
			if err != nil {
				return nil, nil, &AssembleError{no, err.Error()}
			}
			l.mnemonic, l.operand = mnemonic, operand
			l.mode, l.literal, l.opLabel = mode, literal, opLabel
		}

		lines = append(lines, l)
		addr += uint16(l.length())
	}

	return lines, labels, nil
}

// secondPass resolves label references and encodes every instruction line
// into its final bytes.
func secondPass(lines []*line, labels map[string]uint16) ([]byte, error) {
	var out []byte

	for _, l := range lines {
		if l.mnemonic == "" {
			continue
		}

		literal := l.literal
		if l.opLabel != "" {
			target, ok := labels[l.opLabel]
			if !ok {
				return nil, &AssembleError{l.no, fmt.Sprintf("unresolved label %q", l.opLabel)}
			}
			if l.mode == cpu.Relative {
				disp := int32(target) - int32(l.addr+uint16(l.length()))
				if disp < -128 || disp > 127 {
					return nil, &AssembleError{l.no, fmt.Sprintf("branch to %q out of range (%d bytes)", l.opLabel, disp)}
				}
				literal = uint16(byte(int8(disp)))
			} else {
				literal = target
			}
		}

		opcode, err := findOpcode(l.mnemonic, l.mode)
		if err != nil {
			return nil, &AssembleError{l.no, err.Error()}
		}
		out = append(out, opcode)

		switch l.mode.OperandBytes() {
		case 1:
			out = append(out, byte(literal))
		case 2:
			out = append(out, byte(literal), byte(literal>>8))
		}
	}

	return out, nil
}

// findOpcode picks the single legal opcode byte for mnemonic that uses
// mode, using the Mnemonics index cpu/opcodes.go builds at init time.
func findOpcode(mnemonic string, mode cpu.AddressingMode) (byte, error) {
	for _, b := range cpu.Mnemonics[mnemonic] {
		if cpu.Opcodes[b].AddressingMode == mode {
			return b, nil
		}
	}
	if len(cpu.Mnemonics[mnemonic]) == 0 {
		return 0, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}
	return 0, fmt.Errorf("%s does not support the addressing mode implied by its operand", mnemonic)
}

// stripComment removes a trailing ';' comment, if present.
func stripComment(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return s[:i]
	}
	return s
}

// splitLabel peels "LABEL:" off the front of a line, if present.
func splitLabel(s string) (label, rest string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return "", s
}

// splitMnemonic splits "MNEMONIC operand" into its two upper-cased,
// whitespace-collapsed parts.
func splitMnemonic(s string) (mnemonic, operand string) {
	fields := strings.SplitN(s, " ", 2)
	mnemonic = strings.ToUpper(strings.TrimSpace(fields[0]))
	if len(fields) > 1 {
		operand = strings.ToUpper(strings.Join(strings.Fields(fields[1]), ""))
	}
	return
}

// parseOperand resolves the addressing mode and, where possible, the
// numeric operand value from its mode-tagged text. A bare identifier that
// is not a recognized literal form is treated as a label reference,
// resolved to Relative for branch mnemonics and Absolute for everything
// else (JMP/JSR targets and direct memory references alike).
func parseOperand(mnemonic, text string) (cpu.AddressingMode, uint16, string, error) {
	switch {
	case text == "":
		return cpu.Implied, 0, "", nil

	case text == "A":
		return cpu.Accumulator, 0, "", nil

	case strings.HasPrefix(text, "#$"):
		v, err := parseHex(text[1:])
		if err != nil {
			return 0, 0, "", fmt.Errorf("bad immediate operand %q: %w", text, err)
		}
		return cpu.Immediate, v, "", nil

	case strings.HasPrefix(text, "(") && strings.HasSuffix(text, ",X)"):
		v, err := parseHex(text[1 : len(text)-3])
		if err != nil {
			return 0, 0, "", fmt.Errorf("bad indirect,X operand %q: %w", text, err)
		}
		return cpu.IndirectX, v, "", nil

	case strings.HasPrefix(text, "(") && strings.HasSuffix(text, "),Y"):
		v, err := parseHex(text[1 : len(text)-3])
		if err != nil {
			return 0, 0, "", fmt.Errorf("bad indirect,Y operand %q: %w", text, err)
		}
		return cpu.IndirectY, v, "", nil

	case strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")"):
		v, err := parseHex(text[1 : len(text)-1])
		if err != nil {
			return 0, 0, "", fmt.Errorf("bad indirect operand %q: %w", text, err)
		}
		return cpu.Indirect, v, "", nil

	case branchMnemonics[mnemonic] && strings.HasPrefix(text, "$"):
		// A literal operand on a branch is the raw signed displacement
		// byte, not a memory address -- this is what disassemble emits
		// for the round trip, distinct from the label form below which
		// resolves a displacement from a target address.
		v, err := parseHex(text)
		if err != nil {
			return 0, 0, "", fmt.Errorf("bad branch displacement %q: %w", text, err)
		}
		return cpu.Relative, v & 0xff, "", nil

	case strings.HasPrefix(text, "$"):
		return parseDirect(text)
	}

	if branchMnemonics[mnemonic] {
		return cpu.Relative, 0, text, nil
	}
	return cpu.Absolute, 0, text, nil
}

// parseDirect resolves a "$xx[,X|,Y]" operand into Zero Page or Absolute
// (plain, ,X, or ,Y) based on the number of hex digits given: two digits is
// zero page, four is absolute, matching every assembler in this family.
func parseDirect(text string) (cpu.AddressingMode, uint16, string, error) {
	body, suffix := text, ""
	switch {
	case strings.HasSuffix(body, ",X"):
		suffix, body = "X", strings.TrimSuffix(body, ",X")
	case strings.HasSuffix(body, ",Y"):
		suffix, body = "Y", strings.TrimSuffix(body, ",Y")
	}

	digits := strings.TrimPrefix(body, "$")
	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad hex operand %q: %w", text, err)
	}
	zp := len(digits) <= 2

	switch suffix {
	case "":
		if zp {
			return cpu.ZeroPage, uint16(v), "", nil
		}
		return cpu.Absolute, uint16(v), "", nil
	case "X":
		if zp {
			return cpu.ZeroPageX, uint16(v), "", nil
		}
		return cpu.AbsoluteX, uint16(v), "", nil
	default: // "Y"
		if zp {
			return cpu.ZeroPageY, uint16(v), "", nil
		}
		return cpu.AbsoluteY, uint16(v), "", nil
	}
}

func parseHex(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	v, err := strconv.ParseUint(s, 16, 16)
	return uint16(v), err
}
