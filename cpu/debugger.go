package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea program backing the interactive debugger: a Cpu,
// the program it was given, and enough bookkeeping to render a scrolling
// memory view around the program counter.
type model struct {
	cpu     *Cpu
	program []byte
	offset  uint16

	prevPC uint16
	err    error
}

// Init loads the program at offset and points PC at it. No command is
// returned; the Cpu only steps in response to a keypress.
func (m model) Init() tea.Cmd {
	m.cpu.Mem.Load(m.program, m.offset)
	m.cpu.Mem.Write16(0xfffc, m.offset)
	m.cpu.Reset()
	return nil
}

// Update steps the Cpu one instruction per keypress.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a hex dump, bracketing
// the byte currently at PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.Mem.Read8(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

// status renders registers and flags.
func (m model) status() string {
	var flags string
	for _, set := range []bool{
		m.cpu.Flags.Negative,
		m.cpu.Flags.Overflow,
		m.cpu.Flags.Unused,
		m.cpu.Flags.B,
		m.cpu.Flags.Decimal,
		m.cpu.Flags.DisableInterrupt,
		m.cpu.Flags.Zero,
		m.cpu.Flags.Carry,
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
 M: %02x
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.M,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
	) + flags
}

// pageTable renders 16-byte rows: the first two rows of the zero page, the
// first row of the stack page, and four rows starting at the load offset.
func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	for _, base := range []uint16{
		0x0000, 0x0010, 0x0100, // zero page, stack page
		m.offset,
		m.offset + 16,
		m.offset + 32,
		m.offset + 48,
	} {
		rows = append(rows, m.renderPage(base))
	}
	return strings.Join(rows, "\n")
}

// View renders the full frame: memory table, register/flag status, and a
// dump of the opcode about to execute.
func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("halted: %v\n", m.err)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(Opcodes[m.cpu.Mem.Read8(m.cpu.PC)]),
	)
}

// Debug loads program into memory at offset and starts an interactive
// single-step TUI. Space or 'j' steps one instruction; 'q' quits.
func Debug(program []byte, offset uint16) error {
	c := New()
	final, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
