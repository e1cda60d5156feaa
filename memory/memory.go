// Package memory implements the flat 64 KiB address space the Cpu executes
// against.
//
// There is no mirroring, banking, or memory-mapped I/O here; every one of
// the 65,536 cells is a plain byte, addressable directly. Multiple
// components (the Cpu, a loader, a debugger) hold a pointer to the same
// Memory and read/write through it.
package memory

// A Bank is anything that can be read and written a byte at a time by
// address. The disassembler depends on this interface rather than the
// concrete Memory type, so it can walk a smaller or instrumented backing
// store in tests without a full 64 KiB Cpu behind it.
type Bank interface {
	Read8(addr uint16) byte
	Write8(addr uint16, data byte)
}

// Memory is the 64 KiB flat RAM backing a Cpu.
type Memory struct {
	RAM [64 * 1024]byte // zeroed on construction
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read8 reads a single byte.
func (m *Memory) Read8(addr uint16) byte {
	return m.RAM[addr]
}

// Write8 writes a single byte.
func (m *Memory) Write8(addr uint16, data byte) {
	m.RAM[addr] = data
}

// Read16 reads a little-endian word: the low byte at addr, the high byte at
// addr+1. Reading at 0xffff wraps the high byte around to address 0x0000,
// matching the behavior of the 16-bit address bus as a whole (this is
// distinct from the page-boundary bug in JMP Indirect, which the addressing
// resolver implements on its own).
func (m *Memory) Read16(addr uint16) uint16 {
	lo := m.RAM[addr]
	hi := m.RAM[addr+1] // uint16 addr+1 wraps to 0 when addr is 0xffff
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian word across addr and addr+1.
func (m *Memory) Write16(addr uint16, word uint16) {
	m.RAM[addr] = byte(word)
	m.RAM[addr+1] = byte(word >> 8)
}

// Load copies program into memory starting at addr, overwriting whatever was
// there.
func (m *Memory) Load(program []byte, addr uint16) {
	copy(m.RAM[addr:], program)
}
