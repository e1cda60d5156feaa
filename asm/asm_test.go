package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gone/cpu"
)

func TestAssembleLiteralOperands(t *testing.T) {
	src := `
LDA #$05
STA $0200
STA $0200,X
LDX #$00
STX $10
ASL A
`
	out, err := Assemble(src, 0x8000)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xA9, 0x05, // LDA #$05
		0x8D, 0x00, 0x02, // STA $0200
		0x9D, 0x00, 0x02, // STA $0200,X
		0xA2, 0x00, // LDX #$00
		0x86, 0x10, // STX $10
		0x0A, // ASL A
	}, out)
}

func TestAssembleForwardBranchLabel(t *testing.T) {
	src := `
	BCC SKIP
	INX
	INX
SKIP:
	BRK
`
	out, err := Assemble(src, 0x8000)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x90, 0x02, 0xE8, 0xE8, 0x00}, out)
}

func TestAssembleBackwardBranchLabel(t *testing.T) {
	src := `
LOOP:
	INX
	BNE LOOP
	BRK
`
	out, err := Assemble(src, 0x8000)
	require.NoError(t, err)
	// INX (1 byte) at $8000, BNE (2 bytes) at $8001 targeting $8000: the
	// displacement is measured from the byte after BNE's operand ($8003).
	assert.Equal(t, []byte{0xE8, 0xD0, 0xFD, 0x00}, out)
}

func TestAssembleJSRToLabel(t *testing.T) {
	src := `
	JSR SUB
	BRK
SUB:
	RTS
`
	out, err := Assemble(src, 0x8000)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x04, 0x80, 0x00, 0x60}, out)
}

func TestAssembleUnresolvedLabelIsFatal(t *testing.T) {
	_, err := Assemble("JMP NOWHERE\n", 0x8000)
	require.Error(t, err)
	var ae *AssembleError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 1, ae.Line)
}

func TestAssembleUnsupportedModeIsFatal(t *testing.T) {
	// STY has no Indirect,X form.
	_, err := Assemble("STY ($10,X)\n", 0x8000)
	require.Error(t, err)
}

func TestAssembledProgramRunsOnCpu(t *testing.T) {
	src := "LDA #$05\nSTA $0200\nBRK\n"
	bytes, err := Assemble(src, 0x8000)
	require.NoError(t, err)

	c := cpu.New()
	require.NoError(t, c.LoadAndRun(bytes))
	assert.Equal(t, byte(0x05), c.A)
	assert.Equal(t, byte(0x05), c.MemRead(0x0200))
}
