package cpu

import (
	"testing"

	deep "github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarios mirrors the documented concrete programs a correct core must
// reproduce exactly: every row loads a short program at 0x8000, runs it to
// BRK, and asserts the resulting register/flag state.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name    string
		program []byte
		preload map[uint16]byte
		check   func(t *testing.T, c *Cpu)
	}{
		{
			name:    "LDA immediate sets A, clears Z and N",
			program: []byte{0xA9, 0x05, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0x05), c.A)
				assert.False(t, c.Flags.Zero)
				assert.False(t, c.Flags.Negative)
			},
		},
		{
			name:    "LDA zero sets Z",
			program: []byte{0xA9, 0x00, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0x00), c.A)
				assert.True(t, c.Flags.Zero)
			},
		},
		{
			name:    "INX wraps through 0xff back to 0x01",
			program: []byte{0xA9, 0xFF, 0xAA, 0xE8, 0xE8, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0x01), c.X)
			},
		},
		{
			name:    "ADC 0x50+0x50+carry overflows into negative",
			program: []byte{0x38, 0xA9, 0x50, 0x69, 0x50, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0xA1), c.A)
				assert.True(t, c.Flags.Overflow)
				assert.True(t, c.Flags.Negative)
				assert.False(t, c.Flags.Carry)
			},
		},
		{
			name:    "ADC 0x50+0xd0+carry sets carry, no overflow",
			program: []byte{0x38, 0xA9, 0x50, 0x69, 0xD0, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0x21), c.A)
				assert.True(t, c.Flags.Carry)
				assert.False(t, c.Flags.Overflow)
			},
		},
		{
			name:    "BIT reads N/V from memory, Z from the AND",
			program: []byte{0xA9, 0x80, 0x2C, 0x00, 0x00, 0x00},
			preload: map[uint16]byte{0x0000: 0x40},
			check: func(t *testing.T, c *Cpu) {
				assert.True(t, c.Flags.Overflow)
				assert.False(t, c.Flags.Negative)
				assert.True(t, c.Flags.Zero) // 0x80 AND 0x40 == 0
			},
		},
		{
			name:    "BCC taken skips two INX",
			program: []byte{0x90, 0x02, 0xE8, 0xE8, 0xE8, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0x01), c.X)
			},
		},
		{
			name:    "BCC not taken runs every INX",
			program: []byte{0x38, 0x90, 0x02, 0xE8, 0xE8, 0xE8, 0x00},
			check: func(t *testing.T, c *Cpu) {
				assert.Equal(t, byte(0x03), c.X)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			for addr, b := range tc.preload {
				c.MemWrite(addr, b)
			}
			require.NoError(t, c.LoadAndRun(tc.program))
			tc.check(t, c)
		})
	}
}

// PHA/PHA leaves two bytes on the stack and SP sitting one below both of
// them, independent of whatever BRK does afterward.
func TestStackPush(t *testing.T) {
	c := New()
	c.Load([]byte{0xA9, 0x50, 0x48, 0xA9, 0x05, 0x48, 0x00})
	c.Reset()

	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step())
	}

	assert.Equal(t, byte(0x50), c.MemRead(0x01FF))
	assert.Equal(t, byte(0x05), c.MemRead(0x01FE))
	assert.Equal(t, byte(0xFD), c.SP)
}

// PHA then PLA must restore A and leave SP where it started.
func TestStackPushPullRoundTrip(t *testing.T) {
	c := New()
	// LDA #$42 ; PHA ; LDA #$00 ; PLA
	c.Load([]byte{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68, 0x00})
	c.Reset()

	spBefore := c.SP
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step())
	}

	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, spBefore, c.SP)
	assert.False(t, c.Flags.Zero)
}

// TXS copies X into SP directly, with no flag side effects.
func TestTXSSetsStackPointer(t *testing.T) {
	c := New()
	c.Load([]byte{0xA2, 0x50, 0x9A, 0x00})
	c.Reset()

	require.NoError(t, c.Step()) // LDX #$50
	require.NoError(t, c.Step()) // TXS

	assert.Equal(t, byte(0x50), c.SP)
}

func TestIllegalOpcodeHalts(t *testing.T) {
	c := New()
	c.Load([]byte{0x02}) // not a legal opcode
	c.Reset()

	err := c.Step()
	require.Error(t, err)
	var illegal *IllegalOpcode
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, byte(0x02), illegal.Opcode)
}

// JSR/RTS must round-trip to the instruction immediately following the
// call, with the stack back where it started.
func TestJSRRTSRoundTrip(t *testing.T) {
	c := New()
	// JSR $8005 ; BRK ; (pad) ; RTS
	c.Load([]byte{0x20, 0x05, 0x80, 0x00, 0x00, 0x60})
	c.Reset()

	before := snapshot(c)
	require.NoError(t, c.Step()) // JSR
	assert.Equal(t, uint16(0x8005), c.PC)
	require.NoError(t, c.Step()) // RTS
	assert.Equal(t, uint16(0x8003), c.PC)

	after := snapshot(c)
	if diff := deep.Equal(before, after); diff != nil {
		t.Errorf("register/stack state should be unchanged by a JSR/RTS round trip: %v", diff)
	}
}

// snapshot captures everything a JSR/RTS round trip must restore, for use
// with go-test/deep's richer diff output on mismatch.
type regSnapshot struct {
	A, X, Y, SP byte
}

func snapshot(c *Cpu) regSnapshot {
	return regSnapshot{A: c.A, X: c.X, Y: c.Y, SP: c.SP}
}

func TestResetVectorAndLoadAddress(t *testing.T) {
	c := New()
	c.Load([]byte{0xEA})
	assert.Equal(t, byte(0xEA), c.MemRead(0x8000))
	assert.Equal(t, uint16(0x8000), c.Mem.Read16(0xfffc))

	c.Reset()
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0xff), c.SP)
	assert.True(t, c.Flags.Unused)
}
