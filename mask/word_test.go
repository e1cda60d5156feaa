package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Word(0x12, 0x34))
	assert.Equal(t, byte(0x34), Lo(0x1234))
	assert.Equal(t, byte(0x12), Hi(0x1234))
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int16(1), SignExtend(0x01))
	assert.Equal(t, int16(-1), SignExtend(0xFF))
	assert.Equal(t, int16(-128), SignExtend(0x80))
	assert.Equal(t, int16(127), SignExtend(0x7F))
}
