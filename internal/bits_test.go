package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0), Ones(0))
	assert.Equal(uint32(0x1), Ones(1))
	assert.Equal(uint32(0x7f), Ones(7))
	assert.Equal(uint32(0xffff), Ones(16))
	assert.Equal(uint32(0x3ffff), Ones(18))
	assert.Equal(uint32(0xffffffff), Ones(32))
	assert.Equal(uint32(0xffffffff), Ones(40))
}

func TestCeilLog2(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		N    int
		Bits uint
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3},
		{8, 3}, {14, 4}, {16, 4}, {17, 5}, {32, 5},
	}

	for _, tc := range table {
		assert.Equal(tc.Bits, CeilLog2(tc.N), "n=%d", tc.N)
	}
}
