package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinOf(t *testing.T) {
	assert.Equal(t, 3, minOf(3, 7))
	assert.Equal(t, 3, minOf(7, 3))
	assert.Equal(t, uint32(2), minOf(uint32(2), uint32(2)))
}
