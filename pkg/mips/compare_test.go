package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_EqualWords(t *testing.T) {
	result := Compare([]Word{1, 2, 3}, []Word{1, 2, 3})

	assert.True(t, result.Equal)
	assert.Equal(t, result.HashOne, result.HashTwo)
	assert.Equal(t, 0, result.DiffBytes)
	assert.Equal(t, 0, result.DiffWords)
}

func TestCompare_DifferingWords_CountsAllMismatchesInCommonPrefix(t *testing.T) {
	result := Compare([]Word{1, 2, 3}, []Word{1, 9, 8})

	assert.False(t, result.Equal)
	assert.Equal(t, 2, result.DiffWords)
	assert.Equal(t, 2, result.DiffBytes)
}

func TestCompare_SingleMismatch_CountsOneWordAndItsDifferingBytes(t *testing.T) {
	result := Compare([]Word{1, 2, 3}, []Word{1, 0x00000909, 3})

	assert.False(t, result.Equal)
	assert.Equal(t, 1, result.DiffWords)
	assert.Equal(t, 2, result.DiffBytes)
}

func TestCompare_DifferentSizes_AreNeverEqual(t *testing.T) {
	result := Compare([]Word{1, 2, 3}, []Word{1, 2})

	assert.False(t, result.Equal)
	assert.Equal(t, 12, result.SizeOne)
	assert.Equal(t, 8, result.SizeTwo)
}

func TestCompare_HashesAreDeterministic(t *testing.T) {
	one := Compare([]Word{1, 2}, []Word{1, 2})
	two := Compare([]Word{1, 2}, []Word{1, 2})

	assert.Equal(t, one.HashOne, two.HashOne)
}
