package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToWords_BigEndian(t *testing.T) {
	words := BytesToWords([]byte{0x01, 0x02, 0x03, 0x04}, EndianBig)
	require.Len(t, words, 1)
	assert.Equal(t, Word(0x01020304), words[0])
}

func TestBytesToWords_Default_MatchesBigEndian(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	assert.Equal(t, BytesToWords(data, EndianBig), BytesToWords(data, EndianDefault))
}

func TestBytesToWords_LittleEndian(t *testing.T) {
	words := BytesToWords([]byte{0x01, 0x02, 0x03, 0x04}, EndianLittle)
	require.Len(t, words, 1)
	assert.Equal(t, Word(0x04030201), words[0])
}

func TestBytesToWords_MiddleEndian_SwapsHalves(t *testing.T) {
	words := BytesToWords([]byte{0x01, 0x02, 0x03, 0x04}, EndianMiddle)
	require.Len(t, words, 1)
	assert.Equal(t, Word(0x03040102), words[0])
}

func TestBytesToWords_DropsTrailingPartialWord(t *testing.T) {
	words := BytesToWords([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, EndianBig)
	assert.Len(t, words, 1)
}

func TestWordsToBEBytes_RoundTrips(t *testing.T) {
	original := []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x01, 0x02, 0x03}
	words := BytesToWords(original, EndianBig)
	assert.Equal(t, original, WordsToBEBytes(words))
}

func TestHash_DeterministicAndSensitiveToContent(t *testing.T) {
	a := Hash([]Word{1, 2, 3})
	b := Hash([]Word{1, 2, 3})
	c := Hash([]Word{1, 2, 4})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
