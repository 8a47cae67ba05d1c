package mips

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol_Analyze_JumpTableTakesPriority(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "jtbl_80001000"}
	ctxSym.MarkJumpTable()

	sym := NewSymbolRodata(ctxSym, []Word{1, 2}, 0, true, 0x80001000, 0, 8, 0, "", "ASCII")
	sym.Analyze()

	assert.Equal(t, KindJumpTable, sym.Kind)
	assert.True(t, sym.IsJumpTable())
}

func TestSymbol_Analyze_DoubleUserType(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000", UserType: "f64"}

	sym := NewSymbolData(ctxSym, []Word{0, 0}, 0, true, 0x80001000, 0, 8, 0, "", "ASCII")
	sym.Analyze()

	assert.Equal(t, KindDouble, sym.Kind)
	assert.True(t, sym.IsDouble(0))
	assert.False(t, sym.IsDouble(1))
}

func TestSymbol_Analyze_StringTakesPriorityOverArray(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000", IsMaybeString: true}

	sym := NewSymbolData(ctxSym, []Word{0x68690000}, 0, true, 0x80001000, 0, 4, 0, "", "ASCII")
	sym.Analyze()

	assert.Equal(t, KindString, sym.Kind)
}

func TestSymbol_Analyze_SingleWordIsScalar(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000"}

	sym := NewSymbolData(ctxSym, []Word{0x42}, 0, true, 0x80001000, 0, 4, 0, "", "ASCII")
	sym.Analyze()

	assert.Equal(t, KindScalar, sym.Kind)
}

func TestSymbol_Analyze_MultipleWordsWithoutHintsIsArray(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000"}

	sym := NewSymbolData(ctxSym, []Word{1, 2, 3}, 0, true, 0x80001000, 0, 12, 0, "", "ASCII")
	sym.Analyze()

	assert.Equal(t, KindArray, sym.Kind)
}

func TestSymbol_CountExtraPadding(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000"}
	sym := NewSymbolData(ctxSym, []Word{1, 0, 0, 0}, 0, true, 0x80001000, 0, 16, 0, "", "ASCII")

	assert.Equal(t, 3, sym.CountExtraPadding())
}

func TestSymbol_CountExtraPadding_AllZeroReportsLenMinusOne(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000"}
	sym := NewSymbolData(ctxSym, []Word{0, 0, 0}, 0, true, 0x80001000, 0, 12, 0, "", "ASCII")

	assert.Equal(t, 2, sym.CountExtraPadding())
}

func TestSymbol_Disassemble_EmitsLabelAndWords(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000"}
	sym := NewSymbolData(ctxSym, []Word{0xDEADBEEF}, 0, true, 0x80001000, 0, 4, 0, "", "ASCII")
	sym.Analyze()

	text := sym.Disassemble("\n")
	require.True(t, strings.HasPrefix(text, "D_80001000:\n"))
	assert.Contains(t, text, "0xDEADBEEF")
}

func TestSymbol_Disassemble_String(t *testing.T) {
	ctxSym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000", IsMaybeString: true}
	words := BytesToWords([]byte("hi\x00\x00"), EndianBig)
	sym := NewSymbolData(ctxSym, words, 0, true, 0x80001000, 0, 4, 0, "", "ASCII")
	sym.Analyze()

	text := sym.Disassemble("\n")
	assert.Contains(t, text, `.ascii "hi"`)
}
