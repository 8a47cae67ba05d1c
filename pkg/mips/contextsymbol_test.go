package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoSymbolName_PerSectionPrefix(t *testing.T) {
	assert.Equal(t, "func_80001000", autoSymbolName(SectionText, 0x80001000))
	assert.Equal(t, "D_80001000", autoSymbolName(SectionData, 0x80001000))
	assert.Equal(t, "RO_80001000", autoSymbolName(SectionRodata, 0x80001000))
	assert.Equal(t, "B_80001000", autoSymbolName(SectionBss, 0x80001000))
	assert.Equal(t, "SYM_80001000", autoSymbolName(SectionUnknown, 0x80001000))
}

func TestContextSymbol_UserDeclaredSize(t *testing.T) {
	sym := &ContextSymbol{Vram: 0x80001000}

	assert.False(t, sym.HasUserDeclaredSize())
	assert.Equal(t, uint32(0), sym.GetSize())

	sym.SetUserDeclaredSize(16)
	assert.True(t, sym.HasUserDeclaredSize())
	assert.Equal(t, uint32(16), sym.GetSize())
}

func TestContextSymbol_JumpTableAndLateRodataFlags(t *testing.T) {
	sym := &ContextSymbol{Vram: 0x80001000}

	assert.False(t, sym.IsJumpTable())
	sym.MarkJumpTable()
	assert.True(t, sym.IsJumpTable())

	assert.False(t, sym.IsLateRodata())
	sym.MarkLateRodata()
	assert.True(t, sym.IsLateRodata())
}

func TestContextSymbol_String(t *testing.T) {
	sym := &ContextSymbol{Vram: 0x80001000, Name: "D_80001000", SectionType: SectionData, IsDefined: true}
	assert.Contains(t, sym.String(), "D_80001000")
	assert.Contains(t, sym.String(), "0x80001000")
}
