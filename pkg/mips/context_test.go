package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSymbol_IsIdempotent(t *testing.T) {
	ctx := NewContext()

	first := ctx.AddSymbol(0x80001000, SectionData, true, nil)
	second := ctx.AddSymbol(0x80001000, SectionData, false, nil)

	assert.Same(t, first, second)
	assert.True(t, first.IsAutogenerated, "the first call's flags win, second call is a pure lookup")
}

func TestGetSymbol_ExactMatch(t *testing.T) {
	ctx := NewContext()
	sym := ctx.AddSymbol(0x80001000, SectionData, true, nil)

	found := ctx.GetSymbol(0x80001000, nil, false, false)
	assert.Same(t, sym, found)
}

func TestGetSymbol_NoFallbackWithoutTryPlusOffset(t *testing.T) {
	ctx := NewContext()
	ctx.AddSymbol(0x80001000, SectionData, true, nil)

	assert.Nil(t, ctx.GetSymbol(0x80001004, nil, false, false))
}

func TestGetSymbol_FallsBackToPredecessor(t *testing.T) {
	ctx := NewContext()
	sym := ctx.AddSymbol(0x80001000, SectionData, true, nil)

	found := ctx.GetSymbol(0x80001004, nil, true, false)
	assert.Same(t, sym, found)
}

func TestGetSymbol_CheckUpperLimit_RejectsWithoutDeclaredSize(t *testing.T) {
	ctx := NewContext()
	ctx.AddSymbol(0x80001000, SectionData, true, nil)

	assert.Nil(t, ctx.GetSymbol(0x80001004, nil, true, true))
}

func TestGetSymbol_CheckUpperLimit_AcceptsWithinDeclaredSize(t *testing.T) {
	ctx := NewContext()
	sym := ctx.AddSymbol(0x80001000, SectionData, true, nil)
	sym.SetUserDeclaredSize(16)

	found := ctx.GetSymbol(0x80001004, nil, true, true)
	assert.Same(t, sym, found)

	assert.Nil(t, ctx.GetSymbol(0x80001010, nil, true, true), "offset lands exactly at the declared end, outside the symbol")
}

func TestGetAnySymbol_IgnoresNothingSpecial(t *testing.T) {
	ctx := NewContext()
	sym := ctx.AddSymbol(0x80001000, SectionRodata, true, nil)

	assert.Same(t, sym, ctx.GetAnySymbol(0x80001000))
	assert.Nil(t, ctx.GetAnySymbol(0x80002000))
}

func TestAddJumpTableLabel_MarksNewSymbolsOnly(t *testing.T) {
	ctx := NewContext()

	label := ctx.AddJumpTableLabel(0x80003000, true)
	require.True(t, label.IsJumpTable())

	plain := ctx.AddSymbol(0x80004000, SectionRodata, true, nil)
	assert.False(t, plain.IsJumpTable())

	again := ctx.AddJumpTableLabel(0x80004000, true)
	assert.Same(t, plain, again)
}

func TestPointerInDataQueue_PopOnlyOnce(t *testing.T) {
	ctx := NewContext()
	ctx.EnqueuePointerInData(0x80005000)

	assert.True(t, ctx.PopPointerInData(0x80005000))
	assert.False(t, ctx.PopPointerInData(0x80005000))
}

func TestAllSymbols_ReturnsACopy(t *testing.T) {
	ctx := NewContext()
	ctx.AddSymbol(0x80001000, SectionData, true, nil)

	symbols := ctx.AllSymbols()
	symbols[0] = nil

	assert.NotNil(t, ctx.AllSymbols()[0], "mutating the returned slice must not affect the Context")
}
