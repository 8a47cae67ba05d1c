package context

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSymbolAddrs_ParsesEntries(t *testing.T) {
	input := `
- vram: 0x80001000
  name: D_80001000
  size: 16
  type: s32
  section: .data
- vram: 0x80002000
  name: RO_80002000
`
	entries, err := LoadSymbolAddrs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, uint32(0x80001000), entries[0].Vram)
	assert.Equal(t, "D_80001000", entries[0].Name)
	require.NotNil(t, entries[0].Size)
	assert.Equal(t, uint32(16), *entries[0].Size)
	assert.Equal(t, "s32", entries[0].Type)

	assert.Equal(t, uint32(0x80002000), entries[1].Vram)
	assert.Nil(t, entries[1].Size)
}

func TestLoadSymbolAddrsLegacy_ParsesFlatMap(t *testing.T) {
	input := "D_80001000: 0x80001000\nfunc_80002000: 0x80002000\n"

	entries, err := LoadSymbolAddrsLegacy(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, uint32(0x80001000), entries[0].Vram)
	assert.Equal(t, uint32(0x80002000), entries[1].Vram)
	assert.True(t, entries[0].Vram < entries[1].Vram, "legacy entries are returned sorted by vram")
}

func TestApplySymbolAddrs_SeedsContext(t *testing.T) {
	ctx := mips.NewContext()
	entries := []SymbolAddrEntry{
		{Vram: 0x80001000, Name: "D_80001000", Section: ".data"},
	}

	ApplySymbolAddrs(ctx, entries)

	sym := ctx.GetAnySymbol(0x80001000)
	require.NotNil(t, sym)
	assert.Equal(t, "D_80001000", sym.Name)
	assert.True(t, sym.IsDefined)
	assert.Equal(t, mips.SectionData, sym.SectionType)
}

func TestApplySymbolAddrs_IsIdempotentWithAddSymbol(t *testing.T) {
	ctx := mips.NewContext()
	entries := []SymbolAddrEntry{{Vram: 0x80001000, Name: "D_80001000"}}

	ApplySymbolAddrs(ctx, entries)
	ApplySymbolAddrs(ctx, entries)

	assert.Len(t, ctx.AllSymbols(), 1)
}

func TestDumpSymbolAddrs_RoundTrips(t *testing.T) {
	ctx := mips.NewContext()
	sym := ctx.AddSymbol(0x80001000, mips.SectionData, false, nil)
	sym.Name = "D_80001000"
	sym.SetUserDeclaredSize(8)

	var buf bytes.Buffer
	require.NoError(t, DumpSymbolAddrs(&buf, ctx))

	entries, err := LoadSymbolAddrs(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "D_80001000", entries[0].Name)
	require.NotNil(t, entries[0].Size)
	assert.Equal(t, uint32(8), *entries[0].Size)
}
