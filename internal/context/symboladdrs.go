// Package context loads and dumps the user-authored symbol address table
// that seeds a mips.Context before analysis (spec.md §4.8, supplemented
// from original_source since spec.md itself is silent on file formats).
package context

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Manu343726/spimgo/pkg/mips"
	yamlv2 "gopkg.in/yaml.v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// SymbolAddrEntry is one user-declared binding: an address, a name, and
// optional size/type/section hints.
type SymbolAddrEntry struct {
	Vram    uint32 `yaml:"vram"`
	Name    string `yaml:"name"`
	Size    *uint32 `yaml:"size,omitempty"`
	Type    string  `yaml:"type,omitempty"`
	Section string  `yaml:"section,omitempty"`
}

// LoadSymbolAddrs parses the current YAML list dialect: a sequence of
// `{vram, name, size?, type?, section?}` entries.
func LoadSymbolAddrs(r io.Reader) ([]SymbolAddrEntry, error) {
	var entries []SymbolAddrEntry
	if err := yamlv3.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding symbol-addrs yaml: %w", err)
	}
	return entries, nil
}

// LoadSymbolAddrsLegacy parses the older splat-style dialect: a flat map
// of symbol name to a "0x..." hex address string. Decoded with yaml.v2
// because that dialect relies on yaml.v2's looser scalar coercion.
func LoadSymbolAddrsLegacy(r io.Reader) ([]SymbolAddrEntry, error) {
	var raw map[string]string
	if err := yamlv2.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding legacy symbol-addrs yaml: %w", err)
	}

	entries := make([]SymbolAddrEntry, 0, len(raw))
	for name, hexAddr := range raw {
		vram, err := parseHexVram(hexAddr)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", name, err)
		}
		entries = append(entries, SymbolAddrEntry{Vram: vram, Name: name})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Vram < entries[j].Vram })
	return entries, nil
}

func parseHexVram(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing address %q: %w", s, err)
	}
	return uint32(v), nil
}

// ApplySymbolAddrs seeds ctx with every entry, via AddSymbol, which is
// idempotent (spec.md §3) so re-applying the same table is a no-op.
func ApplySymbolAddrs(ctx *mips.Context, entries []SymbolAddrEntry) {
	for _, entry := range entries {
		sectionType := parseSectionName(entry.Section)

		sym := ctx.AddSymbol(entry.Vram, sectionType, false, nil)
		sym.Name = entry.Name
		sym.IsDefined = true

		if entry.Size != nil {
			sym.SetUserDeclaredSize(*entry.Size)
		}
		if entry.Type != "" {
			sym.UserType = entry.Type
		}
	}
}

// DumpSymbolAddrs serializes ctx's current table back to the current YAML
// dialect, sorted by VRAM, for round-tripping.
func DumpSymbolAddrs(w io.Writer, ctx *mips.Context) error {
	symbols := ctx.AllSymbols()
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Vram < symbols[j].Vram })

	entries := make([]SymbolAddrEntry, 0, len(symbols))
	for _, sym := range symbols {
		entry := SymbolAddrEntry{
			Vram:    sym.Vram,
			Name:    sym.Name,
			Type:    sym.UserType,
			Section: sym.SectionType.ToSectionName(),
		}
		if sym.HasUserDeclaredSize() {
			size := sym.GetSize()
			entry.Size = &size
		}
		entries = append(entries, entry)
	}

	enc := yamlv3.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(entries)
}

func parseSectionName(name string) mips.SectionType {
	switch name {
	case ".text", "text":
		return mips.SectionText
	case ".data", "data":
		return mips.SectionData
	case ".rodata", "rodata":
		return mips.SectionRodata
	case ".bss", "bss":
		return mips.SectionBss
	default:
		return mips.SectionUnknown
	}
}
