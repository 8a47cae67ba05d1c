package mips

import (
	"fmt"
	"io"
	"sort"

	"github.com/Manu343726/spimgo/pkg/utils"
)

// DumpContext writes a detailed debugging representation of a Context to
// the given writer, in the teacher's programDumper style
// (pkg/hw/cpu/mc/programfiledump.go): one dump* method per concern,
// sorted for determinism, intended for inspection rather than parsing.
func DumpContext(w io.Writer, ctx *Context) error {
	d := &contextDumper{w: w, symbols: ctx.AllSymbols()}
	return d.dump()
}

type contextDumper struct {
	w       io.Writer
	symbols []*ContextSymbol
}

func (d *contextDumper) dump() error {
	if err := d.dumpHeader(); err != nil {
		return err
	}
	if err := d.dumpBySection(); err != nil {
		return err
	}
	if err := d.dumpJumpTables(); err != nil {
		return err
	}
	return nil
}

func (d *contextDumper) dumpHeader() error {
	counts := make(map[SectionType]int)
	for _, sym := range d.symbols {
		counts[sym.SectionType]++
	}
	sections := utils.Keys(counts)
	sort.Slice(sections, func(i, j int) bool { return sections[i] < sections[j] })
	countStrs := utils.Map(sections, func(s SectionType) string {
		return fmt.Sprintf("%s=%d", s, counts[s])
	})

	fmt.Fprintln(d.w, "=== Context ===")
	fmt.Fprintf(d.w, "Symbols: %d (%s)\n", len(d.symbols), utils.FormatSlice(countStrs, ", "))
	fmt.Fprintln(d.w)
	return nil
}

func (d *contextDumper) dumpBySection() error {
	bySection := make(map[SectionType][]*ContextSymbol)
	for _, sym := range d.symbols {
		bySection[sym.SectionType] = append(bySection[sym.SectionType], sym)
	}

	order := []SectionType{SectionText, SectionData, SectionRodata, SectionBss, SectionUnknown}
	for _, sectionType := range order {
		syms := bySection[sectionType]
		fmt.Fprintf(d.w, "=== %s (%d) ===\n", sectionType, len(syms))
		if len(syms) == 0 {
			fmt.Fprintln(d.w, "(none)")
			fmt.Fprintln(d.w)
			continue
		}

		sort.Slice(syms, func(i, j int) bool { return syms[i].Vram < syms[j].Vram })
		for _, sym := range syms {
			fmt.Fprintf(d.w, "  %s  %s", utils.FormatUintHex(uint64(sym.Vram), 8), sym.Name)
			if sym.IsAutogenerated {
				fmt.Fprint(d.w, "  (auto)")
			}
			if sym.IsAutoCreatedPad {
				fmt.Fprint(d.w, "  (pad)")
			}
			if sym.HasUserDeclaredSize() {
				fmt.Fprintf(d.w, "  size=%d", sym.GetSize())
			}
			fmt.Fprintln(d.w)
		}
		fmt.Fprintln(d.w)
	}
	return nil
}

func (d *contextDumper) dumpJumpTables() error {
	var heads []*ContextSymbol
	for _, sym := range d.symbols {
		if sym.IsJumpTable() {
			heads = append(heads, sym)
		}
	}

	fmt.Fprintf(d.w, "=== Jump tables (%d) ===\n", len(heads))
	if len(heads) == 0 {
		fmt.Fprintln(d.w, "(none)")
		return nil
	}

	sort.Slice(heads, func(i, j int) bool { return heads[i].Vram < heads[j].Vram })
	for _, sym := range heads {
		fmt.Fprintf(d.w, "  %s  %s  (%d references)\n", utils.FormatUintHex(uint64(sym.Vram), 8), sym.Name, sym.ReferenceCounter)
	}
	return nil
}
