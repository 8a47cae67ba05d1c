// Package tui implements the interactive symbol browser (spimgo context
// browse) and the non-interactive filter REPL (spimgo context query),
// following the teacher's Controller/backend split in
// pkg/hw/cpu/debugger/controller.go: a thin coordinator dispatches
// commands against a read-only view of state, leaving presentation to
// the concrete frontend.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/Manu343726/spimgo/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Browse renders a read-only tree of every known symbol, grouped by
// section, and blocks until the user quits.
func Browse(ctx *mips.Context) error {
	app := tview.NewApplication()

	root := tview.NewTreeNode("context").SetColor(tcell.ColorWhite)
	tree := tview.NewTreeView().SetRoot(root).SetCurrentNode(root)

	bySection := groupBySection(ctx.AllSymbols())
	for _, section := range []mips.SectionType{mips.SectionText, mips.SectionData, mips.SectionRodata, mips.SectionBss, mips.SectionUnknown} {
		syms := bySection[section]
		if len(syms) == 0 {
			continue
		}

		sectionNode := tview.NewTreeNode(fmt.Sprintf("%s (%d)", section, len(syms))).
			SetColor(tcell.ColorYellow).
			SetExpanded(false)
		root.AddChild(sectionNode)

		labels := utils.Map(syms, func(sym *mips.ContextSymbol) string {
			return utils.FormatUintHex(uint64(sym.Vram), 8) + "  " + sym.Name
		})
		for i, sym := range syms {
			leaf := tview.NewTreeNode(labels[i]).SetReference(sym)
			sectionNode.AddChild(leaf)
		}
	}

	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		if len(node.GetChildren()) > 0 {
			node.SetExpanded(!node.IsExpanded())
			return
		}
		if sym, ok := node.GetReference().(*mips.ContextSymbol); ok {
			node.SetText(sym.String())
		}
	})

	tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(tree, true).SetFocus(tree).Run()
}

func groupBySection(symbols []*mips.ContextSymbol) map[mips.SectionType][]*mips.ContextSymbol {
	out := make(map[mips.SectionType][]*mips.ContextSymbol)
	for _, sym := range symbols {
		out[sym.SectionType] = append(out[sym.SectionType], sym)
	}
	for section := range out {
		sort.Slice(out[section], func(i, j int) bool { return out[section][i].Vram < out[section][j].Vram })
	}
	return out
}

// Query runs one non-interactive, case-insensitive substring filter over
// ctx's symbol names and returns the matches sorted by VRAM. The
// standalone spimgo context query REPL backs its line editing with
// chzyer/readline and calls this once per line.
func Query(ctx *mips.Context, needle string) []*mips.ContextSymbol {
	needle = strings.ToLower(needle)

	var out []*mips.ContextSymbol
	for _, sym := range ctx.AllSymbols() {
		if strings.Contains(strings.ToLower(sym.Name), needle) {
			out = append(out, sym)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Vram < out[j].Vram })
	return out
}
