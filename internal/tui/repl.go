package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/Manu343726/spimgo/pkg/utils"
	"github.com/chzyer/readline"
)

// RunQueryREPL reads filter substrings from stdin, one per line, printing
// matching symbols, until EOF or "exit". This is the non-TUI counterpart
// to Browse, for scripting and terminals without a full-screen UI.
func RunQueryREPL(ctx *mips.Context, out io.Writer) error {
	rl, err := readline.New("spimgo> ")
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		matches := Query(ctx, line)
		pairs := utils.Map(matches, func(sym *mips.ContextSymbol) utils.Pair[uint32, string] {
			return utils.MakePair(sym.Vram, sym.Name)
		})
		for _, pair := range pairs {
			vram, name := pair.Decompose()
			fmt.Fprintf(out, "%s  %s\n", utils.FormatUintHex(uint64(vram), 8), name)
		}
	}
}
