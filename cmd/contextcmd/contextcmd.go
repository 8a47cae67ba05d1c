// Package contextcmd implements "spimgo context": load a symbol-addrs
// file and dump, browse, or query the resulting table.
package contextcmd

import (
	"fmt"
	"os"

	mipscontext "github.com/Manu343726/spimgo/internal/context"
	"github.com/Manu343726/spimgo/internal/tui"
	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/spf13/cobra"
)

var (
	symbolAddrs string
	legacy      bool
)

// Cmd is the "context" command group.
var Cmd = &cobra.Command{
	Use:   "context",
	Short: "Inspect a symbol address table",
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the loaded symbol table",
	RunE:  runDump,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open an interactive symbol browser",
	RunE:  runBrowse,
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter the symbol table from a line-oriented prompt",
	RunE:  runQuery,
}

func init() {
	Cmd.PersistentFlags().StringVar(&symbolAddrs, "symbol-addrs", "", "symbol-addrs YAML file to load")
	Cmd.PersistentFlags().BoolVar(&legacy, "legacy", false, "parse the file using the legacy flat-map dialect")
	Cmd.MarkPersistentFlagRequired("symbol-addrs")
	Cmd.AddCommand(dumpCmd, browseCmd, queryCmd)
}

func loadContext() (*mips.Context, error) {
	f, err := os.Open(symbolAddrs)
	if err != nil {
		return nil, fmt.Errorf("opening symbol-addrs file %q: %w", symbolAddrs, err)
	}
	defer f.Close()

	var entries []mipscontext.SymbolAddrEntry
	if legacy {
		entries, err = mipscontext.LoadSymbolAddrsLegacy(f)
	} else {
		entries, err = mipscontext.LoadSymbolAddrs(f)
	}
	if err != nil {
		return nil, err
	}

	ctx := mips.NewContext()
	mipscontext.ApplySymbolAddrs(ctx, entries)
	return ctx, nil
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx, err := loadContext()
	if err != nil {
		return err
	}
	return mips.DumpContext(cmd.OutOrStdout(), ctx)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, err := loadContext()
	if err != nil {
		return err
	}
	return tui.Browse(ctx)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx, err := loadContext()
	if err != nil {
		return err
	}
	return tui.RunQueryREPL(ctx, cmd.OutOrStdout())
}
