// Package symboladdrscmd implements "spimgo symboladdrs": convert a
// legacy flat-map symbol-addrs file into the current YAML dialect.
package symboladdrscmd

import (
	"errors"
	"os"

	mipscontext "github.com/Manu343726/spimgo/internal/context"
	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/Manu343726/spimgo/pkg/utils"
	"github.com/spf13/cobra"
)

// ErrOpenSymbolAddrs wraps a failure to open the input symbol-addrs file.
var ErrOpenSymbolAddrs = errors.New("opening symbol-addrs file")

var fromLegacy bool

// Cmd is the "symboladdrs" subcommand.
var Cmd = &cobra.Command{
	Use:   "symboladdrs <file>",
	Short: "Convert a symbol-addrs file between dialects",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().BoolVar(&fromLegacy, "from-legacy", false, "read the input as the legacy flat-map dialect")
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return utils.MakeError(ErrOpenSymbolAddrs, "%q: %v", args[0], err)
	}
	defer f.Close()

	var entries []mipscontext.SymbolAddrEntry
	if fromLegacy {
		entries, err = mipscontext.LoadSymbolAddrsLegacy(f)
	} else {
		entries, err = mipscontext.LoadSymbolAddrs(f)
	}
	if err != nil {
		return err
	}

	ctx := mips.NewContext()
	mipscontext.ApplySymbolAddrs(ctx, entries)
	return mipscontext.DumpSymbolAddrs(cmd.OutOrStdout(), ctx)
}
