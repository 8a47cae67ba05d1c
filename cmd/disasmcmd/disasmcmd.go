// Package disasmcmd implements "spimgo disasm": partition one data or
// rodata section from a raw binary image and print its disassembly.
package disasmcmd

import (
	"fmt"
	"os"

	mipscontext "github.com/Manu343726/spimgo/internal/context"
	"github.com/Manu343726/spimgo/internal/render"
	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/spf13/cobra"
)

var (
	sectionKind   string
	vromStartFlag uint32
	vromEndFlag   uint32
	vramFlag      int64
	symbolAddrs   string
)

// Cmd is the "disasm" subcommand.
var Cmd = &cobra.Command{
	Use:   "disasm <image>",
	Short: "Partition a data or rodata section and print its disassembly",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVar(&sectionKind, "type", "data", "section kind: data or rodata")
	Cmd.Flags().Uint32Var(&vromStartFlag, "vrom-start", 0, "start file offset of the section")
	Cmd.Flags().Uint32Var(&vromEndFlag, "vrom-end", 0, "end file offset of the section (exclusive)")
	Cmd.Flags().Int64Var(&vramFlag, "vram", -1, "VRAM base address, or -1 if not VRAM-placed")
	Cmd.Flags().StringVar(&symbolAddrs, "symbol-addrs", "", "optional symbol-addrs YAML file to seed the context")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %q: %w", args[0], err)
	}

	if vromEndFlag == 0 || vromEndFlag > uint32(len(data)) {
		vromEndFlag = uint32(len(data))
	}
	section := data[vromStartFlag:vromEndFlag]

	ctx := mips.NewContext()
	if symbolAddrs != "" {
		if err := seedSymbolAddrs(ctx, symbolAddrs); err != nil {
			return err
		}
	}

	cfg := mips.DefaultGlobalConfig()
	emitter := render.NewEmitter(cmd.OutOrStdout(), cfg.LineEnds)

	switch sectionKind {
	case "data":
		d := mips.NewData(ctx, cfg, vromStartFlag, vromEndFlag, vramFlag, section, vromStartFlag, "")
		d.Analyze()
		return emitter.EmitData(d.SymbolList)
	case "rodata":
		r := mips.NewRodata(ctx, cfg, vromStartFlag, vromEndFlag, vramFlag, section, vromStartFlag, "")
		r.Analyze()
		return emitter.EmitRodata(r.SymbolList)
	default:
		return fmt.Errorf("unknown section type %q, want data or rodata", sectionKind)
	}
}

func seedSymbolAddrs(ctx *mips.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening symbol-addrs file %q: %w", path, err)
	}
	defer f.Close()

	entries, err := mipscontext.LoadSymbolAddrs(f)
	if err != nil {
		return err
	}

	mipscontext.ApplySymbolAddrs(ctx, entries)
	return nil
}
