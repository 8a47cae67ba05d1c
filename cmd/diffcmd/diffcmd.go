// Package diffcmd implements "spimgo diff": compare the same section of
// two images. Each image is analyzed against its own, independent
// Context (spec.md §5 allows a parallel driver as long as no Context is
// shared), so the two analyses run concurrently with
// sourcegraph/conc.WaitGroup rather than a LockedContext.
package diffcmd

import (
	"fmt"
	"os"

	"github.com/Manu343726/spimgo/internal/render"
	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

var (
	sectionKind   string
	vromStartFlag uint32
	vromEndFlag   uint32
	vramFlag      int64
	removePtrs    bool
	explainLayout bool
)

// Cmd is the "diff" subcommand.
var Cmd = &cobra.Command{
	Use:   "diff <image-one> <image-two>",
	Short: "Compare the same section of two images",
	Args: func(cmd *cobra.Command, args []string) error {
		if explainLayout {
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: run,
}

func init() {
	Cmd.Flags().StringVar(&sectionKind, "type", "data", "section kind: data or rodata")
	Cmd.Flags().Uint32Var(&vromStartFlag, "vrom-start", 0, "start file offset of the section")
	Cmd.Flags().Uint32Var(&vromEndFlag, "vrom-end", 0, "end file offset of the section (exclusive)")
	Cmd.Flags().Int64Var(&vramFlag, "vram", -1, "VRAM base address, or -1 if not VRAM-placed")
	Cmd.Flags().BoolVar(&removePtrs, "remove-pointers", false, "normalize pointer words before comparing")
	Cmd.Flags().BoolVar(&explainLayout, "explain", false, "print the pointer normalization bit layout and exit")
}

func run(cmd *cobra.Command, args []string) error {
	if explainLayout {
		fmt.Fprint(cmd.OutOrStdout(), render.PointerLayoutDiagram())
		return nil
	}

	var words [2][]mips.Word
	var wg conc.WaitGroup

	for i, path := range args {
		i, path := i, path
		wg.Go(func() {
			w, err := analyze(path)
			if err != nil {
				panic(err)
			}
			words[i] = w
		})
	}

	if err := safeWait(&wg); err != nil {
		return err
	}

	result := mips.Compare(words[0], words[1])
	printResult(cmd, result)
	return nil
}

func safeWait(wg *conc.WaitGroup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	wg.Wait()
	return nil
}

func analyze(path string) ([]mips.Word, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	end := vromEndFlag
	if end == 0 || end > uint32(len(raw)) {
		end = uint32(len(raw))
	}
	section := raw[vromStartFlag:end]

	ctx := mips.NewContext()
	cfg := mips.DefaultGlobalConfig()
	cfg.RemovePointers = removePtrs

	var base *mips.SectionBase
	switch sectionKind {
	case "data":
		d := mips.NewData(ctx, cfg, vromStartFlag, end, vramFlag, section, vromStartFlag, "")
		d.Analyze()
		d.RemovePointers()
		base = &d.SectionBase
	case "rodata":
		r := mips.NewRodata(ctx, cfg, vromStartFlag, end, vramFlag, section, vromStartFlag, "")
		r.Analyze()
		r.RemovePointers()
		base = &r.SectionBase
	default:
		return nil, fmt.Errorf("unknown section type %q, want data or rodata", sectionKind)
	}

	return base.Words, nil
}

func printResult(cmd *cobra.Command, result mips.CompareResult) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "equal: %v\n", result.Equal)
	fmt.Fprintf(w, "hash_one: %s\n", result.HashOne)
	fmt.Fprintf(w, "hash_two: %s\n", result.HashTwo)
	fmt.Fprintf(w, "size_one: %d\n", result.SizeOne)
	fmt.Fprintf(w, "size_two: %d\n", result.SizeTwo)
	if !result.Equal {
		fmt.Fprintf(w, "diff_bytes: %d\n", result.DiffBytes)
		fmt.Fprintf(w, "diff_words: %d\n", result.DiffWords)
	}
}
