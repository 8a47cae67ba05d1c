package mips

import (
	"fmt"
	"strings"
)

// SymbolKind is the coarse classification a span's analyze step settles on
// (spec.md §4.5: "scalar, array, string, double, jump table, ...").
type SymbolKind int

const (
	KindScalar SymbolKind = iota
	KindArray
	KindString
	KindPascalString
	KindDouble
	KindJumpTable
)

func (k SymbolKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindPascalString:
		return "pascal-string"
	case KindDouble:
		return "double"
	case KindJumpTable:
		return "jumptable"
	default:
		return "unknown"
	}
}

// Symbol is the shared span renderer contract described in spec.md §4.5.
// SymbolData and SymbolRodata embed it; it never rewrites the underlying
// word buffer it was handed.
type Symbol struct {
	ContextSym *ContextSymbol

	Words []Word

	InFileOffset int
	HasVram      bool
	Vram         uint32
	VromStart    uint32
	VromEnd      uint32

	SegmentVromStart uint32
	OverlayCategory  string
	StringEncoding   string
	CommentOffset    int

	Kind SymbolKind
}

func newSymbol(ctxSym *ContextSymbol, words []Word, inFileOffset int, hasVram bool, vram, vromStart, vromEnd, segmentVromStart uint32, overlayCategory, stringEncoding string) Symbol {
	return Symbol{
		ContextSym:       ctxSym,
		Words:            words,
		InFileOffset:     inFileOffset,
		HasVram:          hasVram,
		Vram:             vram,
		VromStart:        vromStart,
		VromEnd:          vromEnd,
		SegmentVromStart: segmentVromStart,
		OverlayCategory:  overlayCategory,
		StringEncoding:   stringEncoding,
	}
}

// SetCommentOffset records the offset used to annotate disassembly with
// source-file line comments; the actual comment text is a render-layer
// concern (spec.md §1, "out of scope: ... emission of individual
// symbols").
func (sym *Symbol) SetCommentOffset(offset int) {
	sym.CommentOffset = offset
}

// Analyze classifies the span enough to answer IsDouble, IsJumpTable, and
// CountExtraPadding (spec.md §4.5). Classification prefers explicit hints
// recorded on the ContextSymbol (a user-declared type, or flags set by the
// rodata jump-table state machine) over guessing from raw bits, since bits
// alone can't tell a double from two unrelated words.
func (sym *Symbol) Analyze() {
	switch {
	case sym.ContextSym.IsJumpTable():
		sym.Kind = KindJumpTable
	case isDoubleUserType(sym.ContextSym.UserType) && len(sym.Words)%2 == 0 && len(sym.Words) > 0:
		sym.Kind = KindDouble
	case sym.ContextSym.IsMaybePascalString:
		sym.Kind = KindPascalString
	case sym.ContextSym.IsMaybeString:
		sym.Kind = KindString
	case len(sym.Words) == 1:
		sym.Kind = KindScalar
	default:
		sym.Kind = KindArray
	}
}

func isDoubleUserType(userType string) bool {
	switch strings.ToLower(userType) {
	case "f64", "double", "float64":
		return true
	default:
		return false
	}
}

// IsDouble reports whether word pair i (i, i+1) forms one double-precision
// element of this span.
func (sym *Symbol) IsDouble(i int) bool {
	return sym.Kind == KindDouble && i >= 0 && i < len(sym.Words) && i%2 == 0
}

// IsJumpTable reports whether this span is a jump table.
func (sym *Symbol) IsJumpTable() bool {
	return sym.Kind == KindJumpTable
}

// CountExtraPadding counts trailing zero words beyond the one a
// naturally-sized, non-padding symbol would still be expected to contain.
// Used by rodata file-boundary detection (spec.md §4.4) as a proxy for
// "the compiler padded this symbol out to an alignment boundary".
func (sym *Symbol) CountExtraPadding() int {
	trailing := 0
	for i := len(sym.Words) - 1; i >= 0 && sym.Words[i] == 0; i-- {
		trailing++
	}
	if trailing == len(sym.Words) && trailing > 0 {
		trailing--
	}
	return trailing
}

// Disassemble renders assembler text for this span: a label followed by
// directives for its words. This is a default, swappable rendering
// (spec.md §1 scopes formatting policy as an external collaborator's
// concern); internal/render builds on top of it for CLI output.
func (sym *Symbol) Disassemble(lineEnds string) string {
	var b strings.Builder

	b.WriteString(sym.ContextSym.Name)
	b.WriteString(":")
	b.WriteString(lineEnds)

	switch sym.Kind {
	case KindString, KindPascalString:
		b.WriteString(disassembleAsString(sym.Words, sym.Kind == KindPascalString, lineEnds))
	case KindDouble:
		for i := 0; i+1 < len(sym.Words); i += 2 {
			b.WriteString(fmt.Sprintf(" .dword 0x%08X%08X%s", sym.Words[i], sym.Words[i+1], lineEnds))
		}
	case KindJumpTable:
		for _, w := range sym.Words {
			b.WriteString(fmt.Sprintf(" .word 0x%08X%s", w, lineEnds))
		}
	default:
		for _, w := range sym.Words {
			b.WriteString(fmt.Sprintf(" .word 0x%08X%s", w, lineEnds))
		}
	}

	return b.String()
}

func disassembleAsString(words []Word, pascal bool, lineEnds string) string {
	raw := WordsToBEBytes(words)
	end := len(raw)
	for i, c := range raw {
		if c == 0 {
			end = i
			break
		}
	}

	kind := ".ascii"
	if pascal {
		kind = ".pascalstr"
	}
	return fmt.Sprintf(" %s \"%s\"%s", kind, escapeAsciiQuotes(raw[:end]), lineEnds)
}

func escapeAsciiQuotes(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		if c >= 0x20 && c < 0x7F {
			sb.WriteByte(c)
		} else {
			sb.WriteString(fmt.Sprintf("\\%03o", c))
		}
	}
	return sb.String()
}

// SymbolData is the data-section span type (spec.md §4.3, §4.5).
type SymbolData struct {
	Symbol
}

// NewSymbolData constructs a data span covering words, owned by the symbol
// at vram.
func NewSymbolData(ctxSym *ContextSymbol, words []Word, inFileOffset int, hasVram bool, vram, vromStart, vromEnd, segmentVromStart uint32, overlayCategory, stringEncoding string) *SymbolData {
	return &SymbolData{Symbol: newSymbol(ctxSym, words, inFileOffset, hasVram, vram, vromStart, vromEnd, segmentVromStart, overlayCategory, stringEncoding)}
}

// SymbolRodata is the rodata-section span type (spec.md §4.4, §4.5). Its
// JumpTableLabels field is not filled in by Rodata.Analyze: the labels a
// jump table yields are recorded in the Context only, and the field stays
// nil unless a caller sets it.
type SymbolRodata struct {
	Symbol
	JumpTableLabels []*ContextSymbol
}

// NewSymbolRodata constructs a rodata span covering words, owned by the
// symbol at vram.
func NewSymbolRodata(ctxSym *ContextSymbol, words []Word, inFileOffset int, hasVram bool, vram, vromStart, vromEnd, segmentVromStart uint32, overlayCategory, stringEncoding string) *SymbolRodata {
	return &SymbolRodata{Symbol: newSymbol(ctxSym, words, inFileOffset, hasVram, vram, vromStart, vromEnd, segmentVromStart, overlayCategory, stringEncoding)}
}
