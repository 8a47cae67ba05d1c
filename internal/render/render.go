// Package render formats mips.Symbol spans as assembler text, optionally
// colorized for a TTY. The colorizer is a token/regex pipeline over the
// handful of directives and operand shapes the core's Disassemble output
// actually produces.
package render

import (
	"fmt"
	"io"
	"regexp"

	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/Manu343726/spimgo/pkg/utils"
	"github.com/fatih/color"
)

var (
	labelColor     = color.New(color.FgMagenta, color.Bold)
	directiveColor = color.New(color.FgBlue)
	hexColor       = color.New(color.FgYellow)
	stringColor    = color.New(color.FgGreen)
	commentColor   = color.New(color.FgHiBlack)
)

var (
	labelPattern     = regexp.MustCompile(`^\S+:`)
	directivePattern = regexp.MustCompile(`\.\w+`)
	hexPattern       = regexp.MustCompile(`0x[0-9A-Fa-f]+`)
	stringPattern    = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	commentPattern   = regexp.MustCompile(`;.*$`)
)

// Emitter writes disassembly for a sequence of symbols to a writer,
// colorizing when Color is enabled.
type Emitter struct {
	W       io.Writer
	Color   bool
	LineEnd string
}

// NewEmitter builds an Emitter that colorizes unless fatih/color's NoColor
// is set, which that package decides from whether standard output is a
// terminal; w itself is not inspected.
func NewEmitter(w io.Writer, lineEnd string) *Emitter {
	return &Emitter{W: w, Color: !color.NoColor, LineEnd: lineEnd}
}

// EmitData writes every SymbolData span in order.
func (e *Emitter) EmitData(spans []*mips.SymbolData) error {
	for _, sym := range spans {
		if err := e.emitLine(sym.Disassemble(e.LineEnd)); err != nil {
			return err
		}
	}
	return nil
}

// EmitRodata writes every SymbolRodata span in order.
func (e *Emitter) EmitRodata(spans []*mips.SymbolRodata) error {
	for _, sym := range spans {
		if err := e.emitLine(sym.Disassemble(e.LineEnd)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitLine(text string) error {
	if !e.Color {
		_, err := fmt.Fprint(e.W, text)
		return err
	}
	_, err := fmt.Fprint(e.W, highlight(text))
	return err
}

// highlight colorizes one or more lines of disassembly text: labels,
// directives, hex literals, quoted strings, and trailing comments.
func highlight(text string) string {
	lines := splitKeepingEnds(text)
	for i, line := range lines {
		lines[i] = highlightLine(line)
	}

	var joined string
	for _, l := range lines {
		joined += l
	}
	return joined
}

func highlightLine(line string) string {
	if loc := commentPattern.FindStringIndex(line); loc != nil {
		return highlightCode(line[:loc[0]]) + commentColor.Sprint(line[loc[0]:])
	}
	return highlightCode(line)
}

func highlightCode(line string) string {
	if loc := labelPattern.FindStringIndex(line); loc != nil {
		return labelColor.Sprint(line[loc[0]:loc[1]]) + line[loc[1]:]
	}

	line = stringPattern.ReplaceAllStringFunc(line, func(m string) string {
		return stringColor.Sprint(m)
	})
	line = hexPattern.ReplaceAllStringFunc(line, func(m string) string {
		return hexColor.Sprint(m)
	})
	line = directivePattern.ReplaceAllStringFunc(line, func(m string) string {
		return directiveColor.Sprint(m)
	})
	return line
}

// PointerLayoutDiagram draws the bit layout normalizePointerWord operates
// on: the top byte kept for diffing, and the 24 low bits it zeroes, using
// the teacher's ascii bit-frame drawer (pkg/utils/asciidraw.go), normally
// reserved for instruction-encoding diagrams.
func PointerLayoutDiagram() string {
	fields := []utils.AsciiFrameField{
		{Name: "low 24 bits (zeroed)", Begin: 0, Width: 24},
		{Name: "top byte (kept)", Begin: 24, Width: 8},
	}
	return utils.AsciiFrame(fields, 32, "bits", utils.AsciiFrameUnitLayout_RightToLeft, 2)
}

func splitKeepingEnds(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
