package mips

// Endianness selects how raw bytes are packed into Words for a given section kind.
type Endianness int

const (
	// EndianDefault defers to the image-wide default (big endian for N64).
	EndianDefault Endianness = iota
	EndianBig
	EndianLittle
	// EndianMiddle swaps each pair of 16-bit halves within a word (some N64
	// overlays that were mastered from little-endian tooling use this).
	EndianMiddle
)

// GlobalConfig carries the process-wide options described in spec.md §4.7.
// It is passed explicitly to section constructors rather than held as a
// singleton, so property-based tests can vary options independently
// (spec.md §9 "Design Notes").
type GlobalConfig struct {
	// EndianData/EndianRodata override the byte-to-word decoding for their
	// section kind. EndianDefault means "use the image's default".
	EndianData   Endianness
	EndianRodata Endianness

	// AddNewSymbols allows autogeneration of a symbol at a section's first
	// word when none is already defined there.
	AddNewSymbols bool

	// CreateDataPads/CreateRodataPads allow synthesizing an auto-pad
	// ContextSymbol right after a symbol's user-declared size.
	CreateDataPads   bool
	CreateRodataPads bool

	// RemovePointers enables the pointer-normalization pass used when
	// diffing two images (spec.md §4.6).
	RemovePointers bool

	// WriteBinary is the flag for emitting raw big-endian bytes alongside
	// the assembler text. It is loaded by internal/config, but no code in
	// this repository reads it and no binary file is ever written.
	WriteBinary bool

	// GPValue is the $gp base used to resolve GOT-relative jump table
	// entries. A nil value means "not configured".
	GPValue *int64

	// Compiler is the reference compiler; it affects rodata file-boundary
	// heuristics (spec.md §4.4).
	Compiler Compiler

	// LineEnds is the textual line terminator used by emitters.
	LineEnds string
}

// DefaultGlobalConfig returns the configuration a standalone run should use
// absent any user overrides.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		EndianData:       EndianDefault,
		EndianRodata:     EndianDefault,
		AddNewSymbols:    true,
		CreateDataPads:   true,
		CreateRodataPads: true,
		RemovePointers:   false,
		WriteBinary:      false,
		GPValue:          nil,
		Compiler:         CompilerIDO,
		LineEnds:         "\n",
	}
}

func (c GlobalConfig) endianFor(kind SectionType) Endianness {
	switch kind {
	case SectionData:
		return c.EndianData
	case SectionRodata:
		return c.EndianRodata
	default:
		return EndianDefault
	}
}
