package mips

// SectionType classifies the kind of region a Section or ContextSymbol belongs to.
type SectionType int

const (
	SectionUnknown SectionType = iota
	SectionText
	SectionData
	SectionRodata
	SectionBss
)

// String returns a short human-readable name, used in debug dumps.
func (t SectionType) String() string {
	switch t {
	case SectionText:
		return "text"
	case SectionData:
		return "data"
	case SectionRodata:
		return "rodata"
	case SectionBss:
		return "bss"
	default:
		return "unknown"
	}
}

// ToSectionName returns the assembler directive name for .section, e.g. ".data".
func (t SectionType) ToSectionName() string {
	switch t {
	case SectionText:
		return ".text"
	case SectionData:
		return ".data"
	case SectionRodata:
		return ".rodata"
	case SectionBss:
		return ".bss"
	default:
		return ".unknown"
	}
}

// ToFileSuffix returns the filename suffix used when writing binary/asm artifacts.
func (t SectionType) ToFileSuffix() string {
	switch t {
	case SectionText:
		return ".text"
	case SectionData:
		return ".data"
	case SectionRodata:
		return ".rodata"
	case SectionBss:
		return ".bss"
	default:
		return ""
	}
}

// Compiler identifies the reference toolchain used to build the original image.
// It affects rodata file-boundary heuristics (see Rodata.materializeAndFindBoundaries).
type Compiler int

const (
	CompilerIDO Compiler = iota
	CompilerGCC
	CompilerSN
)

func (c Compiler) String() string {
	switch c {
	case CompilerIDO:
		return "ido"
	case CompilerGCC:
		return "gcc"
	case CompilerSN:
		return "sn"
	default:
		return "unknown"
	}
}
