package mips

import (
	"fmt"

	"github.com/Manu343726/spimgo/pkg/utils"
)

// ContextSymbol is the authoritative record for a named address (spec.md §3).
// A Context creates and indexes every ContextSymbol; sections and symbol
// spans share the same *ContextSymbol pointers the Context hands out.
type ContextSymbol struct {
	Vram uint32
	// HasVrom/Vrom track the file-space address this symbol was first seen
	// at, when known.
	HasVrom bool
	Vrom    uint32

	Name string

	SectionType SectionType

	IsAutogenerated  bool
	IsDefined        bool
	IsAutoCreatedPad bool

	IsMaybeString        bool
	IsMaybePascalString  bool
	IsGot                bool
	UnknownSegment       bool
	isJumpTableFlag      bool
	isLateRodataFlag     bool

	userDeclaredSize *uint32
	UserType         string

	ReferenceCounter int
}

// MarkJumpTable flags this symbol as a jump table. Context.AddJumpTableLabel
// calls it on every label it newly creates; a caller that knows a table
// head (for example a test, or a text analyzer) calls it directly. The
// symbol-addrs loader never sets it.
func (s *ContextSymbol) MarkJumpTable() {
	s.isJumpTableFlag = true
}

// IsJumpTable reports whether this symbol starts a run of jump-table labels
// (spec.md §4.4).
func (s *ContextSymbol) IsJumpTable() bool {
	return s.isJumpTableFlag
}

// MarkLateRodata flags this symbol as belonging to the late-rodata group
// (rodata emitted after the main group, spec.md GLOSSARY).
func (s *ContextSymbol) MarkLateRodata() {
	s.isLateRodataFlag = true
}

// IsLateRodata reports whether this symbol was placed in the late-rodata
// group (spec.md §4.4, file-boundary detection).
func (s *ContextSymbol) IsLateRodata() bool {
	return s.isLateRodataFlag
}

// SetUserDeclaredSize records a user-provided size hint for this symbol
// (e.g. loaded from a symbol-addrs file, spec.md §4.8).
func (s *ContextSymbol) SetUserDeclaredSize(size uint32) {
	s.userDeclaredSize = &size
}

// HasUserDeclaredSize reports whether a size hint was ever set.
func (s *ContextSymbol) HasUserDeclaredSize() bool {
	return s.userDeclaredSize != nil
}

// GetSize returns the user-declared size, or 0 if none was set.
func (s *ContextSymbol) GetSize() uint32 {
	if s.userDeclaredSize == nil {
		return 0
	}
	return *s.userDeclaredSize
}

// String renders a compact debug representation, in the spirit of the
// teacher's InstructionDescriptor.String (pkg/hw/cpu/mc/instructions.go).
func (s *ContextSymbol) String() string {
	var flags []string
	if s.IsJumpTable() {
		flags = append(flags, "jumptable")
	}
	if s.IsLateRodata() {
		flags = append(flags, "laterodata")
	}
	if s.IsAutoCreatedPad {
		flags = append(flags, "pad")
	}
	if s.IsAutogenerated {
		flags = append(flags, "auto")
	}

	base := fmt.Sprintf("%s (vram: %s, section: %v, defined: %v)", s.Name, utils.FormatUintHex(uint64(s.Vram), 8), s.SectionType, s.IsDefined)
	if len(flags) == 0 {
		return base
	}
	return base + " [" + utils.FormatSlice(flags, ", ") + "]"
}

func autoSymbolName(sectionType SectionType, vram uint32) string {
	prefix := "SYM"
	switch sectionType {
	case SectionText:
		prefix = "func"
	case SectionData:
		prefix = "D"
	case SectionRodata:
		prefix = "RO"
	case SectionBss:
		prefix = "B"
	}
	return fmt.Sprintf("%s_%08X", prefix, vram)
}
