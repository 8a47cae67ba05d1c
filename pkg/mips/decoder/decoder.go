// Package decoder declares the external MIPS instruction-decoding
// contract. Decoding .text words into mnemonics is explicitly out of
// scope for pkg/mips (spec.md §1: "Non-goals ... instruction decoding");
// this package only defines the boundary a text analyzer would implement
// against, so pkg/mips's data/rodata analyzers and internal/render can
// depend on an interface rather than a concrete decoder.
package decoder

// OpcodeClass coarsely categorizes a decoded instruction, enough for a
// caller like the rodata jump-table heuristic's GOT/$gp handling to know
// whether a referencing instruction loads an address at all.
type OpcodeClass int

const (
	ClassUnknown OpcodeClass = iota
	ClassLoad
	ClassStore
	ClassBranch
	ClassJump
	ClassALU
	ClassFloat
)

func (c OpcodeClass) String() string {
	switch c {
	case ClassLoad:
		return "load"
	case ClassStore:
		return "store"
	case ClassBranch:
		return "branch"
	case ClassJump:
		return "jump"
	case ClassALU:
		return "alu"
	case ClassFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Instruction is the minimal decoded shape a text analyzer would hand
// back: enough for data-reference discovery, not a full disassembly.
type Instruction struct {
	Class OpcodeClass

	// Rs, Rt, Rd are the operand register numbers relevant to Class, -1
	// where not applicable.
	Rs, Rt, Rd int

	// Immediate is the sign- or zero-extended immediate field, when Class
	// is one that carries one (load/store/ALU-immediate/branch).
	Immediate int32

	// ReferencesGOT reports whether this instruction's addressing mode is
	// GOT/$gp-relative rather than %hi/%lo-paired, mirroring the
	// ContextSymbol.IsGot flag driven by whatever classifies symbols.
	ReferencesGOT bool
}

// OpcodeClassifier decodes a single raw word into an Instruction. A text
// analyzer implements this; pkg/mips never does, since instruction
// decoding itself is out of scope here.
type OpcodeClassifier interface {
	Classify(word uint32) (Instruction, error)
}
