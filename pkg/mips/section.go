package mips

// StaticReloc is a single accumulated static relocation: overwrite the word
// at LocalOffset with Value once ProcessStaticRelocs runs. Relocations
// themselves come from the ELF/overlay loader, which is out of scope for
// this package (spec.md §1); SectionBase only exposes the accumulate/apply
// hook every section kind shares (spec.md §4.2).
type StaticReloc struct {
	LocalOffset int
	Value       uint32
}

// SectionBase implements the common behaviors every section kind needs:
// address mapping, symbol lookup/insertion, the pending pointer-discovery
// queue, and reference checking (spec.md §4.2). Data and Rodata embed it.
type SectionBase struct {
	SectionType      SectionType
	VromStart        uint32
	VromEnd          uint32
	Vram             int64 // -1 means "unset": VRAM-keyed operations are disabled
	SegmentVromStart uint32
	OverlayCategory  string

	Words []Word

	Ctx    ContextStore
	Config GlobalConfig

	// InFileOffset is the offset within a larger file this section's bytes
	// start at, used when materializing spans with a comment offset.
	InFileOffset  int
	CommentOffset int

	PointersOffsets map[int]struct{}
	SymbolsVRams    map[uint32]struct{}
	FileBoundaries  []int
	StringEncoding  string

	pendingRelocs []StaticReloc
}

// NewSectionBase constructs the shared section state. vram < 0 marks the
// section as not VRAM-placed (spec.md §3).
func NewSectionBase(ctx ContextStore, cfg GlobalConfig, sectionType SectionType, vromStart, vromEnd uint32, vram int64, words []Word, segmentVromStart uint32, overlayCategory string) SectionBase {
	encoding := "ASCII"
	if sectionType == SectionRodata {
		encoding = "EUC-JP"
	}

	return SectionBase{
		SectionType:      sectionType,
		VromStart:        vromStart,
		VromEnd:          vromEnd,
		Vram:             vram,
		SegmentVromStart: segmentVromStart,
		OverlayCategory:  overlayCategory,
		Words:            words,
		Ctx:              ctx,
		Config:           cfg,
		PointersOffsets:  make(map[int]struct{}),
		SymbolsVRams:     make(map[uint32]struct{}),
		StringEncoding:   encoding,
	}
}

// SizeW returns the number of words backing this section.
func (s *SectionBase) SizeW() int {
	return len(s.Words)
}

// ByteSize returns the section size in bytes.
func (s *SectionBase) ByteSize() int {
	return 4 * len(s.Words)
}

// GetVramOffset returns the VRAM for a local offset, or false if this
// section is not VRAM-placed.
func (s *SectionBase) GetVramOffset(localOffset int) (uint32, bool) {
	if s.Vram < 0 {
		return 0, false
	}
	return uint32(s.Vram) + uint32(localOffset), true
}

// GetVromOffset returns the VROM (file-space offset) for a local offset.
func (s *SectionBase) GetVromOffset(localOffset int) uint32 {
	return s.VromStart + uint32(localOffset)
}

// ContainsVram reports whether v falls within this section's VRAM range.
func (s *SectionBase) ContainsVram(v uint32) bool {
	if s.Vram < 0 {
		return false
	}
	base := uint32(s.Vram)
	return v >= base && v < base+uint32(s.ByteSize())
}

// PopPointerInDataReference returns whether v was pending promotion in the
// Context's queue, removing it if so (spec.md §4.2).
func (s *SectionBase) PopPointerInDataReference(v uint32) bool {
	return s.Ctx.PopPointerInData(v)
}

// looksLikeVramPointer applies the N64 KSEG0 heuristic: a word whose top
// byte places it in the 0x80xxxxxx-0x83xxxxxx RAM window is plausibly a
// pointer into some loaded section. It is a different predicate from the
// pointer normalizer's (spec.md §4.6): it also accepts top bytes
// 0x81-0x83, and it rejects the 0x0X segment-tag words the normalizer
// accepts, since here we're guessing at code/data references.
func looksLikeVramPointer(w uint32) bool {
	top := (w >> 24) & 0xFF
	return top >= 0x80 && top < 0x84
}

// CheckWordIsASymbolReference reports whether w falls in the
// 0x80000000-0x83FFFFFF window looksLikeVramPointer accepts and, if nothing
// is yet known at that address, enqueues it as a pending discovery
// (spec.md §4.2). It does not check that w lies inside any known section.
func (s *SectionBase) CheckWordIsASymbolReference(w Word) bool {
	if !looksLikeVramPointer(w) {
		return false
	}
	if s.Ctx.GetAnySymbol(w) == nil {
		s.Ctx.EnqueuePointerInData(w)
	}
	return true
}

// AddSymbol delegates to the Context, passing sectionType through as
// given.
func (s *SectionBase) AddSymbol(vram uint32, sectionType SectionType, isAutogenerated bool, symbolVrom *uint32) *ContextSymbol {
	return s.Ctx.AddSymbol(vram, sectionType, isAutogenerated, symbolVrom)
}

// GetSymbol delegates to the Context.
func (s *SectionBase) GetSymbol(vram uint32, vromAddress *uint32, tryPlusOffset bool, checkUpperLimit bool) *ContextSymbol {
	return s.Ctx.GetSymbol(vram, vromAddress, tryPlusOffset, checkUpperLimit)
}

// AddJumpTableLabel delegates to the Context.
func (s *SectionBase) AddJumpTableLabel(vram uint32, isAutogenerated bool) *ContextSymbol {
	return s.Ctx.AddJumpTableLabel(vram, isAutogenerated)
}

// CheckAndCreateFirstSymbol ensures the very first local offset has a
// ContextSymbol, so partitioning always has an initial anchor (spec.md
// §4.2). A no-op when AddNewSymbols is disabled or the section isn't
// VRAM-placed.
func (s *SectionBase) CheckAndCreateFirstSymbol() {
	if !s.Config.AddNewSymbols {
		return
	}

	vram, ok := s.GetVramOffset(0)
	if !ok {
		return
	}

	sym := s.Ctx.GetSymbol(vram, nil, false, false)
	if sym == nil {
		vrom := s.GetVromOffset(0)
		sym = s.Ctx.AddSymbol(vram, s.SectionType, true, &vrom)
	}
	sym.IsDefined = true
}

// AddStaticReloc queues a relocation to be applied on the next
// ProcessStaticRelocs call. Populated by the ELF/overlay loader, which is
// out of scope here (spec.md §1).
func (s *SectionBase) AddStaticReloc(localOffset int, value uint32) {
	s.pendingRelocs = append(s.pendingRelocs, StaticReloc{LocalOffset: localOffset, Value: value})
}

// ProcessStaticRelocs applies any accumulated static relocations collected
// during analysis (spec.md §4.2), patching the affected words in place.
func (s *SectionBase) ProcessStaticRelocs() {
	for _, reloc := range s.pendingRelocs {
		idx := reloc.LocalOffset / 4
		if idx < 0 || idx >= len(s.Words) {
			continue
		}
		s.Words[idx] = reloc.Value
	}
	s.pendingRelocs = nil
}
