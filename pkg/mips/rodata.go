package mips

import "sort"

// Rodata partitions a read-only-data section into SymbolRodata spans. It
// extends Data's partitioning with jump-table recognition and file
// boundary detection (spec.md §4.4).
type Rodata struct {
	SectionBase

	SymbolList   []*SymbolRodata
	SymbolsVRams map[uint32]struct{}
}

// NewRodata constructs a rodata section from raw bytes.
func NewRodata(ctx ContextStore, cfg GlobalConfig, vromStart, vromEnd uint32, vram int64, bytes []byte, segmentVromStart uint32, overlayCategory string) *Rodata {
	words := BytesToWords(bytes, cfg.endianFor(SectionRodata))
	base := NewSectionBase(ctx, cfg, SectionRodata, vromStart, vromEnd, vram, words, segmentVromStart, overlayCategory)
	return &Rodata{
		SectionBase:  base,
		SymbolsVRams: make(map[uint32]struct{}),
	}
}

type rodataSpanEntry struct {
	offset int
	vram   uint32
	sym    *ContextSymbol
}

// Analyze runs the jump-table state machine and partitioning algorithm
// from spec.md §4.4.
func (r *Rodata) Analyze() {
	r.CheckAndCreateFirstSymbol()

	var spans []rodataSpanEntry

	var lastVramSymbol *ContextSymbol
	partOfJumpTable := false
	var firstJumptableWord Word

	localOffset := 0
	for range r.Words {
		currentVram, hasVram := r.GetVramOffset(localOffset)
		currentVrom := r.GetVromOffset(localOffset)
		w := r.Words[localOffset/4]

		var contextSym *ContextSymbol
		var vromPtr *uint32
		if hasVram {
			vromPtr = &currentVrom
			contextSym = r.GetSymbol(currentVram, vromPtr, false, false)
		}

		if contextSym != nil {
			lastVramSymbol = contextSym
		}

		switch {
		case contextSym != nil && contextSym.IsJumpTable():
			partOfJumpTable = true
			firstJumptableWord = w

		case partOfJumpTable:
			if _, pinned := r.PointersOffsets[localOffset]; pinned {
				// stays true
			} else if w == 0 {
				partOfJumpTable = false
			} else if contextSym != nil {
				partOfJumpTable = false
			} else if ((w>>24)&0xFF) != ((firstJumptableWord>>24)&0xFF) {
				partOfJumpTable = false
				if lastVramSymbol != nil && lastVramSymbol.IsJumpTable() && lastVramSymbol.IsGot && r.Config.GPValue != nil {
					partOfJumpTable = true
				}
			}
		}

		if partOfJumpTable {
			var labelAddr uint32
			if lastVramSymbol != nil && lastVramSymbol.IsGot && r.Config.GPValue != nil {
				labelAddr = uint32(*r.Config.GPValue + int64(int32(w)))
			} else {
				labelAddr = w
			}

			labelSym := r.AddJumpTableLabel(labelAddr, true)
			if labelSym.UnknownSegment {
				partOfJumpTable = false
			} else {
				labelSym.ReferenceCounter++
			}
		}

		if !partOfJumpTable {
			if hasVram && r.PopPointerInDataReference(currentVram) {
				contextSym = r.AddSymbol(currentVram, r.SectionType, true, nil)
				r.applyStringGuesses(contextSym, localOffset)
				lastVramSymbol = contextSym
			} else if contextSym != nil {
				r.applyStringGuesses(contextSym, localOffset)
			} else if lastVramSymbol != nil && lastVramSymbol.IsJumpTable() && w != 0 {
				// Trailing-label rule (spec.md §4.4): terminate the table.
				contextSym = r.AddSymbol(currentVram, r.SectionType, true, nil)
				r.applyStringGuesses(contextSym, localOffset)
				lastVramSymbol = contextSym
			}

			r.CheckWordIsASymbolReference(w)
		}

		if contextSym != nil {
			if hasVram {
				contextSym.IsDefined = true
				r.SymbolsVRams[currentVram] = struct{}{}
				spans = append(spans, rodataSpanEntry{localOffset, currentVram, contextSym})
			}
			r.maybeCreatePad(contextSym, localOffset, currentVrom)
		}

		localOffset += 4
	}

	r.ProcessStaticRelocs()
	r.materializeAndFindBoundaries(spans)
}

func (r *Rodata) applyStringGuesses(sym *ContextSymbol, localOffset int) {
	sym.IsMaybeString = r.stringGuesser(localOffset)
	sym.IsMaybePascalString = r.pascalStringGuesser(localOffset)
}

func (r *Rodata) maybeCreatePad(sym *ContextSymbol, localOffset int, currentVrom uint32) {
	if !r.Config.CreateRodataPads || !sym.HasUserDeclaredSize() {
		return
	}

	size := sym.GetSize()
	if size == 0 || localOffset+int(size) >= r.ByteSize() {
		return
	}

	padVrom := currentVrom + size
	pad := r.AddSymbol(sym.Vram+size, r.SectionType, true, &padVrom)
	pad.IsAutoCreatedPad = true
}

func (r *Rodata) materializeAndFindBoundaries(spans []rodataSpanEntry) {
	previousWasLateRodata := false
	previousExtraPadding := 0

	for i, entry := range spans {
		endOffset := r.ByteSize()
		if i+1 < len(spans) {
			endOffset = minOf(endOffset, spans[i+1].offset)
		}

		words := r.Words[entry.offset/4 : endOffset/4]

		vrom := r.GetVromOffset(entry.offset)
		vromEnd := vrom + 4*uint32(len(words))

		sym := NewSymbolRodata(entry.sym, words, entry.offset+r.InFileOffset, true, entry.vram, vrom, vromEnd, r.SegmentVromStart, r.OverlayCategory, r.StringEncoding)
		sym.SetCommentOffset(r.CommentOffset)
		sym.Analyze()

		r.SymbolList = append(r.SymbolList, sym)

		if sym.InFileOffset%16 == 0 {
			switch {
			case previousWasLateRodata && !sym.ContextSym.IsLateRodata():
				r.FileBoundaries = append(r.FileBoundaries, sym.InFileOffset)
			case previousExtraPadding > 0:
				switch {
				case sym.IsDouble(0):
					if previousExtraPadding >= 2 {
						r.FileBoundaries = append(r.FileBoundaries, sym.InFileOffset)
					}
				case sym.IsJumpTable() && r.Config.Compiler != CompilerIDO:
					if previousExtraPadding >= 2 {
						r.FileBoundaries = append(r.FileBoundaries, sym.InFileOffset)
					}
				default:
					r.FileBoundaries = append(r.FileBoundaries, sym.InFileOffset)
				}
			}
		}

		previousWasLateRodata = sym.ContextSym.IsLateRodata()
		previousExtraPadding = sym.CountExtraPadding()
	}

	r.FileBoundaries = dedupSortedInts(r.FileBoundaries)
}

func dedupSortedInts(in []int) []int {
	if len(in) == 0 {
		return in
	}
	sort.Ints(in)
	out := in[:1]
	for _, v := range in[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// RemovePointers composes the base implementation with the same rule,
// kept explicit because rodata subclassing (a future section kind
// extending Rodata) may want to add to this rather than replace it
// (spec.md §4.6).
func (r *Rodata) RemovePointers() bool {
	wasUpdated := r.SectionBase.RemovePointers()

	if !r.Config.RemovePointers {
		return wasUpdated
	}

	for i, w := range r.Words {
		normalized, changed := normalizePointerWord(w)
		if changed {
			r.Words[i] = normalized
			wasUpdated = true
		}
	}

	return wasUpdated
}
