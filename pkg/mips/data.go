package mips

import "sort"

// Data partitions an initialized-data section into SymbolData spans,
// creating ContextSymbols for newly discovered pointer targets (spec.md
// §4.3).
type Data struct {
	SectionBase

	SymbolList   []*SymbolData
	SymbolsVRams map[uint32]struct{}
}

// NewData constructs a data section from raw bytes, decoding them into
// words using the configured (or default) endianness (spec.md §4.1).
func NewData(ctx ContextStore, cfg GlobalConfig, vromStart, vromEnd uint32, vram int64, bytes []byte, segmentVromStart uint32, overlayCategory string) *Data {
	words := BytesToWords(bytes, cfg.endianFor(SectionData))
	base := NewSectionBase(ctx, cfg, SectionData, vromStart, vromEnd, vram, words, segmentVromStart, overlayCategory)
	return &Data{
		SectionBase:  base,
		SymbolsVRams: make(map[uint32]struct{}),
	}
}

type dataSpanEntry struct {
	offset int
	sym    *ContextSymbol
}

// Analyze runs the two-pass partitioning algorithm from spec.md §4.3.
func (d *Data) Analyze() {
	d.CheckAndCreateFirstSymbol()

	var spans []dataSpanEntry
	haveSpanAt := make(map[int]bool)
	needsFurtherAnalysis := false

	localOffset := 0
	for range d.Words {
		currentVram, hasVram := d.GetVramOffset(localOffset)
		currentVrom := d.GetVromOffset(localOffset)
		w := d.Words[localOffset/4]

		var vromPtr *uint32
		if hasVram {
			vromPtr = &currentVrom
		}

		if hasVram {
			if contextSym := d.GetSymbol(currentVram, vromPtr, false, false); contextSym != nil {
				contextSym.IsDefined = true
				spans = append(spans, dataSpanEntry{localOffset, contextSym})
				haveSpanAt[localOffset] = true
				d.applyStringGuesses(contextSym, localOffset)
				d.maybeCreatePad(contextSym, localOffset, currentVrom)
			} else if d.PopPointerInDataReference(currentVram) {
				contextSym := d.AddSymbol(currentVram, d.SectionType, true, nil)
				contextSym.IsDefined = true
				d.applyStringGuesses(contextSym, localOffset)
				spans = append(spans, dataSpanEntry{localOffset, contextSym})
				haveSpanAt[localOffset] = true
			}
		}

		if d.CheckWordIsASymbolReference(w) {
			if hasVram && w < currentVram && d.ContainsVram(w) {
				needsFurtherAnalysis = true
			}
		}

		localOffset += 4
	}

	if needsFurtherAnalysis {
		localOffset = 0
		for range d.Words {
			currentVram, hasVram := d.GetVramOffset(localOffset)
			currentVrom := d.GetVromOffset(localOffset)

			if hasVram && !haveSpanAt[localOffset] && d.PopPointerInDataReference(currentVram) {
				contextSym := d.GetSymbol(currentVram, &currentVrom, true, true)
				if contextSym == nil {
					contextSym = d.AddSymbol(currentVram, d.SectionType, true, nil)
				}
				contextSym.SectionType = d.SectionType
				contextSym.IsDefined = true
				d.applyStringGuesses(contextSym, localOffset)
				spans = append(spans, dataSpanEntry{localOffset, contextSym})
				haveSpanAt[localOffset] = true
			}

			localOffset += 4
		}

		sort.Slice(spans, func(i, j int) bool { return spans[i].offset < spans[j].offset })
	}

	d.ProcessStaticRelocs()
	d.materialize(spans)
}

func (d *Data) applyStringGuesses(sym *ContextSymbol, localOffset int) {
	sym.IsMaybeString = d.stringGuesser(localOffset)
	sym.IsMaybePascalString = d.pascalStringGuesser(localOffset)
}

func (d *Data) maybeCreatePad(sym *ContextSymbol, localOffset int, currentVrom uint32) {
	if !d.Config.CreateDataPads || !sym.HasUserDeclaredSize() {
		return
	}

	size := sym.GetSize()
	if size == 0 || localOffset+int(size) >= d.ByteSize() {
		return
	}

	padVrom := currentVrom + size
	pad := d.AddSymbol(sym.Vram+size, d.SectionType, true, &padVrom)
	pad.IsAutoCreatedPad = true
}

// materialize slices d.Words into spans and runs each SymbolData's analyze
// step (spec.md §4.3 "Materialization").
func (d *Data) materialize(spans []dataSpanEntry) {
	for i, entry := range spans {
		if i > 0 && entry.offset == spans[i-1].offset {
			continue
		}

		endOffset := d.ByteSize()
		if i+1 < len(spans) {
			endOffset = minOf(endOffset, spans[i+1].offset)
		}
		if endOffset == entry.offset {
			continue
		}

		words := d.Words[entry.offset/4 : endOffset/4]

		vrom := d.GetVromOffset(entry.offset)
		vromEnd := vrom + 4*uint32(len(words))

		hasVram := d.Vram >= 0

		sym := NewSymbolData(entry.sym, words, entry.offset+d.InFileOffset, hasVram, entry.sym.Vram, vrom, vromEnd, d.SegmentVromStart, d.OverlayCategory, d.StringEncoding)
		sym.SetCommentOffset(d.CommentOffset)
		sym.Analyze()

		d.SymbolList = append(d.SymbolList, sym)
		d.SymbolsVRams[entry.sym.Vram] = struct{}{}
	}
}
