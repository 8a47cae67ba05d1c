package mips

import "github.com/Manu343726/spimgo/pkg/utils"

// looksLikePointerForNormalization implements the diffing predicate from
// spec.md §4.6: a word "looks like a pointer" if its top byte places it in
// the N64 KSEG0 region (0x80) or tags it as a small 0x0X overlay segment
// (high nibble zero, low nibble non-zero). This is narrower in one
// direction and broader in another than looksLikeVramPointer: it is a
// normalization policy, not a discovery heuristic, and the two are kept
// independent per spec.md §9's note that this classifier is target-ABI
// specific and should be a separate policy knob.
func looksLikePointerForNormalization(w Word) bool {
	topByte := utils.CreateBitView(&w).Read(24, 8)
	if topByte == 0x80 {
		return true
	}
	if (topByte&0xF0) == 0x00 && (topByte&0x0F) != 0x00 {
		return true
	}
	return false
}

// normalizePointerWord zeroes the low 24 bits of w, keeping only its top
// byte, if w looks like a pointer. Returns the (possibly unchanged) word
// and whether it was modified.
func normalizePointerWord(w Word) (Word, bool) {
	if !looksLikePointerForNormalization(w) {
		return w, false
	}

	var normalized Word
	topByte := utils.CreateBitView(&w).Read(24, 8)
	utils.CreateBitView(&normalized).Write(topByte, 24, 8)
	return normalized, normalized != w
}

// RemovePointers walks every word in the section and, if it looks like a
// pointer, zeroes its low-order bytes so two builds become byte-comparable
// (spec.md §4.6). It is a no-op, returning false, unless
// GlobalConfig.RemovePointers is set. Applying it twice is a retraction:
// the second pass finds nothing left to change (spec.md §8).
func (s *SectionBase) RemovePointers() bool {
	if !s.Config.RemovePointers {
		return false
	}

	wasUpdated := false
	for i, w := range s.Words {
		normalized, changed := normalizePointerWord(w)
		if changed {
			s.Words[i] = normalized
			wasUpdated = true
		}
	}
	return wasUpdated
}
