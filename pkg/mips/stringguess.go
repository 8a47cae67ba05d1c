package mips

// isPrintableStringByte reports whether c is plausible content for a
// human-authored string in either ASCII or the EUC-JP encoding rodata
// defaults to (spec.md §3, StringEncoding).
func isPrintableStringByte(c byte) bool {
	if c >= 0x20 && c < 0x7F {
		return true
	}
	if c == '\n' || c == '\t' {
		return true
	}
	// EUC-JP two-byte lead/trail bytes.
	if c >= 0xA1 && c <= 0xFE {
		return true
	}
	return false
}

const maxStringGuessScan = 4096

// looksLikeCString reports whether b starts with a run of printable bytes
// terminated by a NUL, within a bounded scan window.
func looksLikeCString(b []byte) bool {
	limit := len(b)
	if limit > maxStringGuessScan {
		limit = maxStringGuessScan
	}

	for i := 0; i < limit; i++ {
		c := b[i]
		if c == 0 {
			return i > 0
		}
		if !isPrintableStringByte(c) {
			return false
		}
	}
	return false
}

// looksLikePascalString reports whether b starts with a non-zero one-byte
// length prefix followed by that many bytes, each printable or NUL.
func looksLikePascalString(b []byte) bool {
	if len(b) < 2 {
		return false
	}

	length := int(b[0])
	if length == 0 {
		return false
	}

	end := 1 + length
	if end > len(b) {
		return false
	}

	for _, c := range b[1:end] {
		if c != 0 && !isPrintableStringByte(c) {
			return false
		}
	}
	return true
}

// bytesFrom returns the section's words reinterpreted as big-endian bytes,
// starting at localOffset. A read-only view; never mutates Words.
func (s *SectionBase) bytesFrom(localOffset int) []byte {
	all := WordsToBEBytes(s.Words)
	if localOffset >= len(all) {
		return nil
	}
	return all[localOffset:]
}

// stringGuesser runs the C-string heuristic starting at localOffset.
func (s *SectionBase) stringGuesser(localOffset int) bool {
	return looksLikeCString(s.bytesFrom(localOffset))
}

// pascalStringGuesser runs the Pascal-string heuristic starting at
// localOffset.
func (s *SectionBase) pascalStringGuesser(localOffset int) bool {
	return looksLikePascalString(s.bytesFrom(localOffset))
}
