package mips

import "github.com/Manu343726/spimgo/pkg/utils"

// CompareResult reports how two sections' word buffers relate, following
// the diff contract in spec.md §6: callers can tell equal builds from
// merely same-sized ones, and how much of the common prefix differs.
type CompareResult struct {
	Equal bool

	HashOne string
	HashTwo string

	SizeOne int
	SizeTwo int

	// DiffBytes counts differing bytes within the first min(len(one),
	// len(two)) words.
	DiffBytes int
	// DiffWords counts differing word positions over the same prefix.
	DiffWords int
}

// Compare computes a CompareResult between two word buffers, independent
// of any section machinery, so callers can diff arbitrary extracted spans
// as well as whole sections (spec.md §6).
func Compare(one, two []Word) CompareResult {
	result := CompareResult{
		HashOne: Hash(one),
		HashTwo: Hash(two),
		SizeOne: 4 * len(one),
		SizeTwo: 4 * len(two),
	}

	limit := utils.Min([]int{len(one), len(two)})

	for i := 0; i < limit; i++ {
		if one[i] == two[i] {
			continue
		}
		result.DiffWords++
		for j := uint(0); j < 4; j++ {
			shift := j * 8
			if (one[i]>>shift)&0xFF != (two[i]>>shift)&0xFF {
				result.DiffBytes++
			}
		}
	}

	result.Equal = result.DiffWords == 0 && len(one) == len(two)

	return result
}

// CompareToFile compares this section's words against another section's,
// the per-section half of the whole-file diff contract (spec.md §6).
func (s *SectionBase) CompareToFile(other *SectionBase) CompareResult {
	return Compare(s.Words, other.Words)
}
