package mips

import "golang.org/x/exp/constraints"

// minOf returns the smaller of a and b, used when clamping a span's end
// offset to both the section's size and the next known span (spec.md
// §4.3, §4.4 materialization), generic over the few integer types that
// show up there (int for byte offsets, uint32 for VROM addresses).
func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
