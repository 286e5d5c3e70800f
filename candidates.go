package umlaut

import "iter"

// Candidates enumerates the spellings of w resulting from every non-empty
// subset of its replacements.
//
// Subsets are enumerated by ascending bitmask, where bit i selects the i-th
// replacement from the left. For replacements (a, b, c) the order is
//
//	a, b, ab, c, ac, bc, abc
//
// Clients accept the first valid candidate, so this order decides between
// several valid spellings. The unmodified word is never produced.
func (w *Word) Candidates() iter.Seq[string] {
	return func(yield func(string) bool) {
		n := len(w.replacements)
		if n == 0 {
			return
		}
		assert(n < 63, "too many replacements to enumerate")
		subset := make([]Replacement, 0, n)
		for mask := uint64(1); mask < 1<<n; mask++ {
			subset = subset[:0]
			for i, r := range w.replacements {
				if mask&(1<<i) != 0 {
					subset = append(subset, r)
				}
			}
			if !yield(w.apply(subset)) {
				return
			}
		}
	}
}
