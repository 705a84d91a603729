package rpike

// splitSingles separates the single-codepoint sentinels (Max == 0) from
// the proper lo-hi ranges in a class's range table, preserving order
// within each group. The bytecode encoding requires singles first,
// then pairs (§4.3).
func splitSingles(ranges []CharRange) (singles []rune, pairs []CharRange) {
	for _, r := range ranges {
		if r.Max == 0 {
			singles = append(singles, r.Min)
		} else {
			pairs = append(pairs, r)
		}
	}
	return singles, pairs
}
