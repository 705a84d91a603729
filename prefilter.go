package rpike

import "github.com/coregx/ahocorasick"

// Prefilter wraps an Aho-Corasick automaton over the literal prefixes
// reachable from a program's root node. Search-mode Exec probes it
// before seeding any thread: if none of the literals occur anywhere in
// the haystack, no thread can ever reach OpMatch, and the search fails
// without running the VM at all. This mirrors the literal-prefix
// bypass the corpus's larger engines use ahead of their own NFA/PikeVM
// fallback.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// buildPrefilter extracts a set of literals, at least one of which must
// occur in any match of root, and compiles them into a Prefilter, or
// returns nil if root's structure doesn't reduce to such a set — for
// example because root is only a character class, or every literal is
// reachable through a quantifier that allows zero occurrences.
func buildPrefilter(root *Node) *Prefilter {
	prefixes := extractPrefixes(root)
	if len(prefixes) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range prefixes {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{automaton: automaton}
}

// isZeroWidthAssertion reports whether op consumes no input codepoints,
// so a Sequence scan can step past it without skipping over anything a
// prefilter needs to account for.
func isZeroWidthAssertion(op Op) bool {
	switch op {
	case AstLineStart, AstLineEnd, AstWordBoundary, AstNotWordBoundary, AstSubjectBegin, AstSubjectEnd:
		return true
	}
	return false
}

// extractPrefixes returns the required literal prefix(es) of node — one
// string for a single mandatory literal run, or one per branch for an
// alternation — or nil if node doesn't reduce to a fixed, non-empty set
// of literals at least one of which every match must contain.
//
// For a Sequence, this looks past any leading zero-width assertions
// (^, $, \b, \B, \`, \') and past any leading child whose quantifier
// allows zero occurrences (so "a*foo" still yields "foo"), stopping at
// the first child that is both mandatory and width-bearing. That child
// can itself be a nested alternation (covering patterns like
// "^(foo|bar)baz$" and ".*\b(foo|bar)\b.*", where the alternation is
// not the Sequence's first child but is still the first thing every
// match is guaranteed to contain).
func extractPrefixes(node *Node) []string {
	if node.Op == AstAlternation {
		left := extractPrefixes(node.Children[0])
		if left == nil {
			return nil
		}
		right := extractPrefixes(node.Children[1])
		if right == nil {
			return nil
		}
		return append(left, right...)
	}
	if node.Op == AstSequence {
		for i, child := range node.Children {
			if isZeroWidthAssertion(child.Op) {
				continue
			}
			if child.Quantifier.AllowsNone() {
				continue
			}
			if child.Op == AstLiteral && child.Quantifier.Kind == QOne {
				run := literalRun(node.Children[i:])
				if run == "" {
					return nil
				}
				return []string{run}
			}
			return extractPrefixes(child)
		}
		return nil
	}
	lit := literalPrefix(node)
	if lit == "" {
		return nil
	}
	return []string{lit}
}

// literalRun returns the longest run of mandatory, unquantified literal
// children at the front of children.
func literalRun(children []*Node) string {
	var run []rune
	for _, child := range children {
		if child.Op != AstLiteral || child.Quantifier.Kind != QOne {
			break
		}
		run = append(run, rune(child.Value))
	}
	return string(run)
}

// literalPrefix returns node's own literal value if node is a single,
// unquantified literal, or "" otherwise.
func literalPrefix(node *Node) string {
	if node.Quantifier.Kind != QOne {
		return ""
	}
	if node.Op == AstLiteral {
		return string(rune(node.Value))
	}
	return ""
}

// MightMatch reports whether haystack could possibly contain a match
// for the program this Prefilter was built from. false is a proof
// that it cannot; true means the VM still needs to check. A nil
// receiver (no prefilter available) always answers true.
func (pf *Prefilter) MightMatch(haystack []byte) bool {
	if pf == nil {
		return true
	}
	return pf.automaton.IsMatch(haystack)
}
