package rpike

import "fmt"

// Regexp is a compiled pattern, safe for concurrent use by multiple
// goroutines: Compile produces an immutable Program, and every method
// below opens its own VM over it.
type Regexp struct {
	expr string
	prog *Program
	caps int
}

// Compile parses and compiles expr, or returns the first SyntaxError
// found.
func Compile(expr string) (*Regexp, error) {
	parsed, err := NewParser(expr).Parse()
	if err != nil {
		return nil, err
	}
	return &Regexp{
		expr: expr,
		prog: compileProgram(parsed),
		caps: parsed.CaptureCount,
	}, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("rpike: Compile(%q): %v", expr, err))
	}
	return re
}

// String returns the source text re was compiled from.
func (re *Regexp) String() string { return re.expr }

// NumSubexp returns the number of capturing groups in re, not
// counting the implicit group 0 for the whole match.
func (re *Regexp) NumSubexp() int { return re.caps - 1 }

// MatchString reports whether s contains any match of re.
func (re *Regexp) MatchString(s string) bool {
	matched, _ := Exec(re.prog, NewStringInput(s), ExecOptions{})
	return matched
}

// FindStringIndex returns the [start, end) byte offsets of the
// leftmost match of re in s, or nil if there is none.
func (re *Regexp) FindStringIndex(s string) []int {
	matched, caps := Exec(re.prog, NewStringInput(s), ExecOptions{Longest: true})
	if !matched {
		return nil
	}
	return []int{caps[0], caps[1]}
}

// FindString returns the text of the leftmost match of re in s, or ""
// if there is none. Use FindStringIndex to tell "no match" apart from
// a genuine empty match.
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringSubmatchIndex returns the byte offsets of the leftmost
// match and its capture groups, as pairs [start0, end0, start1,
// end1, ...], with -1 for a group that did not participate. nil means
// no match.
func (re *Regexp) FindStringSubmatchIndex(s string) []int {
	matched, caps := Exec(re.prog, NewStringInput(s), ExecOptions{Longest: true})
	if !matched {
		return nil
	}
	return caps
}

// FindStringSubmatch returns the text of the leftmost match and its
// capture groups, indexed the same way as FindStringSubmatchIndex. A
// group that did not participate reads as "".
func (re *Regexp) FindStringSubmatch(s string) []string {
	caps := re.FindStringSubmatchIndex(s)
	if caps == nil {
		return nil
	}
	result := make([]string, len(caps)/2)
	for i := range result {
		start, end := caps[2*i], caps[2*i+1]
		if start >= 0 && end >= 0 {
			result[i] = s[start:end]
		}
	}
	return result
}

// FindAllStringIndex returns the byte offsets of all successive,
// non-overlapping matches of re in s, in order. n < 0 returns every
// match; n >= 0 caps the count at n. A zero-width match is always
// followed by advancing one codepoint, so it can never loop forever.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}
	input := NewStringInput(s)
	inputLen := input.Len()
	var results [][]int
	pos := 0
	for pos <= inputLen && (n < 0 || len(results) < n) {
		matched, caps := Exec(re.prog, input, ExecOptions{Longest: true, Start: pos})
		if !matched {
			break
		}
		results = append(results, []int{caps[0], caps[1]})
		if caps[1] == caps[0] {
			_, w := input.Step(caps[1])
			if w == 0 {
				break
			}
			pos = caps[1] + w
		} else {
			pos = caps[1]
		}
	}
	return results
}

// FindAllString is FindAllStringIndex, rendered as matched text.
func (re *Regexp) FindAllString(s string, n int) []string {
	locs := re.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	result := make([]string, len(locs))
	for i, loc := range locs {
		result[i] = s[loc[0]:loc[1]]
	}
	return result
}

// FindAllStringSubmatchIndex is FindAllStringIndex generalized to
// every capture group of every match.
func (re *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}
	input := NewStringInput(s)
	inputLen := input.Len()
	var results [][]int
	pos := 0
	for pos <= inputLen && (n < 0 || len(results) < n) {
		matched, caps := Exec(re.prog, input, ExecOptions{Longest: true, Start: pos})
		if !matched {
			break
		}
		results = append(results, caps)
		if caps[1] == caps[0] {
			_, w := input.Step(caps[1])
			if w == 0 {
				break
			}
			pos = caps[1] + w
		} else {
			pos = caps[1]
		}
	}
	return results
}

// FindAllStringSubmatch is FindAllStringSubmatchIndex, rendered as
// matched text, per group, per match.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	allCaps := re.FindAllStringSubmatchIndex(s, n)
	if allCaps == nil {
		return nil
	}
	results := make([][]string, len(allCaps))
	for i, caps := range allCaps {
		group := make([]string, len(caps)/2)
		for j := range group {
			start, end := caps[2*j], caps[2*j+1]
			if start >= 0 && end >= 0 {
				group[j] = s[start:end]
			}
		}
		results[i] = group
	}
	return results
}

// Split slices s into the substrings between successive matches of
// re, dropping the matches themselves. n < 0 returns every piece;
// n >= 0 caps the number of pieces at n.
func (re *Regexp) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	matches := re.FindAllStringIndex(s, -1)
	if matches == nil {
		return []string{s}
	}
	if n > 0 && len(matches) > n-1 {
		matches = matches[:n-1]
	}
	result := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		result = append(result, s[prev:m[0]])
		prev = m[1]
	}
	result = append(result, s[prev:])
	return result
}
