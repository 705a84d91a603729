package rpike

import "strings"

// ReplaceAllString replaces every match of re in src with repl, after
// expanding $1, $2, ... and ${1}, ${2}, ... references to that
// match's capture groups ($$ for a literal dollar sign). A reference
// to a group past NumSubexp, or to one that did not participate in
// the match, expands to "".
func (re *Regexp) ReplaceAllString(src, repl string) string {
	allGroups := re.FindAllStringSubmatch(src, -1)
	if allGroups == nil {
		return src
	}
	indices := re.FindAllStringIndex(src, -1)

	var out strings.Builder
	lastEnd := 0
	for i, groups := range allGroups {
		out.WriteString(src[lastEnd:indices[i][0]])
		expandTemplate(&out, repl, groups)
		lastEnd = indices[i][1]
	}
	out.WriteString(src[lastEnd:])
	return out.String()
}

// ReplaceAllLiteralString replaces every match of re in src with repl
// verbatim, without $-expansion.
func (re *Regexp) ReplaceAllLiteralString(src, repl string) string {
	return re.ReplaceAllStringFunc(src, func(string) string { return repl })
}

// ReplaceAllStringFunc replaces every match of re in src with the
// result of calling repl on the matched text.
func (re *Regexp) ReplaceAllStringFunc(src string, repl func(string) string) string {
	locs := re.FindAllStringIndex(src, -1)
	if locs == nil {
		return src
	}
	var out strings.Builder
	lastEnd := 0
	for _, loc := range locs {
		out.WriteString(src[lastEnd:loc[0]])
		out.WriteString(repl(src[loc[0]:loc[1]]))
		lastEnd = loc[1]
	}
	out.WriteString(src[lastEnd:])
	return out.String()
}

// ReplaceAll is ReplaceAllString for byte slices.
func (re *Regexp) ReplaceAll(src, repl []byte) []byte {
	return []byte(re.ReplaceAllString(string(src), string(repl)))
}

// ReplaceAllLiteral is ReplaceAllLiteralString for byte slices.
func (re *Regexp) ReplaceAllLiteral(src, repl []byte) []byte {
	return []byte(re.ReplaceAllLiteralString(string(src), string(repl)))
}

// ReplaceAllFunc is ReplaceAllStringFunc for byte slices.
func (re *Regexp) ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte {
	return []byte(re.ReplaceAllStringFunc(string(src), func(s string) string {
		return string(repl([]byte(s)))
	}))
}

// expandTemplate writes template to out with $N and ${N} references
// substituted from groups (group 0 is the whole match). Named groups
// are not supported by this engine, so $name and ${name} fall through
// to the "invalid reference" case and expand to "" like any
// out-of-range N.
func expandTemplate(out *strings.Builder, template string, groups []string) {
	i := 0
	for i < len(template) {
		if template[i] != '$' {
			out.WriteByte(template[i])
			i++
			continue
		}
		i++
		if i >= len(template) {
			out.WriteByte('$')
			break
		}
		if template[i] == '$' {
			out.WriteByte('$')
			i++
			continue
		}
		if template[i] == '{' {
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				out.WriteString("${")
				i++
				continue
			}
			writeGroupRef(out, template[i+1:i+end], groups)
			i += end + 1
			continue
		}
		start := i
		for i < len(template) && template[i] >= '0' && template[i] <= '9' {
			i++
		}
		if i == start {
			for i < len(template) && isWordChar(rune(template[i])) {
				i++
			}
			if i == start {
				out.WriteByte('$')
			}
			continue
		}
		writeGroupRef(out, template[start:i], groups)
	}
}

// writeGroupRef parses ref as a decimal group number and writes that
// group's text, or nothing if ref isn't numeric or the index is out
// of range.
func writeGroupRef(out *strings.Builder, ref string, groups []string) {
	if ref == "" {
		return
	}
	idx := 0
	for _, c := range ref {
		if c < '0' || c > '9' {
			return
		}
		idx = idx*10 + int(c-'0')
	}
	if idx < len(groups) {
		out.WriteString(groups[idx])
	}
}
