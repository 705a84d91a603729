package rpike

// byte_api.go mirrors the *String methods for []byte callers by
// delegating through a string conversion, so each call copies b once.

// Find returns the leftmost match in b, or nil if there is none.
func (re *Regexp) Find(b []byte) []byte {
	loc := re.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]]
}

// FindIndex is FindStringIndex for a []byte haystack.
func (re *Regexp) FindIndex(b []byte) []int {
	return re.FindStringIndex(string(b))
}

// FindSubmatch is FindStringSubmatch for a []byte haystack.
func (re *Regexp) FindSubmatch(b []byte) [][]byte {
	groups := re.FindStringSubmatch(string(b))
	if groups == nil {
		return nil
	}
	result := make([][]byte, len(groups))
	for i, g := range groups {
		if g != "" {
			result[i] = []byte(g)
		}
	}
	return result
}

// FindAll is FindAllString for a []byte haystack.
func (re *Regexp) FindAll(b []byte, n int) [][]byte {
	locs := re.FindAllIndex(b, n)
	if locs == nil {
		return nil
	}
	result := make([][]byte, len(locs))
	for i, loc := range locs {
		result[i] = b[loc[0]:loc[1]]
	}
	return result
}

// FindAllIndex is FindAllStringIndex for a []byte haystack.
func (re *Regexp) FindAllIndex(b []byte, n int) [][]int {
	return re.FindAllStringIndex(string(b), n)
}

// FindAllSubmatch is FindAllStringSubmatch for a []byte haystack.
func (re *Regexp) FindAllSubmatch(b []byte, n int) [][][]byte {
	allGroups := re.FindAllStringSubmatch(string(b), n)
	if allGroups == nil {
		return nil
	}
	result := make([][][]byte, len(allGroups))
	for i, groups := range allGroups {
		converted := make([][]byte, len(groups))
		for j, g := range groups {
			if g != "" {
				converted[j] = []byte(g)
			}
		}
		result[i] = converted
	}
	return result
}

// Match reports whether b contains any match of re.
func (re *Regexp) Match(b []byte) bool {
	return re.MatchString(string(b))
}
