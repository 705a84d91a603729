package rpike

import (
	"fmt"
	"strings"
	"testing"
)

// TestStressLongInput exercises the compiled-in search prefix against a
// long run of non-matching input before the real match.
func TestStressLongInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	re := MustCompile("needle")
	haystack := strings.Repeat("x", 100000) + "needle"

	if !re.MatchString(haystack) {
		t.Error("Should find needle in very long string")
	}

	got := re.FindString(haystack)
	if got != "needle" {
		t.Errorf("FindString in long input: got %q; want %q", got, "needle")
	}
}

// TestStressComplexPattern exercises alternation with many branches, the
// same shape addThread's duplicate-collapse is meant to keep linear.
func TestStressComplexPattern(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	alternatives := make([]string, 100)
	for i := range alternatives {
		alternatives[i] = fmt.Sprintf("word%d", i)
	}
	pattern := strings.Join(alternatives, "|")

	re := MustCompile(pattern)
	if !re.MatchString("word50") {
		t.Error("Should match in large alternation")
	}
	if !re.MatchString("word0") {
		t.Error("Should match first alternative")
	}
	if !re.MatchString("word99") {
		t.Error("Should match last alternative")
	}
}

// TestStressNestedGroups checks capture numbering stays correct at depth.
func TestStressNestedGroups(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	depth := 20
	pattern := strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
	re, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Should compile nested groups: %v", err)
	}

	if !re.MatchString("a") {
		t.Error("Nested groups should match")
	}

	matches := re.FindStringSubmatch("a")
	expectedLen := depth + 1 // whole match plus one per group
	if len(matches) != expectedLen {
		t.Errorf("Expected %d capture groups, got %d", expectedLen, len(matches))
	}
}

// TestStressRepeatedQuantifiers checks a large bounded-below repeat. A
// bare {n} is unbounded in this engine (see DESIGN.md), so this pins
// "at least 1000" rather than "exactly 1000".
func TestStressRepeatedQuantifiers(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	re := MustCompile("a{1000}")
	input := strings.Repeat("a", 1000)

	if !re.MatchString(input) {
		t.Error("Should match 1000 'a's")
	}
	if re.MatchString(strings.Repeat("a", 999)) {
		t.Error("Should not match only 999 'a's")
	}
	if !re.MatchString(strings.Repeat("a", 1001)) {
		t.Error("Should match 1001 'a's (bare {n} is unbounded, not exact)")
	}
}

// TestStressLongCharacterClass checks a character class with many
// escaped and unescaped syntax characters as members.
func TestStressLongCharacterClass(t *testing.T) {
	re := MustCompile(`[a-zA-Z0-9_!@#$%^&*()\-+={}\[\]:;"'<>,.?/\\|` + "`" + `~]`)

	testChars := "abcXYZ123!@#"
	for _, ch := range testChars {
		if !re.MatchString(string(ch)) {
			t.Errorf("Should match character %q", ch)
		}
	}
}
