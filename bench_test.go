package rpike

import (
	"strings"
	"testing"
)

func BenchmarkLiteral(b *testing.B) {
	re := MustCompile("abc")
	input := "xabcy"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkCharClass(b *testing.B) {
	re := MustCompile("[a-zA-Z0-9_]+")
	input := "hello_world_123"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkNegatedCharClass(b *testing.B) {
	re := MustCompile("[^0-9]+")
	input := "abcdefghijklmnop"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkBoundedQuantifier(b *testing.B) {
	re := MustCompile("[0-9]{3}-[0-9]{4}")
	input := "123-4567"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkAlternation(b *testing.B) {
	re := MustCompile("foo|bar|baz")
	input := "baz"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkWordBoundary(b *testing.B) {
	re := MustCompile(`\bword\b`)
	input := "find word in text"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkQuantifierStar(b *testing.B) {
	re := MustCompile("a*b")
	input := strings.Repeat("a", 100) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

func BenchmarkQuantifierPlus(b *testing.B) {
	re := MustCompile("a+b")
	input := strings.Repeat("a", 100) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}

// BenchmarkNestedQuantifiers tracks the cost of a nested-quantifier
// pattern that would blow up exponentially under backtracking; the
// thread-list VM's duplicate-collapse keeps it linear in input length
// regardless of nesting.
func BenchmarkNestedQuantifiers(b *testing.B) {
	re := MustCompile(`(a+)+b`)
	input := strings.Repeat("a", 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}
