package rpike

import (
	"reflect"
	"testing"
)

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile(unclosed paren) did not panic")
		}
	}()
	MustCompile("(abc")
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "xabcy", true},
		{"abc", "ab", false},
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{"a*", "", true},
		{"a+", "", false},
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		if got := re.MatchString(tc.input); got != tc.want {
			t.Errorf("MustCompile(%q).MatchString(%q) = %v; want %v", tc.pattern, tc.input, got, tc.want)
		}
	}
}

func TestFindString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    string
	}{
		{"world", "hello world", "world"},
		{"[a-z]+", "123abc456", "abc"},
		{"notfound", "hello world", ""},
		{"^start", "start here", "start"},
		{"end$", "the end", "end"},
	}
	for _, tc := range tests {
		re := MustCompile(tc.pattern)
		if got := re.FindString(tc.input); got != tc.want {
			t.Errorf("FindString(%q, %q) = %q; want %q", tc.pattern, tc.input, got, tc.want)
		}
	}
}

func TestFindStringSubmatch(t *testing.T) {
	re := MustCompile(`(a+)(b*)`)
	got := re.FindStringSubmatch("xaaabbby")
	want := []string{"aaabbb", "aaa", "bbb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindStringSubmatch = %v; want %v", got, want)
	}

	if got := re.FindStringSubmatch("xyz"); got != nil {
		t.Errorf("FindStringSubmatch(no match) = %v; want nil", got)
	}
}

func TestFindAllString(t *testing.T) {
	re := MustCompile(`[0-9]+`)
	got := re.FindAllString("a1b22c333", -1)
	want := []string{"1", "22", "333"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllString = %v; want %v", got, want)
	}

	gotLimited := re.FindAllString("a1b22c333", 2)
	wantLimited := []string{"1", "22"}
	if !reflect.DeepEqual(gotLimited, wantLimited) {
		t.Errorf("FindAllString(n=2) = %v; want %v", gotLimited, wantLimited)
	}
}

// TestFindAllStringZeroWidth checks that a pattern able to match the
// empty string still makes forward progress instead of looping.
func TestFindAllStringZeroWidth(t *testing.T) {
	re := MustCompile(`a*`)
	got := re.FindAllString("baab", -1)
	want := []string{"", "aa", "", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllString(zero-width) = %v; want %v", got, want)
	}
}

func TestSplit(t *testing.T) {
	re := MustCompile(`,[ ]*`)
	got := re.Split("a,b,  c,d", -1)
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v; want %v", got, want)
	}
}

func TestNumSubexp(t *testing.T) {
	re := MustCompile(`(a)(b(c))`)
	if got := re.NumSubexp(); got != 3 {
		t.Errorf("NumSubexp() = %d; want 3", got)
	}
}

func TestString(t *testing.T) {
	re := MustCompile(`a+b*`)
	if got := re.String(); got != "a+b*" {
		t.Errorf("String() = %q; want %q", got, "a+b*")
	}
}
