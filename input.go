package rpike

import (
	"io"
	"unicode/utf8"
)

// Input is the UTF-8 view the VM's execution loop decodes the haystack
// through (the parser decodes the pattern string directly). Captures
// are byte offsets into this view, so every implementation must agree
// on the same byte addressing as Bytes.
type Input interface {
	// Len returns the length of the input in bytes.
	Len() int
	// Step decodes the codepoint starting at byte offset pos. At
	// pos == Len() it returns (0, 0): the end-of-input sentinel.
	Step(pos int) (r rune, width int)
	// Prev decodes the codepoint immediately preceding byte offset
	// pos, for one-step-back lookups (LineStart, WordBoundary). At
	// pos == 0 it returns (0, 0).
	Prev(pos int) (r rune, width int)
	// Bytes exposes the underlying byte sequence, for the
	// Aho-Corasick prefilter.
	Bytes() []byte
}

// StringInput implements Input for a string.
type StringInput struct {
	s string
}

func NewStringInput(s string) *StringInput { return &StringInput{s: s} }

func (in *StringInput) Len() int { return len(in.s) }

func (in *StringInput) Step(pos int) (rune, int) {
	if pos >= len(in.s) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(in.s[pos:])
}

func (in *StringInput) Prev(pos int) (rune, int) {
	if pos <= 0 {
		return 0, 0
	}
	return utf8.DecodeLastRuneInString(in.s[:pos])
}

func (in *StringInput) Bytes() []byte { return []byte(in.s) }

// BytesInput implements Input for a []byte, avoiding the string copy
// StringInput.Bytes would otherwise need.
type BytesInput struct {
	b []byte
}

func NewBytesInput(b []byte) *BytesInput { return &BytesInput{b: b} }

func (in *BytesInput) Len() int { return len(in.b) }

func (in *BytesInput) Step(pos int) (rune, int) {
	if pos >= len(in.b) {
		return 0, 0
	}
	return utf8.DecodeRune(in.b[pos:])
}

func (in *BytesInput) Prev(pos int) (rune, int) {
	if pos <= 0 {
		return 0, 0
	}
	return utf8.DecodeLastRune(in.b[:pos])
}

func (in *BytesInput) Bytes() []byte { return in.b }

// ReaderInput buffers an io.Reader fully and then behaves like
// BytesInput; the VM needs random access over the thread frontier, so
// there is no way to stream it incrementally.
type ReaderInput struct {
	*BytesInput
}

func NewReaderInput(r io.Reader) (*ReaderInput, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &ReaderInput{BytesInput: NewBytesInput(b)}, nil
}
