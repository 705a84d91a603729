package rpike

import (
	"encoding/binary"
	"unicode/utf8"
)

// Compiler lowers a ParsedRegex into a flat Program by a single
// recursive walk of the AST, backpatching forward jump targets once
// their destination is known. The buffer IS the program under
// construction: offsets are indices into it, written through once
// resolved rather than fixed up in a second pass.
type Compiler struct {
	code   []byte
	ranges [][]CharRange
}

// compileProgram lowers parsed into an executable Program.
func compileProgram(parsed *ParsedRegex) *Program {
	c := &Compiler{ranges: parsed.Ranges}
	prefixSize := c.writeSearchPrefix()
	c.compileNode(parsed.Root)
	c.emitOp(OpMatch)
	return &Program{
		Code:       c.code,
		SaveCount:  parsed.CaptureCount * 2,
		PrefixSize: prefixSize,
		Prefilter:  buildPrefilter(parsed.Root),
	}
}

func (c *Compiler) pos() int { return len(c.code) }

func (c *Compiler) emitByte(b byte) { c.code = append(c.code, b) }

func (c *Compiler) emitOp(op Opcode) { c.emitByte(byte(op)) }

func (c *Compiler) emitRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	c.code = append(c.code, buf[:n]...)
}

// allocOffset reserves offsetSize zero bytes for a forward reference
// and returns the slot's position, to be filled in by patchOffset once
// the jump target is known.
func (c *Compiler) allocOffset() int {
	slot := len(c.code)
	c.code = append(c.code, make([]byte, offsetSize)...)
	return slot
}

func (c *Compiler) patchOffset(slot, target int) {
	binary.LittleEndian.PutUint32(c.code[slot:], uint32(target))
}

// writeSearchPrefix emits the implicit ".*?" every program starts
// with, and returns the byte offset immediately after it (where
// anchored execution is seeded, skipping the free scan).
//
//	Split_PrioritizeChild  -> target = prefixEnd
//	AnyChar
//	Split_PrioritizeParent -> target = 1+offsetSize (back to AnyChar)
func (c *Compiler) writeSearchPrefix() int {
	c.emitOp(OpSplitPrioritizeChild)
	toEnd := c.allocOffset()
	c.emitOp(OpAnyChar)
	c.emitOp(OpSplitPrioritizeParent)
	toAnyChar := c.allocOffset()
	prefixEnd := c.pos()
	c.patchOffset(toEnd, prefixEnd)
	c.patchOffset(toAnyChar, 1+offsetSize)
	return prefixEnd
}

// compileNode wraps compileNodeInner with quantifier handling, per the
// 5-step algorithm: optional leading skip-split, the mandatory body
// copies, then either a back-split for unbounded repeats or a run of
// skippable extra copies up to max.
func (c *Compiler) compileNode(node *Node) int {
	start := c.pos()
	var skipSlots []int

	if node.Quantifier.AllowsNone() {
		c.emitOp(OpSplitPrioritizeParent)
		skipSlots = append(skipSlots, c.allocOffset())
	}

	bodyStart := c.compileNodeInner(node)
	for i := 1; i < node.Quantifier.Min; i++ {
		bodyStart = c.compileNodeInner(node)
	}

	if node.Quantifier.AllowsInfiniteRepeat() {
		c.emitOp(OpSplitPrioritizeChild)
		slot := c.allocOffset()
		c.patchOffset(slot, bodyStart)
	} else {
		for i := max(1, node.Quantifier.Min); i < node.Quantifier.Max; i++ {
			c.emitOp(OpSplitPrioritizeParent)
			skipSlots = append(skipSlots, c.allocOffset())
			c.compileNodeInner(node)
		}
	}

	end := c.pos()
	for _, slot := range skipSlots {
		c.patchOffset(slot, end)
	}
	return start
}

// compileNodeInner emits exactly one occurrence of node's body, wrapped
// in Save/Save if node owns a capture group.
func (c *Compiler) compileNodeInner(node *Node) int {
	start := c.pos()

	capture := NoCapture
	if node.Op == AstSequence || node.Op == AstAlternation {
		capture = node.Value
	}
	if capture != NoCapture {
		c.emitOp(OpSave)
		c.emitByte(byte(capture * 2))
	}

	switch node.Op {
	case AstLiteral:
		c.emitOp(OpLiteral)
		c.emitRune(rune(node.Value))
	case AstAnyChar:
		c.emitOp(OpAnyChar)
	case AstCharRange, AstNegativeCharRange:
		c.compileCharRange(node)
	case AstSequence:
		for _, child := range node.Children {
			c.compileNode(child)
		}
	case AstAlternation:
		c.emitOp(OpSplitPrioritizeParent)
		rightSlot := c.allocOffset()
		c.compileNode(node.Children[0])
		c.emitOp(OpJump)
		endSlot := c.allocOffset()
		rightStart := c.compileNode(node.Children[1])
		c.patchOffset(rightSlot, rightStart)
		c.patchOffset(endSlot, c.pos())
	case AstLineStart:
		c.emitOp(OpLineStart)
	case AstLineEnd:
		c.emitOp(OpLineEnd)
	case AstWordBoundary:
		c.emitOp(OpWordBoundary)
	case AstNotWordBoundary:
		c.emitOp(OpNotWordBoundary)
	case AstSubjectBegin:
		c.emitOp(OpSubjectBegin)
	case AstSubjectEnd:
		c.emitOp(OpSubjectEnd)
	}

	if capture != NoCapture {
		c.emitOp(OpSave)
		c.emitByte(byte(capture*2 + 1))
	}
	return start
}

func (c *Compiler) compileCharRange(node *Node) {
	singles, pairs := splitSingles(c.ranges[node.Value])
	op := OpCharRange
	if node.Op == AstNegativeCharRange {
		op = OpNegativeCharRange
	}
	c.emitOp(op)
	c.emitByte(byte(len(singles)))
	c.emitByte(byte(len(pairs)))
	for _, r := range singles {
		c.emitRune(r)
	}
	for _, r := range pairs {
		c.emitRune(r.Min)
		c.emitRune(r.Max)
	}
}
