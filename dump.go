package rpike

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// decodedInst is one disassembled instruction: its byte offset and the
// same human-readable operand text both Dump and DumpGo render, kept
// as one source of truth so the two front ends can't drift apart.
type decodedInst struct {
	Offset int
	Op     Opcode
	Text   string
}

// decodeProgram walks program's instruction buffer once and renders
// each instruction's operands to text, mirroring the original
// engine's dump().
func decodeProgram(program *Program) []decodedInst {
	code := program.Code
	var insts []decodedInst
	pos := 0
	for pos < len(code) {
		offset := pos
		op := Opcode(code[pos])
		pos++
		var b strings.Builder
		switch op {
		case OpMatch:
			b.WriteString("match")
		case OpLiteral:
			r, n := utf8.DecodeRune(code[pos:])
			pos += n
			fmt.Fprintf(&b, "literal %c", r)
		case OpAnyChar:
			b.WriteString("any char")
		case OpJump:
			fmt.Fprintf(&b, "jump %d", readOffset(code, pos))
			pos += offsetSize
		case OpSplitPrioritizeParent, OpSplitPrioritizeChild:
			which := "parent"
			if op == OpSplitPrioritizeChild {
				which = "child"
			}
			fmt.Fprintf(&b, "split (prioritize %s) %d", which, readOffset(code, pos))
			pos += offsetSize
		case OpSave:
			fmt.Fprintf(&b, "save %d", code[pos])
			pos++
		case OpCharRange, OpNegativeCharRange:
			if op == OpNegativeCharRange {
				b.WriteString("negative ")
			}
			b.WriteString("char range, [")
			singleCount := int(code[pos])
			pos++
			rangeCount := int(code[pos])
			pos++
			for i := 0; i < singleCount; i++ {
				r, n := utf8.DecodeRune(code[pos:])
				pos += n
				b.WriteRune(r)
			}
			b.WriteString("]")
			for i := 0; i < rangeCount; i++ {
				lo, n1 := utf8.DecodeRune(code[pos:])
				pos += n1
				hi, n2 := utf8.DecodeRune(code[pos:])
				pos += n2
				fmt.Fprintf(&b, " [%c-%c]", lo, hi)
			}
		case OpLineStart:
			b.WriteString("line start")
		case OpLineEnd:
			b.WriteString("line end")
		case OpWordBoundary:
			b.WriteString("word boundary")
		case OpNotWordBoundary:
			b.WriteString("not word boundary")
		case OpSubjectBegin:
			b.WriteString("subject begin")
		case OpSubjectEnd:
			b.WriteString("subject end")
		}
		insts = append(insts, decodedInst{Offset: offset, Op: op, Text: b.String()})
	}
	return insts
}

// Dump disassembles program into one line of text per instruction,
// prefixed with its byte offset, in the same layout the original
// engine's dump() prints.
func Dump(program *Program) string {
	var b strings.Builder
	for _, inst := range decodeProgram(program) {
		fmt.Fprintf(&b, "%4d    %s\n", inst.Offset, inst.Text)
	}
	return b.String()
}
