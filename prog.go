package rpike

// Opcode is a single bytecode instruction tag. The program is a flat
// byte buffer rather than a slice of structured instructions: offsets
// (jump targets) are byte positions into that buffer, and codepoints
// are stored UTF-8 encoded inline, exactly as laid out in the encoding
// table this mirrors.
type Opcode byte

const (
	OpMatch Opcode = iota
	OpLiteral
	OpAnyChar
	OpCharRange
	OpNegativeCharRange
	OpJump
	OpSplitPrioritizeParent
	OpSplitPrioritizeChild
	OpSave
	OpLineStart
	OpLineEnd
	OpWordBoundary
	OpNotWordBoundary
	OpSubjectBegin
	OpSubjectEnd
)

func (op Opcode) String() string {
	switch op {
	case OpMatch:
		return "Match"
	case OpLiteral:
		return "Literal"
	case OpAnyChar:
		return "AnyChar"
	case OpCharRange:
		return "CharRange"
	case OpNegativeCharRange:
		return "NegativeCharRange"
	case OpJump:
		return "Jump"
	case OpSplitPrioritizeParent:
		return "Split_PrioritizeParent"
	case OpSplitPrioritizeChild:
		return "Split_PrioritizeChild"
	case OpSave:
		return "Save"
	case OpLineStart:
		return "LineStart"
	case OpLineEnd:
		return "LineEnd"
	case OpWordBoundary:
		return "WordBoundary"
	case OpNotWordBoundary:
		return "NotWordBoundary"
	case OpSubjectBegin:
		return "SubjectBegin"
	case OpSubjectEnd:
		return "SubjectEnd"
	default:
		return "?"
	}
}

// offsetSize is the width in bytes of an Offset payload: wide enough to
// address any byte of any program this engine can compile.
const offsetSize = 4

// Program is a compiled pattern: a flat instruction buffer plus the
// metadata execution needs around it. It is immutable once returned by
// Compile, so a single Program may be shared by concurrent Execs as
// long as each owns its own VM state.
type Program struct {
	Code       []byte
	SaveCount  int
	PrefixSize int
	Prefilter  *Prefilter
}
