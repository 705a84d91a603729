package rpike

import (
	"encoding/binary"
	"unicode/utf8"
)

// StepResult is the outcome of running one thread's non-consuming
// instructions until it either consumes a codepoint, reaches Match, or
// fails.
type StepResult int

const (
	StepConsumed StepResult = iota
	StepMatched
	StepFailed
)

type thread struct {
	ip    int
	saves []int
}

// VM simulates a Program's threads over an Input. A VM owns all of its
// mutable execution state (thread list, save vectors, position); a
// compiled Program holds none, so many VMs may run concurrently over
// the same Program.
type VM struct {
	prog    *Program
	input   Input
	threads []thread
	pos     int
}

func NewVM(prog *Program, input Input) *VM {
	return &VM{prog: prog, input: input}
}

// ExecOptions configures a single Exec call.
type ExecOptions struct {
	// Anchored requires the match to consume the input from position
	// 0 to its end; without it, exec searches for a match starting
	// anywhere.
	Anchored bool
	// Longest keeps running the threads that outrank the first match
	// found and reports the last match any of them reaches, rather than
	// stopping at the first one found. Threads ranked below a match are
	// dropped, so a longer match that only a lower-priority alternative
	// could reach is not reported ("a|ab" on "ab" reports "a").
	Longest bool
	// Start is the byte offset search mode resumes scanning from, for
	// FindAll-style repeated calls over the same Input. It has no
	// effect when Anchored is set. Boundary assertions still see the
	// Input's real start and end, not Start and Len, since this scans
	// a window of the same Input rather than a fresh one.
	Start int
}

// Exec runs prog against input and reports whether it matched, along
// with the 2*capture_count byte-offset save slots of the best match
// found (nil if no match).
func Exec(prog *Program, input Input, opts ExecOptions) (bool, []int) {
	vm := NewVM(prog, input)
	return vm.run(opts)
}

func (vm *VM) run(opts ExecOptions) (bool, []int) {
	if !opts.Anchored && !vm.prog.Prefilter.MightMatch(vm.input.Bytes()) {
		return false, nil
	}

	ip := 0
	if opts.Anchored {
		ip = vm.prog.PrefixSize
	} else {
		vm.pos = opts.Start
	}
	saves := make([]int, vm.prog.SaveCount)
	for i := range saves {
		saves[i] = -1
	}
	vm.threads = []thread{{ip: ip, saves: saves}}

	var captures []int
	found := false
	inputLen := vm.input.Len()

	for vm.pos < inputLen {
		var stop bool
		captures, found, stop = vm.stepAll(opts, captures, found)
		if len(vm.threads) == 0 {
			return found, captures
		}
		if stop {
			return found, captures
		}
		_, w := vm.input.Step(vm.pos)
		vm.pos += w
	}

	captures, found, _ = vm.stepAll(opts, captures, found)
	return found, captures
}

// stepAll runs step() for every live thread at the current position,
// in ascending priority order, applying the match/fail bookkeeping the
// outer loop needs.
func (vm *VM) stepAll(opts ExecOptions, captures []int, found bool) ([]int, bool, bool) {
	i := 0
	for i < len(vm.threads) {
		switch vm.step(i) {
		case StepConsumed:
			i++
		case StepFailed:
			vm.threads = append(vm.threads[:i], vm.threads[i+1:]...)
		case StepMatched:
			atEnd := vm.pos >= vm.input.Len()
			if opts.Anchored && !atEnd {
				// Not a full match yet; this thread is done either way.
				vm.threads = append(vm.threads[:i], vm.threads[i+1:]...)
				continue
			}
			captures = vm.threads[i].saves
			found = true
			vm.threads = vm.threads[:i]
			if !opts.Longest {
				return captures, found, true
			}
			return captures, found, false
		}
	}
	return captures, found, false
}

// step runs thread i's non-consuming instructions until it produces an
// outcome. The current codepoint is the one at vm.pos, or 0 at
// end-of-input.
func (vm *VM) step(i int) StepResult {
	code := vm.prog.Code
	cp, _ := vm.input.Step(vm.pos)

	for {
		ip := vm.threads[i].ip
		op := Opcode(code[ip])
		ip++

		switch op {
		case OpLiteral:
			r, n := utf8.DecodeRune(code[ip:])
			vm.threads[i].ip = ip + n
			if r != cp {
				return StepFailed
			}
			return StepConsumed

		case OpAnyChar:
			vm.threads[i].ip = ip
			return StepConsumed

		case OpCharRange, OpNegativeCharRange:
			singleCount := int(code[ip])
			ip++
			rangeCount := int(code[ip])
			ip++
			matched := false
			for k := 0; k < singleCount; k++ {
				r, n := utf8.DecodeRune(code[ip:])
				ip += n
				if r == cp {
					matched = true
				}
			}
			for k := 0; k < rangeCount; k++ {
				lo, n1 := utf8.DecodeRune(code[ip:])
				ip += n1
				hi, n2 := utf8.DecodeRune(code[ip:])
				ip += n2
				if cp >= lo && cp <= hi {
					matched = true
				}
			}
			vm.threads[i].ip = ip
			if matched == (op == OpCharRange) {
				return StepConsumed
			}
			return StepFailed

		case OpJump:
			target := readOffset(code, ip)
			if vm.threadAt(target) {
				return StepFailed
			}
			vm.threads[i].ip = target

		case OpSplitPrioritizeParent:
			target := readOffset(code, ip)
			vm.addThread(i+1, target, vm.threads[i].saves)
			vm.threads[i].ip = ip + offsetSize

		case OpSplitPrioritizeChild:
			childIP := ip + offsetSize
			vm.addThread(i+1, childIP, vm.threads[i].saves)
			target := readOffset(code, ip)
			vm.threads[i].ip = target

		case OpSave:
			idx := int(code[ip])
			ip++
			saves := vm.threads[i].saves
			saves[idx] = vm.pos
			vm.threads[i].saves = saves
			vm.threads[i].ip = ip

		case OpLineStart:
			if !vm.isLineStart() {
				return StepFailed
			}
			vm.threads[i].ip = ip

		case OpLineEnd:
			if !vm.isLineEnd() {
				return StepFailed
			}
			vm.threads[i].ip = ip

		case OpWordBoundary:
			if !vm.isWordBoundary() {
				return StepFailed
			}
			vm.threads[i].ip = ip

		case OpNotWordBoundary:
			if vm.isWordBoundary() {
				return StepFailed
			}
			vm.threads[i].ip = ip

		case OpSubjectBegin:
			if vm.pos != 0 {
				return StepFailed
			}
			vm.threads[i].ip = ip

		case OpSubjectEnd:
			if vm.pos != vm.input.Len() {
				return StepFailed
			}
			vm.threads[i].ip = ip

		case OpMatch:
			return StepMatched
		}
	}
}

func readOffset(code []byte, at int) int {
	return int(binary.LittleEndian.Uint32(code[at:]))
}

func (vm *VM) threadAt(ip int) bool {
	for _, t := range vm.threads {
		if t.ip == ip {
			return true
		}
	}
	return false
}

// addThread inserts a new thread at slice index at, carrying a copy of
// saves, unless another live thread already occupies ip (duplicate
// collapse: the frontier never holds two threads at the same
// instruction address).
func (vm *VM) addThread(at, ip int, saves []int) {
	if vm.threadAt(ip) {
		return
	}
	clone := make([]int, len(saves))
	copy(clone, saves)
	vm.threads = append(vm.threads, thread{})
	copy(vm.threads[at+1:], vm.threads[at:])
	vm.threads[at] = thread{ip: ip, saves: clone}
}

func (vm *VM) isLineStart() bool {
	if vm.pos == 0 {
		return true
	}
	r, _ := vm.input.Prev(vm.pos)
	return r == '\n'
}

func (vm *VM) isLineEnd() bool {
	if vm.pos == vm.input.Len() {
		return true
	}
	r, _ := vm.input.Step(vm.pos)
	return r == '\n'
}

func (vm *VM) isWordBoundary() bool {
	prev, _ := vm.input.Prev(vm.pos)
	curr, _ := vm.input.Step(vm.pos)
	return isWordChar(prev) != isWordChar(curr)
}
