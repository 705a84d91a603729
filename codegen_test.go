package rpike

import (
	"strings"
	"testing"
)

func TestDumpGo(t *testing.T) {
	prog := compileOrFatal(t, `a+b`)
	src, err := DumpGo(prog, "frozen")
	if err != nil {
		t.Fatalf("DumpGo: %v", err)
	}
	if !strings.Contains(src, "package frozen") {
		t.Errorf("DumpGo output missing package clause:\n%s", src)
	}
	if !strings.Contains(src, "Instructions") {
		t.Errorf("DumpGo output missing Instructions declaration:\n%s", src)
	}
	if !strings.Contains(src, "literal a") {
		t.Errorf("DumpGo output missing decoded literal instruction:\n%s", src)
	}
}

func TestDumpMatchesDumpGoOperandText(t *testing.T) {
	prog := compileOrFatal(t, `[a-z]{2,4}`)
	text := Dump(prog)
	src, err := DumpGo(prog, "frozen")
	if err != nil {
		t.Fatalf("DumpGo: %v", err)
	}
	// Every operand rendered by Dump must also appear, quoted, in the
	// generated source: both read from the same decodeProgram pass.
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.SplitN(strings.TrimSpace(line), "    ", 2)
		if len(fields) != 2 {
			continue
		}
		if !strings.Contains(src, fields[1]) {
			t.Errorf("DumpGo output missing operand text %q", fields[1])
		}
	}
}
