package rpike

import (
	"bytes"

	"github.com/dave/jennifer/jen"
)

// Inst is one disassembled instruction, in the shape DumpGo renders
// a Program's instruction buffer as: a Go literal a caller can embed
// directly in another program instead of re-running the parser and
// compiler at startup. It carries no behaviour of its own — Exec
// reads Program.Code, never an []Inst — this is a data export.
type Inst struct {
	Offset int
	Op     string
	Text   string
}

// DumpGo renders program as a compilable Go source file in package
// pkg, declaring a package-level "Instructions []rpike.Inst" literal
// with one entry per instruction decodeProgram found, each carrying
// its operand text as both a struct field and a trailing comment.
func DumpGo(program *Program, pkg string) (string, error) {
	insts := decodeProgram(program)

	elements := make([]jen.Code, len(insts))
	for i, inst := range insts {
		elements[i] = jen.Values(jen.Dict{
			jen.Id("Offset"): jen.Lit(inst.Offset),
			jen.Id("Op"):     jen.Lit(inst.Op.String()),
			jen.Id("Text"):   jen.Lit(inst.Text),
		}).Comment(inst.Text)
	}

	f := jen.NewFile(pkg)
	f.Comment("Code generated by rpike.DumpGo. DO NOT EDIT.")
	f.Var().Id("Instructions").Op("=").Index().Qual("github.com/kamaline/rpike", "Inst").Values(elements...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
