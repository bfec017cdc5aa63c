package cgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/kesselhaus/reggen/defs"
	"github.com/kesselhaus/reggen/trie"
)

// --- Templates --------------------------------------------------------

var header = `/* This file has been generated from %s -- you probably should NOT EDIT IT ! */

`

var templateRegisterTable = `static const struct drgn_register registers[] = {
{{range .}}	[{{.Index}}] = {
		.names = (const char * const []){ {{range $i, $n := .Names}}{{if $i}}, {{end}}{{cstr $n}}{{end}} },
		.num_names = {{len .Names}},
		.regno = DRGN_REGISTER_NUMBER({{.Ident}}),
	},
{{end}}};

`

var macro = `
#define DRGN_ARCHITECTURE_REGISTERS \
	.registers = registers, \
	.num_registers = sizeof(registers) / sizeof(registers[0]), \
	.register_by_name = register_by_name, \
	.register_layout = register_layout, \
	.dwarf_regno_to_internal = dwarf_regno_to_internal
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"cstr": cString,
}

var registerTable = template.Must(template.New("register table").Funcs(funcMap).Parse(templateRegisterTable))

// --- Main -------------------------------------------------------------

// Generate renders the C source fragment for the given register records to
// w. The source name only appears in the generated header comment.
func Generate(w io.Writer, source string, registers []*defs.Register) error {
	tracer().Infof("emitting table and dispatch for %d registers", len(registers))
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, header, source)
	if err := registerTable.Execute(buf, registers); err != nil {
		return err
	}
	generateDispatch(buf, buildTrie(registers))
	buf.WriteString(macro)
	return buf.Flush()
}

// buildTrie inserts every alias of every record into a shared trie. The
// parser has already rejected duplicates, so no terminal marker is ever
// overwritten here.
func buildTrie(registers []*defs.Register) *trie.Trie {
	t := trie.New()
	for _, reg := range registers {
		for _, name := range reg.Names {
			t.Insert(name, reg.Index)
		}
	}
	return t
}

// generateDispatch renders the lookup function. Each trie node becomes a
// switch over the name byte at the node's depth; a terminal marker becomes
// the case for the terminating NUL. Every path that matches nothing falls
// through to the single return NULL.
func generateDispatch(buf *bufio.Writer, t *trie.Trie) {
	buf.WriteString("static const struct drgn_register *register_by_name(const char *name)\n{\n")
	generateSwitch(buf, t.Root(), 0)
	buf.WriteString("\treturn NULL;\n}\n")
}

// generateSwitch recursively renders one trie node at the given depth.
// The NUL case is byte 0 and therefore always first; the remaining branches
// are already sorted ascending by Edges.
func generateSwitch(buf *bufio.Writer, node *trie.Node, depth int) {
	ind := strings.Repeat("\t", depth+1)
	fmt.Fprintf(buf, "%sswitch (name[%d]) {\n", ind, depth)
	if index, ok := node.Terminal(); ok {
		fmt.Fprintf(buf, "%scase '\\0':\n", ind)
		fmt.Fprintf(buf, "%s\treturn &registers[%d];\n", ind, index)
	}
	for _, edge := range node.Edges() {
		fmt.Fprintf(buf, "%scase %s:\n", ind, cChar(edge.Ch))
		generateSwitch(buf, edge.To, depth+1)
		fmt.Fprintf(buf, "%s\tbreak;\n", ind)
	}
	fmt.Fprintf(buf, "%s}\n", ind)
}

// --- C literals -------------------------------------------------------

// cChar renders a byte as a C character literal.
func cChar(ch byte) string {
	switch ch {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	}
	if ch >= 0x20 && ch < 0x7f {
		return fmt.Sprintf("'%c'", ch)
	}
	return fmt.Sprintf(`'\x%02x'`, ch)
}

// cString renders a string as a C string literal. Non-printable bytes use
// octal escapes: unlike hex escapes they are limited to three digits, so a
// following digit cannot be swallowed into the escape.
func cString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			b.WriteString(`\"`)
		case ch == '\\':
			b.WriteString(`\\`)
		case ch >= 0x20 && ch < 0x7f:
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, `\%03o`, ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
