package cgen

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/kesselhaus/reggen/defs"
	"github.com/kesselhaus/reggen/internal/testdata"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	snaps.Clean(m, snaps.CleanOpts{Sort: true})

	os.Exit(exitCode)
}

// The worked example: two records, a shared trie over three aliases, and the
// full fragment rendered around them.
const exampleFragment = `/* This file has been generated from x86_64.defs -- you probably should NOT EDIT IT ! */

static const struct drgn_register registers[] = {
	[0] = {
		.names = (const char * const []){ "rax", "eax" },
		.num_names = 2,
		.regno = DRGN_REGISTER_NUMBER(RAX),
	},
	[1] = {
		.names = (const char * const []){ "rbx" },
		.num_names = 1,
		.regno = DRGN_REGISTER_NUMBER(RBX),
	},
};

static const struct drgn_register *register_by_name(const char *name)
{
	switch (name[0]) {
	case 'e':
		switch (name[1]) {
		case 'a':
			switch (name[2]) {
			case 'x':
				switch (name[3]) {
				case '\0':
					return &registers[0];
				}
				break;
			}
			break;
		}
		break;
	case 'r':
		switch (name[1]) {
		case 'a':
			switch (name[2]) {
			case 'x':
				switch (name[3]) {
				case '\0':
					return &registers[0];
				}
				break;
			}
			break;
		case 'b':
			switch (name[2]) {
			case 'x':
				switch (name[3]) {
				case '\0':
					return &registers[1];
				}
				break;
			}
			break;
		}
		break;
	}
	return NULL;
}

#define DRGN_ARCHITECTURE_REGISTERS \
	.registers = registers, \
	.num_registers = sizeof(registers) / sizeof(registers[0]), \
	.register_by_name = register_by_name, \
	.register_layout = register_layout, \
	.dwarf_regno_to_internal = dwarf_regno_to_internal
`

func parseDefs(t *testing.T, name, input string) []*defs.Register {
	t.Helper()
	regs, err := defs.Parse(name, strings.NewReader(input))
	require.NoError(t, err)
	return regs
}

func TestGenerateExample(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	regs := parseDefs(t, "x86_64.defs", "\"rax\", \"eax\" : RAX\n\"rbx\" : RBX\n")
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "x86_64.defs", regs))
	require.Equal(t, exampleFragment, buf.String())
}

func TestGenerateDeterministic(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input, err := testdata.DefsReader("x86_64.defs")
	require.NoError(t, err)
	regs, err := defs.Parse("x86_64.defs", input)
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, Generate(&first, "x86_64.defs", regs))
	require.NoError(t, Generate(&second, "x86_64.defs", regs))
	require.Equal(t, first.String(), second.String())
}

func TestGenerateFixtureX8664(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input, err := testdata.DefsReader("x86_64.defs")
	require.NoError(t, err)
	regs, err := defs.Parse("x86_64.defs", input)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "x86_64.defs", regs))
	snaps.MatchSnapshot(t, buf.String())
}

func TestGenerateFixtureAarch64(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input, err := testdata.DefsReader("aarch64.defs")
	require.NoError(t, err)
	regs, err := defs.Parse("aarch64.defs", input)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "aarch64.defs", regs))
	snaps.MatchSnapshot(t, buf.String())
}

func TestGeneratePrefixAliases(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	regs := parseDefs(t, "p.defs", "\"s\"\n\"sp\"\n")
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "p.defs", regs))
	out := buf.String()
	// the inner switch for "s" must dispatch both the terminal and 'p',
	// with the terminal case first (NUL is the lowest byte value)
	inner := `	case 's':
		switch (name[1]) {
		case '\0':
			return &registers[0];
		case 'p':
			switch (name[2]) {
			case '\0':
				return &registers[1];
			}
			break;
		}
		break;`
	require.Contains(t, out, inner)
}

func TestGenerateEscapesNames(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	regs := parseDefs(t, "e.defs", "\"r\\ip\"\n")
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "e.defs", regs))
	out := buf.String()
	// escaped both in the string literal and in the dispatch char literal
	require.Contains(t, out, `"r\\ip"`)
	require.Contains(t, out, `case '\\':`)
	require.Contains(t, out, "DRGN_REGISTER_NUMBER(r_ip)")
}

func TestCChar(t *testing.T) {
	cases := []struct {
		ch   byte
		want string
	}{
		{'a', "'a'"},
		{'0', "'0'"},
		{'\'', `'\''`},
		{'\\', `'\\'`},
		{0x01, `'\x01'`},
		{0xfe, `'\xfe'`},
	}
	for _, c := range cases {
		if got := cChar(c.ch); got != c.want {
			t.Errorf("cChar(%#x) = %s, want %s", c.ch, got, c.want)
		}
	}
}

func TestCString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"rax", `"rax"`},
		{`r\ip`, `"r\\ip"`},
		{"a\x01b", `"a\001b"`},
		{"\x011", `"\0011"`}, // octal escapes never swallow a following digit
	}
	for _, c := range cases {
		if got := cString(c.in); got != c.want {
			t.Errorf("cString(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}
