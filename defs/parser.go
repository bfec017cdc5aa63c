package defs

import (
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gorgo/lr/scanner"
)

// Register is the parsed representation of one register definition: its
// aliases in declaration order, its symbolic identifier, and its 0-based
// position among the definitions of the input.
type Register struct {
	Names []string // aliases, each unique across the whole input
	Ident string   // explicit identifier, or derived from Names[0]
	Index int      // position among non-comment, non-blank definition lines
}

// ParseError locates a syntax error or duplicate register name within the
// input. Line and Col are 1-based.
type ParseError struct {
	File      string
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.File, e.Line, e.Col, e.Msg)
}

// ParseFile parses the register-definition file at path.
func ParseFile(path string) ([]*Register, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse reads register definitions from input until EOF and returns the
// records in declaration order. The name is used in diagnostics only.
//
// Parsing stops at the first error. A half-parsed record list would silently
// produce a broken downstream compile, so no partial result is ever returned.
func Parse(name string, input io.Reader) ([]*Register, error) {
	p := &parser{
		name:    name,
		toks:    NewScanner(name, input),
		records: arraylist.New(),
		seen:    make(map[string]int),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	registers := make([]*Register, p.records.Size())
	it := p.records.Iterator()
	for it.Next() {
		registers[it.Index()] = it.Value().(*Register)
	}
	tracer().Infof("parsed %d register definitions from %s", len(registers), name)
	return registers, nil
}

// parser holds the accumulation state of a single Parse call. Each
// invocation of the generator is independent, so none of this is shared.
type parser struct {
	name    string            // input name for diagnostics
	toks    scanner.Tokenizer // the line-level scanner
	records *arraylist.List   // *Register records in declaration order
	seen    map[string]int    // alias -> record index, for duplicate detection
}

// parse consumes the whole token stream. Grammar, line-oriented:
//
//    register-definition ::= register-names (":" identifier)?
//    register-names      ::= string ("," string)*
func (p *parser) parse() error {
	for {
		typ, tok := p.next()
		if typ == scanner.EOF {
			return nil
		}
		if typ != tokString {
			return p.fail(tok, `expected '"'`)
		}
		if err := p.definition(tok); err != nil {
			return err
		}
	}
}

// definition parses one register definition. The first alias token has
// already been consumed and is passed in.
func (p *parser) definition(first *Token) error {
	reg := &Register{Index: p.records.Size()}
	if err := p.alias(reg, first); err != nil {
		return err
	}
	for {
		typ, tok := p.next()
		switch typ {
		case tokComma:
			typ, tok = p.next()
			if typ != tokString {
				return p.fail(tok, `expected '"'`)
			}
			if err := p.alias(reg, tok); err != nil {
				return err
			}
		case tokColon:
			typ, tok = p.next()
			if typ != tokIdent {
				return p.fail(tok, "expected identifier")
			}
			reg.Ident = tok.Text
			if typ, tok = p.next(); typ != tokEOL {
				return p.fail(tok, "expected end of line")
			}
			return p.accept(reg)
		case tokEOL:
			return p.accept(reg)
		default:
			return p.fail(tok, "expected end of line")
		}
	}
}

// alias records one register name, rejecting names already bound to an
// earlier record (or to this one).
func (p *parser) alias(reg *Register, tok *Token) error {
	if _, ok := p.seen[tok.Text]; ok {
		return p.fail(tok, fmt.Sprintf("duplicate register name %q", tok.Text))
	}
	p.seen[tok.Text] = reg.Index
	reg.Names = append(reg.Names, tok.Text)
	return nil
}

func (p *parser) accept(reg *Register) error {
	if reg.Ident == "" {
		reg.Ident = deriveIdent(reg.Names[0])
	}
	tracer().Debugf("register #%d %v -> %s", reg.Index, reg.Names, reg.Ident)
	p.records.Add(reg)
	return nil
}

func (p *parser) next() (int, *Token) {
	typ, value, _, _ := p.toks.NextToken(scanner.AnyToken)
	return typ, value.(*Token)
}

// fail wraps a token into a ParseError. A scanner diagnostic attached to the
// token takes precedence over the parser's contextual message.
func (p *parser) fail(tok *Token, msg string) error {
	if tok.Msg != "" {
		msg = tok.Msg
	}
	err := &ParseError{File: p.name, Line: tok.Line, Col: tok.Col, Msg: msg}
	tracer().Errorf(err.Error())
	return err
}

// deriveIdent derives a symbolic identifier from a register name: every rune
// outside [A-Za-z0-9_] becomes '_', and if the result does not start with a
// letter or underscore, a '_' is prepended.
func deriveIdent(name string) string {
	ident := make([]byte, 0, len(name)+1)
	for _, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			ident = append(ident, byte(r))
		} else {
			ident = append(ident, '_')
		}
	}
	if len(ident) == 0 || !isIdentStart(ident[0]) {
		ident = append([]byte{'_'}, ident...)
	}
	return string(ident)
}
