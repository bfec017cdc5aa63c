package defs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Scanner implements the scanner.Tokenizer interface.
// It reads a definition file line by line, skipping blank lines and comment
// lines, and splits definition lines into tokens. Every token carries its
// 1-based line and column position, so that errors can be located precisely.
type Scanner struct {
	name   string         // name of the input, used for diagnostics
	input  *bufio.Scanner // line reader over the input
	line   []byte         // current definition line, nil if none is active
	lineNo int            // number of the current line, 1-based
	cursor int            // byte index of the lookahead within line
	offset uint64         // absolute byte position of the current line's start
	ahead  uint64         // absolute byte position of the line after this one
	eof    bool           // input exhausted
	errh   func(error)    // error handler, if any
}

// NewScanner creates a scanner for a definition file read from input. The
// name is only used in diagnostics and conventionally is the file name.
func NewScanner(name string, input io.Reader) *Scanner {
	sc := &Scanner{name: name}
	sc.input = bufio.NewScanner(input)
	return sc
}

// NextToken reads the next token of the definition file, returning its type,
// a *Token value, and the token's absolute position and length. At the end of
// input it returns scanner.EOF.
//
// Blank lines and lines whose first non-whitespace character is '#' are
// skipped entirely; they produce no tokens, not even tokEOL.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.line == nil && !sc.advanceLine() {
		return scanner.EOF, &Token{Line: sc.lineNo, Col: 1}, sc.ahead, 0
	}
	sc.skipSpace()
	if sc.cursor >= len(sc.line) {
		tok := sc.token(sc.cursor, "")
		pos := sc.offset + uint64(sc.cursor)
		sc.line = nil // past the EOL, hand out the next line
		return tokEOL, tok, pos, 0
	}
	start := sc.cursor
	pos := sc.offset + uint64(start)
	switch ch := sc.line[sc.cursor]; {
	case ch == '"':
		return sc.scanString(start, pos)
	case ch == ',':
		sc.cursor++
		return tokComma, sc.token(start, ","), pos, 1
	case ch == ':':
		sc.cursor++
		return tokColon, sc.token(start, ":"), pos, 1
	case isIdentStart(ch):
		for sc.cursor < len(sc.line) && isIdentChar(sc.line[sc.cursor]) {
			sc.cursor++
		}
		lexeme := string(sc.line[start:sc.cursor])
		return tokIdent, sc.token(start, lexeme), pos, uint64(sc.cursor - start)
	default:
		sc.cursor++
		tok := sc.token(start, string(ch))
		tok.Msg = fmt.Sprintf("unexpected character %q", ch)
		return tokInvalid, tok, pos, 1
	}
}

// SetErrorHandler sets an error handler function, which receives any error
// the scanner produces in addition to the tokInvalid token.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}

// scanString scans a quoted register name. The quotes do not belong to the
// name; the token's position is that of the opening quote. A NUL byte inside
// the name is rejected: lookup operates on null-terminated strings, so such a
// name could never be matched.
func (sc *Scanner) scanString(start int, pos uint64) (int, interface{}, uint64, uint64) {
	sc.cursor++ // opening quote
	for sc.cursor < len(sc.line) {
		switch sc.line[sc.cursor] {
		case '"':
			sc.cursor++
			lexeme := string(sc.line[start+1 : sc.cursor-1])
			return tokString, sc.token(start, lexeme), pos, uint64(sc.cursor - start)
		case 0:
			tok := sc.token(sc.cursor, string(sc.line[start:sc.cursor]))
			tok.Msg = "NUL byte in register name"
			if sc.errh != nil {
				sc.errh(fmt.Errorf("%s:%d:%d: %s", sc.name, tok.Line, tok.Col, tok.Msg))
			}
			return tokInvalid, tok, sc.offset + uint64(sc.cursor), 1
		}
		sc.cursor++
	}
	tok := sc.token(start, string(sc.line[start:]))
	tok.Msg = "unterminated string"
	if sc.errh != nil {
		sc.errh(fmt.Errorf("%s:%d:%d: %s", sc.name, tok.Line, tok.Col, tok.Msg))
	}
	return tokInvalid, tok, pos, uint64(sc.cursor - start)
}

// advanceLine moves to the next definition line, skipping blanks and
// comments. It returns false at the end of the input.
func (sc *Scanner) advanceLine() bool {
	if sc.eof {
		return false
	}
	for sc.input.Scan() {
		sc.lineNo++
		sc.line = sc.input.Bytes()
		sc.offset = sc.ahead
		sc.ahead += uint64(len(sc.line)) + 1
		sc.cursor = 0
		sc.skipSpace()
		if sc.cursor >= len(sc.line) || sc.line[sc.cursor] == '#' {
			continue
		}
		sc.cursor = 0
		return true
	}
	sc.eof = true
	sc.line = nil
	return false
}

func (sc *Scanner) skipSpace() {
	for sc.cursor < len(sc.line) && (sc.line[sc.cursor] == ' ' || sc.line[sc.cursor] == '\t') {
		sc.cursor++
	}
}

// token creates a Token at the given cursor position of the current line.
func (sc *Scanner) token(at int, lexeme string) *Token {
	return &Token{Line: sc.lineNo, Col: at + 1, Text: lexeme}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
