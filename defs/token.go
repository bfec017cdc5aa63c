package defs

import "fmt"

// Token types handed from the line-level scanner to the parser. The scanner
// implements the gorgo scanner.Tokenizer interface, which communicates token
// types as plain ints.
const (
	tokString  = iota + 1 // a quoted register name, quotes stripped
	tokComma              // ','
	tokColon              // ':'
	tokIdent              // [A-Za-z_][A-Za-z0-9_]*
	tokEOL                // end of a definition line
	tokInvalid            // scanning error; Token.Msg carries the message
)

// Token is the value part of a scanned token. The scanner attaches one to
// every token it hands out, so that the parser can report precise source
// locations.
type Token struct {
	Line, Col int    // position of the token's first character, 1-based
	Text      string // lexeme; for tokString the content without quotes
	Msg       string // scanner diagnostic, set for tokInvalid only
}

func (t *Token) String() string {
	return fmt.Sprintf("token[at(%d,%d) %q]", t.Line, t.Col, t.Text)
}
