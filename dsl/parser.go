package dsl

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/twips/units"
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?(?:tw|pt|in|mm|cm|hmm|emu|px)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*(?:\[\d+\])*(?:\.[A-Za-z_][A-Za-z0-9_]*(?:\[\d+\])*)*`},
		{Name: "Symbol", Pattern: `[-+*/()]`},
	})

	exprParser = participle.MustBuild[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Expr is the root AST node: a sum of terms.
//
//	1in - 2 * margin
//	(page.width - 1440) / 3
type Expr struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Head *Term          `parser:"@@"`
	Tail []*AddOp       `parser:"@@*"`
}

// AddOp is a '+' or '-' followed by a term.
type AddOp struct {
	Op   string `parser:"@('+' | '-')"`
	Term *Term  `parser:"@@"`
}

// Term is a product of unary operands.
type Term struct {
	Head *Unary   `parser:"@@"`
	Tail []*MulOp `parser:"@@*"`
}

// MulOp is a '*' or '/' followed by an operand.
type MulOp struct {
	Op    string `parser:"@('*' | '/')"`
	Unary *Unary `parser:"@@"`
}

// Unary is an optionally negated primary.
type Unary struct {
	Neg     *Unary   `parser:"  '-' @@"`
	Primary *Primary `parser:"| @@"`
}

// Primary is a literal, a data reference or a parenthesised expression.
type Primary struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Literal *Literal       `parser:"  @Number"`
	Ref     *string        `parser:"| @Ident"`
	Sub     *Expr          `parser:"| '(' @@ ')'"`
}

// Literal is a number with an optional unit suffix, e.g. 12pt or 3.
type Literal units.Length

// Capture implements participle.Capture.
func (l *Literal) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("length literal capture requires value")
	}
	parsed, err := units.ParseLength(values[0])
	if err != nil {
		return err
	}
	*l = Literal(parsed)
	return nil
}

// Parse parses an expression from an io.Reader.
func Parse(r io.Reader) (*Expr, error) {
	return exprParser.Parse("", r)
}

// ParseString parses an expression from a string.
func ParseString(input string) (*Expr, error) {
	return exprParser.ParseString("", input)
}
