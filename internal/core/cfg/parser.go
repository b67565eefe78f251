package cfg

import (
	"fmt"
	"strconv"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse parses a bare predicate such as all(unix, feature = "std").
func Parse(input string) (Expr, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	expr, err := p.predicate()
	if err != nil {
		return nil, p.fail(err)
	}
	if _, err := p.expect(tokEOF); err != nil {
		return nil, p.fail(err)
	}
	return expr, nil
}

// ParseTarget parses a manifest target key of the form cfg(<predicate>).
// Literal platform names are not predicates and fail to parse.
func ParseTarget(input string) (Expr, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	expr, err := p.target()
	if err != nil {
		return nil, p.fail(err)
	}
	return expr, nil
}

type parser struct {
	input string
	lex   *lexer
	tok   token
}

func newParser(input string) (*parser, error) {
	p := &parser{input: input, lex: &lexer{input: input}}
	if err := p.advance(); err != nil {
		return nil, p.fail(err)
	}
	return p, nil
}

func (p *parser) fail(err error) error {
	return &domain.ParseError{Subject: "predicate " + strconv.Quote(p.input), Err: err}
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.tok
	if tok.kind != kind {
		return tok, zerr.New(fmt.Sprintf("expected %s, found %s at offset %d", kind, tok.kind, tok.pos))
	}
	if kind != tokEOF {
		if err := p.advance(); err != nil {
			return tok, err
		}
	}
	return tok, nil
}

func (p *parser) target() (Expr, error) {
	ident, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if ident.text != "cfg" {
		return nil, zerr.New(fmt.Sprintf("expected cfg, found %q at offset %d", ident.text, ident.pos))
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	expr, err := p.predicate()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) predicate() (Expr, error) {
	ident, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}

	switch p.tok.kind {
	case tokEq:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.expect(tokString)
		if err != nil {
			return nil, err
		}
		return KeyValue{Key: ident.text, Value: value.text}, nil
	case tokLParen:
		return p.combinator(ident)
	default:
		return Name{Name: ident.text}, nil
	}
}

func (p *parser) combinator(ident token) (Expr, error) {
	switch ident.text {
	case "all", "any", "not":
	default:
		return nil, zerr.New(fmt.Sprintf("unknown operator %q at offset %d", ident.text, ident.pos))
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	exprs, err := p.list()
	if err != nil {
		return nil, err
	}

	switch ident.text {
	case "all":
		return All{Exprs: exprs}, nil
	case "any":
		return Any{Exprs: exprs}, nil
	default:
		if len(exprs) != 1 {
			return nil, zerr.New(fmt.Sprintf("not takes exactly one predicate at offset %d", ident.pos))
		}
		return Not{Expr: exprs[0]}, nil
	}
}

// list parses comma separated predicates up to and including the closing
// parenthesis. A trailing comma is accepted.
func (p *parser) list() ([]Expr, error) {
	var exprs []Expr
	for p.tok.kind != tokRParen {
		expr, err := p.predicate()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		if p.tok.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return exprs, nil
}
