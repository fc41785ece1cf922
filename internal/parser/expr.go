package parser

import (
	"strconv"
	"sync"

	"mc/internal/ast"
	"mc/internal/token"
)

// parseExpr parses `IDENT "=" expr | rval`. An assignment's right-hand side
// is itself an expr, not an rval, so chained assignment (`a = b = c`) is
// right-associative.
//
// Disambiguating the two alternatives needs one token of lookahead past the
// identifier: if IDENT is followed by "=" this is an assignment, otherwise
// the identifier is the start of an rval and must be put back so the
// precedence chain below can see it.
func (p *Parser) parseExpr() (ast.Expr, error) {
	if p.at(token.IDENT) {
		ident := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.ASSIGN) {
			if err := p.advance(); err != nil { // eat "="
				return nil, err
			}
			rhs, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.VarAssign{Target: ident.Lexeme, RHS: rhs}, nil
		}
		p.buf.PushBack(ident)
		p.tok = ident
	}
	return p.parseOr()
}

// binaryLevel describes one precedence tier of left-associative binary
// operators: the set of token kinds recognized at this tier and the parser
// for the next-higher tier.
type binaryLevel struct {
	kinds []token.Kind
	next  func(*Parser) (ast.Expr, error)
}

// levels is built lazily via levelsTable rather than as a package-level var
// literal: a direct literal here creates an initialization cycle (levels ->
// parseAnd -> parseLevel -> levels) because Go's initialization-order
// analysis follows references through function bodies.
var (
	levelsOnce  sync.Once
	levelsCache []binaryLevel
)

func levelsTable() []binaryLevel {
	levelsOnce.Do(func() {
		levelsCache = []binaryLevel{
			{[]token.Kind{token.OR}, (*Parser).parseAnd},
			{[]token.Kind{token.AND}, (*Parser).parseEquality},
			{[]token.Kind{token.EQ, token.NE}, (*Parser).parseRelational},
			{[]token.Kind{token.LT, token.LE, token.GT, token.GE}, (*Parser).parseAdditive},
			{[]token.Kind{token.PLUS, token.MINUS}, (*Parser).parseMultiplicative},
			{[]token.Kind{token.STAR, token.DIV, token.MOD}, (*Parser).parseUnary},
		}
	})
	return levelsCache
}

// parseOr through parseMultiplicative each fold a left-associative run of
// same-tier binary operators over the next tier up, implementing the
// `rval ::= rval_one rval_prime | ...` cascade as an iterative climb rather
// than mutually-recursive "prime" productions.
func (p *Parser) parseOr() (ast.Expr, error)             { return p.parseLevel(0) }
func (p *Parser) parseAnd() (ast.Expr, error)            { return p.parseLevel(1) }
func (p *Parser) parseEquality() (ast.Expr, error)       { return p.parseLevel(2) }
func (p *Parser) parseRelational() (ast.Expr, error)     { return p.parseLevel(3) }
func (p *Parser) parseAdditive() (ast.Expr, error)       { return p.parseLevel(4) }
func (p *Parser) parseMultiplicative() (ast.Expr, error) { return p.parseLevel(5) }

func (p *Parser) parseLevel(i int) (ast.Expr, error) {
	lvl := levelsTable()[i]
	lhs, err := lvl.next(p)
	if err != nil {
		return nil, err
	}
	for p.atOneOf(lvl.kinds...) {
		op := p.tok.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := lvl.next(p)
		if err != nil {
			return nil, err
		}
		lhs = &ast.Binary{Op: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

// parseUnary parses `"-" unary | "!" unary | paren`, right-associative and
// stackable (`- - x` parses as `-(-x)`).
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.atOneOf(token.MINUS, token.NOT) {
		op := p.tok.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	return p.parseParen()
}

// parseParen parses `"(" expr ")"` or falls through to a primary expression.
func (p *Parser) parseParen() (ast.Expr, error) {
	if p.at(token.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses `IDENT | IDENT "(" args ")" | INT_LIT | FLOAT_LIT |
// BOOL_LIT`.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.tok.Kind {
	case token.IDENT:
		name := p.tok.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.at(token.LPAREN) {
			return &ast.VarRef{Name: name}, nil
		}
		if err := p.advance(); err != nil { // eat "("
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Call{Callee: name, Args: args}, nil

	case token.INT_LIT:
		lexeme, pos := p.tok.Lexeme, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(lexeme, 10, 32)
		if err != nil {
			return nil, &SyntaxError{Pos: pos, Msg: "malformed integer literal " + lexeme}
		}
		return &ast.IntLit{Value: int32(v)}, nil

	case token.FLOAT_LIT:
		lexeme, pos := p.tok.Lexeme, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(lexeme, 32)
		if err != nil {
			return nil, &SyntaxError{Pos: pos, Msg: "malformed float literal " + lexeme}
		}
		return &ast.FloatLit{Value: float32(v)}, nil

	case token.BOOL_LIT:
		lexeme := p.tok.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Value: lexeme == "true"}, nil

	default:
		return nil, p.errorf("expected an expression")
	}
}

// parseArgs parses a possibly-empty comma-separated argument list. The
// caller has already consumed the opening "(".
func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if p.at(token.RPAREN) {
		return nil, nil
	}
	var args []ast.Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return args, nil
}
