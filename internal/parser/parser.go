// Package parser implements the recursive-descent parser for mini-C. Parsing
// functions assume the parser is positioned on the first token of their
// production and leave it positioned on the first token past it. Parsing
// aborts on the first syntax error: there is no error recovery, matching the
// abort-at-first-error behavior of the original compiler.
package parser

import (
	"fmt"

	"mc/internal/ast"
	"mc/internal/lexer"
	"mc/internal/token"
)

// SyntaxError is returned for any malformed input. Pos is the offending
// token's source position.
type SyntaxError struct {
	Pos token.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: syntax error: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Parser holds a token buffer and the current lookahead token.
type Parser struct {
	buf *lexer.Buffer
	tok token.Token
}

// New creates a parser positioned on the first token read from buf.
func New(buf *lexer.Buffer) *Parser {
	return &Parser{buf: buf, tok: buf.Peek()}
}

// Parse parses an entire translation unit: an optional list of externs
// followed by one or more top-level declarations.
func (p *Parser) Parse() (*ast.Root, error) {
	root := &ast.Root{}

	for p.at(token.EXTERN) {
		ext, err := p.parseExtern()
		if err != nil {
			return nil, err
		}
		root.Externs = append(root.Externs, ext)
	}

	if !p.atType() && !p.at(token.VOID) {
		return nil, p.errorf("expected extern or a declaration")
	}
	for p.atType() || p.at(token.VOID) {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		root.Decls = append(root.Decls, decl)
	}

	if !p.at(token.EOF) {
		return nil, p.errorf("expected end of file")
	}
	return root, nil
}

// -----------------------------------------------------------------------------
// token-stream primitives

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) atOneOf(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// atType reports whether the current token begins a var_type (int/float/bool).
func (p *Parser) atType() bool {
	return p.atOneOf(token.INT, token.FLOAT, token.BOOL)
}

// atExprStart reports whether the current token can begin an expression.
func (p *Parser) atExprStart() bool {
	return p.atOneOf(token.LPAREN, token.MINUS, token.NOT, token.IDENT,
		token.INT_LIT, token.FLOAT_LIT, token.BOOL_LIT)
}

// advance consumes the current token and positions the parser on the next.
func (p *Parser) advance() error {
	tok, err := p.buf.Advance()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect checks the current token is of kind, consumes it, and advances.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.errorf("expected %s, found %s", kind, p.tok.Kind)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

// -----------------------------------------------------------------------------
// type names and parameter lists

// parseVarType parses one of "int", "float", "bool".
func (p *Parser) parseVarType() (string, error) {
	switch p.tok.Kind {
	case token.INT, token.FLOAT, token.BOOL:
		name := p.tok.Kind.String()
		return name, p.advance()
	default:
		return "", p.errorf("expected 'int', 'float', or 'bool'")
	}
}

// parseTypeSpec parses a var_type or "void".
func (p *Parser) parseTypeSpec() (string, error) {
	if p.at(token.VOID) {
		if err := p.advance(); err != nil {
			return "", err
		}
		return "void", nil
	}
	return p.parseVarType()
}

// parseParams parses a parameter list: a comma-separated var_type/IDENT list,
// the single keyword "void", or nothing (an empty parameter list). The
// caller has already consumed the opening "(".
func (p *Parser) parseParams() ([]ast.Param, error) {
	if p.at(token.VOID) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if p.at(token.RPAREN) {
		return nil, nil
	}
	if !p.atType() {
		return nil, p.errorf("expected 'void', a parameter type, or ')'")
	}

	var params []ast.Param
	for {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func (p *Parser) parseParam() (ast.Param, error) {
	typ, err := p.parseVarType()
	if err != nil {
		return ast.Param{}, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name.Lexeme, Type: typ}, nil
}

// -----------------------------------------------------------------------------
// externs and top-level declarations

// parseExtern parses `"extern" type_spec IDENT "(" params ")" ";"`.
func (p *Parser) parseExtern() (*ast.Extern, error) {
	if err := p.advance(); err != nil { // eat "extern"
		return nil, err
	}
	proto, err := p.parseProto()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Extern{Proto: proto}, nil
}

// parseProto parses `type_spec IDENT "(" params ")"`, shared by externs and
// function definitions.
func (p *Parser) parseProto() (ast.FuncProto, error) {
	retType, err := p.parseTypeSpec()
	if err != nil {
		return ast.FuncProto{}, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return ast.FuncProto{}, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return ast.FuncProto{}, err
	}
	params, err := p.parseParams()
	if err != nil {
		return ast.FuncProto{}, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return ast.FuncProto{}, err
	}
	return ast.FuncProto{Name: name.Lexeme, ReturnType: retType, Params: params}, nil
}

// parseDecl parses a top-level declaration: either a void function
// definition or a var_type-led function definition/global variable.
func (p *Parser) parseDecl() (ast.Decl, error) {
	if p.at(token.VOID) {
		return p.parseFuncDefWithProto()
	}

	typ, err := p.parseVarType()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	if p.at(token.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		proto := ast.FuncProto{Name: name.Lexeme, ReturnType: typ, Params: params}
		return p.parseFuncBody(proto)
	}

	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name.Lexeme, Type: typ}, nil
}

// parseFuncDefWithProto parses a full void-returning function definition;
// the current token is "void".
func (p *Parser) parseFuncDefWithProto() (*ast.FuncDef, error) {
	proto, err := p.parseProto()
	if err != nil {
		return nil, err
	}
	return p.parseFuncBody(proto)
}

func (p *Parser) parseFuncBody(proto ast.FuncProto) (*ast.FuncDef, error) {
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Proto: proto, Body: body}, nil
}
