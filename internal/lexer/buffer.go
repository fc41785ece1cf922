package lexer

import "mc/internal/token"

// Buffer wraps a Lexer with a one-token pushback slot, giving the parser the
// lookahead it needs to disambiguate `IDENT = expr` from `IDENT` used as an
// rvalue without backtracking: Peek/Advance normally pull fresh tokens from
// the lexer, but PushBack makes the next Advance replay a token the parser
// has already consumed.
type Buffer struct {
	lex *Lexer

	cur     token.Token
	pending *token.Token // non-nil when a pushed-back token is queued
}

// NewBuffer creates a token buffer over lex, already positioned on the first
// token.
func NewBuffer(lex *Lexer) (*Buffer, error) {
	b := &Buffer{lex: lex}
	if err := b.fill(); err != nil {
		return nil, err
	}
	return b, nil
}

// fill pulls the current token from the pending slot or the lexer.
func (b *Buffer) fill() error {
	if b.pending != nil {
		b.cur = *b.pending
		b.pending = nil
		return nil
	}
	tok, err := b.lex.NextToken()
	if err != nil {
		return err
	}
	b.cur = tok
	return nil
}

// Peek returns the current token without consuming it.
func (b *Buffer) Peek() token.Token {
	return b.cur
}

// Advance consumes the current token and returns the token that follows
// (refilling lazily from the pushback slot or the lexer).
func (b *Buffer) Advance() (token.Token, error) {
	if err := b.fill(); err != nil {
		return token.Token{}, err
	}
	return b.cur, nil
}

// PushBack restores tok as the current token, as if it had not yet been
// consumed, and queues whatever was current before the call to be returned
// by the following Advance. This is how the parser un-reads a one-token
// lookahead: it advances past an identifier to peek at what follows, and if
// that peek didn't match what it was hoping for, it pushes the identifier
// back so expression parsing can see it again.
func (b *Buffer) PushBack(tok token.Token) {
	queued := b.cur
	b.pending = &queued
	b.cur = tok
}
