package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TIdent TokenType = iota
	TInteger
	TString
	TComment
	TAt
	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TEquals
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TInteger: "TInteger",
		TString:  "TString",
		TComment: "TComment",
		TAt:      "TAt",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TComma:   "TComma",
		TEquals:  "TEquals",
		TColon:   "TColon",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Bytes, t.Pos.String())
}

// String returns the token text.  String literals are unquoted and
// comments are returned without their delimiters.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := strconv.Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes[1 : len(t.Bytes)-1])
		}
		return s
	case TComment:
		return commentText(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// End returns the position of the last byte of the token.
func (t *Token) End() *Pos {
	if len(t.Bytes) == 0 {
		return t.Pos
	}
	return t.Pos.D.Pos(t.Pos.I + len(t.Bytes) - 1)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// NumberLike reports whether an identifier starts like a number, as
// in "1.5" or "-2e3".  Such words are not valid literals.
func (t *Token) NumberLike() bool {
	b := t.Bytes
	if t.Type != TIdent || len(b) == 0 {
		return false
	}
	if b[0] == '-' && len(b) > 1 {
		b = b[1:]
	}
	return b[0] >= '0' && b[0] <= '9'
}
