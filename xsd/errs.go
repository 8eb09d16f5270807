package xsd

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax        = errors.New("xsd syntax error")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError is malformed XML as reported by the XML decoder.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, col %d: %s", ErrSyntax, e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
