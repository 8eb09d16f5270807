package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/schemata/token"
)

var (
	ErrSyntax           = errors.New("syntax error")
	ErrInvalidStructure = errors.New("invalid parse tree structure")
	ErrCustom           = errors.New("parse error")
)

// SyntaxError is input which does not match the grammar.  Err is the
// tokenizer error, if any.
type SyntaxError struct {
	Filename string
	Pos      token.Pos
	Msg      string
	Err      error
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s: %s at %s", ErrSyntax, e.Msg, e.Pos.String())
	if e.Filename != "" {
		return e.Filename + ": " + msg
	}
	return msg
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSyntax, e.Err}
	}
	return []error{ErrSyntax}
}

func invalid(t *Tree, in string) error {
	return fmt.Errorf("%w: unexpected %s in %s", ErrInvalidStructure, t.Rule, in)
}
