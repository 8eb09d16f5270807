package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/schemata/debug"
	"github.com/signadot/schemata/ir"
	"github.com/signadot/schemata/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.File, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			err = &SyntaxError{Pos: te.Pos, Msg: te.Err.Error(), Err: te.Err}
		}
		return nil, pOpts.wrap(err)
	}
	tree, err := newGrammar(toks, d).file()
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	if debug.Parse() {
		debug.Logf("parse tree:\n%s", tree)
	}
	w := &walker{opts: pOpts}
	f, err := w.file(tree)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	return f, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.File, error) {
	return Parse([]byte(s), opts...)
}

func (o *parseOpts) wrap(err error) error {
	if o.filename == "" {
		return err
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		se.Filename = o.filename
		return se
	}
	return fmt.Errorf("%s: %w", o.filename, err)
}
