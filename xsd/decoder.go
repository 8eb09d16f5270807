package xsd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/schemata/debug"
	"golang.org/x/net/html/charset"
)

type decoder struct {
	x    *xml.Decoder
	opts *parseOpts
}

func newDecoder(r io.Reader, opts *parseOpts) *decoder {
	x := xml.NewDecoder(r)
	x.CharsetReader = charset.NewReaderLabel
	return &decoder{x: x, opts: opts}
}

// token returns the next token, copied so that it outlives the following
// call.
func (d *decoder) token() (xml.Token, error) {
	tok, err := d.x.Token()
	if err != nil {
		return nil, d.wrap(err)
	}
	return xml.CopyToken(tok), nil
}

// next returns the next start or end element.
func (d *decoder) next() (xml.Token, error) {
	for {
		tok, err := d.x.Token()
		if err != nil {
			return nil, d.wrap(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if debug.XSD() {
				debug.Logf("xsd: <%s> %d attrs", t.Name.Local, len(t.Attr))
			}
			return t, nil
		case xml.EndElement:
			if debug.XSD() {
				debug.Logf("xsd: </%s>", t.Name.Local)
			}
			return t, nil
		}
	}
}

func (d *decoder) skip() error {
	if err := d.x.Skip(); err != nil {
		return d.wrap(err)
	}
	return nil
}

func (d *decoder) wrap(err error) error {
	if err == io.EOF {
		return err
	}
	var xe *xml.SyntaxError
	if errors.As(err, &xe) {
		_, col := d.x.InputPos()
		return &SyntaxError{Line: xe.Line, Col: col, Msg: xe.Msg}
	}
	return err
}

func (d *decoder) diag(start xml.StartElement, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if debug.XSD() {
		debug.Logf("xsd: diagnostic <%s>: %s", start.Name.Local, msg)
	}
	if d.opts.diags == nil {
		return
	}
	line, col := d.x.InputPos()
	*d.opts.diags = append(*d.opts.diags, Diagnostic{
		Line:    line,
		Col:     col,
		Element: start.Name.Local,
		Message: msg,
	})
}

// unexpectedEOF reports a truncated document inside the markup named in.
func unexpectedEOF(err error, in string) error {
	if err == io.EOF {
		return fmt.Errorf("%w in %s", ErrUnexpectedEOF, in)
	}
	var se *SyntaxError
	if errors.As(err, &se) && se.Msg == "unexpected EOF" {
		return fmt.Errorf("%w in %s: %w", ErrUnexpectedEOF, in, err)
	}
	return err
}

// attr looks up an attribute by local name, ignoring namespace
// declarations.
func attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" {
			continue
		}
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			continue
		}
		if a.Name.Local == name || strings.HasSuffix(a.Name.Local, ":"+name) {
			return a.Value, true
		}
	}
	return "", false
}

func attrString(start xml.StartElement, name string) string {
	v, _ := attr(start, name)
	return v
}

func attrBool(start xml.StartElement, name string) bool {
	v, ok := attr(start, name)
	if !ok {
		return false
	}
	b, _ := strconv.ParseBool(strings.TrimSpace(v))
	return b
}

func attrPtr(start xml.StartElement, name string) *string {
	v, ok := attr(start, name)
	if !ok {
		return nil
	}
	return &v
}
