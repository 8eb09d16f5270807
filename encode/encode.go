package encode

import (
	"bytes"
	"io"

	"github.com/signadot/schemata/debug"
	"github.com/signadot/schemata/format"
	"github.com/signadot/schemata/ir"
)

type EncState struct {
	format    format.Format
	indent    int
	comments  bool
	header    bool
	namespace string

	Color func(ColorAttr, string) string
}

func Encode(f *ir.File, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   4,
		comments: true,
		header:   true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode: %s, %d namespaces", es.format, len(f.Namespaces))
	}
	if es.format.IsXSD() {
		return encodeXSD(f, w, es)
	}
	return encodeSchemata(f, w, es)
}

// EncodeString encodes f to a string.
func EncodeString(f *ir.File, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(f, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(f *ir.File, opts ...EncodeOption) string {
	s, err := EncodeString(f, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}
