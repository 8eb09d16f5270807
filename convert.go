package schemata

import (
	"bytes"
	"io"

	"github.com/signadot/schemata/encode"
	"github.com/signadot/schemata/format"
	"github.com/signadot/schemata/ir"
	"github.com/signadot/schemata/mapping"
	"github.com/signadot/schemata/parse"
	"github.com/signadot/schemata/xsd"
)

type options struct {
	encode  []encode.EncodeOption
	mapping []mapping.Option
	parse   []parse.ParseOption
	diags   *[]xsd.Diagnostic
}

type Option func(*options)

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *options) { o.encode = append(o.encode, opts...) }
}

func WithMappingOptions(opts ...mapping.Option) Option {
	return func(o *options) { o.mapping = append(o.mapping, opts...) }
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *options) { o.parse = append(o.parse, opts...) }
}

// WithDiagnostics collects the diagnostics of the XML Schema reader.
func WithDiagnostics(d *[]xsd.Diagnostic) Option {
	return func(o *options) { o.diags = d }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) encodeOpts(f format.Format, extra ...encode.EncodeOption) []encode.EncodeOption {
	res := append([]encode.EncodeOption{}, o.encode...)
	res = append(res, encode.EncodeFormat(f))
	return append(res, extra...)
}

func ParseXSD(r io.Reader, opts ...xsd.ParseOption) (*xsd.Schema, error) {
	return xsd.Parse(r, opts...)
}

func GenerateSchemata(s *xsd.Schema, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := generateSchemata(s, buf, newOptions(opts)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func generateSchemata(s *xsd.Schema, w io.Writer, o *options) error {
	f := mapping.ToSchemata(s, o.mapping...)
	return encode.Encode(f, w, o.encodeOpts(format.SchemataFormat)...)
}

func ParseSchemata(d []byte, opts ...parse.ParseOption) (*ir.File, error) {
	return parse.Parse(d, opts...)
}

func GenerateXSD(f *ir.File, targetNamespace string, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := generateXSD(f, buf, targetNamespace, newOptions(opts)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func generateXSD(f *ir.File, w io.Writer, targetNamespace string, o *options) error {
	return encode.Encode(f, w, o.encodeOpts(format.XSDFormat, encode.TargetNamespace(targetNamespace))...)
}

func XSDToSchemata(r io.Reader, w io.Writer, opts ...Option) error {
	o := newOptions(opts)
	s, err := xsd.Parse(r, xsd.ParseDiagnostics(o.diags))
	if err != nil {
		return err
	}
	return generateSchemata(s, w, o)
}

func SchemataToXSD(d []byte, w io.Writer, targetNamespace string, opts ...Option) error {
	o := newOptions(opts)
	f, err := parse.Parse(d, o.parse...)
	if err != nil {
		return err
	}
	return generateXSD(f, w, targetNamespace, o)
}

// FormatSchemata parses Schemata text and encodes it again.
func FormatSchemata(d []byte, opts ...Option) (string, error) {
	o := newOptions(opts)
	f, err := parse.Parse(d, o.parse...)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(f, buf, o.encodeOpts(format.SchemataFormat)...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
