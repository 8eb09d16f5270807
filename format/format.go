package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	SchemataFormat Format = iota
	XSDFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":        SchemataFormat,
		"schemata": SchemataFormat,
		"x":        XSDFormat,
		"xsd":      XSDFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SchemataFormat:
		return []byte("schemata"), nil
	case XSDFormat:
		return []byte("xsd"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXSD() bool { return f == XSDFormat }

// Suffix returns the file extension for f.
func (f Format) Suffix() string {
	if f == XSDFormat {
		return ".xsd"
	}
	return ".schemata"
}

// Other returns the format a document in f is converted to.
func (f Format) Other() Format {
	if f == XSDFormat {
		return SchemataFormat
	}
	return XSDFormat
}

// FromPath returns the format named by the extension of path.
func FromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xsd":
		return XSDFormat, true
	case ".schemata":
		return SchemataFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{SchemataFormat, XSDFormat}
}
