package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/signadot/schemata/ir"
	"github.com/signadot/schemata/mapping"
)

const xsdNamespace = "http://www.w3.org/2001/XMLSchema"

// emptyElement matches an element with no content.  encoding/xml escapes
// '<' and '>' in attribute values, so neither occurs inside a tag.
var emptyElement = regexp.MustCompile(`<(xs:[A-Za-z]+)([^<>]*)></xs:[A-Za-z]+>`)

// selfClose rewrites elements without content as self-closing tags.
func selfClose(d []byte) []byte {
	return emptyElement.ReplaceAll(d, []byte("<$1$2/>"))
}

// CheckNamespace reports whether ns can be used as a target namespace.
// The empty namespace is allowed.
func CheckNamespace(ns string) error {
	for _, r := range ns {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune("<>\"{}|\\^`", r) {
			return fmt.Errorf("%w: %q contains %q", ErrBadNamespace, ns, r)
		}
	}
	if _, err := url.Parse(ns); err != nil {
		return fmt.Errorf("%w: %w", ErrBadNamespace, err)
	}
	return nil
}

type xsdWriter struct {
	enc *xml.Encoder
	es  *EncState
}

func encodeXSD(f *ir.File, w io.Writer, es *EncState) error {
	ns := es.namespace
	if ns == "" && len(f.Namespaces) != 0 {
		ns = f.Namespaces[0].Name
	}
	if err := CheckNamespace(ns); err != nil {
		return err
	}
	if es.header {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
	}
	buf := bytes.NewBuffer(nil)
	enc := xml.NewEncoder(buf)
	enc.Indent("", strings.Repeat(" ", es.indent))
	x := &xsdWriter{enc: enc, es: es}
	if err := x.schema(f, ns); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.WriteByte('\n')
	if _, err := w.Write(selfClose(buf.Bytes())); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func xsName(local string) xml.Name {
	return xml.Name{Local: "xs:" + local}
}

func xmlAttr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (x *xsdWriter) start(local string, attrs ...xml.Attr) error {
	return x.enc.EncodeToken(xml.StartElement{Name: xsName(local), Attr: attrs})
}

func (x *xsdWriter) end(local string) error {
	return x.enc.EncodeToken(xml.EndElement{Name: xsName(local)})
}

func (x *xsdWriter) schema(f *ir.File, ns string) error {
	attrs := []xml.Attr{xmlAttr("xmlns:xs", xsdNamespace)}
	if ns != "" {
		attrs = append(attrs,
			xmlAttr("xmlns:tns", ns),
			xmlAttr("targetNamespace", ns))
	}
	attrs = append(attrs, xmlAttr("elementFormDefault", "qualified"))
	if err := x.start("schema", attrs...); err != nil {
		return err
	}
	for _, n := range f.Namespaces {
		for _, s := range n.Schemas {
			if err := x.complexType(s); err != nil {
				return err
			}
		}
		for _, e := range n.Enums {
			if err := x.simpleType(e); err != nil {
				return err
			}
		}
	}
	return x.end("schema")
}

func (x *xsdWriter) annotation(comment string) error {
	if !x.es.comments || comment == "" {
		return nil
	}
	if err := x.start("annotation"); err != nil {
		return err
	}
	if err := x.start("documentation"); err != nil {
		return err
	}
	if err := x.enc.EncodeToken(xml.CharData(comment)); err != nil {
		return err
	}
	if err := x.end("documentation"); err != nil {
		return err
	}
	return x.end("annotation")
}

// complexType writes a named complex type, or a top level element for a
// schema annotated with @element.
func (x *xsdWriter) complexType(s *ir.Schema) error {
	var attrs []xml.Attr
	if ir.FindAnnotation(s.Annotations, "mixed") != nil && mixed(s.Annotations) {
		attrs = append(attrs, xmlAttr("mixed", "true"))
	}
	if ir.FindAnnotation(s.Annotations, "element") != nil {
		if err := x.start("element", xmlAttr("name", s.Name)); err != nil {
			return err
		}
		if err := x.annotation(s.Comment); err != nil {
			return err
		}
		if err := x.start("complexType", attrs...); err != nil {
			return err
		}
		if err := x.body(s); err != nil {
			return err
		}
		if err := x.end("complexType"); err != nil {
			return err
		}
		return x.end("element")
	}
	attrs = append([]xml.Attr{xmlAttr("name", s.Name)}, attrs...)
	if err := x.start("complexType", attrs...); err != nil {
		return err
	}
	if err := x.annotation(s.Comment); err != nil {
		return err
	}
	if err := x.body(s); err != nil {
		return err
	}
	return x.end("complexType")
}

func mixed(anns []*ir.Annotation) bool {
	v, ok := ir.FindAnnotation(anns, "mixed").Get(ir.ValueKey)
	if !ok {
		return true
	}
	return v.Type == ir.BoolValue && v.Bool
}

// body writes the sequence of s followed by one attribute per
// @attribute annotation.
func (x *xsdWriter) body(s *ir.Schema) error {
	if err := x.sequence(s.Fields); err != nil {
		return err
	}
	for _, a := range s.Annotations {
		if a.Name != "attribute" {
			continue
		}
		name, ok := a.Get("name")
		if !ok {
			continue
		}
		attrs := []xml.Attr{xmlAttr("name", name.Text())}
		if t, ok := a.Get("type"); ok {
			attrs = append(attrs, xmlAttr("type", t.Text()))
		}
		if use, ok := a.Get("use"); ok {
			attrs = append(attrs, xmlAttr("use", use.Text()))
		}
		if err := x.start("attribute", attrs...); err != nil {
			return err
		}
		if err := x.end("attribute"); err != nil {
			return err
		}
	}
	return nil
}

func (x *xsdWriter) sequence(fields []*ir.Field) error {
	if err := x.start("sequence"); err != nil {
		return err
	}
	for _, f := range fields {
		if err := x.element(f); err != nil {
			return err
		}
	}
	return x.end("sequence")
}

func (x *xsdWriter) element(f *ir.Field) error {
	attrs := []xml.Attr{xmlAttr("name", f.Name)}
	if t := f.EffectiveType(); t != "" {
		attrs = append(attrs, xmlAttr("type", mapping.XSDType(t)))
	}
	if m := mapping.MinOccurs(f.Nullable); m != "" {
		attrs = append(attrs, xmlAttr("minOccurs", m))
	}
	if m, ok := mapping.MaxOccurs(f.Annotations); ok {
		attrs = append(attrs, xmlAttr("maxOccurs", m))
	}
	if err := x.start("element", attrs...); err != nil {
		return err
	}
	if err := x.annotation(f.Comment); err != nil {
		return err
	}
	if f.Inline != nil {
		if err := x.start("complexType"); err != nil {
			return err
		}
		if err := x.sequence(f.Inline.Fields); err != nil {
			return err
		}
		if err := x.end("complexType"); err != nil {
			return err
		}
	}
	return x.end("element")
}

func (x *xsdWriter) simpleType(e *ir.Enum) error {
	if err := x.start("simpleType", xmlAttr("name", e.Name)); err != nil {
		return err
	}
	if err := x.annotation(e.Comment); err != nil {
		return err
	}
	if err := x.start("restriction", xmlAttr("base", "xs:string")); err != nil {
		return err
	}
	for _, v := range e.Values {
		if err := x.start("enumeration", xmlAttr("value", v)); err != nil {
			return err
		}
		if err := x.end("enumeration"); err != nil {
			return err
		}
	}
	if err := x.end("restriction"); err != nil {
		return err
	}
	return x.end("simpleType")
}
