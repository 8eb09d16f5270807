package xsd

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Parse reads an XML Schema document from r.  Malformed XML fails the
// whole parse with a *SyntaxError; markup outside the supported subset is
// skipped and reported through ParseDiagnostics.
func Parse(r io.Reader, opts ...ParseOption) (*Schema, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	d := newDecoder(r, o)
	s := &Schema{Namespaces: map[string]string{}}
	var stack []*Element
	for {
		tok, err := d.next()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local != "element" || len(stack) == 0 {
				continue
			}
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s.Elements = append(s.Elements, e)
		case xml.StartElement:
			var top *Element
			if len(stack) > 0 {
				top = stack[len(stack)-1]
			}
			switch t.Name.Local {
			case "schema":
				s.TargetNamespace = attrString(t, "targetNamespace")
				s.ElementFormDefault = attrString(t, "elementFormDefault")
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" {
						s.Namespaces[a.Name.Local] = a.Value
					}
				}
			case "element":
				stack = append(stack, d.newElement(t))
			case "complexType":
				ct, err := d.complexType(t)
				if err != nil {
					return nil, err
				}
				switch {
				case ct.Name != "":
					s.ComplexTypes = append(s.ComplexTypes, ct)
				case top == nil:
					d.diag(t, "anonymous complexType outside an element")
					s.ComplexTypes = append(s.ComplexTypes, ct)
				case top.Type != "":
					d.diag(t, "inline complexType ignored on element %q with type %q", top.Name, top.Type)
				default:
					top.ComplexType = ct
				}
			case "simpleType":
				st, err := d.simpleType(t)
				if err != nil {
					return nil, err
				}
				switch {
				case st.Name != "" || top == nil:
					s.SimpleTypes = append(s.SimpleTypes, st)
				case top.Type != "":
					d.diag(t, "inline simpleType ignored on element %q with type %q", top.Name, top.Type)
				default:
					top.SimpleType = st
				}
			case "include", "import":
				if loc, ok := attr(t, "schemaLocation"); ok {
					s.Imports = append(s.Imports, loc)
				}
				if err := d.skip(); err != nil {
					return nil, err
				}
			case "annotation":
				doc, err := d.annotation()
				if err != nil {
					return nil, err
				}
				if top != nil {
					top.Comment = doc
				}
			default:
				d.diag(t, "skipping unsupported <%s>", t.Name.Local)
				if err := d.skip(); err != nil {
					return nil, err
				}
			}
		}
	}
}

func (d *decoder) newElement(start xml.StartElement) *Element {
	e := &Element{
		Name:      attrString(start, "name"),
		Ref:       attrString(start, "ref"),
		Type:      attrString(start, "type"),
		MinOccurs: attrString(start, "minOccurs"),
		MaxOccurs: attrString(start, "maxOccurs"),
	}
	if e.Name == "" && e.Ref == "" {
		d.diag(start, "element without name or ref")
	}
	return e
}

// element parses a nested element declaration up to its end tag.  The
// inline type of an element which names a type is skipped.
func (d *decoder) element(start xml.StartElement) (*Element, error) {
	e := d.newElement(start)
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err, "element")
		}
		t, ok := tok.(xml.StartElement)
		if !ok {
			return e, nil
		}
		switch t.Name.Local {
		case "complexType", "simpleType":
			if e.Type != "" {
				d.diag(t, "inline %s ignored on element %q with type %q", t.Name.Local, e.Name, e.Type)
				if err := d.skip(); err != nil {
					return nil, unexpectedEOF(err, "element")
				}
				continue
			}
			if t.Name.Local == "complexType" {
				e.ComplexType, err = d.complexType(t)
			} else {
				e.SimpleType, err = d.simpleType(t)
			}
			if err != nil {
				return nil, err
			}
		case "annotation":
			e.Comment, err = d.annotation()
			if err != nil {
				return nil, unexpectedEOF(err, "element")
			}
		default:
			d.diag(t, "skipping unsupported <%s> in element %q", t.Name.Local, e.Name)
			if err := d.skip(); err != nil {
				return nil, unexpectedEOF(err, "element")
			}
		}
	}
}

func (d *decoder) complexType(start xml.StartElement) (*ComplexType, error) {
	ct := &ComplexType{
		Name:  attrString(start, "name"),
		Mixed: attrBool(start, "mixed"),
	}
	depth := 0
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err, "complexType")
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if depth == 0 {
				return ct, nil
			}
			depth--
		case xml.StartElement:
			switch t.Name.Local {
			case "sequence":
				els, err := d.sequence()
				if err != nil {
					return nil, err
				}
				ct.Sequence = append(ct.Sequence, els...)
			case "attribute":
				ct.Attributes = append(ct.Attributes, &Attribute{
					Name:    attrString(t, "name"),
					Type:    attrString(t, "type"),
					Use:     attrString(t, "use"),
					Default: attrPtr(t, "default"),
					Fixed:   attrPtr(t, "fixed"),
				})
				if err := d.skip(); err != nil {
					return nil, unexpectedEOF(err, "complexType")
				}
			case "annotation":
				ct.Comment, err = d.annotation()
				if err != nil {
					return nil, unexpectedEOF(err, "complexType")
				}
			default:
				d.diag(t, "unsupported <%s> in complexType %q", t.Name.Local, ct.Name)
				depth++
			}
		}
	}
}

// sequence collects the elements of a sequence.  Other markup is passed
// over, and elements below it are still collected.
func (d *decoder) sequence() ([]*Element, error) {
	var els []*Element
	depth := 0
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err, "sequence")
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if depth == 0 {
				return els, nil
			}
			depth--
		case xml.StartElement:
			if t.Name.Local != "element" {
				depth++
				continue
			}
			e, err := d.element(t)
			if err != nil {
				return nil, err
			}
			els = append(els, e)
		}
	}
}

func (d *decoder) simpleType(start xml.StartElement) (*SimpleType, error) {
	st := &SimpleType{Name: attrString(start, "name")}
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err, "simpleType")
		}
		t, ok := tok.(xml.StartElement)
		if !ok {
			return st, nil
		}
		switch t.Name.Local {
		case "restriction":
			st.Restriction, err = d.restriction(t)
			if err != nil {
				return nil, err
			}
			continue
		case "annotation":
			st.Comment, err = d.annotation()
			if err != nil {
				return nil, unexpectedEOF(err, "simpleType")
			}
			continue
		case "list":
			st.List = attrString(t, "itemType")
		case "union":
			st.Union = strings.Fields(attrString(t, "memberTypes"))
		default:
			d.diag(t, "skipping unsupported <%s> in simpleType %q", t.Name.Local, st.Name)
		}
		if err := d.skip(); err != nil {
			return nil, unexpectedEOF(err, "simpleType")
		}
	}
}

func (d *decoder) restriction(start xml.StartElement) (*Restriction, error) {
	r := &Restriction{Base: attrString(start, "base")}
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err, "restriction")
		}
		t, ok := tok.(xml.StartElement)
		if !ok {
			return r, nil
		}
		v := attrString(t, "value")
		switch t.Name.Local {
		case "enumeration":
			r.Enumeration = append(r.Enumeration, v)
		case "pattern":
			r.Pattern = &v
		case "minInclusive":
			r.MinInclusive = &v
		case "maxInclusive":
			r.MaxInclusive = &v
		case "minExclusive":
			r.MinExclusive = &v
		case "maxExclusive":
			r.MaxExclusive = &v
		case "length":
			r.Length = d.intFacet(t, v)
		case "minLength":
			r.MinLength = d.intFacet(t, v)
		case "maxLength":
			r.MaxLength = d.intFacet(t, v)
		case "totalDigits":
			r.TotalDigits = d.intFacet(t, v)
		case "fractionDigits":
			r.FractionDigits = d.intFacet(t, v)
		default:
			d.diag(t, "skipping unsupported facet <%s>", t.Name.Local)
		}
		if err := d.skip(); err != nil {
			return nil, unexpectedEOF(err, "restriction")
		}
	}
}

func (d *decoder) intFacet(start xml.StartElement, v string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		d.diag(start, "invalid %s value %q", start.Name.Local, v)
		return nil
	}
	return &n
}

// annotation returns the text of the documentation children of an
// annotation, one line per documentation element.
func (d *decoder) annotation() (string, error) {
	var (
		docs  []string
		b     strings.Builder
		depth int
		inDoc bool
	)
	for {
		tok, err := d.token()
		if err != nil {
			return "", unexpectedEOF(err, "annotation")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 && t.Name.Local == "documentation" {
				inDoc = true
				b.Reset()
			}
		case xml.CharData:
			if inDoc {
				b.Write(t)
			}
		case xml.EndElement:
			if depth == 0 {
				return strings.Join(docs, "\n"), nil
			}
			if depth == 1 && inDoc {
				docs = append(docs, strings.TrimSpace(b.String()))
				inDoc = false
			}
			depth--
		}
	}
}
