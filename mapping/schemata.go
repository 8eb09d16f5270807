package mapping

import (
	"strings"

	"github.com/signadot/schemata/ir"
	"github.com/signadot/schemata/xsd"
)

const (
	DefaultNamespace = "default"
	UnnamedSchema    = "UnnamedSchema"
	UnnamedEnum      = "UnnamedEnum"
	DefaultType      = "string"
)

type options struct {
	elementSchemas bool
}

type Option func(*options)

// WithElementSchemas also turns top level elements with an anonymous
// complex type into schemas, annotated with @element.
func WithElementSchemas() Option {
	return func(o *options) { o.elementSchemas = true }
}

// ToSchemata builds a Schemata file holding one namespace, named after the
// target namespace of s.
func ToSchemata(s *xsd.Schema, opts ...Option) *ir.File {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	ns := &ir.Namespace{Name: s.TargetNamespace}
	if ns.Name == "" {
		ns.Name = DefaultNamespace
	}
	for _, ct := range s.ComplexTypes {
		ns.Schemas = append(ns.Schemas, Schema(ct))
	}
	if o.elementSchemas {
		for _, e := range s.Elements {
			if e.ComplexType == nil {
				continue
			}
			sc := Schema(e.ComplexType)
			sc.Name = e.Name
			if e.Comment != "" {
				sc.Comment = e.Comment
			}
			sc.Annotations = append([]*ir.Annotation{ir.NewAnnotation("element")}, sc.Annotations...)
			ns.Schemas = append(ns.Schemas, sc)
		}
	}
	for _, st := range s.SimpleTypes {
		if e := Enum(st); e != nil {
			ns.Enums = append(ns.Enums, e)
		}
	}
	return &ir.File{Namespaces: []*ir.Namespace{ns}}
}

func Schema(ct *xsd.ComplexType) *ir.Schema {
	name := ct.Name
	if name == "" {
		name = UnnamedSchema
	}
	return &ir.Schema{
		Name:        name,
		Comment:     ct.Comment,
		Annotations: ComplexTypeAnnotations(ct),
		Fields:      Fields(ct.Sequence),
	}
}

// Enum returns nil for a simple type without a restriction.
func Enum(st *xsd.SimpleType) *ir.Enum {
	if st.Restriction == nil {
		return nil
	}
	name := st.Name
	if name == "" {
		name = UnnamedEnum
	}
	return &ir.Enum{
		Name:    name,
		Comment: st.Comment,
		Values:  append([]string(nil), st.Restriction.Enumeration...),
	}
}

func Fields(els []*xsd.Element) []*ir.Field {
	fs := make([]*ir.Field, 0, len(els))
	for _, e := range els {
		fs = append(fs, Field(e))
	}
	return fs
}

func Field(e *xsd.Element) *ir.Field {
	f := &ir.Field{
		Name:        e.Name,
		Type:        e.Type,
		Nullable:    Nullable(e.MinOccurs),
		Annotations: FieldAnnotations(e),
		Comment:     e.Comment,
	}
	if f.Name == "" {
		f.Name = localName(e.Ref)
		if f.Type == "" {
			f.Type = e.Ref
		}
	}
	if f.Type == "" && e.SimpleType != nil && e.SimpleType.Restriction != nil {
		f.Type = e.SimpleType.Restriction.Base
	}
	if f.Type == "" {
		f.Type = DefaultType
	}
	if e.ComplexType != nil {
		f.Type = ""
		f.Inline = &ir.Schema{
			Name:   ir.InlineSchemaName,
			Fields: Fields(e.ComplexType.Sequence),
		}
	}
	return f
}

func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// FieldAnnotations returns @minOccurs and @maxOccurs annotations carrying
// the raw attribute values of e.
func FieldAnnotations(e *xsd.Element) []*ir.Annotation {
	var anns []*ir.Annotation
	if e.MinOccurs != "" {
		anns = append(anns, positional("minOccurs", ir.FromString(e.MinOccurs)))
	}
	if e.MaxOccurs != "" {
		anns = append(anns, positional("maxOccurs", ir.FromString(e.MaxOccurs)))
	}
	return anns
}

func ComplexTypeAnnotations(ct *xsd.ComplexType) []*ir.Annotation {
	var anns []*ir.Annotation
	if ct.Mixed {
		anns = append(anns, positional("mixed", ir.FromBool(true)))
	}
	for _, a := range ct.Attributes {
		use := a.Use
		if use == "" {
			use = "optional"
		}
		ann := ir.NewAnnotation("attribute")
		ann.Set("name", ir.FromString(a.Name))
		if a.Type != "" {
			ann.Set("type", ir.FromString(a.Type))
		}
		ann.Set("use", ir.FromString(use))
		anns = append(anns, ann)
	}
	return anns
}

func positional(name string, v ir.Value) *ir.Annotation {
	return ir.NewAnnotation(name, ir.Param{Key: ir.ValueKey, Value: v})
}
