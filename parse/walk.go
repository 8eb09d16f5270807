package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/schemata/ir"
)

// DefaultNamespace names the namespace of items declared outside any
// namespace declaration.
const DefaultNamespace = "default"

type walker struct {
	opts *parseOpts
}

func (w *walker) file(t *Tree) (*ir.File, error) {
	f := &ir.File{}
	for _, c := range t.Children {
		switch c.Rule {
		case RuleNamespace:
			ns, err := w.namespace(c)
			if err != nil {
				return nil, err
			}
			f.Namespaces = append(f.Namespaces, ns)
		case RuleComment:
		default:
			return nil, invalid(c, "file")
		}
	}
	return f, nil
}

func (w *walker) namespace(t *Tree) (*ir.Namespace, error) {
	ns := &ir.Namespace{Name: DefaultNamespace}
	for i, c := range t.Children {
		switch c.Rule {
		case RuleIdentifier, RuleString:
			if i != 0 {
				return nil, invalid(c, "namespace_declaration")
			}
			ns.Name = c.Tok.String()
		case RuleSchema:
			s, err := w.schema(c)
			if err != nil {
				return nil, err
			}
			ns.Schemas = append(ns.Schemas, s)
		case RuleEnum:
			e, err := w.enum(c)
			if err != nil {
				return nil, err
			}
			ns.Enums = append(ns.Enums, e)
		default:
			return nil, invalid(c, "namespace_declaration")
		}
	}
	return ns, nil
}

func (w *walker) schema(t *Tree) (*ir.Schema, error) {
	s := &ir.Schema{}
	var comments []string
	for _, c := range t.Children {
		switch c.Rule {
		case RuleComment:
			comments = append(comments, c.Tok.String())
		case RuleAnnotation:
			a, err := w.annotation(c)
			if err != nil {
				return nil, err
			}
			s.Annotations = append(s.Annotations, a)
		case RuleIdentifier:
			if s.Name != "" {
				return nil, invalid(c, "schema")
			}
			s.Name = c.Tok.String()
		case RuleField:
			f, err := w.field(c)
			if err != nil {
				return nil, err
			}
			s.Fields = append(s.Fields, f)
		default:
			return nil, invalid(c, "schema")
		}
	}
	if s.Name == "" {
		return nil, fmt.Errorf("%w: schema without name", ErrInvalidStructure)
	}
	s.Comment = w.comment(comments)
	return s, nil
}

func (w *walker) field(t *Tree) (*ir.Field, error) {
	f := &ir.Field{}
	var comments []string
	typed := false
	for _, c := range t.Children {
		switch c.Rule {
		case RuleIdentifier:
			if f.Name != "" {
				return nil, invalid(c, "field")
			}
			f.Name = c.Tok.String()
		case RuleType:
			f.Type, f.Nullable = splitNullable(c.Tok.String())
			typed = true
		case RuleAnnotation:
			a, err := w.annotation(c)
			if err != nil {
				return nil, err
			}
			f.Annotations = append(f.Annotations, a)
		case RuleInlineSchema:
			in, err := w.inline(c)
			if err != nil {
				return nil, err
			}
			f.Inline = in
		case RuleComment:
			comments = append(comments, c.Tok.String())
		default:
			return nil, invalid(c, "field")
		}
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: field without name", ErrInvalidStructure)
	}
	if !typed {
		if f.Inline == nil {
			return nil, fmt.Errorf("%w: field %q without type", ErrInvalidStructure, f.Name)
		}
		f.Name, f.Nullable = splitNullable(f.Name)
	}
	f.Comment = w.comment(comments)
	return f, nil
}

func splitNullable(s string) (string, bool) {
	if strings.HasSuffix(s, "?") {
		return s[:len(s)-1], true
	}
	return s, false
}

func (w *walker) inline(t *Tree) (*ir.Schema, error) {
	s := &ir.Schema{Name: ir.InlineSchemaName}
	for _, c := range t.Children {
		if c.Rule != RuleField {
			return nil, invalid(c, "inline_schema")
		}
		f, err := w.field(c)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

func (w *walker) enum(t *Tree) (*ir.Enum, error) {
	e := &ir.Enum{}
	var comments []string
	for _, c := range t.Children {
		switch c.Rule {
		case RuleComment:
			comments = append(comments, c.Tok.String())
		case RuleAnnotation:
			a, err := w.annotation(c)
			if err != nil {
				return nil, err
			}
			e.Annotations = append(e.Annotations, a)
		case RuleIdentifier:
			if e.Name != "" {
				e.Values = append(e.Values, c.Tok.String())
				continue
			}
			e.Name = c.Tok.String()
		case RuleEnumValue:
			e.Values = append(e.Values, c.Tok.String())
		default:
			return nil, invalid(c, "enum_rule")
		}
	}
	if e.Name == "" {
		return nil, fmt.Errorf("%w: enum without name", ErrInvalidStructure)
	}
	e.Comment = w.comment(comments)
	return e, nil
}

func (w *walker) annotation(t *Tree) (*ir.Annotation, error) {
	if len(t.Children) == 0 || t.Children[0].Rule != RuleIdentifier {
		return nil, fmt.Errorf("%w: annotation without name", ErrInvalidStructure)
	}
	a := ir.NewAnnotation(t.Children[0].Tok.String())
	for _, c := range t.Children[1:] {
		if c.Rule != RuleParam || len(c.Children) == 0 {
			return nil, invalid(c, "annotation")
		}
		key := ir.ValueKey
		lit := c.Children[0]
		if lit.Rule == RuleIdentifier {
			if len(c.Children) != 2 {
				return nil, invalid(lit, "param")
			}
			key = lit.Tok.String()
			lit = c.Children[1]
		}
		v, err := literal(lit)
		if err != nil {
			return nil, err
		}
		a.Params = append(a.Params, ir.Param{Key: key, Value: v})
	}
	return a, nil
}

func literal(t *Tree) (ir.Value, error) {
	switch t.Rule {
	case RuleString:
		return ir.FromString(t.Tok.String()), nil
	case RuleNumber:
		i, err := strconv.ParseInt(string(t.Tok.Bytes), 10, 64)
		if err != nil {
			return ir.Value{}, fmt.Errorf("%w: integer %s at %s: %w", ErrCustom, t.Tok.Bytes, t.Tok.Pos, err)
		}
		return ir.FromInt(i), nil
	case RuleBoolean:
		return ir.FromBool(string(t.Tok.Bytes) == "true"), nil
	case RuleBare:
		return ir.FromString(string(t.Tok.Bytes)), nil
	}
	return ir.Value{}, invalid(t, "param")
}

func (w *walker) comment(lines []string) string {
	if !w.opts.comments {
		return ""
	}
	return strings.Join(lines, "\n")
}
