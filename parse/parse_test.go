package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/schemata/ir"
	"github.com/signadot/schemata/token"
)

func mustParse(t *testing.T, in string, opts ...ParseOption) *ir.File {
	t.Helper()
	f, err := ParseString(in, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestParseSimpleSchema(t *testing.T) {
	f := mustParse(t, `
namespace example.com {
    schema Person {
        name string
        age int @optional
    }
}`)
	want := &ir.File{Namespaces: []*ir.Namespace{{
		Name: "example.com",
		Schemas: []*ir.Schema{{
			Name: "Person",
			Fields: []*ir.Field{
				{Name: "name", Type: "string"},
				{Name: "age", Type: "int", Annotations: []*ir.Annotation{{Name: "optional"}}},
			},
		}},
	}}}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Error(diff)
	}
}

func TestParseNullable(t *testing.T) {
	f := mustParse(t, `
schema TestNullable {
    required_field: String
    nullable_field: Int?
}`)
	ns := f.Namespaces[0]
	if ns.Name != DefaultNamespace {
		t.Errorf("namespace %q", ns.Name)
	}
	want := []*ir.Field{
		{Name: "required_field", Type: "String"},
		{Name: "nullable_field", Type: "Int", Nullable: true},
	}
	if diff := cmp.Diff(want, ns.Schemas[0].Fields); diff != "" {
		t.Error(diff)
	}
}

func TestParseAnnotated(t *testing.T) {
	f := mustParse(t, `
namespace example.com {
    @version("1.0")
    @description("User profile schema")
    schema User {
        @required
        id string

        @validate("email")
        email string
        @attribute(name="id", use=required, n=-3, ok=true)
    }
}`)
	s := f.Namespaces[0].Schemas[0]
	if s.Name != "User" || len(s.Annotations) != 2 || len(s.Fields) != 2 {
		t.Fatalf("got %+v", s)
	}
	v, _ := s.Annotations[0].Get(ir.ValueKey)
	if v != ir.FromString("1.0") {
		t.Errorf("version %+v", v)
	}
	if s.Fields[0].Annotations[0].Name != "required" {
		t.Errorf("id annotations %+v", s.Fields[0].Annotations)
	}
	want := []*ir.Annotation{
		{Name: "validate", Params: []ir.Param{{Key: ir.ValueKey, Value: ir.FromString("email")}}},
		{Name: "attribute", Params: []ir.Param{
			{Key: "name", Value: ir.FromString("id")},
			{Key: "use", Value: ir.FromString("required")},
			{Key: "n", Value: ir.FromInt(-3)},
			{Key: "ok", Value: ir.FromBool(true)},
		}},
	}
	if diff := cmp.Diff(want, s.Fields[1].Annotations); diff != "" {
		t.Error(diff)
	}
}

func TestParseComplexSchema(t *testing.T) {
	f := mustParse(t, `
namespace example.com {
    schema Product {
        id string
        name string
        price float
        tags list<string>

        @nested
        details {
            manufacturer string
            year int
        }
    }

    enum Category {
        ELECTRONICS,
        BOOKS,
        CLOTHING
    }
}`)
	ns := f.Namespaces[0]
	if len(ns.Schemas) != 1 || len(ns.Enums) != 1 {
		t.Fatalf("got %d schemas %d enums", len(ns.Schemas), len(ns.Enums))
	}
	s := ns.Schemas[0]
	if len(s.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(s.Fields))
	}
	if s.Fields[3].Type != "list<string>" {
		t.Errorf("tags type %q", s.Fields[3].Type)
	}
	details := s.Fields[4]
	if details.Inline == nil || details.Inline.Name != ir.InlineSchemaName {
		t.Fatalf("details %+v", details)
	}
	if details.EffectiveType() != "" || len(details.Inline.Fields) != 2 {
		t.Errorf("details inline %+v", details.Inline)
	}
	if details.Annotations[0].Name != "nested" {
		t.Errorf("details annotations %+v", details.Annotations)
	}
	if diff := cmp.Diff([]string{"ELECTRONICS", "BOOKS", "CLOTHING"}, ns.Enums[0].Values); diff != "" {
		t.Error(diff)
	}
}

func TestParseSingleLine(t *testing.T) {
	f := mustParse(t, `namespace http://example.com
schema Person { name string  age int @maxOccurs(10) }
enum Gender { Male Female }`)
	ns := f.Namespaces[0]
	if ns.Name != "http://example.com" {
		t.Errorf("namespace %q", ns.Name)
	}
	want := []*ir.Field{
		{Name: "name", Type: "string"},
		{Name: "age", Type: "int", Annotations: []*ir.Annotation{
			ir.NewAnnotation("maxOccurs", ir.Param{Key: ir.ValueKey, Value: ir.FromInt(10)}),
		}},
	}
	if diff := cmp.Diff(want, ns.Schemas[0].Fields); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"Male", "Female"}, ns.Enums[0].Values); diff != "" {
		t.Error(diff)
	}
}

func TestParseComments(t *testing.T) {
	in := `// file comment
namespace a {
    // A person.
    schema Person {
        name string // full name
        // years
        age int
        address? { street string }
    }
}
namespace b {
    enum E { X, Y, }
}`
	f := mustParse(t, in)
	if len(f.Namespaces) != 2 {
		t.Fatalf("expected 2 namespaces, got %d", len(f.Namespaces))
	}
	s := f.Namespaces[0].Schemas[0]
	if s.Comment != "A person." {
		t.Errorf("schema comment %q", s.Comment)
	}
	if s.Fields[0].Comment != "full name" || s.Fields[1].Comment != "years" {
		t.Errorf("field comments %q %q", s.Fields[0].Comment, s.Fields[1].Comment)
	}
	addr := s.Fields[2]
	if addr.Name != "address" || !addr.Nullable || addr.Inline == nil {
		t.Errorf("address %+v", addr)
	}
	if diff := cmp.Diff([]string{"X", "Y"}, f.Namespaces[1].Enums[0].Values); diff != "" {
		t.Error(diff)
	}

	f = mustParse(t, in, ParseComments(false))
	if c := f.Namespaces[0].Schemas[0].Fields[0].Comment; c != "" {
		t.Errorf("comments not dropped: %q", c)
	}
}

func TestTrailingAnnotationLine(t *testing.T) {
	f := mustParse(t, `namespace a {
    schema S {
        a int
        @maxOccurs(2)
        b int
        c int
        @maxOccurs(unbounded)
    }
}`)
	fs := f.Namespaces[0].Schemas[0].Fields
	if len(fs[0].Annotations) != 0 {
		t.Errorf("annotation on next line bound to previous field")
	}
	if len(fs[1].Annotations) != 1 {
		t.Errorf("leading annotation not bound")
	}
	if len(fs[2].Annotations) != 1 {
		t.Fatalf("annotation before '}' not bound to last field")
	}
	v, _ := fs[2].Annotations[0].Get(ir.ValueKey)
	if v != ir.FromString("unbounded") {
		t.Errorf("bare literal %+v", v)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: `namespace a { schema S { name } }`, err: ErrSyntax},
		{in: `namespace a { schema S { name string }`, err: ErrSyntax},
		{in: `namespace a { record S {} }`, err: ErrSyntax},
		{in: `namespace a { enum E { A,, B } }`, err: ErrSyntax},
		{in: `namespace a { schema S { x int @a(=) } }`, err: ErrSyntax},
		{in: `namespace a { schema S { x int @a("open) } }`, err: token.ErrUnterminated},
		{in: `namespace a { schema S { x int @m(99999999999999999999) } }`, err: ErrCustom},
		{in: `namespace a { schema S { x int @x(k=1.5) } }`, err: ErrSyntax},
		{in: `namespace a { schema S { x int @x(-2e3) } }`, err: ErrSyntax},
	}
	for _, test := range tests {
		_, err := ParseString(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", test.in, test.err, err)
		}
	}
}

func TestParseFilename(t *testing.T) {
	_, err := ParseString("namespace a {\n schema {", ParseFilename("x.schemata"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Pos.Line() != 1 {
		t.Errorf("line %d", se.Pos.Line())
	}
	if !strings.HasPrefix(err.Error(), "x.schemata: ") {
		t.Errorf("error %q", err)
	}
}

func TestWalkInvalidStructure(t *testing.T) {
	w := &walker{opts: &parseOpts{comments: true}}
	_, err := w.file(&Tree{Rule: RuleFile, Children: []*Tree{{Rule: RuleField}}})
	if !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
	_, err = w.schema(&Tree{Rule: RuleSchema})
	if !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure, got %v", err)
	}
}

func TestFieldLeadingAndTrailingComment(t *testing.T) {
	f := mustParse(t, `namespace a {
    schema S {
        // leading
        a int // trailing
        // only leading
        b int
    }
}`)
	fs := f.Namespaces[0].Schemas[0].Fields
	if fs[0].Comment != "trailing" {
		t.Errorf("trailing comment does not win: %q", fs[0].Comment)
	}
	if fs[1].Comment != "only leading" {
		t.Errorf("leading comment %q", fs[1].Comment)
	}
}
