package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/signadot/schemata/ir"
	"github.com/signadot/schemata/token"
)

const schemataText = `
{{- define "file"}}{{range $i, $ns := .Namespaces}}{{if $i}}
{{end}}{{kw "namespace"}} {{nsname $ns.Name}} {
{{range $j, $it := items $ns}}{{if $j}}
{{end}}{{if $it.Schema}}{{template "schema" $it.Schema}}{{else}}{{template "enum" $it.Enum}}{{end}}{{end}}{{sep "}"}}
{{end}}{{end}}

{{- define "schema"}}{{comment 1 .Comment}}{{annotations 1 .Annotations}}{{pad 1}}{{kw "schema"}} {{name .Name}} {
{{template "fields" (nest 2 .Fields)}}{{pad 1}}{{sep "}"}}
{{end}}

{{- define "fields"}}{{$d := .Depth}}{{range .Fields}}{{leading $d .}}{{pad $d}}{{field .}}{{if .Inline}} {
{{template "fields" (nest (inc $d) .Inline.Fields)}}{{pad $d}}{{sep "}"}}{{end}}{{trailing .}}
{{end}}{{end}}

{{- define "enum"}}{{comment 1 .Comment}}{{annotations 1 .Annotations}}{{pad 1}}{{kw "enum"}} {{name .Name}} {
{{range .Values}}{{pad 2}}{{value .}}
{{end}}{{pad 1}}{{sep "}"}}
{{end}}`

// schemataTmpl holds placeholder funcs; each encoding runs a clone with
// funcs bound to its EncState.
var schemataTmpl = template.Must(template.New("schemata").
	Funcs((&EncState{}).funcs()).
	Parse(schemataText))

type item struct {
	Schema *ir.Schema
	Enum   *ir.Enum
}

type nested struct {
	Depth  int
	Fields []*ir.Field
}

func encodeSchemata(f *ir.File, w io.Writer, es *EncState) error {
	t, err := schemataTmpl.Clone()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	t.Funcs(es.funcs())
	if err := t.ExecuteTemplate(w, "file", f); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func (es *EncState) funcs() template.FuncMap {
	return template.FuncMap{
		"kw":          func(s string) string { return es.color(KeywordColor, s) },
		"sep":         func(s string) string { return es.color(SepColor, s) },
		"name":        func(s string) string { return es.color(NameColor, s) },
		"nsname":      es.nsName,
		"pad":         es.pad,
		"inc":         func(d int) int { return d + 1 },
		"nest":        func(d int, fs []*ir.Field) nested { return nested{Depth: d, Fields: fs} },
		"items":       items,
		"comment":     es.comment,
		"annotations": es.annotations,
		"leading":     es.leading,
		"trailing":    es.trailing,
		"field":       es.field,
		"value":       func(v string) string { return es.color(ValueColor, word(v)) },
	}
}

func items(ns *ir.Namespace) []item {
	res := make([]item, 0, len(ns.Schemas)+len(ns.Enums))
	for _, s := range ns.Schemas {
		res = append(res, item{Schema: s})
	}
	for _, e := range ns.Enums {
		res = append(res, item{Enum: e})
	}
	return res
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

func (es *EncState) nsName(name string) string {
	return es.color(NameColor, word(name))
}

// comment renders each line of c as a comment line.
func (es *EncState) comment(depth int, c string) string {
	if !es.comments || c == "" {
		return ""
	}
	b := &strings.Builder{}
	for _, ln := range strings.Split(c, "\n") {
		b.WriteString(es.pad(depth))
		b.WriteString(es.color(CommentColor, strings.TrimSpace("// "+ln)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (es *EncState) annotations(depth int, anns []*ir.Annotation) string {
	b := &strings.Builder{}
	for _, a := range anns {
		b.WriteString(es.pad(depth))
		b.WriteString(es.annotation(a))
		b.WriteByte('\n')
	}
	return b.String()
}

// leading renders a multi-line field comment above the field.
func (es *EncState) leading(depth int, f *ir.Field) string {
	if !strings.Contains(f.Comment, "\n") {
		return ""
	}
	return es.comment(depth, f.Comment)
}

func (es *EncState) trailing(f *ir.Field) string {
	if !es.comments || f.Comment == "" || strings.Contains(f.Comment, "\n") {
		return ""
	}
	return " " + es.color(CommentColor, "// "+f.Comment)
}

func (es *EncState) field(f *ir.Field) string {
	b := &strings.Builder{}
	name := f.Name
	if f.Inline != nil && f.Nullable {
		name += "?"
	}
	b.WriteString(es.color(FieldColor, name))
	if t := f.EffectiveType(); t != "" {
		if f.Nullable {
			t += "?"
		}
		b.WriteByte(' ')
		b.WriteString(es.color(TypeColor, t))
	}
	for _, a := range f.Annotations {
		b.WriteByte(' ')
		b.WriteString(es.annotation(a))
	}
	return b.String()
}

func (es *EncState) annotation(a *ir.Annotation) string {
	res := es.color(AnnotationColor, "@"+a.Name)
	if len(a.Params) == 0 {
		return res
	}
	if a.Positional() {
		return res + "(" + es.literal(a.Params[0].Value, true) + ")"
	}
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = p.Key + "=" + es.literal(p.Value, false)
	}
	return res + "(" + strings.Join(parts, ", ") + ")"
}

// literal renders v.  A string is left unquoted only when it stands alone
// and reads back as a single word.
func (es *EncState) literal(v ir.Value, sole bool) string {
	s := v.Text()
	if v.Type == ir.StringValue && !(sole && bare(s)) {
		s = strconv.Quote(s)
	}
	return es.color(ValueColor, s)
}

// bare reports whether s tokenizes as one identifier or integer which
// does not read back as a boolean.
func bare(s string) bool {
	if s == "true" || s == "false" {
		return false
	}
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil || len(toks) != 1 {
		return false
	}
	tok := toks[0]
	if tok.Type != token.TIdent && tok.Type != token.TInteger {
		return false
	}
	if tok.NumberLike() {
		return false
	}
	return len(tok.Bytes) == len(s) && !strings.HasSuffix(s, "?")
}

// word quotes s unless it reads back as the same single token.
func word(s string) string {
	if bare(s) {
		return s
	}
	return strconv.Quote(s)
}
