package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/schemata/debug"
	"github.com/signadot/schemata/token"
)

type Rule int

const (
	RuleFile Rule = iota
	RuleNamespace
	RuleSchema
	RuleField
	RuleType
	RuleInlineSchema
	RuleEnum
	RuleEnumValue
	RuleAnnotation
	RuleParam
	RuleIdentifier
	RuleString
	RuleNumber
	RuleBoolean
	RuleBare
	RuleComment
)

func (r Rule) String() string {
	return map[Rule]string{
		RuleFile:         "file",
		RuleNamespace:    "namespace_declaration",
		RuleSchema:       "schema",
		RuleField:        "field",
		RuleType:         "type",
		RuleInlineSchema: "inline_schema",
		RuleEnum:         "enum_rule",
		RuleEnumValue:    "enum_value",
		RuleAnnotation:   "annotation",
		RuleParam:        "param",
		RuleIdentifier:   "identifier",
		RuleString:       "string_literal",
		RuleNumber:       "number_literal",
		RuleBoolean:      "boolean_literal",
		RuleBare:         "bare_literal",
		RuleComment:      "comment",
	}[r]
}

// Tree is a node of the parse tree.  Tok is the token a leaf was built
// from, or the first token of an inner node.
type Tree struct {
	Rule     Rule
	Tok      *token.Token
	Children []*Tree
}

func (t *Tree) String() string {
	b := &strings.Builder{}
	t.write(b, 0)
	return b.String()
}

func (t *Tree) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(t.Rule.String())
	if len(t.Children) == 0 && t.Tok != nil {
		fmt.Fprintf(b, " %q", t.Tok.Bytes)
	}
	b.WriteByte('\n')
	for _, c := range t.Children {
		c.write(b, depth+1)
	}
}

func leaf(r Rule, tok *token.Token) *Tree {
	return &Tree{Rule: r, Tok: tok}
}

type grammar struct {
	toks []token.Token
	i    int
	doc  *token.PosDoc
	end  int
}

func newGrammar(toks []token.Token, d []byte) *grammar {
	g := &grammar{toks: toks, end: len(d)}
	if len(toks) > 0 {
		g.doc = toks[0].Pos.D
	} else {
		g.doc = token.NewPosDoc(d)
	}
	return g
}

func (g *grammar) peek() *token.Token {
	if g.i < len(g.toks) {
		return &g.toks[g.i]
	}
	return nil
}

func (g *grammar) peekType(tt token.TokenType) bool {
	tok := g.peek()
	return tok != nil && tok.Type == tt
}

func (g *grammar) peekKeyword(kw string) bool {
	tok := g.peek()
	return tok != nil && tok.Type == token.TIdent && string(tok.Bytes) == kw
}

func (g *grammar) advance() *token.Token {
	tok := &g.toks[g.i]
	g.i++
	return tok
}

func (g *grammar) expect(tt token.TokenType, what string) (*token.Token, error) {
	if !g.peekType(tt) {
		return nil, g.errorf("expected %s", what)
	}
	return g.advance(), nil
}

func (g *grammar) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	tok := g.peek()
	if tok == nil {
		return &SyntaxError{Pos: *g.doc.Pos(g.end), Msg: msg + ", found end of input"}
	}
	return &SyntaxError{Pos: *tok.Pos, Msg: fmt.Sprintf("%s, found %q", msg, tok.Bytes)}
}

func (g *grammar) trace(r Rule) {
	if !debug.Parse() {
		return
	}
	if tok := g.peek(); tok != nil {
		debug.Logf("parse: %s at %s", r, tok.Info())
		return
	}
	debug.Logf("parse: %s at end of input", r)
}

func (g *grammar) comments() []*Tree {
	var res []*Tree
	for g.peekType(token.TComment) {
		res = append(res, leaf(RuleComment, g.advance()))
	}
	return res
}

func sameLine(next, last *token.Token) bool {
	return next.Pos.Line() == last.End().Line()
}

// file := (comment | namespace_declaration | item)* EOF
//
// Items before the first namespace declaration are gathered into a
// namespace without a name.
func (g *grammar) file() (*Tree, error) {
	g.trace(RuleFile)
	t := &Tree{Rule: RuleFile}
	var implicit *Tree
	for {
		cs := g.comments()
		tok := g.peek()
		if tok == nil {
			t.Children = append(t.Children, cs...)
			return t, nil
		}
		if g.peekKeyword("namespace") {
			t.Children = append(t.Children, cs...)
			ns, err := g.namespace()
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, ns)
			continue
		}
		if implicit == nil {
			implicit = &Tree{Rule: RuleNamespace, Tok: tok}
			t.Children = append(t.Children, implicit)
		}
		it, err := g.item(cs)
		if err != nil {
			return nil, err
		}
		implicit.Children = append(implicit.Children, it)
	}
}

// namespace_declaration := "namespace" (identifier | string) ("{" item* "}" | item*)
func (g *grammar) namespace() (*Tree, error) {
	g.trace(RuleNamespace)
	t := &Tree{Rule: RuleNamespace, Tok: g.advance()}
	switch {
	case g.peekType(token.TIdent):
		t.Children = append(t.Children, leaf(RuleIdentifier, g.advance()))
	case g.peekType(token.TString):
		t.Children = append(t.Children, leaf(RuleString, g.advance()))
	default:
		return nil, g.errorf("expected namespace name")
	}
	if g.peekType(token.TLCurl) {
		g.advance()
		for {
			cs := g.comments()
			if g.peekType(token.TRCurl) {
				g.advance()
				return t, nil
			}
			if g.peek() == nil {
				return nil, g.errorf("expected '}' closing namespace")
			}
			it, err := g.item(cs)
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, it)
		}
	}
	for {
		mark := g.i
		cs := g.comments()
		if g.peek() == nil || g.peekKeyword("namespace") {
			g.i = mark
			return t, nil
		}
		it, err := g.item(cs)
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, it)
	}
}

// item := comment* annotation* (schema | enum_rule)
func (g *grammar) item(cs []*Tree) (*Tree, error) {
	var anns []*Tree
	for g.peekType(token.TAt) {
		a, _, err := g.annotation()
		if err != nil {
			return nil, err
		}
		anns = append(anns, a)
		cs = append(cs, g.comments()...)
	}
	lead := append(cs, anns...)
	switch {
	case g.peekKeyword("schema"):
		return g.schema(lead)
	case g.peekKeyword("enum"):
		return g.enum(lead)
	default:
		return nil, g.errorf("expected schema or enum")
	}
}

// schema := comment* annotation* "schema" identifier "{" field* "}"
func (g *grammar) schema(lead []*Tree) (*Tree, error) {
	g.trace(RuleSchema)
	t := &Tree{Rule: RuleSchema, Tok: g.advance(), Children: lead}
	name, err := g.expect(token.TIdent, "schema name")
	if err != nil {
		return nil, err
	}
	t.Children = append(t.Children, leaf(RuleIdentifier, name))
	if _, err := g.expect(token.TLCurl, "'{'"); err != nil {
		return nil, err
	}
	if _, err := g.fields(t); err != nil {
		return nil, err
	}
	return t, nil
}

// fields parses fields into parent up to and including the closing '}',
// which it returns.  Annotations directly before the '}' belong to the
// last field.
func (g *grammar) fields(parent *Tree) (*token.Token, error) {
	var last *Tree
	for {
		lead := g.comments()
		var anns []*Tree
		for g.peekType(token.TAt) {
			a, _, err := g.annotation()
			if err != nil {
				return nil, err
			}
			anns = append(anns, a)
			lead = append(lead, g.comments()...)
		}
		if g.peekType(token.TRCurl) {
			if len(anns) != 0 {
				if last == nil {
					return nil, g.errorf("expected field after annotation")
				}
				last.Children = append(last.Children, anns...)
			}
			return g.advance(), nil
		}
		if g.peek() == nil {
			return nil, g.errorf("expected '}'")
		}
		f, err := g.field(lead, anns)
		if err != nil {
			return nil, err
		}
		parent.Children = append(parent.Children, f)
		last = f
	}
}

// field := annotation* identifier ":"? type? annotation* inline_schema? comment?
//
// Trailing annotations and the comment must start on the line where the
// field so far ends.  Leading comments are kept as the field comment when
// there is no trailing one.
func (g *grammar) field(lead, anns []*Tree) (*Tree, error) {
	g.trace(RuleField)
	name, err := g.expect(token.TIdent, "field name")
	if err != nil {
		return nil, err
	}
	t := &Tree{Rule: RuleField, Tok: name, Children: anns}
	t.Children = append(t.Children, leaf(RuleIdentifier, name))
	end := name
	if g.peekType(token.TColon) {
		end = g.advance()
	}
	typed := false
	if g.peekType(token.TIdent) {
		end = g.advance()
		t.Children = append(t.Children, leaf(RuleType, end))
		typed = true
	}
	for g.peekType(token.TAt) && sameLine(g.peek(), end) {
		a, aEnd, err := g.annotation()
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, a)
		end = aEnd
	}
	if g.peekType(token.TLCurl) {
		in, inEnd, err := g.inline()
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, in)
		end = inEnd
	} else if !typed {
		return nil, g.errorf("expected type of field %q", name.Bytes)
	}
	if g.peekType(token.TComment) && sameLine(g.peek(), end) {
		t.Children = append(t.Children, leaf(RuleComment, g.advance()))
		return t, nil
	}
	t.Children = append(t.Children, lead...)
	return t, nil
}

// inline_schema := "{" field* "}"
func (g *grammar) inline() (*Tree, *token.Token, error) {
	g.trace(RuleInlineSchema)
	t := &Tree{Rule: RuleInlineSchema, Tok: g.advance()}
	end, err := g.fields(t)
	if err != nil {
		return nil, nil, err
	}
	return t, end, nil
}

// enum_rule := comment* annotation* "enum" identifier "{" (enum_value ","?)* "}"
func (g *grammar) enum(lead []*Tree) (*Tree, error) {
	g.trace(RuleEnum)
	t := &Tree{Rule: RuleEnum, Tok: g.advance(), Children: lead}
	name, err := g.expect(token.TIdent, "enum name")
	if err != nil {
		return nil, err
	}
	t.Children = append(t.Children, leaf(RuleIdentifier, name))
	if _, err := g.expect(token.TLCurl, "'{'"); err != nil {
		return nil, err
	}
	comma := true
	for {
		g.comments()
		tok := g.peek()
		if tok == nil {
			return nil, g.errorf("expected '}' closing enum %q", name.Bytes)
		}
		switch tok.Type {
		case token.TRCurl:
			g.advance()
			return t, nil
		case token.TComma:
			if comma {
				return nil, g.errorf("expected enum value")
			}
			g.advance()
			comma = true
		case token.TIdent, token.TInteger, token.TString:
			t.Children = append(t.Children, leaf(RuleEnumValue, g.advance()))
			comma = false
		default:
			return nil, g.errorf("expected enum value")
		}
	}
}

// annotation := "@" identifier ("(" param ("," param)* ")")?
//
// annotation returns the last token of the annotation.
func (g *grammar) annotation() (*Tree, *token.Token, error) {
	g.trace(RuleAnnotation)
	t := &Tree{Rule: RuleAnnotation, Tok: g.advance()}
	name, err := g.expect(token.TIdent, "annotation name")
	if err != nil {
		return nil, nil, err
	}
	t.Children = append(t.Children, leaf(RuleIdentifier, name))
	if !g.peekType(token.TLParen) {
		return t, name, nil
	}
	g.advance()
	for {
		g.comments()
		p, err := g.param()
		if err != nil {
			return nil, nil, err
		}
		t.Children = append(t.Children, p)
		g.comments()
		switch {
		case g.peekType(token.TComma):
			g.advance()
		case g.peekType(token.TRParen):
			return t, g.advance(), nil
		default:
			return nil, nil, g.errorf("expected ',' or ')'")
		}
	}
}

// param := identifier "=" literal | literal
func (g *grammar) param() (*Tree, error) {
	t := &Tree{Rule: RuleParam, Tok: g.peek()}
	if g.peekType(token.TIdent) && g.i+1 < len(g.toks) && g.toks[g.i+1].Type == token.TEquals {
		t.Children = append(t.Children, leaf(RuleIdentifier, g.advance()))
		g.advance()
	}
	lit, err := g.literal()
	if err != nil {
		return nil, err
	}
	t.Children = append(t.Children, lit)
	return t, nil
}

// literal := string_literal | number_literal | boolean_literal | bare_literal
func (g *grammar) literal() (*Tree, error) {
	tok := g.peek()
	if tok == nil {
		return nil, g.errorf("expected literal")
	}
	switch tok.Type {
	case token.TString:
		return leaf(RuleString, g.advance()), nil
	case token.TInteger:
		return leaf(RuleNumber, g.advance()), nil
	case token.TIdent:
		switch string(tok.Bytes) {
		case "true", "false":
			return leaf(RuleBoolean, g.advance()), nil
		}
		if tok.NumberLike() {
			return nil, g.errorf("expected literal")
		}
		return leaf(RuleBare, g.advance()), nil
	}
	return nil, g.errorf("expected literal")
}
