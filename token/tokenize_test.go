package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tts := []tokTest{
		{
			in:    `namespace http://example.com`,
			types: []TokenType{TIdent, TIdent},
			texts: []string{"namespace", "http://example.com"},
		},
		{
			in:    `name string  age int? @maxOccurs(10)`,
			types: []TokenType{TIdent, TIdent, TIdent, TIdent, TAt, TIdent, TLParen, TInteger, TRParen},
			texts: []string{"name", "string", "age", "int?", "@", "maxOccurs", "(", "10", ")"},
		},
		{
			in:    `required_field: String`,
			types: []TokenType{TIdent, TColon, TIdent},
			texts: []string{"required_field", ":", "String"},
		},
		{
			in:    `tags list<string> ids map<string, list<int>>?`,
			types: []TokenType{TIdent, TIdent, TIdent, TIdent},
			texts: []string{"tags", "list<string>", "ids", "map<string, list<int>>?"},
		},
		{
			in:    `f xs:string // trailing`,
			types: []TokenType{TIdent, TIdent, TComment},
			texts: []string{"f", "xs:string", "trailing"},
		},
		{
			in:    `@attribute(name="a \"b\"", use=required, n=-3, ok=true)`,
			types: []TokenType{TAt, TIdent, TLParen, TIdent, TEquals, TString, TComma, TIdent, TEquals, TIdent, TComma, TIdent, TEquals, TInteger, TComma, TIdent, TEquals, TIdent, TRParen},
			texts: []string{"@", "attribute", "(", "name", "=", `a "b"`, ",", "use", "=", "required", ",", "n", "=", "-3", ",", "ok", "=", "true", ")"},
		},
		{
			in:    "/* block\n comment */ enum E { A, B }",
			types: []TokenType{TComment, TIdent, TIdent, TLCurl, TIdent, TComma, TIdent, TRCurl},
			texts: []string{"block\n comment", "enum", "E", "{", "A", ",", "B", "}"},
		},
		{
			in:    `v 1.0 1st 42`,
			types: []TokenType{TIdent, TIdent, TIdent, TInteger},
			texts: []string{"v", "1.0", "1st", "42"},
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		types := make([]TokenType, len(toks))
		texts := make([]string, len(toks))
		for i := range toks {
			types[i] = toks[i].Type
			texts[i] = toks[i].String()
		}
		if diff := cmp.Diff(tt.types, types); diff != "" {
			t.Errorf("%q types (-want +got):\n%s", tt.in, diff)
		}
		if diff := cmp.Diff(tt.texts, texts); diff != "" {
			t.Errorf("%q texts (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tts := []struct {
		in  string
		err error
	}{
		{in: `"abc`, err: ErrUnterminated},
		{in: "\"ab\ncd\"", err: ErrUnterminated},
		{in: `/* open`, err: ErrUnterminated},
		{in: `list<string`, err: ErrUnterminated},
		{in: `a ; b`, err: ErrUnexpected},
		{in: "a \xff", err: ErrBadUTF8},
	}
	for _, tt := range tts {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v got %v", tt.in, tt.err, err)
		}
		var tErr *TokenizeErr
		if err != nil && !errors.As(err, &tErr) {
			t.Errorf("%q: expected *TokenizeErr got %T", tt.in, err)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a\n  b\nc"))
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 0}, {1, 2}, {2, 0}}
	for i := range toks {
		l, c := toks[i].Pos.LineCol()
		if l != want[i][0] || c != want[i][1] {
			t.Errorf("token %d: got line=%d col=%d want %v", i, l, c, want[i])
		}
	}
}

func TestNumberLike(t *testing.T) {
	tests := map[string]bool{
		"1.5":        true,
		"-2e3":       true,
		"2001-01-01": true,
		"unbounded":  false,
		"-":          false,
		"x1":         false,
		"42":         false,
	}
	for in, want := range tests {
		toks, err := Tokenize(nil, []byte(in))
		if err != nil || len(toks) != 1 {
			t.Fatalf("%q: %v %v", in, toks, err)
		}
		if got := toks[0].NumberLike(); got != want {
			t.Errorf("%q: got %t", in, got)
		}
	}
}
