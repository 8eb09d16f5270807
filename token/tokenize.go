package token

import (
	"bytes"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tokenize appends the tokens of src to dst.  Whitespace is dropped,
// comments are kept as TComment tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
			continue
		case '@', '{', '}', '(', ')', ',', '=', ':':
			dst = append(dst, Token{Type: punctType[c], Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		case '"':
			j, err := scanString(src, i, doc)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(i), Bytes: src[i:j]})
			i = j
			continue
		case '/':
			if i+1 < n && (src[i+1] == '/' || src[i+1] == '*') {
				j, err := scanComment(src, i, doc)
				if err != nil {
					return nil, err
				}
				dst = append(dst, Token{Type: TComment, Pos: doc.Pos(i), Bytes: src[i:j]})
				i = j
				continue
			}
		}
		if j, ok := scanInteger(src, i); ok {
			dst = append(dst, Token{Type: TInteger, Pos: doc.Pos(i), Bytes: src[i:j]})
			i = j
			continue
		}
		if !identStart(src, i) {
			if c >= utf8.RuneSelf {
				if r, _ := utf8.DecodeRune(src[i:]); r == utf8.RuneError {
					return nil, NewTokenizeErr(ErrBadUTF8, doc.Pos(i))
				}
			}
			return nil, NewTokenizeErr(ErrUnexpected, doc.Pos(i))
		}
		j, err := scanIdent(src, i, doc)
		if err != nil {
			return nil, err
		}
		dst = append(dst, Token{Type: TIdent, Pos: doc.Pos(i), Bytes: src[i:j]})
		i = j
	}
	return dst, nil
}

var punctType = map[byte]TokenType{
	'@': TAt,
	'{': TLCurl,
	'}': TRCurl,
	'(': TLParen,
	')': TRParen,
	',': TComma,
	'=': TEquals,
	':': TColon,
}

func scanString(src []byte, i int, doc *PosDoc) (int, error) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case '\n':
			return 0, NewTokenizeErr(ErrUnterminated, doc.Pos(i))
		case '"':
			j++
			if _, err := strconv.Unquote(string(src[i:j])); err != nil {
				return 0, NewTokenizeErr(ErrBadEscape, doc.Pos(i))
			}
			return j, nil
		}
		j++
	}
	return 0, NewTokenizeErr(ErrUnterminated, doc.Pos(i))
}

func scanComment(src []byte, i int, doc *PosDoc) (int, error) {
	if src[i+1] == '/' {
		j := bytes.IndexByte(src[i:], '\n')
		if j == -1 {
			return len(src), nil
		}
		return i + j, nil
	}
	j := bytes.Index(src[i+2:], []byte("*/"))
	if j == -1 {
		return 0, NewTokenizeErr(ErrUnterminated, doc.Pos(i))
	}
	return i + 2 + j + 2, nil
}

func scanInteger(src []byte, i int) (int, bool) {
	j := i
	if src[j] == '-' {
		j++
	}
	start := j
	for j < len(src) && src[j] >= '0' && src[j] <= '9' {
		j++
	}
	if j == start {
		return 0, false
	}
	if j < len(src) && identByte(src, j) {
		return 0, false
	}
	return j, true
}

func identStart(src []byte, i int) bool {
	c := src[i]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.':
		return true
	case c >= utf8.RuneSelf:
		r, _ := utf8.DecodeRune(src[i:])
		return unicode.IsLetter(r)
	}
	return false
}

func identByte(src []byte, i int) bool {
	c := src[i]
	switch c {
	case '/':
		if i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*') {
			// a comment, unless this is the "//" of a URI scheme
			return i > 0 && src[i-1] == ':'
		}
		return true
	case ':':
		if i+1 >= len(src) {
			return false
		}
		switch src[i+1] {
		case ' ', '\t', '\r', '\n', '{', '}', '(', ')', ',', '=', '@', '"':
			return false
		}
		return true
	case '%', '~', '+', '#', '&':
		return true
	}
	return identStart(src, i)
}

func scanIdent(src []byte, i int, doc *PosDoc) (int, error) {
	j := i
	for j < len(src) {
		switch {
		case src[j] == '<':
			k, err := scanGeneric(src, j, doc)
			if err != nil {
				return 0, err
			}
			j = k
			continue
		case src[j] == '?':
			return j + 1, nil
		case src[j] >= utf8.RuneSelf:
			r, sz := utf8.DecodeRune(src[j:])
			if r == utf8.RuneError {
				return 0, NewTokenizeErr(ErrBadUTF8, doc.Pos(j))
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return j, nil
			}
			j += sz
			continue
		case identByte(src, j):
			j++
			continue
		}
		break
	}
	return j, nil
}

// scanGeneric consumes a balanced <...> suffix such as the one in
// map<string, list<int>>.
func scanGeneric(src []byte, i int, doc *PosDoc) (int, error) {
	depth := 0
	for j := i; j < len(src); j++ {
		switch src[j] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return j + 1, nil
			}
		case '\n', '{', '}', '@':
			return 0, NewTokenizeErr(ErrUnterminated, doc.Pos(i))
		}
	}
	return 0, NewTokenizeErr(ErrUnterminated, doc.Pos(i))
}

func commentText(b []byte) string {
	if bytes.HasPrefix(b, []byte("/*")) {
		b = bytes.TrimSuffix(b[2:], []byte("*/"))
	} else {
		b = bytes.TrimPrefix(b, []byte("//"))
	}
	return string(bytes.TrimSpace(b))
}
