// Package token tokenizes Schemata source text.
//
// # Usage
//
//	toks, err := token.Tokenize(nil, []byte(`namespace example.com { enum E { A B } }`))
//	if err != nil {
//	    return err
//	}
//	for i := range toks {
//	    fmt.Println(toks[i].Info())
//	}
//
// Identifiers are deliberately permissive so that namespace URIs
// (http://example.com/ns), qualified type names (xs:string), generic type
// names (list<string>) and nullable types (int?) each lex as a single token.
//
// # Related Packages
//
//   - github.com/signadot/schemata/parse - Parse tokens into a document model
package token
