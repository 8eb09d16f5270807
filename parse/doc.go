// Package parse parses Schemata text into an ir.File.
//
// # Usage
//
//	f, err := parse.Parse(data, parse.ParseFilename("person.schemata"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	f, err := parse.ParseString(`namespace example.com { enum Gender { Male Female } }`)
//
// Parsing runs in two steps: the grammar builds a Tree of rule nodes over
// the token stream, and the tree is then walked into the document model.
// Grammar mismatches are reported as *SyntaxError.
//
// # Related Packages
//
//   - github.com/signadot/schemata/ir - Document model
//   - github.com/signadot/schemata/token - Tokenization
//   - github.com/signadot/schemata/encode - Encode a File back to text
package parse
