// Package encode writes an ir.File as Schemata or XML Schema text.
//
// # Usage
//
//	// Schemata
//	err := encode.Encode(f, w)
//
//	// XML Schema bound to a target namespace
//	err := encode.Encode(f, w,
//	    encode.EncodeFormat(format.XSDFormat),
//	    encode.TargetNamespace("http://example.com"))
//
//	// Colored Schemata for a terminal
//	err := encode.Encode(f, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/schemata/ir - Document model
//   - github.com/signadot/schemata/parse - Parse Schemata text
//   - github.com/signadot/schemata/mapping - Type and annotation mapping
package encode
