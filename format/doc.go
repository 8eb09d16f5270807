// Package format names the two schema dialects.
//
// # Usage
//
//	f, err := format.ParseFormat("xsd")
//
//	// From a file name
//	f, ok := format.FromPath("person.schemata")
//
// # Related Packages
//
//   - github.com/signadot/schemata/encode - Encode a document in a format
package format
