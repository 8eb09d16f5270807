// Package schemata translates schema definitions between XML Schema and
// the Schemata interface definition language.
//
// # Usage
//
//	// XML Schema to Schemata
//	err := schemata.XSDToSchemata(xsdReader, os.Stdout)
//
//	// Schemata to XML Schema
//	err := schemata.SchemataToXSD(src, os.Stdout, "http://example.com")
//
// Each conversion reads its input into a fresh document model and renders
// it; nothing is shared between calls, so conversions may run
// concurrently.
//
// # Related Packages
//
//   - github.com/signadot/schemata/xsd - XML Schema model and reader
//   - github.com/signadot/schemata/parse - Schemata reader
//   - github.com/signadot/schemata/mapping - Dialect mapping
//   - github.com/signadot/schemata/encode - Writers for both dialects
package schemata
