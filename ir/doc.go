// Package ir provides the document model for Schemata files.
//
// # Overview
//
// A Schemata file is a list of namespaces, each holding record types
// (Schema) and enumerations (Enum).  A Schema is an ordered list of Fields;
// a Field either names a type or carries an anonymous nested record type
// (Inline).  Schemas, fields and enums may be annotated:
//
//	@mixed(true)
//	schema Person {
//	    name string @maxOccurs(10)
//	    address? {
//	        street string
//	    }
//	}
//
// Annotation parameters keep the typed variant they were written with; see
// Value.
//
// The model is built once by a reader (parse.Parse, mapping.ToSchemata),
// handed to a writer (encode.Encode) and not modified afterwards.
//
// # Related Packages
//
//   - github.com/signadot/schemata/parse - Parse Schemata text into a File
//   - github.com/signadot/schemata/encode - Encode a File as Schemata or XSD
//   - github.com/signadot/schemata/mapping - Build a File from an XSD schema
package ir
