// Package mapping reconciles XML Schema and Schemata semantics.
//
// Nullability and occurrence constraints, primitive type names,
// enumerations and complex type metadata are translated here so that the
// writers in package encode only render.  The translation is not
// symmetric: Schemata built from XML Schema carries both @minOccurs and
// @maxOccurs, while only @maxOccurs is read back when generating XML
// Schema, and XML Schema type names are carried into Schemata verbatim.
package mapping
