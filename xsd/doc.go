// Package xsd provides an XML Schema document model and a streaming reader
// for it.
//
// Only the subset of XML Schema needed for record and enumeration types is
// modeled: elements, complex types with a sequence and flat attributes,
// and simple types with a restriction, list or union.  Other markup is
// skipped and reported through the ParseDiagnostics option.
//
// Element kinds and attributes are matched on their local name, so any
// prefix bound to the XML Schema namespace works.
//
//	var diags []xsd.Diagnostic
//	s, err := xsd.Parse(r, xsd.ParseDiagnostics(&diags))
package xsd
