package encode

import "github.com/signadot/schemata/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeHeader controls the XML declaration at the start of XML Schema
// output.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// TargetNamespace binds XML Schema output to ns.  When unset the name of
// the first namespace of the file is used.
func TargetNamespace(ns string) EncodeOption {
	return func(es *EncState) { es.namespace = ns }
}

// EncodeColors colors Schemata output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
