package mapping

import "github.com/signadot/schemata/ir"

var primitives = map[string]string{
	"int":      "xs:integer",
	"string":   "xs:string",
	"float":    "xs:float",
	"datetime": "xs:dateTime",
	"bool":     "xs:boolean",
}

// XSDType maps a Schemata type name to an XML Schema type name.
func XSDType(name string) string {
	if t, ok := primitives[name]; ok {
		return t
	}
	return "xs:" + name
}

// Nullable reports whether an element with the given raw minOccurs is
// nullable.  An absent minOccurs means required.
func Nullable(minOccurs string) bool {
	return minOccurs == "0"
}

// MinOccurs returns the minOccurs attribute value for a field, or "" for
// none.
func MinOccurs(nullable bool) string {
	if nullable {
		return "0"
	}
	return ""
}

// MaxOccurs returns the maxOccurs attribute value given by the first
// @maxOccurs annotation with an integer or string value.
func MaxOccurs(anns []*ir.Annotation) (string, bool) {
	for _, a := range anns {
		if a.Name != "maxOccurs" {
			continue
		}
		v, ok := a.Get(ir.ValueKey)
		if !ok {
			continue
		}
		switch v.Type {
		case ir.IntValue, ir.StringValue:
			return v.Text(), true
		}
	}
	return "", false
}
