package ir

import (
	"fmt"
	"strconv"
)

type ValueType int

const (
	StringValue ValueType = iota
	IntValue
	BoolValue
)

func (t ValueType) String() string {
	switch t {
	case StringValue:
		return "string"
	case IntValue:
		return "int"
	case BoolValue:
		return "bool"
	default:
		return fmt.Sprintf("<bad value type %d>", int(t))
	}
}

// Value is an annotation parameter value.  Only the field selected by Type
// is meaningful.
type Value struct {
	Type   ValueType
	String string
	Int    int64
	Bool   bool
}

func FromString(s string) Value { return Value{Type: StringValue, String: s} }
func FromInt(i int64) Value     { return Value{Type: IntValue, Int: i} }
func FromBool(b bool) Value     { return Value{Type: BoolValue, Bool: b} }

// Text formats v without quoting.
func (v Value) Text() string {
	switch v.Type {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	default:
		return v.String
	}
}

func (v Value) MarshalYAML() (any, error) {
	switch v.Type {
	case IntValue:
		return v.Int, nil
	case BoolValue:
		return v.Bool, nil
	default:
		return v.String, nil
	}
}
