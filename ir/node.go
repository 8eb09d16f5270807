package ir

// InlineSchemaName is the name given to the anonymous record type of a
// field with an inline block.
const InlineSchemaName = "InlineSchema"

type File struct {
	Namespaces []*Namespace `yaml:"namespaces"`
}

type Namespace struct {
	Name    string    `yaml:"name"`
	Schemas []*Schema `yaml:"schemas,omitempty"`
	Enums   []*Enum   `yaml:"enums,omitempty"`
}

type Schema struct {
	Name        string        `yaml:"name"`
	Comment     string        `yaml:"comment,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Fields      []*Field      `yaml:"fields,omitempty"`
}

type Field struct {
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type,omitempty"`
	Nullable    bool          `yaml:"nullable,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Comment     string        `yaml:"comment,omitempty"`
	Inline      *Schema       `yaml:"inline,omitempty"`
}

// EffectiveType returns the type name of f, or "" when f has an inline
// record type, which takes precedence over any type name.
func (f *Field) EffectiveType() string {
	if f.Inline != nil {
		return ""
	}
	return f.Type
}

type Enum struct {
	Name        string        `yaml:"name"`
	Comment     string        `yaml:"comment,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Values      []string      `yaml:"values"`
}

// ValueKey is the key of a positional annotation parameter, as in
// @maxOccurs(10).
const ValueKey = "value"

// Annotation is a named, parameterized tag such as @maxOccurs(10).  Name
// does not include the '@'.
type Annotation struct {
	Name   string  `yaml:"name"`
	Params []Param `yaml:"params,omitempty"`
}

type Param struct {
	Key   string `yaml:"key"`
	Value Value  `yaml:"value"`
}

func NewAnnotation(name string, params ...Param) *Annotation {
	return &Annotation{Name: name, Params: params}
}

// Get returns the value of the parameter named key.
func (a *Annotation) Get(key string) (Value, bool) {
	for i := range a.Params {
		if a.Params[i].Key == key {
			return a.Params[i].Value, true
		}
	}
	return Value{}, false
}

// Set sets the parameter named key, keeping the position of an existing
// parameter with the same key.
func (a *Annotation) Set(key string, v Value) {
	for i := range a.Params {
		if a.Params[i].Key == key {
			a.Params[i].Value = v
			return
		}
	}
	a.Params = append(a.Params, Param{Key: key, Value: v})
}

// Positional reports whether the annotation has exactly one parameter and
// it is the positional one.
func (a *Annotation) Positional() bool {
	return len(a.Params) == 1 && a.Params[0].Key == ValueKey
}

// FindAnnotation returns the first annotation in anns named name.
func FindAnnotation(anns []*Annotation, name string) *Annotation {
	for _, a := range anns {
		if a.Name == name {
			return a
		}
	}
	return nil
}
