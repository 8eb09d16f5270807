package xsd

type Schema struct {
	TargetNamespace    string            `yaml:"targetNamespace,omitempty"`
	ElementFormDefault string            `yaml:"elementFormDefault,omitempty"`
	Elements           []*Element        `yaml:"elements,omitempty"`
	ComplexTypes       []*ComplexType    `yaml:"complexTypes,omitempty"`
	SimpleTypes        []*SimpleType     `yaml:"simpleTypes,omitempty"`
	Namespaces         map[string]string `yaml:"namespaces,omitempty"`
	Imports            []string          `yaml:"imports,omitempty"`
}

// Element is an element declaration or, when Ref is set, a reference to
// one.  MinOccurs and MaxOccurs are kept as written; "" means absent.
type Element struct {
	Name        string       `yaml:"name"`
	Ref         string       `yaml:"ref,omitempty"`
	Type        string       `yaml:"type,omitempty"`
	MinOccurs   string       `yaml:"minOccurs,omitempty"`
	MaxOccurs   string       `yaml:"maxOccurs,omitempty"`
	ComplexType *ComplexType `yaml:"complexType,omitempty"`
	SimpleType  *SimpleType  `yaml:"simpleType,omitempty"`
	Comment     string       `yaml:"comment,omitempty"`
}

type ComplexType struct {
	Name       string       `yaml:"name,omitempty"`
	Sequence   []*Element   `yaml:"sequence,omitempty"`
	Attributes []*Attribute `yaml:"attributes,omitempty"`
	Mixed      bool         `yaml:"mixed,omitempty"`
	Comment    string       `yaml:"comment,omitempty"`
}

type Attribute struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type,omitempty"`
	Use     string  `yaml:"use,omitempty"`
	Default *string `yaml:"default,omitempty"`
	Fixed   *string `yaml:"fixed,omitempty"`
}

type SimpleType struct {
	Name        string       `yaml:"name,omitempty"`
	Restriction *Restriction `yaml:"restriction,omitempty"`
	List        string       `yaml:"list,omitempty"`
	Union       []string     `yaml:"union,omitempty"`
	Comment     string       `yaml:"comment,omitempty"`
}

type Restriction struct {
	Base           string   `yaml:"base"`
	Enumeration    []string `yaml:"enumeration,omitempty"`
	Pattern        *string  `yaml:"pattern,omitempty"`
	MinInclusive   *string  `yaml:"minInclusive,omitempty"`
	MaxInclusive   *string  `yaml:"maxInclusive,omitempty"`
	MinExclusive   *string  `yaml:"minExclusive,omitempty"`
	MaxExclusive   *string  `yaml:"maxExclusive,omitempty"`
	Length         *int     `yaml:"length,omitempty"`
	MinLength      *int     `yaml:"minLength,omitempty"`
	MaxLength      *int     `yaml:"maxLength,omitempty"`
	TotalDigits    *int     `yaml:"totalDigits,omitempty"`
	FractionDigits *int     `yaml:"fractionDigits,omitempty"`
}

// Diagnostic reports markup that was skipped or not fully understood.
type Diagnostic struct {
	Line    int
	Col     int
	Element string
	Message string
}
