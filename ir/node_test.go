package ir

import "testing"

func TestAnnotationParams(t *testing.T) {
	a := NewAnnotation("attribute",
		Param{Key: "name", Value: FromString("id")},
		Param{Key: "use", Value: FromString("optional")})
	a.Set("use", FromString("required"))
	a.Set("default", FromInt(3))
	if len(a.Params) != 3 {
		t.Fatalf("expected 3 params got %d", len(a.Params))
	}
	if a.Params[1].Key != "use" || a.Params[1].Value.String != "required" {
		t.Errorf("Set did not keep position: %+v", a.Params)
	}
	v, ok := a.Get("default")
	if !ok || v.Type != IntValue || v.Int != 3 {
		t.Errorf("Get(default) = %+v, %v", v, ok)
	}
	if _, ok := a.Get("fixed"); ok {
		t.Errorf("Get(fixed) should be absent")
	}
	if a.Positional() {
		t.Errorf("attribute annotation is not positional")
	}
	if !NewAnnotation("maxOccurs", Param{Key: ValueKey, Value: FromInt(1)}).Positional() {
		t.Errorf("maxOccurs(1) should be positional")
	}
}

func TestValueText(t *testing.T) {
	vs := map[string]Value{
		"10":        FromInt(10),
		"-1":        FromInt(-1),
		"true":      FromBool(true),
		"unbounded": FromString("unbounded"),
	}
	for want, v := range vs {
		if got := v.Text(); got != want {
			t.Errorf("%v: got %q want %q", v.Type, got, want)
		}
	}
}

func TestEffectiveType(t *testing.T) {
	f := &Field{Name: "details", Type: "string"}
	if f.EffectiveType() != "string" {
		t.Errorf("got %q", f.EffectiveType())
	}
	f.Inline = &Schema{Name: InlineSchemaName}
	if f.EffectiveType() != "" {
		t.Errorf("inline type should override type name, got %q", f.EffectiveType())
	}
	if FindAnnotation([]*Annotation{{Name: "a"}, {Name: "b"}}, "b") == nil {
		t.Errorf("FindAnnotation")
	}
}
