package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/schemata/format"
)

const personXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com">
  <xs:complexType name="Person">
    <xs:sequence>
      <xs:element name="name" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:notation name="n" public="p"/>
</xs:schema>`

func TestInputFormat(t *testing.T) {
	x := format.XSDFormat
	tests := []struct {
		from *format.Format
		in   input
		want format.Format
	}{
		{nil, input{name: "a.xsd"}, format.XSDFormat},
		{nil, input{name: "a.schemata"}, format.SchemataFormat},
		{nil, input{name: "-", data: []byte("  <xs:schema/>")}, format.XSDFormat},
		{nil, input{name: "-", data: []byte("namespace a {}")}, format.SchemataFormat},
		{&x, input{name: "a.schemata"}, format.XSDFormat},
	}
	for i, tc := range tests {
		if got := inputFormat(tc.from, tc.in); got != tc.want {
			t.Errorf("%d: got %s want %s", i, got, tc.want)
		}
	}
}

func TestUseColor(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	cfg := &MainConfig{}
	if cfg.useColor(buf) {
		t.Error("color for a buffer")
	}
	on := true
	cfg.EnvColor = &on
	if !cfg.useColor(buf) {
		t.Error("environment color ignored")
	}
	cfg = &MainConfig{Color: true}
	if !cfg.useColor(buf) {
		t.Error("-color ignored")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envNamespace, "urn:x")
	t.Setenv(envColor, "false")
	cfg := &MainConfig{}
	cfg.loadEnv()
	if cfg.Namespace != "urn:x" {
		t.Errorf("namespace %q", cfg.Namespace)
	}
	if cfg.EnvColor == nil || *cfg.EnvColor {
		t.Errorf("color %v", cfg.EnvColor)
	}
	cc := &ConvertConfig{MainConfig: cfg, NS: "urn:y"}
	if got := cc.namespace(); got != "urn:y" {
		t.Errorf("-ns not preferred: %q", got)
	}
}

func TestConvertInput(t *testing.T) {
	cfg := &ConvertConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	if err := convertInput(cfg, buf, input{name: "p.xsd", data: []byte(personXSD)}); err != nil {
		t.Fatal(err)
	}
	sch := buf.String()
	if !strings.Contains(sch, "schema Person {") || !strings.Contains(sch, "name xs:string") {
		t.Fatalf("unexpected schemata:\n%s", sch)
	}

	cfg.NS = "urn:people"
	buf.Reset()
	if err := convertInput(cfg, buf, input{name: "p.schemata", data: []byte(sch)}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, `targetNamespace="urn:people"`) || !strings.Contains(got, `<xs:complexType name="Person">`) ||
		!strings.Contains(got, `<xs:element name="name" type="xs:xs:string"/>`) {
		t.Errorf("unexpected xsd:\n%s", got)
	}
}

func TestReformatInput(t *testing.T) {
	in := "namespace a { schema S { x int } }\n"
	cfg := &FmtConfig{MainConfig: &MainConfig{}, Diff: true}
	buf := bytes.NewBuffer(nil)
	if err := reformatInput(cfg, buf, input{name: "s.schemata", data: []byte(in)}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "--- s.schemata\n+++ s.schemata\n") || !strings.Contains(got, "-"+strings.TrimSuffix(in, "\n")) {
		t.Errorf("unexpected diff:\n%s", got)
	}

	path := filepath.Join(t.TempDir(), "s.schemata")
	if err := os.WriteFile(path, []byte(in), 0600); err != nil {
		t.Fatal(err)
	}
	cfg = &FmtConfig{MainConfig: &MainConfig{}, Write: true}
	if err := reformatInput(cfg, buf, input{name: path, data: []byte(in)}); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), "\n    schema S {\n        x int\n    }\n") {
		t.Errorf("not rewritten:\n%s", d)
	}
}

func TestDumpInput(t *testing.T) {
	cfg := &DumpConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	if err := dumpInput(cfg, buf, input{name: "p.xsd", data: []byte(personXSD)}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "targetNamespace: http://example.com") || !strings.Contains(got, "name: Person") {
		t.Errorf("unexpected dump:\n%s", got)
	}
}
