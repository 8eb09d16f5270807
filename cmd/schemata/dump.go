package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/schemata/format"
	"github.com/signadot/schemata/parse"
	"github.com/signadot/schemata/xsd"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := dumpInput(cfg, cc.Out, in); err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
	}
	return nil
}

func dumpInput(cfg *DumpConfig, w io.Writer, in input) error {
	var model any
	switch inputFormat(cfg.From, in) {
	case format.XSDFormat:
		var diags []xsd.Diagnostic
		s, err := xsd.Parse(bytes.NewReader(in.data), xsd.ParseDiagnostics(&diags))
		logDiagnostics(in.name, diags)
		if err != nil {
			return err
		}
		model = s
	default:
		f, err := parse.Parse(in.data, parse.ParseFilename(in.name), parse.ParseComments(cfg.Comments))
		if err != nil {
			return err
		}
		model = f
	}
	d, err := yaml.Marshal(model)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = w.Write(d)
	return err
}
