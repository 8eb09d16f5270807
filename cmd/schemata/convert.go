package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/schemata"
	"github.com/signadot/schemata/format"
	"github.com/signadot/schemata/mapping"
	"github.com/signadot/schemata/parse"
	"github.com/signadot/schemata/xsd"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		if err := convertInput(cfg, cc.Out, in); err != nil {
			return fmt.Errorf("error converting %s: %w", in.name, err)
		}
	}
	return nil
}

func convertInput(cfg *ConvertConfig, w io.Writer, in input) error {
	opts := []schemata.Option{schemata.WithEncodeOptions(cfg.encOpts(w)...)}
	switch inputFormat(cfg.From, in) {
	case format.XSDFormat:
		var diags []xsd.Diagnostic
		opts = append(opts, schemata.WithDiagnostics(&diags))
		if cfg.Elements {
			opts = append(opts, schemata.WithMappingOptions(mapping.WithElementSchemas()))
		}
		err := schemata.XSDToSchemata(bytes.NewReader(in.data), w, opts...)
		logDiagnostics(in.name, diags)
		return err
	default:
		opts = append(opts, schemata.WithParseOptions(parse.ParseFilename(in.name)))
		return schemata.SchemataToXSD(in.data, w, cfg.namespace(), opts...)
	}
}
