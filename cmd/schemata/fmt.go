package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/schemata"
	"github.com/signadot/schemata/libdiff"

	"github.com/scott-cotton/cli"
)

func reformat(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: cannot use -w and -d together", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if err := reformatInput(cfg, cc.Out, in); err != nil {
			return fmt.Errorf("error formatting %s: %w", in.name, err)
		}
	}
	return nil
}

func reformatInput(cfg *FmtConfig, w io.Writer, in input) error {
	opts := []schemata.Option{schemata.WithParseOptions(cfg.parseOpts(in.name)...)}
	if !cfg.Write && !cfg.Diff {
		opts = append(opts, schemata.WithEncodeOptions(cfg.encOpts(w)...))
	}
	out, err := schemata.FormatSchemata(in.data, opts...)
	if err != nil {
		return err
	}
	switch {
	case cfg.Diff:
		lines := libdiff.DiffLines(string(in.data), out)
		if !libdiff.Changed(lines) {
			return nil
		}
		return libdiff.Write(w, in.name, lines, libdiff.Color(cfg.useColor(w)))
	case cfg.Write:
		if bytes.Equal(in.data, []byte(out)) {
			return nil
		}
		st, err := os.Stat(in.name)
		if err != nil {
			return err
		}
		return os.WriteFile(in.name, []byte(out), st.Mode().Perm())
	default:
		_, err := io.WriteString(w, out)
		return err
	}
}
