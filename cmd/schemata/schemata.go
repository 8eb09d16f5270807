package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/schemata/format"

	"github.com/scott-cotton/cli"
)

func schemataMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// input is one file named on the command line, or standard input as "-".
type input struct {
	name string
	data []byte
}

func readInputs(cc *cli.Context, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, file := range args {
		var (
			d   []byte
			err error
		)
		if file == "-" {
			d, err = io.ReadAll(cc.In)
		} else {
			d, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", file, err)
		}
		res = append(res, input{name: file, data: d})
	}
	return res, nil
}

// inputFormat picks the format of in: from, then the file suffix, then
// a look at the first non-space byte.
func inputFormat(from *format.Format, in input) format.Format {
	if from != nil {
		return *from
	}
	if f, ok := format.FromPath(in.name); ok {
		return f
	}
	if bytes.HasPrefix(bytes.TrimSpace(in.data), []byte("<")) {
		return format.XSDFormat
	}
	return format.SchemataFormat
}
