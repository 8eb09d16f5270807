package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/schemata/encode"
	"github.com/signadot/schemata/format"
	"github.com/signadot/schemata/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	// Namespace is the target namespace default from the environment.
	Namespace string
	EnvColor  *bool

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// useColor reports whether output to w is colored: -color wins, then
// the environment, then whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	if cfg.EnvColor != nil {
		return *cfg.EnvColor
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.useColor(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

type ConvertConfig struct {
	*MainConfig
	From     *format.Format
	NS       string `cli:"name=ns desc='target namespace of generated XSD'"`
	Elements bool   `cli:"name=elements desc='map top-level XSD elements to schemas'"`

	Convert *cli.Command
}

func (cfg *ConvertConfig) namespace() string {
	if cfg.NS != "" {
		return cfg.NS
	}
	return cfg.Namespace
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d desc='print a diff instead of the result'"`
	Write bool `cli:"name=w desc='write the result to the source file'"`

	Fmt *cli.Command
}

func (cfg *FmtConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFilename(file)}
}

type DumpConfig struct {
	*MainConfig
	From     *format.Format
	Comments bool `cli:"name=c desc='include comments'"`

	Dump *cli.Command
}
