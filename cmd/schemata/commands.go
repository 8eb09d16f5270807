package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	cfg.loadEnv()
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "schemata").
		WithSynopsis("schemata [opts] command [opts]").
		WithDescription("schemata translates between XML Schema and Schemata.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schemataMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			FmtCommand(cfg),
			DumpCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "from",
		Description: "input format: xsd/x, schemata/s (default from file suffix)",
		Type:        cli.NamedFuncOpt(fmtFunc(&cfg.From), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-from format] [-ns uri] [-elements] [files]").
		WithDescription(convertDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

const convertDescription = `convert translates XML Schema to Schemata and back.

The direction follows the input format, given with -from or taken from the
file suffix (.xsd, .schemata).  Without -from, standard input is read as
XML Schema when it starts with '<' and as Schemata otherwise.

Generated XML Schema uses the target namespace from -ns, then
$SCHEMATA_NAMESPACE, then the first namespace of the Schemata file.`

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("reformat Schemata files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reformat(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "from",
		Description: "input format: xsd/x, schemata/s (default from file suffix)",
		Type:        cli.NamedFuncOpt(fmtFunc(&cfg.From), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-from format] [files]").
		WithDescription("dump the parsed document model as YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
