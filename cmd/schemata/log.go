package main

import (
	"log/slog"
	"os"

	"github.com/signadot/schemata/xsd"
)

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if a.Key == slog.LevelKey {
			if a.Value.String() == "INFO" {
				return slog.Attr{}
			}
		}
		return a
	},
}))

func logDiagnostics(file string, diags []xsd.Diagnostic) {
	for _, d := range diags {
		theLog.Warn(d.Message, "file", file, "line", d.Line, "col", d.Col, "element", d.Element)
	}
}
