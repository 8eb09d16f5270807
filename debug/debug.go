package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	XSD    bool
	Parse  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.XSD = boolEnv("SCHEMATA_DEBUG_XSD")
	d.Parse = boolEnv("SCHEMATA_DEBUG_PARSE")
	d.Encode = boolEnv("SCHEMATA_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func XSD() bool {
	return d.XSD
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}

// Logf writes a trace line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}
