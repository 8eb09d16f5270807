package xsd

type parseOpts struct {
	diags *[]Diagnostic
}

type ParseOption func(*parseOpts)

// ParseDiagnostics appends a Diagnostic to *d for each piece of markup the
// reader skips.
func ParseDiagnostics(d *[]Diagnostic) ParseOption {
	return func(o *parseOpts) { o.diags = d }
}
