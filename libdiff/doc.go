// Package libdiff computes and renders line diffs of schema text.
//
// # Usage
//
//	lines := libdiff.DiffLines(before, after)
//	if libdiff.Changed(lines) {
//	    libdiff.Write(os.Stdout, "a.schemata", lines, libdiff.Context(3))
//	}
package libdiff
