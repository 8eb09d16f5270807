package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type writeOpts struct {
	context int
	color   bool
}

type WriteOption func(*writeOpts)

// Context sets the number of unchanged lines shown around each change.
// A negative value shows every line.
func Context(n int) WriteOption {
	return func(o *writeOpts) { o.context = n }
}

func Color(v bool) WriteOption {
	return func(o *writeOpts) { o.color = v }
}

// Write renders lines in unified style under a header naming the file.
func Write(w io.Writer, name string, lines []Line, opts ...WriteOption) error {
	o := &writeOpts{context: 3}
	for _, opt := range opts {
		opt(o)
	}
	if !Changed(lines) {
		return nil
	}
	paint := func(op Op, s string) string {
		if !o.color {
			return s
		}
		switch op {
		case Delete:
			return color.RedString("%s", s)
		case Insert:
			return color.GreenString("%s", s)
		}
		return s
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n",
		paint(Delete, "--- "+name),
		paint(Insert, "+++ "+name)); err != nil {
		return err
	}
	show := visible(lines, o.context)
	gap := false
	for i, ln := range lines {
		if !show[i] {
			gap = true
			continue
		}
		if gap {
			if _, err := fmt.Fprintln(w, paint(Equal, "@@")); err != nil {
				return err
			}
			gap = false
		}
		if _, err := fmt.Fprintln(w, paint(ln.Op, ln.Op.Prefix()+ln.Text)); err != nil {
			return err
		}
	}
	return nil
}

func visible(lines []Line, context int) []bool {
	show := make([]bool, len(lines))
	for i := range lines {
		if context < 0 || lines[i].Op != Equal {
			show[i] = true
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			if lines[j].Op != Equal {
				show[i] = true
				break
			}
		}
	}
	return show
}
