package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// DiffLines returns the line by line difference between from and to.
func DiffLines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range diff.Text {
			res = append(res, Line{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

// mapLinesTo assigns each distinct line a rune from the private use
// planes so that the rune diff is a line diff.
func mapLinesTo(lineMap map[string]rune, runeMap map[rune]string, s string) []rune {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	res := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := lineMap[ln]
		if !ok {
			r = rune(0xF0000 + len(lineMap))
			lineMap[ln] = r
			runeMap[r] = ln
		}
		res[i] = r
	}
	return res
}

func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}
