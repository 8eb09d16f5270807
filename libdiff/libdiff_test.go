package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nc\nd\n"
	want := []Line{
		{Op: Equal, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Equal, Text: "c"},
		{Op: Insert, Text: "d"},
	}
	got := DiffLines(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	if !Changed(got) {
		t.Errorf("expected change")
	}
	if Changed(DiffLines(from, from)) {
		t.Errorf("unexpected change")
	}
}

func TestWrite(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n8\n"
	to := "1\n2\n3\n4\n5\n6\n7\nx\n"
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, "f", DiffLines(from, to), Context(1)); err != nil {
		t.Fatal(err)
	}
	want := "--- f\n+++ f\n@@\n 7\n-8\n+x\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
	buf.Reset()
	if err := Write(buf, "f", DiffLines(from, from)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q for no change", buf.String())
	}
}
