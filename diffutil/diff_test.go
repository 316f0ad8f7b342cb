package diffutil

import (
	"strings"
	"testing"

	"github.com/kdoc/richstate/parse"
)

func TestDiffReportsChangedLine(t *testing.T) {
	a, err := parse.Parse("H1: hello\nP: body")
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.Parse("H1: goodbye\nP: body")
	if err != nil {
		t.Fatal(err)
	}
	got := Diff(a, b)
	if !strings.Contains(got, "hello") || !strings.Contains(got, "goodbye") {
		t.Errorf("Diff() = %q, want both changed lines present", got)
	}
}

func TestDiffNoChangeForIdenticalStates(t *testing.T) {
	a, err := parse.Parse("P: same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.Parse("P: same")
	if err != nil {
		t.Fatal(err)
	}
	got := Diff(a, b)
	if strings.Contains(got, "\x1b[") {
		t.Errorf("Diff() of identical states reported a change: %q", got)
	}
}
