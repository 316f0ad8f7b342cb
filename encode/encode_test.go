package encode

import (
	"testing"

	"github.com/kdoc/richstate/parse"
	"github.com/kdoc/richstate/tree"
)

func roundTrip(t *testing.T, in string, opts ...Option) *tree.EditorState {
	t.Helper()
	st, err := parse.Parse(in)
	if err != nil {
		t.Fatalf("parse(%q): %v", in, err)
	}
	out := Serialize(st, opts...)
	st2, err := parse.Parse(out)
	if err != nil {
		t.Fatalf("re-parse(%q): %v", out, err)
	}
	if !tree.Equal(st, st2) {
		t.Errorf("round-trip mismatch: in=%q out=%q", in, out)
	}
	return st2
}

func TestRoundTripTextBlock(t *testing.T) {
	roundTrip(t, "P: foo|")
}

func TestRoundTripAnnotationMark(t *testing.T) {
	roundTrip(t, `P: [@link href="https://example.com":foo]|`)
}

func TestRoundTripContainer(t *testing.T) {
	roundTrip(t, "UL:\n  LI: foo\n  LI: bar|")
}

func TestRoundTripRawBlock(t *testing.T) {
	roundTrip(t, "CODE!:\n  const arr = [1, 2, 3]|")
}

func TestRoundTripEscapedSemicolons(t *testing.T) {
	st, err := parse.Parse(`P: foo\;\;bar|`)
	if err != nil {
		t.Fatal(err)
	}
	got := Serialize(st)
	want := `P: foo\;\;bar|`
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestRoundTripSingleLine(t *testing.T) {
	roundTrip(t, "UL:\n  LI: foo\n  LI: bar", WithSingleLine())
}

func TestRoundTripBlockObjectSelection(t *testing.T) {
	roundTrip(t, "P: [strong:^bar]\n"+`{IMG src="a.png"}|`)
}

func TestSerializeCanonicalAttrOrder(t *testing.T) {
	st, err := parse.Parse(`{IMG width=10 src="a.png"}`)
	if err != nil {
		t.Fatal(err)
	}
	got := Serialize(st)
	want := `{IMG src="a.png" width=10}`
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestRoundTripNoSelection(t *testing.T) {
	st := roundTrip(t, "P: foo")
	if st.Selection != nil {
		t.Errorf("expected nil selection, got %+v", st.Selection)
	}
}
