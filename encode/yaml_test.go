package encode

import (
	"strings"
	"testing"

	"github.com/kdoc/richstate/parse"
)

func TestDumpYAMLContainsBlockType(t *testing.T) {
	st, err := parse.Parse(`P: hello {IMG src="a.png"}`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DumpYAML(st)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "type: P") {
		t.Errorf("DumpYAML() missing block type: %q", out)
	}
	if !strings.Contains(out, "IMG") {
		t.Errorf("DumpYAML() missing inline object type: %q", out)
	}
}
