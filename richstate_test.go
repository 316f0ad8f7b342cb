package richstate

import "testing"

func TestFacadeRoundTrip(t *testing.T) {
	st, err := Parse("P: hello|")
	if err != nil {
		t.Fatal(err)
	}
	out := Serialize(st)
	if out != "P: hello|" {
		t.Errorf("Serialize() = %q", out)
	}
}

func TestFacadeGetRange(t *testing.T) {
	st, err := Parse("P: foo [strong:bar] baz")
	if err != nil {
		t.Fatal(err)
	}
	sel, err := GetRange(st, "[strong:bar]")
	if err != nil {
		t.Fatal(err)
	}
	if sel == nil {
		t.Fatalf("expected a match")
	}
}
