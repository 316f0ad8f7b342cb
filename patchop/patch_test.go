package patchop

import (
	"testing"

	"github.com/kdoc/richstate/tree"
)

func TestApplyAttrPatchReplace(t *testing.T) {
	attrs := tree.Attributes{"src": tree.StringValue("a.png"), "width": tree.IntValue(10)}
	out, err := ApplyAttrPatch(attrs, []byte(`[{"op":"replace","path":"/width","value":20}]`))
	if err != nil {
		t.Fatal(err)
	}
	if out["width"].Int != 20 {
		t.Errorf("width = %+v, want 20", out["width"])
	}
	if out["src"].Str != "a.png" {
		t.Errorf("src = %+v, want a.png", out["src"])
	}
}

func TestApplyAttrPatchAddRemove(t *testing.T) {
	attrs := tree.Attributes{"src": tree.StringValue("a.png")}
	out, err := ApplyAttrPatch(attrs, []byte(`[
		{"op":"add","path":"/alt","value":"a cat"},
		{"op":"remove","path":"/src"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := out["src"]; ok {
		t.Errorf("src should have been removed")
	}
	if out["alt"].Str != "a cat" {
		t.Errorf("alt = %+v, want %q", out["alt"], "a cat")
	}
}

func TestApplyAttrPatchNilAttrs(t *testing.T) {
	out, err := ApplyAttrPatch(nil, []byte(`[{"op":"add","path":"/x","value":1}]`))
	if err != nil {
		t.Fatal(err)
	}
	if out["x"].Int != 1 {
		t.Errorf("x = %+v, want 1", out["x"])
	}
}

func TestApplyAttrPatchInvalidPatch(t *testing.T) {
	_, err := ApplyAttrPatch(tree.Attributes{}, []byte(`not json`))
	if err == nil {
		t.Fatalf("expected an error")
	}
}
