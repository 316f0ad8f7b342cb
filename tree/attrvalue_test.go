package tree

import "testing"

func TestUTF16LenASCII(t *testing.T) {
	if got := UTF16Len("hello"); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestUTF16LenSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE encodes as a UTF-16 surrogate pair.
	if got := UTF16Len("😀"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestFromJSONIntVsFloat(t *testing.T) {
	if v := FromJSON(float64(5)); v.Kind != AttrInt || v.Int != 5 {
		t.Errorf("got %+v, want AttrInt 5", v)
	}
	if v := FromJSON(float64(5.5)); v.Kind != AttrFloat || v.Float != 5.5 {
		t.Errorf("got %+v, want AttrFloat 5.5", v)
	}
}

func TestToJSONRoundTripsArray(t *testing.T) {
	v := ArrayValue([]AttributeValue{IntValue(1), StringValue("x"), BoolValue(true)})
	got, ok := v.ToJSON().([]any)
	if !ok || len(got) != 3 {
		t.Fatalf("got %#v, want a 3-element slice", v.ToJSON())
	}
	if got[0] != int64(1) || got[1] != "x" || got[2] != true {
		t.Errorf("got %#v", got)
	}
}

func TestFromJSONObject(t *testing.T) {
	v := FromJSON(map[string]any{"a": float64(1)})
	if v.Kind != AttrObject {
		t.Fatalf("got kind %v, want AttrObject", v.Kind)
	}
	if v.Obj["a"].Kind != AttrInt || v.Obj["a"].Int != 1 {
		t.Errorf("got %+v", v.Obj["a"])
	}
}
