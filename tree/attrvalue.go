package tree

import "encoding/json"

// AttrKind discriminates the JSON-shaped variants an AttributeValue can
// hold. Two numeric kinds exist even though the grammar's bare NUMBER
// token only ever produces AttrInt: a JSON attribute value (the JSON
// token, §4.1) may nest floating-point numbers inside arrays/objects,
// and those must round-trip too.
type AttrKind int

const (
	AttrNull AttrKind = iota
	AttrString
	AttrInt
	AttrFloat
	AttrBool
	AttrArray
	AttrObject
)

// AttributeValue is a JSON-shaped value: string, integer, float (nested
// JSON only), boolean, null, array, or string-keyed object.
type AttributeValue struct {
	Kind AttrKind

	Str   string
	Int   int64
	Float float64
	Bool  bool
	Arr   []AttributeValue
	Obj   map[string]AttributeValue
}

func NullValue() AttributeValue           { return AttributeValue{Kind: AttrNull} }
func StringValue(s string) AttributeValue { return AttributeValue{Kind: AttrString, Str: s} }
func IntValue(i int64) AttributeValue     { return AttributeValue{Kind: AttrInt, Int: i} }
func FloatValue(f float64) AttributeValue { return AttributeValue{Kind: AttrFloat, Float: f} }
func BoolValue(b bool) AttributeValue     { return AttributeValue{Kind: AttrBool, Bool: b} }
func ArrayValue(v []AttributeValue) AttributeValue {
	return AttributeValue{Kind: AttrArray, Arr: v}
}
func ObjectValue(v map[string]AttributeValue) AttributeValue {
	return AttributeValue{Kind: AttrObject, Obj: v}
}

// FromJSON converts a value decoded by encoding/json (via
// json.Unmarshal into `any`) into an AttributeValue. Numbers may arrive
// as json.Number (a decoder with UseNumber, as the parser uses) or as
// float64 (ordinary json.Unmarshal); either way a number with no
// fractional part that fits an int64 becomes AttrInt and any other
// number AttrFloat, so "2" and "2.0" decode alike, matching how the
// grammar's own NUMBER token never produces a float.
func FromJSON(v any) AttributeValue {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case float64:
		if i := int64(x); float64(i) == x {
			return IntValue(i)
		}
		return FloatValue(x)
	case int64:
		return IntValue(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return IntValue(i)
		}
		f, _ := x.Float64()
		if i := int64(f); float64(i) == f {
			return IntValue(i)
		}
		return FloatValue(f)
	case []any:
		out := make([]AttributeValue, len(x))
		for i, e := range x {
			out[i] = FromJSON(e)
		}
		return ArrayValue(out)
	case map[string]any:
		out := make(map[string]AttributeValue, len(x))
		for k, e := range x {
			out[k] = FromJSON(e)
		}
		return ObjectValue(out)
	default:
		return NullValue()
	}
}

// ToJSON converts an AttributeValue back to a plain Go value suitable
// for encoding/json.Marshal.
func (v AttributeValue) ToJSON() any {
	switch v.Kind {
	case AttrNull:
		return nil
	case AttrString:
		return v.Str
	case AttrInt:
		return v.Int
	case AttrFloat:
		return v.Float
	case AttrBool:
		return v.Bool
	case AttrArray:
		out := make([]any, len(v.Arr))
		for i, e := range v.Arr {
			out[i] = e.ToJSON()
		}
		return out
	case AttrObject:
		out := make(map[string]any, len(v.Obj))
		for k, e := range v.Obj {
			out[k] = e.ToJSON()
		}
		return out
	default:
		return nil
	}
}
