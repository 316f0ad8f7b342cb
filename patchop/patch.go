package patchop

import (
	"bytes"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/kdoc/richstate/tree"
)

// ApplyAttrPatch applies patch, an RFC 6902 JSON Patch document, to
// attrs and returns the resulting attribute map. attrs may be nil,
// which patches as an empty object.
func ApplyAttrPatch(attrs tree.Attributes, patch []byte) (tree.Attributes, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}

	before, err := json.Marshal(attrsToJSON(attrs))
	if err != nil {
		return nil, err
	}
	after, err := p.Apply(before)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(after))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return jsonToAttrs(raw), nil
}

func attrsToJSON(attrs tree.Attributes) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v.ToJSON()
	}
	return out
}

func jsonToAttrs(raw map[string]any) tree.Attributes {
	out := make(tree.Attributes, len(raw))
	for k, v := range raw {
		out[k] = tree.FromJSON(v)
	}
	return out
}
