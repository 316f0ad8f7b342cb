// Package patchop applies RFC 6902 JSON Patch documents to a block or
// mark's attribute map. Attributes are already JSON-shaped values
// (tree.AttributeValue mirrors encoding/json's decode target exactly),
// so patching them is a direct application of evanphx/json-patch over
// their JSON encoding.
package patchop
