// Package patch applies RFC 6902 operation lists and RFC 7386 merge
// patches to jsondoc trees. Documents cross the JSON wire on the way
// through, so wire-level refinements apply: binary values travel as base64
// strings and duplicate keys follow the patch engine's behavior.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	jsondoc "github.com/reoring/jsondoc"
)

// Apply runs an RFC 6902 operation list against doc. Neither input is
// mutated; the result is a fresh tree.
func Apply(doc, patchDoc *jsondoc.Value) (*jsondoc.Value, error) {
	docData, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: encode document: %w", err)
	}
	patchData, err := patchDoc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: encode patch: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return nil, fmt.Errorf("patch: decode patch: %w", err)
	}
	out, err := ops.Apply(docData)
	if err != nil {
		return nil, fmt.Errorf("patch: apply: %w", err)
	}
	res, err := jsondoc.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("patch: decode result: %w", err)
	}
	return res, nil
}

// Merge applies an RFC 7386 merge patch: object members are merged
// recursively and null members delete their keys.
func Merge(doc, mergeDoc *jsondoc.Value) (*jsondoc.Value, error) {
	docData, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: encode document: %w", err)
	}
	mergeData, err := mergeDoc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: encode patch: %w", err)
	}
	out, err := jsonpatch.MergePatch(docData, mergeData)
	if err != nil {
		return nil, fmt.Errorf("patch: merge: %w", err)
	}
	res, err := jsondoc.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("patch: decode result: %w", err)
	}
	return res, nil
}

// Diff computes the RFC 7386 merge patch that turns original into modified,
// so that Merge(original, Diff(original, modified)) reproduces modified.
func Diff(original, modified *jsondoc.Value) (*jsondoc.Value, error) {
	origData, err := original.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: encode original: %w", err)
	}
	modData, err := modified.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("patch: encode modified: %w", err)
	}
	out, err := jsonpatch.CreateMergePatch(origData, modData)
	if err != nil {
		return nil, fmt.Errorf("patch: diff: %w", err)
	}
	res, err := jsondoc.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("patch: decode result: %w", err)
	}
	return res, nil
}
