// Package query selects document subtrees with RFC 9535 JSONPath
// expressions.
package query

import (
	"fmt"

	"github.com/theory/jsonpath"

	jsondoc "github.com/reoring/jsondoc"
)

// Select compiles expr and runs it against doc, returning every located
// node as a standalone tree. The engine operates on the native-data bridge,
// so object member order is not preserved in results and duplicate keys
// collapse to their first occurrence; scalar kinds survive.
func Select(doc *jsondoc.Value, expr string) ([]*jsondoc.Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("query: parse %q: %w", expr, err)
	}
	results := path.Select(doc.Interface())
	out := make([]*jsondoc.Value, 0, len(results))
	for _, r := range results {
		v, err := jsondoc.ValueOf(r)
		if err != nil {
			return nil, fmt.Errorf("query: rebuild result: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// First returns the first match of expr against doc, or nil when nothing
// matches.
func First(doc *jsondoc.Value, expr string) (*jsondoc.Value, error) {
	matches, err := Select(doc, expr)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}
