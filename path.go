package jsondoc

import (
	"strconv"
	"strings"
)

// Path locates the view's target relative to its root as a slash-delimited
// path: "/" for the root itself, "/a/2/b" for nested nodes (object keys and
// array indices as segments, unescaped). Invalid and stale views, and
// targets no longer reachable from the root, resolve to "".
//
// The search walks the whole tree by identity, O(tree size) per call. That
// keeps Value free of parent links (which would complicate swap and clone);
// paths are only computed on error paths where the cost does not matter.
func (v ConstView) Path() string {
	if !v.Valid() || v.root == nil {
		return ""
	}
	path, ok := findPath(v.root, v.target)
	if !ok {
		return ""
	}
	return path
}

func findPath(node, want *Value) (string, bool) {
	if node == want {
		return "/", true
	}
	switch node.kind {
	case KindArray:
		for i, e := range node.arr {
			if sub, ok := findPath(e, want); ok {
				if sub == "/" {
					sub = ""
				}
				return "/" + strconv.Itoa(i) + sub, true
			}
		}
	case KindObject:
		for _, f := range node.obj {
			if sub, ok := findPath(f.Value, want); ok {
				if sub == "/" {
					sub = ""
				}
				return "/" + f.Key + sub, true
			}
		}
	}
	return "", false
}

// Resolve walks a slash-delimited path from the view: object segments match
// field keys, purely numeric segments under arrays address elements. "" and
// "/" resolve to the view itself; empty segments are skipped. Keys are
// matched verbatim (no escaping), so keys containing '/' are unreachable.
func (v ConstView) Resolve(path string) ConstView {
	if !v.Valid() {
		return v.dead()
	}
	cur := v
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		switch cur.Kind() {
		case KindObject:
			cur = cur.Field(seg)
		case KindArray:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return v.dead()
			}
			cur = cur.Element(i)
		default:
			return v.dead()
		}
		if !cur.Valid() {
			return v.dead()
		}
	}
	return cur
}

// Resolve is the mutable flavor of ConstView.Resolve.
func (v View) Resolve(path string) View {
	return View{v.ConstView.Resolve(path)}
}
