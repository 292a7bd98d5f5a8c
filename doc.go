package jsondoc

// Package jsondoc provides:
//
// - An owning document tree (Value) covering the JSON kinds plus binary,
//   with object member order and duplicate keys preserved
// - Cheap non-owning cursors (View/ConstView) whose staleness is detected
//   rather than undefined
// - A typed conversion layer (GetValue/SetValue and friends) reporting
//   failures as path-qualified errors
// - A JSON codec on goccy/go-json and bridges for YAML, patching, and
//   JSONPath under their own packages
//
// Design policy:
// - Keep the document model and conversion protocol in the root package;
//   place format bridges under yamlconv/, patch/, query/, and docio/, and
//   the CLI under cmd/jsondoc.
// - Misuse of Value accessors panics with *KindError; everything reachable
//   from untrusted input reports *Error values instead.
//
// Typical usage:
//
//	doc, err := jsondoc.Parse(data)
//	var port int64
//	err = jsondoc.GetValueAt(doc.View().Const(), "port", &port)
//
//	v := doc.View().Field("servers").Element(0)
//	v.SetString("db-1")
//
