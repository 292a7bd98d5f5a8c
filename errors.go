package jsondoc

// Error is the conversion layer's failure report: a short message such as
// "integer expected" qualified with the slash path of the offending node.
// An empty path means the node could not be located (invalid view, or a
// target detached from its root); the rendering then falls back to a
// document-level qualifier.
type Error struct {
	Msg  string
	Path string
}

// NewError builds an Error for the node referenced by v, resolving its path
// at call time.
func NewError(v ConstView, msg string) *Error {
	return &Error{Msg: msg, Path: v.Path()}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg + " in json"
	}
	return e.Msg + " at " + e.Path
}

// KindError is the panic payload of direct Value accessors invoked on a
// node of the wrong kind, mirroring reflect.ValueError.
type KindError struct {
	Op   string
	Kind Kind
}

func (e *KindError) Error() string {
	return "jsondoc: call of " + e.Op + " on " + e.Kind.String() + " value"
}
