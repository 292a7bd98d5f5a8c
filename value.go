package jsondoc

import (
	"bytes"
	"fmt"
)

// Field is one key/value pair of an object node. Objects are ordered lists
// of fields, not maps: insertion order is preserved, duplicate keys are
// allowed, and lookups return the first match.
type Field struct {
	Key   string
	Value *Value
}

// F builds a Field, for use with Object.
func F(key string, value *Value) Field {
	if value == nil {
		value = &Value{}
	}
	return Field{Key: key, Value: value}
}

// Value is a single node of a JSON-like document: a tagged union holding
// exactly one representation at a time, selected by Kind. Container nodes
// own their children; destroying or re-typing a node releases everything
// below it.
//
// The zero Value is a null node ready for use.
//
// Direct accessors follow the reflect.Value contract: calling a typed
// accessor on a node of the wrong kind is a programmer error and panics.
// The View layer offers the non-panicking counterpart for data-driven code.
//
// A Value tree is not safe for concurrent mutation; callers that share a
// tree across goroutines must serialize access themselves.
type Value struct {
	kind Kind
	gen  uint32

	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr []*Value
	obj []Field
	bin []byte
}

// Null returns a new null node.
func Null() *Value { return &Value{} }

// Integer returns a new signed integer node.
func Integer(i int64) *Value { return &Value{kind: KindInteger, i: i} }

// Unsigned returns a new unsigned integer node.
func Unsigned(u uint64) *Value { return &Value{kind: KindUnsigned, u: u} }

// Real returns a new floating-point node.
func Real(f float64) *Value { return &Value{kind: KindReal, f: f} }

// Boolean returns a new boolean node.
func Boolean(b bool) *Value { return &Value{kind: KindBoolean, b: b} }

// String returns a new string node.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// Binary returns a new byte-blob node holding a copy of b.
func Binary(b []byte) *Value { return &Value{kind: KindBinary, bin: bytes.Clone(b)} }

// Array returns a new array node with the given elements. Nil elements
// become null nodes.
func Array(elems ...*Value) *Value {
	v := &Value{kind: KindArray}
	if len(elems) > 0 {
		v.arr = make([]*Value, len(elems))
		for i, e := range elems {
			if e == nil {
				e = &Value{}
			}
			v.arr[i] = e
		}
	}
	return v
}

// Object returns a new object node with the given fields in order.
func Object(fields ...Field) *Value {
	v := &Value{kind: KindObject}
	if len(fields) > 0 {
		v.obj = make([]Field, len(fields))
		for i, f := range fields {
			if f.Value == nil {
				f.Value = &Value{}
			}
			v.obj[i] = f
		}
	}
	return v
}

// Kind returns the node's current representation.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool     { return v.kind == KindNull }
func (v *Value) IsInteger() bool  { return v.kind == KindInteger }
func (v *Value) IsUnsigned() bool { return v.kind == KindUnsigned }
func (v *Value) IsReal() bool     { return v.kind == KindReal }
func (v *Value) IsBoolean() bool  { return v.kind == KindBoolean }
func (v *Value) IsString() bool   { return v.kind == KindString }
func (v *Value) IsArray() bool    { return v.kind == KindArray }
func (v *Value) IsObject() bool   { return v.kind == KindObject }
func (v *Value) IsBinary() bool   { return v.kind == KindBinary }

// IsIntegral reports whether the node holds a signed or unsigned integer.
func (v *Value) IsIntegral() bool {
	return v.kind == KindInteger || v.kind == KindUnsigned
}

// IsNumber reports whether the node holds any numeric kind.
func (v *Value) IsNumber() bool {
	return v.kind == KindInteger || v.kind == KindUnsigned || v.kind == KindReal
}

// mustBe panics with a KindError unless the node holds kind k.
func (v *Value) mustBe(op string, k Kind) {
	if v.kind != k {
		panic(&KindError{Op: op, Kind: v.kind})
	}
}

// releaseTree marks v and every node below it as detached so that any view
// still referencing one of them turns stale.
func releaseTree(v *Value) {
	if v == nil {
		return
	}
	v.gen++
	for _, e := range v.arr {
		releaseTree(e)
	}
	for _, f := range v.obj {
		releaseTree(f.Value)
	}
}

// reset drops the current payload, detaching owned children, and installs
// the zero payload for kind k. The node's own views stay valid.
func (v *Value) reset(k Kind) {
	for _, e := range v.arr {
		releaseTree(e)
	}
	for _, f := range v.obj {
		releaseTree(f.Value)
	}
	v.b = false
	v.i = 0
	v.u = 0
	v.f = 0
	v.s = ""
	v.arr = nil
	v.obj = nil
	v.bin = nil
	v.kind = k
}

// SetKind re-types the node: the old payload is released and a zero payload
// for k is installed. Setting the current kind still resets the payload.
func (v *Value) SetKind(k Kind) { v.reset(k) }

// Int returns the signed integer payload. It panics if the node is not an
// integer.
func (v *Value) Int() int64 {
	v.mustBe("jsondoc.Value.Int", KindInteger)
	return v.i
}

// Uint returns the unsigned integer payload. It panics if the node is not
// an unsigned integer.
func (v *Value) Uint() uint64 {
	v.mustBe("jsondoc.Value.Uint", KindUnsigned)
	return v.u
}

// Float returns the floating-point payload. It panics if the node is not a
// real.
func (v *Value) Float() float64 {
	v.mustBe("jsondoc.Value.Float", KindReal)
	return v.f
}

// Bool returns the boolean payload. It panics if the node is not a boolean.
func (v *Value) Bool() bool {
	v.mustBe("jsondoc.Value.Bool", KindBoolean)
	return v.b
}

// String returns the string payload. Unlike the other accessors it does not
// panic on other kinds (fmt printing must not): it returns "<kind>" instead.
func (v *Value) String() string {
	if v.kind == KindString {
		return v.s
	}
	return "<" + v.kind.String() + ">"
}

// Bytes returns the binary payload. It panics if the node is not binary.
// The slice is the node's backing storage, not a copy.
func (v *Value) Bytes() []byte {
	v.mustBe("jsondoc.Value.Bytes", KindBinary)
	return v.bin
}

// SetInt re-types the node to integer and stores i.
func (v *Value) SetInt(i int64) {
	v.reset(KindInteger)
	v.i = i
}

// SetUint re-types the node to unsigned and stores u.
func (v *Value) SetUint(u uint64) {
	v.reset(KindUnsigned)
	v.u = u
}

// SetFloat re-types the node to real and stores f.
func (v *Value) SetFloat(f float64) {
	v.reset(KindReal)
	v.f = f
}

// SetBool re-types the node to boolean and stores b.
func (v *Value) SetBool(b bool) {
	v.reset(KindBoolean)
	v.b = b
}

// SetString re-types the node to string and stores s.
func (v *Value) SetString(s string) {
	v.reset(KindString)
	v.s = s
}

// SetBytes re-types the node to binary and stores a copy of b.
func (v *Value) SetBytes(b []byte) {
	v.reset(KindBinary)
	v.bin = bytes.Clone(b)
}

// Len returns the payload length of a sized node (string, array, object,
// binary). It panics on other kinds.
func (v *Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.s)
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	case KindBinary:
		return len(v.bin)
	}
	panic(&KindError{Op: "jsondoc.Value.Len", Kind: v.kind})
}

// Empty reports whether a sized node has no entries. It panics on other
// kinds.
func (v *Value) Empty() bool {
	switch v.kind {
	case KindString:
		return len(v.s) == 0
	case KindArray:
		return len(v.arr) == 0
	case KindObject:
		return len(v.obj) == 0
	case KindBinary:
		return len(v.bin) == 0
	}
	panic(&KindError{Op: "jsondoc.Value.Empty", Kind: v.kind})
}

// Resize grows or truncates a string, array or binary node to length n.
// Strings pad with NUL bytes, arrays with null nodes, binaries with zero
// bytes; truncated array elements are released. It panics on other kinds.
func (v *Value) Resize(n int) {
	if n < 0 {
		panic("jsondoc: Resize with negative length")
	}
	switch v.kind {
	case KindString:
		if n <= len(v.s) {
			v.s = v.s[:n]
		} else {
			v.s = v.s + string(make([]byte, n-len(v.s)))
		}
	case KindArray:
		if n <= len(v.arr) {
			for _, e := range v.arr[n:] {
				releaseTree(e)
			}
			v.arr = v.arr[:n]
		} else {
			for len(v.arr) < n {
				v.arr = append(v.arr, &Value{})
			}
		}
	case KindBinary:
		if n <= len(v.bin) {
			v.bin = v.bin[:n]
		} else {
			v.bin = append(v.bin, make([]byte, n-len(v.bin))...)
		}
	default:
		panic(&KindError{Op: "jsondoc.Value.Resize", Kind: v.kind})
	}
}

// Reserve pre-allocates storage for at least n entries of a sized node
// without changing its contents. It panics on other kinds.
func (v *Value) Reserve(n int) {
	switch v.kind {
	case KindString:
		// strings are immutable; nothing to pre-allocate
	case KindArray:
		if cap(v.arr) < n {
			grown := make([]*Value, len(v.arr), n)
			copy(grown, v.arr)
			v.arr = grown
		}
	case KindObject:
		if cap(v.obj) < n {
			grown := make([]Field, len(v.obj), n)
			copy(grown, v.obj)
			v.obj = grown
		}
	case KindBinary:
		if cap(v.bin) < n {
			grown := make([]byte, len(v.bin), n)
			copy(grown, v.bin)
			v.bin = grown
		}
	default:
		panic(&KindError{Op: "jsondoc.Value.Reserve", Kind: v.kind})
	}
}

// Index returns the i-th element of an array node. It panics if the node is
// not an array or i is out of range.
func (v *Value) Index(i int) *Value {
	v.mustBe("jsondoc.Value.Index", KindArray)
	if i < 0 || i >= len(v.arr) {
		panic("jsondoc: array index out of range")
	}
	return v.arr[i]
}

// Front returns the first element of a non-empty array node.
func (v *Value) Front() *Value {
	v.mustBe("jsondoc.Value.Front", KindArray)
	if len(v.arr) == 0 {
		panic("jsondoc: array index out of range")
	}
	return v.arr[0]
}

// Back returns the last element of a non-empty array node.
func (v *Value) Back() *Value {
	v.mustBe("jsondoc.Value.Back", KindArray)
	if len(v.arr) == 0 {
		panic("jsondoc: array index out of range")
	}
	return v.arr[len(v.arr)-1]
}

// Append adds elements to the end of an array node. Nil elements become
// null nodes. It panics if the node is not an array.
func (v *Value) Append(elems ...*Value) {
	v.mustBe("jsondoc.Value.Append", KindArray)
	for _, e := range elems {
		if e == nil {
			e = &Value{}
		}
		v.arr = append(v.arr, e)
	}
}

// Elements returns the backing element slice of an array node. It panics if
// the node is not an array.
func (v *Value) Elements() []*Value {
	v.mustBe("jsondoc.Value.Elements", KindArray)
	return v.arr
}

// Field returns the value of the first field with the given key, appending
// a fresh null field when the key is absent. It panics if the node is not
// an object.
func (v *Value) Field(key string) *Value {
	v.mustBe("jsondoc.Value.Field", KindObject)
	for _, f := range v.obj {
		if f.Key == key {
			return f.Value
		}
	}
	nv := &Value{}
	v.obj = append(v.obj, Field{Key: key, Value: nv})
	return nv
}

// At returns the value of the first field with the given key. It panics if
// the node is not an object or the key is absent.
func (v *Value) At(key string) *Value {
	v.mustBe("jsondoc.Value.At", KindObject)
	for _, f := range v.obj {
		if f.Key == key {
			return f.Value
		}
	}
	panic(fmt.Sprintf("jsondoc: missing key %q", key))
}

// Lookup returns the value of the first field with the given key, if any.
// It panics if the node is not an object.
func (v *Value) Lookup(key string) (*Value, bool) {
	v.mustBe("jsondoc.Value.Lookup", KindObject)
	for _, f := range v.obj {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Contains reports whether an object node has a field with the given key.
// It panics if the node is not an object.
func (v *Value) Contains(key string) bool {
	v.mustBe("jsondoc.Value.Contains", KindObject)
	for _, f := range v.obj {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Fields returns the backing field slice of an object node. It panics if
// the node is not an object.
func (v *Value) Fields() []Field {
	v.mustBe("jsondoc.Value.Fields", KindObject)
	return v.obj
}

// Swap exchanges kind and payload between two nodes in O(1). Views into
// either payload stay valid and follow the payload to its new holder.
func (v *Value) Swap(o *Value) {
	v.kind, o.kind = o.kind, v.kind
	v.b, o.b = o.b, v.b
	v.i, o.i = o.i, v.i
	v.u, o.u = o.u, v.u
	v.f, o.f = o.f, v.f
	v.s, o.s = o.s, v.s
	v.arr, o.arr = o.arr, v.arr
	v.obj, o.obj = o.obj, v.obj
	v.bin, o.bin = o.bin, v.bin
}

// Clone returns a deep copy of the subtree rooted at v.
func (v *Value) Clone() *Value {
	c := &Value{kind: v.kind, b: v.b, i: v.i, u: v.u, f: v.f, s: v.s}
	switch v.kind {
	case KindArray:
		if v.arr != nil {
			c.arr = make([]*Value, len(v.arr))
			for i, e := range v.arr {
				c.arr[i] = e.Clone()
			}
		}
	case KindObject:
		if v.obj != nil {
			c.obj = make([]Field, len(v.obj))
			for i, f := range v.obj {
				c.obj[i] = Field{Key: f.Key, Value: f.Value.Clone()}
			}
		}
	case KindBinary:
		c.bin = bytes.Clone(v.bin)
	}
	return c
}
