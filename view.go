package jsondoc

import "iter"

// ConstView is a read-only cursor into a Value tree: a target node paired
// with the root it was issued from, so that diagnostics can locate the
// target without parent links in the tree. Views are cheap values; copy
// them freely.
//
// A view may be invalid — the first-class "no such node" result of failed
// navigation. Every operation on an invalid view fails soft: predicates
// report false, reads report !ok, navigation returns another invalid view.
//
// A view turns stale when the node it references is released (its holder
// re-typed, or truncated away). Stale views behave exactly like invalid
// ones; they never observe freed state. Appending, growing and inserting
// do not invalidate existing views, node storage is pointer-stable.
type ConstView struct {
	target *Value
	root   *Value
	gen    uint32
}

// View is a ConstView that can also mutate its target.
type View struct {
	ConstView
}

// View returns a mutable view of v, treating v as its own root.
func (v *Value) View() View {
	if v == nil {
		return View{}
	}
	return View{ConstView{target: v, root: v, gen: v.gen}}
}

// Const returns the read-only widening of the view. ConstView returns
// itself, so both view flavors satisfy Viewer.
func (v ConstView) Const() ConstView { return v }

// Viewer is satisfied by View and ConstView; conversion entry points accept
// it so both flavors can be read from.
type Viewer interface {
	Const() ConstView
}

// Valid reports whether the view references a live node.
func (v ConstView) Valid() bool {
	return v.target != nil && v.gen == v.target.gen
}

// Kind returns the target's kind, or KindNull when the view is invalid.
func (v ConstView) Kind() Kind {
	if !v.Valid() {
		return KindNull
	}
	return v.target.kind
}

// IsNull reports a null kind. Note that invalid views report null too; use
// Valid to tell a null node from a dead cursor.
func (v ConstView) IsNull() bool     { return v.Kind() == KindNull }
func (v ConstView) IsInteger() bool  { return v.Kind() == KindInteger }
func (v ConstView) IsUnsigned() bool { return v.Kind() == KindUnsigned }
func (v ConstView) IsReal() bool     { return v.Kind() == KindReal }
func (v ConstView) IsBoolean() bool  { return v.Kind() == KindBoolean }
func (v ConstView) IsString() bool   { return v.Kind() == KindString }
func (v ConstView) IsArray() bool    { return v.Kind() == KindArray }
func (v ConstView) IsObject() bool   { return v.Kind() == KindObject }
func (v ConstView) IsBinary() bool   { return v.Kind() == KindBinary }

// IsIntegral reports a signed or unsigned integer kind.
func (v ConstView) IsIntegral() bool {
	k := v.Kind()
	return k == KindInteger || k == KindUnsigned
}

// IsNumber reports any numeric kind.
func (v ConstView) IsNumber() bool {
	k := v.Kind()
	return k == KindInteger || k == KindUnsigned || k == KindReal
}

// child issues a view of a node reached from v, keeping v's root.
func (v ConstView) child(t *Value) ConstView {
	return ConstView{target: t, root: v.root, gen: t.gen}
}

// dead returns an invalid view that still remembers v's root.
func (v ConstView) dead() ConstView {
	return ConstView{root: v.root}
}

// GetInteger returns the signed integer payload on an exact kind match.
func (v ConstView) GetInteger() (int64, bool) {
	if v.Valid() && v.target.kind == KindInteger {
		return v.target.i, true
	}
	return 0, false
}

// GetUnsigned returns the unsigned integer payload on an exact kind match.
func (v ConstView) GetUnsigned() (uint64, bool) {
	if v.Valid() && v.target.kind == KindUnsigned {
		return v.target.u, true
	}
	return 0, false
}

// GetReal returns the floating-point payload on an exact kind match.
func (v ConstView) GetReal() (float64, bool) {
	if v.Valid() && v.target.kind == KindReal {
		return v.target.f, true
	}
	return 0, false
}

// GetBoolean returns the boolean payload on an exact kind match.
func (v ConstView) GetBoolean() (bool, bool) {
	if v.Valid() && v.target.kind == KindBoolean {
		return v.target.b, true
	}
	return false, false
}

// GetString returns the string payload on an exact kind match.
func (v ConstView) GetString() (string, bool) {
	if v.Valid() && v.target.kind == KindString {
		return v.target.s, true
	}
	return "", false
}

// GetBinary returns the byte payload on an exact kind match. The slice is
// the node's backing storage; mutate the node through SetBinary only.
func (v ConstView) GetBinary() ([]byte, bool) {
	if v.Valid() && v.target.kind == KindBinary {
		return v.target.bin, true
	}
	return nil, false
}

// GetIntegral widens either integer kind to int64. JSON numbers are
// kind-ambiguous on the wire, so the widening getters exist alongside the
// strict ones. No range checks; out-of-range unsigned values wrap.
func (v ConstView) GetIntegral() (int64, bool) {
	if !v.Valid() {
		return 0, false
	}
	switch v.target.kind {
	case KindInteger:
		return v.target.i, true
	case KindUnsigned:
		return int64(v.target.u), true
	}
	return 0, false
}

// GetIntegralUnsigned widens either integer kind to uint64.
func (v ConstView) GetIntegralUnsigned() (uint64, bool) {
	if !v.Valid() {
		return 0, false
	}
	switch v.target.kind {
	case KindInteger:
		return uint64(v.target.i), true
	case KindUnsigned:
		return v.target.u, true
	}
	return 0, false
}

// GetNumber widens any numeric kind to float64.
func (v ConstView) GetNumber() (float64, bool) {
	if !v.Valid() {
		return 0, false
	}
	switch v.target.kind {
	case KindInteger:
		return float64(v.target.i), true
	case KindUnsigned:
		return float64(v.target.u), true
	case KindReal:
		return v.target.f, true
	}
	return 0, false
}

// Len returns the payload length of a sized node, 0 otherwise.
func (v ConstView) Len() int {
	if !v.Valid() {
		return 0
	}
	switch v.target.kind {
	case KindString:
		return len(v.target.s)
	case KindArray:
		return len(v.target.arr)
	case KindObject:
		return len(v.target.obj)
	case KindBinary:
		return len(v.target.bin)
	}
	return 0
}

// Empty reports whether a sized node has no entries; non-sized and invalid
// views count as empty.
func (v ConstView) Empty() bool {
	if !v.Valid() {
		return true
	}
	if !v.target.kind.sized() {
		return true
	}
	return v.Len() == 0
}

// ArrayLen returns the element count, 0 when the view is not an array.
func (v ConstView) ArrayLen() int {
	if v.Valid() && v.target.kind == KindArray {
		return len(v.target.arr)
	}
	return 0
}

// ArrayEmpty reports an empty array; false when the view is not an array.
func (v ConstView) ArrayEmpty() bool {
	if v.Valid() && v.target.kind == KindArray {
		return len(v.target.arr) == 0
	}
	return false
}

// ObjectLen returns the field count, 0 when the view is not an object.
func (v ConstView) ObjectLen() int {
	if v.Valid() && v.target.kind == KindObject {
		return len(v.target.obj)
	}
	return 0
}

// ObjectEmpty reports an empty object; true when the view is not an object.
func (v ConstView) ObjectEmpty() bool {
	if v.Valid() && v.target.kind == KindObject {
		return len(v.target.obj) == 0
	}
	return true
}

// HasElement reports whether index i is in range of an array view.
func (v ConstView) HasElement(i int) bool {
	return v.Valid() && v.target.kind == KindArray && i >= 0 && i < len(v.target.arr)
}

// Element returns a view of the i-th array element, invalid when out of
// range or not an array.
func (v ConstView) Element(i int) ConstView {
	if !v.HasElement(i) {
		return v.dead()
	}
	return v.child(v.target.arr[i])
}

// HasField reports whether an object view has a field with the given key.
func (v ConstView) HasField(key string) bool {
	return v.Field(key).Valid()
}

// Field returns a view of the first field with the given key, invalid when
// absent or not an object.
func (v ConstView) Field(key string) ConstView {
	if !v.Valid() || v.target.kind != KindObject {
		return v.dead()
	}
	for _, f := range v.target.obj {
		if f.Key == key {
			return v.child(f.Value)
		}
	}
	return v.dead()
}

// Elements returns a lazy sequence of element views over the storage
// snapshot taken at call time. Re-ranging restarts over the same snapshot.
// Empty for non-arrays. Mutating the array while iterating is a caller
// error; released elements yield stale views.
func (v ConstView) Elements() iter.Seq[ConstView] {
	var elems []*Value
	if v.Valid() && v.target.kind == KindArray {
		elems = v.target.arr
	}
	return func(yield func(ConstView) bool) {
		for _, e := range elems {
			if !yield(v.child(e)) {
				return
			}
		}
	}
}

// Fields returns a lazy sequence of (key, view) pairs in storage order over
// the snapshot taken at call time. Empty for non-objects.
func (v ConstView) Fields() iter.Seq2[string, ConstView] {
	var fields []Field
	if v.Valid() && v.target.kind == KindObject {
		fields = v.target.obj
	}
	return func(yield func(string, ConstView) bool) {
		for _, f := range fields {
			if !yield(f.Key, v.child(f.Value)) {
				return
			}
		}
	}
}

// child and dead, mutable flavor.

func (v View) childV(t *Value) View { return View{v.ConstView.child(t)} }
func (v View) deadV() View          { return View{v.ConstView.dead()} }

// SetKind re-types the target, releasing its payload. False when the view
// is invalid. Views of the target itself stay valid; views into a released
// container payload turn stale.
func (v View) SetKind(k Kind) bool {
	if !v.Valid() {
		return false
	}
	v.target.reset(k)
	return true
}

// SetNull re-types the target to null.
func (v View) SetNull() bool { return v.SetKind(KindNull) }

// SetInteger stores a signed integer, re-typing the target.
func (v View) SetInteger(i int64) bool {
	if !v.Valid() {
		return false
	}
	v.target.SetInt(i)
	return true
}

// SetUnsigned stores an unsigned integer, re-typing the target.
func (v View) SetUnsigned(u uint64) bool {
	if !v.Valid() {
		return false
	}
	v.target.SetUint(u)
	return true
}

// SetReal stores a floating-point number, re-typing the target.
func (v View) SetReal(f float64) bool {
	if !v.Valid() {
		return false
	}
	v.target.SetFloat(f)
	return true
}

// SetBoolean stores a boolean, re-typing the target.
func (v View) SetBoolean(b bool) bool {
	if !v.Valid() {
		return false
	}
	v.target.SetBool(b)
	return true
}

// SetString stores a string, re-typing the target.
func (v View) SetString(s string) bool {
	if !v.Valid() {
		return false
	}
	v.target.SetString(s)
	return true
}

// SetBinary stores a copy of b, re-typing the target to binary.
func (v View) SetBinary(b []byte) bool {
	if !v.Valid() {
		return false
	}
	v.target.SetBytes(b)
	return true
}

// SetArray re-types the target to an empty array.
func (v View) SetArray() bool { return v.SetKind(KindArray) }

// SetArraySize re-types the target to an array of n null nodes.
func (v View) SetArraySize(n int) bool {
	return v.SetArray() && v.ResizeArray(n)
}

// SetObject re-types the target to an empty object.
func (v View) SetObject() bool { return v.SetKind(KindObject) }

// Resize adjusts the length of a string, array or binary target. False for
// other kinds, invalid views and negative lengths.
func (v View) Resize(n int) bool {
	if !v.Valid() || n < 0 {
		return false
	}
	switch v.target.kind {
	case KindString, KindArray, KindBinary:
		v.target.Resize(n)
		return true
	}
	return false
}

// ResizeArray adjusts the element count of an array target; truncated
// elements are released.
func (v View) ResizeArray(n int) bool {
	if !v.Valid() || n < 0 || v.target.kind != KindArray {
		return false
	}
	v.target.Resize(n)
	return true
}

// Reserve pre-allocates storage of a sized target. False for other kinds.
func (v View) Reserve(n int) bool {
	if !v.Valid() || n < 0 || !v.target.kind.sized() {
		return false
	}
	v.target.Reserve(n)
	return true
}

// Element returns a mutable view of the i-th array element, invalid when
// out of range or not an array.
func (v View) Element(i int) View {
	if !v.HasElement(i) {
		return v.deadV()
	}
	return v.childV(v.target.arr[i])
}

// Field returns a mutable view of the first field with the given key,
// invalid when absent or not an object.
func (v View) Field(key string) View {
	if !v.Valid() || v.target.kind != KindObject {
		return v.deadV()
	}
	for _, f := range v.target.obj {
		if f.Key == key {
			return v.childV(f.Value)
		}
	}
	return v.deadV()
}

// AppendElement grows an array target by one null node and returns a view
// of it. Existing element views stay valid. Invalid when not an array.
func (v View) AppendElement() View {
	if !v.Valid() || v.target.kind != KindArray {
		return v.deadV()
	}
	nv := &Value{}
	v.target.arr = append(v.target.arr, nv)
	return v.childV(nv)
}

// InsertField returns a view of the first field with the given key,
// appending a fresh null field when absent. Invalid when not an object.
func (v View) InsertField(key string) View {
	if !v.Valid() || v.target.kind != KindObject {
		return v.deadV()
	}
	for _, f := range v.target.obj {
		if f.Key == key {
			return v.childV(f.Value)
		}
	}
	nv := &Value{}
	v.target.obj = append(v.target.obj, Field{Key: key, Value: nv})
	return v.childV(nv)
}

// Elements returns a lazy sequence of mutable element views; see
// ConstView.Elements for the snapshot contract.
func (v View) Elements() iter.Seq[View] {
	var elems []*Value
	if v.Valid() && v.target.kind == KindArray {
		elems = v.target.arr
	}
	return func(yield func(View) bool) {
		for _, e := range elems {
			if !yield(v.childV(e)) {
				return
			}
		}
	}
}

// Fields returns a lazy sequence of (key, mutable view) pairs in storage
// order.
func (v View) Fields() iter.Seq2[string, View] {
	var fields []Field
	if v.Valid() && v.target.kind == KindObject {
		fields = v.target.obj
	}
	return func(yield func(string, View) bool) {
		for _, f := range fields {
			if !yield(f.Key, v.childV(f.Value)) {
				return
			}
		}
	}
}
