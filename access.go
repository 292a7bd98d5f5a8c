package jsondoc

import "strconv"

// GetValueAt locates the element addressed by key — a field name or an
// array index — and reads it into out. Absent elements are reported against
// the container: "missing key <key>" or "index out of range <idx>"; element
// kind mismatches carry the element's own path.
func GetValueAt[K string | int](v Viewer, key K, out any) error {
	cv := v.Const()
	switch k := any(key).(type) {
	case string:
		if el := cv.Field(k); el.Valid() {
			return GetValue(el, out)
		}
		return NewError(cv, "missing key "+k)
	case int:
		if el := cv.Element(k); el.Valid() {
			return GetValue(el, out)
		}
		return NewError(cv, "index out of range "+strconv.Itoa(k))
	}
	return NewError(cv, "missing key")
}

// GetValueIf reads the field with the given key into out when present; an
// absent key in an object is success without writing, which distinguishes
// "key omitted" from "key present but wrong type".
func GetValueIf(v Viewer, key string, out any) error {
	cv := v.Const()
	if el := cv.Field(key); el.Valid() {
		return GetValue(el, out)
	}
	if cv.IsObject() {
		return nil
	}
	return NewError(cv, "object expected")
}

// SetValueAt stores into an existing element addressed by key — a field
// name or an array index. Unlike InsertValue it never creates the element:
// a miss reports "object expected" or "array expected" against the
// container.
func SetValueAt[K string | int](v View, key K, in any) error {
	switch k := any(key).(type) {
	case string:
		if el := v.Field(k); el.Valid() {
			return SetValue(el, in)
		}
		return NewError(v.Const(), "object expected")
	case int:
		if el := v.Element(k); el.Valid() {
			return SetValue(el, in)
		}
		return NewError(v.Const(), "array expected")
	}
	return NewError(v.Const(), "object expected")
}

// AppendValue appends a new element to an array node and stores in into it.
func AppendValue(v View, in any) error {
	el := v.AppendElement()
	if !el.Valid() {
		return NewError(v.Const(), "array expected")
	}
	return SetValue(el, in)
}

// InsertValue stores in under the given key of an object node, reusing the
// first existing field with that key or appending a new one.
func InsertValue(v View, key string, in any) error {
	el := v.InsertField(key)
	if !el.Valid() {
		return NewError(v.Const(), "object expected")
	}
	return SetValue(el, in)
}

// InsertValueIf is InsertValue except that writing is skipped entirely when
// val equals def, keeping serialized documents compact. The equality test
// runs before any shape check, so skipped writes succeed even on non-object
// views.
func InsertValueIf[T comparable](v View, key string, val, def T) error {
	if val == def {
		return nil
	}
	return InsertValue(v, key, val)
}

// AppendArray appends a fresh empty array to an array node and returns a
// view of it.
func AppendArray(v View) (View, error) {
	el := v.AppendElement()
	if !el.Valid() {
		return el, NewError(v.Const(), "array expected")
	}
	el.SetArray()
	return el, nil
}

// AppendObject appends a fresh empty object to an array node and returns a
// view of it.
func AppendObject(v View) (View, error) {
	el := v.AppendElement()
	if !el.Valid() {
		return el, NewError(v.Const(), "array expected")
	}
	el.SetObject()
	return el, nil
}

// InsertArray makes the field with the given key a fresh empty array and
// returns a view of it.
func InsertArray(v View, key string) (View, error) {
	el := v.InsertField(key)
	if !el.Valid() {
		return el, NewError(v.Const(), "object expected")
	}
	el.SetArray()
	return el, nil
}

// InsertObject makes the field with the given key a fresh empty object and
// returns a view of it.
func InsertObject(v View, key string) (View, error) {
	el := v.InsertField(key)
	if !el.Valid() {
		return el, NewError(v.Const(), "object expected")
	}
	el.SetObject()
	return el, nil
}

// CheckArray reports an error unless the view is an array, for user-defined
// conversions validating shape before decoding.
func CheckArray(v Viewer) error {
	cv := v.Const()
	if cv.IsArray() {
		return nil
	}
	return NewError(cv, "array expected")
}

// CheckArraySize reports an error unless the view is an array of exactly n
// elements.
func CheckArraySize(v Viewer, n int) error {
	cv := v.Const()
	if !cv.IsArray() {
		return NewError(cv, "array expected")
	}
	if cv.ArrayLen() != n {
		return NewError(cv, "array size mismatched")
	}
	return nil
}

// CheckObject reports an error unless the view is an object.
func CheckObject(v Viewer) error {
	cv := v.Const()
	if cv.IsObject() {
		return nil
	}
	return NewError(cv, "object expected")
}
