package jsondoc

import (
	"bytes"
	"reflect"
)

// ValueUnmarshaler is implemented by types that decode themselves from a
// document node. It is the integration point for user-defined types in
// GetValue; implementations typically combine CheckObject/CheckArraySize
// with GetValueAt over their fields.
type ValueUnmarshaler interface {
	UnmarshalValue(v ConstView) error
}

// ValueMarshaler is implemented by types that encode themselves into a
// document node, the dual of ValueUnmarshaler for SetValue.
type ValueMarshaler interface {
	MarshalValue(v View) error
}

// GetValue reads the node referenced by v into out, which must be a pointer.
// Built-in destinations: all Go integer types (integral widening across the
// two integer kinds, silently truncating to narrower destinations), float32/
// float64 (numeric widening), bool, string, []byte (binary), *Value (deep
// copy), slices and fixed-size arrays of supported element types. Types
// implementing ValueUnmarshaler take precedence.
//
// Failures report a path-qualified *Error ("integer expected at /a/2") and
// leave scalar destinations unmodified. Sequence conversions stop at the
// first failing element and propagate its error unchanged; a fixed-size
// length mismatch is detected before any element is written.
func GetValue(v Viewer, out any) error {
	cv := v.Const()
	switch p := out.(type) {
	case ValueUnmarshaler:
		return p.UnmarshalValue(cv)
	case *bool:
		b, ok := cv.GetBoolean()
		if !ok {
			return NewError(cv, "boolean expected")
		}
		*p = b
	case *string:
		s, ok := cv.GetString()
		if !ok {
			return NewError(cv, "string expected")
		}
		*p = s
	case *int64:
		i, ok := cv.GetIntegral()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = i
	case *int:
		i, ok := cv.GetIntegral()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = int(i)
	case *int32:
		i, ok := cv.GetIntegral()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = int32(i)
	case *int16:
		i, ok := cv.GetIntegral()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = int16(i)
	case *int8:
		i, ok := cv.GetIntegral()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = int8(i)
	case *uint64:
		u, ok := cv.GetIntegralUnsigned()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = u
	case *uint:
		u, ok := cv.GetIntegralUnsigned()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = uint(u)
	case *uint32:
		u, ok := cv.GetIntegralUnsigned()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = uint32(u)
	case *uint16:
		u, ok := cv.GetIntegralUnsigned()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = uint16(u)
	case *uint8:
		u, ok := cv.GetIntegralUnsigned()
		if !ok {
			return NewError(cv, "integer expected")
		}
		*p = uint8(u)
	case *float64:
		f, ok := cv.GetNumber()
		if !ok {
			return NewError(cv, "number expected")
		}
		*p = f
	case *float32:
		f, ok := cv.GetNumber()
		if !ok {
			return NewError(cv, "number expected")
		}
		*p = float32(f)
	case *[]byte:
		b, ok := cv.GetBinary()
		if !ok {
			return NewError(cv, "binary expected")
		}
		*p = bytes.Clone(b)
	case **Value:
		if !cv.Valid() {
			return NewError(cv, "value expected")
		}
		*p = cv.target.Clone()
	default:
		return getValueReflect(cv, out)
	}
	return nil
}

// getValueReflect handles slice and fixed-size array destinations.
func getValueReflect(cv ConstView, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return NewError(cv, "unsupported type "+typeName(out))
	}
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Slice:
		if !cv.IsArray() {
			return NewError(cv, "array expected")
		}
		n := cv.ArrayLen()
		seq := reflect.MakeSlice(elem.Type(), n, n)
		for i := 0; i < n; i++ {
			if err := GetValue(cv.Element(i), seq.Index(i).Addr().Interface()); err != nil {
				return err
			}
		}
		elem.Set(seq)
		return nil
	case reflect.Array:
		if !cv.IsArray() {
			return NewError(cv, "array expected")
		}
		if cv.ArrayLen() != elem.Len() {
			return NewError(cv, "array size mismatched")
		}
		for i := 0; i < elem.Len(); i++ {
			if err := GetValue(cv.Element(i), elem.Index(i).Addr().Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return NewError(cv, "unsupported type "+typeName(out))
}

// SetValue stores a native value into the node referenced by v, re-typing
// it as needed. Built-in sources: all Go integer and float types, bool,
// string, []byte (binary), nil (null), *Value (deep copy), slices and
// fixed-size arrays of supported element types. Types implementing
// ValueMarshaler take precedence.
//
// The only built-in failure modes are writing through an invalid or stale
// view and unsupported source types; sequence stores propagate the first
// element failure.
func SetValue(v View, in any) error {
	switch x := in.(type) {
	case ValueMarshaler:
		return x.MarshalValue(v)
	case nil:
		if !v.SetNull() {
			return NewError(v.Const(), "null expected")
		}
	case bool:
		if !v.SetBoolean(x) {
			return NewError(v.Const(), "boolean expected")
		}
	case int:
		return setInteger(v, int64(x))
	case int8:
		return setInteger(v, int64(x))
	case int16:
		return setInteger(v, int64(x))
	case int32:
		return setInteger(v, int64(x))
	case int64:
		return setInteger(v, x)
	case uint:
		return setUnsigned(v, uint64(x))
	case uint8:
		return setUnsigned(v, uint64(x))
	case uint16:
		return setUnsigned(v, uint64(x))
	case uint32:
		return setUnsigned(v, uint64(x))
	case uint64:
		return setUnsigned(v, x)
	case float32:
		return setReal(v, float64(x))
	case float64:
		return setReal(v, x)
	case string:
		if !v.SetString(x) {
			return NewError(v.Const(), "string expected")
		}
	case []byte:
		if !v.SetBinary(x) {
			return NewError(v.Const(), "binary expected")
		}
	case *Value:
		if x == nil {
			if !v.SetNull() {
				return NewError(v.Const(), "null expected")
			}
			return nil
		}
		if !v.Valid() {
			return NewError(v.Const(), "value expected")
		}
		replaceNode(v.target, x.Clone())
	default:
		return setValueReflect(v, in)
	}
	return nil
}

func setInteger(v View, i int64) error {
	if !v.SetInteger(i) {
		return NewError(v.Const(), "integer expected")
	}
	return nil
}

func setUnsigned(v View, u uint64) error {
	if !v.SetUnsigned(u) {
		return NewError(v.Const(), "unsigned expected")
	}
	return nil
}

func setReal(v View, f float64) error {
	if !v.SetReal(f) {
		return NewError(v.Const(), "real expected")
	}
	return nil
}

// replaceNode installs src's kind and payload into dst, releasing dst's old
// payload and keeping dst's generation so existing views of dst stay valid.
func replaceNode(dst, src *Value) {
	dst.reset(KindNull)
	gen := dst.gen
	*dst = *src
	dst.gen = gen
}

// setValueReflect handles slice and fixed-size array sources.
func setValueReflect(v View, in any) error {
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		if !v.SetArraySize(n) {
			return NewError(v.Const(), "array expected")
		}
		for i := 0; i < n; i++ {
			if err := SetValue(v.Element(i), rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return NewError(v.Const(), "unsupported type "+typeName(in))
}

func typeName(x any) string {
	t := reflect.TypeOf(x)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
