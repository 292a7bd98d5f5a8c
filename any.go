package jsondoc

import (
	"bytes"
	"fmt"
	"sort"

	j "github.com/goccy/go-json"
)

// ValueOf builds a tree from native Go data: nil, bool, the numeric kinds,
// string, []byte, json.Number, []any, map[string]any, and *Value (deep
// copied). Map keys are sorted so the resulting member order is
// deterministic.
func ValueOf(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return t.Clone(), nil
	case bool:
		return Boolean(t), nil
	case int:
		return Integer(int64(t)), nil
	case int8:
		return Integer(int64(t)), nil
	case int16:
		return Integer(int64(t)), nil
	case int32:
		return Integer(int64(t)), nil
	case int64:
		return Integer(t), nil
	case uint:
		return Unsigned(uint64(t)), nil
	case uint8:
		return Unsigned(uint64(t)), nil
	case uint16:
		return Unsigned(uint64(t)), nil
	case uint32:
		return Unsigned(uint64(t)), nil
	case uint64:
		return Unsigned(t), nil
	case float32:
		return Real(float64(t)), nil
	case float64:
		return Real(t), nil
	case string:
		return String(t), nil
	case []byte:
		return Binary(t), nil
	case j.Number:
		return numberValue(t)
	case []any:
		v := &Value{kind: KindArray, arr: make([]*Value, 0, len(t))}
		for _, e := range t {
			child, err := ValueOf(e)
			if err != nil {
				return nil, err
			}
			v.arr = append(v.arr, child)
		}
		return v, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		v := &Value{kind: KindObject, obj: make([]Field, 0, len(t))}
		for _, k := range keys {
			child, err := ValueOf(t[k])
			if err != nil {
				return nil, err
			}
			v.obj = append(v.obj, Field{Key: k, Value: child})
		}
		return v, nil
	}
	return nil, fmt.Errorf("jsondoc: cannot build value from %T", x)
}

// Interface converts the tree back to native Go data: nil, bool, int64,
// uint64, float64, string, []byte, []any, or map[string]any. Duplicate
// object keys collapse to the first occurrence.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBoolean:
		return v.b
	case KindInteger:
		return v.i
	case KindUnsigned:
		return v.u
	case KindReal:
		return v.f
	case KindString:
		return v.s
	case KindBinary:
		return bytes.Clone(v.bin)
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for _, f := range v.obj {
			if _, ok := out[f.Key]; !ok {
				out[f.Key] = f.Value.Interface()
			}
		}
		return out
	}
	return nil
}
