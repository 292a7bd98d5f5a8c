package jsondoc_test

import (
	"errors"
	"testing"

	jsondoc "github.com/reoring/jsondoc"
)

func TestGetValueScalars(t *testing.T) {
	root := scalarDoc().View().Const()

	var i int64
	if err := jsondoc.GetValue(root.Field("i"), &i); err != nil || i != -3 {
		t.Fatalf("int64: %v, %d", err, i)
	}
	var u uint64
	if err := jsondoc.GetValue(root.Field("u"), &u); err != nil || u != 5 {
		t.Fatalf("uint64: %v, %d", err, u)
	}
	var f float64
	if err := jsondoc.GetValue(root.Field("r"), &f); err != nil || f != 1.5 {
		t.Fatalf("float64: %v, %v", err, f)
	}
	var b bool
	if err := jsondoc.GetValue(root.Field("b"), &b); err != nil || !b {
		t.Fatalf("bool: %v, %v", err, b)
	}
	var s string
	if err := jsondoc.GetValue(root.Field("s"), &s); err != nil || s != "hi" {
		t.Fatalf("string: %v, %q", err, s)
	}
	var bin []byte
	if err := jsondoc.GetValue(root.Field("bin"), &bin); err != nil || len(bin) != 2 {
		t.Fatalf("[]byte: %v, %v", err, bin)
	}
}

func TestGetValueBinaryIsACopy(t *testing.T) {
	doc := jsondoc.Binary([]byte{1, 2})
	var b []byte
	if err := jsondoc.GetValue(doc.View(), &b); err != nil {
		t.Fatalf("err: %v", err)
	}
	b[0] = 9
	if doc.Bytes()[0] != 1 {
		t.Fatalf("GetValue shared binary storage")
	}
}

func TestGetValueWidening(t *testing.T) {
	var i int64
	if err := jsondoc.GetValue(jsondoc.Unsigned(5).View(), &i); err != nil || i != 5 {
		t.Fatalf("unsigned into int64: %v, %d", err, i)
	}
	var u uint64
	if err := jsondoc.GetValue(jsondoc.Integer(5).View(), &u); err != nil || u != 5 {
		t.Fatalf("integer into uint64: %v, %d", err, u)
	}
	var f float64
	if err := jsondoc.GetValue(jsondoc.Integer(3).View(), &f); err != nil || f != 3 {
		t.Fatalf("integer into float64: %v, %v", err, f)
	}
	if err := jsondoc.GetValue(jsondoc.Unsigned(4).View(), &f); err != nil || f != 4 {
		t.Fatalf("unsigned into float64: %v, %v", err, f)
	}

	// Reals never narrow to integer destinations.
	if err := jsondoc.GetValue(jsondoc.Real(1.5).View(), &i); err == nil {
		t.Fatalf("real into int64 succeeded")
	}
}

func TestGetValueNarrowingTruncates(t *testing.T) {
	var n int8
	if err := jsondoc.GetValue(jsondoc.Integer(300).View(), &n); err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 44 {
		t.Fatalf("int8 = %d, want two's-complement truncation 44", n)
	}
	var u8 uint8
	if err := jsondoc.GetValue(jsondoc.Unsigned(300).View(), &u8); err != nil {
		t.Fatalf("err: %v", err)
	}
	if u8 != 44 {
		t.Fatalf("uint8 = %d", u8)
	}
}

func TestGetValueAllIntWidths(t *testing.T) {
	v := jsondoc.Unsigned(7).View()
	var (
		i   int
		i32 int32
		i16 int16
		u   uint
		u32 uint32
		u16 uint16
		f32 float32
	)
	for _, out := range []any{&i, &i32, &i16, &u, &u32, &u16, &f32} {
		if err := jsondoc.GetValue(v, out); err != nil {
			t.Fatalf("GetValue(%T): %v", out, err)
		}
	}
	if i != 7 || i32 != 7 || i16 != 7 || u != 7 || u32 != 7 || u16 != 7 || f32 != 7 {
		t.Fatalf("widths disagree: %d %d %d %d %d %d %v", i, i32, i16, u, u32, u16, f32)
	}
}

func TestGetValueErrors(t *testing.T) {
	doc := jsondoc.Object(jsondoc.F("a", jsondoc.Array(
		jsondoc.Integer(1), jsondoc.Integer(2), jsondoc.Object(jsondoc.F("b", jsondoc.String("x"))),
	)))
	view := doc.View().Const()

	var i int64
	err := jsondoc.GetValue(view.Field("a").Element(2).Field("b"), &i)
	if err == nil {
		t.Fatalf("expected error")
	}
	var de *jsondoc.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if de.Msg != "integer expected" || de.Path != "/a/2/b" {
		t.Fatalf("error = %q / %q", de.Msg, de.Path)
	}
	if got := err.Error(); got != "integer expected at /a/2/b" {
		t.Fatalf("rendered = %q", got)
	}

	var s string
	if err := jsondoc.GetValue(view.Field("a"), &s); err == nil || err.Error() != "string expected at /a" {
		t.Fatalf("string error = %v", err)
	}
	var b bool
	if err := jsondoc.GetValue(view.Field("a"), &b); err == nil || err.Error() != "boolean expected at /a" {
		t.Fatalf("bool error = %v", err)
	}
	var f float64
	if err := jsondoc.GetValue(view.Field("a").Element(2), &f); err == nil || err.Error() != "number expected at /a/2" {
		t.Fatalf("number error = %v", err)
	}
	var bin []byte
	if err := jsondoc.GetValue(view.Field("a"), &bin); err == nil || err.Error() != "binary expected at /a" {
		t.Fatalf("binary error = %v", err)
	}
}

func TestGetValueLeavesDestOnError(t *testing.T) {
	s := "before"
	if err := jsondoc.GetValue(jsondoc.Integer(1).View(), &s); err == nil {
		t.Fatalf("expected error")
	}
	if s != "before" {
		t.Fatalf("failed conversion modified dest: %q", s)
	}
}

func TestGetValueTree(t *testing.T) {
	doc := jsondoc.Object(jsondoc.F("a", jsondoc.Integer(1)))
	var out *jsondoc.Value
	if err := jsondoc.GetValue(doc.View(), &out); err != nil {
		t.Fatalf("err: %v", err)
	}
	out.At("a").SetInt(99)
	if doc.At("a").Int() != 1 {
		t.Fatalf("GetValue(**Value) shared the tree")
	}
}

func TestGetValueSlice(t *testing.T) {
	doc := jsondoc.Array(jsondoc.Integer(1), jsondoc.Unsigned(2), jsondoc.Integer(3))
	var out []int64
	if err := jsondoc.GetValue(doc.View(), &out); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("out = %v", out)
	}

	var ss []string
	doc2 := jsondoc.Array(jsondoc.String("a"), jsondoc.String("b"))
	if err := jsondoc.GetValue(doc2.View(), &ss); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(ss) != 2 || ss[1] != "b" {
		t.Fatalf("ss = %v", ss)
	}
}

func TestGetValueSliceElementError(t *testing.T) {
	doc := jsondoc.Array(jsondoc.Integer(1), jsondoc.String("x"), jsondoc.Integer(3))
	var out []int64
	err := jsondoc.GetValue(doc.View(), &out)
	if err == nil {
		t.Fatalf("expected element error")
	}
	// The failing element's own report comes through unchanged.
	if got := err.Error(); got != "integer expected at /1" {
		t.Fatalf("error = %q", got)
	}
}

func TestGetValueSliceShapeError(t *testing.T) {
	var out []int64
	err := jsondoc.GetValue(jsondoc.Object().View(), &out)
	if err == nil || err.Error() != "array expected at /" {
		t.Fatalf("error = %v", err)
	}
}

func TestGetValueFixedArray(t *testing.T) {
	doc := jsondoc.Array(jsondoc.Real(1), jsondoc.Real(2), jsondoc.Real(3))
	var out [3]float64
	if err := jsondoc.GetValue(doc.View(), &out); err != nil {
		t.Fatalf("err: %v", err)
	}
	if out != [3]float64{1, 2, 3} {
		t.Fatalf("out = %v", out)
	}
}

func TestGetValueFixedArraySizeMismatch(t *testing.T) {
	doc := jsondoc.Array(jsondoc.Integer(1), jsondoc.Integer(2))
	dst := [3]int64{9, 9, 9}
	err := jsondoc.GetValue(doc.View(), &dst)
	if err == nil || err.Error() != "array size mismatched at /" {
		t.Fatalf("error = %v", err)
	}
	if dst != [3]int64{9, 9, 9} {
		t.Fatalf("mismatch wrote into dest: %v", dst)
	}
}

func TestGetValueUnsupported(t *testing.T) {
	var m map[string]int64
	if err := jsondoc.GetValue(jsondoc.Object().View(), &m); err == nil {
		t.Fatalf("map destination succeeded")
	}
	if err := jsondoc.GetValue(jsondoc.Integer(1).View(), 42); err == nil {
		t.Fatalf("non-pointer destination succeeded")
	}
}

func TestSetValueScalars(t *testing.T) {
	doc := jsondoc.Null()
	view := doc.View()

	if err := jsondoc.SetValue(view, 42); err != nil || doc.Kind() != jsondoc.KindInteger || doc.Int() != 42 {
		t.Fatalf("int: %v, %v", err, doc.Kind())
	}
	if err := jsondoc.SetValue(view, uint8(5)); err != nil || doc.Kind() != jsondoc.KindUnsigned || doc.Uint() != 5 {
		t.Fatalf("uint8: %v, %v", err, doc.Kind())
	}
	if err := jsondoc.SetValue(view, 1.5); err != nil || doc.Kind() != jsondoc.KindReal || doc.Float() != 1.5 {
		t.Fatalf("float64: %v, %v", err, doc.Kind())
	}
	if err := jsondoc.SetValue(view, float32(0.5)); err != nil || doc.Float() != 0.5 {
		t.Fatalf("float32: %v", err)
	}
	if err := jsondoc.SetValue(view, true); err != nil || doc.Kind() != jsondoc.KindBoolean || !doc.Bool() {
		t.Fatalf("bool: %v, %v", err, doc.Kind())
	}
	if err := jsondoc.SetValue(view, "s"); err != nil || doc.Kind() != jsondoc.KindString || doc.String() != "s" {
		t.Fatalf("string: %v, %v", err, doc.Kind())
	}
	if err := jsondoc.SetValue(view, []byte{7}); err != nil || doc.Kind() != jsondoc.KindBinary {
		t.Fatalf("[]byte: %v, %v", err, doc.Kind())
	}
	if err := jsondoc.SetValue(view, nil); err != nil || doc.Kind() != jsondoc.KindNull {
		t.Fatalf("nil: %v, %v", err, doc.Kind())
	}
}

func TestSetValueTreeCopies(t *testing.T) {
	doc := jsondoc.Null()
	src := jsondoc.Array(jsondoc.Integer(1))
	if err := jsondoc.SetValue(doc.View(), src); err != nil {
		t.Fatalf("err: %v", err)
	}
	src.Index(0).SetInt(99)
	if doc.Index(0).Int() != 1 {
		t.Fatalf("SetValue shared the source tree")
	}

	var nilv *jsondoc.Value
	if err := jsondoc.SetValue(doc.View(), nilv); err != nil || doc.Kind() != jsondoc.KindNull {
		t.Fatalf("nil *Value: %v, %v", err, doc.Kind())
	}
}

func TestSetValueKeepsNodeViewsValid(t *testing.T) {
	doc := jsondoc.Null()
	view := doc.View()
	if err := jsondoc.SetValue(view, jsondoc.Object(jsondoc.F("a", jsondoc.Integer(1)))); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !view.Valid() {
		t.Fatalf("view of the written node went stale")
	}
	if got, ok := view.Const().Field("a").GetInteger(); !ok || got != 1 {
		t.Fatalf("read back %d, %v", got, ok)
	}
}

func TestSetValueSequences(t *testing.T) {
	doc := jsondoc.Null()
	if err := jsondoc.SetValue(doc.View(), []int{1, 2, 3}); err != nil {
		t.Fatalf("slice: %v", err)
	}
	if doc.Kind() != jsondoc.KindArray || doc.Len() != 3 || doc.Index(2).Int() != 3 {
		t.Fatalf("slice shape: %v len=%d", doc.Kind(), doc.Len())
	}

	if err := jsondoc.SetValue(doc.View(), [2]string{"a", "b"}); err != nil {
		t.Fatalf("array: %v", err)
	}
	if doc.Len() != 2 || doc.Index(1).String() != "b" {
		t.Fatalf("array shape: len=%d", doc.Len())
	}

	if err := jsondoc.SetValue(doc.View(), [][]int{{1}, {2, 3}}); err != nil {
		t.Fatalf("nested: %v", err)
	}
	if doc.Index(1).Len() != 2 {
		t.Fatalf("nested shape")
	}
}

func TestSetValueInvalidView(t *testing.T) {
	var dead jsondoc.View
	err := jsondoc.SetValue(dead, 42)
	if err == nil || err.Error() != "integer expected in json" {
		t.Fatalf("error = %v", err)
	}
	if err := jsondoc.SetValue(dead, "x"); err == nil {
		t.Fatalf("string into dead view succeeded")
	}
}

func TestSetValueUnsupported(t *testing.T) {
	doc := jsondoc.Null()
	if err := jsondoc.SetValue(doc.View(), map[string]int{}); err == nil {
		t.Fatalf("map source succeeded")
	}
}

// point carries its own conversion, exercising the interface hooks.
type point struct {
	X, Y int64
}

func (p *point) UnmarshalValue(v jsondoc.ConstView) error {
	if err := jsondoc.CheckObject(v); err != nil {
		return err
	}
	if err := jsondoc.GetValueAt(v, "x", &p.X); err != nil {
		return err
	}
	return jsondoc.GetValueAt(v, "y", &p.Y)
}

func (p point) MarshalValue(v jsondoc.View) error {
	if !v.SetObject() {
		return jsondoc.NewError(v.Const(), "object expected")
	}
	if err := jsondoc.InsertValue(v, "x", p.X); err != nil {
		return err
	}
	return jsondoc.InsertValue(v, "y", p.Y)
}

func TestConversionInterfaces(t *testing.T) {
	doc := jsondoc.Null()
	if err := jsondoc.SetValue(doc.View(), point{X: 1, Y: 2}); err != nil {
		t.Fatalf("MarshalValue: %v", err)
	}
	if doc.Kind() != jsondoc.KindObject || doc.At("x").Int() != 1 || doc.At("y").Int() != 2 {
		t.Fatalf("marshaled shape: %v", doc.Kind())
	}

	var p point
	if err := jsondoc.GetValue(doc.View(), &p); err != nil {
		t.Fatalf("UnmarshalValue: %v", err)
	}
	if p != (point{X: 1, Y: 2}) {
		t.Fatalf("p = %+v", p)
	}

	// Shape failures surface the hook's own error.
	err := jsondoc.GetValue(jsondoc.Integer(1).View(), &p)
	if err == nil || err.Error() != "object expected at /" {
		t.Fatalf("error = %v", err)
	}
}

func TestConversionInterfaceSlices(t *testing.T) {
	doc := jsondoc.Array()
	view := doc.View()
	if err := jsondoc.SetValue(view, []point{{1, 2}, {3, 4}}); err != nil {
		t.Fatalf("slice of marshalers: %v", err)
	}
	if doc.Len() != 2 || doc.Index(1).At("x").Int() != 3 {
		t.Fatalf("marshaled slice shape")
	}

	var ps []point
	if err := jsondoc.GetValue(view, &ps); err != nil {
		t.Fatalf("slice of unmarshalers: %v", err)
	}
	if len(ps) != 2 || ps[1] != (point{X: 3, Y: 4}) {
		t.Fatalf("ps = %+v", ps)
	}
}
