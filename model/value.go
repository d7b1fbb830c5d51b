package model

import (
	"fmt"

	"github.com/sysml-go/sysml-core/elementid"
)

// ValueKind tags the variant held by a [Value].
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueList
	ValueMap
	ValueReference
)

func (k ValueKind) String() string {
	switch k {
	case ValueNull:
		return "Null"
	case ValueBool:
		return "Bool"
	case ValueInt:
		return "Int"
	case ValueFloat:
		return "Float"
	case ValueString:
		return "String"
	case ValueList:
		return "List"
	case ValueMap:
		return "Map"
	case ValueReference:
		return "Reference"
	default:
		return "Unknown"
	}
}

// Value is the closed sum type held in an [Element]'s property bag:
// Null, Bool, Int, Float, String, List<Value>, Map<string,Value>, or a
// Reference to another element. Value is an immutable value type; List and
// Map accessors return defensive copies.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
	ref  elementid.ElementId
}

// Null is the Value representing the absence of a value.
var Null = Value{kind: ValueNull}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: ValueBool, b: b} }

// Int wraps a signed integer.
func Int(i int64) Value { return Value{kind: ValueInt, i: i} }

// Float wraps a floating-point number.
func Float(f float64) Value { return Value{kind: ValueFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: ValueString, s: s} }

// List wraps an ordered sequence of values. The slice is copied.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: ValueList, list: cp}
}

// Map wraps a string-keyed collection of values. The map is copied.
func Map(entries map[string]Value) Value {
	cp := make(map[string]Value, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return Value{kind: ValueMap, m: cp}
}

// Reference wraps a reference to another element by id.
func Reference(id elementid.ElementId) Value {
	return Value{kind: ValueReference, ref: id}
}

// Kind returns the variant tag held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.kind == ValueNull }

// AsBool returns the wrapped boolean and true, or (false, false) if v is not
// a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != ValueBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the wrapped integer and true, or (0, false) if v is not an
// Int.
func (v Value) AsInt() (int64, bool) {
	if v.kind != ValueInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the wrapped float and true, or (0, false) if v is not a
// Float.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != ValueFloat {
		return 0, false
	}
	return v.f, true
}

// AsString returns the wrapped string and true, or ("", false) if v is not
// a String.
func (v Value) AsString() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.s, true
}

// AsList returns a copy of the wrapped list and true, or (nil, false) if v
// is not a List.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != ValueList {
		return nil, false
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// AsMap returns a copy of the wrapped map and true, or (nil, false) if v is
// not a Map.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != ValueMap {
		return nil, false
	}
	cp := make(map[string]Value, len(v.m))
	for k, val := range v.m {
		cp[k] = val
	}
	return cp, true
}

// AsReference returns the wrapped element id and true, or (zero, false) if
// v is not a Reference.
func (v Value) AsReference() (elementid.ElementId, bool) {
	if v.kind != ValueReference {
		return elementid.ElementId{}, false
	}
	return v.ref, true
}

// String renders v for diagnostics and debugging; it is not a serialization
// format.
func (v Value) String() string {
	switch v.kind {
	case ValueNull:
		return "null"
	case ValueBool:
		return fmt.Sprintf("%t", v.b)
	case ValueInt:
		return fmt.Sprintf("%d", v.i)
	case ValueFloat:
		return fmt.Sprintf("%g", v.f)
	case ValueString:
		return fmt.Sprintf("%q", v.s)
	case ValueList:
		return fmt.Sprintf("list[%d]", len(v.list))
	case ValueMap:
		return fmt.Sprintf("map[%d]", len(v.m))
	case ValueReference:
		return "ref(" + v.ref.String() + ")"
	default:
		return "<invalid value>"
	}
}
