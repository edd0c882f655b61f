package driftsync

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull is the null variant. It is the zero value of Kind.
	KindNull Kind = iota
	// KindBool is the boolean variant.
	KindBool
	// KindNumber is the number variant (IEEE 754 double).
	KindNumber
	// KindString is the text variant.
	KindString
	// KindList is the ordered list variant.
	KindList
	// KindMap is the string-keyed map variant; key order is irrelevant.
	KindMap
)

// Value is the closed JSON-like variant accepted by the symmetric boxes:
// null, boolean, number, string, list, or map of string to Value. The zero
// Value is null.
//
// Values are serialized with CBOR core deterministic encoding before
// encryption, so two equal values always produce identical plaintext bytes
// regardless of map insertion order.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// List returns a list value holding the given items in order.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Map returns a map value. The entries map is used as-is; callers must not
// mutate it afterwards.
func Map(entries map[string]Value) Value {
	return Value{kind: KindMap, m: entries}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false if the value is not a boolean.
func (v Value) Bool() bool { return v.b }

// Number returns the number payload, or 0 if the value is not a number.
func (v Value) Number() float64 { return v.num }

// Text returns the string payload, or "" if the value is not a string.
func (v Value) Text() string { return v.str }

// List returns the list payload, or nil if the value is not a list.
func (v Value) List() []Value { return v.list }

// Map returns the map payload, or nil if the value is not a map.
func (v Value) Map() map[string]Value { return v.m }

// Equal reports whether two values are deeply equal. Lists compare by order,
// maps by key set, numbers by IEEE 754 equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, vv := range v.m {
			ov, ok := o.m[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

var (
	valueEncMode cbor.EncMode
	valueDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	valueEncMode = em

	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	valueDecMode = dm
}

// MarshalValue serializes a value with CBOR core deterministic encoding.
// The output is canonical: equal values marshal to identical bytes.
func MarshalValue(v Value) ([]byte, error) {
	return valueEncMode.Marshal(v.toInterface())
}

// UnmarshalValue parses canonical value bytes back into a Value. Input that
// is not well-formed CBOR, or that uses CBOR constructs outside the closed
// variant (tags, byte strings, non-string map keys), is an error.
func UnmarshalValue(data []byte) (Value, error) {
	var raw interface{}
	if err := valueDecMode.Unmarshal(data, &raw); err != nil {
		return Null(), fmt.Errorf("parse value: %w", err)
	}
	return valueFromInterface(raw)
}

func (v Value) toInterface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindList:
		items := make([]interface{}, len(v.list))
		for i, item := range v.list {
			items[i] = item.toInterface()
		}
		return items
	case KindMap:
		entries := make(map[string]interface{}, len(v.m))
		for k, item := range v.m {
			entries[k] = item.toInterface()
		}
		return entries
	default:
		return nil
	}
}

func valueFromInterface(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case string:
		return String(x), nil
	case []interface{}:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := valueFromInterface(item)
			if err != nil {
				return Null(), err
			}
			items[i] = v
		}
		return List(items...), nil
	case map[string]interface{}:
		entries := make(map[string]Value, len(x))
		for k, item := range x {
			v, err := valueFromInterface(item)
			if err != nil {
				return Null(), err
			}
			entries[k] = v
		}
		return Map(entries), nil
	default:
		return Null(), fmt.Errorf("parse value: unsupported payload type %T", raw)
	}
}
