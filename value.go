package json5

import (
	"errors"
	"fmt"
	"iter"
)

// ErrType indicates a [Value] was accessed as the wrong [Kind].
var ErrType = errors.New("json5: type error")

// Kind identifies which of the seven JSON5 value kinds a [Value] holds.
type Kind int8

// The seven kinds a [Value] can hold.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindArray
	KindObject

	numKinds
)

var kindStrings = [numKinds]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindStr:    "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns a short human-readable name for k.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Value is a JSON5 value: exactly one of null, bool, int, float, string,
// array, or object. The zero Value is null.
//
// Values returned by [Parse] own their children exclusively; there is no
// aliasing and no cycles. A Value is safe to read from multiple goroutines
// but must not be mutated (via its *Object) concurrently with reads.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null is the null Value.
var Null = Value{}

// NewBool returns a Bool Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewInt returns an Int Value.
func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

// NewFloat returns a Float Value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewStr returns a Str Value.
func NewStr(s string) Value { return Value{kind: KindStr, s: s} }

// NewArray returns an Array Value containing a copy of elems.
func NewArray(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// NewObject returns an Object Value wrapping obj. If obj is nil, an empty
// [Object] is allocated.
func NewObject(obj *Object) Value {
	if obj == nil {
		obj = NewObjectBuilder()
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

func typeErr(want Kind, v Value) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrType, want, v.kind)
}

// Bool returns v's boolean value, or [ErrType] if v is not a Bool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, typeErr(KindBool, v)
	}
	return v.b, nil
}

// Int returns v's integer value, or [ErrType] if v is not an Int.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, typeErr(KindInt, v)
	}
	return v.i, nil
}

// Float returns v's value as a float64. An Int is widened losslessly
// (up to the usual float64 precision limits); a Float is returned as-is.
// Returns [ErrType] for any other kind.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.i), nil
	case KindFloat:
		return v.f, nil
	}
	return 0, typeErr(KindFloat, v)
}

// Str returns v's string value, or [ErrType] if v is not a Str.
func (v Value) Str() (string, error) {
	if v.kind != KindStr {
		return "", typeErr(KindStr, v)
	}
	return v.s, nil
}

// Array returns v's elements, or [ErrType] if v is not an Array. The
// returned slice must not be mutated.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, typeErr(KindArray, v)
	}
	return v.arr, nil
}

// Object returns v's underlying [*Object], or [ErrType] if v is not an
// Object.
func (v Value) Object() (*Object, error) {
	if v.kind != KindObject {
		return nil, typeErr(KindObject, v)
	}
	return v.obj, nil
}

// Index returns the i'th element of v if v is an Array and i is in range,
// or the null Value otherwise. It never returns an error, making it
// convenient for chained navigation: v.Index(0).Get("name").
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Null
	}
	return v.arr[i]
}

// Get returns the value associated with key if v is an Object and key is
// present, or the null Value otherwise. It never returns an error, making
// it convenient for chained navigation: v.Get("users").Index(0).
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Null
	}
	val, ok := v.obj.Get(key)
	if !ok {
		return Null
	}
	return val
}

// Len returns the number of elements in v if v is an Array or the number of
// members if v is an Object, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// Equal reports whether v and other represent the same JSON5 value,
// including Array/Object member order. Recognized by [github.com/google/go-cmp/cmp]
// so that cmp.Diff(a, b) works directly on Values without exporting fields.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindStr:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	}
	return false
}

// objPair is one key/value member of an [Object], in insertion order.
type objPair struct {
	key string
	val Value
}

// Object is an ordered mapping from string keys to [Value]s. Insertion
// order is preserved; [Object.Set] on an existing key overwrites the value
// in place without moving the key, matching JSON5's last-write-wins
// duplicate-key semantics.
type Object struct {
	pairs []objPair
	index map[string]int
}

// NewObjectBuilder returns a new, empty [Object].
func NewObjectBuilder() *Object {
	return &Object{index: map[string]int{}}
}

// Set inserts or overwrites key's value. On an existing key the value is
// replaced but the key's position is unchanged, per the last-write-wins
// invariant.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.pairs[i].val = v
		return
	}
	o.index[key] = len(o.pairs)
	o.pairs = append(o.pairs, objPair{key: key, val: v})
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Null, false
	}
	return o.pairs[i].val, true
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.pairs) }

// Keys returns the member keys in insertion order. The returned slice must
// not be mutated.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.pairs))
	for i, p := range o.pairs {
		keys[i] = p.key
	}
	return keys
}

// All returns an iterator over o's key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range o.pairs {
			if !yield(p.key, p.val) {
				return
			}
		}
	}
}

// Equal reports whether o and other have the same keys, in the same
// order, with equal values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.pairs) != len(other.pairs) {
		return false
	}
	for i, p := range o.pairs {
		op := other.pairs[i]
		if p.key != op.key || !p.val.Equal(op.val) {
			return false
		}
	}
	return true
}
