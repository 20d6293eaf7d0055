//go:build js && wasm

package jsengine

import (
	"fmt"
	"syscall/js"

	"github.com/veecore/leafgo"
)

// value is a leafgo.Value backed by a js.Value.
type value struct {
	v js.Value
}

var _ leafgo.Value = value{}

// ValueOf wraps a js.Value for use with leafgo.
func ValueOf(v js.Value) leafgo.Value {
	return value{v: v}
}

// JSValue returns the js.Value behind a leafgo.Value produced by this package.
func JSValue(v leafgo.Value) (js.Value, bool) {
	switch t := v.(type) {
	case value:
		return t.v, true
	case *fn:
		return t.f.Value, true
	}
	return js.Undefined(), false
}

func (v value) Get(name string) leafgo.Value {
	if !IsObject(v.v) {
		return value{v: js.Undefined()}
	}
	return value{v: v.v.Get(name)}
}

func (v value) Call(method string, args ...any) (ret leafgo.Value, err error) {
	jsArgs, err := toJSArgs(args)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			ret, err = nil, &leafgo.NativeCallError{Method: method, Payload: recoverJS(r)}
		}
	}()
	return value{v: v.v.Call(method, jsArgs...)}, nil
}

func (v value) Equal(other leafgo.Value) bool {
	o, ok := JSValue(other)
	if !ok || v.IsNullish() {
		return false
	}
	return v.v.Equal(o)
}

func (v value) IsNullish() bool {
	return v.v.IsNull() || v.v.IsUndefined()
}

func (v value) String() string {
	return toString(v.v)
}

func (v value) Export() any {
	return export(v.v, 0)
}

// fn is a Go callback registered with js.FuncOf.
type fn struct {
	f js.Func
}

var _ leafgo.Func = (*fn)(nil)

func (f *fn) val() value { return value{v: f.f.Value} }

func (f *fn) Get(name string) leafgo.Value { return f.val().Get(name) }

func (f *fn) Call(method string, args ...any) (leafgo.Value, error) {
	return f.val().Call(method, args...)
}

func (f *fn) Equal(other leafgo.Value) bool { return f.val().Equal(other) }

func (f *fn) IsNullish() bool { return false }

func (f *fn) String() string { return f.val().String() }

func (f *fn) Export() any { return nil }

func (f *fn) Release() { f.f.Release() }

func toJSArgs(args []any) (out []any, err error) {
	out = make([]any, len(args))
	for i, a := range args {
		if out[i], err = toJS(a); err != nil {
			return nil, fmt.Errorf("jsengine: argument %d: %w", i, err)
		}
	}
	return out, nil
}

// toJS converts bridge arguments. js.ValueOf only knows Go primitives and
// js.Value, so Values nested in maps and slices are unwrapped here.
func toJS(a any) (v js.Value, err error) {
	switch t := a.(type) {
	case nil:
		return js.Null(), nil
	case js.Value:
		return t, nil
	case js.Func:
		return t.Value, nil
	case leafgo.Value:
		jv, ok := JSValue(t)
		if !ok {
			return js.Undefined(), fmt.Errorf("value %T does not belong to this engine", a)
		}
		return jv, nil
	case leafgo.Handle:
		if !t.Valid() {
			return js.Undefined(), &leafgo.InvalidHandleError{Op: "argument"}
		}
		return toJS(t.Unwrap())
	case map[string]any:
		obj := jsObject.New()
		for k, el := range t {
			jv, err := toJS(el)
			if err != nil {
				return js.Undefined(), fmt.Errorf("%s: %w", k, err)
			}
			obj.Set(k, jv)
		}
		return obj, nil
	case []any:
		arr := jsArray.New(len(t))
		for i, el := range t {
			jv, err := toJS(el)
			if err != nil {
				return js.Undefined(), fmt.Errorf("[%d]: %w", i, err)
			}
			arr.SetIndex(i, jv)
		}
		return arr, nil
	}

	defer func() {
		if r := recover(); r != nil {
			v, err = js.Undefined(), fmt.Errorf("cannot convert %T: %v", a, r)
		}
	}()
	return js.ValueOf(a), nil
}
