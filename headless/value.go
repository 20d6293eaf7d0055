package headless

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/veecore/leafgo"
)

// value is a leafgo.Value backed by a goja value of e's runtime.
type value struct {
	e *Engine
	v goja.Value
}

var _ leafgo.Value = (*value)(nil)

func (e *Engine) wrap(v goja.Value) *value {
	if v == nil {
		v = goja.Undefined()
	}
	return &value{e: e, v: v}
}

func isNullish(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}

func (v *value) Get(name string) leafgo.Value {
	if isNullish(v.v) {
		return v.e.wrap(goja.Undefined())
	}
	obj := v.v.ToObject(v.e.rt)
	return v.e.wrap(obj.Get(name))
}

func (v *value) Call(method string, args ...any) (leafgo.Value, error) {
	if isNullish(v.v) {
		return nil, &leafgo.NativeCallError{
			Method:  method,
			Payload: fmt.Errorf("cannot read properties of %s (reading '%s')", v.v, method),
		}
	}
	obj := v.v.ToObject(v.e.rt)
	fn, ok := goja.AssertFunction(obj.Get(method))
	if !ok {
		return nil, &leafgo.NativeCallError{
			Method:  method,
			Payload: fmt.Errorf("%s is not a function", method),
		}
	}
	jsArgs, err := v.e.toNativeArgs(args)
	if err != nil {
		return nil, err
	}
	ret, err := fn(obj, jsArgs...)
	if err != nil {
		return nil, nativeError(method, err)
	}
	return v.e.wrap(ret), nil
}

func (v *value) Equal(other leafgo.Value) bool {
	o, ok := unwrapValue(other)
	if !ok || o.e != v.e {
		return false
	}
	if isNullish(v.v) || isNullish(o.v) {
		return false
	}
	return v.v.StrictEquals(o.v)
}

func (v *value) IsNullish() bool {
	return isNullish(v.v)
}

func (v *value) String() string {
	if v.v == nil {
		return "undefined"
	}
	return v.v.String()
}

func (v *value) Export() any {
	if isNullish(v.v) {
		return nil
	}
	return v.v.Export()
}

// Native returns the underlying goja value.
func (v *value) Native() goja.Value { return v.v }

// fn is a Go callback exposed to the runtime.
type fn struct {
	value
	released bool
}

var _ leafgo.Func = (*fn)(nil)

func (f *fn) Release() {
	f.released = true
}

func unwrapValue(v leafgo.Value) (*value, bool) {
	switch t := v.(type) {
	case *value:
		return t, true
	case *fn:
		return &t.value, true
	}
	return nil, false
}

// nativeError converts a goja failure into the bridge error. JS exceptions
// are passed through as the payload.
func nativeError(method string, err error) error {
	var exc *goja.Exception
	if errors.As(err, &exc) {
		return &leafgo.NativeCallError{Method: method, Payload: exc}
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return &leafgo.NativeCallError{Method: method, Payload: interrupted}
	}
	return &leafgo.NativeCallError{Method: method, Payload: err}
}

// toNativeArgs converts call arguments, unwrapping Values recursively.
func (e *Engine) toNativeArgs(args []any) ([]goja.Value, error) {
	out := make([]goja.Value, len(args))
	for i, a := range args {
		v, err := e.toNative(a)
		if err != nil {
			return nil, fmt.Errorf("headless: argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (e *Engine) toNative(a any) (goja.Value, error) {
	switch t := a.(type) {
	case nil:
		return goja.Null(), nil
	case goja.Value:
		return t, nil
	case leafgo.Value:
		v, ok := unwrapValue(t)
		if !ok || v.e != e {
			return nil, fmt.Errorf("value %T does not belong to this engine", a)
		}
		return v.v, nil
	case leafgo.Handle:
		if !t.Valid() {
			return nil, &leafgo.InvalidHandleError{Op: "argument"}
		}
		return e.toNative(t.Unwrap())
	case map[string]any:
		obj := e.rt.NewObject()
		for k, el := range t {
			v, err := e.toNative(el)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			if err := obj.Set(k, v); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case []any:
		items := make([]any, len(t))
		for i, el := range t {
			v, err := e.toNative(el)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = v
		}
		return e.rt.NewArray(items...), nil
	default:
		return e.rt.ToValue(a), nil
	}
}
