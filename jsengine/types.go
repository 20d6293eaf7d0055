//go:build js && wasm

package jsengine

import (
	"fmt"
	"syscall/js"
)

// Type returns a global constructor by name.
func Type(name string) js.Value {
	return js.Global().Get(name)
}

var (
	jsArray      = Type("Array")
	jsObject     = Type("Object")
	jsString     = Type("String")
	objectKeysFn = jsObject.Get("keys")
)

// IsArray checks if a JS value is an array
// Equivalent to Array.isArray() in JavaScript
func IsArray(v js.Value) bool {
	return jsArray.Call("isArray", v).Bool()
}

// IsObject reports whether v can hold properties.
func IsObject(v js.Value) bool {
	return v.Type() == js.TypeObject || v.Type() == js.TypeFunction
}

// ObjectKeys returns the enumerable own properties of a JS object.
func ObjectKeys(v js.Value) []string {
	fs := objectKeysFn.Invoke(v)
	keys := make([]string, fs.Length())
	for i := 0; i < len(keys); i++ {
		keys[i] = fs.Index(i).String()
	}
	return keys
}

// toString is String(v) in JavaScript. js.Value.String only converts
// strings and describes everything else.
func toString(v js.Value) string {
	if v.Type() == js.TypeString {
		return v.String()
	}
	return jsString.Invoke(v).String()
}

var errorConstructor = Type("Error")

// Throw converts Go errors to JS exceptions. Use in function callbacks
// to propagate errors properly to JS.
func Throw(err error) js.Value {
	return errorConstructor.New(err.Error())
}

// recoverJS turns the panics syscall/js raises for JS exceptions into a
// payload. Other panics are not ours and keep unwinding.
func recoverJS(r any) (payload any) {
	switch e := r.(type) {
	case js.Error:
		return e
	case *js.Error:
		return *e
	case *js.ValueError:
		return e
	case string:
		return fmt.Errorf("%s", e)
	default:
		panic(r)
	}
}
