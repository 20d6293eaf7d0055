//go:build js && wasm

// Package jsengine implements the leafgo native interfaces on syscall/js,
// against the Leaflet build loaded in the page.
package jsengine

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/veecore/leafgo"
)

// Engine is a leafgo.Engine over the page's global scope.
type Engine struct {
	global js.Value
}

var _ leafgo.Engine = (*Engine)(nil)

// New returns an engine bound to the page. It fails when Leaflet is not
// loaded.
func New() (*Engine, error) {
	e := &Engine{global: js.Global()}
	if _, err := e.resolve("L"); err != nil {
		return nil, fmt.Errorf("jsengine: leaflet not loaded: %w", err)
	}
	return e, nil
}

// New constructs a native object: `new <class>(args...)`.
func (e *Engine) New(class string, args ...any) (ret leafgo.Value, err error) {
	op := "new " + class
	ctor, err := e.resolve(class)
	if err != nil {
		return nil, &leafgo.NativeCallError{Method: op, Payload: err}
	}
	jsArgs, err := toJSArgs(args)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			ret, err = nil, &leafgo.NativeCallError{Method: op, Payload: recoverJS(r)}
		}
	}()
	return value{v: ctor.New(jsArgs...)}, nil
}

// FuncOf exposes cb to JavaScript. The returned Func must be released once
// JavaScript can no longer call it.
func (e *Engine) FuncOf(cb func(args []leafgo.Value)) leafgo.Func {
	return &fn{f: js.FuncOf(func(this js.Value, args []js.Value) any {
		vals := make([]leafgo.Value, len(args))
		for i, a := range args {
			vals[i] = value{v: a}
		}
		cb(vals)
		return nil
	})}
}

// Global resolves a dotted path such as "L.Control.Zoom".
func (e *Engine) Global(path string) (leafgo.Value, error) {
	v, err := e.resolve(path)
	if err != nil {
		return nil, err
	}
	return value{v: v}, nil
}

// MapFromGlobal wraps an existing native map the page stored under a global path.
func (e *Engine) MapFromGlobal(path string) (*leafgo.Map, error) {
	v, err := e.resolve(path)
	if err != nil {
		return nil, err
	}
	return leafgo.WrapMap(e, value{v: v})
}

func (e *Engine) resolve(path string) (js.Value, error) {
	parts := strings.Split(path, ".")
	cur := e.global
	for i, p := range parts {
		if !IsObject(cur) {
			return js.Undefined(), fmt.Errorf("%s is not defined", strings.Join(parts[:i], "."))
		}
		cur = cur.Get(p)
		if cur.IsUndefined() || cur.IsNull() {
			return js.Undefined(), fmt.Errorf("%s is not defined", strings.Join(parts[:i+1], "."))
		}
	}
	return cur, nil
}
