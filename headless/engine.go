// Package headless runs the leafgo bridge against an embedded JavaScript
// interpreter instead of a browser.
//
// The engine boots a headless subset of the Leaflet API (maps, controls,
// layers, events) on a goja runtime. Nothing is rendered, and every native
// onAdd/onRemove call is recorded so tests and tools can observe exactly
// what the bridge forwarded.
//
// An Engine is confined to one goroutine, like the browser event loop it
// stands in for. Native callbacks run synchronously inside the call that
// triggered them.
package headless

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/veecore/leafgo"
)

//go:embed leaflet.js
var leafletScript string

// Engine is a leafgo.Engine backed by goja.
type Engine struct {
	rt      *goja.Runtime
	logger  *zap.Logger
	scripts []script
	globals map[string]any
}

type script struct {
	name string
	src  string
}

var _ leafgo.Engine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes console output and engine diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScript runs src after the bundled Leaflet subset, e.g. to install a
// plugin or stub.
func WithScript(name, src string) Option {
	return func(e *Engine) {
		e.scripts = append(e.scripts, script{name: name, src: src})
	}
}

// WithGlobals defines extra global bindings before any script runs.
func WithGlobals(globals map[string]any) Option {
	return func(e *Engine) {
		for k, v := range globals {
			e.globals[k] = v
		}
	}
}

// New boots a runtime with the Leaflet subset loaded.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		rt:      goja.New(),
		logger:  zap.NewNop(),
		globals: make(map[string]any),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("headless")

	for k, v := range e.globals {
		if err := e.rt.Set(k, v); err != nil {
			return nil, fmt.Errorf("headless: set global %q: %w", k, err)
		}
	}
	if err := e.bindConsole(); err != nil {
		return nil, err
	}

	all := append([]script{{name: "leaflet.js", src: leafletScript}}, e.scripts...)
	for _, s := range all {
		if _, err := e.rt.RunScript(s.name, s.src); err != nil {
			return nil, fmt.Errorf("headless: run %s: %w", s.name, err)
		}
	}
	e.logger.Debug("engine ready", zap.Int("scripts", len(all)))
	return e, nil
}

// Runtime exposes the goja runtime.
func (e *Engine) Runtime() *goja.Runtime { return e.rt }

// New constructs a native object: `new <class>(args...)`.
func (e *Engine) New(class string, args ...any) (leafgo.Value, error) {
	op := "new " + class
	ctor, err := e.resolve(class)
	if err != nil {
		return nil, &leafgo.NativeCallError{Method: op, Payload: err}
	}
	jsArgs, err := e.toNativeArgs(args)
	if err != nil {
		return nil, err
	}
	obj, err := e.rt.New(ctor, jsArgs...)
	if err != nil {
		return nil, nativeError(op, err)
	}
	return e.wrap(obj), nil
}

// FuncOf exposes fn to the runtime. After Release the function stays
// callable from JavaScript but no longer reaches fn.
func (e *Engine) FuncOf(cb func(args []leafgo.Value)) leafgo.Func {
	f := &fn{}
	native := e.rt.ToValue(func(call goja.FunctionCall) goja.Value {
		if f.released {
			e.logger.Debug("call to released func dropped")
			return goja.Undefined()
		}
		args := make([]leafgo.Value, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = e.wrap(a)
		}
		cb(args)
		return goja.Undefined()
	})
	f.value = value{e: e, v: native}
	return f
}

// Global resolves a dotted path such as "L.Control.Zoom".
func (e *Engine) Global(path string) (leafgo.Value, error) {
	v, err := e.resolve(path)
	if err != nil {
		return nil, err
	}
	return e.wrap(v), nil
}

// Eval runs src and returns its completion value.
func (e *Engine) Eval(src string) (leafgo.Value, error) {
	v, err := e.rt.RunString(src)
	if err != nil {
		return nil, nativeError("eval", err)
	}
	return e.wrap(v), nil
}

func (e *Engine) resolve(path string) (goja.Value, error) {
	parts := strings.Split(path, ".")
	cur := e.rt.Get(parts[0])
	for i := 0; ; i++ {
		if isNullish(cur) {
			return nil, fmt.Errorf("%s is not defined", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return cur, nil
		}
		cur = cur.ToObject(e.rt).Get(parts[i+1])
	}
}

// Call is one lifecycle call the native side received.
type Call struct {
	Method string `leaflet:"method"`
	Object int64  `leaflet:"object"`
	Map    int64  `leaflet:"map"`
}

// Calls returns the onAdd/onRemove calls recorded so far, oldest first.
func (e *Engine) Calls() ([]Call, error) {
	v, err := e.resolve("L._calls")
	if err != nil {
		return nil, err
	}
	var calls []Call
	if err := leafgo.Decode(v.Export(), &calls); err != nil {
		return nil, err
	}
	return calls, nil
}

// ResetCalls clears the call record.
func (e *Engine) ResetCalls() error {
	_, err := e.rt.RunString("L._calls.length = 0")
	return err
}

// Stamp returns the Leaflet id of v, assigning one if needed.
func (e *Engine) Stamp(v leafgo.Value) (int64, error) {
	l, err := e.Global("L")
	if err != nil {
		return 0, err
	}
	id, err := l.Call("stamp", v)
	if err != nil {
		return 0, err
	}
	var n int64
	err = leafgo.DecodeValue(id, &n)
	return n, err
}
