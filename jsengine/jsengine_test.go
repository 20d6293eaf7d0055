//go:build js && wasm

package jsengine_test

import (
	"errors"
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veecore/leafgo"
	"github.com/veecore/leafgo/jsengine"
)

// A minimal stand-in for the page's Leaflet build.
const fakeLeaflet = `
globalThis.L = (function () {
	var calls = [];
	function Map() { this.layers = []; }
	Map.prototype.on = function (type, fn) { this['_' + type] = fn; return this; };
	Map.prototype.off = function (type) { delete this['_' + type]; return this; };
	Map.prototype.fire = function (type, data) {
		var fn = this['_' + type];
		if (fn) { data = data || {}; data.type = type; data.target = this; fn(data); }
		return this;
	};
	function Widget(opts) { this.options = opts || {}; }
	Widget.prototype.onAdd = function (map) {
		if (!(map instanceof Map)) { throw new Error('onAdd: argument is not a map'); }
		calls.push('onAdd');
		return { tagName: 'DIV' };
	};
	Widget.prototype.onRemove = function (map) { calls.push('onRemove'); };
	return { Map: Map, Control: Widget, calls: calls };
})();
`

func setup(t *testing.T) *jsengine.Engine {
	t.Helper()
	js.Global().Call("eval", fakeLeaflet)
	t.Cleanup(func() { js.Global().Delete("L") })

	e, err := jsengine.New()
	require.NoError(t, err)
	return e
}

func TestNewRequiresLeaflet(t *testing.T) {
	js.Global().Delete("L")
	_, err := jsengine.New()
	require.Error(t, err)
}

func TestNewUnknownClass(t *testing.T) {
	e := setup(t)
	_, err := e.New("L.Nope")
	require.True(t, leafgo.IsNativeCall(err))
}

func TestAttachDetach(t *testing.T) {
	e := setup(t)

	mv, err := e.New("L.Map")
	require.NoError(t, err)
	m, err := leafgo.WrapMap(e, mv)
	require.NoError(t, err)

	cv, err := e.New("L.Control", map[string]any{"position": "topleft"})
	require.NoError(t, err)
	c, err := leafgo.WrapControl(cv)
	require.NoError(t, err)

	el, err := c.AttachTo(m)
	require.NoError(t, err)
	require.NotNil(t, el)
	require.Equal(t, "DIV", el.Handle().Unwrap().Get("tagName").String())

	got, err := c.DetachFrom(m)
	require.NoError(t, err)
	require.Same(t, c, got)

	calls := js.Global().Get("L").Get("calls")
	require.Equal(t, 2, calls.Length())
	require.Equal(t, "onAdd", calls.Index(0).String())
	require.Equal(t, "onRemove", calls.Index(1).String())
}

func TestNativeErrorPropagates(t *testing.T) {
	e := setup(t)

	cv, err := e.New("L.Control")
	require.NoError(t, err)
	h, err := leafgo.Wrap(cv)
	require.NoError(t, err)

	_, err = h.Unwrap().Call("onAdd", "not a map")
	var nce *leafgo.NativeCallError
	require.ErrorAs(t, err, &nce)
	require.Equal(t, "onAdd", nce.Method)

	jsErr, ok := nce.Payload.(js.Error)
	require.True(t, ok)
	require.Contains(t, jsErr.Error(), "argument is not a map")
}

func TestEqualIsReferenceIdentity(t *testing.T) {
	e := setup(t)

	a, err := e.New("L.Control")
	require.NoError(t, err)
	b, err := e.New("L.Control")
	require.NoError(t, err)

	require.True(t, a.Equal(jsengine.ValueOf(mustJS(t, a))))
	require.False(t, a.Equal(b))
}

func TestExport(t *testing.T) {
	obj := js.ValueOf(map[string]any{
		"name":  "leafgo",
		"zoom":  3,
		"flags": []any{true, false},
		"fn":    js.Global().Get("Object"),
	})
	got := jsengine.ValueOf(obj).Export()
	require.Equal(t, map[string]any{
		"name":  "leafgo",
		"zoom":  float64(3),
		"flags": []any{true, false},
	}, got)
}

func TestFuncOfReceivesEvents(t *testing.T) {
	e := setup(t)

	mv, err := e.New("L.Map")
	require.NoError(t, err)
	m, err := leafgo.WrapMap(e, mv)
	require.NoError(t, err)

	var fired []string
	l, err := m.On("zoomend", func(ev *leafgo.Event) {
		fired = append(fired, ev.Type)
	})
	require.NoError(t, err)

	require.NoError(t, m.Fire("zoomend", nil))
	require.Equal(t, []string{"zoomend"}, fired)

	require.NoError(t, m.Off(l))
	require.NoError(t, m.Fire("zoomend", nil))
	require.Len(t, fired, 1)
}

func TestThrow(t *testing.T) {
	v := jsengine.Throw(errors.New("boom"))
	require.Equal(t, "boom", v.Get("message").String())
}

func mustJS(t *testing.T, v leafgo.Value) js.Value {
	t.Helper()
	jv, ok := jsengine.JSValue(v)
	require.True(t, ok)
	return jv
}

func TestMapFromGlobal(t *testing.T) {
	e := setup(t)
	js.Global().Call("eval", `globalThis.app = { map: new L.Map() };`)
	t.Cleanup(func() { js.Global().Delete("app") })

	m, err := e.MapFromGlobal("app.map")
	require.NoError(t, err)
	require.True(t, m.Handle().Unwrap().Equal(jsengine.ValueOf(js.Global().Get("app").Get("map"))))

	_, err = e.MapFromGlobal("app.missing")
	require.ErrorContains(t, err, "app.missing is not defined")
}
