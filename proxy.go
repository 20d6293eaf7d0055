package leafgo

import (
	"go.uber.org/zap"
)

const (
	methodOnAdd    = "onAdd"
	methodOnRemove = "onRemove"
)

// Proxy is any typed façade built on exactly one Handle.
type Proxy interface {
	Handle() Handle
}

// Attachable is the lifecycle contract shared by every map-bound proxy.
//
// AttachTo forwards to the native onAdd hook and returns the container the
// engine reports, or nil. DetachFrom forwards to onRemove and returns the
// receiver itself so calls can be chained. Neither de-duplicates: each call
// is forwarded again.
type Attachable interface {
	Proxy
	AttachTo(m *Map) (*Element, error)
	DetachFrom(m *Map) (Attachable, error)
}

// SameObject reports whether two proxies wrap the same native object.
// Proxies are never compared by Go identity.
func SameObject(a, b Proxy) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Handle().Same(b.Handle())
}

// Element is a DOM node handed back by the engine, typically a control's
// container. The engine owns it; the Go side never removes it.
type Element struct {
	handle Handle
}

// Handle returns the native node.
func (e *Element) Handle() Handle { return e.handle }

// ClassName returns the element's class attribute.
func (e *Element) ClassName() string {
	v := e.handle.get("className")
	if v == nil || v.IsNullish() {
		return ""
	}
	return v.String()
}

// elementOf wraps a container returned from the engine. Nullish results
// mean the object has no container.
func elementOf(v Value) *Element {
	h, err := Wrap(v)
	if err != nil {
		return nil
	}
	return &Element{handle: h}
}

// mapHandle validates the map argument of a lifecycle call.
func mapHandle(op string, m *Map) (Value, error) {
	if m == nil || !m.handle.Valid() {
		return nil, &InvalidHandleError{Op: op}
	}
	return m.handle.Unwrap(), nil
}

// forward performs one lifecycle call on p's native object with m's native
// object as the only argument. Native failures are returned unchanged.
func forward(method string, p Proxy, m *Map) (Value, error) {
	mv, err := mapHandle(method, m)
	if err != nil {
		return nil, err
	}
	h := p.Handle()
	countForward(method)
	Logger().Debug("forwarding lifecycle call",
		zap.String("method", method),
		zap.Stringer("object", h),
		zap.Stringer("map", m.handle))

	ret, err := h.call(method, mv)
	if err != nil {
		countNativeError(method)
		return nil, err
	}
	return ret, nil
}

// attach is the default AttachTo behaviour.
func attach(p Proxy, m *Map) (*Element, error) {
	ret, err := forward(methodOnAdd, p, m)
	if err != nil {
		return nil, err
	}
	return elementOf(ret), nil
}

// detach is the default DetachFrom behaviour, minus returning the receiver.
func detach(p Proxy, m *Map) error {
	_, err := forward(methodOnRemove, p, m)
	return err
}
