package leafgo

// Handle exclusively owns one native reference for the lifetime of the
// proxy built on it. It never copies the reference and has no mutators:
// all changes to the native object go through explicit engine calls.
//
// The zero Handle is invalid.
type Handle struct {
	v Value
}

// Wrap takes ownership of an existing native reference.
func Wrap(v Value) (Handle, error) {
	if v == nil || v.IsNullish() {
		return Handle{}, &InvalidHandleError{Op: "wrap"}
	}
	return Handle{v: v}, nil
}

// MustWrap is like Wrap but panics on an invalid reference.
func MustWrap(v Value) Handle {
	h, err := Wrap(v)
	if err != nil {
		panic(err)
	}
	return h
}

// Unwrap returns the native reference for passing back into engine calls.
func (h Handle) Unwrap() Value {
	return h.v
}

// Valid reports whether h holds a reference.
func (h Handle) Valid() bool {
	return h.v != nil
}

// Same reports whether both handles reference the same native object, as
// decided by the engine. Invalid handles are never the same as anything.
func (h Handle) Same(other Handle) bool {
	if h.v == nil || other.v == nil {
		return false
	}
	return h.v.Equal(other.v)
}

// call forwards a method call on the owned reference.
func (h Handle) call(method string, args ...any) (Value, error) {
	if h.v == nil {
		return nil, &InvalidHandleError{Op: method}
	}
	return h.v.Call(method, args...)
}

// get reads a property of the owned reference.
func (h Handle) get(name string) Value {
	if h.v == nil {
		return nil
	}
	return h.v.Get(name)
}

// String identifies the native object for logs. Leaflet objects are
// identified by their stamp.
func (h Handle) String() string {
	if h.v == nil {
		return "<invalid>"
	}
	if id := h.v.Get("_leaflet_id"); id != nil && !id.IsNullish() {
		return "L#" + id.String()
	}
	return h.v.String()
}
