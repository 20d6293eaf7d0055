package leafgo

//go:generate mockgen -source=value.go -destination=value_mock.go -package=leafgo

// Value is an opaque reference to an object owned by a native map engine.
//
// The Go side never inspects a Value directly: everything goes through
// explicit calls into the engine. Two Values reference the same native
// object iff Equal reports so.
type Value interface {
	// Get reads the named property. Missing properties yield a nullish Value.
	Get(name string) Value
	// Call invokes the named method with the native object as receiver.
	// Arguments may be Values, Funcs, Go primitives, []any or map[string]any.
	// A throwing method is reported as *NativeCallError.
	Call(method string, args ...any) (Value, error)
	// Equal reports native reference identity.
	Equal(other Value) bool
	// IsNullish reports whether the value is null or undefined.
	IsNullish() bool
	// String converts primitive values to their string form.
	String() string
	// Export copies the value into plain Go data
	// (map[string]any, []any, string, bool, float64/int64 or nil).
	Export() any
}

// Func is a Go callback living in the native engine.
// Release must be called once the engine can no longer invoke it.
type Func interface {
	Value
	Release()
}

// Engine is the native call surface the proxies are built on.
type Engine interface {
	// New constructs a native object from a dotted class path such as "L.Marker".
	New(class string, args ...any) (Value, error)
	// FuncOf exposes fn to the engine as a callable value.
	FuncOf(fn func(args []Value)) Func
}
