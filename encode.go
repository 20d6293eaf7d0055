package leafgo

import (
	"fmt"
	"reflect"
	"sync"
)

// Marshaler is the interface implemented by types that translate themselves
// into engine arguments.
//
// Example:
//
//	type Position string
//	func (p Position) MarshalLeaflet() (any, error) {
//	    return strings.ToLower(string(p)), nil
//	}
type Marshaler interface {
	MarshalLeaflet() (any, error)
}

// Encode converts a Go value into plain data every engine accepts as a call
// argument: map[string]any, []any, string, bool, int64, float64, nil, and
// Values passed through untouched. Proxies and Handles become their native
// reference.
//
// Example:
//
//	opts, err := Encode(&MarkerOptions{Title: "HQ", Draggable: true})
//	// map[string]any{"title": "HQ", "draggable": true}
//
// Gotchas:
// - Cyclic structures return error
// - Channels and functions are not supported; use Engine.FuncOf for callbacks
func Encode(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	ctx := encodeContextPool.Get().(*contextE)
	defer func() {
		ctx.ptrLevel = 0
		clear(ctx.seen)
		encodeContextPool.Put(ctx)
	}()
	rVal := reflect.ValueOf(v)
	out, err := getTypeEncoder(rVal.Type())(ctx, rVal)
	if err != nil {
		return nil, fmt.Errorf("leafgo: %w", err)
	}
	return out, nil
}

// encodeArgs encodes constructor arguments, leaving nil options out so the
// engine applies its defaults.
func encodeArgs(args ...any) ([]any, error) {
	out := make([]any, 0, len(args))
	for i, a := range args {
		if a == nil {
			continue
		}
		if rv := reflect.ValueOf(a); rv.Kind() == reflect.Pointer && rv.IsNil() {
			continue
		}
		enc, err := Encode(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, enc)
	}
	return out, nil
}

const startDetectingCyclesAfter = 1000

type contextE struct {
	ptrLevel uint
	seen     map[uintptr]struct{}
}

var encodeContextPool = sync.Pool{
	New: func() any {
		return &contextE{seen: make(map[uintptr]struct{})}
	},
}

type encoderFunc func(*contextE, reflect.Value) (any, error)

var encoderFuncCache sync.Map // map[reflect.Type]encoderFunc

var (
	marshalerType = reflect.TypeFor[Marshaler]()
	valueType     = reflect.TypeFor[Value]()
	proxyType     = reflect.TypeFor[Proxy]()
	handleType    = reflect.TypeFor[Handle]()
)

func getTypeEncoder(t reflect.Type) encoderFunc {
	if cached, ok := encoderFuncCache.Load(t); ok {
		return cached.(encoderFunc)
	}

	// To deal with recursive types, populate the map with an
	// indirect func before we build it. This type waits on the
	// real func (enc) to be ready and then calls it.
	var (
		wg  sync.WaitGroup
		enc encoderFunc
	)
	wg.Add(1)
	fi, loaded := encoderFuncCache.LoadOrStore(t, encoderFunc(func(ctx *contextE, rVal reflect.Value) (any, error) {
		wg.Wait()
		return enc(ctx, rVal)
	}))
	if loaded {
		return fi.(encoderFunc)
	}

	enc = newTypeEncoder(t)
	wg.Done()
	encoderFuncCache.Store(t, enc)
	return enc
}

func newTypeEncoder(t reflect.Type) encoderFunc {
	// Order matters: a proxy may also be a Marshaler, a Value is never re-encoded.
	switch {
	case t.Implements(valueType):
		return valueEncoder
	case t == handleType:
		return handleEncoder
	case t.Implements(proxyType):
		return proxyEncoder
	case t.Implements(marshalerType):
		return marshalerEncoder
	}
	if enc, ok := isCanonMarshal(t); ok {
		return enc
	}

	switch t.Kind() {
	case reflect.Bool:
		return boolEncoder
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intEncoder
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintEncoder
	case reflect.Float32, reflect.Float64:
		return floatEncoder
	case reflect.String:
		return stringEncoder
	case reflect.Interface:
		return interfaceEncoder
	case reflect.Pointer:
		return newPointerEncoder(t)
	case reflect.Slice, reflect.Array:
		return newSliceEncoder(t)
	case reflect.Map:
		return newMapEncoder(t)
	case reflect.Struct:
		return newStructEncoder(t)
	default:
		return unsupportedEncoder(t)
	}
}

func isNilRef(rVal reflect.Value) bool {
	switch rVal.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
		return rVal.IsNil()
	}
	return false
}

func valueEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	if isNilRef(rVal) {
		return nil, nil
	}
	return rVal.Interface().(Value), nil
}

func handleEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	h := rVal.Interface().(Handle)
	if !h.Valid() {
		return nil, &InvalidHandleError{Op: "encode"}
	}
	return h.Unwrap(), nil
}

func proxyEncoder(ctx *contextE, rVal reflect.Value) (any, error) {
	if isNilRef(rVal) {
		return nil, nil
	}
	return handleEncoder(ctx, reflect.ValueOf(rVal.Interface().(Proxy).Handle()))
}

func marshalerEncoder(ctx *contextE, rVal reflect.Value) (any, error) {
	if isNilRef(rVal) {
		return nil, nil
	}
	out, err := rVal.Interface().(Marshaler).MarshalLeaflet()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", rVal.Type(), err)
	}
	return out, nil
}

func boolEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	return rVal.Bool(), nil
}

func intEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	return rVal.Int(), nil
}

func uintEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	u := rVal.Uint()
	if u > 1<<53 {
		return nil, fmt.Errorf("%v overflows a native number", u)
	}
	return int64(u), nil
}

func floatEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	return rVal.Float(), nil
}

func stringEncoder(_ *contextE, rVal reflect.Value) (any, error) {
	return rVal.String(), nil
}

func interfaceEncoder(ctx *contextE, rVal reflect.Value) (any, error) {
	if rVal.IsNil() {
		return nil, nil
	}
	elem := rVal.Elem()
	return getTypeEncoder(elem.Type())(ctx, elem)
}

func newPointerEncoder(t reflect.Type) encoderFunc {
	elemEnc := getTypeEncoder(t.Elem())
	return func(ctx *contextE, rVal reflect.Value) (any, error) {
		if rVal.IsNil() {
			return nil, nil
		}
		if ctx.ptrLevel++; ctx.ptrLevel > startDetectingCyclesAfter {
			ptr := rVal.Pointer()
			if _, ok := ctx.seen[ptr]; ok {
				return nil, fmt.Errorf("encountered a cycle via %s", rVal.Type())
			}
			ctx.seen[ptr] = struct{}{}
			defer delete(ctx.seen, ptr)
		}
		defer func() { ctx.ptrLevel-- }()
		return elemEnc(ctx, rVal.Elem())
	}
}

func newSliceEncoder(t reflect.Type) encoderFunc {
	elemEnc := getTypeEncoder(t.Elem())
	return func(ctx *contextE, rVal reflect.Value) (any, error) {
		if rVal.Kind() == reflect.Slice && rVal.IsNil() {
			return nil, nil
		}
		out := make([]any, rVal.Len())
		for i := range out {
			v, err := elemEnc(ctx, rVal.Index(i))
			if err != nil {
				return nil, fmt.Errorf("%v[%d]: %w", t, i, err)
			}
			out[i] = v
		}
		return out, nil
	}
}

func newMapEncoder(t reflect.Type) encoderFunc {
	if t.Key().Kind() != reflect.String {
		return unsupportedEncoder(t)
	}
	elemEnc := getTypeEncoder(t.Elem())
	return func(ctx *contextE, rVal reflect.Value) (any, error) {
		if rVal.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rVal.Len())
		iter := rVal.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			v, err := elemEnc(ctx, iter.Value())
			if err != nil {
				return nil, fmt.Errorf("%v[%s]: %w", t, k, err)
			}
			out[k] = v
		}
		return out, nil
	}
}

func newStructEncoder(t reflect.Type) encoderFunc {
	info := getCachedFields(t)
	return func(ctx *contextE, rVal reflect.Value) (any, error) {
		out := make(map[string]any, len(info.list))
		for _, f := range info.list {
			fv, ok := fieldByIndex(rVal, f.index)
			if !ok {
				continue
			}
			if f.tag.omitempty && fv.IsZero() {
				continue
			}
			v, err := getTypeEncoder(f._type)(ctx, fv)
			if err != nil {
				return nil, fmt.Errorf("%v: %s: %w", t, f.tag.name, err)
			}
			out[f.tag.name] = v
		}
		return out, nil
	}
}

func unsupportedEncoder(t reflect.Type) encoderFunc {
	return func(*contextE, reflect.Value) (any, error) {
		return nil, fmt.Errorf("unsupported type %v", t)
	}
}
