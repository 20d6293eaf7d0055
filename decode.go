package leafgo

import (
	"fmt"
	"math"
	"reflect"
	"sync"
)

// Unmarshaler is the interface implemented by types that decode themselves
// from exported native data.
type Unmarshaler interface {
	UnmarshalLeaflet(data any) error
}

// Decode populates a Go value from data exported by Value.Export, with
// strict type checking, similar to JSON unmarshaling.
// Requires a non-nil pointer.
//
// Example:
//
//	var ll LatLng
//	err := Decode(marker.Get("_latlng").Export(), &ll)
//
// Gotchas:
// - Numeric overflow and fractional values for integers return error
// - null converts to Go zero values
// - Unknown object keys are ignored
func Decode(data any, goVal any) error {
	rVal := reflect.ValueOf(goVal)
	if rVal.Kind() != reflect.Pointer || rVal.IsNil() {
		return fmt.Errorf("leafgo: cannot decode into non/nil pointer")
	}
	ctx := decodeContextPool.Get().(*contextD)
	defer func() {
		ctx.depth = 0
		decodeContextPool.Put(ctx)
	}()
	if err := decode(ctx, data, rVal.Elem()); err != nil {
		return fmt.Errorf("leafgo: %w", err)
	}
	return nil
}

// DecodeValue exports v and decodes it into goVal.
func DecodeValue(v Value, goVal any) error {
	if v == nil || v.IsNullish() {
		return Decode(nil, goVal)
	}
	return Decode(v.Export(), goVal)
}

// Exported data is a tree, so there is no cycle to track, only runaway depth.
const maxDecodeDepth = 1000

type contextD struct {
	depth uint
}

var decodeContextPool = sync.Pool{
	New: func() any {
		return &contextD{}
	},
}

type decoderFunc func(*contextD, any, reflect.Value) error

var unmarshalerType = reflect.TypeFor[Unmarshaler]()

func decode(ctx *contextD, data any, goVal reflect.Value) error {
	if ctx.depth++; ctx.depth > maxDecodeDepth {
		return fmt.Errorf("exceeded max depth decoding %v", goVal.Type())
	}
	defer func() { ctx.depth-- }()

	if goVal.CanAddr() && reflect.PointerTo(goVal.Type()).Implements(unmarshalerType) {
		return goVal.Addr().Interface().(Unmarshaler).UnmarshalLeaflet(data)
	}

	if un, ok := isCanonUnmarshal(goVal.Type()); ok {
		if data == nil {
			goVal.SetZero()
			return nil
		}
		return un(ctx, data, goVal)
	}

	if data == nil {
		switch goVal.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Struct:
			goVal.SetZero()
			return nil
		default:
			return fmt.Errorf("cannot set %v to null", goVal.Kind())
		}
	}

	switch goVal.Kind() {
	case reflect.Pointer:
		if goVal.IsNil() {
			goVal.Set(reflect.New(goVal.Type().Elem()))
		}
		return decode(ctx, data, goVal.Elem())
	case reflect.Interface:
		if goVal.NumMethod() > 0 {
			return errTypeMismatch(data, goVal.Type())
		}
		goVal.Set(reflect.ValueOf(data))
		return nil
	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return errTypeMismatch(data, goVal.Type())
		}
		goVal.SetBool(b)
	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return errTypeMismatch(data, goVal.Type())
		}
		goVal.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return decodeNumber(data, goVal)
	case reflect.Slice, reflect.Array:
		arr, ok := data.([]any)
		if !ok {
			return errTypeMismatch(data, goVal.Type())
		}
		if goVal.Kind() == reflect.Slice {
			goVal.Set(reflect.MakeSlice(goVal.Type(), len(arr), len(arr)))
		} else if goVal.Len() != len(arr) {
			return fmt.Errorf("native array length %d does not match Go array length %d", len(arr), goVal.Len())
		}
		for i, e := range arr {
			if err := decode(ctx, e, goVal.Index(i)); err != nil {
				return fmt.Errorf("%v[%d]: %w", goVal.Type(), i, err)
			}
		}
	case reflect.Map:
		obj, ok := data.(map[string]any)
		if !ok || goVal.Type().Key().Kind() != reflect.String {
			return errTypeMismatch(data, goVal.Type())
		}
		if goVal.IsNil() {
			goVal.Set(reflect.MakeMapWithSize(goVal.Type(), len(obj)))
		}
		for k, e := range obj {
			elem := reflect.New(goVal.Type().Elem()).Elem()
			if err := decode(ctx, e, elem); err != nil {
				return fmt.Errorf("%v[%s]: %w", goVal.Type(), k, err)
			}
			goVal.SetMapIndex(reflect.ValueOf(k).Convert(goVal.Type().Key()), elem)
		}
	case reflect.Struct:
		obj, ok := data.(map[string]any)
		if !ok {
			return errTypeMismatch(data, goVal.Type())
		}
		return decodeStructFields(ctx, obj, goVal)
	default:
		return errTypeMismatch(data, goVal.Type())
	}
	return nil
}

func decodeStructFields(ctx *contextD, obj map[string]any, goVal reflect.Value) error {
	info := getCachedFields(goVal.Type())
	for key, e := range obj {
		f, ok := info.byName[key]
		if !ok {
			continue
		}
		fv := fieldByIndexAlloc(goVal, f.index)
		if err := decode(ctx, e, fv); err != nil {
			return fmt.Errorf("%v: %s: %w", goVal.Type(), f.tag.name, err)
		}
	}
	return nil
}

func errTypeMismatch(data any, goType reflect.Type) error {
	return fmt.Errorf("type mismatch: cannot decode native %T into go type %v", data, goType)
}

func errOverflow(v any, t reflect.Type) error {
	return fmt.Errorf("%v overflows %v", v, t)
}

// asFloat normalises the numeric types engines export.
func asFloat(data any) (float64, bool) {
	switch n := data.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func decodeNumberInto(data any, out *float64) error {
	return decodeNumber(data, reflect.ValueOf(out).Elem())
}

func decodeNumber(data any, goVal reflect.Value) error {
	num, ok := asFloat(data)
	if !ok {
		return errTypeMismatch(data, goVal.Type())
	}
	switch {
	case goVal.CanInt():
		if math.IsNaN(num) || math.Trunc(num) != num {
			return fmt.Errorf("cannot convert float %v to integer", num)
		}
		if goVal.OverflowInt(int64(num)) {
			return errOverflow(num, goVal.Type())
		}
		goVal.SetInt(int64(num))
	case goVal.CanUint():
		if num < 0 || math.Trunc(num) != num {
			return fmt.Errorf("cannot convert float %v to unsigned integer", num)
		}
		if goVal.OverflowUint(uint64(num)) {
			return errOverflow(num, goVal.Type())
		}
		goVal.SetUint(uint64(num))
	case goVal.CanFloat():
		if goVal.OverflowFloat(num) {
			return errOverflow(num, goVal.Type())
		}
		goVal.SetFloat(num)
	default:
		return errTypeMismatch(data, goVal.Type())
	}
	return nil
}
