package leafgo

import (
	"fmt"
	"reflect"
)

var (
	latLngType = reflect.TypeFor[LatLng]()
	boundsType = reflect.TypeFor[Bounds]()
)

// Geographic types have a canonical native shape that differs from their
// field layout: the engine takes arrays but hands objects back.
var (
	canonMarshals = map[reflect.Type]encoderFunc{
		latLngType: func(_ *contextE, rVal reflect.Value) (any, error) {
			ll := rVal.Interface().(LatLng)
			return []any{ll.Lat, ll.Lng}, nil
		},
		boundsType: func(_ *contextE, rVal reflect.Value) (any, error) {
			b := rVal.Interface().(Bounds)
			return []any{
				[]any{b.SouthWest.Lat, b.SouthWest.Lng},
				[]any{b.NorthEast.Lat, b.NorthEast.Lng},
			}, nil
		},
	}
)

func isCanonMarshal(t reflect.Type) (encoderFunc, bool) {
	m, ok := canonMarshals[t]
	return m, ok
}

// isCanonUnmarshal switches instead of indexing a table: the decoders call
// back into decode, and a package-level table would be an initialization cycle.
func isCanonUnmarshal(t reflect.Type) (decoderFunc, bool) {
	switch t {
	case latLngType:
		return latLngUnmarshal, true
	case boundsType:
		return boundsUnmarshal, true
	}
	return nil, false
}

// latLngUnmarshal accepts both {lat, lng} objects and [lat, lng] arrays.
func latLngUnmarshal(ctx *contextD, data any, goVal reflect.Value) error {
	var ll LatLng
	switch d := data.(type) {
	case []any:
		if len(d) < 2 {
			return fmt.Errorf("latlng array needs 2 elements, got %d", len(d))
		}
		if err := decodeNumberInto(d[0], &ll.Lat); err != nil {
			return fmt.Errorf("lat: %w", err)
		}
		if err := decodeNumberInto(d[1], &ll.Lng); err != nil {
			return fmt.Errorf("lng: %w", err)
		}
	case map[string]any:
		if err := decodeStructFields(ctx, d, reflect.ValueOf(&ll).Elem()); err != nil {
			return err
		}
	default:
		return errTypeMismatch(data, goVal.Type())
	}
	goVal.Set(reflect.ValueOf(ll))
	return nil
}

// boundsUnmarshal accepts native bounds objects and [[s, w], [n, e]] arrays.
func boundsUnmarshal(ctx *contextD, data any, goVal reflect.Value) error {
	var b Bounds
	switch d := data.(type) {
	case []any:
		if len(d) != 2 {
			return fmt.Errorf("bounds array needs 2 corners, got %d", len(d))
		}
		if err := latLngUnmarshal(ctx, d[0], reflect.ValueOf(&b.SouthWest).Elem()); err != nil {
			return fmt.Errorf("south west: %w", err)
		}
		if err := latLngUnmarshal(ctx, d[1], reflect.ValueOf(&b.NorthEast).Elem()); err != nil {
			return fmt.Errorf("north east: %w", err)
		}
	case map[string]any:
		if err := decodeStructFields(ctx, d, reflect.ValueOf(&b).Elem()); err != nil {
			return err
		}
	default:
		return errTypeMismatch(data, goVal.Type())
	}
	goVal.Set(reflect.ValueOf(b))
	return nil
}
