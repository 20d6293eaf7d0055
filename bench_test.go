package leafgo_test

import (
	"fmt"
	"testing"

	"github.com/veecore/leafgo"
)

func BenchmarkEncode(b *testing.B) {
	zoom := 13
	off := false
	opts := &leafgo.MapOptions{
		Center:      &leafgo.LatLng{Lat: 51.5, Lng: -0.09},
		Zoom:        &zoom,
		MaxZoom:     18,
		ZoomControl: &off,
		MaxBounds: &leafgo.Bounds{
			SouthWest: leafgo.LatLng{Lat: 49, Lng: -8},
			NorthEast: leafgo.LatLng{Lat: 61, Lng: 2},
		},
	}

	b.ResetTimer()
	b.Run("MapOptions", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := leafgo.Encode(opts); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("PrimitiveTypes", func(b *testing.B) {
		inputs := []any{
			42,
			"simple string",
			[]int{1, 2, 3},
			map[string]any{"key": "value"},
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			val := inputs[i%len(inputs)]
			if _, err := leafgo.Encode(val); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkEncodeHandWritten(b *testing.B) {
	b.Run("MapOptions", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = map[string]any{
				"center":      []any{51.5, -0.09},
				"zoom":        int64(13),
				"maxZoom":     int64(18),
				"zoomControl": false,
				"maxBounds":   []any{[]any{49.0, -8.0}, []any{61.0, 2.0}},
			}
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	data := map[string]any{
		"_southWest": map[string]any{"lat": 49.0, "lng": int64(-8)},
		"_northEast": map[string]any{"lat": 61.0, "lng": int64(2)},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var bounds leafgo.Bounds
		if err := leafgo.Decode(data, &bounds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeLatLngs(b *testing.B) {
	set_benchmark(randomPaths, func(in []any) []leafgo.LatLng {
		var out []leafgo.LatLng
		if err := leafgo.Decode(in, &out); err != nil {
			b.Fatal(err)
		}
		return out
	}, func(out []leafgo.LatLng, size uint) bool {
		return uint(len(out)) == size
	})(b)
}

func BenchmarkReify(b *testing.B) {
	h := leafgo.MustWrap(benchValue{})
	kinds := []string{"marker", "polyline", "polygon", "rectangle", "circle", "unknown-future-kind"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l := leafgo.Reify(kinds[i%len(kinds)], h); l == nil {
			b.Fatal("nil layer")
		}
	}
}

func set_benchmark[T any, Out any](data []struct {
	Value T
	Size  uint
}, f func(input T) Out, assert func(Out, uint) bool) func(b *testing.B) {
	return func(b *testing.B) {
		for _, d := range data {
			b.Run(fmt.Sprintf("input_size_%d", d.Size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if !assert(f(d.Value), d.Size) {
						b.Fatalf("benchmark assertion failed")
					}
				}
			})
		}
	}
}

var randomPaths = []struct {
	Value []any
	Size  uint
}{
	{randomPath(10), 10},
	{randomPath(200), 200},
	{randomPath(2000), 2000},
}

func randomPath(points uint) []any {
	path := make([]any, points)
	for i := range int(points) {
		path[i] = map[string]any{"lat": float64(i) / 100, "lng": float64(-i) / 100}
	}
	return path
}

// benchValue is a native stand-in with no mock bookkeeping.
type benchValue struct{}

func (benchValue) Get(string) leafgo.Value { return benchValue{} }

func (benchValue) Call(string, ...any) (leafgo.Value, error) { return benchValue{}, nil }

func (benchValue) Equal(o leafgo.Value) bool {
	_, ok := o.(benchValue)
	return ok
}

func (benchValue) IsNullish() bool { return false }

func (benchValue) String() string { return "bench" }

func (benchValue) Export() any { return nil }
