package leafgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veecore/leafgo"
)

func TestKnownLayerKinds(t *testing.T) {
	require.ElementsMatch(t, []leafgo.LayerKind{
		leafgo.KindPolyline, leafgo.KindPolygon, leafgo.KindRectangle, leafgo.KindCircle, leafgo.KindMarker,
	}, leafgo.KnownLayerKinds())
	require.False(t, leafgo.LayerKind("circlemarker").Known())
}

func TestMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	eng := leafgo.NewMockEngine(ctrl)
	v := nativeObject(ctrl, "marker")

	eng.EXPECT().New("L.Marker", []any{51.5, -0.09}, map[string]any{"title": "home", "draggable": true}).Return(v, nil)
	mk, err := leafgo.NewMarker(eng, leafgo.LatLng{Lat: 51.5, Lng: -0.09}, &leafgo.MarkerOptions{Title: "home", Draggable: true})
	require.NoError(t, err)
	require.Equal(t, leafgo.KindMarker, mk.Kind())

	v.EXPECT().Call("getLatLng").Return(exported(ctrl, map[string]any{"lat": 51.5, "lng": -0.09}), nil)
	ll, err := mk.LatLng()
	require.NoError(t, err)
	require.Equal(t, leafgo.LatLng{Lat: 51.5, Lng: -0.09}, ll)

	v.EXPECT().Call("setLatLng", []any{1.0, 2.0}).Return(v, nil)
	require.NoError(t, mk.SetLatLng(leafgo.LatLng{Lat: 1, Lng: 2}))
}

func TestPolylineLatLngs(t *testing.T) {
	ctrl := gomock.NewController(t)
	eng := leafgo.NewMockEngine(ctrl)
	v := nativeObject(ctrl, "polyline")

	eng.EXPECT().New("L.Polyline", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}).Return(v, nil)
	pl, err := leafgo.NewPolyline(eng, []leafgo.LatLng{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}, nil)
	require.NoError(t, err)

	v.EXPECT().Call("getLatLngs").Return(exported(ctrl, []any{
		map[string]any{"lat": 1.0, "lng": 2.0},
		map[string]any{"lat": 3.0, "lng": 4.0},
	}), nil)
	pts, err := pl.LatLngs()
	require.NoError(t, err)
	require.Equal(t, []leafgo.LatLng{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}, pts)
}

func TestPolygonNestedRings(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := nativeObject(ctrl, "polygon")
	pg, ok := leafgo.Reify("polygon", leafgo.MustWrap(v)).(*leafgo.Polygon)
	require.True(t, ok)

	v.EXPECT().Call("getLatLngs").Return(exported(ctrl, []any{
		[]any{
			map[string]any{"lat": 0.0, "lng": 0.0},
			map[string]any{"lat": 0.0, "lng": 1.0},
			map[string]any{"lat": 1.0, "lng": 1.0},
		},
	}), nil)
	pts, err := pg.LatLngs()
	require.NoError(t, err)
	require.Len(t, pts, 3)
	require.Equal(t, leafgo.LatLng{Lat: 1, Lng: 1}, pts[2])
}

func TestRectangleBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	eng := leafgo.NewMockEngine(ctrl)
	v := nativeObject(ctrl, "rectangle")
	b := leafgo.Bounds{SouthWest: leafgo.LatLng{Lat: 1, Lng: 2}, NorthEast: leafgo.LatLng{Lat: 3, Lng: 4}}

	eng.EXPECT().New("L.Rectangle", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, map[string]any{"color": "#f00"}).Return(v, nil)
	r, err := leafgo.NewRectangle(eng, b, &leafgo.PathOptions{Color: "#f00"})
	require.NoError(t, err)
	require.Equal(t, leafgo.KindRectangle, r.Kind())

	v.EXPECT().Call("getBounds").Return(exported(ctrl, map[string]any{
		"_southWest": map[string]any{"lat": 1.0, "lng": 2.0},
		"_northEast": map[string]any{"lat": 3.0, "lng": 4.0},
	}), nil)
	got, err := r.Bounds()
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestCircle(t *testing.T) {
	ctrl := gomock.NewController(t)
	eng := leafgo.NewMockEngine(ctrl)
	v := nativeObject(ctrl, "circle")

	_, err := leafgo.NewCircle(eng, leafgo.LatLng{}, nil)
	require.Error(t, err)
	_, err = leafgo.NewCircle(eng, leafgo.LatLng{}, &leafgo.CircleOptions{Radius: -1})
	require.Error(t, err)

	eng.EXPECT().New("L.Circle", []any{1.0, 2.0}, map[string]any{"radius": 100.0}).Return(v, nil)
	c, err := leafgo.NewCircle(eng, leafgo.LatLng{Lat: 1, Lng: 2}, &leafgo.CircleOptions{Radius: 100})
	require.NoError(t, err)

	v.EXPECT().Call("getRadius").Return(exported(ctrl, int64(100)), nil)
	v.EXPECT().Call("setRadius", 250.0).Return(v, nil)
	r, err := c.Radius()
	require.NoError(t, err)
	require.Equal(t, 100.0, r)
	require.NoError(t, c.SetRadius(250))
}

func TestLayerAccessorErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := nativeObject(ctrl, "marker")
	nativeErr := &leafgo.NativeCallError{Method: "getLatLng", Payload: "boom"}
	v.EXPECT().Call("getLatLng").Return(nil, nativeErr)

	mk := leafgo.Reify("marker", leafgo.MustWrap(v)).(*leafgo.Marker)
	_, err := mk.LatLng()
	require.Same(t, nativeErr, err)

	var zero leafgo.Marker
	_, err = zero.LatLng()
	require.True(t, leafgo.IsInvalidHandle(err))
}
