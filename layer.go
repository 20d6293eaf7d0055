package leafgo

import (
	"fmt"
)

// LayerKind is the discriminant a native event uses to name the kind of
// layer it carries.
type LayerKind string

const (
	KindPolyline  LayerKind = "polyline"
	KindPolygon   LayerKind = "polygon"
	KindRectangle LayerKind = "rectangle"
	KindCircle    LayerKind = "circle"
	KindMarker    LayerKind = "marker"
)

// KnownLayerKinds lists the discriminants Reify maps to a dedicated type.
func KnownLayerKinds() []LayerKind {
	return []LayerKind{KindPolyline, KindPolygon, KindRectangle, KindCircle, KindMarker}
}

// Known reports whether k has a dedicated variant.
func (k LayerKind) Known() bool {
	switch k {
	case KindPolyline, KindPolygon, KindRectangle, KindCircle, KindMarker:
		return true
	}
	return false
}

// Layer is the closed set of layer proxies: *Marker, *Polyline, *Polygon,
// *Rectangle, *Circle, and *GenericLayer for anything else. Only this
// package can add variants.
type Layer interface {
	Attachable
	Kind() LayerKind
	isLayer()
}

type layerBase struct {
	handle Handle
}

// Handle returns the native layer.
func (l *layerBase) Handle() Handle { return l.handle }

func (l *layerBase) isLayer() {}

// AttachTo forwards to the native onAdd. Layers usually report no container.
func (l *layerBase) AttachTo(m *Map) (*Element, error) {
	return attach(l, m)
}

func (l *layerBase) latLng() (LatLng, error) {
	var ll LatLng
	v, err := l.handle.call("getLatLng")
	if err != nil {
		return ll, err
	}
	err = DecodeValue(v, &ll)
	return ll, err
}

func (l *layerBase) setLatLng(ll LatLng) error {
	enc, err := Encode(ll)
	if err != nil {
		return err
	}
	_, err = l.handle.call("setLatLng", enc)
	return err
}

// GenericLayer wraps a layer of a kind this package has no dedicated type
// for. The raw discriminant is kept so it stays inspectable.
type GenericLayer struct {
	layerBase
	kind LayerKind
}

// Kind returns the raw discriminant the layer was reified from.
func (g *GenericLayer) Kind() LayerKind { return g.kind }

// DetachFrom forwards to the native onRemove and returns g.
func (g *GenericLayer) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(g, m); err != nil {
		return nil, err
	}
	return g, nil
}

// MarkerOptions configures NewMarker.
type MarkerOptions struct {
	Title        string  `leaflet:"title,omitempty"`
	Alt          string  `leaflet:"alt,omitempty"`
	Draggable    bool    `leaflet:"draggable,omitempty"`
	Keyboard     *bool   `leaflet:"keyboard,omitempty"`
	Opacity      float64 `leaflet:"opacity,omitempty"`
	ZIndexOffset int     `leaflet:"zIndexOffset,omitempty"`
	RiseOnHover  bool    `leaflet:"riseOnHover,omitempty"`
}

// Marker is a point icon on the map.
type Marker struct {
	layerBase
}

// NewMarker creates a native L.Marker at ll.
func NewMarker(eng Engine, ll LatLng, opts *MarkerOptions) (*Marker, error) {
	h, err := newNative(eng, "L.Marker", ll, opts)
	if err != nil {
		return nil, err
	}
	return &Marker{layerBase{h}}, nil
}

// Kind returns KindMarker.
func (*Marker) Kind() LayerKind { return KindMarker }

// DetachFrom forwards to the native onRemove and returns mk.
func (mk *Marker) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(mk, m); err != nil {
		return nil, err
	}
	return mk, nil
}

// LatLng returns the marker position.
func (mk *Marker) LatLng() (LatLng, error) { return mk.latLng() }

// SetLatLng moves the marker.
func (mk *Marker) SetLatLng(ll LatLng) error { return mk.setLatLng(ll) }

// PathOptions configures vector layers.
type PathOptions struct {
	Stroke      *bool   `leaflet:"stroke,omitempty"`
	Color       string  `leaflet:"color,omitempty"`
	Weight      float64 `leaflet:"weight,omitempty"`
	Opacity     float64 `leaflet:"opacity,omitempty"`
	Fill        *bool   `leaflet:"fill,omitempty"`
	FillColor   string  `leaflet:"fillColor,omitempty"`
	FillOpacity float64 `leaflet:"fillOpacity,omitempty"`
	DashArray   string  `leaflet:"dashArray,omitempty"`
	ClassName   string  `leaflet:"className,omitempty"`
}

// Polyline is an open vector path.
type Polyline struct {
	layerBase
}

// NewPolyline creates a native L.Polyline through points.
func NewPolyline(eng Engine, points []LatLng, opts *PathOptions) (*Polyline, error) {
	h, err := newNative(eng, "L.Polyline", points, opts)
	if err != nil {
		return nil, err
	}
	return &Polyline{layerBase{h}}, nil
}

// Kind returns KindPolyline.
func (*Polyline) Kind() LayerKind { return KindPolyline }

// DetachFrom forwards to the native onRemove and returns pl.
func (pl *Polyline) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(pl, m); err != nil {
		return nil, err
	}
	return pl, nil
}

// LatLngs returns the path's points. For engines that nest polygon rings
// the outer ring is returned.
func (pl *Polyline) LatLngs() ([]LatLng, error) {
	v, err := pl.handle.call("getLatLngs")
	if err != nil {
		return nil, err
	}
	data := v.Export()
	var flat []LatLng
	if err := Decode(data, &flat); err == nil {
		return flat, nil
	}
	var rings [][]LatLng
	if err := Decode(data, &rings); err != nil {
		return nil, err
	}
	if len(rings) == 0 {
		return nil, nil
	}
	return rings[0], nil
}

// Polygon is a closed vector shape.
type Polygon struct {
	Polyline
}

// NewPolygon creates a native L.Polygon with the given outline.
func NewPolygon(eng Engine, points []LatLng, opts *PathOptions) (*Polygon, error) {
	h, err := newNative(eng, "L.Polygon", points, opts)
	if err != nil {
		return nil, err
	}
	return &Polygon{Polyline{layerBase{h}}}, nil
}

// Kind returns KindPolygon.
func (*Polygon) Kind() LayerKind { return KindPolygon }

// DetachFrom forwards to the native onRemove and returns pg.
func (pg *Polygon) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(pg, m); err != nil {
		return nil, err
	}
	return pg, nil
}

// Rectangle is an axis-aligned polygon.
type Rectangle struct {
	Polygon
}

// NewRectangle creates a native L.Rectangle covering b.
func NewRectangle(eng Engine, b Bounds, opts *PathOptions) (*Rectangle, error) {
	h, err := newNative(eng, "L.Rectangle", b, opts)
	if err != nil {
		return nil, err
	}
	return &Rectangle{Polygon{Polyline{layerBase{h}}}}, nil
}

// Kind returns KindRectangle.
func (*Rectangle) Kind() LayerKind { return KindRectangle }

// DetachFrom forwards to the native onRemove and returns r.
func (r *Rectangle) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(r, m); err != nil {
		return nil, err
	}
	return r, nil
}

// Bounds returns the covered area.
func (r *Rectangle) Bounds() (Bounds, error) {
	var b Bounds
	v, err := r.handle.call("getBounds")
	if err != nil {
		return b, err
	}
	err = DecodeValue(v, &b)
	return b, err
}

// CircleOptions configures NewCircle.
type CircleOptions struct {
	PathOptions
	Radius float64 `leaflet:"radius"`
}

// Circle is a circle with a radius in meters.
type Circle struct {
	layerBase
}

// NewCircle creates a native L.Circle around center.
func NewCircle(eng Engine, center LatLng, opts *CircleOptions) (*Circle, error) {
	if opts == nil || opts.Radius <= 0 {
		return nil, fmt.Errorf("leafgo: circle radius must be positive")
	}
	h, err := newNative(eng, "L.Circle", center, opts)
	if err != nil {
		return nil, err
	}
	return &Circle{layerBase{h}}, nil
}

// Kind returns KindCircle.
func (*Circle) Kind() LayerKind { return KindCircle }

// DetachFrom forwards to the native onRemove and returns c.
func (c *Circle) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(c, m); err != nil {
		return nil, err
	}
	return c, nil
}

// LatLng returns the center.
func (c *Circle) LatLng() (LatLng, error) { return c.latLng() }

// SetLatLng moves the center.
func (c *Circle) SetLatLng(ll LatLng) error { return c.setLatLng(ll) }

// Radius returns the radius in meters.
func (c *Circle) Radius() (float64, error) {
	v, err := c.handle.call("getRadius")
	if err != nil {
		return 0, err
	}
	var r float64
	err = DecodeValue(v, &r)
	return r, err
}

// SetRadius changes the radius.
func (c *Circle) SetRadius(meters float64) error {
	_, err := c.handle.call("setRadius", meters)
	return err
}

// newNative creates a native object and takes ownership of it.
func newNative(eng Engine, class string, args ...any) (Handle, error) {
	if eng == nil {
		return Handle{}, fmt.Errorf("leafgo: %s: nil engine", class)
	}
	enc, err := encodeArgs(args...)
	if err != nil {
		return Handle{}, fmt.Errorf("leafgo: %s: %w", class, err)
	}
	v, err := eng.New(class, enc...)
	if err != nil {
		return Handle{}, err
	}
	return Wrap(v)
}
