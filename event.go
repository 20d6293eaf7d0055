package leafgo

import (
	"go.uber.org/zap"
)

// Reify builds the layer proxy canonically associated with kind around h.
//
// The mapping is a pure function of kind. Unrecognised kinds, including
// ones the native library may add later, yield a *GenericLayer wrapping the
// same handle: Reify never fails and never drops the handle.
func Reify(kind string, h Handle) Layer {
	base := layerBase{handle: h}
	var l Layer
	switch k := LayerKind(kind); k {
	case KindPolyline:
		l = &Polyline{base}
	case KindPolygon:
		l = &Polygon{Polyline{base}}
	case KindRectangle:
		l = &Rectangle{Polygon{Polyline{base}}}
	case KindCircle:
		l = &Circle{base}
	case KindMarker:
		l = &Marker{base}
	default:
		countUnknownDiscriminant()
		Logger().Warn("unknown layer kind, falling back to generic layer",
			zap.String("kind", kind),
			zap.Stringer("layer", h))
		l = &GenericLayer{layerBase: base, kind: k}
	}
	countReified(l.Kind())
	return l
}

// Event is a native event that carries no layer, or whose layer the caller
// does not need.
type Event struct {
	// Type is the native event name, e.g. "click" or "draw:created".
	Type string
	// Target is the object that fired the event, if the engine reported one.
	Target Handle
	raw    Handle
}

// Raw returns the native event object.
func (e *Event) Raw() Handle { return e.raw }

// Get reads a property of the native event object.
func (e *Event) Get(name string) Value { return e.raw.get(name) }

// DecodeEvent wraps a native event object.
func DecodeEvent(payload Value) (*Event, error) {
	h, err := Wrap(payload)
	if err != nil {
		return nil, &InvalidHandleError{Op: "decode event"}
	}
	e := &Event{raw: h, Type: stringProp(payload, "type")}
	if t, err := Wrap(payload.Get("target")); err == nil {
		e.Target = t
	}
	return e, nil
}

// LayerEvent is a native event carrying one layer and the discriminant
// naming its kind, as fired by the draw plugin ("draw:created") and the
// layers control ("overlayadd", "baselayerchange", ...).
type LayerEvent struct {
	Event
	// LayerType is the untrusted discriminant. Empty when the engine sent none.
	LayerType string
	// Name is the layer's label in the layers control, if any.
	Name string

	layer         Handle
	originalEvent Handle
}

// DecodeLayerEvent validates a native payload shaped
// {layerType, layer, name?, originalEvent?}. A missing payload or layer
// is an *InvalidHandleError; the discriminant itself is never checked here.
func DecodeLayerEvent(payload Value) (*LayerEvent, error) {
	ev, err := DecodeEvent(payload)
	if err != nil {
		return nil, err
	}
	layer, err := Wrap(payload.Get("layer"))
	if err != nil {
		return nil, &InvalidHandleError{Op: "decode layer event"}
	}
	le := &LayerEvent{
		Event:     *ev,
		LayerType: stringProp(payload, "layerType"),
		Name:      stringProp(payload, "name"),
		layer:     layer,
	}
	if oe, err := Wrap(payload.Get("originalEvent")); err == nil {
		le.originalEvent = oe
	}
	return le, nil
}

// Layer returns the strongly typed layer carried by the event. It is the
// only place the discriminant is interpreted.
func (e *LayerEvent) Layer() Layer {
	return Reify(e.LayerType, e.layer)
}

// LayerHandle returns the carried layer without interpreting the discriminant.
func (e *LayerEvent) LayerHandle() Handle { return e.layer }

// OriginalEvent returns the DOM event that triggered this one, if any.
func (e *LayerEvent) OriginalEvent() (Handle, bool) {
	return e.originalEvent, e.originalEvent.Valid()
}

func stringProp(v Value, name string) string {
	p := v.Get(name)
	if p == nil || p.IsNullish() {
		return ""
	}
	return p.String()
}
