package leafgo

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MapOptions configures NewMap. Zero values leave the engine defaults.
type MapOptions struct {
	Center             *LatLng `leaflet:"center,omitempty"`
	Zoom               *int    `leaflet:"zoom,omitempty"`
	MinZoom            int     `leaflet:"minZoom,omitempty"`
	MaxZoom            int     `leaflet:"maxZoom,omitempty"`
	ZoomControl        *bool   `leaflet:"zoomControl,omitempty"`
	AttributionControl *bool   `leaflet:"attributionControl,omitempty"`
	Dragging           *bool   `leaflet:"dragging,omitempty"`
	MaxBounds          *Bounds `leaflet:"maxBounds,omitempty"`
}

// Map is the proxy of a native L.Map. Every lifecycle call takes one.
//
// Besides its handle a Map caches the engine it lives in, needed to expose
// Go callbacks, and the listeners registered through it.
type Map struct {
	handle Handle
	engine Engine

	mu        sync.Mutex
	listeners map[uuid.UUID]*Listener
}

// NewMap creates a native map inside the DOM element with id containerID.
func NewMap(eng Engine, containerID string, opts *MapOptions) (*Map, error) {
	h, err := newNative(eng, "L.Map", containerID, opts)
	if err != nil {
		return nil, err
	}
	return &Map{handle: h, engine: eng}, nil
}

// WrapMap builds a proxy for an existing native map.
func WrapMap(eng Engine, v Value) (*Map, error) {
	h, err := Wrap(v)
	if err != nil {
		return nil, err
	}
	return &Map{handle: h, engine: eng}, nil
}

// Handle returns the native map.
func (m *Map) Handle() Handle { return m.handle }

// Engine returns the engine the map lives in.
func (m *Map) Engine() Engine { return m.engine }

// Listener is a Go callback registered on a native map event.
type Listener struct {
	ID   uuid.UUID
	Type string

	fn Func
	m  *Map
}

// Remove unregisters l from its map.
func (l *Listener) Remove() error {
	return l.m.Off(l)
}

// On registers fn for the native event type.
func (m *Map) On(eventType string, fn func(*Event)) (*Listener, error) {
	return m.listen(eventType, func(payload Value) {
		ev, err := DecodeEvent(payload)
		if err != nil {
			Logger().Warn("dropping malformed native event", zap.String("type", eventType), zap.Error(err))
			return
		}
		fn(ev)
	})
}

// OnLayer registers fn for a native event that carries a layer.
func (m *Map) OnLayer(eventType string, fn func(*LayerEvent)) (*Listener, error) {
	return m.listen(eventType, func(payload Value) {
		ev, err := DecodeLayerEvent(payload)
		if err != nil {
			Logger().Warn("dropping malformed layer event", zap.String("type", eventType), zap.Error(err))
			return
		}
		fn(ev)
	})
}

func (m *Map) listen(eventType string, handle func(Value)) (*Listener, error) {
	if m.engine == nil {
		return nil, fmt.Errorf("leafgo: map has no engine to register %q on", eventType)
	}
	f := m.engine.FuncOf(func(args []Value) {
		if len(args) == 0 {
			return
		}
		handle(args[0])
	})
	if _, err := m.handle.call("on", eventType, f); err != nil {
		f.Release()
		return nil, err
	}

	l := &Listener{ID: uuid.New(), Type: eventType, fn: f, m: m}
	m.mu.Lock()
	if m.listeners == nil {
		m.listeners = make(map[uuid.UUID]*Listener)
	}
	m.listeners[l.ID] = l
	m.mu.Unlock()

	Logger().Debug("registered map listener",
		zap.String("type", eventType),
		zap.Stringer("listener", l.ID),
		zap.Stringer("map", m.handle))
	return l, nil
}

// Off unregisters l. Removing a listener twice is a no-op. If the engine
// fails to remove it, l stays registered and its callback stays alive.
func (m *Map) Off(l *Listener) error {
	if l == nil {
		return nil
	}
	m.mu.Lock()
	_, ok := m.listeners[l.ID]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	if _, err := m.handle.call("off", l.Type, l.fn); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.listeners, l.ID)
	m.mu.Unlock()
	l.fn.Release()
	return nil
}

// Listeners returns the number of Go listeners currently registered.
func (m *Map) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

// Fire emits a native event on the map. data may hold Values and proxies.
func (m *Map) Fire(eventType string, data map[string]any) error {
	args := []any{eventType}
	if data != nil {
		enc, err := Encode(data)
		if err != nil {
			return err
		}
		args = append(args, enc)
	}
	_, err := m.handle.call("fire", args...)
	return err
}

// SetView centers the map on center at the given zoom.
func (m *Map) SetView(center LatLng, zoom int) error {
	enc, err := Encode(center)
	if err != nil {
		return err
	}
	_, err = m.handle.call("setView", enc, zoom)
	return err
}

// Center returns the geographical center of the view.
func (m *Map) Center() (LatLng, error) {
	var ll LatLng
	v, err := m.handle.call("getCenter")
	if err != nil {
		return ll, err
	}
	err = DecodeValue(v, &ll)
	return ll, err
}

// Zoom returns the current zoom level.
func (m *Map) Zoom() (int, error) {
	v, err := m.handle.call("getZoom")
	if err != nil {
		return 0, err
	}
	var z int
	err = DecodeValue(v, &z)
	return z, err
}

// AddControl adds c to m through the native addControl, which places the
// control's container in its map corner. Callbacks configured on c are
// registered on m first.
func (m *Map) AddControl(c ControlProxy) error {
	if c == nil {
		return &InvalidHandleError{Op: "addControl"}
	}
	hc, ok := c.(hooked)
	if ok {
		if err := hc.bindHooks(m); err != nil {
			return err
		}
	}
	_, err := m.handle.call("addControl", c.Handle().Unwrap())
	if err != nil && ok {
		return withCleanup(err, hc.unbindHooks())
	}
	return err
}

// RemoveControl removes c from m through the native removeControl after
// releasing its callbacks.
func (m *Map) RemoveControl(c ControlProxy) error {
	if c == nil {
		return &InvalidHandleError{Op: "removeControl"}
	}
	if hc, ok := c.(hooked); ok {
		if err := hc.unbindHooks(); err != nil {
			return err
		}
	}
	_, err := m.handle.call("removeControl", c.Handle().Unwrap())
	return err
}

// AddLayer adds l to m through the native addLayer, so the map tracks it.
func (m *Map) AddLayer(l Layer) error {
	if l == nil {
		return &InvalidHandleError{Op: "addLayer"}
	}
	_, err := m.handle.call("addLayer", l.Handle().Unwrap())
	return err
}

// RemoveLayer removes l from m through the native removeLayer.
func (m *Map) RemoveLayer(l Layer) error {
	if l == nil {
		return &InvalidHandleError{Op: "removeLayer"}
	}
	_, err := m.handle.call("removeLayer", l.Handle().Unwrap())
	return err
}

// HasLayer reports whether the native map currently holds l.
func (m *Map) HasLayer(l Layer) (bool, error) {
	if l == nil {
		return false, nil
	}
	v, err := m.handle.call("hasLayer", l.Handle().Unwrap())
	if err != nil {
		return false, err
	}
	var ok bool
	err = DecodeValue(v, &ok)
	return ok, err
}
