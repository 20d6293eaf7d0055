package leafgo

import (
	"errors"
	"sync"
)

// Position is a map corner a control sits in.
type Position string

const (
	TopLeft     Position = "topleft"
	TopRight    Position = "topright"
	BottomLeft  Position = "bottomleft"
	BottomRight Position = "bottomright"
)

// ControlOptions is shared by every control constructor.
type ControlOptions struct {
	Position Position `leaflet:"position,omitempty"`
}

// ControlProxy is implemented by every control type of this package.
type ControlProxy interface {
	Attachable
	Position() (Position, error)
	SetPosition(Position) error
	isControl()
}

// hooked controls register Go callbacks on the map they are added to.
type hooked interface {
	bindHooks(m *Map) error
	unbindHooks() error
}

type controlBase struct {
	handle Handle
}

// Handle returns the native control.
func (c *controlBase) Handle() Handle { return c.handle }

func (*controlBase) isControl() {}

// AttachTo forwards to the native onAdd and returns the control's container.
func (c *controlBase) AttachTo(m *Map) (*Element, error) {
	return attach(c, m)
}

// Position returns the corner the control is placed in.
func (c *controlBase) Position() (Position, error) {
	v, err := c.handle.call("getPosition")
	if err != nil {
		return "", err
	}
	var p Position
	err = DecodeValue(v, &p)
	return p, err
}

// SetPosition moves the control to another corner.
func (c *controlBase) SetPosition(p Position) error {
	_, err := c.handle.call("setPosition", string(p))
	return err
}

// Control wraps any native control, including third-party ones this
// package has no dedicated type for.
type Control struct {
	controlBase
}

// WrapControl builds a proxy for an existing native control.
func WrapControl(v Value) (*Control, error) {
	h, err := Wrap(v)
	if err != nil {
		return nil, err
	}
	return &Control{controlBase{h}}, nil
}

// DetachFrom forwards to the native onRemove and returns c.
func (c *Control) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(c, m); err != nil {
		return nil, err
	}
	return c, nil
}

// ZoomOptions configures NewZoom.
type ZoomOptions struct {
	ControlOptions
	ZoomInText   string `leaflet:"zoomInText,omitempty"`
	ZoomInTitle  string `leaflet:"zoomInTitle,omitempty"`
	ZoomOutText  string `leaflet:"zoomOutText,omitempty"`
	ZoomOutTitle string `leaflet:"zoomOutTitle,omitempty"`
}

// Zoom is the +/- zoom control.
type Zoom struct {
	controlBase
}

// NewZoom creates a native L.Control.Zoom.
func NewZoom(eng Engine, opts *ZoomOptions) (*Zoom, error) {
	h, err := newNative(eng, "L.Control.Zoom", opts)
	if err != nil {
		return nil, err
	}
	return &Zoom{controlBase{h}}, nil
}

// DetachFrom forwards to the native onRemove and returns z.
func (z *Zoom) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(z, m); err != nil {
		return nil, err
	}
	return z, nil
}

// AttributionOptions configures NewAttribution.
type AttributionOptions struct {
	ControlOptions
	Prefix string `leaflet:"prefix,omitempty"`
}

// Attribution shows data credits.
type Attribution struct {
	controlBase
}

// NewAttribution creates a native L.Control.Attribution.
func NewAttribution(eng Engine, opts *AttributionOptions) (*Attribution, error) {
	h, err := newNative(eng, "L.Control.Attribution", opts)
	if err != nil {
		return nil, err
	}
	return &Attribution{controlBase{h}}, nil
}

// DetachFrom forwards to the native onRemove and returns a.
func (a *Attribution) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(a, m); err != nil {
		return nil, err
	}
	return a, nil
}

// AddAttribution appends a credit line.
func (a *Attribution) AddAttribution(text string) error {
	_, err := a.handle.call("addAttribution", text)
	return err
}

// SetPrefix replaces the text before the credits.
func (a *Attribution) SetPrefix(prefix string) error {
	_, err := a.handle.call("setPrefix", prefix)
	return err
}

// ScaleOptions configures NewScale.
type ScaleOptions struct {
	ControlOptions
	MaxWidth int   `leaflet:"maxWidth,omitempty"`
	Metric   *bool `leaflet:"metric,omitempty"`
	Imperial *bool `leaflet:"imperial,omitempty"`
}

// Scale shows the map scale.
type Scale struct {
	controlBase
}

// NewScale creates a native L.Control.Scale.
func NewScale(eng Engine, opts *ScaleOptions) (*Scale, error) {
	h, err := newNative(eng, "L.Control.Scale", opts)
	if err != nil {
		return nil, err
	}
	return &Scale{controlBase{h}}, nil
}

// DetachFrom forwards to the native onRemove and returns s.
func (s *Scale) DetachFrom(m *Map) (Attachable, error) {
	if err := detach(s, m); err != nil {
		return nil, err
	}
	return s, nil
}

// hostListeners tracks the map listeners a control registers on attach so
// they can be released on detach.
type hostListeners struct {
	mu   sync.Mutex
	list []*Listener
}

// layerHook is one Go callback for a map event carrying a layer.
type layerHook struct {
	event string
	fn    func(*LayerEvent)
}

// bind replaces the held listeners with one per non-nil hook on m.
func (hl *hostListeners) bind(m *Map, hooks []layerHook) error {
	if err := hl.release(); err != nil {
		return err
	}
	for _, h := range hooks {
		if h.fn == nil {
			continue
		}
		l, err := m.OnLayer(h.event, h.fn)
		if err != nil {
			return withCleanup(err, hl.release())
		}
		hl.mu.Lock()
		hl.list = append(hl.list, l)
		hl.mu.Unlock()
	}
	return nil
}

// release unregisters everything, reporting every failure. Listeners the
// engine failed to remove stay held.
func (hl *hostListeners) release() error {
	hl.mu.Lock()
	list := hl.list
	hl.list = nil
	hl.mu.Unlock()

	var (
		errs []error
		kept []*Listener
	)
	for _, l := range list {
		if err := l.Remove(); err != nil {
			errs = append(errs, err)
			kept = append(kept, l)
		}
	}
	if len(kept) > 0 {
		hl.mu.Lock()
		hl.list = append(kept, hl.list...)
		hl.mu.Unlock()
	}
	return errors.Join(errs...)
}

// withCleanup keeps err untouched unless cleanup failed too.
func withCleanup(err, cleanup error) error {
	if cleanup == nil {
		return err
	}
	return errors.Join(err, cleanup)
}

// LayersOptions configures NewLayersControl.
type LayersOptions struct {
	ControlOptions
	Collapsed      *bool `leaflet:"collapsed,omitempty"`
	AutoZIndex     *bool `leaflet:"autoZIndex,omitempty"`
	HideSingleBase bool  `leaflet:"hideSingleBase,omitempty"`
}

// LayersHooks are Go callbacks for the events the layers control fires on
// its map. The carried layers have no discriminant, so they reify as
// *GenericLayer unless the engine adds one.
type LayersHooks struct {
	OnOverlayAdd      func(*LayerEvent)
	OnOverlayRemove   func(*LayerEvent)
	OnBaseLayerChange func(*LayerEvent)
}

// LayersControl switches base layers and toggles overlays.
type LayersControl struct {
	controlBase
	hooks     LayersHooks
	listeners hostListeners
}

// NewLayersControl creates a native L.Control.Layers. Either map may be nil.
func NewLayersControl(eng Engine, base, overlays map[string]Layer, opts *LayersOptions, hooks *LayersHooks) (*LayersControl, error) {
	var baseArg, overlayArg any = map[string]any{}, map[string]any{}
	if base != nil {
		baseArg = base
	}
	if overlays != nil {
		overlayArg = overlays
	}
	h, err := newNative(eng, "L.Control.Layers", baseArg, overlayArg, opts)
	if err != nil {
		return nil, err
	}
	lc := &LayersControl{controlBase: controlBase{h}}
	if hooks != nil {
		lc.hooks = *hooks
	}
	return lc, nil
}

// AttachTo registers the configured hooks on m, replacing those of an
// earlier attach, then forwards. If the native call fails the hooks are
// released again.
func (lc *LayersControl) AttachTo(m *Map) (*Element, error) {
	return attachHooked(lc, m)
}

// DetachFrom releases the hooks before forwarding.
func (lc *LayersControl) DetachFrom(m *Map) (Attachable, error) {
	if err := lc.unbindHooks(); err != nil {
		return nil, err
	}
	if err := detach(lc, m); err != nil {
		return nil, err
	}
	return lc, nil
}

func (lc *LayersControl) bindHooks(m *Map) error {
	return lc.listeners.bind(m, []layerHook{
		{"overlayadd", lc.hooks.OnOverlayAdd},
		{"overlayremove", lc.hooks.OnOverlayRemove},
		{"baselayerchange", lc.hooks.OnBaseLayerChange},
	})
}

func (lc *LayersControl) unbindHooks() error { return lc.listeners.release() }

// AddBaseLayer adds a radio-selected layer under name.
func (lc *LayersControl) AddBaseLayer(l Layer, name string) error {
	_, err := lc.handle.call("addBaseLayer", l.Handle().Unwrap(), name)
	return err
}

// AddOverlay adds a checkbox-toggled layer under name.
func (lc *LayersControl) AddOverlay(l Layer, name string) error {
	_, err := lc.handle.call("addOverlay", l.Handle().Unwrap(), name)
	return err
}

// RemoveLayer removes l from the control, not from the map.
func (lc *LayersControl) RemoveLayer(l Layer) error {
	_, err := lc.handle.call("removeLayer", l.Handle().Unwrap())
	return err
}

// DrawToolbar enables or disables the draw plugin's tools. Nil keeps the
// plugin default.
type DrawToolbar struct {
	Polyline  *bool `leaflet:"polyline,omitempty"`
	Polygon   *bool `leaflet:"polygon,omitempty"`
	Rectangle *bool `leaflet:"rectangle,omitempty"`
	Circle    *bool `leaflet:"circle,omitempty"`
	Marker    *bool `leaflet:"marker,omitempty"`
}

// DrawOptions configures NewDrawControl.
type DrawOptions struct {
	ControlOptions
	Draw *DrawToolbar `leaflet:"draw,omitempty"`
}

// EventDrawCreated is fired on the map when the user finishes a shape.
const EventDrawCreated = "draw:created"

// DrawControl is the draw plugin's toolbar. Shapes the user draws are
// handed to the Go callback already reified.
type DrawControl struct {
	controlBase
	onCreated func(*LayerEvent)
	listeners hostListeners
}

// NewDrawControl creates a native L.Control.Draw. onCreated may be nil.
func NewDrawControl(eng Engine, opts *DrawOptions, onCreated func(*LayerEvent)) (*DrawControl, error) {
	h, err := newNative(eng, "L.Control.Draw", opts)
	if err != nil {
		return nil, err
	}
	return &DrawControl{controlBase: controlBase{h}, onCreated: onCreated}, nil
}

// AttachTo registers the draw:created listener, replacing the one of an
// earlier attach, then forwards.
func (dc *DrawControl) AttachTo(m *Map) (*Element, error) {
	return attachHooked(dc, m)
}

// DetachFrom releases the listener before forwarding.
func (dc *DrawControl) DetachFrom(m *Map) (Attachable, error) {
	if err := dc.unbindHooks(); err != nil {
		return nil, err
	}
	if err := detach(dc, m); err != nil {
		return nil, err
	}
	return dc, nil
}

func (dc *DrawControl) bindHooks(m *Map) error {
	return dc.listeners.bind(m, []layerHook{{EventDrawCreated, dc.onCreated}})
}

func (dc *DrawControl) unbindHooks() error { return dc.listeners.release() }

// attachHooked is AttachTo for controls carrying Go callbacks. The native
// onAdd is forwarded on every call; the callbacks are bound once per map.
func attachHooked(c interface {
	Proxy
	hooked
}, m *Map) (*Element, error) {
	if _, err := mapHandle(methodOnAdd, m); err != nil {
		return nil, err
	}
	if err := c.bindHooks(m); err != nil {
		return nil, err
	}
	el, err := attach(c, m)
	if err != nil {
		return nil, withCleanup(err, c.unbindHooks())
	}
	return el, nil
}
