// Package leafgo exposes a browser-hosted Leaflet map to Go with static types.
//
// Map objects (maps, controls, layers) live as native JavaScript objects.
// The Go side only ever holds typed proxies around opaque references to
// them, and forwards lifecycle calls into the native engine.
//
// # Core Concepts
//
//  1. Handles:
//     A Handle owns one native reference. Wrap refuses missing references,
//     Unwrap gives the very same reference back:
//
//     h, err := leafgo.Wrap(v)
//     h.Unwrap() // == v
//
//  2. Lifecycle:
//     Every map-bound proxy is Attachable. AttachTo forwards to the native
//     onAdd hook and returns the container element; DetachFrom forwards to
//     onRemove and returns the receiver:
//
//     el, err := zoom.AttachTo(m)
//     _, err = zoom.DetachFrom(m)
//
//  3. Reification:
//     Events that carry a layer also carry a string tag naming its kind.
//     LayerEvent.Layer turns the pair into a typed value to switch on:
//
//     switch l := ev.Layer().(type) {
//     case *leafgo.Marker:
//     case *leafgo.Circle:
//     case *leafgo.GenericLayer: // unknown tag, still usable
//     }
//
// # Engines
//
// Proxies talk to the native side through the Value and Engine interfaces.
// Package jsengine implements them on syscall/js for the browser; package
// headless implements them on an embedded JavaScript interpreter, for tests
// and tooling.
//
// # Errors
//
// Failures thrown by the engine come back unchanged as *NativeCallError.
// Wrapping a missing reference is an *InvalidHandleError. Reify never fails.
//
// # Struct Tags
// `leaflet:"-"`                 // Ignore field
// `leaflet:"optionName"`        // Native option name
// `leaflet:",omitempty"`        // Leave to the engine default if zero
package leafgo
