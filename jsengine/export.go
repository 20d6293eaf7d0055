//go:build js && wasm

package jsengine

import (
	"syscall/js"
)

// Exported data is copied eagerly; native object graphs can be cyclic
// (a layer references its map, which references its layers), so depth is
// bounded.
const maxExportDepth = 32

// export copies a JS value into plain Go data: map[string]any for objects,
// []any for arrays, float64, string, bool, nil. Functions and anything past
// maxExportDepth export as nil.
func export(v js.Value, depth int) any {
	if depth > maxExportDepth {
		return nil
	}
	switch v.Type() {
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	case js.TypeObject:
		if IsArray(v) {
			n := v.Length()
			out := make([]any, n)
			for i := 0; i < n; i++ {
				out[i] = export(v.Index(i), depth+1)
			}
			return out
		}
		keys := ObjectKeys(v)
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			el := v.Get(k)
			if el.Type() == js.TypeFunction {
				continue
			}
			out[k] = export(el, depth+1)
		}
		return out
	default:
		return nil
	}
}
