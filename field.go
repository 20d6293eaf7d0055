package leafgo

import (
	"reflect"
	"strings"
	"sync"
)

var structCache sync.Map // Stores reflect.Type -> *fieldInfo

type fieldInfo struct {
	// fields in declaration order, promoted fields right after their parent
	list   []*field
	byName map[string]*field
}

type field struct {
	index []int // path
	_type reflect.Type
	tag   fieldTag
}

type fieldTag struct {
	name      string
	ignore    bool
	omitempty bool
}

// getFieldTag parses leaflet struct tags:
// `leaflet:"[name][,omitempty]"`
// Examples:
// `leaflet:"-"`                 - ignore field
// `leaflet:"zoomControl"`       - native option name
// `leaflet:",omitempty"`        - leave the option to the engine's default when zero
// Untagged exported fields use their Go name with the first letter lowered,
// which is the Leaflet convention for option names.
func getFieldTag(t *reflect.StructField) fieldTag {
	var f fieldTag
	if !t.Anonymous {
		f.name = lowerFirst(t.Name)
	}

	tagVal, ok := t.Tag.Lookup("leaflet")
	if !ok {
		return f
	}

	parts := strings.Split(tagVal, ",")
	if parts[0] != "" {
		f.name = strings.TrimSpace(parts[0])
	}
	for _, part := range parts[1:] {
		switch strings.TrimSpace(part) {
		case "omitempty":
			f.omitempty = true
		case "-":
			f.ignore = true
		}
	}

	if f.name == "-" {
		f.ignore = true
	}
	return f
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// getCachedFields retrieves or calculates field information for a type
func getCachedFields(t reflect.Type) *fieldInfo {
	if cached, ok := structCache.Load(t); ok {
		return cached.(*fieldInfo)
	}
	fields, _ := structCache.LoadOrStore(t, visibleFields(t))
	return fields.(*fieldInfo)
}

// visibleFields is reflect.VisibleFields reduced to what option structs
// need: exported fields, promoted fields of untagged embedded structs, and
// Go's shallowest-wins rule for name collisions.
func visibleFields(t reflect.Type) *fieldInfo {
	if t.Kind() != reflect.Struct {
		panic("leafgo: visibleFields of non-struct type " + t.String())
	}
	w := &visibleFieldsWalker{
		fieldInfo: fieldInfo{byName: make(map[string]*field, t.NumField())},
		visiting:  make(map[reflect.Type]bool),
		index:     make([]int, 0, 2),
	}
	w.walk(t)

	// Drop fields that lost a collision while keeping declaration order.
	list := w.list[:0]
	for _, f := range w.list {
		if w.byName[f.tag.name] == f {
			list = append(list, f)
		}
	}
	w.list = list
	return &w.fieldInfo
}

type visibleFieldsWalker struct {
	fieldInfo
	visiting map[reflect.Type]bool
	index    []int
}

func (w *visibleFieldsWalker) walk(t reflect.Type) {
	if w.visiting[t] {
		return
	}
	w.visiting[t] = true
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if !f.IsExported() && ft.Kind() != reflect.Struct {
				continue
			}
		} else if !f.IsExported() {
			continue
		}

		tag := getFieldTag(&f)
		if tag.ignore {
			continue
		}
		w.index = append(w.index, i)

		if f.Anonymous && tag.name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				w.walk(ft)
			}
			w.index = w.index[:len(w.index)-1]
			continue
		}

		add := true
		if old, ok := w.byName[tag.name]; ok {
			switch {
			case len(w.index) == len(old.index):
				// Same depth: both are hidden.
				delete(w.byName, tag.name)
				add = false
			case len(w.index) < len(old.index):
				delete(w.byName, tag.name)
			default:
				add = false
			}
		}
		if add {
			nf := &field{
				index: append([]int(nil), w.index...),
				_type: f.Type,
				tag:   tag,
			}
			w.byName[tag.name] = nf
			w.list = append(w.list, nf)
		}
		w.index = w.index[:len(w.index)-1]
	}
	delete(w.visiting, t)
}

// fieldByIndex follows index through v, reporting false when it crosses a
// nil embedded pointer.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// fieldByIndexAlloc is fieldByIndex for decoding: nil embedded pointers are
// allocated on the way.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}
