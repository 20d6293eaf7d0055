package leafgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veecore/leafgo"
)

func TestAttachToForwardsOnAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, m1 := mustMap(ctrl, nil, "M1")
	h3 := nativeObject(ctrl, "H3")
	container := nativeObject(ctrl, "div")

	h3.EXPECT().Call("onAdd", is(m1)).Return(container, nil).Times(1)

	c, err := leafgo.WrapControl(h3)
	require.NoError(t, err)

	el, err := c.AttachTo(m)
	require.NoError(t, err)
	require.NotNil(t, el)
	require.True(t, el.Handle().Unwrap() == leafgo.Value(container))
}

func TestAttachToWithoutContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, m1 := mustMap(ctrl, nil, "M1")
	h := nativeObject(ctrl, "layer")

	h.EXPECT().Call("onAdd", is(m1)).Return(nullish(ctrl), nil)

	el, err := leafgo.Reify("marker", leafgo.MustWrap(h)).AttachTo(m)
	require.NoError(t, err)
	require.Nil(t, el)
}

func TestAttachToIsNotDeduplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, m1 := mustMap(ctrl, nil, "M1")
	h3 := nativeObject(ctrl, "H3")

	h3.EXPECT().Call("onAdd", is(m1)).Return(nativeObject(ctrl, "div"), nil).Times(3)

	c, err := leafgo.WrapControl(h3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := c.AttachTo(m)
		require.NoError(t, err)
	}
}

func TestDetachFromReturnsReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, m1 := mustMap(ctrl, nil, "M1")

	h := nativeObject(ctrl, "control")
	h.EXPECT().Call("onRemove", is(m1)).Return(nullish(ctrl), nil)
	c, err := leafgo.WrapControl(h)
	require.NoError(t, err)

	got, err := c.DetachFrom(m)
	require.NoError(t, err)
	require.Same(t, c, got)
}

func TestLayerDetachFromReturnsReceiver(t *testing.T) {
	kinds := append([]string{"unknown-future-kind"}, stringKinds()...)
	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, m1 := mustMap(ctrl, nil, "M1")
			h := nativeObject(ctrl, kind)
			h.EXPECT().Call("onRemove", is(m1)).Return(nullish(ctrl), nil)

			l := leafgo.Reify(kind, leafgo.MustWrap(h))
			got, err := l.DetachFrom(m)
			require.NoError(t, err)
			require.Same(t, l, got)
		})
	}
}

func TestNativeErrorIsReturnedUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, m1 := mustMap(ctrl, nil, "M1")
	h := nativeObject(ctrl, "control")
	nativeErr := &leafgo.NativeCallError{Method: "onAdd", Payload: "TypeError: boom"}

	h.EXPECT().Call("onAdd", is(m1)).Return(nil, nativeErr)
	h.EXPECT().Call("onRemove", is(m1)).Return(nil, nativeErr)

	c, err := leafgo.WrapControl(h)
	require.NoError(t, err)

	el, err := c.AttachTo(m)
	require.Nil(t, el)
	require.Same(t, nativeErr, err)

	got, err := c.DetachFrom(m)
	require.Nil(t, got)
	require.Same(t, nativeErr, err)
}

func TestLifecycleRejectsInvalidMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No Call expectations: nothing may be forwarded.
	c, err := leafgo.WrapControl(nativeObject(ctrl, "control"))
	require.NoError(t, err)

	for name, m := range map[string]*leafgo.Map{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := c.AttachTo(m)
			require.True(t, leafgo.IsInvalidHandle(err))

			_, err = c.DetachFrom(m)
			require.True(t, leafgo.IsInvalidHandle(err))
		})
	}
}

func TestSameObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := leafgo.MustWrap(nativeObject(ctrl, "H"))

	marker := leafgo.Reify("marker", h)
	generic := leafgo.Reify("heatmap", h)
	require.NotSame(t, marker, generic)
	require.True(t, leafgo.SameObject(marker, generic))
	require.False(t, leafgo.SameObject(marker, nil))

	other := leafgo.Reify("marker", leafgo.MustWrap(nativeObject(ctrl, "H'")))
	require.False(t, leafgo.SameObject(marker, other))
}

func TestElementClassName(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, m1 := mustMap(ctrl, nil, "M1")
	h := nativeObject(ctrl, "control")
	div := nativeObject(ctrl, "div")
	div.EXPECT().Get("className").Return(nativeObject(ctrl, "leaflet-control-zoom"))
	h.EXPECT().Call("onAdd", is(m1)).Return(div, nil)

	c, err := leafgo.WrapControl(h)
	require.NoError(t, err)
	el, err := c.AttachTo(m)
	require.NoError(t, err)
	require.Equal(t, "leaflet-control-zoom", el.ClassName())
}

func stringKinds() []string {
	var out []string
	for _, k := range leafgo.KnownLayerKinds() {
		out = append(out, string(k))
	}
	return out
}
