package leafgo_test

import (
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/veecore/leafgo"
)

// nativeObject is a mock native object that is only equal to itself.
func nativeObject(ctrl *gomock.Controller, name string) *leafgo.MockValue {
	v := leafgo.NewMockValue(ctrl)
	v.EXPECT().IsNullish().Return(false).AnyTimes()
	v.EXPECT().String().Return(name).AnyTimes()
	v.EXPECT().Get("_leaflet_id").Return(nullish(ctrl)).AnyTimes()
	v.EXPECT().Equal(gomock.Any()).DoAndReturn(func(o leafgo.Value) bool {
		return o == leafgo.Value(v)
	}).AnyTimes()
	return v
}

// nullish is a mock null/undefined.
func nullish(ctrl *gomock.Controller) *leafgo.MockValue {
	v := leafgo.NewMockValue(ctrl)
	v.EXPECT().IsNullish().Return(true).AnyTimes()
	v.EXPECT().String().Return("undefined").AnyTimes()
	v.EXPECT().Export().Return(nil).AnyTimes()
	return v
}

// exported is a mock native value whose exported form is data.
func exported(ctrl *gomock.Controller, data any) *leafgo.MockValue {
	v := leafgo.NewMockValue(ctrl)
	v.EXPECT().IsNullish().Return(false).AnyTimes()
	v.EXPECT().Export().Return(data).AnyTimes()
	return v
}

// is matches the exact native value, not a deep-equal one. Mocks are all
// deep-equal to each other.
func is(v leafgo.Value) gomock.Matcher { return identity{v} }

type identity struct{ v leafgo.Value }

func (m identity) Matches(x any) bool {
	v, ok := x.(leafgo.Value)
	return ok && v == m.v
}

func (m identity) String() string { return fmt.Sprintf("is native %s", m.v) }

func mustMap(ctrl *gomock.Controller, eng leafgo.Engine, name string) (*leafgo.Map, *leafgo.MockValue) {
	v := nativeObject(ctrl, name)
	m, err := leafgo.WrapMap(eng, v)
	if err != nil {
		panic(err)
	}
	return m, v
}
