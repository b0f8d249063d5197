package props

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
)

var testSchema = MustCompile(
	Entry{Name: "size", Kind: Required(TypeNumber)},
	Entry{Name: "label", Kind: Required(TypeString)},
	Entry{Name: "disabled", Kind: Required(TypeBoolean)},
	Entry{Name: "count", Kind: Optional(0)},
	Entry{Name: "mode", Kind: Optional("light")},
	Entry{Name: "submit", Kind: Listener()},
)

type signalRecord struct {
	name   string
	detail any
}

func bind(t *testing.T) (*View, *dom.Element, *[]signalRecord) {
	t.Helper()
	el := dom.NewElement("fortis-test")
	var signals []signalRecord
	v := testSchema.Bind(el, func(name string, detail any) {
		signals = append(signals, signalRecord{name, detail})
	})
	return v, el, &signals
}

func TestSchema_KeysAndObserved(t *testing.T) {
	assert.Equal(t, []string{"size", "label", "disabled", "count", "mode", "onsubmit", "children"}, testSchema.Keys())
	assert.Equal(t, []string{"size", "label", "disabled", "count", "mode"}, testSchema.Observed())
	assert.Len(t, testSchema.Entries(), 6)
}

func TestCompile_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty name", []Entry{{Name: "", Kind: Listener()}}},
		{"duplicate", []Entry{{Name: "a", Kind: Optional(1)}, {Name: "a", Kind: Optional("x")}}},
		{"children", []Entry{{Name: "children", Kind: Required(TypeString)}}},
		{"on prefix", []Entry{{Name: "online", Kind: Required(TypeBoolean)}}},
		{"bad type", []Entry{{Name: "a", Kind: Required(Type(9))}}},
		{"bad default", []Entry{{Name: "a", Kind: Optional(true)}}},
		{"zero kind", []Entry{{Name: "a"}}},
		{"whitespace", []Entry{{Name: "a b", Kind: Optional(1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.entries...)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidSchema)
		})
	}
	assert.Panics(t, func() { MustCompile(Entry{Name: "children", Kind: Listener()}) })
}

func TestView_RequiredNumberRoundTrip(t *testing.T) {
	v, el, _ := bind(t)
	values := []float64{0, 1, -1, 0.1, 3.14159, -2.5e-3, 1e21, 123456789.125, 5e-324, math.MaxFloat64, -math.SmallestNonzeroFloat64}
	for _, n := range values {
		require.NoError(t, v.Set("size", n))
		got, err := v.Number("size")
		require.NoError(t, err)
		assert.Equal(t, n, got, "round trip of %v via %q", n, attr(el, "size"))
	}
}

func TestView_RequiredDefaultsWhenAbsent(t *testing.T) {
	v, _, _ := bind(t)
	n, err := v.Number("size")
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	s, err := v.Text("label")
	require.NoError(t, err)
	assert.Equal(t, "", s)

	b, err := v.Bool("disabled")
	require.NoError(t, err)
	assert.False(t, b)
}

func TestView_BooleanIsPresence(t *testing.T) {
	v, el, _ := bind(t)

	require.NoError(t, v.Set("disabled", true))
	require.NoError(t, v.Set("disabled", true))
	assert.True(t, el.HasAttribute("disabled"))
	got, _ := v.Bool("disabled")
	assert.True(t, got, "an empty attribute value still reads as true")

	require.NoError(t, v.Set("disabled", false))
	assert.False(t, el.HasAttribute("disabled"))
	require.NoError(t, v.Set("disabled", false))
	assert.False(t, el.HasAttribute("disabled"))
}

func TestView_BooleanRejectsNonBool(t *testing.T) {
	v, el, _ := bind(t)

	for _, value := range []any{"false", "", 0, nil} {
		err := v.Set("disabled", value)
		assert.ErrorIs(t, err, errors.ErrKindMismatch, "%#v", value)
	}
	assert.False(t, el.HasAttribute("disabled"))
	got, _ := v.Bool("disabled")
	assert.False(t, got)
}

func TestView_OptionalStringifiesBools(t *testing.T) {
	v, el, _ := bind(t)

	require.NoError(t, v.Set("mode", true))
	assert.Equal(t, "true", attr(el, "mode"))
	mode, _ := v.Text("mode")
	assert.Equal(t, "true", mode)

	require.NoError(t, v.Set("label", false))
	assert.Equal(t, "false", attr(el, "label"))
}

func TestView_OptionalDefault(t *testing.T) {
	v, el, _ := bind(t)

	got, err := v.Get("count")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	mode, _ := v.Text("mode")
	assert.Equal(t, "light", mode)

	require.NoError(t, v.Set("count", 7))
	require.NoError(t, v.Set("mode", "dark"))
	n, _ := v.Number("count")
	assert.Equal(t, 7.0, n)
	mode, _ = v.Text("mode")
	assert.Equal(t, "dark", mode)

	el.RemoveAttribute("count")
	el.RemoveAttribute("mode")
	n, _ = v.Number("count")
	assert.Equal(t, 0.0, n)
	mode, _ = v.Text("mode")
	assert.Equal(t, "light", mode)

	el.SetAttribute("count", "")
	n, _ = v.Number("count")
	assert.Equal(t, 0.0, n, "empty text falls back to the default")
}

func TestView_OptionalNumberKeepsNaNSentinel(t *testing.T) {
	v, el, _ := bind(t)
	el.SetAttribute("count", "twelve")
	n, err := v.Number("count")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(n))
}

func TestView_ListenerDispatches(t *testing.T) {
	v, el, signals := bind(t)

	dispatch, err := v.Dispatcher("onsubmit")
	require.NoError(t, err)
	dispatch(map[string]string{"name": "x"})

	require.Len(t, *signals, 1)
	assert.Equal(t, "submit", (*signals)[0].name)
	assert.Equal(t, "x", (*signals)[0].detail.(map[string]string)["name"])

	got, err := v.Get("onsubmit")
	require.NoError(t, err)
	got.(func(any))(nil)
	assert.Len(t, *signals, 2)

	err = v.Set("onsubmit", func(any) {})
	assert.ErrorIs(t, err, errors.ErrWriteNotAllowed)
	assert.Empty(t, el.Attributes())

	_, err = v.Get("submit")
	assert.ErrorIs(t, err, errors.ErrKindMismatch)
}

func TestView_Children(t *testing.T) {
	v, _, _ := bind(t)

	got, err := v.Get("children")
	require.NoError(t, err)
	slot, ok := got.(*dom.Element)
	require.True(t, ok)
	assert.Equal(t, "slot", slot.TagName())
	assert.NotSame(t, slot, v.Children(), "each read yields a fresh placeholder")

	err = v.Set("children", "x")
	assert.ErrorIs(t, err, errors.ErrWriteNotAllowed)
	var fe *errors.FortisError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, errors.KindWriteNotAllowed, fe.Kind)
}

func TestView_UnknownKey(t *testing.T) {
	v, _, _ := bind(t)

	_, err := v.Get("colour")
	assert.ErrorIs(t, err, errors.ErrUnknownAttribute)
	assert.ErrorIs(t, v.Set("colour", "red"), errors.ErrUnknownAttribute)
	_, err = v.Number("colour")
	assert.ErrorIs(t, err, errors.ErrUnknownAttribute)
	_, err = v.Dispatcher("onreset")
	assert.ErrorIs(t, err, errors.ErrUnknownAttribute)
}

func TestView_KindMismatch(t *testing.T) {
	v, _, _ := bind(t)

	_, err := v.Number("label")
	assert.ErrorIs(t, err, errors.ErrKindMismatch)
	_, err = v.Bool("count")
	assert.ErrorIs(t, err, errors.ErrKindMismatch)
	_, err = v.Text("children")
	assert.ErrorIs(t, err, errors.ErrKindMismatch)
	_, err = v.Dispatcher("size")
	assert.ErrorIs(t, err, errors.ErrKindMismatch)
}

func TestView_SetStringifies(t *testing.T) {
	v, el, _ := bind(t)

	require.NoError(t, v.Set("label", 42))
	assert.Equal(t, "42", attr(el, "label"))
	require.NoError(t, v.Set("size", "12"))
	n, _ := v.Number("size")
	assert.Equal(t, 12.0, n)
}

func TestHandles(t *testing.T) {
	v, el, signals := bind(t)
	count := testSchema.Number("count")
	label := testSchema.Text("label")
	disabled := testSchema.Bool("disabled")
	submit := testSchema.Listener("submit")

	count.Set(v, count.Get(v)+1)
	count.Set(v, count.Get(v)+1)
	assert.Equal(t, "2", attr(el, "count"))
	assert.Equal(t, "count", count.Name())

	label.Set(v, "hello")
	assert.Equal(t, "hello", label.Get(v))
	assert.Equal(t, "label", label.Name())

	disabled.Set(v, true)
	assert.True(t, disabled.Get(v))
	assert.Equal(t, "disabled", disabled.Name())

	assert.Equal(t, "onsubmit", submit.Key())
	submit.Dispatch(v, 1)
	require.Len(t, *signals, 1)
	assert.Equal(t, "submit", (*signals)[0].name)

	assert.Panics(t, func() { testSchema.Number("label") })
	assert.Panics(t, func() { testSchema.Text("missing") })
	assert.Panics(t, func() { testSchema.Bool("onsubmit") })
	assert.Panics(t, func() { testSchema.Listener("count") })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "required(number)", Required(TypeNumber).String())
	assert.Equal(t, "optional(0)", Optional(0).String())
	assert.Equal(t, `optional("light")`, Optional("light").String())
	assert.Equal(t, "listener", Listener().String())
	assert.Equal(t, "invalid", Kind{}.String())
	assert.Equal(t, 3.0, Optional(int8(3)).Default())
}

func TestView_NilDispatcherIsSilent(t *testing.T) {
	v := testSchema.Bind(dom.NewElement("x"), nil)
	dispatch, err := v.Dispatcher("onsubmit")
	require.NoError(t, err)
	assert.NotPanics(t, func() { dispatch("ignored") })
}

func attr(el *dom.Element, name string) string {
	v, _ := el.GetAttribute(name)
	return v
}
