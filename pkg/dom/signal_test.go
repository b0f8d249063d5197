package dom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fortis/fortis/pkg/errors"
)

func TestSignal_DeliversDetailInOrder(t *testing.T) {
	el := NewElement("form")
	var got []string
	el.AddEventListener("submit", func(s *Signal) {
		got = append(got, "first:"+s.Detail.(string))
		assert.Same(t, el, s.Target)
		assert.Same(t, el, s.CurrentTarget)
	}, ListenerOptions{})
	el.AddEventListener("submit", func(s *Signal) {
		got = append(got, "second")
	}, ListenerOptions{})
	el.AddEventListener("reset", func(s *Signal) {
		got = append(got, "reset")
	}, ListenerOptions{})

	el.Dispatch("submit", "x")

	assert.Equal(t, []string{"first:x", "second"}, got)
}

func TestSignal_RemoveHandle(t *testing.T) {
	el := NewElement("div")
	calls := 0
	remove := el.AddEventListener("ping", func(*Signal) { calls++ }, ListenerOptions{})

	el.Dispatch("ping", nil)
	remove()
	remove()
	el.Dispatch("ping", nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, el.ListenerCount("ping"))
}

func TestSignal_Once(t *testing.T) {
	el := NewElement("div")
	calls := 0
	el.AddEventListener("ping", func(*Signal) { calls++ }, ListenerOptions{Once: true})

	el.Dispatch("ping", nil)
	el.Dispatch("ping", nil)

	assert.Equal(t, 1, calls)
}

func TestSignal_ContextRemovesListener(t *testing.T) {
	el := NewElement("div")
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	el.AddEventListener("ping", func(*Signal) { calls++ }, ListenerOptions{Context: ctx})
	require.Equal(t, 1, el.ListenerCount("ping"))

	el.Dispatch("ping", nil)
	cancel()
	assert.Equal(t, 0, el.ListenerCount("ping"))
	el.Dispatch("ping", nil)

	assert.Equal(t, 1, calls)

	el.AddEventListener("ping", func(*Signal) { calls++ }, ListenerOptions{Context: ctx})
	el.Dispatch("ping", nil)
	assert.Equal(t, 1, calls, "already-done context never registers")
}

func TestSignal_ListenerAddedDuringDispatchWaits(t *testing.T) {
	el := NewElement("div")
	calls := 0
	el.AddEventListener("ping", func(*Signal) {
		el.AddEventListener("ping", func(*Signal) { calls++ }, ListenerOptions{})
	}, ListenerOptions{Once: true})

	el.Dispatch("ping", nil)
	assert.Equal(t, 0, calls)
	el.Dispatch("ping", nil)
	assert.Equal(t, 1, calls)
}

func TestSignal_Bubbling(t *testing.T) {
	outer := NewElement("section")
	inner := NewElement("button")
	outer.AppendChild(inner)

	var seen []string
	outer.AddEventListener("press", func(s *Signal) {
		seen = append(seen, "outer")
		assert.Same(t, inner, s.Target)
		assert.Same(t, outer, s.CurrentTarget)
	}, ListenerOptions{})
	inner.AddEventListener("press", func(*Signal) { seen = append(seen, "inner") }, ListenerOptions{})

	inner.Dispatch("press", nil)
	assert.Equal(t, []string{"inner"}, seen, "plain signals do not bubble")

	seen = nil
	inner.DispatchSignal(&Signal{Name: "press", Bubbles: true})
	assert.Equal(t, []string{"inner", "outer"}, seen)

	seen = nil
	inner.AddEventListener("press", func(s *Signal) { s.StopPropagation() }, ListenerOptions{})
	inner.DispatchSignal(&Signal{Name: "press", Bubbles: true})
	assert.Equal(t, []string{"inner"}, seen)
}

func TestSignal_BubblingStopsAtBoundary(t *testing.T) {
	host := NewElement("fortis-x")
	inner := NewElement("button")
	host.AttachBoundary().AppendChild(inner)

	reached := false
	host.AddEventListener("press", func(*Signal) { reached = true }, ListenerOptions{})
	inner.DispatchSignal(&Signal{Name: "press", Bubbles: true})

	assert.False(t, reached)
}

type nopHandler struct{ panics int }

func (h *nopHandler) HandleError(*errors.FortisError) {}
func (h *nopHandler) HandlePanic(*errors.PanicError) { h.panics++ }
func (h *nopHandler) HandleRenderError(*errors.RenderError) {}

func TestSignal_PanickingListenerIsReported(t *testing.T) {
	handler := &nopHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	el := NewElement("div")
	after := false
	el.AddEventListener("ping", func(*Signal) { panic("boom") }, ListenerOptions{})
	el.AddEventListener("ping", func(*Signal) { after = true }, ListenerOptions{})

	el.Dispatch("ping", nil)

	assert.Equal(t, 1, handler.panics)
	assert.True(t, after)
}

func TestSignal_NilListenerIgnored(t *testing.T) {
	el := NewElement("div")
	remove := el.AddEventListener("ping", nil, ListenerOptions{})
	remove()
	assert.Equal(t, 0, el.ListenerCount("ping"))
}
