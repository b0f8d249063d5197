package dom

import (
	"context"
	"slices"

	"github.com/go-fortis/fortis/pkg/errors"
)

// Signal is a named notification carrying an optional opaque payload.
type Signal struct {
	// Name identifies the signal, e.g. "submit".
	Name string
	// Detail is the payload supplied by the dispatcher.
	Detail any
	// Bubbles makes the signal continue to ancestors after the target.
	Bubbles bool
	// Target is the element the signal was dispatched on.
	Target *Element
	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element

	stopped bool
}

// NewSignal creates a non-bubbling signal.
func NewSignal(name string, detail any) *Signal {
	return &Signal{Name: name, Detail: detail}
}

// StopPropagation prevents delivery to further ancestors.
func (s *Signal) StopPropagation() {
	s.stopped = true
}

// ListenerOptions controls how long a listener stays registered.
type ListenerOptions struct {
	// Once removes the listener after its first delivery.
	Once bool
	// Context removes the listener once it is done; a listener whose
	// context is done is never called again.
	Context context.Context
}

type listener struct {
	fn      func(*Signal)
	once    bool
	ctx     context.Context
	removed bool
}

// AddEventListener registers fn for signals named name and returns a
// function that removes it. Listeners run synchronously in registration
// order.
func (e *Element) AddEventListener(name string, fn func(*Signal), opts ListenerOptions) (remove func()) {
	if fn == nil {
		return func() {}
	}
	if opts.Context != nil && opts.Context.Err() != nil {
		return func() {}
	}
	l := &listener{fn: fn, once: opts.Once, ctx: opts.Context}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	e.listeners[name] = append(e.listeners[name], l)
	return func() { e.removeListener(name, l) }
}

// ListenerCount returns the number of live listeners for name.
func (e *Element) ListenerCount(name string) int {
	n := 0
	for _, l := range e.listeners[name] {
		if !l.removed && (l.ctx == nil || l.ctx.Err() == nil) {
			n++
		}
	}
	return n
}

// DispatchSignal delivers s to the element's listeners and, when s bubbles,
// to the listeners of each ancestor in turn. Delivery stops at a boundary.
// A panicking listener is reported and does not prevent delivery to the
// remaining listeners.
func (e *Element) DispatchSignal(s *Signal) {
	s.Target = e
	var cur Node = e
	for cur != nil {
		if el, ok := cur.(*Element); ok {
			el.deliver(s)
		}
		if !s.Bubbles || s.stopped {
			break
		}
		cur = cur.Parent()
	}
	s.CurrentTarget = nil
}

// Dispatch is shorthand for dispatching a non-bubbling signal.
func (e *Element) Dispatch(name string, detail any) {
	e.DispatchSignal(NewSignal(name, detail))
}

func (e *Element) deliver(s *Signal) {
	snapshot := slices.Clone(e.listeners[s.Name])
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		if l.ctx != nil && l.ctx.Err() != nil {
			e.removeListener(s.Name, l)
			continue
		}
		if l.once {
			e.removeListener(s.Name, l)
		}
		s.CurrentTarget = e
		func() {
			defer errors.Recover("dom.DispatchSignal")
			l.fn(s)
		}()
	}
}

func (e *Element) removeListener(name string, l *listener) {
	l.removed = true
	list := e.listeners[name]
	if i := slices.Index(list, l); i >= 0 {
		e.listeners[name] = slices.Delete(list, i, i+1)
	}
	if len(e.listeners[name]) == 0 {
		delete(e.listeners, name)
	}
}
