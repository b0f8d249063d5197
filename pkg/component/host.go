package component

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
	"github.com/go-fortis/fortis/pkg/props"
)

// State is a host's lifecycle state.
type State int

const (
	// StateConstructed: props view bound, no boundary yet.
	StateConstructed State = iota + 1
	// StateBoundaryAttached: boundary exists, nothing rendered.
	StateBoundaryAttached
	// StateRendered: the boundary holds a render result. Re-renders stay here.
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateBoundaryAttached:
		return "boundary-attached"
	case StateRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Host is one live component instance. It owns the host element's
// attributes (through its props view) and the element's boundary.
//
// Host is not safe for concurrent use; all calls run synchronously on the
// caller's goroutine, and a prop write returns only after any resulting
// re-render has completed.
type Host struct {
	def       *Definition
	component Component
	element   *dom.Element
	view      *props.View
	boundary  *dom.Boundary
	styleNode *dom.Element
	state     State
	renders   int
}

// New constructs an instance of def and performs its first render.
func New(def *Definition) *Host {
	el := dom.NewElement(def.name)
	h := &Host{def: def, element: el}
	el.SetBehavior(h)
	h.view = def.schema.Bind(el, h.dispatch)
	h.component = def.create()
	h.state = StateConstructed

	h.boundary = el.AttachBoundary()
	h.state = StateBoundaryAttached
	el.ObserveAttributes(def.schema.Observed(), h.attributeChanged)

	h.Rerender()
	return h
}

// HostOf returns the instance hosted by n, if n is a component element.
func HostOf(n dom.Node) (*Host, bool) {
	el, ok := n.(*dom.Element)
	if !ok {
		return nil, false
	}
	h, ok := el.Behavior().(*Host)
	return h, ok
}

// Element returns the host element.
func (h *Host) Element() *dom.Element { return h.element }

// Props returns the instance's props view.
func (h *Host) Props() *props.View { return h.view }

// Boundary returns the instance's rendering boundary.
func (h *Host) Boundary() *dom.Boundary { return h.boundary }

// Definition returns the instance's definition.
func (h *Host) Definition() *Definition { return h.def }

// Component returns the per-instance component value.
func (h *Host) Component() Component { return h.component }

// State returns the lifecycle state.
func (h *Host) State() State { return h.state }

// RenderCount returns how many times the instance has rendered.
func (h *Host) RenderCount() int { return h.renders }

// Rerender replaces the boundary's content with a fresh render result. The
// style block is inserted on the first render only and kept in place.
func (h *Host) Rerender() {
	for _, child := range h.boundary.ChildNodes() {
		if h.styleNode != nil && dom.SameNode(child, h.styleNode) {
			continue
		}
		h.boundary.RemoveChild(child)
	}
	if h.def.style != "" && h.styleNode == nil {
		h.styleNode = dom.NewElement("style")
		h.styleNode.AppendChild(dom.NewText(h.def.style))
		h.boundary.InsertBefore(h.styleNode, h.boundary.FirstChild())
	}

	h.safeRender()
	h.renders++
	h.state = StateRendered
	slog.Debug("component rendered", "component", h.def.name, "renders", h.renders)
}

// safeRender runs Render and appends its result to the boundary. A panic in
// either step, or a result of an unsupported type, is reported as a
// RenderError and leaves the boundary without a result.
func (h *Host) safeRender() {
	var renderErr *errors.RenderError
	fail := func(recovered any, err error) {
		renderErr = &errors.RenderError{
			Component:  h.def.name,
			Type:       reflect.TypeOf(h.component).String(),
			Recovered:  recovered,
			Err:        err,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				fail(r, nil)
			}
		}()
		var out dom.Node
		switch v := h.component.Render(h).(type) {
		case nil:
		case dom.Node:
			out = v
		case string:
			out = dom.NewText(v)
		default:
			fail(nil, fmt.Errorf("unsupported render result %T", v))
		}
		if out != nil && renderErr == nil {
			h.boundary.AppendChild(out)
		}
	}()

	if renderErr != nil {
		errors.ReportRenderError(renderErr)
	}
}

func (h *Host) attributeChanged(name string, oldValue, newValue dom.AttrValue) {
	if oldValue.Equal(newValue) {
		return
	}
	slog.Debug("observed attribute changed", "component", h.def.name, "attribute", name, "old", oldValue, "new", newValue)
	h.Rerender()
}

func (h *Host) dispatch(name string, detail any) {
	h.element.DispatchSignal(dom.NewSignal(name, detail))
}
