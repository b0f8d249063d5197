package scope

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
	"github.com/go-fortis/fortis/pkg/factory"
	"github.com/go-fortis/fortis/pkg/props"
)

// ChangeSignal is dispatched on a provider element with the new value as
// its detail whenever the provider's value changes.
const ChangeSignal = "contextchange"

// ElementPrefix starts the element name of every provider.
const ElementPrefix = "fortis-context-"

// ValueProp is the prop read by Provide.
const ValueProp = "value"

// Context is a channel for values of type T. Providers of the same context
// share an element name, which consumers search for among their ancestors.
type Context[T any] struct {
	name  string
	def   T
	equal func(a, b T) bool
}

// New creates a context whose consumers fall back to def when no provider
// is found. Values are compared with ==.
func New[T comparable](def T) *Context[T] {
	return NewWithEquality(def, func(a, b T) bool { return a == b })
}

// NewWithEquality is like New for types that are not comparable or need a
// custom notion of equality.
func NewWithEquality[T any](def T, equal func(a, b T) bool) *Context[T] {
	return &Context[T]{
		name:  ElementPrefix + uuid.Must(uuid.NewV7()).String(),
		def:   def,
		equal: equal,
	}
}

// Name returns the element name of the context's providers.
func (c *Context[T]) Name() string { return c.name }

// Default returns the fallback value.
func (c *Context[T]) Default() T { return c.def }

// Provider holds a context value for the subtree below its element.
type Provider[T any] struct {
	ctx     *Context[T]
	element *dom.Element
	value   T
}

// NewProvider creates a detached provider holding initial.
func (c *Context[T]) NewProvider(initial T) *Provider[T] {
	p := &Provider[T]{ctx: c, element: dom.NewElement(c.name), value: initial}
	p.element.SetBehavior(p)
	return p
}

// Provide is a function component for the factory. It creates a provider
// holding the "value" prop, or the default when the prop is absent, with
// the children appended below it.
func (c *Context[T]) Provide(p factory.Props) dom.Node {
	initial := c.def
	if raw, ok := p[ValueProp]; ok {
		if raw == nil {
			var zero T
			initial = zero
		} else if v, ok := raw.(T); ok {
			initial = v
		} else {
			panic(errors.KindMismatch("scope.Provide", ValueProp, fmt.Sprintf("want %T, got %T", c.def, raw)))
		}
	}
	provider := c.NewProvider(initial)
	if children, ok := p[props.ChildrenKey].([]any); ok {
		factory.AppendChildren(provider.element, children...)
	}
	return provider.element
}

// Element returns the provider's element.
func (p *Provider[T]) Element() *dom.Element { return p.element }

// Value returns the current value.
func (p *Provider[T]) Value() T { return p.value }

// SetValue stores v and notifies change listeners. Setting a value equal to
// the current one does nothing.
func (p *Provider[T]) SetValue(v T) {
	if p.ctx.equal(p.value, v) {
		return
	}
	p.value = v
	slog.Debug("context value changed", "context", p.ctx.name, "listeners", p.element.ListenerCount(ChangeSignal))
	p.element.Dispatch(ChangeSignal, v)
}

// ProviderOf returns the provider of c nearest to n, including n itself.
// The search does not leave n's rendering boundary.
func (c *Context[T]) ProviderOf(n dom.Node) (*Provider[T], bool) {
	if n == nil {
		return nil, false
	}
	found := dom.NearestAncestor(n, func(cur dom.Node) bool {
		_, ok := c.providerAt(cur)
		return ok
	})
	if found == nil {
		return nil, false
	}
	return c.providerAt(found)
}

func (c *Context[T]) providerAt(n dom.Node) (*Provider[T], bool) {
	el, ok := n.(*dom.Element)
	if !ok || el.TagName() != c.name {
		return nil, false
	}
	p, ok := el.Behavior().(*Provider[T])
	return p, ok
}

// Consumer reads c from the providers above an anchor node. It holds no
// state of its own: every call searches again.
type Consumer[T any] struct {
	ctx    *Context[T]
	anchor dom.Node
}

// Consumer returns a consumer anchored at n, typically a component's host
// element.
func (c *Context[T]) Consumer(n dom.Node) Consumer[T] {
	return Consumer[T]{ctx: c, anchor: n}
}

// Value returns the nearest provider's value, or the context default.
func (c Consumer[T]) Value() T {
	if p, ok := c.ctx.ProviderOf(c.anchor); ok {
		return p.value
	}
	return c.ctx.def
}

// AddChangeListener subscribes fn to the provider that is nearest at call
// time. Without a provider it subscribes nothing and reports false. A
// later move of the anchor does not move the subscription.
func (c Consumer[T]) AddChangeListener(fn func(T), opts dom.ListenerOptions) (remove func(), ok bool) {
	p, ok := c.ctx.ProviderOf(c.anchor)
	if !ok || fn == nil {
		return func() {}, false
	}
	return p.element.AddEventListener(ChangeSignal, func(s *dom.Signal) {
		v, _ := s.Detail.(T)
		fn(v)
	}, opts), true
}
