package component

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/go-fortis/fortis/pkg/props"
)

// NamePrefix starts every component's stable name.
const NamePrefix = "fortis-"

// Component renders one instance's boundary content. Render must depend
// only on the instance's current props: the engine calls it on every
// observed attribute change and expects equivalent output for equivalent
// props. It returns a dom.Node, a string (rendered as text) or nil.
type Component interface {
	Render(h *Host) any
}

// RenderFunc adapts a function to the Component interface.
type RenderFunc func(h *Host) any

// Render calls f(h).
func (f RenderFunc) Render(h *Host) any { return f(h) }

// Definition describes a component type: its stable name, prop schema,
// style text and a constructor for per-instance component values.
// Definitions are immutable once created.
type Definition struct {
	name   string
	schema *props.Schema
	style  string
	create func() Component
}

// Option configures a Definition.
type Option func(*Definition)

// WithStyle sets the style text injected once into every instance's
// boundary.
func WithStyle(css string) Option {
	return func(d *Definition) {
		d.style = css
	}
}

// Define creates a definition with a time-ordered unique stable name.
// create is called once per instance; a nil schema declares no props.
func Define(schema *props.Schema, create func() Component, opts ...Option) *Definition {
	if create == nil {
		panic(fmt.Errorf("component: Define requires a constructor"))
	}
	if schema == nil {
		schema = props.MustCompile()
	}
	d := &Definition{
		name:   NamePrefix + uuid.Must(uuid.NewV7()).String(),
		schema: schema,
		create: create,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DefineFunc is Define for components without per-instance state.
func DefineFunc(schema *props.Schema, render func(h *Host) any, opts ...Option) *Definition {
	return Define(schema, func() Component { return RenderFunc(render) }, opts...)
}

// WithName returns a copy of def whose stable name is NamePrefix followed by
// name, NFC-normalized and lower-cased. def itself is not modified. Rename a
// definition before its first registration.
func WithName(def *Definition, name string) *Definition {
	name = cases.Lower(language.Und).String(norm.NFC.String(name))
	if name == "" {
		panic(fmt.Errorf("component: empty name"))
	}
	renamed := *def
	renamed.name = NamePrefix + name
	return &renamed
}

// Name returns the stable name.
func (d *Definition) Name() string { return d.name }

// Schema returns the compiled prop schema.
func (d *Definition) Schema() *props.Schema { return d.schema }

// Style returns the style text.
func (d *Definition) Style() string { return d.style }
