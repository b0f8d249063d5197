package factory

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-fortis/fortis/pkg/component"
	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
	"github.com/go-fortis/fortis/pkg/props"
)

// Props are the attributes, style and listeners passed to Build. A nil map
// is valid.
type Props map[string]any

// FuncComponent is a stateless component: it is called once per Build with
// the props and the raw children under "children", and its result has no
// lifecycle of its own.
type FuncComponent func(Props) dom.Node

// Namespace prefixes recognized on intrinsic tags.
const (
	SVGPrefix  = "svg:"
	MathPrefix = "math:"
)

// Factory builds trees of elements, text and component instances.
type Factory struct {
	registry *component.Registry
}

// New creates a factory that registers component definitions in reg. A nil
// reg gets a fresh registry.
func New(reg *component.Registry) *Factory {
	if reg == nil {
		reg = component.NewRegistry()
	}
	return &Factory{registry: reg}
}

// Registry returns the factory's registry.
func (f *Factory) Registry() *component.Registry {
	return f.registry
}

// Build materializes tag with props and children.
//
// tag is a *component.Definition (registered on first use, then built by
// name), a FuncComponent, or an element name. A registered name yields a
// new component instance. An "svg:" or "math:" prefix yields a namespaced
// element.
//
// Props apply in sorted key order: "style" given as a map assigns each
// entry onto the live style map; "on<name>" subscribes a listener to
// signal <name>; a bool toggles attribute presence; any other value is
// stringified into an attribute. Nil values are skipped.
//
// Children append depth-first: nodes and strings as-is, numbers as text,
// slices and arrays flattened at any depth, nil and bools dropped.
//
// Build never mutates props or children. An unusable tag or listener
// panics with an *errors.FortisError.
func (f *Factory) Build(tag any, p Props, children ...any) dom.Node {
	switch t := tag.(type) {
	case *component.Definition:
		f.registry.Define(t)
		return f.Build(t.Name(), p, children...)
	case FuncComponent:
		return t(withChildren(p, children))
	case func(Props) dom.Node:
		return t(withChildren(p, children))
	case string:
		el := f.materialize(t)
		applyProps(el, p)
		AppendChildren(el, children...)
		return el
	default:
		panic(invalidTag(fmt.Sprintf("unsupported tag type %T", tag)))
	}
}

func (f *Factory) materialize(tag string) *dom.Element {
	switch {
	case tag == "":
		panic(invalidTag("empty tag name"))
	case strings.HasPrefix(tag, SVGPrefix) && len(tag) > len(SVGPrefix):
		return dom.NewElementNS(dom.SVGNamespace, tag[len(SVGPrefix):])
	case strings.HasPrefix(tag, MathPrefix) && len(tag) > len(MathPrefix):
		return dom.NewElementNS(dom.MathMLNamespace, tag[len(MathPrefix):])
	}
	tag = strings.ToLower(tag)
	if h, ok := f.registry.New(tag); ok {
		return h.Element()
	}
	return dom.NewElement(tag)
}

func withChildren(p Props, children []any) Props {
	merged := make(Props, len(p)+1)
	maps.Copy(merged, p)
	merged[props.ChildrenKey] = slices.Clone(children)
	return merged
}

func applyProps(el *dom.Element, p Props) {
	for _, key := range slices.Sorted(maps.Keys(p)) {
		value := p[key]
		if value == nil {
			continue
		}
		if key == "style" && applyStyle(el, value) {
			continue
		}
		if strings.HasPrefix(key, props.ListenerPrefix) && len(key) > len(props.ListenerPrefix) {
			subscribe(el, key[len(props.ListenerPrefix):], value)
			continue
		}
		if b, ok := value.(bool); ok {
			el.ToggleAttribute(key, b)
			continue
		}
		el.SetAttribute(key, props.Stringify(value))
	}
}

// applyStyle reports whether value was a style map. Other style values fall
// through to a plain attribute.
func applyStyle(el *dom.Element, value any) bool {
	switch m := value.(type) {
	case map[string]string:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			el.Style().Set(k, m[k])
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if m[k] == nil {
				el.Style().Remove(k)
				continue
			}
			el.Style().Set(k, props.Stringify(m[k]))
		}
	default:
		return false
	}
	return true
}

func subscribe(el *dom.Element, name string, value any) {
	var fn func(*dom.Signal)
	switch h := value.(type) {
	case func(*dom.Signal):
		fn = h
	case func(detail any):
		fn = func(s *dom.Signal) { h(s.Detail) }
	case func():
		fn = func(*dom.Signal) { h() }
	default:
		panic(&errors.FortisError{
			Op:   "factory.Build",
			Kind: errors.KindFactory,
			Key:  props.ListenerPrefix + name,
			Err:  fmt.Errorf("%w: listener prop holds %T", errors.ErrInvalidTag, value),
		})
	}
	el.AddEventListener(name, fn, dom.ListenerOptions{})
}

// AppendChildren appends children to el following Build's child rules.
func AppendChildren(el *dom.Element, children ...any) {
	for _, child := range children {
		appendChild(el, child)
	}
}

func appendChild(el *dom.Element, child any) {
	switch c := child.(type) {
	case nil, bool:
	case dom.Node:
		if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return
		}
		el.AppendChild(c)
	case string:
		el.AppendChild(dom.NewText(c))
	case []any:
		AppendChildren(el, c...)
	default:
		if props.IsNumber(c) {
			el.AppendChild(dom.NewText(props.Stringify(c)))
			return
		}
		rv := reflect.ValueOf(c)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := range rv.Len() {
				appendChild(el, rv.Index(i).Interface())
			}
			return
		}
		errors.Report(&errors.FortisError{
			Op:   "factory.Build",
			Kind: errors.KindFactory,
			Key:  el.TagName(),
			Err:  fmt.Errorf("%w: %T", errors.ErrUnsupportedChild, child),
		})
	}
}

func invalidTag(detail string) *errors.FortisError {
	return &errors.FortisError{
		Op:   "factory.Build",
		Kind: errors.KindFactory,
		Err:  fmt.Errorf("%w: %s", errors.ErrInvalidTag, detail),
	}
}
