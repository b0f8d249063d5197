package dom

import (
	"fmt"
	"slices"
	"strings"
)

// Namespace URIs for namespaced elements.
const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
)

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// AttrValue is an attribute's state as seen by an observer: Present is false
// when the attribute is absent, in which case Value is empty.
type AttrValue struct {
	Value   string
	Present bool
}

// Equal reports whether both values have the same presence and text.
func (v AttrValue) Equal(other AttrValue) bool {
	return v.Present == other.Present && v.Value == other.Value
}

func (v AttrValue) String() string {
	if !v.Present {
		return "<absent>"
	}
	return fmt.Sprintf("%q", v.Value)
}

// AttributeObserver is called synchronously after every write to an
// observed attribute, including writes that leave the value unchanged.
type AttributeObserver func(name string, oldValue, newValue AttrValue)

// Element is a named node with attributes, a live style map, signal
// listeners and an optional rendering boundary.
type Element struct {
	container
	tag       string
	namespace string
	attrs     []Attr
	style     *Style
	listeners map[string][]*listener
	boundary  *Boundary
	observed  map[string]struct{}
	observer  AttributeObserver
	behavior  any
}

// NewElement creates a detached element in the default namespace.
func NewElement(tag string) *Element {
	return NewElementNS(HTMLNamespace, tag)
}

// NewElementNS creates a detached element in the given namespace.
func NewElementNS(namespace, tag string) *Element {
	e := &Element{tag: tag, namespace: namespace}
	e.self = e
	return e
}

func (e *Element) NodeType() NodeType { return ElementNode }

// TextContent returns the concatenated text of the element's light subtree.
func (e *Element) TextContent() string { return e.textContent() }

// TagName returns the element's local name.
func (e *Element) TagName() string { return e.tag }

// Namespace returns the element's namespace URI.
func (e *Element) Namespace() string { return e.namespace }

// GetAttribute returns the attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	if i := e.attrIndex(name); i >= 0 {
		return e.attrs[i].Value, true
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	return e.attrIndex(name) >= 0
}

// Attributes returns a snapshot of the attributes in insertion order.
func (e *Element) Attributes() []Attr {
	return slices.Clone(e.attrs)
}

// SetAttribute sets the attribute to value.
func (e *Element) SetAttribute(name, value string) {
	old := e.attrValue(name)
	if i := e.attrIndex(name); i >= 0 {
		e.attrs[i].Value = value
	} else {
		e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	}
	e.notify(name, old, AttrValue{Value: value, Present: true})
}

// RemoveAttribute removes the attribute. Removing an absent attribute does
// nothing and is not observed.
func (e *Element) RemoveAttribute(name string) {
	i := e.attrIndex(name)
	if i < 0 {
		return
	}
	old := AttrValue{Value: e.attrs[i].Value, Present: true}
	e.attrs = slices.Delete(e.attrs, i, i+1)
	e.notify(name, old, AttrValue{})
}

// ToggleAttribute forces the attribute's presence: present with an empty
// value when force is true, absent otherwise. It reports the resulting
// presence. A toggle that does not change presence is not observed.
func (e *Element) ToggleAttribute(name string, force bool) bool {
	has := e.HasAttribute(name)
	switch {
	case force && !has:
		e.SetAttribute(name, "")
	case !force && has:
		e.RemoveAttribute(name)
	}
	return force
}

// ObserveAttributes installs fn as the element's attribute observer for the
// given names. A later call replaces the previous observer.
func (e *Element) ObserveAttributes(names []string, fn AttributeObserver) {
	e.observed = make(map[string]struct{}, len(names))
	for _, name := range names {
		e.observed[name] = struct{}{}
	}
	e.observer = fn
}

// Style returns the element's live style map.
func (e *Element) Style() *Style {
	if e.style == nil {
		e.style = &Style{}
	}
	return e.style
}

// AttachBoundary creates the element's rendering boundary. An element has at
// most one boundary; attaching twice panics.
func (e *Element) AttachBoundary() *Boundary {
	if e.boundary != nil {
		panic(fmt.Errorf("dom: <%s> already has a boundary", e.tag))
	}
	e.boundary = newBoundary(e)
	return e.boundary
}

// Boundary returns the element's rendering boundary, or nil.
func (e *Element) Boundary() *Boundary {
	return e.boundary
}

// SetBehavior attaches a controller value to the element, such as the
// component instance hosted by it.
func (e *Element) SetBehavior(v any) {
	e.behavior = v
}

// Behavior returns the controller value attached with SetBehavior.
func (e *Element) Behavior() any {
	return e.behavior
}

// HasClass reports whether the class attribute lists name.
func (e *Element) HasClass(name string) bool {
	v, _ := e.GetAttribute("class")
	return slices.Contains(strings.Fields(v), name)
}

// ToggleClass adds name to the class attribute, or removes it when already
// listed, and reports whether it is now listed.
func (e *Element) ToggleClass(name string) bool {
	v, _ := e.GetAttribute("class")
	classes := strings.Fields(v)
	on := true
	if i := slices.Index(classes, name); i >= 0 {
		classes = slices.Delete(classes, i, i+1)
		on = false
	} else {
		classes = append(classes, name)
	}
	e.SetAttribute("class", strings.Join(classes, " "))
	return on
}

// Closest returns the nearest inclusive ancestor matching the predicate.
func (e *Element) Closest(match func(Node) bool) Node {
	return NearestAncestor(e, match)
}

func (e *Element) attrIndex(name string) int {
	return slices.IndexFunc(e.attrs, func(a Attr) bool {
		return a.Name == name
	})
}

func (e *Element) attrValue(name string) AttrValue {
	v, ok := e.GetAttribute(name)
	return AttrValue{Value: v, Present: ok}
}

func (e *Element) notify(name string, oldValue, newValue AttrValue) {
	if e.observer == nil {
		return
	}
	if _, ok := e.observed[name]; !ok {
		return
	}
	e.observer(name, oldValue, newValue)
}
