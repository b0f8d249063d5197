package testing

import (
	"fmt"
	"strings"

	"github.com/go-fortis/fortis/pkg/component"
	"github.com/go-fortis/fortis/pkg/dom"
)

// Finder locates nodes in a mounted tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order,
	// descending into rendering boundaries).
	Evaluate(root dom.Node) []dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() dom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) dom.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Element returns the first match as an element. Panics if there is no
// match or the first match is not an element.
func (r FinderResult) Element() *dom.Element {
	el, ok := r.First().(*dom.Element)
	if !ok {
		panic(fmt.Sprintf("Finder matched a %s node, not an element: %s", r.First().NodeType(), r.description()))
	}
	return el
}

// Host returns the component instance hosted by the first match. Panics if
// the first match is not a component host.
func (r FinderResult) Host() *component.Host {
	h, ok := component.HostOf(r.First())
	if !ok {
		panic(fmt.Sprintf("Finder match is not a component host: %s", r.description()))
	}
	return h
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// tagFinder matches elements by tag name.
type tagFinder struct {
	tag string
}

func (f *tagFinder) Evaluate(root dom.Node) []dom.Node {
	return collectMatches(root, func(n dom.Node) bool {
		el, ok := n.(*dom.Element)
		return ok && el.TagName() == f.tag
	})
}

func (f *tagFinder) Description() string {
	return fmt.Sprintf("ByTag(%q)", f.tag)
}

// ByTag returns a finder that matches elements with the given tag name.
func ByTag(tag string) Finder {
	return &tagFinder{tag: tag}
}

// ByComponent returns a finder that matches hosts of def.
func ByComponent(def *component.Definition) Finder {
	return &predicateFinder{
		fn: func(n dom.Node) bool {
			h, ok := component.HostOf(n)
			return ok && h.Definition().Name() == def.Name()
		},
		desc: fmt.Sprintf("ByComponent(%s)", def.Name()),
	}
}

// attrFinder matches elements carrying an attribute, optionally with a
// specific value.
type attrFinder struct {
	name     string
	value    string
	anyValue bool
}

func (f *attrFinder) Evaluate(root dom.Node) []dom.Node {
	return collectMatches(root, func(n dom.Node) bool {
		el, ok := n.(*dom.Element)
		if !ok {
			return false
		}
		v, ok := el.GetAttribute(f.name)
		return ok && (f.anyValue || v == f.value)
	})
}

func (f *attrFinder) Description() string {
	if f.anyValue {
		return fmt.Sprintf("ByAttr(%q)", f.name)
	}
	return fmt.Sprintf("ByAttr(%q=%q)", f.name, f.value)
}

// ByAttr returns a finder that matches elements whose attribute name equals
// value.
func ByAttr(name, value string) Finder {
	return &attrFinder{name: name, value: value}
}

// ByAttrPresent returns a finder that matches elements carrying attribute
// name with any value.
func ByAttrPresent(name string) Finder {
	return &attrFinder{name: name, anyValue: true}
}

// textFinder matches text nodes by exact content.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root dom.Node) []dom.Node {
	return collectMatches(root, func(n dom.Node) bool {
		return n.NodeType() == dom.TextNode && n.TextContent() == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches text nodes, reactive leaves included,
// with exact content.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches text nodes containing a substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root dom.Node) []dom.Node {
	return collectMatches(root, func(n dom.Node) bool {
		return n.NodeType() == dom.TextNode && strings.Contains(n.TextContent(), f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches text nodes containing the
// given substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(dom.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root dom.Node) []dom.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(dom.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root dom.Node) []dom.Node {
	var results []dom.Node
	for _, ancestor := range f.of.Evaluate(root) {
		for _, match := range f.matching.Evaluate(ancestor) {
			if dom.SameNode(match, ancestor) || containsNode(results, match) {
				continue
			}
			results = append(results, match)
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds nodes matching 'matching' that are ancestors of
// nodes matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root dom.Node) []dom.Node {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	var results []dom.Node
	for _, candidate := range f.matching.Evaluate(root) {
		for _, desc := range descendants {
			if !dom.SameNode(candidate, desc) && isAncestorOf(candidate, desc) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches nodes satisfying 'matching'
// that are ancestors of nodes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// isAncestorOf reports whether descendant lies in ancestor's composed
// subtree.
func isAncestorOf(ancestor, descendant dom.Node) bool {
	found := false
	dom.WalkComposed(ancestor, func(n dom.Node) bool {
		if found {
			return false
		}
		if dom.SameNode(n, descendant) {
			found = true
		}
		return !found
	})
	return found
}

func containsNode(nodes []dom.Node, n dom.Node) bool {
	for _, c := range nodes {
		if dom.SameNode(c, n) {
			return true
		}
	}
	return false
}

// collectMatches performs a depth-first pre-order traversal, collecting
// nodes that satisfy the predicate.
func collectMatches(root dom.Node, predicate func(dom.Node) bool) []dom.Node {
	var results []dom.Node
	dom.WalkComposed(root, func(n dom.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}
