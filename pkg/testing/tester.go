package testing

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-fortis/fortis/pkg/component"
	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
	"github.com/go-fortis/fortis/pkg/factory"
)

// RootTag is the tag of the element every tester mounts into.
const RootTag = "fortis-test-root"

// ErrNoMatch is returned when an interaction's finder matches nothing.
var ErrNoMatch = stderrors.New("finder matched no element")

// Tester mounts trees under a detached root element and records every
// error, panic and render failure reported while it is installed.
type Tester struct {
	factory  *factory.Factory
	root     *dom.Element
	recorder *recorder
	prev     errors.ErrorHandler
}

// NewTester creates a tester with a fresh registry and installs its error
// recorder as the global error handler. Call Cleanup() when done, or use
// NewTesterWithT() instead.
func NewTester() *Tester {
	rec := &recorder{}
	return &Tester{
		factory:  factory.New(component.NewRegistry()),
		root:     dom.NewElement(RootTag),
		recorder: rec,
		prev:     errors.SetHandler(rec),
	}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the previous error handler.
func (t *Tester) Cleanup() {
	t.root.ReplaceChildren()
	errors.SetHandler(t.prev)
}

// Factory returns the tester's factory.
func (t *Tester) Factory() *factory.Factory {
	return t.factory
}

// Root returns the element trees are mounted under.
func (t *Tester) Root() *dom.Element {
	return t.root
}

// Mount replaces the mounted tree with nodes.
func (t *Tester) Mount(nodes ...dom.Node) {
	t.root.ReplaceChildren(nodes...)
}

// MountBuild builds tag with the tester's factory, mounts it and returns it.
func (t *Tester) MountBuild(tag any, props factory.Props, children ...any) dom.Node {
	n := t.factory.Build(tag, props, children...)
	t.Mount(n)
	return n
}

// Find evaluates a finder against the mounted tree.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{
		nodes:  finder.Evaluate(t.root),
		finder: finder,
	}
}

// Fire dispatches a signal named name with detail on the first element
// matched by finder.
func (t *Tester) Fire(finder Finder, name string, detail any) error {
	el, err := t.firstElement(finder)
	if err != nil {
		return err
	}
	el.Dispatch(name, detail)
	return nil
}

// Click fires "click" with no detail.
func (t *Tester) Click(finder Finder) error {
	return t.Fire(finder, "click", nil)
}

// SetAttr writes an attribute on the first element matched by finder, as an
// external script would.
func (t *Tester) SetAttr(finder Finder, name, value string) error {
	el, err := t.firstElement(finder)
	if err != nil {
		return err
	}
	el.SetAttribute(name, value)
	return nil
}

func (t *Tester) firstElement(finder Finder) (*dom.Element, error) {
	for _, n := range finder.Evaluate(t.root) {
		if el, ok := n.(*dom.Element); ok {
			return el, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMatch, finder.Description())
}

// HTML returns the serialized mounted tree, boundaries included.
func (t *Tester) HTML() string {
	var sb strings.Builder
	for _, n := range t.root.ChildNodes() {
		sb.WriteString(dom.OuterHTML(n))
	}
	return sb.String()
}

// Errors returns the errors reported since the tester was created.
func (t *Tester) Errors() []*errors.FortisError {
	return t.recorder.errs
}

// Panics returns the panics reported since the tester was created.
func (t *Tester) Panics() []*errors.PanicError {
	return t.recorder.panics
}

// RenderErrors returns the render failures reported since the tester was
// created.
func (t *Tester) RenderErrors() []*errors.RenderError {
	return t.recorder.renders
}

type recorder struct {
	errs    []*errors.FortisError
	panics  []*errors.PanicError
	renders []*errors.RenderError
}

func (r *recorder) HandleError(err *errors.FortisError) { r.errs = append(r.errs, err) }
func (r *recorder) HandlePanic(err *errors.PanicError) { r.panics = append(r.panics, err) }
func (r *recorder) HandleRenderError(err *errors.RenderError) { r.renders = append(r.renders, err) }
