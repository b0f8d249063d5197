package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/go-fortis/fortis/pkg/dom"
)

// GoldenDir is where MatchesGolden keeps its fixtures, relative to the
// package under test.
const GoldenDir = "testdata/golden"

// Outline renders n as an indented tree, one node per line. Boundaries
// appear as "#boundary" under their host and text as quoted strings.
func Outline(n dom.Node) string {
	var sb strings.Builder
	outline(&sb, n, 0)
	return sb.String()
}

func outline(sb *strings.Builder, n dom.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch n.NodeType() {
	case dom.TextNode:
		fmt.Fprintf(sb, "%q\n", n.TextContent())
		return
	case dom.BoundaryNode:
		sb.WriteString("#boundary\n")
	case dom.ElementNode:
		el := n.(*dom.Element)
		sb.WriteString(el.TagName())
		for _, a := range el.Attributes() {
			fmt.Fprintf(sb, " %s=%q", a.Name, a.Value)
		}
		if el.Style().Len() > 0 {
			fmt.Fprintf(sb, " {%s}", el.Style())
		}
		sb.WriteByte('\n')
		if b := el.Boundary(); b != nil {
			outline(sb, b, depth+1)
		}
	}
	for _, c := range n.ChildNodes() {
		outline(sb, c, depth+1)
	}
}

// Outline returns the outline of every mounted node.
func (t *Tester) Outline() string {
	var sb strings.Builder
	for _, n := range t.root.ChildNodes() {
		sb.WriteString(Outline(n))
	}
	return sb.String()
}

// MatchesGolden compares the mounted tree's outline against
// testdata/golden/<name>.golden. Run the test with -update to rewrite the
// fixture.
func (t *Tester) MatchesGolden(tb *testing.T, name string) {
	tb.Helper()
	g := goldie.New(tb,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(tb, name, []byte(t.Outline()))
}
