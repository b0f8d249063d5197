package testing

import (
	"testing"

	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/testing/internal/testbed"
)

func TestMatchesGolden(t *testing.T) {
	tester := NewTesterWithT(t)
	f := tester.Factory()
	tester.Mount(
		f.Build(testbed.Counter, nil),
		f.Build(testbed.Static, nil, "light"),
	)
	tester.Click(ByTag("button"))
	tester.Click(ByTag("button"))

	tester.MatchesGolden(t, "counter")
}

func TestOutline(t *testing.T) {
	p := dom.NewElement("p")
	p.SetAttribute("id", "x")
	p.Style().Set("color", "red")
	p.AppendChild(dom.NewText("hi"))

	want := "p id=\"x\" {color: red;}\n  \"hi\"\n"
	if got := Outline(p); got != want {
		t.Errorf("Outline mismatch\n got: %q\nwant: %q", got, want)
	}
}
