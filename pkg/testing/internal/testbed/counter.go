// Package testbed provides internal test components for the testing framework.
package testbed

import (
	"github.com/go-fortis/fortis/pkg/component"
	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/factory"
	"github.com/go-fortis/fortis/pkg/props"
)

var counterSchema = props.MustCompile(
	props.Entry{Name: "count", Kind: props.Optional(0)},
	props.Entry{Name: "tap", Kind: props.Listener()},
)

var (
	count = counterSchema.Number("count")
	tap   = counterSchema.Listener("tap")
)

// Counter displays its count in a button and increments it on "click",
// emitting "tap" with the new count.
var Counter = component.WithName(component.DefineFunc(counterSchema, func(h *component.Host) any {
	p := h.Props()
	f := factory.New(nil)
	return f.Build("button", factory.Props{
		"class": "counter",
		"onclick": func() {
			next := count.Get(p) + 1
			count.Set(p, next)
			tap.Dispatch(p, next)
		},
	}, count.Get(p))
}, component.WithStyle(".counter { font-weight: bold }")), "test-counter")

// Static renders fixed markup with a projected slot.
var Static = component.WithName(component.DefineFunc(nil, func(*component.Host) any {
	el := dom.NewElement("section")
	el.SetAttribute("role", "region")
	el.AppendChild(dom.NewText("static"))
	el.AppendChild(dom.NewElement("slot"))
	return el
}), "test-static")
