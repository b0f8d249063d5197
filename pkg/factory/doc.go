// Package factory builds UI trees declaratively.
//
//	f := factory.New(registry)
//	list := f.Build("ul", factory.Props{"class": "todos"},
//		f.Build(Item, factory.Props{"done": true}, "milk"),
//		items,
//	)
//
// A tag is an element name, a component definition or a function
// component. Children may be nodes, strings, numbers or arbitrarily nested
// slices of them.
package factory
