// Package dom provides the in-memory UI tree that components render into.
//
// The tree is made of three node kinds: [Element] (a named node with string
// attributes, a live [Style] map and signal listeners), [Text] (character
// data) and [Boundary] (the isolated subtree a host element owns and
// rewrites on every render).
//
// # Attributes
//
// Attributes are the only persistence substrate for component props. Every
// write to an observed attribute is reported synchronously to the element's
// [AttributeObserver]:
//
//	el := dom.NewElement("fortis-counter")
//	el.ObserveAttributes([]string{"count"}, func(name string, old, cur dom.AttrValue) {
//	    fmt.Println(name, old, cur)
//	})
//	el.SetAttribute("count", "1") // count <absent> "1"
//
// # Signals
//
// Signals are named notifications with an opaque Detail payload. Listeners
// can be removed through the returned function, automatically after one
// delivery, or when a context is done:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	el.AddEventListener("submit", handle, dom.ListenerOptions{Context: ctx})
//	cancel() // handle is not called again
//
// # Threading
//
// The tree is not safe for concurrent use. All mutation, attribute
// observation and signal delivery happen synchronously on the caller's
// goroutine.
package dom
