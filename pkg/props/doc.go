// Package props maps a component's declared prop schema onto the string
// attributes of its host element.
//
// A schema is compiled once per component definition:
//
//	var schema = props.MustCompile(
//	    props.Entry{Name: "count", Kind: props.Optional(0)},
//	    props.Entry{Name: "label", Kind: props.Required(props.TypeString)},
//	    props.Entry{Name: "change", Kind: props.Listener()},
//	)
//
// and bound to each instance's attribute store as a [View]. Reads coerce the
// attribute text to the declared type; writes store the text form. The
// listener "change" is exposed as the dispatch-only key "onchange".
//
// Typed handles resolve a prop once, at definition time:
//
//	var count = schema.Number("count")
//	count.Set(view, count.Get(view)+1)
package props
