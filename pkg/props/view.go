package props

import (
	"fmt"

	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
)

// accessor is the compiled get/set pair for one view key.
type accessor struct {
	key  string // view key ("onsubmit" for listeners)
	name string // attribute or signal name
	kind Kind
	get  func(v *View) any
	set  func(v *View, value any) error
}

func newAccessor(e Entry) *accessor {
	acc := &accessor{key: e.Name, name: e.Name, kind: e.Kind}
	name := e.Name
	switch {
	case e.Kind.IsListener():
		acc.key = ListenerPrefix + name
		acc.get = func(v *View) any {
			return func(detail any) { v.emit(name, detail) }
		}
		acc.set = func(*View, any) error {
			return errors.WriteNotAllowed("props.View.Set", ListenerPrefix+name)
		}
		return acc
	case e.Kind.IsOptional():
		def := e.Kind.def
		numeric := e.Kind.typ == TypeNumber
		acc.get = func(v *View) any {
			text, ok := v.store.GetAttribute(name)
			if !ok || text == "" {
				return def
			}
			if numeric {
				return ParseNumber(text)
			}
			return text
		}
	default:
		switch e.Kind.typ {
		case TypeNumber:
			acc.get = func(v *View) any {
				text, _ := v.store.GetAttribute(name)
				return ParseNumber(text)
			}
		case TypeString:
			acc.get = func(v *View) any {
				text, _ := v.store.GetAttribute(name)
				return text
			}
		case TypeBoolean:
			acc.get = func(v *View) any {
				_, ok := v.store.GetAttribute(name)
				return ok
			}
		}
	}
	if e.Kind.typ == TypeBoolean {
		acc.set = func(v *View, value any) error {
			b, ok := value.(bool)
			if !ok {
				return errors.KindMismatch("props.View.Set", name, fmt.Sprintf("boolean prop needs a bool, got %T", value))
			}
			v.store.ToggleAttribute(name, b)
			return nil
		}
		return acc
	}
	acc.set = func(v *View, value any) error {
		v.store.SetAttribute(name, Stringify(value))
		return nil
	}
	return acc
}

var childrenAccessor = &accessor{
	key:  ChildrenKey,
	name: ChildrenKey,
	get: func(*View) any {
		return dom.NewElement("slot")
	},
	set: func(*View, any) error {
		return errors.WriteNotAllowed("props.View.Set", ChildrenKey)
	},
}

// View is the props surface of one component instance, backed by the
// instance's attribute store. Every key resolves through the accessor table
// compiled once for the schema.
type View struct {
	schema   *Schema
	store    Store
	dispatch Dispatcher
}

// Schema returns the schema the view was bound from.
func (v *View) Schema() *Schema { return v.schema }

// Keys returns the view keys; see Schema.Keys.
func (v *View) Keys() []string { return v.schema.Keys() }

// Get reads a prop. Numbers are float64, strings string, booleans bool,
// listeners func(detail any) and children *dom.Element.
func (v *View) Get(key string) (any, error) {
	acc, err := v.access("props.View.Get", key)
	if err != nil {
		return nil, err
	}
	return acc.get(v), nil
}

// Set writes a prop. A boolean prop takes only a bool, which toggles the
// attribute's presence, and fails with errors.ErrKindMismatch otherwise.
// Any other prop is written as its Stringify text, bools included.
// Writing children or a listener fails with errors.ErrWriteNotAllowed.
func (v *View) Set(key string, value any) error {
	acc, err := v.access("props.View.Set", key)
	if err != nil {
		return err
	}
	return acc.set(v, value)
}

// Number reads a numeric Required or Optional prop.
func (v *View) Number(key string) (float64, error) {
	acc, err := v.typed("props.View.Number", key, TypeNumber)
	if err != nil {
		return 0, err
	}
	return acc.get(v).(float64), nil
}

// Text reads a string Required or Optional prop.
func (v *View) Text(key string) (string, error) {
	acc, err := v.typed("props.View.Text", key, TypeString)
	if err != nil {
		return "", err
	}
	return acc.get(v).(string), nil
}

// Bool reads a Required boolean prop.
func (v *View) Bool(key string) (bool, error) {
	acc, err := v.typed("props.View.Bool", key, TypeBoolean)
	if err != nil {
		return false, err
	}
	return acc.get(v).(bool), nil
}

// Dispatcher returns the dispatch function of a listener key such as
// "onsubmit".
func (v *View) Dispatcher(key string) (func(detail any), error) {
	acc, err := v.access("props.View.Dispatcher", key)
	if err != nil {
		return nil, err
	}
	if !acc.kind.IsListener() {
		return nil, errors.KindMismatch("props.View.Dispatcher", key, "not a listener")
	}
	return acc.get(v).(func(any)), nil
}

// Children returns a new content-projection placeholder.
func (v *View) Children() *dom.Element {
	return childrenAccessor.get(v).(*dom.Element)
}

func (v *View) access(op, key string) (*accessor, error) {
	acc, err := v.schema.lookup(op, key)
	if err != nil {
		return nil, err
	}
	if acc.kind.IsListener() && key != acc.key {
		return nil, errors.KindMismatch(op, key, fmt.Sprintf("listener has no value; use %s", acc.key))
	}
	return acc, nil
}

func (v *View) typed(op, key string, want Type) (*accessor, error) {
	acc, err := v.access(op, key)
	if err != nil {
		return nil, err
	}
	if acc.kind.IsListener() || key == ChildrenKey || acc.kind.typ != want {
		return nil, errors.KindMismatch(op, key, fmt.Sprintf("declared %s, read as %s", describe(acc), want))
	}
	return acc, nil
}

func (v *View) emit(name string, detail any) {
	if v.dispatch != nil {
		v.dispatch(name, detail)
	}
}

func describe(acc *accessor) string {
	if acc.key == ChildrenKey {
		return ChildrenKey
	}
	return acc.kind.String()
}
