package props

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-fortis/fortis/pkg/dom"
	"github.com/go-fortis/fortis/pkg/errors"
)

// ChildrenKey is the reserved view key that yields the content-projection
// placeholder.
const ChildrenKey = "children"

// ListenerPrefix is prepended to a listener's name to form its view key.
const ListenerPrefix = "on"

// Type is the primitive type of a required prop.
type Type int

const (
	TypeNumber Type = iota + 1
	TypeString
	TypeBoolean
)

func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	default:
		return "invalid"
	}
}

type class int

const (
	classRequired class = iota + 1
	classOptional
	classListener
)

// Kind is the declared kind of a prop: Required, Optional or Listener.
// The zero Kind is invalid.
type Kind struct {
	class class
	typ   Type
	def   any
}

// Required declares a prop whose value is always read from its attribute.
func Required(t Type) Kind {
	return Kind{class: classRequired, typ: t}
}

// Optional declares a prop that reads as def while its attribute is absent.
// def must be a number or a string; numbers are stored as float64.
func Optional(def any) Kind {
	if n, ok := toNumber(def); ok {
		return Kind{class: classOptional, typ: TypeNumber, def: n}
	}
	if s, ok := def.(string); ok {
		return Kind{class: classOptional, typ: TypeString, def: s}
	}
	return Kind{class: classOptional, def: def}
}

// Listener declares an output: the view exposes a dispatch function under
// the "on"-prefixed key and forbids writes.
func Listener() Kind {
	return Kind{class: classListener}
}

// IsRequired reports whether k was declared with Required.
func (k Kind) IsRequired() bool { return k.class == classRequired }

// IsOptional reports whether k was declared with Optional.
func (k Kind) IsOptional() bool { return k.class == classOptional }

// IsListener reports whether k was declared with Listener.
func (k Kind) IsListener() bool { return k.class == classListener }

// Type returns the primitive type of a Required or Optional kind.
func (k Kind) Type() Type { return k.typ }

// Default returns an Optional kind's default value (float64 or string).
func (k Kind) Default() any { return k.def }

func (k Kind) String() string {
	switch k.class {
	case classRequired:
		return fmt.Sprintf("required(%s)", k.typ)
	case classOptional:
		if k.typ == TypeString {
			return fmt.Sprintf("optional(%q)", k.def)
		}
		return fmt.Sprintf("optional(%v)", k.def)
	case classListener:
		return "listener"
	default:
		return "invalid"
	}
}

// Entry declares one prop.
type Entry struct {
	Name string
	Kind Kind
}

// Schema is a compiled prop schema: an ordered set of entries and the
// accessor table shared by every view bound to it.
type Schema struct {
	entries   []Entry
	accessors map[string]*accessor
	keys      []string
	observed  []string
}

// Compile validates the entries and builds the accessor table.
func Compile(entries ...Entry) (*Schema, error) {
	s := &Schema{
		entries:   slices.Clone(entries),
		accessors: make(map[string]*accessor, len(entries)+1),
	}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := s.accessors[e.Name]; dup {
			return nil, schemaError(e.Name, "declared twice")
		}
		acc := newAccessor(e)
		s.accessors[e.Name] = acc
		if e.Kind.IsListener() {
			s.accessors[acc.key] = acc
		} else {
			s.observed = append(s.observed, e.Name)
		}
		s.keys = append(s.keys, acc.key)
	}
	s.accessors[ChildrenKey] = childrenAccessor
	s.keys = append(s.keys, ChildrenKey)
	return s, nil
}

// MustCompile is like Compile but panics on an invalid schema. It is meant
// for package-level component definitions.
func MustCompile(entries ...Entry) *Schema {
	s, err := Compile(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Entries returns the declared entries in order.
func (s *Schema) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Observed returns the attribute names backing non-listener props.
func (s *Schema) Observed() []string {
	return slices.Clone(s.observed)
}

// Keys returns every view key in declaration order followed by "children".
// Listener keys carry the "on" prefix.
func (s *Schema) Keys() []string {
	return slices.Clone(s.keys)
}

// Bind returns a view over store. dispatch receives listener signals; it
// may be nil for views that never dispatch.
func (s *Schema) Bind(store Store, dispatch Dispatcher) *View {
	return &View{schema: s, store: store, dispatch: dispatch}
}

func (s *Schema) lookup(op, key string) (*accessor, error) {
	acc, ok := s.accessors[key]
	if !ok {
		return nil, errors.UnknownAttribute(op, key)
	}
	return acc, nil
}

func validateEntry(e Entry) error {
	if e.Name == "" {
		return schemaError(e.Name, "empty prop name")
	}
	if strings.ContainsAny(e.Name, " \t\n\f\r\"'>/=") {
		return schemaError(e.Name, "not a valid attribute name")
	}
	if e.Name == ChildrenKey {
		return schemaError(e.Name, "children is reserved")
	}
	switch e.Kind.class {
	case classRequired:
		if e.Kind.typ < TypeNumber || e.Kind.typ > TypeBoolean {
			return schemaError(e.Name, "required prop has no valid type")
		}
	case classOptional:
		if e.Kind.typ != TypeNumber && e.Kind.typ != TypeString {
			return schemaError(e.Name, fmt.Sprintf("optional default must be a number or string, got %T", e.Kind.def))
		}
	case classListener:
		return nil
	default:
		return schemaError(e.Name, "kind not set")
	}
	if strings.HasPrefix(e.Name, ListenerPrefix) {
		return schemaError(e.Name, "the on prefix is reserved for listeners")
	}
	return nil
}

func schemaError(name, msg string) error {
	return &errors.FortisError{
		Op:   "props.Compile",
		Kind: errors.KindSchema,
		Key:  name,
		Err:  fmt.Errorf("%w: %s", errors.ErrInvalidSchema, msg),
	}
}

// Store is the attribute storage a view reads and writes.
// *dom.Element satisfies it.
type Store interface {
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	ToggleAttribute(name string, force bool) bool
}

// Dispatcher emits a named signal carrying detail.
type Dispatcher func(name string, detail any)

var _ Store = (*dom.Element)(nil)
