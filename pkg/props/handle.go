package props

import "fmt"

// NumberProp is a typed handle on a numeric prop, resolved once against a
// schema so that reads and writes through it cannot fail.
type NumberProp struct{ acc *accessor }

// TextProp is a typed handle on a string prop.
type TextProp struct{ acc *accessor }

// BoolProp is a typed handle on a Required boolean prop.
type BoolProp struct{ acc *accessor }

// ListenerProp is a typed handle on a listener.
type ListenerProp struct{ acc *accessor }

// Number resolves a numeric prop. It panics when name is not a numeric
// Required or Optional entry, so a bad handle fails at definition time.
func (s *Schema) Number(name string) NumberProp {
	return NumberProp{s.mustHandle(name, TypeNumber)}
}

// Text resolves a string prop. It panics like Number.
func (s *Schema) Text(name string) TextProp {
	return TextProp{s.mustHandle(name, TypeString)}
}

// Bool resolves a Required boolean prop. It panics like Number.
func (s *Schema) Bool(name string) BoolProp {
	return BoolProp{s.mustHandle(name, TypeBoolean)}
}

// Listener resolves a listener by its base name ("submit", not
// "onsubmit"). It panics when name is not a listener entry.
func (s *Schema) Listener(name string) ListenerProp {
	acc, ok := s.accessors[name]
	if !ok || !acc.kind.IsListener() {
		panic(fmt.Errorf("props: %q is not a listener", name))
	}
	return ListenerProp{acc}
}

func (s *Schema) mustHandle(name string, want Type) *accessor {
	acc, ok := s.accessors[name]
	if !ok || acc.key != name || acc.kind.IsListener() || acc.kind.typ != want {
		panic(fmt.Errorf("props: %q is not a %s prop", name, want))
	}
	return acc
}

// Name returns the prop name.
func (p NumberProp) Name() string { return p.acc.name }

// Get reads the prop from v.
func (p NumberProp) Get(v *View) float64 { return p.acc.get(v).(float64) }

// Set writes n to v.
func (p NumberProp) Set(v *View, n float64) { v.store.SetAttribute(p.acc.name, FormatNumber(n)) }

// Name returns the prop name.
func (p TextProp) Name() string { return p.acc.name }

// Get reads the prop from v.
func (p TextProp) Get(v *View) string { return p.acc.get(v).(string) }

// Set writes s to v.
func (p TextProp) Set(v *View, s string) { v.store.SetAttribute(p.acc.name, s) }

// Name returns the prop name.
func (p BoolProp) Name() string { return p.acc.name }

// Get reads the prop from v.
func (p BoolProp) Get(v *View) bool { return p.acc.get(v).(bool) }

// Set toggles the attribute's presence on v.
func (p BoolProp) Set(v *View, b bool) { v.store.ToggleAttribute(p.acc.name, b) }

// Key returns the view key ("onsubmit").
func (p ListenerProp) Key() string { return p.acc.key }

// Dispatch emits the listener's signal from v carrying detail.
func (p ListenerProp) Dispatch(v *View, detail any) { v.emit(p.acc.name, detail) }
