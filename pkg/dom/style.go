package dom

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
)

// Style is an element's live style map. Property names are stored in
// kebab case; camel-case names such as "backgroundColor" are converted on
// write. Custom properties ("--name") are kept verbatim.
type Style struct {
	props []Attr
}

// Set assigns a property. An empty value removes it.
func (s *Style) Set(property, value string) {
	property = cssPropertyName(property)
	if value == "" {
		s.Remove(property)
		return
	}
	if i := s.index(property); i >= 0 {
		s.props[i].Value = value
		return
	}
	s.props = append(s.props, Attr{Name: property, Value: value})
}

// Get returns a property value, or "" when unset.
func (s *Style) Get(property string) string {
	if i := s.index(cssPropertyName(property)); i >= 0 {
		return s.props[i].Value
	}
	return ""
}

// Remove deletes a property.
func (s *Style) Remove(property string) {
	if i := s.index(cssPropertyName(property)); i >= 0 {
		s.props = slices.Delete(s.props, i, i+1)
	}
}

// Len returns the number of set properties.
func (s *Style) Len() int {
	return len(s.props)
}

// String returns the declarations as CSS text in assignment order.
func (s *Style) String() string {
	parts := make([]string, len(s.props))
	for i, p := range s.props {
		parts[i] = p.Name + ": " + p.Value + ";"
	}
	return strings.Join(parts, " ")
}

// Color resolves a property holding a hex color (#rgb or #rrggbb) or a CSS
// named color.
func (s *Style) Color(property string) (color.RGBA, bool) {
	return ParseColor(s.Get(property))
}

// ParseColor parses a hex color (#rgb or #rrggbb) or a CSS named color.
func ParseColor(value string) (color.RGBA, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := colornames.Map[value]; ok {
		return c, true
	}
	hex, ok := strings.CutPrefix(value, "#")
	if !ok {
		return color.RGBA{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
}

// FormatColor writes c as #rrggbb, ignoring alpha.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (s *Style) index(property string) int {
	return slices.IndexFunc(s.props, func(a Attr) bool {
		return a.Name == property
	})
}

func cssPropertyName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
