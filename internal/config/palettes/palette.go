// Package palettes holds the fixed set of named chart palettes.
package palettes

import (
	"sort"
	"strings"
)

// Palette is a named colour sequence. Series take colours in order and wrap
// around when there are more series than colours.
type Palette struct {
	Name        string
	Description string
	Colors      []string

	// Text and Subtle are used for terminal output alongside the palette
	Text   string
	Subtle string
}

// Color returns the i-th colour, wrapping around.
func (p *Palette) Color(i int) string {
	if len(p.Colors) == 0 {
		return "#000000"
	}
	if i < 0 {
		i = -i
	}
	return p.Colors[i%len(p.Colors)]
}

// Accent is the first colour of the palette
func (p *Palette) Accent() string {
	return p.Color(0)
}

var registry = map[string]func() *Palette{
	"professional":    Professional,
	"traditional":     Traditional,
	"corporate":       Corporate,
	"contemporary":    Contemporary,
	"vibrant":         Vibrant,
	"primary":         Primary,
	"pastel":          Pastel,
	"health":          Health,
	"diverging":       Diverging,
	"sequential_blue": SequentialBlue,
	"celebratory":     Celebratory,
	"innovative":      Innovative,
}

// Get returns the palette with the given name. Names are case-insensitive
// and "-" is accepted in place of "_".
func Get(name string) (*Palette, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	ctor, ok := registry[key]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Valid reports whether name is a known palette.
func Valid(name string) bool {
	_, ok := Get(name)
	return ok
}

// Names returns all palette names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
