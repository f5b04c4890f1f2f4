package core

import (
	"maps"
	"slices"
)

// Shade is one of the fixed shade names a palette may define.
type Shade string

const (
	ShadeLight   Shade = "light"
	ShadeDefault Shade = "DEFAULT"
	ShadeDark    Shade = "dark"
)

// Shades lists the recognized shades in display order.
var Shades = []Shade{ShadeLight, ShadeDefault, ShadeDark}

// Valid reports whether s is one of the recognized shades.
func (s Shade) Valid() bool {
	return slices.Contains(Shades, s)
}

// Palette maps a shade to a CSS color value.
type Palette map[Shade]string

// Theme is a set of design-token overrides layered onto the generator's
// defaults.
type Theme struct {
	Colors       map[string]Palette
	BorderRadius map[string]string
}

// Clone returns a deep copy of the theme. Nil maps come back empty.
func (t Theme) Clone() Theme {
	out := Theme{
		Colors:       make(map[string]Palette, len(t.Colors)),
		BorderRadius: make(map[string]string, len(t.BorderRadius)),
	}

	for name, p := range t.Colors {
		out.Colors[name] = maps.Clone(p)
		if out.Colors[name] == nil {
			out.Colors[name] = Palette{}
		}
	}

	maps.Copy(out.BorderRadius, t.BorderRadius)
	return out
}

// Equal reports whether both themes hold the same tokens.
func (t Theme) Equal(o Theme) bool {
	if !maps.Equal(t.BorderRadius, o.BorderRadius) {
		return false
	}

	return maps.EqualFunc(t.Colors, o.Colors, func(a, b Palette) bool {
		return maps.Equal(a, b)
	})
}

// Record is the configuration handed to the external class generator. It is
// immutable once constructed: every accessor returns a copy, so a single
// Record can be shared between goroutines without locking.
type Record struct {
	source       string
	contentGlobs []string
	theme        Theme
	plugins      []string
}

// Source is the label of the literal or file the record was loaded from.
func (r *Record) Source() string {
	return r.source
}

// ContentGlobs returns the glob patterns in authored order.
func (r *Record) ContentGlobs() []string {
	return cloneStrings(r.contentGlobs)
}

// Theme returns the theme extensions the record supplies.
func (r *Record) Theme() Theme {
	return r.theme.Clone()
}

// Colors returns the color palettes keyed by palette name.
func (r *Record) Colors() map[string]Palette {
	return r.theme.Clone().Colors
}

// BorderRadius returns the radius scale keyed by token name.
func (r *Record) BorderRadius() map[string]string {
	return maps.Clone(r.theme.BorderRadius)
}

// Plugins returns the plugin references in authored order. It never returns
// nil.
func (r *Record) Plugins() []string {
	return cloneStrings(r.plugins)
}

// Resolve returns the built-in base theme with the record's extensions merged
// on top of it.
func (r *Record) Resolve() Theme {
	return Merge(BaseTheme(), r.theme)
}

// Equal compares two records structurally. The source label is ignored.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}

	return slices.Equal(r.contentGlobs, o.contentGlobs) &&
		slices.Equal(r.plugins, o.plugins) &&
		r.theme.Equal(o.theme)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
