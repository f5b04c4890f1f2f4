package core

import "maps"

// Merge layers ext onto base the way the class generator applies an "extend"
// block: palettes merge shade by shade and radius tokens key by key, with ext
// winning at the leaf. Neither argument is modified.
func Merge(base, ext Theme) Theme {
	out := base.Clone()

	for name, palette := range ext.Colors {
		merged, ok := out.Colors[name]
		if !ok {
			merged = Palette{}
		}
		maps.Copy(merged, palette)
		out.Colors[name] = merged
	}

	maps.Copy(out.BorderRadius, ext.BorderRadius)
	return out
}
